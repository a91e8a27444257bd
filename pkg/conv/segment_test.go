package conv

import (
	"reflect"
	"testing"
)

func TestSegmenterStreamedDeltas(t *testing.T) {
	var got []string
	s := NewSegmenter(func(sentence string) {
		got = append(got, sentence)
	})

	for _, delta := range []string{"Hello", " world.", " How are you?"} {
		s.Write(delta)
	}
	s.Flush()

	want := []string{"Hello world.", "How are you?"}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("emitted = %q, want %q", got, want)
	}
	if !reflect.DeepEqual(s.Sentences(), want) {
		t.Fatalf("Sentences() = %q, want %q", s.Sentences(), want)
	}
}

func TestSegmenterTerminatorRunSplitAcrossDeltas(t *testing.T) {
	s := NewSegmenter(nil)
	s.Write("Wait for it..")
	s.Write(". Then go.")
	s.Flush()

	want := []string{"Wait for it...", "Then go."}
	if !reflect.DeepEqual(s.Sentences(), want) {
		t.Fatalf("Sentences() = %q, want %q", s.Sentences(), want)
	}
}

func TestSegmenterDropsTinyFragments(t *testing.T) {
	s := NewSegmenter(nil)
	s.Write("Ok. This one is long enough to speak.")
	s.Flush()

	want := []string{"This one is long enough to speak."}
	if !reflect.DeepEqual(s.Sentences(), want) {
		t.Fatalf("Sentences() = %q, want %q", s.Sentences(), want)
	}
}

func TestSegmenterNoTerminatorWithoutWhitespace(t *testing.T) {
	s := NewSegmenter(nil)
	s.Write("version 1.2.3 shipped today")
	s.Flush()

	want := []string{"version 1.2.3 shipped today"}
	if !reflect.DeepEqual(s.Sentences(), want) {
		t.Fatalf("Sentences() = %q, want %q", s.Sentences(), want)
	}
}

func TestSegmentText(t *testing.T) {
	got := SegmentText("First sentence here! Second one follows? Third ends.")
	want := []string{"First sentence here!", "Second one follows?", "Third ends."}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("SegmentText = %q, want %q", got, want)
	}
}
