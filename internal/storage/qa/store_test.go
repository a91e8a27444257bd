package qa

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStoreRoundTrip(t *testing.T) {
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "qna_data.json")

	s := Load(ctx, path)
	require.NoError(t, s.Put("what is go", "a programming language"))

	answer, ok := s.Get("what is go")
	assert.True(t, ok)
	assert.Equal(t, "a programming language", answer)

	// A fresh load sees the persisted pair.
	s2 := Load(ctx, path)
	answer, ok = s2.Get("what is go")
	assert.True(t, ok)
	assert.Equal(t, "a programming language", answer)
}

func TestStoreConcurrentInsertsNoLostUpdate(t *testing.T) {
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "qna_data.json")
	s := Load(ctx, path)

	const n = 20
	var wg sync.WaitGroup
	for i := 0; i < n; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			if err := s.Put(fmt.Sprintf("q%d", i), fmt.Sprintf("a%d", i)); err != nil {
				t.Errorf("Put failed: %v", err)
			}
		}(i)
	}
	wg.Wait()

	raw, err := os.ReadFile(path)
	require.NoError(t, err)

	var persisted map[string]string
	require.NoError(t, json.Unmarshal(raw, &persisted))
	assert.Len(t, persisted, n)
	for i := 0; i < n; i++ {
		assert.Equal(t, fmt.Sprintf("a%d", i), persisted[fmt.Sprintf("q%d", i)])
	}
}

func TestStoreLegacyListFormat(t *testing.T) {
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "qna_data.json")
	require.NoError(t, os.WriteFile(path, []byte(`["what is go: a language", "who: nobody"]`), 0644))

	s := Load(ctx, path)
	answer, ok := s.Get("what is go")
	assert.True(t, ok)
	assert.Equal(t, "a language", answer)
	assert.Equal(t, 2, s.Len())
}

func TestStoreCorruptFileStartsEmpty(t *testing.T) {
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "qna_data.json")
	require.NoError(t, os.WriteFile(path, []byte(`{not json`), 0644))

	s := Load(ctx, path)
	assert.Equal(t, 0, s.Len())
}
