package llm

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestBaseProviderTimeout(t *testing.T) {
	b := newBaseProvider("http://example.test", "", "m", 10*time.Second)
	assert.Equal(t, 10*time.Second, b.client.Timeout)

	// Zero falls back to the package default.
	b = newBaseProvider("http://example.test", "", "m", 0)
	assert.Equal(t, defaultTimeout, b.client.Timeout)
}
