package util

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalizeWhitespace(t *testing.T) {
	assert.Equal(t, "a b c", NormalizeWhitespace("  a\n b\t\tc  "))
	assert.Equal(t, "", NormalizeWhitespace(" \n\t "))
}

func TestContainsAnyCaseInsensitive(t *testing.T) {
	assert.True(t, ContainsAnyCaseInsensitive("Check out POLYMARKET today", []string{"polymarket"}))
	assert.True(t, ContainsAnyCaseInsensitive("launching on euphoria.fi", []string{".fi"}))
	assert.False(t, ContainsAnyCaseInsensitive("nothing to see", []string{"polymarket", "euphoria"}))
	assert.False(t, ContainsAnyCaseInsensitive("anything", nil))
}

func TestTruncateRunes(t *testing.T) {
	assert.Equal(t, "héll", TruncateRunes("héllo", 4))
	assert.Equal(t, "héllo", TruncateRunes("héllo", 5))
	assert.Equal(t, "héllo", TruncateRunes("héllo", 50))
	assert.Equal(t, "", TruncateRunes("héllo", 0))

	// 500 runes of multi-byte text must not split a character.
	long := strings.Repeat("🚀", 600)
	got := TruncateRunes(long, 500)
	assert.Equal(t, 500, len([]rune(got)))
}

func TestEllipsize(t *testing.T) {
	assert.Equal(t, "short", Ellipsize("short", 80))
	assert.Equal(t, "ab…", Ellipsize("abcdef", 2))
}
