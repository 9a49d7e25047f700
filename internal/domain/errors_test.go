package domain

import (
	"strings"
	"testing"
	"unicode/utf8"

	"github.com/stretchr/testify/assert"
)

func TestTruncateRaw_ShortStringUntouched(t *testing.T) {
	assert.Equal(t, "hello", TruncateRaw("hello"))
	assert.Equal(t, "", TruncateRaw(""))
}

func TestTruncateRaw_CapsAt200Characters(t *testing.T) {
	long := strings.Repeat("a", 500)

	got := TruncateRaw(long)

	assert.Equal(t, 200, utf8.RuneCountInString(got))
	assert.Equal(t, strings.Repeat("a", 200), got)
}

func TestTruncateRaw_KeepsRuneBoundaries(t *testing.T) {
	// 300 two-byte runes: a byte-based s[:200] would split the hundredth one.
	long := strings.Repeat("ש", 300)

	got := TruncateRaw(long)

	assert.True(t, utf8.ValidString(got))
	assert.Equal(t, 200, utf8.RuneCountInString(got))
}
