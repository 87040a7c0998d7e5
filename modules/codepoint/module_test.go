package codepoint

import (
	"math"
	"testing"

	"github.com/specialistvlad/encryptdecrypt/internal/registry"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEncrypt(t *testing.T) {
	t.Parallel()

	testCases := []struct {
		name     string
		input    string
		key      int
		expected string
	}{
		{name: "each code point incremented", input: "abc", key: 1, expected: "bcd"},
		{name: "punctuation shifts too", input: "a b!", key: 1, expected: "b!c\""},
		{name: "negative key", input: "bcd", key: -1, expected: "abc"},
		{name: "zero key", input: "Grüße", key: 0, expected: "Grüße"},
		{name: "beyond latin", input: "é", key: 1, expected: "ê"},
		{name: "supplementary plane shifts both surrogate halves", input: "\U0001F600", key: 1, expected: "\U0001FA01"},
		{name: "supplementary plane negative key", input: "\U0001FA01", key: -1, expected: "\U0001F600"},
		{name: "top of the basic plane", input: "\uFFFE", key: 1, expected: "\uFFFF"},
		{name: "empty input with huge key", input: "", key: math.MaxInt, expected: ""},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := New(tc.key).Encrypt(tc.input)
			require.NoError(t, err)
			assert.Equal(t, tc.expected, got)
		})
	}
}

func TestRoundTrip(t *testing.T) {
	t.Parallel()

	texts := []string{
		"",
		"abc",
		"Hello, World!",
		"tab\tnew\nline",
		"Grüße aus Köln",
		"日本語テキスト",
		"emoji \U0001F600 mix",
	}
	keys := []int{-20, -1, 0, 1, 3, 26, 100, 1000}

	for _, text := range texts {
		for _, key := range keys {
			c := New(key)
			enc, err := c.Encrypt(text)
			if err != nil {
				require.ErrorIs(t, err, ErrOutOfRange, "text %q key %d", text, key)
				continue
			}
			dec, err := c.Decrypt(enc)
			require.NoError(t, err, "text %q key %d", text, key)
			require.Equal(t, text, dec, "text %q key %d", text, key)
		}
	}
}

func TestOutOfRange(t *testing.T) {
	t.Parallel()

	testCases := []struct {
		name    string
		input   string
		key     int
		decrypt bool
	}{
		{name: "below zero", input: "a", key: 98, decrypt: true},
		{name: "above max unit", input: "\uFFFF", key: 1},
		{name: "high half pushed into low half", input: "\U0010FFFF", key: 1},
		{name: "pair split apart", input: "\U0001F600", key: 1000},
		{name: "into surrogate block", input: "\uD7FF", key: 1},
		{name: "lands on last surrogate", input: "\uE000", key: 1, decrypt: true},
		{name: "huge positive key", input: "a", key: math.MaxInt},
		{name: "huge negative key", input: "a", key: math.MinInt},
		{name: "huge negative key decrypt", input: "a", key: math.MinInt, decrypt: true},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			c := New(tc.key)
			var err error
			if tc.decrypt {
				_, err = c.Decrypt(tc.input)
			} else {
				_, err = c.Encrypt(tc.input)
			}
			require.ErrorIs(t, err, ErrOutOfRange)
		})
	}
}

func TestOutOfRange_ReportsOffset(t *testing.T) {
	t.Parallel()

	_, err := New(1).Encrypt("ab\uFFFF")
	require.ErrorIs(t, err, ErrOutOfRange)
	assert.Contains(t, err.Error(), "unit 0xFFFF at index 2")

	_, err = New(1).Encrypt("ab\U0010FFFF")
	require.ErrorIs(t, err, ErrOutOfRange)
	assert.Contains(t, err.Error(), "unit 0xDC00 at index 2 is left as an unpaired surrogate")
}

func TestMalformedInput(t *testing.T) {
	t.Parallel()

	_, err := New(1).Encrypt("ok\xffbad")
	require.ErrorIs(t, err, ErrMalformedInput)
	assert.Contains(t, err.Error(), "0xFF at offset 2")

	// A literal replacement character is valid text and shifts normally.
	got, err := New(1).Encrypt("\uFFFD")
	require.NoError(t, err)
	assert.Equal(t, "\uFFFE", got)
}

func TestRegister(t *testing.T) {
	t.Parallel()

	r := registry.New()
	(&Module{}).Register(r)

	c, err := r.Lookup(Name)
	require.NoError(t, err)

	got, err := c.New(1).Encrypt("abc")
	require.NoError(t, err)
	assert.Equal(t, "bcd", got)
}
