package cipher

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// upperCipher is a test double that records which direction was used.
type upperCipher struct{}

func (upperCipher) Encrypt(text string) (string, error) { return strings.ToUpper(text), nil }
func (upperCipher) Decrypt(text string) (string, error) { return strings.ToLower(text), nil }

func TestApply(t *testing.T) {
	t.Parallel()

	testCases := []struct {
		name     string
		mode     Mode
		expected string
	}{
		{name: "enc encrypts", mode: ModeEncrypt, expected: "ABC"},
		{name: "dec decrypts", mode: ModeDecrypt, expected: "abc"},
		{name: "unknown mode decrypts", mode: Mode("reverse"), expected: "abc"},
		{name: "empty mode decrypts", mode: Mode(""), expected: "abc"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := Apply(upperCipher{}, tc.mode, "aBc")
			require.NoError(t, err)
			assert.Equal(t, tc.expected, got)
		})
	}
}

func TestModeKnown(t *testing.T) {
	t.Parallel()

	assert.True(t, ModeEncrypt.Known())
	assert.True(t, ModeDecrypt.Known())
	assert.False(t, Mode("ENC").Known())
	assert.False(t, Mode("").Known())
}
