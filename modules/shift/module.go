// Package shift implements the alphabetic Caesar cipher. ASCII letters are
// rotated within their own 26-letter alphabet; every other byte is left as is.
package shift

import (
	"github.com/specialistvlad/encryptdecrypt/internal/cipher"
	"github.com/specialistvlad/encryptdecrypt/internal/registry"
)

// Name is the algorithm name this module registers under.
const Name = "shift"

const alphabetSize = 26

// Module implements the registry.Module interface for this package.
type Module struct{}

// Cipher rotates ASCII letters by a fixed number of positions.
type Cipher struct {
	// shift is the key reduced into [0, alphabetSize).
	shift int
}

// New returns a Cipher for key. Any integer key is accepted; negative keys
// rotate backwards and keys beyond the alphabet wrap around.
func New(key int) *Cipher {
	return &Cipher{shift: normalize(key)}
}

// normalize maps any integer onto [0, alphabetSize). The key is reduced
// before the addition so extreme values cannot overflow.
func normalize(key int) int {
	return (key%alphabetSize + alphabetSize) % alphabetSize
}

// Encrypt rotates every ASCII letter forward by the key.
func (c *Cipher) Encrypt(text string) (string, error) {
	return rotate(text, c.shift), nil
}

// Decrypt rotates every ASCII letter backward by the key.
func (c *Cipher) Decrypt(text string) (string, error) {
	return rotate(text, normalize(-c.shift)), nil
}

// rotate works on bytes, not runes, so bytes of multi-byte or malformed
// UTF-8 sequences never match a letter range and survive untouched.
func rotate(text string, shift int) string {
	out := []byte(text)
	for i, ch := range out {
		switch {
		case ch >= 'a' && ch <= 'z':
			out[i] = 'a' + byte((int(ch-'a')+shift)%alphabetSize)
		case ch >= 'A' && ch <= 'Z':
			out[i] = 'A' + byte((int(ch-'A')+shift)%alphabetSize)
		}
	}
	return string(out)
}

// Register registers the cipher with the registry.
func (m *Module) Register(r *registry.Registry) {
	r.RegisterCipher(Name, &registry.RegisteredCipher{
		Description: "Caesar shift over the ASCII letters, case preserved",
		New:         func(key int) cipher.Cipher { return New(key) },
	})
}
