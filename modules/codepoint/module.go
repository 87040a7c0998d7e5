// Package codepoint implements the code-point shift cipher: every UTF-16 code
// unit of the input is moved by the key, with no alphabet restriction.
// Characters outside the Basic Multilingual Plane are shifted as their two
// surrogate halves.
//
// A shift that would take a unit below zero or above 0xFFFF, or that leaves
// a surrogate without its partner, is rejected rather than wrapped or
// clamped, so a successful result is always well-formed text and always
// decrypts back to its input.
package codepoint

import (
	"errors"
	"fmt"
	"unicode/utf16"
	"unicode/utf8"

	"github.com/specialistvlad/encryptdecrypt/internal/cipher"
	"github.com/specialistvlad/encryptdecrypt/internal/registry"
)

// Name is the algorithm name this module registers under.
const Name = "unicode"

const (
	maxUnit         = 0xFFFF
	lowSurrogateMin = 0xDC00
	surrogateMax    = 0xDFFF
)

var (
	// ErrOutOfRange is returned when a shifted unit does not fit in UTF-16 or
	// breaks a surrogate pair.
	ErrOutOfRange = errors.New("shifted code point out of range")
	// ErrMalformedInput is returned when the input is not valid UTF-8.
	ErrMalformedInput = errors.New("input is not valid UTF-8")
)

// Module implements the registry.Module interface for this package.
type Module struct{}

// Cipher shifts UTF-16 code units by a fixed key.
type Cipher struct {
	key int
}

// New returns a Cipher for key.
func New(key int) *Cipher {
	return &Cipher{key: key}
}

// Encrypt adds the key to every code unit.
func (c *Cipher) Encrypt(text string) (string, error) {
	return c.shift(text, 1, "encrypted")
}

// Decrypt subtracts the key from every code unit.
func (c *Cipher) Decrypt(text string) (string, error) {
	return c.shift(text, -1, "decrypted")
}

func (c *Cipher) shift(text string, sign int, verb string) (string, error) {
	runes := make([]rune, 0, len(text))
	for offset, r := range text {
		if r == utf8.RuneError {
			if _, size := utf8.DecodeRuneInString(text[offset:]); size <= 1 {
				return "", fmt.Errorf("%w: invalid byte 0x%02X at offset %d", ErrMalformedInput, text[offset], offset)
			}
		}
		runes = append(runes, r)
	}

	units := utf16.Encode(runes)
	for i, u := range units {
		shifted, ok := shiftUnit(u, c.key, sign)
		if !ok {
			return "", fmt.Errorf("%w: unit 0x%04X at index %d cannot be %s with key %d", ErrOutOfRange, u, i, verb, c.key)
		}
		units[i] = shifted
	}

	if i, ok := unpairedSurrogate(units); ok {
		return "", fmt.Errorf("%w: unit 0x%04X at index %d is left as an unpaired surrogate when %s with key %d", ErrOutOfRange, units[i], i, verb, c.key)
	}
	return string(utf16.Decode(units)), nil
}

// shiftUnit returns u moved by sign*key and whether the result is still a
// UTF-16 code unit.
func shiftUnit(u uint16, key, sign int) (uint16, bool) {
	// Any key this large moves every unit out of range, and bailing early
	// keeps sign*key from overflowing.
	if key > maxUnit || key < -maxUnit {
		return 0, false
	}
	v := int(u) + sign*key
	if v < 0 || v > maxUnit {
		return 0, false
	}
	return uint16(v), true
}

// unpairedSurrogate returns the index of the first surrogate in units that
// is not part of a high-low pair.
func unpairedSurrogate(units []uint16) (int, bool) {
	for i := 0; i < len(units); i++ {
		u := units[i]
		if !utf16.IsSurrogate(rune(u)) {
			continue
		}
		if u < lowSurrogateMin && i+1 < len(units) && units[i+1] >= lowSurrogateMin && units[i+1] <= surrogateMax {
			i++
			continue
		}
		return i, true
	}
	return 0, false
}

// Register registers the cipher with the registry.
func (m *Module) Register(r *registry.Registry) {
	r.RegisterCipher(Name, &registry.RegisteredCipher{
		Description: "shifts every character by the key along the Unicode code space",
		New:         func(key int) cipher.Cipher { return New(key) },
	})
}
