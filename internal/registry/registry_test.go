package registry

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"github.com/specialistvlad/encryptdecrypt/internal/cipher"
	"github.com/specialistvlad/encryptdecrypt/internal/ctxlog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type identity struct{}

func (identity) Encrypt(text string) (string, error) { return text, nil }
func (identity) Decrypt(text string) (string, error) { return text, nil }

type identityModule struct{ name string }

func (m identityModule) Register(r *Registry) {
	r.RegisterCipher(m.name, &RegisteredCipher{
		Description: "returns input unchanged",
		New:         func(int) cipher.Cipher { return identity{} },
	})
}

func testContext() context.Context {
	return ctxlog.WithLogger(context.Background(), slog.New(slog.NewTextHandler(io.Discard, nil)))
}

func TestLookup(t *testing.T) {
	t.Parallel()

	r := New()
	identityModule{name: "same"}.Register(r)

	c, err := r.Lookup("same")
	require.NoError(t, err)
	require.NotNil(t, c.New(3))

	_, err = r.Lookup("rot13")
	require.ErrorIs(t, err, ErrUnknownAlgorithm)
	assert.Contains(t, err.Error(), "rot13")
}

func TestRegisterCipher_DuplicatePanics(t *testing.T) {
	t.Parallel()

	r := New()
	identityModule{name: "same"}.Register(r)

	assert.Panics(t, func() { identityModule{name: "same"}.Register(r) })
}

func TestNames_Sorted(t *testing.T) {
	t.Parallel()

	r := New()
	for _, name := range []string{"unicode", "atbash", "shift"} {
		identityModule{name: name}.Register(r)
	}

	assert.Equal(t, []string{"atbash", "shift", "unicode"}, r.Names())
}

func TestValidateRegistry(t *testing.T) {
	t.Parallel()

	testCases := []struct {
		name      string
		setup     func(r *Registry)
		expectErr string
	}{
		{
			name:  "valid module",
			setup: func(r *Registry) { identityModule{name: "same"}.Register(r) },
		},
		{
			name:      "empty registry",
			setup:     func(r *Registry) {},
			expectErr: "no ciphers registered",
		},
		{
			name: "nil factory",
			setup: func(r *Registry) {
				r.RegisterCipher("broken", &RegisteredCipher{})
			},
			expectErr: "cipher 'broken': no factory registered",
		},
		{
			name: "factory returns nil",
			setup: func(r *Registry) {
				r.RegisterCipher("hollow", &RegisteredCipher{New: func(int) cipher.Cipher { return nil }})
			},
			expectErr: "cipher 'hollow': factory returned nil",
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			r := New()
			tc.setup(r)

			err := r.ValidateRegistry(testContext())
			if tc.expectErr == "" {
				require.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.Contains(t, err.Error(), tc.expectErr)
		})
	}
}
