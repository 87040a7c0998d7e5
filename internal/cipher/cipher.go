package cipher

// Mode selects the direction a cipher is applied in.
type Mode string

const (
	ModeEncrypt Mode = "enc"
	ModeDecrypt Mode = "dec"
)

// Known reports whether m is one of the recognised modes.
func (m Mode) Known() bool {
	return m == ModeEncrypt || m == ModeDecrypt
}

// Cipher transforms text forward (Encrypt) and back (Decrypt) with a key
// fixed at construction time.
type Cipher interface {
	Encrypt(text string) (string, error)
	Decrypt(text string) (string, error)
}

// Apply runs Encrypt when mode is ModeEncrypt and Decrypt for any other
// mode, including unrecognised ones.
func Apply(c Cipher, mode Mode, text string) (string, error) {
	if mode == ModeEncrypt {
		return c.Encrypt(text)
	}
	return c.Decrypt(text)
}
