// Package cipher defines the capability shared by every text cipher and the
// mode dispatch that picks the encrypt or decrypt direction.
//
// Concrete ciphers live in the modules directory and are made available to
// the application through the registry.
package cipher
