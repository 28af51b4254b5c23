// Package sessioncipher implements the additive-feedback XOR cipher keyed by
// the SRP session key.
//
// Encrypt and Decrypt start from a fresh state on every call, so a stream
// split across several calls does not round-trip through them. Use a Cipher
// when the state has to carry over from one message to the next.
package sessioncipher

import (
	"errors"
	"sync"
)

var ErrEmptyKey = errors.New("sessioncipher: empty session key")

// state is the accumulator and key index of one direction.
type state struct {
	key  []byte
	idx  int
	last byte
}

func (s *state) encrypt(dst, src []byte) {
	for i, c := range src {
		e := (c ^ s.key[s.idx]) + s.last
		s.idx = (s.idx + 1) % len(s.key)
		s.last = e
		dst[i] = e
	}
}

func (s *state) decrypt(dst, src []byte) {
	for i, e := range src {
		c := (e - s.last) ^ s.key[s.idx]
		s.idx = (s.idx + 1) % len(s.key)
		// Feedback is the ciphertext byte, read before dst may overwrite it.
		s.last = e
		dst[i] = c
	}
}

func (s *state) reset() {
	s.idx = 0
	s.last = 0
}

// Encrypt returns data encrypted under sessionKey from a fresh state.
func Encrypt(data, sessionKey []byte) ([]byte, error) {
	if len(sessionKey) == 0 {
		return nil, ErrEmptyKey
	}
	out := make([]byte, len(data))
	s := state{key: sessionKey}
	s.encrypt(out, data)
	return out, nil
}

// Decrypt reverses Encrypt.
func Decrypt(data, sessionKey []byte) ([]byte, error) {
	if len(sessionKey) == 0 {
		return nil, ErrEmptyKey
	}
	out := make([]byte, len(data))
	s := state{key: sessionKey}
	s.decrypt(out, data)
	return out, nil
}

// Cipher keeps an independent state per direction across calls. Encrypting
// a stream in pieces yields the same bytes as a single Encrypt call over the
// whole stream. Each direction may be used from its own goroutine.
type Cipher struct {
	encMu sync.Mutex
	enc   state

	decMu sync.Mutex
	dec   state
}

// New returns a Cipher keyed by sessionKey.
func New(sessionKey []byte) (*Cipher, error) {
	if len(sessionKey) == 0 {
		return nil, ErrEmptyKey
	}
	key := append([]byte(nil), sessionKey...)
	return &Cipher{
		enc: state{key: key},
		dec: state{key: key},
	}, nil
}

// Encrypt encrypts src into dst, which must be at least len(src) bytes.
// dst and src may overlap entirely.
func (c *Cipher) Encrypt(dst, src []byte) {
	if len(dst) < len(src) {
		panic("sessioncipher: output smaller than input")
	}
	c.encMu.Lock()
	defer c.encMu.Unlock()
	c.enc.encrypt(dst, src)
}

// Decrypt decrypts src into dst, which must be at least len(src) bytes.
// dst and src may overlap entirely.
func (c *Cipher) Decrypt(dst, src []byte) {
	if len(dst) < len(src) {
		panic("sessioncipher: output smaller than input")
	}
	c.decMu.Lock()
	defer c.decMu.Unlock()
	c.dec.decrypt(dst, src)
}

// Reset returns both directions to their initial state.
func (c *Cipher) Reset() {
	c.encMu.Lock()
	c.enc.reset()
	c.encMu.Unlock()
	c.decMu.Lock()
	c.dec.reset()
	c.decMu.Unlock()
}
