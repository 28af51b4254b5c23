// Package srp implements the SRP-6 variant spoken by World of Warcraft
// authentication servers: verifier and key derivation, the interleaved
// session key, and the proofs exchanged during logon, reconnect and world
// server authentication.
//
// All functions are pure. Random exponents, salts, sockets, storage and
// proof comparison are the caller's business.
package srp

import (
	"errors"
	"fmt"
	"hash"
	"math/big"
	"strings"

	"wowsrp/crypto/cryptoutil"

	"github.com/golang/glog"
)

var (
	ErrInvalidLength = errors.New("srp: invalid buffer length")
	ErrInvalidParams = errors.New("srp: invalid parameters")
	ErrDegenerateKey = errors.New("srp: public key is zero mod N")
)

// Engine derives SRP values for one parameter set. It is immutable and safe
// for concurrent use.
type Engine struct {
	n, g, k *big.Int
	xor     []byte
	newH    func() hash.Hash

	size       int // bytes in N
	digestSize int
	hashName   string
}

// NewEngine returns an engine for p.
func NewEngine(p Params) (*Engine, error) {
	if err := p.validate(); err != nil {
		return nil, err
	}
	newH, err := cryptoutil.NewHash(p.Hash)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidParams, err)
	}
	name := strings.ToLower(p.Hash)
	if name == "" {
		name = "sha1"
	}
	digestSize := newH().Size()
	if p.XorConstant.BitLen() > 8*digestSize {
		return nil, fmt.Errorf("%w: xor constant wider than %d byte digest", ErrInvalidParams, digestSize)
	}
	e := &Engine{
		n:          new(big.Int).Set(p.N),
		g:          new(big.Int).Set(p.G),
		k:          new(big.Int).Set(p.K),
		xor:        xorConstantBytes(p.XorConstant, digestSize),
		newH:       newH,
		size:       (p.N.BitLen() + 7) / 8,
		digestSize: digestSize,
		hashName:   name,
	}
	glog.V(1).Infof("srp: engine ready: %d-bit N, g=%v, k=%v, hash=%s", p.N.BitLen(), e.g, e.k, name)
	return e, nil
}

// MustNewEngine is like NewEngine but panics on invalid parameters.
func MustNewEngine(p Params) *Engine {
	e, err := NewEngine(p)
	if err != nil {
		panic(err)
	}
	return e
}

// KeySize is the length of v, A, B and S.
func (e *Engine) KeySize() int { return e.size }

// DigestSize is the length of x, u and every proof.
func (e *Engine) DigestSize() int { return e.digestSize }

// SessionKeySize is the length of K.
func (e *Engine) SessionKeySize() int { return 2 * e.digestSize }

// Hash returns the name of the digest in use.
func (e *Engine) Hash() string { return e.hashName }

func checkLen(name string, b []byte, want int) error {
	if len(b) != want {
		glog.V(2).Infof("srp: rejecting %s: %d bytes, want %d", name, len(b), want)
		return fmt.Errorf("%w: %s is %d bytes, want %d", ErrInvalidLength, name, len(b), want)
	}
	return nil
}

func checkExponent(name string, b []byte, limit int) error {
	if len(b) == 0 || len(b) > limit {
		glog.V(2).Infof("srp: rejecting %s: %d bytes, want 1..%d", name, len(b), limit)
		return fmt.Errorf("%w: %s is %d bytes, want 1..%d", ErrInvalidLength, name, len(b), limit)
	}
	return nil
}

// X returns the private key x derived from the credentials and salt.
func (e *Engine) X(username, password string, salt []byte) ([]byte, error) {
	if err := checkLen("salt", salt, SaltSize); err != nil {
		return nil, err
	}
	return e.genX(username, password, salt), nil
}

// Verifier returns v = g^x mod N, the value a server stores instead of the
// password.
func (e *Engine) Verifier(username, password string, salt []byte) ([]byte, error) {
	x, err := e.X(username, password, salt)
	if err != nil {
		return nil, err
	}
	return e.genV(x), nil
}

// ServerPublicKey returns B = (k*v + g^b mod N) mod N.
func (e *Engine) ServerPublicKey(v, b []byte) ([]byte, error) {
	if err := checkLen("verifier", v, e.size); err != nil {
		return nil, err
	}
	if err := checkExponent("server private key", b, e.size); err != nil {
		return nil, err
	}
	return e.genServerPublicKey(v, b), nil
}

// ClientPublicKey returns A = g^a mod N.
func (e *Engine) ClientPublicKey(a []byte) ([]byte, error) {
	if err := checkExponent("client private key", a, e.size); err != nil {
		return nil, err
	}
	return e.genClientPublicKey(a), nil
}

// ClientS returns the client's view of the shared secret,
// S = (B - k*g^x mod N)^(a + u*x) mod N.
func (e *Engine) ClientS(a, B, x, u []byte) ([]byte, error) {
	if err := checkExponent("client private key", a, e.size); err != nil {
		return nil, err
	}
	if err := checkLen("server public key", B, e.size); err != nil {
		return nil, err
	}
	if err := checkLen("x", x, e.digestSize); err != nil {
		return nil, err
	}
	if err := checkLen("u", u, e.digestSize); err != nil {
		return nil, err
	}
	return e.genClientS(a, B, x, u), nil
}

// ServerS returns the server's view of the shared secret,
// S = (A * v^u mod N)^b mod N.
func (e *Engine) ServerS(A, v, u, b []byte) ([]byte, error) {
	if err := checkLen("client public key", A, e.size); err != nil {
		return nil, err
	}
	if err := checkLen("verifier", v, e.size); err != nil {
		return nil, err
	}
	if err := checkLen("u", u, e.digestSize); err != nil {
		return nil, err
	}
	if err := checkExponent("server private key", b, e.size); err != nil {
		return nil, err
	}
	return e.genServerS(A, v, u, b), nil
}

// U returns the scrambler derived from both public keys.
func (e *Engine) U(A, B []byte) ([]byte, error) {
	if err := checkLen("client public key", A, e.size); err != nil {
		return nil, err
	}
	if err := checkLen("server public key", B, e.size); err != nil {
		return nil, err
	}
	return e.genU(A, B), nil
}

// SessionKey expands S into the session key K by hashing its even and odd
// bytes separately and interleaving the digests.
func (e *Engine) SessionKey(S []byte) ([]byte, error) {
	if err := checkLen("S", S, e.size); err != nil {
		return nil, err
	}
	return e.genInterleaved(S), nil
}

// ClientProof returns M1, the client's proof of K.
func (e *Engine) ClientProof(username string, K, A, B, salt []byte) ([]byte, error) {
	if err := checkLen("session key", K, e.SessionKeySize()); err != nil {
		return nil, err
	}
	if err := checkLen("client public key", A, e.size); err != nil {
		return nil, err
	}
	if err := checkLen("server public key", B, e.size); err != nil {
		return nil, err
	}
	if err := checkLen("salt", salt, SaltSize); err != nil {
		return nil, err
	}
	return e.genClientProof(username, K, A, B, salt), nil
}

// ServerProof returns M2, the server's proof of K. Callers must have checked
// M1 before sending it.
func (e *Engine) ServerProof(A, M1, K []byte) ([]byte, error) {
	if err := checkLen("client public key", A, e.size); err != nil {
		return nil, err
	}
	if err := checkLen("client proof", M1, e.digestSize); err != nil {
		return nil, err
	}
	if err := checkLen("session key", K, e.SessionKeySize()); err != nil {
		return nil, err
	}
	return e.genServerProof(A, M1, K), nil
}

// ReconnectProof returns the proof exchanged when a client reconnects with
// a session key from an earlier logon.
func (e *Engine) ReconnectProof(username string, clientData, serverData, K []byte) ([]byte, error) {
	if err := checkLen("client data", clientData, ReconnectDataSize); err != nil {
		return nil, err
	}
	if err := checkLen("server data", serverData, ReconnectDataSize); err != nil {
		return nil, err
	}
	if err := checkLen("session key", K, e.SessionKeySize()); err != nil {
		return nil, err
	}
	return e.genReconnectProof(username, clientData, serverData, K), nil
}

// WorldServerProof returns the proof a client sends to a world server.
// Unlike the other proofs the seeds are hashed as given and the digest is
// not reversed.
func (e *Engine) WorldServerProof(username string, clientSeed, serverSeed, K []byte) ([]byte, error) {
	if err := checkLen("client seed", clientSeed, SeedSize); err != nil {
		return nil, err
	}
	if err := checkLen("server seed", serverSeed, SeedSize); err != nil {
		return nil, err
	}
	if err := checkLen("session key", K, e.SessionKeySize()); err != nil {
		return nil, err
	}
	return e.genWorldServerProof(username, clientSeed, serverSeed, K), nil
}

// CheckPublicKey reports ErrDegenerateKey if key is zero mod N. The
// derivations accept such keys; protocol layers should call this on every
// public key received from a peer.
func (e *Engine) CheckPublicKey(key []byte) error {
	if err := checkLen("public key", key, e.size); err != nil {
		return err
	}
	if new(big.Int).Mod(toInt(key), e.n).Sign() == 0 {
		return ErrDegenerateKey
	}
	return nil
}
