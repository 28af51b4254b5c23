package srp

import (
	"fmt"
	"math/big"
)

const (
	// SaltSize is the length of an account salt.
	SaltSize = 32
	// ReconnectDataSize is the length of the client and server reconnect challenges.
	ReconnectDataSize = 16
	// SeedSize is the length of the world-server client and server seeds.
	SeedSize = 4
)

// Params is the protocol group both peers must agree on.
type Params struct {
	N *big.Int
	G *big.Int
	K *big.Int
	// XorConstant is the precomputed H(N) xor H(g) fed into the client proof.
	XorConstant *big.Int
	// Hash names the digest, see cryptoutil.NewHash.
	Hash string
}

// DefaultParams returns the group used by deployed authentication servers.
func DefaultParams() Params {
	return Params{
		N:           mustParseHex("894B645E89E1535BBDAD5B8B290650530801B18EBFBF5E8FAB3C82872A3E9BB7"),
		G:           big.NewInt(7),
		K:           big.NewInt(3),
		XorConstant: mustParseHex("A7C27B6C96CA6F505A7C98031173AC383AB07BDD"),
		Hash:        "sha1",
	}
}

func mustParseHex(s string) *big.Int {
	n, ok := new(big.Int).SetString(s, 16)
	if !ok {
		panic(fmt.Sprintf("srp: can't parse hex constant %q", s))
	}
	return n
}

func (p Params) validate() error {
	switch {
	case p.N == nil || p.N.Sign() <= 0:
		return fmt.Errorf("%w: N must be positive", ErrInvalidParams)
	case p.G == nil || p.G.Sign() <= 0:
		return fmt.Errorf("%w: g must be positive", ErrInvalidParams)
	case p.K == nil || p.K.Sign() <= 0:
		return fmt.Errorf("%w: k must be positive", ErrInvalidParams)
	case p.XorConstant == nil || p.XorConstant.Sign() < 0:
		return fmt.Errorf("%w: xor constant must be set", ErrInvalidParams)
	case p.G.Cmp(p.N) >= 0:
		return fmt.Errorf("%w: g must be smaller than N", ErrInvalidParams)
	}
	return nil
}
