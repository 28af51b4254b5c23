package cryptoutil

import (
	"crypto/sha1"
	"crypto/sha256"
	"fmt"
	"hash"
	"sort"
	"strings"

	"golang.org/x/crypto/blake2b"
	"golang.org/x/crypto/ripemd160"
)

var hashes = map[string]func() hash.Hash{
	"sha1":        sha1.New,
	"sha256":      sha256.New,
	"ripemd160":   ripemd160.New,
	"blake2b-256": mustNewBlake2b256,
}

func mustNewBlake2b256() hash.Hash {
	h, err := blake2b.New256(nil)
	if err != nil {
		panic(err)
	}
	return h
}

// NewHash returns the constructor for the named digest. Names are matched
// case-insensitively; an empty name selects sha1.
func NewHash(name string) (func() hash.Hash, error) {
	if name == "" {
		name = "sha1"
	}
	h, ok := hashes[strings.ToLower(name)]
	if !ok {
		return nil, fmt.Errorf("cryptoutil: unknown hash %q (have %s)", name, strings.Join(HashNames(), ", "))
	}
	return h, nil
}

// HashNames lists the supported digest names.
func HashNames() []string {
	names := make([]string, 0, len(hashes))
	for n := range hashes {
		names = append(names, n)
	}
	sort.Strings(names)
	return names
}
