package srp

import (
	"math/big"
)

func (e *Engine) hash(parts ...[]byte) []byte {
	h := e.newH()
	for _, p := range parts {
		h.Write(p)
	}
	return h.Sum(nil)
}

// upper folds ASCII letters only.
func upper(s string) string {
	b := []byte(s)
	for i, c := range b {
		if 'a' <= c && c <= 'z' {
			b[i] = c - ('a' - 'A')
		}
	}
	return string(b)
}

func (e *Engine) genX(username, password string, salt []byte) []byte {
	// x = H(s | H(U | ':' | p))
	up := e.hash([]byte(upper(username) + ":" + upper(password)))
	return fromHashOutput(e.hash(toHashInput(salt), up))
}

func (e *Engine) genV(x []byte) []byte {
	// v = g^x % N
	v := new(big.Int).Exp(e.g, toInt(x), e.n)
	return fromInt(v, e.size)
}

func (e *Engine) genServerPublicKey(v, b []byte) []byte {
	// B = (kv + g^b) % N
	kv := new(big.Int).Mul(e.k, toInt(v))
	gb := new(big.Int).Exp(e.g, toInt(b), e.n)
	B := kv.Add(kv, gb)
	return fromInt(B.Mod(B, e.n), e.size)
}

func (e *Engine) genClientPublicKey(a []byte) []byte {
	// A = g^a % N
	A := new(big.Int).Exp(e.g, clientExponentToInt(a), e.n)
	return fromInt(A, e.size)
}

func (e *Engine) genClientS(a, B, x, u []byte) []byte {
	// S = (B - (k * g^x)) ^ (a + (u * x)) % N
	xi := toInt(x)
	gx := new(big.Int).Exp(e.g, xi, e.n)
	kgx := gx.Mul(e.k, gx)
	base := new(big.Int).Sub(toInt(B), kgx)
	// Euclidean modulus: base lands in [0, N) even when B < k*g^x.
	base.Mod(base, e.n)
	ux := new(big.Int).Mul(toInt(u), xi)
	exp := ux.Add(toInt(a), ux)
	return fromInt(new(big.Int).Exp(base, exp, e.n), e.size)
}

func (e *Engine) genServerS(A, v, u, b []byte) []byte {
	// S = (A * v^u) ^ b % N
	vu := new(big.Int).Exp(toInt(v), toInt(u), e.n)
	avu := vu.Mul(toInt(A), vu)
	return fromInt(new(big.Int).Exp(avu, toInt(b), e.n), e.size)
}

func (e *Engine) genU(A, B []byte) []byte {
	// u = H(A | B)
	return fromHashOutput(e.hash(toHashInput(A), toHashInput(B)))
}

// trimS drops leading bytes of the reversed S until the remainder starts
// with a non-zero byte and has even length. If no position qualifies the
// buffer is kept whole.
func trimS(s []byte) []byte {
	for i := range s {
		if s[i] != 0 && (len(s)-i)%2 == 0 {
			return s[i:]
		}
	}
	return s
}

func (e *Engine) genInterleaved(S []byte) []byte {
	// K = SHA_Interleave(S)
	s := trimS(toHashInput(S))
	even := make([]byte, 0, len(s)/2+1)
	odd := make([]byte, 0, len(s)/2)
	for i, c := range s {
		if i%2 == 0 {
			even = append(even, c)
		} else {
			odd = append(odd, c)
		}
	}
	g := e.hash(even)
	h := e.hash(odd)
	K := make([]byte, 2*len(g))
	for i := range g {
		K[2*i] = g[i]
		K[2*i+1] = h[i]
	}
	return fromHashOutput(K)
}

func (e *Engine) genClientProof(username string, K, A, B, salt []byte) []byte {
	// M1 = H(H(N) xor H(g) | H(U) | s | A | B | K)
	hu := e.hash([]byte(upper(username)))
	return fromHashOutput(e.hash(
		e.xor,
		hu,
		toHashInput(salt),
		toHashInput(A),
		toHashInput(B),
		toHashInput(K),
	))
}

func (e *Engine) genServerProof(A, M1, K []byte) []byte {
	// M2 = H(A | M1 | K)
	return fromHashOutput(e.hash(toHashInput(A), toHashInput(M1), toHashInput(K)))
}

func (e *Engine) genReconnectProof(username string, clientData, serverData, K []byte) []byte {
	// R = H(U | client_data | server_data | K)
	return fromHashOutput(e.hash(
		[]byte(username),
		toHashInput(clientData),
		toHashInput(serverData),
		toHashInput(K),
	))
}

func (e *Engine) genWorldServerProof(username string, clientSeed, serverSeed, K []byte) []byte {
	// W = H(U | 0 | client_seed | server_seed | K), seeds and digest not reversed.
	return e.hash(
		[]byte(username),
		[]byte{0, 0, 0, 0},
		clientSeed,
		serverSeed,
		toHashInput(K),
	)
}
