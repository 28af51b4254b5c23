package srp

import "math/big"

// Buffers are exchanged in the order the deployed peers print them. The
// big integer engine reads them most significant byte first; hash inputs
// see them reversed. Each conversion has its own function, including the
// ones that are numerically equivalent; do not fold them together.

// reverse returns a reversed copy of b.
func reverse(b []byte) []byte {
	r := make([]byte, len(b))
	for i, c := range b {
		r[len(b)-1-i] = c
	}
	return r
}

// toInt imports an operand most significant byte first.
func toInt(b []byte) *big.Int {
	return new(big.Int).SetBytes(b)
}

// fromInt exports n most significant byte first, left padded to size bytes.
func fromInt(n *big.Int, size int) []byte {
	return n.FillBytes(make([]byte, size))
}

// clientExponentToInt imports the client private exponent: the buffer is
// reversed and the result read least significant byte first.
func clientExponentToInt(a []byte) *big.Int {
	return littleEndianToInt(reverse(a))
}

func littleEndianToInt(b []byte) *big.Int {
	return new(big.Int).SetBytes(reverse(b))
}

// xorConstantBytes exports the client proof constant least significant
// byte first, padded to size bytes.
func xorConstantBytes(n *big.Int, size int) []byte {
	return reverse(fromInt(n, size))
}

// toHashInput reverses a buffer before it is fed to the hash.
func toHashInput(b []byte) []byte {
	return reverse(b)
}

// fromHashOutput reverses a digest back into API order.
func fromHashOutput(d []byte) []byte {
	return reverse(d)
}
