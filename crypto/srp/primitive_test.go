package srp

import (
	"math/big"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTrimS(t *testing.T) {
	tests := []struct {
		name string
		in   []byte
		want []byte
	}{
		{"nothing to trim", []byte{1, 2, 3, 4}, []byte{1, 2, 3, 4}},
		{"one zero", []byte{0, 1, 2, 3, 4, 5}, []byte{2, 3, 4, 5}},
		{"two zeros", []byte{0, 0, 2, 3, 4, 5}, []byte{2, 3, 4, 5}},
		{"odd suffix skips a non-zero byte", []byte{0, 9, 5, 3}, []byte{5, 3}},
		{"no qualifying position", []byte{0, 9, 0, 3}, []byte{0, 9, 0, 3}},
		{"all zero kept whole", []byte{0, 0, 0, 0}, []byte{0, 0, 0, 0}},
		{"odd length", []byte{7, 1, 2}, []byte{1, 2}},
		{"odd length single byte", []byte{7}, []byte{7}},
		{"empty", []byte{}, []byte{}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, trimS(tt.in))
		})
	}
}

func TestCodec(t *testing.T) {
	b := []byte{0x01, 0x02, 0x03}
	assert.Equal(t, []byte{0x03, 0x02, 0x01}, reverse(b))
	assert.Equal(t, []byte{0x01, 0x02, 0x03}, b, "reverse must not modify its input")

	assert.Equal(t, int64(0x010203), toInt(b).Int64())
	assert.Equal(t, int64(0x030201), littleEndianToInt(b).Int64())
	assert.Equal(t, []byte{0, 0, 0x01, 0x02, 0x03}, fromInt(big.NewInt(0x010203), 5))

	// The reversed little-endian import of a is the same integer as the
	// plain import.
	a := []byte{0xA4, 0x7D, 0xD4, 0x00, 0x70}
	assert.Zero(t, toInt(a).Cmp(clientExponentToInt(a)))

	assert.Equal(t, []byte{0xDD, 0x7B, 0x00, 0x00}, xorConstantBytes(big.NewInt(0x7BDD), 4))
}

func TestXorConstantBytes(t *testing.T) {
	x := xorConstantBytes(DefaultParams().XorConstant, 20)
	assert.Len(t, x, 20)
	assert.Equal(t, byte(0xDD), x[0])
	assert.Equal(t, byte(0xA7), x[19])
}

func TestUpper(t *testing.T) {
	assert.Equal(t, "PLAYER:HUNTER2", upper("Player:hunter2"))
	// Only ASCII letters fold.
	assert.Equal(t, "äB", upper("äb"))
}
