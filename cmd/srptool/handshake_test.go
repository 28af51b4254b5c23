package main

import (
	"encoding/hex"
	"testing"

	"wowsrp/crypto/sessioncipher"
	"wowsrp/crypto/srp"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mustHex(t *testing.T, s string) []byte {
	t.Helper()
	b, err := hex.DecodeString(s)
	require.NoError(t, err)
	return b
}

func TestRunHandshake(t *testing.T) {
	e := srp.MustNewEngine(srp.DefaultParams())
	tr, err := runHandshake(e, handshakeInput{
		Username: "username123",
		Password: "password123",
		Salt:     mustHex(t, "cd226e6350aa40a1bf93c56f869363a6af001f52bb4d281f177c256c708b971f"),
		a:        mustHex(t, "78f8d582b78880f7dd55a72cb2e89da25f9581f8610761e8f44736bb868216a4"),
		b:        mustHex(t, "c467f49eef52d9fde4bf452ac4ea10eb21b3c5"),
	})
	require.NoError(t, err)

	assert.True(t, tr.Match)
	assert.Equal(t, "0484a03b682d30a31310c1dd5eaa09ff5e1495cc442c31fbd2677d6b21e3e954", tr.Verifier)
	assert.Equal(t, "314c456ad4785662771e766e6997f5b02a3b1069ac3fc8c31b28b859e0c88498", tr.ClientPublicKey)
	assert.Equal(t, "1b53d3ebb11be1d9655f4551510f6b5744a11c6fc0cf1d21b665acd4ccfe5a5d", tr.ServerPublicKey)
	assert.Equal(t, "607cf9998143f60e7178fc3cc612827b373d1849", tr.U)
	assert.Equal(t, "bb452921bbc4c73c0a59a9bcdb50174ae05c78af", tr.X)
	assert.Equal(t, "5199ed9ca852c03167a5bb7ab502d37603a281679b6d07e12e84c0f69c9aa84c", tr.ServerS)
	assert.Equal(t, tr.ServerS, tr.ClientS)
	assert.Equal(t, "3612544a88232b29e510f7f2ca257c79d4172037cbe6359c6a3b718696f20d76dabdbace0ff9fceb", tr.SessionKey)
	assert.Equal(t, "7a0c28c344ee2652511f06d1820e56cb35a3fd12", tr.ClientProof)
	assert.Equal(t, "a484477004550f57d7ac483d4d1373f07db5fce1", tr.ServerProof)
}

func TestRunHandshakeWrongPassword(t *testing.T) {
	e := srp.MustNewEngine(srp.DefaultParams())
	in := handshakeInput{
		Username: "username123",
		Password: "password123",
		Salt:     mustHex(t, "cd226e6350aa40a1bf93c56f869363a6af001f52bb4d281f177c256c708b971f"),
		a:        mustHex(t, "78f8d582b78880f7dd55a72cb2e89da25f9581f8610761e8f44736bb868216a4"),
		b:        mustHex(t, "c467f49eef52d9fde4bf452ac4ea10eb21b3c5"),
	}
	good, err := runHandshake(e, in)
	require.NoError(t, err)

	in.Password = "password124"
	bad, err := runHandshake(e, in)
	require.NoError(t, err)
	// Both sides derive from the same password here, so they still agree,
	// but on different values.
	assert.True(t, bad.Match)
	assert.NotEqual(t, good.Verifier, bad.Verifier)
	assert.NotEqual(t, good.SessionKey, bad.SessionKey)
}

func TestRunHandshakeBadSalt(t *testing.T) {
	e := srp.MustNewEngine(srp.DefaultParams())
	_, err := runHandshake(e, handshakeInput{
		Username: "u",
		Password: "p",
		Salt:     []byte{1, 2, 3},
		a:        []byte{1},
		b:        []byte{1},
	})
	assert.ErrorIs(t, err, srp.ErrInvalidLength)
}

func TestRunCipher(t *testing.T) {
	const (
		key  = "2EFEE7B0C177EBBDFF6676C56EFC2339BE9CAD14BF8B54BB5A86FBF81F6D424AA23CC9A3149FB175"
		data = "3d9ae196ef4f5be4df9ea8b9f4dd95fe68fe58b653cf1c2dbeaa0be167db9b27df32fd230f2eab9bd7e9b2f3fbf335d381ca"
	)
	out, err := runCipher("encrypt", key, data)
	require.NoError(t, err)
	assert.Equal(t, "13777da3d109b912322a08841e3ff5bc92f4e98b77bb03997da999b22ae0b926a3b1e56580314b3932499ee11b9f7deb6915", out)

	out, err = runCipher("decrypt", key, data)
	require.NoError(t, err)
	assert.Equal(t, "13a3a0059817e73404d97cd455159b50d40af74a22f719aacb6a9a2e991982c61a6f0285f880cc8512ec2ef1c98fa923512f", out)

	_, err = runCipher("encrypt", "", data)
	assert.ErrorIs(t, err, sessioncipher.ErrEmptyKey)

	_, err = runCipher("encrypt", "zz", data)
	assert.Error(t, err)
}
