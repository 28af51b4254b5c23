package main

import (
	"bytes"
	"encoding/hex"
	"fmt"

	"wowsrp/crypto/srp"
)

type handshakeInput struct {
	Username string
	Password string
	Salt     []byte
	a, b     []byte
}

// transcript is every value both peers derive during one logon, hex encoded.
type transcript struct {
	Username        string
	Salt            string
	Verifier        string
	ClientPublicKey string
	ServerPublicKey string
	U               string
	X               string
	ClientS         string
	ServerS         string
	SessionKey      string
	ClientProof     string
	ServerProof     string
	Match           bool
}

// runHandshake plays both sides of a logon with fixed secrets and reports
// whether they agree on S, K and M1.
func runHandshake(e *srp.Engine, in handshakeInput) (*transcript, error) {
	v, err := e.Verifier(in.Username, in.Password, in.Salt)
	if err != nil {
		return nil, fmt.Errorf("verifier: %w", err)
	}

	// Client sends A.
	A, err := e.ClientPublicKey(in.a)
	if err != nil {
		return nil, fmt.Errorf("client public key: %w", err)
	}
	if err := e.CheckPublicKey(A); err != nil {
		return nil, err
	}

	// Server answers with salt and B.
	B, err := e.ServerPublicKey(v, in.b)
	if err != nil {
		return nil, fmt.Errorf("server public key: %w", err)
	}
	if err := e.CheckPublicKey(B); err != nil {
		return nil, err
	}
	u, err := e.U(A, B)
	if err != nil {
		return nil, err
	}

	// Client side.
	x, err := e.X(in.Username, in.Password, in.Salt)
	if err != nil {
		return nil, err
	}
	cS, err := e.ClientS(in.a, B, x, u)
	if err != nil {
		return nil, fmt.Errorf("client S: %w", err)
	}
	cK, err := e.SessionKey(cS)
	if err != nil {
		return nil, err
	}
	cM1, err := e.ClientProof(in.Username, cK, A, B, in.Salt)
	if err != nil {
		return nil, err
	}

	// Server side.
	sS, err := e.ServerS(A, v, u, in.b)
	if err != nil {
		return nil, fmt.Errorf("server S: %w", err)
	}
	sK, err := e.SessionKey(sS)
	if err != nil {
		return nil, err
	}
	sM1, err := e.ClientProof(in.Username, sK, A, B, in.Salt)
	if err != nil {
		return nil, err
	}
	M2, err := e.ServerProof(A, sM1, sK)
	if err != nil {
		return nil, err
	}

	return &transcript{
		Username:        in.Username,
		Salt:            hex.EncodeToString(in.Salt),
		Verifier:        hex.EncodeToString(v),
		ClientPublicKey: hex.EncodeToString(A),
		ServerPublicKey: hex.EncodeToString(B),
		U:               hex.EncodeToString(u),
		X:               hex.EncodeToString(x),
		ClientS:         hex.EncodeToString(cS),
		ServerS:         hex.EncodeToString(sS),
		SessionKey:      hex.EncodeToString(sK),
		ClientProof:     hex.EncodeToString(cM1),
		ServerProof:     hex.EncodeToString(M2),
		Match:           bytes.Equal(cS, sS) && bytes.Equal(cK, sK) && bytes.Equal(cM1, sM1),
	}, nil
}
