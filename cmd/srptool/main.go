// Command srptool prints SRP handshake transcripts and runs the session
// cipher over hex input. It is meant for producing and checking test
// vectors against other implementations.
package main

import (
	"crypto/rand"
	"encoding/hex"
	"flag"
	"fmt"

	"wowsrp/config"
	"wowsrp/crypto/sessioncipher"
	"wowsrp/crypto/srp"

	"github.com/golang/glog"
	"github.com/kr/pretty"
)

var (
	configPath = flag.String("config", "", "YAML file overriding the protocol parameters")
	mode       = flag.String("mode", "handshake", "one of handshake, encrypt, decrypt")

	username = flag.String("user", "PLAYER", "account name")
	password = flag.String("pass", "PASSWORD", "account password")
	saltHex  = flag.String("salt", "", "hex salt; random if empty")
	aHex     = flag.String("a", "", "hex client private key; random if empty")
	bHex     = flag.String("b", "", "hex server private key; random if empty")

	keyHex  = flag.String("key", "", "hex session key for encrypt/decrypt")
	dataHex = flag.String("data", "", "hex input for encrypt/decrypt")
)

func main() {
	flag.Parse()

	params := srp.DefaultParams()
	if *configPath != "" {
		cfg, err := config.Load(*configPath)
		if err != nil {
			glog.Exitf("loading config: %v", err)
		}
		if params, err = cfg.Params(); err != nil {
			glog.Exitf("config: %v", err)
		}
	}
	e, err := srp.NewEngine(params)
	if err != nil {
		glog.Exitf("engine: %v", err)
	}

	switch *mode {
	case "handshake":
		in := handshakeInput{
			Username: *username,
			Password: *password,
			Salt:     hexOrRandom("salt", *saltHex, srp.SaltSize),
			a:        hexOrRandom("a", *aHex, e.KeySize()),
			b:        hexOrRandom("b", *bHex, e.KeySize()),
		}
		t, err := runHandshake(e, in)
		if err != nil {
			glog.Exitf("handshake: %v", err)
		}
		glog.Infof("handshake for %s: match=%v", t.Username, t.Match)
		fmt.Printf("%# v\n", pretty.Formatter(t))
	case "encrypt", "decrypt":
		out, err := runCipher(*mode, *keyHex, *dataHex)
		if err != nil {
			glog.Exitf("%s: %v", *mode, err)
		}
		fmt.Println(out)
	default:
		glog.Exitf("unknown mode %q", *mode)
	}
	glog.Flush()
}

func runCipher(mode, keyHex, dataHex string) (string, error) {
	key, err := hex.DecodeString(keyHex)
	if err != nil {
		return "", fmt.Errorf("key: %w", err)
	}
	data, err := hex.DecodeString(dataHex)
	if err != nil {
		return "", fmt.Errorf("data: %w", err)
	}
	f := sessioncipher.Encrypt
	if mode == "decrypt" {
		f = sessioncipher.Decrypt
	}
	out, err := f(data, key)
	if err != nil {
		return "", err
	}
	return hex.EncodeToString(out), nil
}

func hexOrRandom(name, s string, n int) []byte {
	if s != "" {
		b, err := hex.DecodeString(s)
		if err != nil {
			glog.Exitf("%s: %v", name, err)
		}
		return b
	}
	b := make([]byte, n)
	if _, err := rand.Read(b); err != nil {
		panic(err)
	}
	glog.V(1).Infof("random %s: %x", name, b)
	return b
}
