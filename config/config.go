// Package config loads SRP protocol parameters from YAML.
package config

import (
	"fmt"
	"math/big"
	"os"
	"strings"

	"wowsrp/crypto/cryptoutil"
	"wowsrp/crypto/srp"

	"gopkg.in/yaml.v3"
)

// Config is the on-disk configuration.
type Config struct {
	SRP SRPSettings `yaml:"srp"`
}

// SRPSettings overrides the default group. Empty fields keep the default.
type SRPSettings struct {
	Modulus     string `yaml:"modulus"`      // hex, most significant byte first
	Generator   int64  `yaml:"generator"`
	Multiplier  int64  `yaml:"multiplier"`
	XorConstant string `yaml:"xor_constant"` // hex, most significant byte first
	Hash        string `yaml:"hash"`
}

// Load reads and parses the configuration file at path.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}
	return Parse(data)
}

// Parse decodes and validates a YAML document.
func Parse(data []byte) (*Config, error) {
	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Validate checks the settings without building an engine.
func (c *Config) Validate() error {
	s := c.SRP
	if s.Generator < 0 {
		return fmt.Errorf("srp.generator must be positive, got %d", s.Generator)
	}
	if s.Multiplier < 0 {
		return fmt.Errorf("srp.multiplier must be positive, got %d", s.Multiplier)
	}
	if s.Modulus != "" {
		if _, err := parseHex("srp.modulus", s.Modulus); err != nil {
			return err
		}
	}
	if s.XorConstant != "" {
		if _, err := parseHex("srp.xor_constant", s.XorConstant); err != nil {
			return err
		}
	}
	if _, err := cryptoutil.NewHash(s.Hash); err != nil {
		return fmt.Errorf("srp.hash: %w", err)
	}
	return nil
}

// Params returns the protocol parameters, defaults filled in.
func (c *Config) Params() (srp.Params, error) {
	if err := c.Validate(); err != nil {
		return srp.Params{}, err
	}
	p := srp.DefaultParams()
	s := c.SRP
	if s.Modulus != "" {
		p.N, _ = parseHex("srp.modulus", s.Modulus)
	}
	if s.XorConstant != "" {
		p.XorConstant, _ = parseHex("srp.xor_constant", s.XorConstant)
	}
	if s.Generator != 0 {
		p.G = big.NewInt(s.Generator)
	}
	if s.Multiplier != 0 {
		p.K = big.NewInt(s.Multiplier)
	}
	if s.Hash != "" {
		p.Hash = s.Hash
	}
	return p, nil
}

func parseHex(field, s string) (*big.Int, error) {
	s = strings.TrimPrefix(strings.TrimPrefix(strings.TrimSpace(s), "0x"), "0X")
	n, ok := new(big.Int).SetString(s, 16)
	if !ok || n.Sign() <= 0 {
		return nil, fmt.Errorf("%s: invalid hex value %q", field, s)
	}
	return n, nil
}
