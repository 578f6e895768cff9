// Package config loads command-line defaults from a YAML file and the
// environment.
package config

import (
	"math/big"
	"strings"
)

// Config is the root configuration of the num2words commands.
type Config struct {
	Lang    string    `yaml:"lang"    env:"NUM2WORDS_LANG"    env-default:"auto"`
	Scale   string    `yaml:"scale"   env:"NUM2WORDS_SCALE"`
	Gender  string    `yaml:"gender"  env:"NUM2WORDS_GENDER"  env-default:"masculine"`
	Max     string    `yaml:"max"     env:"NUM2WORDS_MAX"`
	Ordinal bool      `yaml:"ordinal" env:"NUM2WORDS_ORDINAL" env-default:"true"`
	Log     LogConfig `yaml:"log"`
}

// LogConfig holds logging settings.
type LogConfig struct {
	Level  string `yaml:"level"  env:"LOG_LEVEL"  env-default:"warn"`
	Format string `yaml:"format" env:"LOG_FORMAT" env-default:"text"`
}

// Limit returns Max as an integer, or nil when Max is empty.
// Max must have passed Validate.
func (c *Config) Limit() *big.Int {
	s := strings.TrimSpace(c.Max)
	if s == "" {
		return nil
	}
	n, ok := new(big.Int).SetString(s, 10)
	if !ok {
		return nil
	}
	return n
}
