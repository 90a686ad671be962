package commands

import (
	"fmt"

	"github.com/btcsuite/btcd/chaincfg"
)

//CLIConfig contains the configuration shared by all hdaddr commands
type CLIConfig struct {
	ConfigDir string `mapstructure:"config-dir"`
	LogLevel  string `mapstructure:"log"`
	LogFile   string `mapstructure:"log-file"`
	Network   string `mapstructure:"network"`

	// derive
	Start   uint32 `mapstructure:"start"`
	Count   uint32 `mapstructure:"count"`
	Workers int    `mapstructure:"workers"`

	// keygen
	Uncompressed bool `mapstructure:"uncompressed"`

	// verify
	Strict bool `mapstructure:"strict"`
}

//NewDefaultCLIConfig creates a CLIConfig with default values
func NewDefaultCLIConfig() *CLIConfig {
	return &CLIConfig{
		ConfigDir: ".",
		LogLevel:  "info",
		Network:   "mainnet",
		Start:     0,
		Count:     20,
		Workers:   1,
	}
}

// Params returns the chain parameters of the configured network.
func (c *CLIConfig) Params() (*chaincfg.Params, error) {
	switch c.Network {
	case "mainnet":
		return &chaincfg.MainNetParams, nil
	case "testnet":
		return &chaincfg.TestNet3Params, nil
	case "regtest":
		return &chaincfg.RegressionNetParams, nil
	}
	return nil, fmt.Errorf("unknown network %q (mainnet, testnet, regtest)", c.Network)
}
