package commands

import (
	"strings"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var (
	_config = NewDefaultCLIConfig()
	logger  *logrus.Logger
)

//NewRootCmd returns the root command for hdaddr with all sub commands
func NewRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:               "hdaddr",
		Short:             "secp256k1 keys, signatures and HD receive addresses",
		PersistentPreRunE: loadConfig,
		TraverseChildren:  true,
	}

	defaults := NewDefaultCLIConfig()
	cmd.PersistentFlags().String("config-dir", defaults.ConfigDir, "Directory searched for hdaddr.toml (.json, .yaml also work)")
	cmd.PersistentFlags().String("log", defaults.LogLevel, "debug, info, warn, error, fatal, panic")
	cmd.PersistentFlags().String("log-file", defaults.LogFile, "Also write log entries to this file")
	cmd.PersistentFlags().String("network", defaults.Network, "mainnet, testnet, regtest")

	cmd.AddCommand(
		NewDecodeCmd(),
		NewDeriveCmd(),
		NewKeygenCmd(),
		NewSignCmd(),
		NewVerifyCmd(),
	)
	return cmd
}

/*******************************************************************************
* CONFIG
*******************************************************************************/

func loadConfig(cmd *cobra.Command, args []string) error {
	conf, err := bindFlagsLoadViper(cmd)
	if err != nil {
		return err
	}
	_config = conf

	logger = newLogger(_config, cmd.ErrOrStderr())

	logger.WithFields(logrus.Fields{
		"ConfigDir": _config.ConfigDir,
		"LogLevel":  _config.LogLevel,
		"LogFile":   _config.LogFile,
		"Network":   _config.Network,
	}).Debug(strings.ToUpper(cmd.Name()))

	return nil
}

// Bind all flags and read the config into viper
func bindFlagsLoadViper(cmd *cobra.Command) (*CLIConfig, error) {
	v := viper.New()

	// Register flags with viper. Include flags from this command and all other
	// persistent flags from the parent
	if err := v.BindPFlags(cmd.Flags()); err != nil {
		return nil, err
	}

	// HDADDR_LOG_FILE overrides --log-file and so on
	v.SetEnvPrefix("hdaddr")
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()

	// first unmarshal to read from CLI flags
	conf := NewDefaultCLIConfig()
	if err := v.Unmarshal(conf); err != nil {
		return nil, err
	}

	// look for config file in [config-dir]/hdaddr.toml (.json, .yaml also work)
	v.SetConfigName("hdaddr")
	v.AddConfigPath(conf.ConfigDir)

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, err
		}
	}

	// second unmarshal to read from config file
	if err := v.Unmarshal(conf); err != nil {
		return nil, err
	}
	return conf, nil
}
