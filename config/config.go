// Package config loads engine settings from flags, the environment
// (WEBWORDS_ prefix), and an optional webwords.yaml file, in that order of
// precedence.
package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/rs/zerolog"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

const (
	keyLexiconPath    = "lexicon-path"
	keyDefaultLexicon = "default-lexicon"
	keyLogLevel       = "log-level"
	keyLookupAttempts = "lookup-attempts"
	keyConfigFile     = "config"
)

type Config struct {
	LexiconPath    string `mapstructure:"lexicon-path"`
	DefaultLexicon string `mapstructure:"default-lexicon"`
	LogLevel       string `mapstructure:"log-level"`
	// LookupAttempts is how many times a remote dictionary lookup is tried
	// before its error is handed back to the game.
	LookupAttempts uint `mapstructure:"lookup-attempts"`
}

// RegisterFlags adds the configuration flags to fs.
func RegisterFlags(fs *pflag.FlagSet) {
	fs.String(keyLexiconPath, "./data/lexica", "directory holding word lists, one <name>.txt per lexicon")
	fs.String(keyDefaultLexicon, "sowpods", "the default lexicon to use")
	fs.String(keyLogLevel, "info", "zerolog level: debug, info, warn, error, disabled")
	fs.Uint(keyLookupAttempts, 3, "attempts for a dictionary lookup")
	fs.String(keyConfigFile, "", "path to a config file; defaults to ./webwords.yaml if present")
}

// Load parses args as command-line flags and fills in c.
func (c *Config) Load(args []string) error {
	fs := pflag.NewFlagSet("webwords", pflag.ContinueOnError)
	RegisterFlags(fs)
	if err := fs.Parse(args); err != nil {
		return err
	}
	return c.LoadFlags(fs)
}

// LoadFlags fills in c from an already parsed flag set holding the flags
// added by RegisterFlags.
func (c *Config) LoadFlags(fs *pflag.FlagSet) error {
	v := viper.New()
	if err := v.BindPFlags(fs); err != nil {
		return err
	}

	v.SetEnvPrefix("WEBWORDS")
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()

	if cfgFile := v.GetString(keyConfigFile); cfgFile != "" {
		v.SetConfigFile(cfgFile)
	} else {
		v.SetConfigName("webwords")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
	}
	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return fmt.Errorf("error reading config file: %w", err)
		}
	}

	if err := v.Unmarshal(c); err != nil {
		return fmt.Errorf("error unmarshaling config: %w", err)
	}
	if c.LookupAttempts == 0 {
		c.LookupAttempts = 1
	}
	return nil
}

// SetLogLevel applies LogLevel to the global zerolog logger.
func (c *Config) SetLogLevel() error {
	if c.LogLevel == "" {
		return nil
	}
	lvl, err := zerolog.ParseLevel(c.LogLevel)
	if err != nil {
		return err
	}
	zerolog.SetGlobalLevel(lvl)
	return nil
}
