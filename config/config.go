// Package config loads settings from command-line flags and HANGMAN_*
// environment variables.
package config

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

type Config struct {
	v *viper.Viper
}

// Load parses args and binds environment variables. Flags win over the
// environment, which wins over defaults.
func (c *Config) Load(args []string) error {
	c.v = viper.New()

	fs := pflag.NewFlagSet("hangman", pflag.ContinueOnError)
	fs.String("word-file", "./data/words.txt", "path to the newline-delimited word list")
	fs.Int("max-guesses", 5, "wrong guesses allowed per round")
	fs.Int64("seed", 0, "random seed for tie-breaks; 0 picks one at startup")
	fs.Bool("debug", false, "debug logging")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if err := c.v.BindPFlags(fs); err != nil {
		return err
	}
	c.v.SetEnvPrefix("hangman")
	c.v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	c.v.AutomaticEnv()
	return nil
}

// AdjustRelativePaths anchors relative file settings at the executable's
// directory, so the binary finds its data files when started from anywhere.
func (c *Config) AdjustRelativePaths(basepath string) {
	wf := c.v.GetString("word-file")
	if !filepath.IsAbs(wf) {
		c.v.Set("word-file", filepath.Join(basepath, wf))
	}
}

func (c *Config) GetString(key string) string {
	return c.v.GetString(key)
}

func (c *Config) GetInt(key string) int {
	return c.v.GetInt(key)
}

func (c *Config) GetInt64(key string) int64 {
	return c.v.GetInt64(key)
}

func (c *Config) GetBool(key string) bool {
	return c.v.GetBool(key)
}

func (c *Config) Set(key string, value any) {
	c.v.Set(key, value)
}

// SanitizedSettings renders the settings for the startup log line.
func (c *Config) SanitizedSettings() string {
	return fmt.Sprintf("word-file: %s max-guesses: %d debug: %v",
		c.v.GetString("word-file"), c.v.GetInt("max-guesses"), c.v.GetBool("debug"))
}
