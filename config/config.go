// Package config is for app wide settings that are unmarshalled
// from Viper (see: /cmd)
package config

import (
	"log"

	"github.com/spf13/viper"
)

// Version is printed by the --version flag of every seg-suite tool.
const Version = "1.08"

// Config is the root-level settings struct and is a mix of settings
// from the environment (prefix SEG_) and command line flags that the
// commands bind into Viper
type Config struct {
	// pprof mode for the hot paths: "", "cpu" or "mem"
	Profile string `mapstructure:"profile"`

	// forward-segment number: pivot records so this segment is
	// forward-stranded (0 = off)
	Forward int `mapstructure:"forward"`

	// whether to write alignment number/position columns
	Alignments bool `mapstructure:"alignments"`
}

// New returns a new Config struct populated by Viper settings
// (environment variables and/or command line arguments)
func New() Config {
	viper.SetEnvPrefix("SEG")
	viper.AutomaticEnv()

	viper.SetDefault("profile", "")
	viper.SetDefault("forward", 0)
	viper.SetDefault("alignments", false)

	var c Config
	if err := viper.Unmarshal(&c); err != nil {
		log.Fatalf("unable to decode settings into struct, %v", err)
	}
	return c
}
