// Package config loads typed configuration structs from environment
// variables.
//
// Load parses `env`-tagged struct fields via github.com/caarlos0/env and, on
// first use, attempts to read a .env file from the working directory with
// godotenv (a missing file is fine). Each struct type is parsed once per
// process and cached, so repeated loads of the same type are cheap and
// consistent.
//
// # Usage
//
//	type HTTPConfig struct {
//	    Addr string `env:"HTTP_ADDR" envDefault:":8080"`
//	}
//
//	var cfg HTTPConfig
//	config.MustLoad(&cfg)
package config
