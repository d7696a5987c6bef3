package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Config is the full application configuration, loaded once at startup.
type Config struct {
	App     *App     `json:"app" yaml:"app"`
	Server  *Server  `json:"server" yaml:"server"`
	MySQL   *MySQL   `json:"mysql" yaml:"mysql"`
	Redis   *Redis   `json:"redis" yaml:"redis"`
	Jwt     *Jwt     `json:"jwt" yaml:"jwt"`
	Catalog *Catalog `json:"catalog" yaml:"catalog"`
}

type Server struct {
	Http int `json:"http" yaml:"http"`
}

type Jwt struct {
	Secret string `json:"secret" yaml:"secret"`
}

// Catalog tunes the snapshot cache.
type Catalog struct {
	CacheTTLSeconds int `json:"cache_ttl_seconds" yaml:"cache_ttl_seconds"`
}

func New(filename string) *Config {

	content, err := os.ReadFile(filename)
	if err != nil {
		panic(err)
	}

	var conf Config
	if err := yaml.Unmarshal(content, &conf); err != nil {
		panic(fmt.Sprintf("parse %s: %v", filename, err))
	}

	return &conf
}

// Debug reports whether the app runs in debug mode.
func (c *Config) Debug() bool {
	return c.App.Debug
}
