// Package config loads the cgraph2dot CLI configuration.
//
// Values are layered with koanf: built-in defaults, then a cgraph2dot.yaml
// file, then CGRAPH2DOT_* environment variables, then explicitly set flags.
package config

import "github.com/cgraph2dot/cgraph2dot/internal/demo"

// Default configuration values.
const (
	DefaultTitle  = "Call Graph"
	DefaultOutput = "auto"
	DefaultPort   = 8080
)

// ConfigFileNames are the file names searched for, in order.
var ConfigFileNames = []string{"cgraph2dot.yaml", "cgraph2dot.yml"}

// Config holds the CLI configuration.
type Config struct {
	Verbose      bool        `koanf:"verbose"`
	OutputFormat string      `koanf:"output"`
	Title        string      `koanf:"title"`
	Demo         demo.Inputs `koanf:"demo"`
	Serve        ServeConfig `koanf:"serve"`
}

// ServeConfig holds settings for the live viewer server.
type ServeConfig struct {
	Port  int  `koanf:"port"`
	Watch bool `koanf:"watch"`
}

// Default returns a Config populated with default values.
func Default() *Config {
	return &Config{
		OutputFormat: DefaultOutput,
		Title:        DefaultTitle,
		Demo:         demo.DefaultInputs(),
		Serve: ServeConfig{
			Port:  DefaultPort,
			Watch: true,
		},
	}
}

// defaultsMap is the confmap form of Default.
func defaultsMap() map[string]interface{} {
	d := Default()
	return map[string]interface{}{
		"verbose":          d.Verbose,
		"output":           d.OutputFormat,
		"title":            d.Title,
		"demo.a":           d.Demo.A,
		"demo.b":           d.Demo.B,
		"demo.factorial_n": d.Demo.FactorialN,
		"serve.port":       d.Serve.Port,
		"serve.watch":      d.Serve.Watch,
	}
}
