// Package config defines the data structures related to configuration and
// includes functions for loading, validating and dumping the config.
package config

import (
	"fmt"
	"strings"

	"github.com/e12tools/resistor-combinator/pkg/constants"
	"github.com/e12tools/resistor-combinator/pkg/resistor"
	"github.com/e12tools/resistor-combinator/pkg/validation"
	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"
)

// Configuration holds all configuration for resistor-combinator.
type Configuration struct {
	Search  SearchConfig  `yaml:"search"`
	Output  OutputConfig  `yaml:"output,omitempty"`
	Logging LoggingConfig `yaml:"logging,omitempty"`
}

// SearchConfig holds the candidate table and the target range to approximate.
type SearchConfig struct {
	Decades     int       `yaml:"decades"`
	BaseValues  []float64 `yaml:"baseValues,flow"`
	EndValue    float64   `yaml:"endValue"`
	Tolerance   float64   `yaml:"tolerance"`
	TargetStart float64   `yaml:"targetStart"`
	TargetEnd   float64   `yaml:"targetEnd"`
	// Targets replaces the start/end range when non-empty.
	Targets []float64 `yaml:"targets,omitempty,flow"`
	// ResetBetweenTargets starts every target from an empty best match
	// instead of carrying the previous target's best match forward.
	ResetBetweenTargets bool  `yaml:"resetBetweenTargets"`
	ProgressEvery       int64 `yaml:"progressEvery"`
}

// LoggingConfig holds logging configuration options
type LoggingConfig struct {
	Level      string `yaml:"level,omitempty"`      // debug, info, warn, error
	Format     string `yaml:"format,omitempty"`     // json, console
	OutputFile string `yaml:"outputFile,omitempty"` // optional file output
}

// OutputConfig holds report output configuration options
type OutputConfig struct {
	Format string `yaml:"format,omitempty"` // log, csv, xlsx
	File   string `yaml:"file,omitempty"`
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("search.decades", constants.DefaultDecades)
	v.SetDefault("search.baseValues", resistor.E12)
	v.SetDefault("search.endValue", constants.DefaultEndValue)
	v.SetDefault("search.tolerance", constants.DefaultTolerance)
	v.SetDefault("search.targetStart", constants.DefaultTargetStart)
	v.SetDefault("search.targetEnd", constants.DefaultTargetEnd)
	v.SetDefault("search.targets", []float64{})
	v.SetDefault("search.resetBetweenTargets", false)
	v.SetDefault("search.progressEvery", constants.DefaultProgressEvery)
	v.SetDefault("output.format", constants.OutputFormatLog)
	v.SetDefault("output.file", constants.DefaultOutputFile)
	v.SetDefault("logging.level", "")
	v.SetDefault("logging.format", "")
	v.SetDefault("logging.outputFile", "")
}

// LoadConfiguration takes a file path as input and loads the YAML-formatted
// configuration there on top of the built-in defaults. An empty path loads
// the defaults alone. Environment variables prefixed with E12 override both,
// e.g. E12_SEARCH_DECADES=3.
func LoadConfiguration(configPath string) (*Configuration, error) {
	v := viper.New()
	setDefaults(v)

	v.SetEnvPrefix(constants.EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if configPath != "" {
		v.SetConfigFile(configPath)
		v.SetConfigType("yml")

		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("error reading config file, %w", err)
		}
	}

	var configuration Configuration
	err := v.Unmarshal(&configuration)
	if err != nil {
		return nil, fmt.Errorf("unable to decode into struct, %w", err)
	}

	return &configuration, nil
}

// ValidateConfiguration checks the search and output settings. It returns
// warnings for settings that run but may surprise, and an error for settings
// the search cannot run with.
func (c *Configuration) ValidateConfiguration() ([]string, error) {
	validator := validation.SearchValidator{
		Decades:      c.Search.Decades,
		BaseValues:   c.Search.BaseValues,
		EndValue:     c.Search.EndValue,
		Tolerance:    c.Search.Tolerance,
		TargetStart:  c.Search.TargetStart,
		TargetEnd:    c.Search.TargetEnd,
		Targets:      c.Search.Targets,
		OutputFormat: c.Output.Format,
	}
	return validator.ValidateAll()
}

// ToYAML serializes the effective configuration.
func (c *Configuration) ToYAML() ([]byte, error) {
	out, err := yaml.Marshal(c)
	if err != nil {
		return nil, fmt.Errorf("failed to encode configuration: %w", err)
	}
	return out, nil
}
