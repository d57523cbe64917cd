package main

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/cwbudde/algo-rednoise/dsp/rednoise"
)

// fileConfig is the YAML form of the block schedule. Zero values keep the
// defaults.
type fileConfig struct {
	StartWidth int     `yaml:"startwidth"`
	EndWidth   int     `yaml:"endwidth"`
	EndFreq    float64 `yaml:"endfreq"`
}

func loadConfigFile(path string) (fileConfig, error) {
	var fc fileConfig
	data, err := os.ReadFile(path)
	if err != nil {
		return fc, fmt.Errorf("read config: %w", err)
	}
	if err := yaml.Unmarshal(data, &fc); err != nil {
		return fc, fmt.Errorf("parse config %s: %w", path, err)
	}
	return fc, nil
}

func (fc fileConfig) options() []rednoise.Option {
	return []rednoise.Option{
		rednoise.WithStartWidth(fc.StartWidth),
		rednoise.WithEndWidth(fc.EndWidth),
		rednoise.WithEndFreq(fc.EndFreq),
	}
}
