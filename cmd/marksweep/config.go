// ABOUTME: YAML configuration for the demo harness
// ABOUTME: Controls the collector threshold and operand stack capacity

package main

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v2"

	"github.com/abdullahmahfouz/Mark-Sweep/vm"
)

// config is the harness configuration file layout
type config struct {
	InitialThreshold int `yaml:"initial_threshold"`
	StackCapacity    int `yaml:"stack_capacity"`
}

// defaultConfig returns the collector defaults
func defaultConfig() config {
	return config{
		InitialThreshold: vm.DefaultInitialThreshold,
		StackCapacity:    vm.DefaultStackCapacity,
	}
}

// loadConfig reads a YAML config file, filling unset fields with defaults
func loadConfig(path string) (config, error) {
	cfg := defaultConfig()

	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, err
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("failed to parse %s: %w", path, err)
	}
	if cfg.InitialThreshold < 0 {
		return cfg, fmt.Errorf("%s: initial_threshold must not be negative", path)
	}
	if cfg.StackCapacity < 0 {
		return cfg, fmt.Errorf("%s: stack_capacity must not be negative", path)
	}
	return cfg, nil
}
