// SPDX-License-Identifier: MIT

package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
)

// Environment variables read by LoadConfig. A .env file in the working
// directory or up to four parents is loaded first; variables already set in
// the process environment win.
const (
	envOutput        = "LVLINALG_OUTPUT"
	envHeterogeneous = "LVLINALG_HETEROGENEOUS_COMPLEX"
	envLogLevel      = "LVLINALG_LOG_LEVEL"

	envSearchDepth = 5
)

// Defaults used when the environment says nothing.
const (
	DefaultOutput   = outputText
	DefaultLogLevel = zerolog.WarnLevel
)

// Config holds the CLI defaults; flags override every field.
type Config struct {
	Output               string
	HeterogeneousComplex bool
	LogLevel             zerolog.Level
}

// LoadConfig reads Config from the environment after loading .env. A .env
// file that exists but cannot be read or parsed is an error.
func LoadConfig() (Config, error) {
	wd, err := os.Getwd()
	if err != nil {
		return Config{}, fmt.Errorf("working directory: %w", err)
	}
	if err = loadEnvFile(wd); err != nil {
		return Config{}, err
	}

	return configFromEnv(os.Getenv)
}

func configFromEnv(getenv func(string) string) (Config, error) {
	cfg := Config{Output: DefaultOutput, LogLevel: DefaultLogLevel}

	if v := getenv(envOutput); v != "" {
		if !validOutput(v) {
			return Config{}, fmt.Errorf("%s=%q: %w", envOutput, v, errUnknownOutput)
		}
		cfg.Output = v
	}
	if v := getenv(envHeterogeneous); v != "" {
		b, err := strconv.ParseBool(v)
		if err != nil {
			return Config{}, fmt.Errorf("%s=%q: %w", envHeterogeneous, v, err)
		}
		cfg.HeterogeneousComplex = b
	}
	if v := getenv(envLogLevel); v != "" {
		lvl, err := zerolog.ParseLevel(v)
		if err != nil {
			return Config{}, fmt.Errorf("%s=%q: %w", envLogLevel, v, err)
		}
		cfg.LogLevel = lvl
	}

	return cfg, nil
}

// loadEnvFile walks up from dir to the first .env file and loads it.
// No file at all is not an error.
func loadEnvFile(dir string) error {
	for i := 0; i < envSearchDepth; i++ {
		path := filepath.Join(dir, ".env")
		if _, err := os.Stat(path); err == nil {
			if err = godotenv.Load(path); err != nil {
				return fmt.Errorf("%s: %w", path, err)
			}
			return nil
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			break
		}
		dir = parent
	}

	return nil
}
