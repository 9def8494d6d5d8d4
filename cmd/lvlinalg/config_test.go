// SPDX-License-Identifier: MIT

package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func env(m map[string]string) func(string) string {
	return func(k string) string { return m[k] }
}

func TestConfigFromEnv(t *testing.T) {
	cfg, err := configFromEnv(env(nil))
	require.NoError(t, err)
	assert.Equal(t, Config{Output: DefaultOutput, LogLevel: DefaultLogLevel}, cfg)

	cfg, err = configFromEnv(env(map[string]string{
		envOutput:        "json",
		envHeterogeneous: "true",
		envLogLevel:      "debug",
	}))
	require.NoError(t, err)
	assert.Equal(t, Config{Output: outputJSON, HeterogeneousComplex: true, LogLevel: zerolog.DebugLevel}, cfg)

	bad := []map[string]string{
		{envOutput: "xml"},
		{envHeterogeneous: "maybe"},
		{envLogLevel: "loud"},
	}
	for _, m := range bad {
		_, err = configFromEnv(env(m))
		assert.Error(t, err, "%v", m)
	}
	_, err = configFromEnv(env(map[string]string{envOutput: "xml"}))
	assert.ErrorIs(t, err, errUnknownOutput)
}

func TestLookupPolicy(t *testing.T) {
	p, err := lookupPolicy("")
	require.NoError(t, err)
	assert.Equal(t, policies[defaultPolicyName], p)

	p, err = lookupPolicy("widen-float")
	require.NoError(t, err)
	assert.Equal(t, widenFloat{}, p)

	_, err = lookupPolicy("nope")
	assert.ErrorIs(t, err, errUnknownPolicy)
	assert.Equal(t, []string{"default", "widen-float"}, policyNames())
}

func TestLoadEnvFile(t *testing.T) {
	root := t.TempDir()
	nested := filepath.Join(root, "a", "b")
	require.NoError(t, os.MkdirAll(nested, 0o755))

	// No .env anywhere up the search path.
	require.NoError(t, loadEnvFile(nested))

	const key = "LVLINALG_TEST_ENV_FILE"
	t.Cleanup(func() { os.Unsetenv(key) })
	require.NoError(t, os.WriteFile(filepath.Join(root, ".env"), []byte(key+"=yaml\n"), 0o600))
	require.NoError(t, loadEnvFile(nested))
	assert.Equal(t, "yaml", os.Getenv(key))

	// A malformed file is reported with its path, not skipped.
	broken := filepath.Join(nested, ".env")
	require.NoError(t, os.WriteFile(broken, []byte(key+"=\"unterminated\n"), 0o600))
	err := loadEnvFile(nested)
	require.Error(t, err)
	assert.Contains(t, err.Error(), broken)
}
