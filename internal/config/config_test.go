package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func envLookup(vars map[string]string) LookupFunc {
	return func(key string) (string, bool) {
		value, ok := vars[key]
		return value, ok
	}
}

func writeYAML(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "minigrep.yaml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o600))
	return path
}

func TestNewMissingArguments(t *testing.T) {
	t.Parallel()

	for _, args := range [][]string{nil, {"prog"}, {"prog", "foo"}} {
		_, err := New(args, envLookup(nil))
		assert.ErrorIs(t, err, ErrMissingArguments, "args %v", args)
	}
}

func TestNewResolvesPositionalArguments(t *testing.T) {
	t.Parallel()

	cfg, err := New([]string{"prog", "foo", "bar.txt"}, envLookup(nil))
	require.NoError(t, err)

	assert.Equal(t, "foo", cfg.Query)
	assert.Equal(t, "bar.txt", cfg.Filename)
	assert.True(t, cfg.CaseSensitive)
}

func TestNewIgnoresExtraArguments(t *testing.T) {
	t.Parallel()

	cfg, err := New([]string{"prog", "foo", "bar.txt", "baz", "qux"}, envLookup(nil))
	require.NoError(t, err)

	assert.Equal(t, "foo", cfg.Query)
	assert.Equal(t, "bar.txt", cfg.Filename)
}

func TestNewCaseInsensitiveEnv(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		env  map[string]string
		want bool
	}{
		{name: "unset", env: nil, want: true},
		{name: "empty", env: map[string]string{CaseInsensitiveEnv: ""}, want: false},
		{name: "any value", env: map[string]string{CaseInsensitiveEnv: "false"}, want: false},
		{name: "other variable", env: map[string]string{"CASE_SENSITIVE": "1"}, want: true},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			cfg, err := New([]string{"prog", "q", "f"}, envLookup(tc.env))
			require.NoError(t, err)
			assert.Equal(t, tc.want, cfg.CaseSensitive)
		})
	}
}

func TestNewUsesProcessEnvironmentByDefault(t *testing.T) {
	t.Setenv(CaseInsensitiveEnv, "")

	cfg, err := New([]string{"prog", "q", "f"}, nil)
	require.NoError(t, err)
	assert.False(t, cfg.CaseSensitive)
}

func TestLoadDefaults(t *testing.T) {
	t.Parallel()

	cfg, err := Load([]string{"prog", "q", "f"}, &CLIOverrides{Lookup: envLookup(nil)})
	require.NoError(t, err)

	assert.Equal(t, Config{
		Query:         "q",
		Filename:      "f",
		CaseSensitive: true,
		LogLevel:      defaultLogLevel,
	}, cfg)
}

func TestLoadMissingArguments(t *testing.T) {
	t.Parallel()

	_, err := Load([]string{"prog"}, &CLIOverrides{Lookup: envLookup(nil)})
	require.ErrorIs(t, err, ErrMissingArguments)
}

func TestLoadEnvironment(t *testing.T) {
	t.Parallel()

	cfg, err := Load([]string{"prog", "q", "f"}, &CLIOverrides{Lookup: envLookup(map[string]string{
		logLevelEnv: " DEBUG ",
		logFileEnv:  "/tmp/minigrep.log",
	})})
	require.NoError(t, err)

	assert.Equal(t, "debug", cfg.LogLevel)
	assert.Equal(t, "/tmp/minigrep.log", cfg.LogFile)
}

func TestLoadYAMLOverridesEnvironment(t *testing.T) {
	t.Parallel()

	path := writeYAML(t, "ignore_case: false\nlog_level: info\nlog_file: from-yaml.log\n")

	cfg, err := Load([]string{"prog", "q", "f"}, &CLIOverrides{
		ConfigFile: path,
		Lookup: envLookup(map[string]string{
			CaseInsensitiveEnv: "1",
			logLevelEnv:        "error",
		}),
	})
	require.NoError(t, err)

	assert.True(t, cfg.CaseSensitive)
	assert.Equal(t, "info", cfg.LogLevel)
	assert.Equal(t, "from-yaml.log", cfg.LogFile)
}

func TestLoadYAMLWithoutIgnoreCaseKeepsEnvironment(t *testing.T) {
	t.Parallel()

	path := writeYAML(t, "log_level: error\n")

	cfg, err := Load([]string{"prog", "q", "f"}, &CLIOverrides{
		ConfigFile: path,
		Lookup:     envLookup(map[string]string{CaseInsensitiveEnv: ""}),
	})
	require.NoError(t, err)

	assert.False(t, cfg.CaseSensitive)
	assert.Equal(t, "error", cfg.LogLevel)
}

func TestLoadCLIOverridesYAML(t *testing.T) {
	t.Parallel()

	path := writeYAML(t, "ignore_case: false\nlog_level: info\n")
	level := "debug"
	file := "cli.log"

	cfg, err := Load([]string{"prog", "q", "f"}, &CLIOverrides{
		ConfigFile: path,
		IgnoreCase: true,
		LogLevel:   &level,
		LogFile:    &file,
		Lookup:     envLookup(nil),
	})
	require.NoError(t, err)

	assert.False(t, cfg.CaseSensitive)
	assert.Equal(t, "debug", cfg.LogLevel)
	assert.Equal(t, "cli.log", cfg.LogFile)
}

func TestLoadRejectsInvalidSources(t *testing.T) {
	t.Parallel()

	t.Run("missing file", func(t *testing.T) {
		_, err := Load([]string{"prog", "q", "f"}, &CLIOverrides{
			ConfigFile: filepath.Join(t.TempDir(), "absent.yaml"),
			Lookup:     envLookup(nil),
		})
		assert.ErrorContains(t, err, "load YAML config")
	})

	t.Run("malformed YAML", func(t *testing.T) {
		_, err := Load([]string{"prog", "q", "f"}, &CLIOverrides{
			ConfigFile: writeYAML(t, "ignore_case: [unterminated\n"),
			Lookup:     envLookup(nil),
		})
		assert.ErrorContains(t, err, "parse YAML")
	})

	t.Run("unknown log level", func(t *testing.T) {
		level := "verbose"
		_, err := Load([]string{"prog", "q", "f"}, &CLIOverrides{
			LogLevel: &level,
			Lookup:   envLookup(nil),
		})
		assert.ErrorContains(t, err, "invalid configuration")
	})
}
