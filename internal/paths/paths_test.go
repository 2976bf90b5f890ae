package paths

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// withUserConfigDir substitutes the platform lookup for one test.
func withUserConfigDir(t *testing.T, fn func() (string, error)) {
	t.Helper()
	orig := userConfigDir
	userConfigDir = fn
	t.Cleanup(func() { userConfigDir = orig })
}

func TestDefaultConfigDir(t *testing.T) {
	t.Run("appends worktop to the platform config dir", func(t *testing.T) {
		withUserConfigDir(t, func() (string, error) {
			return "/home/op/.config", nil
		})

		got, err := DefaultConfigDir()
		require.NoError(t, err)
		assert.Equal(t, filepath.Join("/home/op/.config", "worktop"), got)
	})

	t.Run("propagates lookup failure", func(t *testing.T) {
		withUserConfigDir(t, func() (string, error) {
			return "", errors.New("$HOME is not defined")
		})

		_, err := DefaultConfigDir()
		assert.Error(t, err)
	})
}

func TestResolveConfigDir(t *testing.T) {
	withUserConfigDir(t, func() (string, error) {
		return "/home/op/.config", nil
	})

	tests := []struct {
		name   string
		flag   string
		envVal string
		want   string
	}{
		{
			name:   "flag wins over env",
			flag:   "/explicit/config",
			envVal: "/env/config",
			want:   "/explicit/config",
		},
		{
			name:   "env wins when flag empty",
			flag:   "",
			envVal: "/env/config",
			want:   "/env/config",
		},
		{
			name:   "platform default when both empty",
			flag:   "",
			envVal: "",
			want:   filepath.Join("/home/op/.config", "worktop"),
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv(EnvConfigDir, tt.envVal)
			got, err := ResolveConfigDir(tt.flag)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestResolveDataDir(t *testing.T) {
	cwd, err := os.Getwd()
	require.NoError(t, err)
	cwdDefault := filepath.Join(cwd, DefaultDataDirName)

	tests := []struct {
		name          string
		flag          string
		configYAMLVal string
		envVal        string
		want          string
	}{
		{
			name:          "flag wins over all",
			flag:          "/flag/data",
			configYAMLVal: "/config/data",
			envVal:        "/env/data",
			want:          "/flag/data",
		},
		{
			name:          "config.yaml wins over env",
			flag:          "",
			configYAMLVal: "/config/data",
			envVal:        "/env/data",
			want:          "/config/data",
		},
		{
			name:          "env wins when flag and config empty",
			flag:          "",
			configYAMLVal: "",
			envVal:        "/env/data",
			want:          "/env/data",
		},
		{
			name:          "CWD default when all empty",
			flag:          "",
			configYAMLVal: "",
			envVal:        "",
			want:          cwdDefault,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv(EnvDataDir, tt.envVal)
			got, err := ResolveDataDir(tt.flag, tt.configYAMLVal)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestResolveDirsReturnAbsolutePaths(t *testing.T) {
	t.Run("relative config flag becomes absolute", func(t *testing.T) {
		t.Setenv(EnvConfigDir, "")
		got, err := ResolveConfigDir("relative/path")
		require.NoError(t, err)
		assert.True(t, filepath.IsAbs(got), "expected absolute path, got %s", got)
	})

	t.Run("relative data config value becomes absolute", func(t *testing.T) {
		t.Setenv(EnvDataDir, "")
		got, err := ResolveDataDir("", "relative/config")
		require.NoError(t, err)
		assert.True(t, filepath.IsAbs(got), "expected absolute path, got %s", got)
	})
}
