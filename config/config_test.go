package config_test

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/alphahuman-xyz/alphahuman-go/config"
	"github.com/stretchr/testify/require"
)

func TestLoad(t *testing.T) {
	require := require.New(t)

	dir := t.TempDir()
	path := filepath.Join(dir, "profile.yaml")
	data := []byte(`token: test-api-key
baseUrl: https://api.alphahuman.xyz
namespace: profile
timeoutSeconds: 30
skipVerify: true
`)
	require.NoError(os.WriteFile(path, data, 0o600))

	profile, err := config.Load(path)
	require.NoError(err)
	require.Equal("test-api-key", profile.Token)
	require.Equal("https://api.alphahuman.xyz", profile.BaseURL)
	require.Equal("profile", profile.Namespace)
	require.Equal(30*time.Second, profile.Timeout())
	require.True(profile.SkipVerify)
}

func TestLoadMissingFile(t *testing.T) {
	_, err := config.Load(filepath.Join(t.TempDir(), "nope.yaml"))
	require.Error(t, err)
}

func TestLoadPartialProfile(t *testing.T) {
	require := require.New(t)

	path := filepath.Join(t.TempDir(), "profile.yaml")
	require.NoError(os.WriteFile(path, []byte("namespace: scratch\n"), 0o600))

	profile, err := config.Load(path)
	require.NoError(err)
	require.Empty(profile.Token)
	require.Empty(profile.BaseURL)
	require.Equal("scratch", profile.Namespace)
}
