package profile

import (
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestLoadFromFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "profiles.json")
	require.NoError(t, os.WriteFile(path, []byte(`{"minimal":1.0,"komfort":1.25,"solo":0.8}`), 0o600))

	reg := Load(path, discardLogger())
	require.Equal(t, 1.25, reg.Factor("komfort"))
	require.Equal(t, 0.8, reg.Factor("solo"))
}

func TestLoadMissingFileUsesDefaults(t *testing.T) {
	reg := Load(filepath.Join(t.TempDir(), "nope.json"), discardLogger())
	require.Equal(t, 1.0, reg.Factor("minimal"))
	require.Equal(t, 1.2, reg.Factor("komfort"))
	require.Equal(t, 1.4, reg.Factor("familie"))
}

func TestLoadMalformedFileUsesDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "profiles.json")
	require.NoError(t, os.WriteFile(path, []byte(`{"minimal":`), 0o600))

	reg := Load(path, discardLogger())
	require.Equal(t, 1.2, reg.Factor("komfort"))
}

func TestLoadSkipsNegativeFactors(t *testing.T) {
	path := filepath.Join(t.TempDir(), "profiles.json")
	require.NoError(t, os.WriteFile(path, []byte(`{"broken":-2.0,"ok":1.5}`), 0o600))

	reg := Load(path, discardLogger())
	require.Equal(t, 1.5, reg.Factor("ok"))
	require.Equal(t, 1.0, reg.Factor("broken"), "skipped entries fall back to the default factor")
}

func TestFactorUnknownProfile(t *testing.T) {
	reg := Default()
	require.Equal(t, 1.0, reg.Factor("unknown_key"))
	require.Equal(t, 1.0, reg.Factor(""))
}
