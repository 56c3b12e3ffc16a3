package cmd

import (
	"bytes"
	"io/fs"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/netham45/fwbump/internal/header"
)

const testHeader = `#ifndef VERSION_H
#define VERSION_H

#define FIRMWARE_VERSION_MAJOR  1
#define FIRMWARE_VERSION_MINOR  2
#define FIRMWARE_VERSION_PATCH  3
#define FIRMWARE_BUILD_NUMBER   9
#define FIRMWARE_VERSION_STRING "1.2.3-9"
#define FIRMWARE_VERSION_FULL   "ESP32 RTP Transciever v1.2.3-9"

#endif // VERSION_H
`

// execute runs the root command with the given arguments, capturing stdout
// and resetting shared command state afterwards.
func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	t.Cleanup(func() {
		flagVerbosity = 0
		flagDryRun = false
		flagInteractive = false
		showFull = false
		initForce = false
		appConfig = nil
		rootCmd.SetArgs(nil)
	})

	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&out)
	rootCmd.SetArgs(args)

	err := rootCmd.Execute()
	return out.String(), err
}

func tempHeader(t *testing.T, content string) string {
	t.Helper()
	t.Setenv("HOME", t.TempDir())
	path := filepath.Join(t.TempDir(), "version.h")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestRoot_DefaultKindIsBuild(t *testing.T) {
	path := tempHeader(t, testHeader)

	out, err := execute(t, path)
	require.NoError(t, err)
	assert.Contains(t, out, "Version incremented: build -> 1.2.3-10")
}

func TestRoot_BumpPatch(t *testing.T) {
	path := tempHeader(t, testHeader)

	out, err := execute(t, path, "patch")
	require.NoError(t, err)
	assert.Contains(t, out, "Version incremented: patch -> 1.2.4-9")

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), `#define FIRMWARE_VERSION_STRING "1.2.4-9"`)
	assert.Contains(t, string(data), `#define FIRMWARE_VERSION_FULL   "ESP32 RTP Transciever v1.2.4-9"`)
}

func TestRoot_BumpMinorResetsPatch(t *testing.T) {
	path := tempHeader(t, testHeader)

	out, err := execute(t, path, "minor")
	require.NoError(t, err)
	assert.Contains(t, out, "Version incremented: minor -> 1.3.0-9")
}

func TestRoot_UnknownKindLeavesFileUntouched(t *testing.T) {
	path := tempHeader(t, testHeader)

	_, err := execute(t, path, "bogus")
	require.Error(t, err)
	assert.ErrorIs(t, err, header.ErrUnknownField)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, testHeader, string(data))
}

func TestRoot_MissingFile(t *testing.T) {
	t.Setenv("HOME", t.TempDir())
	path := filepath.Join(t.TempDir(), "version.h")

	_, err := execute(t, path)
	require.Error(t, err)
	assert.ErrorIs(t, err, fs.ErrNotExist)

	_, err = os.Stat(path)
	assert.ErrorIs(t, err, fs.ErrNotExist)
}

func TestRoot_DryRun(t *testing.T) {
	path := tempHeader(t, testHeader)

	out, err := execute(t, "--dry-run", path, "major")
	require.NoError(t, err)
	assert.Contains(t, out, "Would increment: major -> 2.0.0-9")

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, testHeader, string(data))
}

func TestShow(t *testing.T) {
	path := tempHeader(t, testHeader)

	out, err := execute(t, "show", path)
	require.NoError(t, err)
	assert.Contains(t, out, "1.2.3-9")
}

func TestShow_Full(t *testing.T) {
	path := tempHeader(t, testHeader)

	out, err := execute(t, "show", "--full", path)
	require.NoError(t, err)
	assert.Contains(t, out, "ESP32 RTP Transciever v1.2.3-9")
}

func TestInit_CreatesHeader(t *testing.T) {
	t.Setenv("HOME", t.TempDir())
	path := filepath.Join(t.TempDir(), "version.h")

	out, err := execute(t, "init", path)
	require.NoError(t, err)
	assert.Contains(t, out, "Created "+path)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), `#define FIRMWARE_VERSION_STRING "0.1.0-0"`)
}

func TestInit_RefusesExistingWithoutForce(t *testing.T) {
	path := tempHeader(t, testHeader)

	// Stdin is not a terminal under test, so no confirmation is possible.
	_, err := execute(t, "init", path)
	require.Error(t, err)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, testHeader, string(data))
}

func TestInit_ForceOverwrites(t *testing.T) {
	path := tempHeader(t, testHeader)

	_, err := execute(t, "init", "--force", path)
	require.NoError(t, err)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), `#define FIRMWARE_VERSION_STRING "0.1.0-0"`)
}

func TestVersionCommand(t *testing.T) {
	t.Setenv("HOME", t.TempDir())

	out, err := execute(t, "version")
	require.NoError(t, err)
	assert.Contains(t, out, "fwbump dev")
}

func TestConfigCommand_ShowAndSet(t *testing.T) {
	t.Setenv("HOME", t.TempDir())

	out, err := execute(t, "config", "default.kind")
	require.NoError(t, err)
	assert.Contains(t, out, "build")

	out, err = execute(t, "config", "default.kind", "patch")
	require.NoError(t, err)
	assert.Contains(t, out, "Set default.kind = patch")

	out, err = execute(t, "config", "default.kind")
	require.NoError(t, err)
	assert.Contains(t, out, "patch")
}
