package main

import (
	"bytes"
	"context"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/pterm/pterm"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMain(m *testing.M) {
	pterm.DisableStyling()
	os.Exit(m.Run())
}

// sandbox moves the test into an empty directory with no config to find
func sandbox(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	t.Setenv("NETUPDATE_CONFIG", "")
	t.Setenv("HOME", dir)
	t.Setenv("XDG_CONFIG_HOME", filepath.Join(dir, "xdg"))
	t.Chdir(dir)
	return dir
}

func execute(t *testing.T, input string, args ...string) (string, error) {
	t.Helper()
	root, a := newRootCmd()
	var out bytes.Buffer
	root.SetArgs(append([]string{"--log-level", "error"}, args...))
	root.SetIn(strings.NewReader(input))
	root.SetOut(&out)
	root.SetErr(&out)

	err := root.ExecuteContext(context.Background())
	a.sync()
	return out.String(), err
}

func TestRunSessionEndToEnd(t *testing.T) {
	dir := sandbox(t)
	require.NoError(t, os.WriteFile(filepath.Join(dir, "equip_r.txt"), []byte(`{"router1":"10.10.10.1"}`), 0o644))

	out, err := execute(t, "router1\n999.1.1.1\n10.0.0.5\nx\n")
	require.NoError(t, err)

	assert.Contains(t, out, "Network Equipment Inventory")
	assert.Contains(t, out, "Using default switch data.")
	assert.Contains(t, out, "router1 was updated; the new IP address is 10.0.0.5")
	assert.Contains(t, out, "Number of devices updated: 1")
	assert.Contains(t, out, "Number of invalid addresses attempted: 1")

	updated, err := os.ReadFile(filepath.Join(dir, "updated.txt"))
	require.NoError(t, err)
	assert.Equal(t, "{\n    \"router1\": \"10.0.0.5\"\n}\n", string(updated))

	errs, err := os.ReadFile(filepath.Join(dir, "errors.txt"))
	require.NoError(t, err)
	assert.Equal(t, "[\n    \"999.1.1.1\"\n]\n", string(errs))
}

func TestRunSessionYAMLOutput(t *testing.T) {
	dir := sandbox(t)

	_, err := execute(t, "SWITCH9\n10.9.9.9\nx\n",
		"--format", "yaml", "--updated", "out.yaml", "--errors", "bad.yaml")
	require.NoError(t, err)

	updated, err := os.ReadFile(filepath.Join(dir, "out.yaml"))
	require.NoError(t, err)
	assert.Equal(t, "switch9: 10.9.9.9\n", string(updated))

	bad, err := os.ReadFile(filepath.Join(dir, "bad.yaml"))
	require.NoError(t, err)
	assert.Equal(t, "[]\n", string(bad))
}

func TestRunSessionAbortWritesNothing(t *testing.T) {
	dir := sandbox(t)

	_, err := execute(t, "router1\n")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "no output written")

	_, statErr := os.Stat(filepath.Join(dir, "updated.txt"))
	assert.True(t, os.IsNotExist(statErr))
	_, statErr = os.Stat(filepath.Join(dir, "errors.txt"))
	assert.True(t, os.IsNotExist(statErr))
}

func TestRunSessionEOFAtDevicePromptQuits(t *testing.T) {
	dir := sandbox(t)

	_, err := execute(t, "")
	require.NoError(t, err)

	data, err := os.ReadFile(filepath.Join(dir, "updated.txt"))
	require.NoError(t, err)
	assert.Equal(t, "{}\n", string(data))
}

func TestRunSessionInterrupted(t *testing.T) {
	dir := sandbox(t)
	pr, pw := io.Pipe()
	defer pw.Close()
	go func() {
		_, _ = io.WriteString(pw, "router1\n10.0.0.5\n")
	}()

	root, a := newRootCmd()
	root.SetArgs([]string{"--log-level", "error"})
	root.SetIn(pr)
	var out bytes.Buffer
	root.SetOut(&out)
	root.SetErr(&out)

	ctx, cancel := context.WithTimeout(context.Background(), 200*time.Millisecond)
	defer cancel()
	err := root.ExecuteContext(ctx)
	a.sync()

	require.Error(t, err)
	assert.ErrorIs(t, err, context.DeadlineExceeded)
	assert.Contains(t, out.String(), "router1 was updated")
	_, statErr := os.Stat(filepath.Join(dir, "updated.txt"))
	assert.True(t, os.IsNotExist(statErr), "interrupted session writes nothing")
}

func TestRunSessionFromConfigFile(t *testing.T) {
	dir := sandbox(t)
	require.NoError(t, os.WriteFile(filepath.Join(dir, "routers.yaml"), []byte("edge1: 192.0.2.1\n"), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "netupdate.yaml"), []byte(`
inventory:
  routers: routers.yaml
session:
  max_ip_attempts: 1
`), 0o644))

	out, err := execute(t, "edge1\nnope\nedge1\n192.0.2.9\nx\n")
	require.NoError(t, err)
	assert.Contains(t, out, "Too many invalid addresses; edge1 was not updated.")
	assert.Contains(t, out, "edge1 was updated; the new IP address is 192.0.2.9")
}

func TestShow(t *testing.T) {
	sandbox(t)

	out, err := execute(t, "", "show")
	require.NoError(t, err)
	assert.Contains(t, out, "router3")
	assert.Contains(t, out, "switch9")
	assert.Contains(t, out, "Using default router data.")
}

func TestCheck(t *testing.T) {
	sandbox(t)

	out, err := execute(t, "", "check", "10.0.0.1", "010.1.1.1")
	require.NoError(t, err)
	assert.Contains(t, out, "10.0.0.1")

	_, err = execute(t, "", "check", "10.0.0.1", "999.1.1.1")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "1 of 2 addresses invalid")

	_, err = execute(t, "", "check")
	assert.Error(t, err)
}

func TestConfigInit(t *testing.T) {
	dir := sandbox(t)
	path := filepath.Join(dir, "conf", "netupdate.yaml")

	out, err := execute(t, "", "config", "init", path, "--format", "yaml")
	require.NoError(t, err)
	assert.Contains(t, out, "Config written to "+path)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "format: yaml")

	_, err = execute(t, "", "config", "init", path)
	assert.Error(t, err, "refuses to overwrite")

	_, err = execute(t, "", "config", "init", path, "--force")
	assert.NoError(t, err)
}

func TestConfigPaths(t *testing.T) {
	dir := sandbox(t)
	require.NoError(t, os.WriteFile(filepath.Join(dir, "netupdate.yaml"), []byte("session:\n  max_ip_attempts: 2\n"), 0o644))

	out, err := execute(t, "", "config", "paths")
	require.NoError(t, err)

	var cwdLine string
	for _, line := range strings.Split(out, "\n") {
		if strings.Contains(line, "netupdate.yaml") && !strings.Contains(line, "/") {
			cwdLine = line
		}
	}
	assert.Contains(t, cwdLine, "in use")
	assert.Contains(t, out, filepath.Join(dir, "xdg", "netupdate", "config.yaml"))
}

func TestBadConfig(t *testing.T) {
	sandbox(t)

	_, err := execute(t, "", "--format", "xml", "show")
	assert.Error(t, err)
}
