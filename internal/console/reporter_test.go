package console

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"netupdate/internal/domain"
	"netupdate/internal/loader"

	"github.com/pterm/pterm"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func init() {
	pterm.DisableStyling()
}

func TestReporterInventory(t *testing.T) {
	var out bytes.Buffer
	r := NewReporter(&out)

	require.NoError(t, r.Inventory(domain.NewInventory(domain.DefaultRouters(), domain.DefaultSwitches())))

	s := out.String()
	assert.Contains(t, s, "Network Equipment Inventory")
	assert.Contains(t, s, "router1")
	assert.Contains(t, s, "30.30.30.4")
	assert.Less(t, bytes.Index(out.Bytes(), []byte("router3")), bytes.Index(out.Bytes(), []byte("switch1")))
}

func TestReporterEmptyInventory(t *testing.T) {
	var out bytes.Buffer
	require.NoError(t, NewReporter(&out).Inventory(domain.NewInventory(nil, nil)))
	assert.Contains(t, out.String(), "No entries.")
}

func TestReporterSources(t *testing.T) {
	var out bytes.Buffer
	NewReporter(&out).Sources([]loader.Result{
		{Class: domain.ClassRouter, Source: "equip_r.txt"},
		{Class: domain.ClassSwitch, Source: "equip_s.txt", FellBack: true, Err: errors.New("not found")},
	})

	assert.NotContains(t, out.String(), "equip_r.txt")
	assert.Contains(t, out.String(), "equip_s.txt: not found. Using default switch data.")
}

func TestReporterSummary(t *testing.T) {
	report := domain.NewReport("s")
	report.RecordUpdate("router1", "10.0.0.5")
	report.RecordInvalid("999.1.1.1")

	var out bytes.Buffer
	NewReporter(&out).Summary(report)

	assert.Contains(t, out.String(), "Number of devices updated: 1")
	assert.Contains(t, out.String(), "Number of invalid addresses attempted: 1")
}

func TestReporterWritten(t *testing.T) {
	var out bytes.Buffer
	r := NewReporter(&out)
	r.Written("Updated equipment", "updated.txt", nil)
	r.Written("List of invalid addresses", "errors.txt", errors.New("permission denied"))

	assert.Contains(t, out.String(), "Updated equipment written to file 'updated.txt'")
	assert.Contains(t, out.String(), "Error writing to errors.txt: permission denied")
}

func TestReporterCheck(t *testing.T) {
	var out bytes.Buffer
	err := NewReporter(&out).Check(
		[]string{"10.0.0.1", "999.1.1.1"},
		[]error{nil, domain.ValidateIPLiteral("999.1.1.1")},
	)
	require.NoError(t, err)
	assert.Contains(t, out.String(), "valid")
	assert.Contains(t, out.String(), "out of range")
}

func TestReporterConfigPaths(t *testing.T) {
	dir := t.TempDir()
	active := filepath.Join(dir, "netupdate.yaml")
	other := filepath.Join(dir, "other.yaml")
	missing := filepath.Join(dir, "missing.yaml")
	require.NoError(t, os.WriteFile(active, []byte("{}\n"), 0o644))
	require.NoError(t, os.WriteFile(other, []byte("{}\n"), 0o644))

	var out bytes.Buffer
	require.NoError(t, NewReporter(&out).ConfigPaths([]string{active, other, missing}, active))

	status := map[string]string{}
	for _, line := range strings.Split(out.String(), "\n") {
		for _, p := range []string{active, other, missing} {
			if strings.Contains(line, p) {
				status[p] = line
			}
		}
	}
	assert.Contains(t, status[active], "in use")
	assert.Contains(t, status[other], "found")
	assert.Contains(t, status[missing], "missing")
}

func TestReporterChanges(t *testing.T) {
	inv := domain.NewInventory(domain.DefaultRouters(), domain.DefaultSwitches())
	before := inv.Clone()
	report := domain.NewReport("s1")
	require.NoError(t, inv.Assign(domain.ClassRouter, "router2", "192.0.2.7"))
	report.RecordUpdate("router2", "192.0.2.7")

	var out bytes.Buffer
	require.NoError(t, NewReporter(&out).Changes(before, report))
	assert.Contains(t, out.String(), "old IP")
	assert.Contains(t, out.String(), "192.0.2.7")
	old, _ := before.Routers.Get("router2")
	assert.Contains(t, out.String(), old)

	out.Reset()
	require.NoError(t, NewReporter(&out).Changes(before, domain.NewReport("s2")))
	assert.Empty(t, out.String())
}
