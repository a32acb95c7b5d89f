package console

import (
	"fmt"
	"io"
	"os"

	"netupdate/internal/domain"
	"netupdate/internal/loader"

	"github.com/pterm/pterm"
)

// Reporter renders inventory tables and session summaries
type Reporter struct {
	out io.Writer
}

// NewReporter creates a reporter writing to out
func NewReporter(out io.Writer) *Reporter {
	return &Reporter{out: out}
}

// Inventory prints every device, routers first
func (r *Reporter) Inventory(inv *domain.Inventory) error {
	fmt.Fprint(r.out, pterm.DefaultSection.Sprint("Network Equipment Inventory"))

	rows := make([][]string, 0, len(inv.Devices()))
	for _, d := range inv.Devices() {
		rows = append(rows, []string{d.Name, d.IP, string(d.Class)})
	}
	return r.table([]string{"equipment name", "IP address", "class"}, rows)
}

// Sources warns about every class that fell back to defaults
func (r *Reporter) Sources(results []loader.Result) {
	for _, res := range results {
		if !res.FellBack {
			continue
		}
		fmt.Fprint(r.out, pterm.Warning.Sprintfln("%s: %v. Using default %s data.",
			res.Source, res.Err, string(res.Class)))
	}
}

// Summary prints the session counters
func (r *Reporter) Summary(report *domain.Report) {
	fmt.Fprint(r.out, pterm.DefaultSection.Sprint("Summary"))
	fmt.Fprintf(r.out, "Number of devices updated: %d\n", report.DevicesUpdated)
	fmt.Fprintf(r.out, "Number of invalid addresses attempted: %d\n", report.InvalidAttempts)
}

// Changes lists every updated device with its address before the session
func (r *Reporter) Changes(before *domain.Inventory, report *domain.Report) error {
	if report.Updated.Len() == 0 {
		return nil
	}
	rows := make([][]string, 0, report.Updated.Len())
	report.Updated.Each(func(name, ip string) {
		class, _ := before.Lookup(name)
		old, _ := before.Table(class).Get(name)
		rows = append(rows, []string{name, string(class), old, ip})
	})
	return r.table([]string{"equipment name", "class", "old IP", "new IP"}, rows)
}

// Written reports the outcome of writing one output file
func (r *Reporter) Written(what, path string, err error) {
	if err != nil {
		fmt.Fprint(r.out, pterm.Error.Sprintfln("Error writing to %s: %v", path, err))
		return
	}
	fmt.Fprint(r.out, pterm.Success.Sprintfln("%s written to file '%s'", what, path))
}

// Check prints the validator verdict for each literal
func (r *Reporter) Check(literals []string, errs []error) error {
	rows := make([][]string, 0, len(literals))
	for i, raw := range literals {
		verdict := "valid"
		if errs[i] != nil {
			verdict = errs[i].Error()
		}
		rows = append(rows, []string{raw, verdict})
	}
	return r.table([]string{"literal", "verdict"}, rows)
}

// ConfigPaths prints each config candidate and whether it exists. active is
// the file the running command loaded, if any.
func (r *Reporter) ConfigPaths(paths []string, active string) error {
	rows := make([][]string, 0, len(paths))
	for _, p := range paths {
		status := "missing"
		switch {
		case active != "" && sameFile(p, active):
			status = "in use"
		case fileExists(p):
			status = "found"
		}
		rows = append(rows, []string{p, status})
	}
	return r.table([]string{"path", "status"}, rows)
}

func (r *Reporter) table(headers []string, rows [][]string) error {
	if len(rows) == 0 {
		fmt.Fprint(r.out, pterm.Warning.Sprintln("No entries."))
		return nil
	}

	tableData := pterm.TableData{headers}
	tableData = append(tableData, rows...)

	s, err := pterm.DefaultTable.
		WithHasHeader(true).
		WithBoxed(false).
		WithData(tableData).
		Srender()
	if err != nil {
		return fmt.Errorf("failed to render table: %w", err)
	}
	fmt.Fprintln(r.out, s)
	return nil
}

func fileExists(path string) bool {
	info, err := os.Stat(path)
	return err == nil && !info.IsDir()
}

func sameFile(a, b string) bool {
	ai, err := os.Stat(a)
	if err != nil {
		return false
	}
	bi, err := os.Stat(b)
	if err != nil {
		return false
	}
	return os.SameFile(ai, bi)
}
