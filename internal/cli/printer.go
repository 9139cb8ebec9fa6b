package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"strconv"
	"strings"

	"capex/internal/capability"
	"capex/internal/color"
	"capex/internal/config"
	"capex/internal/modules"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"
	"gopkg.in/yaml.v3"
)

// OutputFormat represents the output format for CLI commands
type OutputFormat string

const (
	OutputFormatTable OutputFormat = "table"
	OutputFormatJSON  OutputFormat = "json"
	OutputFormatYAML  OutputFormat = "yaml"
)

// implementationWidth bounds the implementation column in tables.
const implementationWidth = 40

// ParseOutputFormat validates a --output flag value.
func ParseOutputFormat(s string) (OutputFormat, error) {
	switch f := OutputFormat(strings.ToLower(s)); f {
	case OutputFormatTable, OutputFormatJSON, OutputFormatYAML:
		return f, nil
	default:
		return "", fmt.Errorf("unsupported output format: %s", s)
	}
}

// Printer writes command results in one output format.
type Printer struct {
	out    io.Writer
	format OutputFormat
}

// NewPrinter creates a printer writing to out.
func NewPrinter(out io.Writer, format OutputFormat) *Printer {
	return &Printer{out: out, format: format}
}

// KindInfo describes one capability kind.
type KindInfo struct {
	Kind   capability.Kind   `json:"kind" yaml:"kind"`
	Policy capability.Policy `json:"policy" yaml:"policy"`
	Setter string            `json:"setter" yaml:"setter"`
	Getter string            `json:"getter" yaml:"getter"`
}

// DescribeKinds lists every kind in declaration order.
func DescribeKinds() []KindInfo {
	kinds := capability.Kinds()
	out := make([]KindInfo, 0, len(kinds))
	for _, k := range kinds {
		out = append(out, KindInfo{Kind: k, Policy: k.Policy(), Setter: k.Setter(), Getter: k.Getter()})
	}
	return out
}

// PrintKinds writes the kind list.
func (p *Printer) PrintKinds(kinds []KindInfo) error {
	return p.print(kinds, func(t table.Writer) {
		t.AppendHeader(header("Kind", "Policy", "Setter", "Getter"))
		for _, k := range kinds {
			t.AppendRow(table.Row{
				text.FgYellow.Sprint(k.Kind.String()),
				color.Badge(k.Policy.String()),
				k.Setter,
				k.Getter,
			})
		}
	})
}

// PrintProbe writes inspection results.
func (p *Printer) PrintProbe(results []modules.ProbeResult) error {
	return p.print(results, func(t table.Writer) {
		t.AppendHeader(header("Kind", "Policy", "Mode", "Outcome", "Implementation", "Hooks", "Consistent"))
		for _, r := range results {
			t.AppendRow(table.Row{
				text.FgYellow.Sprint(r.Kind.String()),
				color.Badge(r.Policy.String()),
				formatMode(r.Mode),
				color.Badge(string(r.Outcome)),
				formatImplementation(r.Implementation),
				strconv.Itoa(r.HookCalls),
				formatBool(r.Consistent),
			})
		}
	})
}

// PrintStatus writes slot status without lookup outcomes.
func (p *Printer) PrintStatus(status []modules.ModuleStatus) error {
	return p.print(status, func(t table.Writer) {
		t.AppendHeader(header("Kind", "Policy", "Mode", "State", "Implementation", "Triggered", "Hooks"))
		for _, s := range status {
			t.AppendRow(table.Row{
				text.FgYellow.Sprint(s.Kind.String()),
				color.Badge(s.Policy.String()),
				formatMode(s.Mode),
				color.Badge(string(s.State)),
				formatImplementation(s.Implementation),
				formatBool(s.Triggered),
				strconv.Itoa(s.HookCalls),
			})
		}
	})
}

func (p *Printer) print(v any, fill func(table.Writer)) error {
	switch p.format {
	case OutputFormatJSON:
		enc := json.NewEncoder(p.out)
		enc.SetIndent("", "  ")
		return enc.Encode(v)
	case OutputFormatYAML:
		data, err := yaml.Marshal(v)
		if err != nil {
			return fmt.Errorf("failed to convert to YAML: %w", err)
		}
		_, err = p.out.Write(data)
		return err
	case OutputFormatTable, "":
		t := table.NewWriter()
		t.SetOutputMirror(p.out)
		t.SetStyle(table.StyleRounded)
		fill(t)
		t.Render()
		return nil
	default:
		return fmt.Errorf("unsupported output format: %s", p.format)
	}
}

func header(cols ...string) table.Row {
	row := make(table.Row, len(cols))
	for i, c := range cols {
		row[i] = text.FgHiCyan.Sprint(strings.ToUpper(c))
	}
	return row
}

func formatMode(mode config.ModuleMode) string {
	if mode == "" {
		return text.FgHiBlack.Sprint("-")
	}
	return color.Badge(string(mode))
}

func formatImplementation(impl string) string {
	if impl == "" {
		return text.FgHiBlack.Sprint("-")
	}
	return color.Truncate(impl, implementationWidth)
}

func formatBool(b bool) string {
	if b {
		return text.FgGreen.Sprint("yes")
	}
	return text.FgHiBlack.Sprint("no")
}
