package cmd

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/go-drift/border/pkg/gradient"
)

func init() {
	RegisterCommand(&Command{
		Name:  "schedule",
		Short: "Print the gradient stop schedule",
		Long: `Print the stop schedule computed from the configured palette: the total
stop count, the sweep duration, whether the loop is seamless, and one row
per stop with its color, start and end location.

Flags:
  --config FILE   YAML or TOML configuration (default: built-in palette)`,
		Usage: "borderglow schedule [--config FILE]",
		Run:   runSchedule,
	})
}

var (
	headerStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#d72ed2"))
	labelStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("245"))
	cellStyle   = lipgloss.NewStyle().Width(9).Align(lipgloss.Right)
)

func runSchedule(args []string) error {
	var cfgFile string
	fs := flagSet{values: map[string]*string{"--config": &cfgFile}}
	if _, err := fs.parse(args); err != nil {
		return err
	}
	cfg, err := loadConfig(cfgFile)
	if err != nil {
		return err
	}
	opts, err := cfg.Options()
	if err != nil {
		return err
	}
	schedule, desc := gradient.Compute(opts)
	printSchedule(stdout, opts, schedule, desc)
	return nil
}

func printSchedule(w io.Writer, opts gradient.Options, s gradient.StopSchedule, d *gradient.AnimationDescriptor) {
	fmt.Fprintln(w, headerStyle.Render("Gradient schedule"))
	fmt.Fprintf(w, "%s %d colors, gradation %d, %s\n", labelStyle.Render("palette "), len(opts.Palette), opts.Gradation, s.Angle())
	fmt.Fprintf(w, "%s %d\n", labelStyle.Render("stops   "), s.Len())
	if d == nil {
		fmt.Fprintf(w, "%s static (reduce motion)\n", labelStyle.Render("sweep   "))
	} else {
		fmt.Fprintf(w, "%s %s per loop, seamless %t\n", labelStyle.Render("sweep   "), d.Duration, s.Seamless())
	}
	fmt.Fprintln(w)

	fmt.Fprintln(w, labelStyle.Render(fmt.Sprintf("%4s  %-9s %9s %9s", "#", "color", "start", "end")))
	for i, st := range s.Stops() {
		hex := st.Color.Hex()
		swatch := lipgloss.NewStyle().Background(lipgloss.Color(hex)).Render("    ")
		fmt.Fprintf(w, "%4d  %s %s %s  %s\n", i, hex, cellStyle.Render(fmt.Sprintf("%.4f", st.Start)), cellStyle.Render(fmt.Sprintf("%.4f", st.End)), swatch)
	}

	fmt.Fprintln(w)
	fmt.Fprintln(w, labelStyle.Render("loop strip"))
	var strip strings.Builder
	for _, c := range s.Colors() {
		strip.WriteString(lipgloss.NewStyle().Background(lipgloss.Color(c.Hex())).Render("  "))
	}
	fmt.Fprintln(w, strip.String())
}
