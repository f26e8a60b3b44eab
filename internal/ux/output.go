// Package ux renders routes, catalogs and load reports for the terminal.
package ux

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/katalvlaran/campusnav/campus"
	"github.com/katalvlaran/campusnav/loader"
	"github.com/katalvlaran/campusnav/navigator"
)

// Map marker colors: start red, destination green, path blue.
var (
	ColorStart = lipgloss.Color("#E74C3C")
	ColorGoal  = lipgloss.Color("#2ECC71")
	ColorPath  = lipgloss.Color("#3498DB")
	ColorMuted = lipgloss.Color("#7F8C8D")
	ColorWarn  = lipgloss.Color("#F4D03F")
)

// Styles provides pre-configured lipgloss styles.
var Styles = struct {
	Title   lipgloss.Style
	Start   lipgloss.Style
	Goal    lipgloss.Style
	Stop    lipgloss.Style
	Arrow   lipgloss.Style
	Muted   lipgloss.Style
	Warning lipgloss.Style
	Box     lipgloss.Style
}{
	Title:   lipgloss.NewStyle().Bold(true).Foreground(ColorPath),
	Start:   lipgloss.NewStyle().Bold(true).Foreground(ColorStart),
	Goal:    lipgloss.NewStyle().Bold(true).Foreground(ColorGoal),
	Stop:    lipgloss.NewStyle(),
	Arrow:   lipgloss.NewStyle().Foreground(ColorPath),
	Muted:   lipgloss.NewStyle().Foreground(ColorMuted),
	Warning: lipgloss.NewStyle().Foreground(ColorWarn),
	Box: lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(ColorPath).
		Padding(0, 1),
}

// RenderRoute writes the path line and the details panel for r.
func RenderRoute(w io.Writer, r navigator.Route) error {
	title := Styles.Title.Render(fmt.Sprintf("%s: %s → %s", r.Algorithm.Label(), r.Start, r.End))
	if !r.Found {
		_, err := fmt.Fprintln(w, title+"\n"+Styles.Warning.Render(navigator.NoPathMessage))
		return err
	}

	stops := make([]string, len(r.Path))
	for i, id := range r.Path {
		switch i {
		case 0:
			stops[i] = Styles.Start.Render(id)
		case len(r.Path) - 1:
			stops[i] = Styles.Goal.Render(id)
		default:
			stops[i] = Styles.Stop.Render(id)
		}
	}
	line := strings.Join(stops, Styles.Arrow.Render(" -> "))

	_, err := fmt.Fprintln(w, title+"\n"+line+"\n"+Styles.Box.Render(r.Details()))
	return err
}

// RenderLocations lists the catalog with coordinates.
func RenderLocations(w io.Writer, cat *campus.Catalog) error {
	if _, err := fmt.Fprintln(w, Styles.Title.Render(fmt.Sprintf("%d locations", cat.Len()))); err != nil {
		return err
	}
	for _, l := range cat.Locations() {
		if _, err := fmt.Fprintf(w, "  %s %s\n", l.Name,
			Styles.Muted.Render(fmt.Sprintf("(%g, %g)", l.X, l.Y))); err != nil {
			return err
		}
	}
	return nil
}

// RenderReport summarizes a CSV load, listing skipped rows.
func RenderReport(w io.Writer, path string, rep loader.Report) error {
	msg := fmt.Sprintf("%s: %d rows, %d loaded, %d skipped", path, rep.Rows, rep.Loaded, len(rep.Skipped))
	if _, err := fmt.Fprintln(w, Styles.Title.Render(msg)); err != nil {
		return err
	}
	for _, s := range rep.Skipped {
		if _, err := fmt.Fprintln(w, Styles.Warning.Render(fmt.Sprintf("  line %d: %s", s.Line, s.Reason))); err != nil {
			return err
		}
	}
	return nil
}
