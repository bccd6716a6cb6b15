// Package styling renders entries, status lines and warnings for the
// terminal. It only formats; it never decides.
package styling

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/lucasb-eyer/go-colorful"

	"clockctl/internal/model"
)

var (
	runningStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#04B575")).Bold(true)
	idleStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("#FF6B6B"))
	faintStyle   = lipgloss.NewStyle().Faint(true)
	warnStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("#F7DC6F"))
	boldStyle    = lipgloss.NewStyle().Bold(true)
)

// Warning renders a warning line.
func Warning(message string) string {
	return warnStyle.Render("warning: " + message)
}

// Running renders the status line for a running timer.
func Running(entry model.TimeEntry, elapsedMinutes int) string {
	var b strings.Builder
	b.WriteString(runningStyle.Render("tracking"))
	b.WriteString(" ")
	b.WriteString(describe(entry))
	b.WriteString(faintStyle.Render(fmt.Sprintf(" (%s, since %s)",
		model.FormatDuration(elapsedMinutes),
		entry.Interval.Start.Local().Format("15:04"))))
	return b.String()
}

// Idle renders the status line for an idle timer, with the day total.
func Idle(dayMinutes, dayEntries int) string {
	line := idleStyle.Render("no timer running")
	if dayEntries > 0 {
		line += faintStyle.Render(fmt.Sprintf(" (%s tracked today over %d entries)",
			model.FormatDuration(dayMinutes), dayEntries))
	}
	return line
}

// Entry renders a one-line representation of a time entry.
func Entry(entry model.TimeEntry) string {
	var b strings.Builder
	b.WriteString(faintStyle.Render(entry.ID))
	b.WriteString(" ")
	b.WriteString(describe(entry))
	if entry.Interval.End != nil {
		minutes := model.RoundMinutes(entry.Interval.End.Sub(entry.Interval.Start))
		b.WriteString(faintStyle.Render(fmt.Sprintf(" [%s - %s, %s]",
			entry.Interval.Start.Local().Format("15:04"),
			entry.Interval.End.Local().Format("15:04"),
			model.FormatDuration(minutes))))
	} else {
		b.WriteString(faintStyle.Render(fmt.Sprintf(" [since %s]",
			entry.Interval.Start.Local().Format("15:04"))))
	}
	return b.String()
}

// Project renders a project name in its configured color.
func Project(project model.Project) string {
	return projectStyle(project.Color).Render(project.Name) + " " + faintStyle.Render(project.ID)
}

func describe(entry model.TimeEntry) string {
	description := entry.Description
	if description == "" {
		description = "(no description)"
	}
	out := boldStyle.Render(description)
	if entry.ProjectName != "" {
		out += " " + projectStyle("").Render("@"+entry.ProjectName)
	}
	if entry.Billable {
		out += " " + faintStyle.Render("$")
	}
	return out
}

// projectStyle builds a foreground style from a project's hex color,
// normalized through go-colorful; an unparseable or empty color falls back to
// a fixed blue.
func projectStyle(hex string) lipgloss.Style {
	c, err := colorful.Hex(hex)
	if err != nil {
		return lipgloss.NewStyle().Foreground(lipgloss.Color(fallbackProjectColor))
	}
	return lipgloss.NewStyle().Foreground(lipgloss.Color(c.Hex()))
}

// fallbackProjectColor is used when a project carries no usable color.
const fallbackProjectColor = "#03A9F4"
