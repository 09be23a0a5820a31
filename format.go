package main

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

const (
	cellWidth = 5
	crewWidth = 2
	spacing   = "    "
)

// SolutionView is the display form of a Solution, with ignored foci removed.
type SolutionView struct {
	Foci       []string          `json:"foci"`
	Allocation int               `json:"allocation"`
	Crew       map[string]string `json:"crew"`
	Shards     map[string]string `json:"shards"`
	Links      []string          `json:"links"`
}

func NewSolutionView(s Solution, ignore FocusSet) SolutionView {
	v := SolutionView{
		Foci:       s.Foci.Minus(ignore).Strings(),
		Allocation: s.AllocIndex,
		Crew:       make(map[string]string),
		Shards:     make(map[string]string),
		Links:      s.Links.Strings(),
	}
	for i, r := range AllRoles {
		if c := s.Crew.Crew[i]; c != CrewNone {
			v.Crew[r.String()] = c.String()
		}
	}
	for i, name := range s.Placement.Names() {
		if name != "" {
			v.Shards[AllColors[i].String()] = name
		}
	}
	return v
}

func center(text string, width int, opts ...lipgloss.WhitespaceOption) string {
	if len(text) > width {
		text = text[:width]
	}
	return lipgloss.PlaceHorizontal(width, lipgloss.Center, text, opts...)
}

func cells(texts []string, width int) string {
	var b strings.Builder
	b.WriteString("|")
	for _, t := range texts {
		b.WriteString(center(t, width))
		b.WriteString("|")
	}
	return b.String()
}

// FormatSurvivors renders survivors as the four-group console table: areas
// of focus, crew, shards per slot color and links.
func FormatSurvivors(sols []Solution, ignore FocusSet) string {
	printable := allFoci().Minus(ignore).Foci()
	focusNames := make([]string, len(printable))
	for i, f := range printable {
		focusNames[i] = f.String()
	}
	colorNames := make([]string, NumColors)
	for i, c := range AllColors {
		colorNames[i] = c.String()
	}
	linkNames := make([]string, NumLinks)
	for i, l := range AllLinks {
		linkNames[i] = l.String()
	}
	roleNames := make([]string, NumRoles)
	for i, r := range AllRoles {
		roleNames[i] = r.String()
	}

	headers := []string{
		cells(focusNames, cellWidth),
		cells(roleNames, crewWidth),
		cells(colorNames, cellWidth),
		"|" + strings.Join(linkNames, "|") + "|",
	}
	labels := []string{" Areas of Focus ", " Crew ", " Shards ", " Links "}
	header := strings.Join(headers, spacing)
	rule := strings.Repeat("-", lipgloss.Width(header))

	var b strings.Builder
	b.WriteString(rule + "\n")
	labelRow := make([]string, len(headers))
	dashRow := make([]string, len(headers))
	for i, h := range headers {
		w := lipgloss.Width(h)
		labelRow[i] = center(labels[i], w, lipgloss.WithWhitespaceChars("-"))
		dashRow[i] = strings.Repeat("-", w)
	}
	b.WriteString(strings.Join(labelRow, spacing) + "\n")
	b.WriteString(header + "\n")
	b.WriteString(strings.Join(dashRow, spacing) + "\n")

	for _, s := range sols {
		b.WriteString(formatRow(s, printable) + "\n")
	}
	b.WriteString(rule + "\n")
	return b.String()
}

func formatRow(s Solution, printable []Focus) string {
	foci := make([]string, len(printable))
	for i, f := range printable {
		if s.Foci.Has(f) {
			foci[i] = f.String()
		} else {
			foci[i] = "-"
		}
	}
	crew := make([]string, NumRoles)
	for i, c := range s.Crew.Crew {
		crew[i] = c.String()
	}
	names := s.Placement.Names()
	links := make([]string, NumLinks)
	for i, l := range AllLinks {
		if s.Links.Has(l) {
			links[i] = l.String()
		} else {
			links[i] = "  "
		}
	}
	return strings.Join([]string{
		cells(foci, cellWidth),
		cells(crew, crewWidth),
		cells(names[:], cellWidth),
		"|" + strings.Join(links, "|") + "|",
	}, spacing)
}
