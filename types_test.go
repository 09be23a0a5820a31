package main

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
)

func TestAllLinks(t *testing.T) {
	var names []string
	for i, l := range AllLinks {
		assert.Equal(t, i, l.Index(), l.String())
		names = append(names, l.String())
	}
	want := []string{"BG", "BO", "BP", "BR", "GO", "GP", "GR", "OP", "OR", "PR"}
	if diff := cmp.Diff(want, names); diff != "" {
		t.Errorf("link order mismatch (-want +got):\n%s", diff)
	}
}

func TestNewLinkIsUnordered(t *testing.T) {
	assert.Equal(t, NewLink(ColorRed, ColorBlue), NewLink(ColorBlue, ColorRed))
	assert.Equal(t, -1, NewLink(ColorPink, ColorPink).Index())

	var s LinkSet
	s = s.Add(NewLink(ColorRed, ColorGreen))
	assert.True(t, s.Has(NewLink(ColorGreen, ColorRed)))
	assert.Equal(t, 1, s.Len())
	assert.Equal(t, s, s.Add(NewLink(ColorPink, ColorPink)))
}

func TestLinkSetContains(t *testing.T) {
	bg := LinkSet(0).Add(NewLink(ColorBlue, ColorGreen))
	both := bg.Add(NewLink(ColorOrange, ColorRed))
	assert.True(t, both.Contains(bg))
	assert.False(t, bg.Contains(both))
	assert.True(t, bg.Contains(0))
	assert.Equal(t, []string{"BG", "OR"}, both.Strings())
}

func TestFocusRoundTrip(t *testing.T) {
	assert.Len(t, AllFoci, numFoci)
	for _, f := range AllFoci {
		assert.Equal(t, f, parseFocus(f.String()))
	}
	assert.Equal(t, FocusNone, parseFocus("Overdrive"))
	assert.Equal(t, FocusNone, parseFocus(""))
}

func TestFocusSetOrderNormalized(t *testing.T) {
	a := NewFocusSet(FocusWarp, FocusB6com, FocusSynth)
	b := NewFocusSet(FocusSynth, FocusWarp, FocusB6com, FocusWarp)
	assert.Equal(t, a, b)
	assert.Equal(t, []string{"B6com", "Synth", "Warp"}, a.Strings())
	assert.Equal(t, "[B6com Synth Warp]", a.String())
	assert.Equal(t, a, a.Add(FocusNone))
}

func TestForEachProperSubset(t *testing.T) {
	s := NewFocusSet(FocusResou, FocusSynth, FocusWarp)
	seen := map[FocusSet]bool{}
	s.ForEachProperSubset(func(sub FocusSet) {
		assert.False(t, sub.Empty())
		assert.NotEqual(t, s, sub)
		assert.Equal(t, sub, sub.Intersect(s))
		seen[sub] = true
	})
	assert.Len(t, seen, 6)

	calls := 0
	FocusSet(0).ForEachProperSubset(func(FocusSet) { calls++ })
	NewFocusSet(FocusWarp).ForEachProperSubset(func(FocusSet) { calls++ })
	assert.Zero(t, calls)
}

func TestParseClosedDomains(t *testing.T) {
	for _, c := range AllColors {
		assert.Equal(t, c, parseColor(c.String()))
		assert.Equal(t, c, AllColors[c.Slot()])
	}
	assert.Equal(t, ColorNone, parseColor("Teal"))

	for _, ct := range []CrewType{CrewDi, CrewVx, CrewWx, CrewXt, CrewYt, CrewZn, CrewZt} {
		assert.Equal(t, ct, parseCrewType(ct.String()))
	}
	assert.Equal(t, CrewNone, parseCrewType("Qq"))

	for _, r := range AllRoles {
		got, ok := parseRole(r.String())
		assert.True(t, ok)
		assert.Equal(t, r, got)
	}
	_, ok := parseRole("XO")
	assert.False(t, ok)
}
