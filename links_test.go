package main

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func collectActivations(p *Placement, potential FocusSet, maxLinks int) map[FocusSet]LinkSet {
	out := map[FocusSet]LinkSet{}
	resolveLinks(p, potential, 0, maxLinks, func(a Activation) { out[a.Foci] = a.Links })
	return out
}

func TestLinkCapIsMinimum(t *testing.T) {
	assert.Equal(t, 3, linkCap(6, 3))
	assert.Equal(t, 6, linkCap(6, 6))
	assert.Equal(t, 6, linkCap(6, 10))
	assert.Equal(t, 0, linkCap(0, 4))
	assert.Equal(t, 0, linkCap(6, 0))
	assert.Equal(t, 0, linkCap(-1, 4))
}

func TestForEachLinkSubset(t *testing.T) {
	links := AllLinks[:4]
	var got []LinkSet
	forEachLinkSubset(links, 2, func(s LinkSet) { got = append(got, s) })

	require.Len(t, got, 1+4+6)
	assert.Equal(t, LinkSet(0), got[0])
	for i := 1; i < len(got); i++ {
		assert.LessOrEqual(t, got[i-1].Len(), got[i].Len(), "subsets must grow in size")
		assert.LessOrEqual(t, got[i].Len(), 2)
	}

	calls := 0
	forEachLinkSubset(nil, 6, func(LinkSet) { calls++ })
	assert.Equal(t, 1, calls)
}

func TestPlanLinks(t *testing.T) {
	// A sits in Red and boosts Spcmn from Red and from Green
	a := mustShard(t, "A", []Color{ColorRed}, map[Color]Focus{ColorRed: FocusSpcmn, ColorGreen: FocusSpcmn})
	// B sits in Blue and boosts Combt from Blue only
	b := mustShard(t, "B", []Color{ColorBlue}, map[Color]Focus{ColorBlue: FocusCombt})
	var p Placement
	p[ColorRed.Slot()] = a
	p[ColorBlue.Slot()] = b

	plan := planLinks(&p, NewFocusSet(FocusSpcmn, FocusCombt), 0)
	assert.Equal(t, NewFocusSet(FocusCombt), plan.free)
	require.Len(t, plan.required, 1)
	assert.Equal(t, FocusSpcmn, plan.required[0].focus)
	assert.Equal(t, LinkSet(0).Add(NewLink(ColorGreen, ColorRed)), plan.required[0].links)
	assert.Equal(t, []Link{NewLink(ColorGreen, ColorRed)}, plan.useful)

	acts := collectActivations(&p, NewFocusSet(FocusSpcmn, FocusCombt), 6)
	assert.Equal(t, map[FocusSet]LinkSet{
		NewFocusSet(FocusCombt):             0,
		NewFocusSet(FocusCombt, FocusSpcmn): LinkSet(0).Add(NewLink(ColorGreen, ColorRed)),
	}, acts)
}

// twoFociPlacement needs four links for B6com and extra links for B6mat.
func twoFociPlacement(t *testing.T, extra []Color) (Placement, FocusSet) {
	x := mustShard(t, "X", []Color{ColorBlue}, map[Color]Focus{
		ColorGreen: FocusB6com, ColorOrange: FocusB6com, ColorPink: FocusB6com, ColorRed: FocusB6com,
	})
	targets := map[Color]Focus{}
	for _, c := range extra {
		targets[c] = FocusB6mat
	}
	y := mustShard(t, "Y", []Color{ColorGreen}, targets)
	var p Placement
	p[ColorBlue.Slot()] = x
	p[ColorGreen.Slot()] = y
	return p, NewFocusSet(FocusB6com, FocusB6mat)
}

func TestResolveLinksUsesEveryAllowedLink(t *testing.T) {
	p, potential := twoFociPlacement(t, []Color{ColorOrange, ColorPink})
	both := NewFocusSet(FocusB6com, FocusB6mat)

	acts := collectActivations(&p, potential, 6)
	links, ok := acts[both]
	require.True(t, ok, "both foci must be reachable with six links")
	assert.Equal(t, 6, links.Len())
}

func TestResolveLinksRespectsMaxLinks(t *testing.T) {
	p, potential := twoFociPlacement(t, []Color{ColorOrange, ColorPink, ColorRed})
	both := NewFocusSet(FocusB6com, FocusB6mat)

	acts := collectActivations(&p, potential, 6)
	_, ok := acts[both]
	assert.False(t, ok, "seven required links cannot fit under a cap of six")
	assert.Equal(t, 4, acts[NewFocusSet(FocusB6com)].Len())
	assert.Equal(t, 3, acts[NewFocusSet(FocusB6mat)].Len())

	acts = collectActivations(&p, potential, 7)
	assert.Equal(t, 7, acts[both].Len())
}

func TestResolveLinksTrimsUnusedLinks(t *testing.T) {
	p, potential := twoFociPlacement(t, []Color{ColorOrange})
	for foci, links := range collectActivations(&p, potential, 6) {
		var want LinkSet
		for _, f := range foci.Foci() {
			for i, s := range p {
				if s == nil {
					continue
				}
				for _, c := range AllColors {
					if s.Targets[c.Slot()] == f && c != AllColors[i] {
						want = want.Add(NewLink(c, AllColors[i]))
					}
				}
			}
		}
		assert.Equal(t, want, links, foci.String())
	}
}

func TestResolveLinksResourceExclusivity(t *testing.T) {
	tests := []struct {
		name string
		res  map[Color]Focus
		syn  map[Color]Focus
	}{
		{
			name: "both linked",
			res:  map[Color]Focus{ColorGreen: FocusResou},
			syn:  map[Color]Focus{ColorPink: FocusSynth},
		},
		{
			name: "both colocated",
			res:  map[Color]Focus{ColorBlue: FocusResou},
			syn:  map[Color]Focus{ColorRed: FocusSynth},
		},
		{
			name: "fixture linked, resource colocated",
			res:  map[Color]Focus{ColorBlue: FocusResou},
			syn:  map[Color]Focus{ColorPink: FocusFixtr},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := mustShard(t, "R", []Color{ColorBlue}, tt.res)
			s := mustShard(t, "S", []Color{ColorRed}, tt.syn)
			var p Placement
			p[ColorBlue.Slot()] = r
			p[ColorRed.Slot()] = s
			potential := r.Foci().Union(s.Foci())

			acts := collectActivations(&p, potential, 6)
			require.NotEmpty(t, acts)
			for foci := range acts {
				assert.False(t, foci.Overlaps(resourceFoci) && foci.Overlaps(fabricationFoci),
					"%s holds both sides of the exclusivity rule", foci)
			}
		})
	}
}

func TestExcludedBy(t *testing.T) {
	assert.True(t, excludedBy(FocusResou, NewFocusSet(FocusSynth)))
	assert.True(t, excludedBy(FocusResou, NewFocusSet(FocusFixtr)))
	assert.True(t, excludedBy(FocusSynth, NewFocusSet(FocusResou)))
	assert.True(t, excludedBy(FocusFixtr, NewFocusSet(FocusResou, FocusWarp)))
	assert.False(t, excludedBy(FocusSynth, NewFocusSet(FocusFixtr)))
	assert.False(t, excludedBy(FocusWarp, NewFocusSet(FocusResou, FocusSynth)))
	assert.False(t, excludedBy(FocusResou, 0))
}

func TestExclusiveKeepsDomainOrder(t *testing.T) {
	assert.Equal(t, NewFocusSet(FocusResou, FocusWarp), exclusive(NewFocusSet(FocusResou, FocusSynth, FocusWarp)))
	assert.Equal(t, NewFocusSet(FocusFixtr, FocusSynth), exclusive(NewFocusSet(FocusFixtr, FocusResou, FocusSynth)))
	assert.Equal(t, FocusSet(0), exclusive(0))
}

func TestResolveLinksGrantedFociBlockResource(t *testing.T) {
	r := mustShard(t, "R", []Color{ColorBlue}, map[Color]Focus{ColorBlue: FocusResou})
	var p Placement
	p[ColorBlue.Slot()] = r

	acts := map[FocusSet]LinkSet{}
	resolveLinks(&p, NewFocusSet(FocusResou), NewFocusSet(FocusFixtr, FocusWarp), 6, func(a Activation) {
		acts[a.Foci] = a.Links
	})
	assert.Equal(t, map[FocusSet]LinkSet{NewFocusSet(FocusFixtr, FocusWarp): 0}, acts)
}
