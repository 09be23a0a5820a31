package main

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func shardNames(shards []*Shard) []string {
	out := make([]string, len(shards))
	for i, s := range shards {
		out[i] = s.Name
	}
	return out
}

func TestFeasibleNeverAdmitsIgnoredFoci(t *testing.T) {
	cat := mustDefaultCatalog(t)
	ignore, err := DefaultConfig().IgnoreSet()
	require.NoError(t, err)

	for i, alloc := range cat.Allocations {
		f := cat.Feasible(alloc, ignore)
		assert.False(t, f.Eligible.Overlaps(ignore), "allocation %d", i)
		assert.False(t, f.Eligible.Overlaps(f.Ineligible), "allocation %d", i)
		assert.Equal(t, allFoci(), f.Eligible.Union(f.Ineligible), "allocation %d", i)
		assert.Same(t, f.Mastery, f.Shards[len(f.Shards)-1])
		assert.Same(t, f.Mastery, f.Pool[len(f.Pool)-1])
		assert.Len(t, f.Pool, len(cat.Shards)+1)
	}
}

func TestFeasibleShards(t *testing.T) {
	cat := mustDefaultCatalog(t)
	ignore := NewFocusSet(FocusFghtr, FocusShard)

	// SR=Di ME=Zt unlocks Rsh_H and Spcmn only
	f := cat.Feasible(cat.Allocations[1], ignore)
	assert.Equal(t,
		NewFocusSet(FocusFixtr, FocusRshS, FocusSynth, FocusWarp, FocusFghtr, FocusShard),
		f.Ineligible)
	assert.Equal(t,
		[]string{"Produ", "Captl", "Flex", "Fghtr", "Rsrch", "Resou", "Spcmn", "Mstry"},
		shardNames(f.Shards))
	assert.True(t, f.Mastery.Foci().Empty())
	assert.True(t, f.Granted.Empty())

	// SR=Di ME=Yt SP=Yt unlocks Rsh_H and Synth: Spcmn drops out
	f = cat.Feasible(cat.Allocations[0], ignore)
	assert.Equal(t,
		[]string{"Produ", "Synth", "Captl", "Flex", "Fghtr", "Rsrch", "Resou", "Mstry"},
		shardNames(f.Shards))
	assert.Equal(t, NewFocusSet(FocusMstry), f.Mastery.Foci())
}

func TestFeasibleIsFreshPerAllocation(t *testing.T) {
	cat := mustDefaultCatalog(t)
	a := cat.Feasible(cat.Allocations[0], 0)
	b := cat.Feasible(cat.Allocations[0], 0)
	assert.NotSame(t, a.Mastery, b.Mastery)
	assert.Equal(t, a.Mastery.Targets, b.Mastery.Targets)
}

func TestFeasibleGrantsUncontributedCrewFoci(t *testing.T) {
	flex := mustShard(t, "Flex", []Color{ColorGreen}, map[Color]Focus{ColorGreen: FocusWarp})
	cat := bareCatalog(flex)
	cat.CrewFoci = NewFocusSet(FocusWarp, FocusSpcmn)
	alloc := CrewAllocation{Foci: NewFocusSet(FocusWarp, FocusSpcmn)}

	f := cat.Feasible(alloc, 0)
	assert.Equal(t, NewFocusSet(FocusSpcmn), f.Granted)

	f = cat.Feasible(alloc, NewFocusSet(FocusSpcmn))
	assert.True(t, f.Granted.Empty())
}

func TestFeasibleNeverGrantsMasteryWithoutCrew(t *testing.T) {
	cat := mustDefaultCatalog(t)
	alloc, err := NewCrewAllocation([NumRoles]CrewType{CrewDi}, []Focus{FocusRshH, FocusMstry})
	require.NoError(t, err)

	f := cat.Feasible(alloc, NewFocusSet(FocusFghtr, FocusShard))
	assert.True(t, f.Eligible.Has(FocusMstry))
	assert.True(t, f.Mastery.Foci().Empty())
	assert.False(t, f.Granted.Has(FocusMstry))
	assert.True(t, f.Granted.Empty())
}
