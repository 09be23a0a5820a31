package main

import "slices"

// Feasibility is what one crew allocation leaves open to the search.
type Feasibility struct {
	Allocation CrewAllocation
	Eligible   FocusSet
	Ineligible FocusSet
	// Shards are the catalog shards that can still serve an eligible focus,
	// in catalog order, followed by the allocation's Mastery variant.
	Shards  []*Shard
	Mastery *Shard
	// Pool is every shard that could contribute this run: the whole catalog
	// plus the Mastery variant. Any pool shard left out of a placement voids
	// its foci for that placement.
	Pool []*Shard
	// Granted are unlocked foci no catalog shard, Mastery template included,
	// contributes to. With no contributor to wait for they are active without
	// placement or links.
	Granted FocusSet
}

func allFoci() FocusSet {
	return NewFocusSet(AllFoci...)
}

// Feasible computes the eligible foci and shards for alloc. Crew-boostable
// foci the allocation does not unlock are ineligible, as is everything in
// ignore. It is recomputed for every allocation.
func (c *Catalog) Feasible(alloc CrewAllocation, ignore FocusSet) Feasibility {
	ineligible := c.CrewFoci.Minus(alloc.Foci).Union(ignore)
	f := Feasibility{
		Allocation: alloc,
		Eligible:   allFoci().Minus(ineligible),
		Ineligible: ineligible,
	}
	for _, s := range c.Shards {
		if !s.Foci().Minus(ineligible).Empty() {
			f.Shards = append(f.Shards, s)
		}
	}
	f.Mastery = c.MasteryFor(alloc)
	f.Shards = append(f.Shards, f.Mastery)

	f.Pool = append(slices.Clone(c.Shards), f.Mastery)
	// The Mastery template, not the variant, decides what is contributed:
	// a Mastery focus whose crew is missing stays unreachable.
	contributed := c.Mastery.Foci()
	for _, s := range c.Shards {
		contributed = contributed.Union(s.Foci())
	}
	f.Granted = alloc.Foci.Intersect(f.Eligible).Minus(contributed)
	return f
}
