package main

// Placement maps each slot index (the Slot of its color) to the shard placed
// there; nil marks an empty slot. A Placement is built fresh for every trial
// and never written back to the shard records.
type Placement [NumColors]*Shard

// ColorOf returns the color s occupies, or ColorNone if s is not placed.
func (p *Placement) ColorOf(s *Shard) Color {
	for i, placed := range p {
		if placed == s {
			return AllColors[i]
		}
	}
	return ColorNone
}

func (p *Placement) Contains(s *Shard) bool {
	return p.ColorOf(s) != ColorNone
}

// Foci is the union of the foci of every placed shard.
func (p *Placement) Foci() FocusSet {
	var out FocusSet
	for _, s := range p {
		if s != nil {
			out = out.Union(s.Foci())
		}
	}
	return out
}

// Names returns the shard name per slot, "" for empty slots.
func (p *Placement) Names() [NumColors]string {
	var out [NumColors]string
	for i, s := range p {
		if s != nil {
			out[i] = s.Name
		}
	}
	return out
}

// enumeratePlacements calls fn for every injective assignment of shards to
// the slots, in lexicographic order of shard index. With five or more shards
// every slot is filled; with fewer, the spare slots are empty and every
// arrangement is visited once. A shard drawn into a slot whose color it may
// not occupy leaves that slot empty.
func enumeratePlacements(shards []*Shard, fn func(Placement)) {
	n := len(shards)
	empties := NumColors - n
	if empties < 0 {
		empties = 0
	}
	used := make([]bool, n)
	var order [NumColors]int

	var walk func(slot, empties int)
	walk = func(slot, empties int) {
		if slot == NumColors {
			var p Placement
			for i, idx := range order {
				if idx < 0 {
					continue
				}
				if s := shards[idx]; s.CanOccupy(AllColors[i]) {
					p[i] = s
				}
			}
			fn(p)
			return
		}
		for i := 0; i < n; i++ {
			if used[i] {
				continue
			}
			used[i] = true
			order[slot] = i
			walk(slot+1, empties)
			used[i] = false
		}
		if empties > 0 {
			order[slot] = -1
			walk(slot+1, empties-1)
		}
	}
	walk(0, empties)
}

// potentialFoci returns the foci every possible contributor of which is
// legally placed in p. pool holds every shard that could contribute in this
// run; any pool shard missing from p voids all of its foci. Ineligible foci
// never count.
func potentialFoci(p *Placement, pool []*Shard, ineligible FocusSet) FocusSet {
	potential := p.Foci()
	for _, s := range pool {
		if !p.Contains(s) {
			potential = potential.Minus(s.Foci())
		}
	}
	return potential.Minus(ineligible)
}

// trimPlacement empties every slot whose shard serves none of keep.
func trimPlacement(p Placement, keep FocusSet) Placement {
	for i, s := range p {
		if s != nil && !s.Foci().Overlaps(keep) {
			p[i] = nil
		}
	}
	return p
}
