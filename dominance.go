package main

// Candidate is one activation found for a crew allocation and placement,
// before crew and shard pruning.
type Candidate struct {
	AllocIndex int
	Allocation CrewAllocation
	Placement  Placement
	Activation
}

// Solution is the representative configuration kept for one focus-set.
type Solution struct {
	Foci       FocusSet
	AllocIndex int
	Crew       CrewAllocation
	Placement  Placement
	Links      LinkSet
}

// SubmitResult says what the tracker did with a candidate.
type SubmitResult int

const (
	Accepted SubmitResult = iota
	RejectedDominated
	RejectedLinks
)

func (r SubmitResult) String() string {
	switch r {
	case Accepted:
		return "accepted"
	case RejectedDominated:
		return "dominated"
	case RejectedLinks:
		return "links"
	}
	return ""
}

// Tracker accumulates the best solution per focus-set and every focus-set
// known to be strictly contained in an accepted one. It grows monotonically
// over a whole run and is not safe for concurrent use.
type Tracker struct {
	catalog   *Catalog
	solutions map[FocusSet]*Solution
	order     []FocusSet // first-insertion order
	dominated map[FocusSet]bool
}

// NewTracker returns an empty tracker. The empty focus-set starts dominated:
// it is the trivial baseline every run covers.
func NewTracker(cat *Catalog) *Tracker {
	return &Tracker{
		catalog:   cat,
		solutions: make(map[FocusSet]*Solution),
		dominated: map[FocusSet]bool{0: true},
	}
}

// Submit offers a candidate. Ties on link count keep the solution submitted
// first, so the winner is fixed by the enumeration order.
func (t *Tracker) Submit(c Candidate) SubmitResult {
	if t.dominated[c.Foci] {
		return RejectedDominated
	}
	if prev, ok := t.solutions[c.Foci]; ok && prev.Links.Len() <= c.Links.Len() {
		return RejectedLinks
	}

	sol := &Solution{
		Foci:       c.Foci,
		AllocIndex: c.AllocIndex,
		Crew:       t.catalog.PruneCrew(c.Allocation, c.Foci),
		Placement:  trimPlacement(c.Placement, c.Foci),
		Links:      c.Links,
	}
	if _, ok := t.solutions[c.Foci]; !ok {
		t.order = append(t.order, c.Foci)
	}
	t.solutions[c.Foci] = sol

	c.Foci.ForEachProperSubset(func(sub FocusSet) {
		t.dominated[sub] = true
	})
	return Accepted
}

func (t *Tracker) Dominated(s FocusSet) bool {
	return t.dominated[s]
}

// Lookup returns the stored solution for exactly s, dominated or not.
func (t *Tracker) Lookup(s FocusSet) (Solution, bool) {
	sol, ok := t.solutions[s]
	if !ok {
		return Solution{}, false
	}
	return *sol, true
}

// Len is the number of stored focus-sets, including dominated ones.
func (t *Tracker) Len() int {
	return len(t.solutions)
}

// Survivors returns every stored solution whose focus-set is not dominated
// by the final accumulated state, in first-insertion order. An empty result
// is a valid outcome.
func (t *Tracker) Survivors() []Solution {
	var out []Solution
	for _, s := range t.order {
		if t.dominated[s] {
			continue
		}
		out = append(out, *t.solutions[s])
	}
	return out
}
