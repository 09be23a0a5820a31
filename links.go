package main

// A shared reactor output cannot feed resource gathering and synthesis or
// fixture work at the same time.
var (
	resourceFoci    = NewFocusSet(FocusResou)
	fabricationFoci = NewFocusSet(FocusSynth, FocusFixtr)
)

// excludedBy reports whether f conflicts with an already active focus.
func excludedBy(f Focus, active FocusSet) bool {
	switch {
	case resourceFoci.Has(f):
		return active.Overlaps(fabricationFoci)
	case fabricationFoci.Has(f):
		return active.Overlaps(resourceFoci)
	}
	return false
}

// exclusive drops, in domain order, every focus of fs that conflicts with
// one already kept.
func exclusive(fs FocusSet) FocusSet {
	var out FocusSet
	for _, f := range fs.Foci() {
		if !excludedBy(f, out) {
			out = out.Add(f)
		}
	}
	return out
}

// Activation is one achievable outcome of a placement: the fully activated
// foci and the links they actually use.
type Activation struct {
	Foci  FocusSet
	Links LinkSet
}

type requirement struct {
	focus Focus
	links LinkSet
}

// linkPlan records, for one placement, which potential foci are already
// colocated and which links every other focus needs.
type linkPlan struct {
	granted  FocusSet // active before any shard is considered
	free     FocusSet
	required []requirement // domain order
	useful   []Link        // AllLinks order
}

func planLinks(p *Placement, potential, granted FocusSet) linkPlan {
	var needs [numFoci + 1]LinkSet
	var needing FocusSet
	var useful LinkSet
	for i, s := range p {
		if s == nil {
			continue
		}
		at := AllColors[i]
		for _, c := range AllColors {
			f := s.Targets[c.Slot()]
			if !potential.Has(f) || c == at {
				continue
			}
			l := NewLink(c, at)
			needs[f] = needs[f].Add(l)
			needing = needing.Add(f)
			useful = useful.Add(l)
		}
	}

	plan := linkPlan{
		granted: exclusive(granted),
		free:    potential.Minus(needing),
		useful:  useful.Links(),
	}
	for _, f := range needing.Foci() {
		plan.required = append(plan.required, requirement{focus: f, links: needs[f]})
	}
	return plan
}

// activate evaluates one tested link subset. Granted foci come first, then
// colocated foci, then every focus whose links are all present, each group in
// domain order and subject to the resource exclusivity rule. Links of the
// tested subset that no activated focus uses are dropped.
func (lp *linkPlan) activate(tested LinkSet) Activation {
	a := Activation{Foci: lp.granted}
	for _, f := range lp.free.Foci() {
		if !excludedBy(f, a.Foci) {
			a.Foci = a.Foci.Add(f)
		}
	}
	for _, req := range lp.required {
		if !tested.Contains(req.links) || excludedBy(req.focus, a.Foci) {
			continue
		}
		a.Foci = a.Foci.Add(req.focus)
		a.Links |= req.links
	}
	return a
}

// linkCap is the largest subset size worth testing: the game's connector
// limit or the number of useful links, whichever is smaller.
func linkCap(maxLinks, useful int) int {
	return max(0, min(maxLinks, useful))
}

// forEachLinkSubset visits every subset of links with at most k members,
// smallest first and lexicographic within a size.
func forEachLinkSubset(links []Link, k int, fn func(LinkSet)) {
	var pick func(start, left int, acc LinkSet)
	pick = func(start, left int, acc LinkSet) {
		if left == 0 {
			fn(acc)
			return
		}
		for i := start; i <= len(links)-left; i++ {
			pick(i+1, left-1, acc.Add(links[i]))
		}
	}
	for size := 0; size <= k && size <= len(links); size++ {
		pick(0, size, 0)
	}
}

// resolveLinks emits each distinct activation reachable from p within
// maxLinks connectors, on top of the granted foci, and returns how many link
// subsets were tested. For a
// fixed placement the used links follow from the activated foci, so
// duplicates carry no information and are skipped.
func resolveLinks(p *Placement, potential, granted FocusSet, maxLinks int, fn func(Activation)) int {
	plan := planLinks(p, potential, granted)
	seen := make(map[FocusSet]bool)
	tested := 0
	forEachLinkSubset(plan.useful, linkCap(maxLinks, len(plan.useful)), func(subset LinkSet) {
		tested++
		a := plan.activate(subset)
		if seen[a.Foci] {
			return
		}
		seen[a.Foci] = true
		fn(a)
	})
	return tested
}
