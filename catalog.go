package main

import (
	"fmt"
	"strings"
)

// ConfigurationError reports a catalog entry that references a value outside
// its closed domain. It is fatal: the search never runs on a broken catalog.
type ConfigurationError struct {
	Entry string // e.g. `shard "Flex"` or `crew allocation 3`
	Field string
	Value string
}

func (e *ConfigurationError) Error() string {
	return fmt.Sprintf("invalid %s %q in %s", e.Field, e.Value, e.Entry)
}

// CrewAllocation binds crew types to roles and lists the crew-boostable foci
// that combination unlocks. CrewNone marks an empty role.
type CrewAllocation struct {
	Crew [NumRoles]CrewType
	Foci FocusSet
}

// NewCrewAllocation validates foci against the focus domain.
func NewCrewAllocation(crew [NumRoles]CrewType, foci []Focus) (CrewAllocation, error) {
	a := CrewAllocation{Crew: crew}
	for _, f := range foci {
		if !f.Valid() {
			return CrewAllocation{}, &ConfigurationError{
				Entry: "crew allocation " + crewLabel(crew),
				Field: "focus",
				Value: fmt.Sprint(int(f)),
			}
		}
		a.Foci = a.Foci.Add(f)
	}
	return a, nil
}

func (a CrewAllocation) Has(c CrewType) bool {
	for _, m := range a.Crew {
		if m != CrewNone && m == c {
			return true
		}
	}
	return false
}

func (a CrewAllocation) String() string {
	return crewLabel(a.Crew)
}

func crewLabel(crew [NumRoles]CrewType) string {
	parts := make([]string, NumRoles)
	for i, r := range AllRoles {
		name := crew[i].String()
		if name == "" {
			name = "-"
		}
		parts[i] = r.String() + "=" + name
	}
	return strings.Join(parts, ",")
}

// Shard is an immutable placeable token. Targets[c.Slot()] is the focus it
// boosts through color c, FocusNone where it boosts nothing.
type Shard struct {
	Name       string
	Placements ColorSet
	Targets    [NumColors]Focus
}

// NewShard validates every target focus against the focus domain.
func NewShard(name string, placements []Color, targets map[Color]Focus) (*Shard, error) {
	s := &Shard{Name: name, Placements: NewColorSet(placements...)}
	for _, c := range AllColors {
		f, ok := targets[c]
		if !ok {
			continue
		}
		if !f.Valid() {
			return nil, &ConfigurationError{
				Entry: fmt.Sprintf("shard %q", name),
				Field: "focus for " + c.String(),
				Value: fmt.Sprint(int(f)),
			}
		}
		s.Targets[c.Slot()] = f
	}
	return s, nil
}

// CanOccupy reports whether c is a legal slot for the shard.
func (s *Shard) CanOccupy(c Color) bool {
	return s.Placements.Has(c)
}

// Foci is the set of every focus the shard can contribute to.
func (s *Shard) Foci() FocusSet {
	var out FocusSet
	for _, f := range s.Targets {
		out = out.Add(f)
	}
	return out
}

func (s *Shard) String() string {
	return s.Name
}

// Catalog is the static, validated domain data for one run.
type Catalog struct {
	// CrewFoci are the foci a crew allocation must unlock to be pursued.
	CrewFoci FocusSet
	// RoleFoci lists, per role, the foci that justify keeping its crew member
	// in a reported solution.
	RoleFoci [NumRoles]FocusSet
	// MasteryCrew[c.Slot()] is the crew type whose presence keeps color c on
	// the Mastery shard.
	MasteryCrew [NumColors]CrewType
	Mastery     *Shard
	Allocations []CrewAllocation
	Shards      []*Shard
	MaxModules  int
}

// MasteryFor returns the Mastery variant for alloc: the template with every
// color dropped whose bound crew type is absent.
func (c *Catalog) MasteryFor(alloc CrewAllocation) *Shard {
	m := *c.Mastery
	for _, col := range AllColors {
		if !alloc.Has(c.MasteryCrew[col.Slot()]) {
			m.Targets[col.Slot()] = FocusNone
		}
	}
	return &m
}

// PruneCrew clears every role whose crew does not serve foci. Solutions that
// include Mastery keep the whole allocation.
func (c *Catalog) PruneCrew(alloc CrewAllocation, foci FocusSet) CrewAllocation {
	if foci.Has(FocusMstry) {
		return alloc
	}
	out := alloc
	for i := range out.Crew {
		if !c.RoleFoci[i].Overlaps(foci) {
			out.Crew[i] = CrewNone
		}
	}
	return out
}
