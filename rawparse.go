package main

import (
	_ "embed"
	"errors"
	"fmt"
	"os"

	"github.com/tidwall/gjson"
)

//go:embed catalog.json
var embeddedCatalog string

// DefaultCatalog parses the catalog shipped with the binary.
func DefaultCatalog() (*Catalog, error) {
	return parseCatalog(embeddedCatalog)
}

// LoadCatalog reads and validates a catalog file.
func LoadCatalog(path string) (*Catalog, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read catalog: %w", err)
	}
	cat, err := parseCatalog(string(raw))
	if err != nil {
		return nil, fmt.Errorf("catalog %s: %w", path, err)
	}
	return cat, nil
}

func parseCatalog(dataJSON string) (*Catalog, error) {
	if !gjson.Valid(dataJSON) {
		return nil, errors.New("catalog is not valid JSON")
	}
	root := gjson.Parse(dataJSON)
	cat := &Catalog{MaxModules: int(root.Get("maxModules").Int())}

	var err error
	if cat.CrewFoci, err = parseFocusList(root.Get("crewFoci"), "crewFoci"); err != nil {
		return nil, err
	}

	var roleErr error
	root.Get("roleFoci").ForEach(func(k, v gjson.Result) bool {
		role, ok := parseRole(k.String())
		if !ok {
			roleErr = &ConfigurationError{Entry: "roleFoci", Field: "role", Value: k.String()}
			return false
		}
		cat.RoleFoci[role], roleErr = parseFocusList(v, "roleFoci."+k.String())
		return roleErr == nil
	})
	if roleErr != nil {
		return nil, roleErr
	}

	if cat.Mastery, cat.MasteryCrew, err = parseMastery(root.Get("mastery")); err != nil {
		return nil, err
	}

	for i, a := range root.Get("allocations").Array() {
		alloc, err := parseAllocation(a, i)
		if err != nil {
			return nil, err
		}
		cat.Allocations = append(cat.Allocations, alloc)
	}

	for _, s := range root.Get("shards").Array() {
		shard, err := parseShard(s)
		if err != nil {
			return nil, err
		}
		cat.Shards = append(cat.Shards, shard)
	}
	return cat, nil
}

func parseFocusList(v gjson.Result, entry string) (FocusSet, error) {
	var out FocusSet
	for _, item := range v.Array() {
		f := parseFocus(item.String())
		if f == FocusNone {
			return 0, &ConfigurationError{Entry: entry, Field: "focus", Value: item.String()}
		}
		out = out.Add(f)
	}
	return out, nil
}

func parseColorList(v gjson.Result, entry string) ([]Color, error) {
	var out []Color
	for _, item := range v.Array() {
		c := parseColor(item.String())
		if c == ColorNone {
			return nil, &ConfigurationError{Entry: entry, Field: "color", Value: item.String()}
		}
		out = append(out, c)
	}
	return out, nil
}

func parseTargets(v gjson.Result, entry string) (map[Color]Focus, error) {
	targets := make(map[Color]Focus)
	var err error
	v.ForEach(func(k, f gjson.Result) bool {
		c := parseColor(k.String())
		if c == ColorNone {
			err = &ConfigurationError{Entry: entry, Field: "color", Value: k.String()}
			return false
		}
		focus := parseFocus(f.String())
		if focus == FocusNone {
			err = &ConfigurationError{Entry: entry, Field: "focus for " + c.String(), Value: f.String()}
			return false
		}
		targets[c] = focus
		return true
	})
	return targets, err
}

func parseShard(v gjson.Result) (*Shard, error) {
	name := v.Get("name").String()
	entry := fmt.Sprintf("shard %q", name)
	if name == "" {
		return nil, &ConfigurationError{Entry: "shards", Field: "name", Value: ""}
	}
	placements, err := parseColorList(v.Get("placements"), entry)
	if err != nil {
		return nil, err
	}
	targets, err := parseTargets(v.Get("targets"), entry)
	if err != nil {
		return nil, err
	}
	return NewShard(name, placements, targets)
}

func parseMastery(v gjson.Result) (*Shard, [NumColors]CrewType, error) {
	var crew [NumColors]CrewType
	name := v.Get("name").String()
	if name == "" {
		name = FocusMstry.String()
	}
	entry := fmt.Sprintf("mastery shard %q", name)
	placements, err := parseColorList(v.Get("placements"), entry)
	if err != nil {
		return nil, crew, err
	}
	focus := FocusMstry
	if f := v.Get("focus"); f.Exists() {
		if focus = parseFocus(f.String()); focus == FocusNone {
			return nil, crew, &ConfigurationError{Entry: entry, Field: "focus", Value: f.String()}
		}
	}
	targets := make(map[Color]Focus, NumColors)
	for _, c := range AllColors {
		targets[c] = focus
	}

	var crewErr error
	v.Get("crew").ForEach(func(k, t gjson.Result) bool {
		c := parseColor(k.String())
		if c == ColorNone {
			crewErr = &ConfigurationError{Entry: entry, Field: "color", Value: k.String()}
			return false
		}
		ct := parseCrewType(t.String())
		if ct == CrewNone {
			crewErr = &ConfigurationError{Entry: entry, Field: "crew for " + c.String(), Value: t.String()}
			return false
		}
		crew[c.Slot()] = ct
		return true
	})
	if crewErr != nil {
		return nil, crew, crewErr
	}

	shard, err := NewShard(name, placements, targets)
	return shard, crew, err
}

func parseAllocation(v gjson.Result, idx int) (CrewAllocation, error) {
	entry := fmt.Sprintf("crew allocation %d", idx)
	var crew [NumRoles]CrewType
	for _, r := range AllRoles {
		raw := v.Get(r.String())
		if !raw.Exists() || raw.Type == gjson.Null || raw.String() == "" {
			continue
		}
		ct := parseCrewType(raw.String())
		if ct == CrewNone {
			return CrewAllocation{}, &ConfigurationError{Entry: entry, Field: "crew for " + r.String(), Value: raw.String()}
		}
		crew[r] = ct
	}
	var foci []Focus
	for _, item := range v.Get("foci").Array() {
		f := parseFocus(item.String())
		if f == FocusNone {
			return CrewAllocation{}, &ConfigurationError{Entry: entry, Field: "focus", Value: item.String()}
		}
		foci = append(foci, f)
	}
	return NewCrewAllocation(crew, foci)
}
