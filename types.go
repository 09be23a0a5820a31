package main

import (
	"math/bits"
	"strings"
)

type Focus int

const (
	FocusNone Focus = iota
	FocusB6com
	FocusB6mat
	FocusB6par
	FocusCombt
	FocusFghtr
	FocusFixtr
	FocusMstry
	FocusResou
	FocusRshH
	FocusRshS
	FocusShard
	FocusSpcmn
	FocusSynth
	FocusWarp

	numFoci = int(FocusWarp)
)

// AllFoci lists the focus domain in display order.
var AllFoci = []Focus{
	FocusB6com, FocusB6mat, FocusB6par, FocusCombt, FocusFghtr, FocusFixtr, FocusMstry,
	FocusResou, FocusRshH, FocusRshS, FocusShard, FocusSpcmn, FocusSynth, FocusWarp,
}

func (f Focus) Valid() bool {
	return f > FocusNone && f <= FocusWarp
}

func (f Focus) String() string {
	switch f {
	case FocusB6com:
		return "B6com"
	case FocusB6mat:
		return "B6mat"
	case FocusB6par:
		return "B6par"
	case FocusCombt:
		return "Combt"
	case FocusFghtr:
		return "Fghtr"
	case FocusFixtr:
		return "Fixtr"
	case FocusMstry:
		return "Mstry"
	case FocusResou:
		return "Resou"
	case FocusRshH:
		return "Rsh_H"
	case FocusRshS:
		return "Rsh_S"
	case FocusShard:
		return "Shard"
	case FocusSpcmn:
		return "Spcmn"
	case FocusSynth:
		return "Synth"
	case FocusWarp:
		return "Warp"
	}
	return ""
}

func parseFocus(s string) Focus {
	for _, f := range AllFoci {
		if f.String() == s {
			return f
		}
	}
	return FocusNone
}

// FocusSet is a bitmask over Focus; bit f-1 set means f is a member.
type FocusSet uint16

func NewFocusSet(foci ...Focus) FocusSet {
	var s FocusSet
	for _, f := range foci {
		s = s.Add(f)
	}
	return s
}

func (s FocusSet) Add(f Focus) FocusSet {
	if !f.Valid() {
		return s
	}
	return s | 1<<(f-1)
}

func (s FocusSet) Has(f Focus) bool {
	return f.Valid() && s&(1<<(f-1)) != 0
}

func (s FocusSet) Union(o FocusSet) FocusSet     { return s | o }
func (s FocusSet) Minus(o FocusSet) FocusSet     { return s &^ o }
func (s FocusSet) Intersect(o FocusSet) FocusSet { return s & o }
func (s FocusSet) Overlaps(o FocusSet) bool      { return s&o != 0 }
func (s FocusSet) Empty() bool                   { return s == 0 }
func (s FocusSet) Len() int                      { return bits.OnesCount16(uint16(s)) }

// Foci returns the members in domain order.
func (s FocusSet) Foci() []Focus {
	out := make([]Focus, 0, s.Len())
	for _, f := range AllFoci {
		if s.Has(f) {
			out = append(out, f)
		}
	}
	return out
}

func (s FocusSet) Strings() []string {
	foci := s.Foci()
	out := make([]string, len(foci))
	for i, f := range foci {
		out[i] = f.String()
	}
	return out
}

func (s FocusSet) String() string {
	return "[" + strings.Join(s.Strings(), " ") + "]"
}

// ForEachProperSubset calls fn for every non-empty proper subset of s.
func (s FocusSet) ForEachProperSubset(fn func(FocusSet)) {
	for sub := (s - 1) & s; sub > 0; sub = (sub - 1) & s {
		fn(sub)
	}
}

// Color is a slot color. Its position in AllColors is the slot index it binds to.
type Color int

const (
	ColorNone Color = iota
	ColorBlue
	ColorGreen
	ColorOrange
	ColorPink
	ColorRed

	NumColors = int(ColorRed)
)

var AllColors = [NumColors]Color{ColorBlue, ColorGreen, ColorOrange, ColorPink, ColorRed}

func (c Color) Valid() bool {
	return c > ColorNone && c <= ColorRed
}

// Slot is the placement index bound to c.
func (c Color) Slot() int { return int(c) - 1 }

func (c Color) String() string {
	switch c {
	case ColorBlue:
		return "Blue"
	case ColorGreen:
		return "Green"
	case ColorOrange:
		return "Orange"
	case ColorPink:
		return "Pink"
	case ColorRed:
		return "Red"
	}
	return ""
}

func (c Color) Initial() string {
	if !c.Valid() {
		return ""
	}
	return c.String()[:1]
}

func parseColor(s string) Color {
	switch s {
	case "Blue":
		return ColorBlue
	case "Green":
		return ColorGreen
	case "Orange":
		return ColorOrange
	case "Pink":
		return ColorPink
	case "Red":
		return ColorRed
	}
	return ColorNone
}

type ColorSet uint8

func NewColorSet(colors ...Color) ColorSet {
	var s ColorSet
	for _, c := range colors {
		if c.Valid() {
			s |= 1 << c.Slot()
		}
	}
	return s
}

func (s ColorSet) Has(c Color) bool {
	return c.Valid() && s&(1<<c.Slot()) != 0
}

type CrewType int

const (
	CrewNone CrewType = iota
	CrewDi
	CrewVx
	CrewWx
	CrewXt
	CrewYt
	CrewZn
	CrewZt
)

func (c CrewType) String() string {
	switch c {
	case CrewDi:
		return "Di"
	case CrewVx:
		return "Vx"
	case CrewWx:
		return "Wx"
	case CrewXt:
		return "Xt"
	case CrewYt:
		return "Yt"
	case CrewZn:
		return "Zn"
	case CrewZt:
		return "Zt"
	}
	return ""
}

func parseCrewType(s string) CrewType {
	switch s {
	case "Di":
		return CrewDi
	case "Vx":
		return CrewVx
	case "Wx":
		return CrewWx
	case "Xt":
		return CrewXt
	case "Yt":
		return CrewYt
	case "Zn":
		return CrewZn
	case "Zt":
		return CrewZt
	}
	return CrewNone
}

// Role is a crew station. Declaration order is the display order.
type Role int

const (
	RoleSR Role = iota
	RoleST
	RoleME
	RoleSP

	NumRoles = 4
)

var AllRoles = [NumRoles]Role{RoleSR, RoleST, RoleME, RoleSP}

func (r Role) String() string {
	switch r {
	case RoleSR:
		return "SR"
	case RoleST:
		return "ST"
	case RoleME:
		return "ME"
	case RoleSP:
		return "SP"
	}
	return ""
}

func parseRole(s string) (Role, bool) {
	for _, r := range AllRoles {
		if r.String() == s {
			return r, true
		}
	}
	return 0, false
}

// Link is an unordered pair of distinct colors, stored with A < B.
type Link struct {
	A, B Color
}

const NumLinks = NumColors * (NumColors - 1) / 2

// AllLinks holds every color pair in combination order (BG, BO, BP, BR, GO, ...).
var AllLinks = func() [NumLinks]Link {
	var out [NumLinks]Link
	i := 0
	for a := 0; a < NumColors; a++ {
		for b := a + 1; b < NumColors; b++ {
			out[i] = Link{AllColors[a], AllColors[b]}
			i++
		}
	}
	return out
}()

func NewLink(a, b Color) Link {
	if a > b {
		a, b = b, a
	}
	return Link{a, b}
}

// Index is the position of l in AllLinks, or -1 for a degenerate pair.
func (l Link) Index() int {
	if !l.A.Valid() || !l.B.Valid() || l.A >= l.B {
		return -1
	}
	a, b := l.A.Slot(), l.B.Slot()
	// pairs before row a: sum of (NumColors-1-k) for k < a
	return a*(2*NumColors-a-1)/2 + (b - a - 1)
}

func (l Link) String() string {
	return l.A.Initial() + l.B.Initial()
}

// LinkSet is a bitmask over link indices.
type LinkSet uint16

func (s LinkSet) Add(l Link) LinkSet {
	idx := l.Index()
	if idx < 0 {
		return s
	}
	return s | 1<<idx
}

func (s LinkSet) Has(l Link) bool {
	idx := l.Index()
	return idx >= 0 && s&(1<<idx) != 0
}

// Contains reports whether every link of o is in s.
func (s LinkSet) Contains(o LinkSet) bool { return o&^s == 0 }

func (s LinkSet) Len() int { return bits.OnesCount16(uint16(s)) }

func (s LinkSet) Links() []Link {
	var out []Link
	for i, l := range AllLinks {
		if s&(1<<i) != 0 {
			out = append(out, l)
		}
	}
	return out
}

func (s LinkSet) Strings() []string {
	links := s.Links()
	out := make([]string, len(links))
	for i, l := range links {
		out[i] = l.String()
	}
	return out
}
