package mapcoloring

import (
	"errors"
	"fmt"
	"strings"

	"github.com/katalvlaran/treesearch/search"
)

// Sentinel errors.
var (
	ErrNoRegions       = errors.New("mapcoloring: no regions")
	ErrNoColors        = errors.New("mapcoloring: no colors")
	ErrDuplicateRegion = errors.New("mapcoloring: duplicate region")
	ErrDuplicateColor  = errors.New("mapcoloring: duplicate color")
	ErrUnknownRegion   = errors.New("mapcoloring: unknown region")
	ErrBadBorder       = errors.New("mapcoloring: border must join two distinct regions")
	ErrTooManyColors   = errors.New("mapcoloring: at most 255 colors")
)

// unassigned marks a slot with no color.
const unassigned = 0

// State is a partial assignment. Slot i holds 0 (no color) or 1+index of the
// color given to region i. The zero value is not a valid state of any problem;
// use Problem.InitialState.
type State struct {
	slots string
}

// Assigned returns the number of colored regions.
func (s State) Assigned() int {
	n := 0
	for i := 0; i < len(s.slots); i++ {
		if s.slots[i] != unassigned {
			n++
		}
	}

	return n
}

// Params is the configuration form of a map coloring problem.
type Params struct {
	Regions []string   `mapstructure:"regions" yaml:"regions"`
	Borders [][]string `mapstructure:"borders" yaml:"borders"`
	Colors  []string   `mapstructure:"colors" yaml:"colors"`
}

// Problem is a map coloring instance. It is immutable and implements
// search.Problem[State].
type Problem struct {
	regions   []string
	index     map[string]int
	neighbors [][]int
	colors    []string
}

var _ search.Problem[State] = (*Problem)(nil)

// New builds a problem from region names, bordering pairs and color names.
func New(regions []string, borders [][2]string, colors []string) (*Problem, error) {
	if len(regions) == 0 {
		return nil, ErrNoRegions
	}
	if len(colors) == 0 {
		return nil, ErrNoColors
	}
	if len(colors) > 255 {
		return nil, ErrTooManyColors
	}
	seenColor := make(map[string]bool, len(colors))
	for _, c := range colors {
		if seenColor[c] {
			return nil, fmt.Errorf("%w: %q", ErrDuplicateColor, c)
		}
		seenColor[c] = true
	}

	p := &Problem{
		regions:   append([]string(nil), regions...),
		index:     make(map[string]int, len(regions)),
		neighbors: make([][]int, len(regions)),
		colors:    append([]string(nil), colors...),
	}
	for i, r := range regions {
		if _, dup := p.index[r]; dup {
			return nil, fmt.Errorf("%w: %q", ErrDuplicateRegion, r)
		}
		p.index[r] = i
	}
	for _, b := range borders {
		a, okA := p.index[b[0]]
		c, okC := p.index[b[1]]
		switch {
		case !okA:
			return nil, fmt.Errorf("%w: %q", ErrUnknownRegion, b[0])
		case !okC:
			return nil, fmt.Errorf("%w: %q", ErrUnknownRegion, b[1])
		case a == c:
			return nil, fmt.Errorf("%w: %q", ErrBadBorder, b[0])
		}
		if !contains(p.neighbors[a], c) {
			p.neighbors[a] = append(p.neighbors[a], c)
			p.neighbors[c] = append(p.neighbors[c], a)
		}
	}

	return p, nil
}

// FromParams builds a problem from its configuration form.
func FromParams(prm Params) (*Problem, error) {
	borders := make([][2]string, 0, len(prm.Borders))
	for _, b := range prm.Borders {
		if len(b) != 2 {
			return nil, fmt.Errorf("%w: %v", ErrBadBorder, b)
		}
		borders = append(borders, [2]string{b[0], b[1]})
	}

	return New(prm.Regions, borders, prm.Colors)
}

// Regions returns the region names in assignment order.
func (p *Problem) Regions() []string { return append([]string(nil), p.regions...) }

// Colors returns the color names in the order they are tried.
func (p *Problem) Colors() []string { return append([]string(nil), p.colors...) }

// Neighbors returns the regions bordering region.
func (p *Problem) Neighbors(region string) ([]string, error) {
	i, ok := p.index[region]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownRegion, region)
	}
	out := make([]string, len(p.neighbors[i]))
	for k, j := range p.neighbors[i] {
		out[k] = p.regions[j]
	}

	return out, nil
}

// InitialState returns the empty assignment.
func (p *Problem) InitialState() State {
	return State{slots: strings.Repeat(string(rune(unassigned)), len(p.regions))}
}

// IsGoal reports whether every region is colored and no border is violated.
func (p *Problem) IsGoal(s State) bool {
	if len(s.slots) != len(p.regions) {
		return false
	}
	for i := 0; i < len(s.slots); i++ {
		if s.slots[i] == unassigned {
			return false
		}
	}

	return p.Consistent(s)
}

// Consistent reports whether no two bordering colored regions share a color.
func (p *Problem) Consistent(s State) bool {
	for i := 0; i < len(s.slots); i++ {
		if s.slots[i] == unassigned {
			continue
		}
		for _, j := range p.neighbors[i] {
			if s.slots[j] == s.slots[i] {
				return false
			}
		}
	}

	return true
}

// Expand colors the first uncolored region with every color its colored
// neighbors leave free. Actions read "<region>=<color>".
func (p *Problem) Expand(s State) []search.Successor[State] {
	i := strings.IndexByte(s.slots, unassigned)
	if i < 0 {
		return nil
	}
	out := make([]search.Successor[State], 0, len(p.colors))
	for c := range p.colors {
		v := byte(c + 1)
		if !p.allowed(s, i, v) {
			continue
		}
		b := []byte(s.slots)
		b[i] = v
		out = append(out, search.Successor[State]{
			Action: p.regions[i] + "=" + p.colors[c],
			State:  State{slots: string(b)},
		})
	}

	return out
}

// Domain returns the colors region may still take in s: its own color if
// already assigned, otherwise every color no colored neighbor uses.
func (p *Problem) Domain(s State, region string) ([]string, error) {
	i, ok := p.index[region]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownRegion, region)
	}
	if v := s.slots[i]; v != unassigned {
		return []string{p.colors[v-1]}, nil
	}
	var out []string
	for c := range p.colors {
		if p.allowed(s, i, byte(c+1)) {
			out = append(out, p.colors[c])
		}
	}

	return out, nil
}

// Assignment returns the colored regions of s.
func (p *Problem) Assignment(s State) map[string]string {
	out := make(map[string]string)
	for i := 0; i < len(s.slots); i++ {
		if v := s.slots[i]; v != unassigned {
			out[p.regions[i]] = p.colors[v-1]
		}
	}

	return out
}

// Format renders s as "R1=Color R2=? ..." in region order.
func (p *Problem) Format(s State) string {
	parts := make([]string, len(p.regions))
	for i, r := range p.regions {
		color := "?"
		if i < len(s.slots) && s.slots[i] != unassigned {
			color = p.colors[s.slots[i]-1]
		}
		parts[i] = r + "=" + color
	}

	return strings.Join(parts, " ")
}

func (p *Problem) allowed(s State, i int, v byte) bool {
	for _, j := range p.neighbors[i] {
		if s.slots[j] == v {
			return false
		}
	}

	return true
}

func contains(xs []int, v int) bool {
	for _, x := range xs {
		if x == v {
			return true
		}
	}

	return false
}
