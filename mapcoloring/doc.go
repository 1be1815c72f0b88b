// Package mapcoloring poses map coloring (a constraint-satisfaction problem)
// as an uninformed search problem: each step assigns a color to the next
// uncolored region, and a goal is a complete assignment in which no two
// bordering regions share a color.
//
// Regions are assigned in declaration order and only colors not already used
// by a colored neighbor are offered, so every reachable state is consistent
// and the search tree has depth exactly len(regions).
//
// Errors:
//
//   - ErrNoRegions, ErrNoColors        empty inputs.
//   - ErrDuplicateRegion, ErrDuplicateColor
//   - ErrUnknownRegion                 a border names an undeclared region.
//   - ErrBadBorder                     a border is not a pair of distinct regions.
//   - ErrTooManyColors                 more than 255 colors.
package mapcoloring
