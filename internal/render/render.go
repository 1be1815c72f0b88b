// Package render draws run reports for a terminal. Colors follow the
// terminal's profile (termenv); under the Ascii profile output is plain text.
package render

import (
	"fmt"
	"io"
	"sort"
	"strings"

	"github.com/muesli/termenv"

	"github.com/katalvlaran/treesearch/gridmaze"
	"github.com/katalvlaran/treesearch/internal/app"
	"github.com/katalvlaran/treesearch/trace"
)

// Renderer writes reports to a termenv output.
type Renderer struct {
	out *termenv.Output
}

// New returns a renderer for w. Pass termenv.WithProfile to force a profile.
func New(w io.Writer, opts ...termenv.OutputOption) *Renderer {
	return &Renderer{out: termenv.NewOutput(w, opts...)}
}

// glyphs for maze cells that are neither wall, start, goal nor on the path.
var glyphs = map[trace.Category]byte{
	trace.NotInMemory: '.',
	trace.InMemory:    'm',
	trace.Expanded:    'x',
	trace.InFrontier:  'f',
	trace.Expanding:   '@',
	trace.Goal:        'G',
}

// colors are ANSI 16-color indices.
var colors = map[trace.Category]string{
	trace.InMemory:   "5",
	trace.Expanded:   "4",
	trace.InFrontier: "6",
	trace.Expanding:  "3",
	trace.Goal:       "2",
}

// Report writes a short summary of rep, then the maze overlay or the
// coloring when present.
func (r *Renderer) Report(rep *app.Report) {
	fmt.Fprintf(r.out, "kind: %s  algorithm: %s\n", rep.Kind, rep.Algorithm)
	status := r.out.String(rep.Status.String()).Bold()
	if rep.Found {
		status = status.Foreground(r.out.Color("2"))
	} else {
		status = status.Foreground(r.out.Color("1"))
	}
	fmt.Fprintf(r.out, "status: %s\n", status)
	if rep.Found {
		fmt.Fprintf(r.out, "actions (%d): %s\n", len(rep.Actions), strings.Join(rep.Actions, " "))
		if rep.Maze != nil {
			fmt.Fprintf(r.out, "states: %s\n", strings.Join(rep.States, " -> "))
		}
	}
	s := rep.Stats
	fmt.Fprintf(r.out, "stats: generated=%d expanded=%d pruned=%d cutoffs=%d max-frontier=%d\n",
		s.Generated, s.Expanded, s.Pruned, s.Cutoffs, s.MaxFrontier)

	if rep.Maze != nil {
		fmt.Fprintln(r.out)
		r.Maze(rep.Maze)
	}
	if len(rep.Coloring) > 0 {
		fmt.Fprintln(r.out)
		r.Coloring(rep.Coloring)
	}
}

// Maze draws the grid with one glyph per cell. Path cells are '*'; other
// open cells show the trace category of the nodes that reached them.
func (r *Renderer) Maze(v *app.MazeView) {
	for y, row := range v.Rows {
		var b strings.Builder
		for x := 0; x < len(row); x++ {
			b.WriteString(r.cell(v, gridmaze.Position{X: x, Y: y}, row[x]))
		}
		fmt.Fprintln(r.out, b.String())
	}
}

func (r *Renderer) cell(v *app.MazeView, p gridmaze.Position, ch byte) string {
	cat := v.Cells[p]
	switch {
	case ch == gridmaze.WallChar:
		return string(ch)
	case ch == gridmaze.StartChar || ch == gridmaze.GoalChar:
		return r.paint(string(ch), cat)
	case v.Path[p]:
		return r.out.String("*").Bold().Foreground(r.out.Color("2")).String()
	default:
		return r.paint(string(glyphs[cat]), cat)
	}
}

func (r *Renderer) paint(s string, cat trace.Category) string {
	c, ok := colors[cat]
	if !ok {
		return s
	}

	return r.out.String(s).Foreground(r.out.Color(c)).String()
}

// Coloring lists region=color pairs sorted by region, each painted in a
// color derived from its name.
func (r *Renderer) Coloring(assignment map[string]string) {
	regions := make([]string, 0, len(assignment))
	for k := range assignment {
		regions = append(regions, k)
	}
	sort.Strings(regions)
	for _, k := range regions {
		name := assignment[k]
		fmt.Fprintf(r.out, "%-4s %s\n", k, r.out.String(name).Foreground(r.out.Color(colorCode(name))))
	}
}

// colorCode maps common color names to ANSI indices; anything else is white.
func colorCode(name string) string {
	switch strings.ToLower(name) {
	case "red":
		return "1"
	case "green":
		return "2"
	case "yellow":
		return "3"
	case "blue":
		return "4"
	case "magenta", "purple":
		return "5"
	case "cyan":
		return "6"
	default:
		return "7"
	}
}

// Frames writes one line per recorded checkpoint.
func (r *Renderer) Frames(frames []trace.Frame) {
	for i, f := range frames {
		fmt.Fprintf(r.out, "%4d %-12s node=%-4d expanding=%-4d frontier=%-3d generated=%d\n",
			i, f.Checkpoint, f.Node, f.Expanding, f.FrontierSize, f.Stats.Generated)
	}
}

// Legend explains the maze glyphs.
func (r *Renderer) Legend() {
	cats := []trace.Category{trace.Expanding, trace.InFrontier, trace.Expanded, trace.InMemory, trace.NotInMemory}
	parts := make([]string, 0, len(cats)+1)
	parts = append(parts, "*=path")
	for _, c := range cats {
		parts = append(parts, r.paint(string(glyphs[c]), c)+"="+c.String())
	}
	fmt.Fprintln(r.out, strings.Join(parts, " "))
}
