package timeline

import (
	"math"
	"sort"
)

// Window is a half-open frame interval [From, To).
type Window struct {
	From int `yaml:"from"`
	To   int `yaml:"to"`
}

// Forever is the To of an unbounded window.
const Forever = math.MaxInt

// Windows is a set of windows; a frame is inside if any window contains it.
type Windows []Window

// Contains implements Predicate.
func (w Windows) Contains(frame int) bool {
	for _, win := range w {
		if win.From <= frame && frame < win.To {
			return true
		}
	}
	return false
}

// LastEdge returns the latest window boundary at or before frame, and false
// if no boundary has been crossed yet.
func (w Windows) LastEdge(frame int) (int, bool) {
	edges := make([]int, 0, len(w)*2)
	for _, win := range w {
		edges = append(edges, win.From)
		if win.To != Forever {
			edges = append(edges, win.To)
		}
	}
	sort.Ints(edges)

	last, found := 0, false
	for _, e := range edges {
		if e > frame {
			break
		}
		// Adjacent windows share an edge without changing state.
		if w.Contains(e) != w.Contains(e-1) {
			last, found = e, true
		}
	}
	return last, found
}

// Complement returns the frames of [0, Forever) that w does not cover, as
// sorted, non-overlapping windows. It lets a "hidden while" rule travel in a
// manifest as plain windows.
func (w Windows) Complement() Windows {
	sorted := append(Windows(nil), w...)
	sort.Slice(sorted, func(i, j int) bool { return sorted[i].From < sorted[j].From })

	var out Windows
	cursor := 0
	for _, win := range sorted {
		if win.To <= win.From {
			continue
		}
		if win.From > cursor {
			out = append(out, Window{From: cursor, To: win.From})
		}
		if win.To > cursor {
			cursor = win.To
		}
	}
	if cursor < Forever {
		out = append(out, Window{From: cursor, To: Forever})
	}
	return out
}
