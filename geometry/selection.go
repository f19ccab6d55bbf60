package geometry

import (
	"sort"

	"github.com/paraforge-go/emg/vector"
)

// replaceSelection overwrites the current selection with idxs, sorted
// ascending, rebuilding the membership set alongside it.
func (g *Geometry) replaceSelection(idxs []uint32) {
	sorted := append([]uint32(nil), idxs...)
	sort.Slice(sorted, func(i, j int) bool { return sorted[i] < sorted[j] })

	g.selection = sorted
	g.selSet = make(map[uint32]struct{}, len(sorted))
	for _, i := range sorted {
		g.selSet[i] = struct{}{}
	}
}

// selected reports whether vertex i is in the current selection.
func (g *Geometry) selected(i uint32) bool {
	_, ok := g.selSet[i]
	return ok
}

// selectAdd inserts i into the selection, keeping ascending order.
func (g *Geometry) selectAdd(i uint32) {
	if g.selected(i) {
		return
	}
	g.selSet[i] = struct{}{}
	pos := sort.Search(len(g.selection), func(k int) bool { return g.selection[k] >= i })
	g.selection = append(g.selection, 0)
	copy(g.selection[pos+1:], g.selection[pos:])
	g.selection[pos] = i
}

// selectRemove removes i from the selection if present, reporting whether
// it was present.
func (g *Geometry) selectRemove(i uint32) bool {
	if !g.selected(i) {
		return false
	}
	delete(g.selSet, i)
	pos := sort.Search(len(g.selection), func(k int) bool { return g.selection[k] >= i })
	g.selection = append(g.selection[:pos], g.selection[pos+1:]...)
	return true
}

// selectClear empties the selection.
func (g *Geometry) selectClear() {
	g.selection = nil
	g.selSet = make(map[uint32]struct{})
}

// triSelected reports whether every vertex of tri is in the selection.
func (g *Geometry) triSelected(tri Tri) bool {
	return g.selected(tri[0]) && g.selected(tri[1]) && g.selected(tri[2])
}

// selectEpsilon is the per-axis tolerance applied to Select's bounding box,
// per spec.
const selectEpsilon = 1e-6

// Select clears the current selection, then selects every vertex strictly
// inside the bounding box spanned by p1 and p2, expanded by selectEpsilon
// on each axis. Idempotent: calling it twice with the same bounds yields
// the same selection.
func (g *Geometry) Select(p1, p2 vector.V3) {
	lower := p1.Inf(p2).AddScalar(-selectEpsilon)
	upper := p1.Sup(p2).AddScalar(selectEpsilon)

	var idxs []uint32
	for i, v := range g.vtcs {
		if lower.X < v.X && v.X < upper.X &&
			lower.Y < v.Y && v.Y < upper.Y &&
			lower.Z < v.Z && v.Z < upper.Z {
			idxs = append(idxs, uint32(i))
		}
	}
	g.replaceSelection(idxs)
}
