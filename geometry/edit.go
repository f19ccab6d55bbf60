package geometry

import "github.com/paraforge-go/emg/vector"

// FlipNormals reverses the winding order of every triangle whose vertices
// are all selected, by swapping its first and last vertex slots.
func (g *Geometry) FlipNormals() {
	for t := range g.tris {
		if g.triSelected(g.tris[t]) {
			g.tris[t][0], g.tris[t][2] = g.tris[t][2], g.tris[t][0]
		}
	}
}

// Doubleside adds a reverse-wound copy of every selected triangle, so the
// surface renders from both sides. The added triangles' vertices are
// exactly the originals', not copies, so edits to the underlying vertices
// affect both faces together.
func (g *Geometry) Doubleside() {
	var backfaces []Tri
	for _, tri := range g.tris {
		if g.triSelected(tri) {
			backfaces = append(backfaces, Tri{tri[2], tri[1], tri[0]})
		}
	}
	g.tris = append(g.tris, backfaces...)
}

// Copy appends a duplicate of every selected vertex and every triangle
// whose vertices are all selected, remapped onto the new vertices, and
// replaces the selection with the newly created vertices.
func (g *Geometry) Copy() {
	remap := make(map[uint32]uint32, len(g.selection))
	newIdxs := make([]uint32, 0, len(g.selection))
	for _, i := range g.selection {
		ni := g.CreateVtx(g.vtcs[i])
		remap[i] = ni
		newIdxs = append(newIdxs, ni)
	}

	for _, tri := range g.Tris() {
		if g.triSelected(tri) {
			g.tris = append(g.tris, Tri{remap[tri[0]], remap[tri[1]], remap[tri[2]]})
		}
	}

	g.replaceSelection(newIdxs)
}

// Merge collapses every selected vertex onto the first (lowest-index)
// selected vertex, which is moved to location: every triangle reference
// to a later selected vertex is rewritten to the target, triangles
// collapsed by the rewrite are dropped, the now-unreferenced duplicates
// are deleted, and the selection is reset to just the target vertex.
func (g *Geometry) Merge(location vector.V3) error {
	if len(g.selection) == 0 {
		return nil
	}

	target := g.selection[0]
	rest := append([]uint32(nil), g.selection[1:]...)
	g.vtcs[target] = location

	dup := make(map[uint32]struct{}, len(rest))
	for _, i := range rest {
		dup[i] = struct{}{}
	}

	for t := range g.tris {
		for slot := 0; slot < 3; slot++ {
			if _, ok := dup[g.tris[t][slot]]; ok {
				g.tris[t][slot] = target
			}
		}
	}

	// A triangle with two or three slots now pointing at the target has
	// collapsed to a line or point and is removed. Walks descending so
	// swap-removes never disturb an index not yet visited.
	for t := len(g.tris) - 1; t >= 0; t-- {
		tri := g.tris[t]
		hits := 0
		for _, v := range tri {
			if v == target {
				hits++
			}
		}
		if hits >= 2 {
			g.tris, _ = swapRemove(g.tris, uint32(t))
		}
	}

	g.replaceSelection(rest)
	if err := g.DeleteVtcs(); err != nil {
		return err
	}

	g.replaceSelection([]uint32{target})
	return nil
}

// edgeKey is an ordered pair of vertex indices identifying a directed
// triangle edge.
type edgeKey struct{ a, b uint32 }

// Extrude appends a copy of every selected vertex offset by (dx, dy, dz),
// then reconnects the old and new surfaces: for every triangle edge that belongs to
// exactly one selected triangle (a boundary edge of the selection), a
// quad is stitched between the edge's original position and its
// extruded copy. Interior edges, shared by two selected triangles, need
// no stitching since both their triangles move together.
//
// When every vertex in the geometry is selected, the original triangles
// are kept in place (reversed, so they still face outward as the far
// cap) and the displaced triangles are appended as a new cap. Otherwise
// the original triangles are overwritten in place by the displaced
// triple, matching the original implementation's partial-selection
// behavior (this moves rather than copies the affected triangles).
func (g *Geometry) Extrude(dx, dy, dz float64) error {
	displacement := vector.New(dx, dy, dz)
	origIdxs := g.Selection()
	allSelected := len(origIdxs) == len(g.vtcs)

	remap := make(map[uint32]uint32, len(origIdxs))
	for _, i := range origIdxs {
		remap[i] = g.CreateVtx(g.vtcs[i].Add(displacement))
	}

	// boundary tracks, per edge, whether it belongs to exactly one selected
	// triangle; such edges get side walls. Keys keep the direction the edge
	// was first seen in, and edgeOrder preserves first-seen order so wall
	// emission is deterministic.
	boundary := make(map[edgeKey]bool)
	var edgeOrder []edgeKey

	origTriCount := uint32(len(g.tris))
	for t := uint32(0); t < origTriCount; t++ {
		tri := g.tris[t]
		t0, ok0 := remap[tri[0]]
		t1, ok1 := remap[tri[1]]
		t2, ok2 := remap[tri[2]]
		if !ok0 || !ok1 || !ok2 {
			continue
		}

		for i := 0; i < 3; i++ {
			e0, e1 := tri[i], tri[(i+1)%3]
			if _, ok := boundary[edgeKey{e0, e1}]; ok {
				boundary[edgeKey{e0, e1}] = false
			} else if _, ok := boundary[edgeKey{e1, e0}]; ok {
				boundary[edgeKey{e1, e0}] = false
			} else {
				boundary[edgeKey{e0, e1}] = true
				edgeOrder = append(edgeOrder, edgeKey{e0, e1})
			}
		}

		if allSelected {
			g.tris[t][0], g.tris[t][1] = g.tris[t][1], g.tris[t][0]
			g.tris = append(g.tris, Tri{t0, t1, t2})
		} else {
			g.tris[t] = Tri{t0, t1, t2}
		}
	}

	for _, e := range edgeOrder {
		if !boundary[e] {
			continue
		}
		g.tris = append(g.tris,
			Tri{e.a, e.b, remap[e.b]},
			Tri{e.a, remap[e.b], remap[e.a]},
		)
	}

	newIdxs := make([]uint32, 0, len(origIdxs))
	for _, i := range origIdxs {
		newIdxs = append(newIdxs, remap[i])
	}
	g.replaceSelection(newIdxs)
	return nil
}
