package geometry

import (
	"github.com/paraforge-go/emg/internal/emgerr"
	"github.com/paraforge-go/emg/vector"
)

// CreateVtx appends v and returns its new index. The new vertex is not
// added to the selection.
func (g *Geometry) CreateVtx(v vector.V3) uint32 {
	g.vtcs = append(g.vtcs, v)
	return uint32(len(g.vtcs) - 1)
}

// CreateTri appends tri and returns its new index. Fails with
// VtxOutOfBounds if any vertex index is out of range.
func (g *Geometry) CreateTri(tri Tri) (uint32, error) {
	for _, v := range tri {
		if v >= uint32(len(g.vtcs)) {
			return 0, emgerr.New(emgerr.VtxOutOfBounds, "vtx %d >= vtx count %d", v, len(g.vtcs))
		}
	}
	g.tris = append(g.tris, tri)
	return uint32(len(g.tris) - 1), nil
}

// DeleteVtx removes vertex vtx via swap-remove, deleting every triangle
// that referenced it, then rewriting surviving triangle references and
// the selection to follow the relocated last vertex.
//
// The fixup loop walks all three vertex slots of every triangle
// (positions 0, 1, 2), replacing any occurrence of the swapped-from index
// with vtx — a vertex can appear in more than one slot of a degenerate
// triangle, so every slot must be checked, not just the first match.
func (g *Geometry) DeleteVtx(vtx uint32) error {
	if vtx >= uint32(len(g.vtcs)) {
		return emgerr.New(emgerr.VtxOutOfBounds, "vtx %d >= vtx count %d", vtx, len(g.vtcs))
	}

	var swapped uint32
	g.vtcs, swapped = swapRemove(g.vtcs, vtx)

	// Triangles referencing the deleted vertex go first; the swapped-in
	// triangle lands in the same slot, so the index only advances when
	// nothing was removed.
	for t := 0; t < len(g.tris); {
		if g.tris[t][0] == vtx || g.tris[t][1] == vtx || g.tris[t][2] == vtx {
			g.tris, _ = swapRemove(g.tris, uint32(t))
		} else {
			t++
		}
	}

	for t := range g.tris {
		for slot := 0; slot < 3; slot++ {
			if g.tris[t][slot] == swapped {
				g.tris[t][slot] = vtx
			}
		}
	}

	// When vtx was itself the last vertex there is no relocated vertex to
	// follow, so the selection just drops it.
	if swapped != vtx && g.selectRemove(swapped) {
		g.selectAdd(vtx)
	} else {
		g.selectRemove(vtx)
	}

	return nil
}

// DeleteVtcs deletes every currently selected vertex. Deletion proceeds in
// descending index order over a snapshot of the selection so earlier
// swap-removes never invalidate the indices still pending deletion.
func (g *Geometry) DeleteVtcs() error {
	idxs := g.Selection()
	for i := len(idxs) - 1; i >= 0; i-- {
		if err := g.DeleteVtx(idxs[i]); err != nil {
			return err
		}
	}
	return nil
}

// DeleteTri removes triangle tri via swap-remove. Triangle indices are not
// referenced by anything else a Geometry tracks, so no fixup beyond the
// swap itself is required.
func (g *Geometry) DeleteTri(tri uint32) error {
	if tri >= uint32(len(g.tris)) {
		return emgerr.New(emgerr.TriOutOfBounds, "tri %d >= tri count %d", tri, len(g.tris))
	}
	g.tris, _ = swapRemove(g.tris, tri)
	return nil
}

// DeleteTris deletes every triangle all three of whose vertices are
// currently selected, walking triangle indices in descending order so
// swap-removes never disturb an index not yet visited.
func (g *Geometry) DeleteTris() error {
	for t := len(g.tris) - 1; t >= 0; t-- {
		if g.triSelected(g.tris[t]) {
			if err := g.DeleteTri(uint32(t)); err != nil {
				return err
			}
		}
	}
	return nil
}

// DeleteStrayVtcs deletes every vertex not referenced by any triangle,
// walking vertex indices in descending order so swap-removes never
// disturb an index not yet visited.
func (g *Geometry) DeleteStrayVtcs() error {
	referenced := make(map[uint32]struct{}, len(g.vtcs))
	for _, tri := range g.tris {
		referenced[tri[0]] = struct{}{}
		referenced[tri[1]] = struct{}{}
		referenced[tri[2]] = struct{}{}
	}

	for i := len(g.vtcs) - 1; i >= 0; i-- {
		idx := uint32(i)
		if _, ok := referenced[idx]; !ok {
			if err := g.DeleteVtx(idx); err != nil {
				return err
			}
		}
	}
	return nil
}
