// Package geometry implements the triangle-soup mesh editor: a mutable
// vertex/triangle store with an ordered selection and the suite of
// topology-preserving and topology-altering operations used to build and
// edit procedural meshes before they are packed into a scene document.
package geometry

import (
	"github.com/paraforge-go/emg/internal/emgerr"
	"github.com/paraforge-go/emg/vector"
)

// Tri is a triple of vertex indices, insertion-ordered within a Geometry.
type Tri [3]uint32

// Geometry owns a vertex array, a triangle array, and an ordered selection
// of vertex indices. All mutating operations preserve the invariant that
// every triangle and selection index is strictly less than len(vtcs); see
// swapRemove for the single relocation helper, and DeleteVtx for where
// triangle and selection references are fixed up after a vertex moves.
type Geometry struct {
	handle uint32

	vtcs []vector.V3
	tris []Tri

	// selection holds vertex indices in ascending order. selSet mirrors it
	// for O(1) membership tests; the two are kept in lockstep by the
	// selection helpers below so every operation can both iterate in order
	// and test membership cheaply.
	selection []uint32
	selSet    map[uint32]struct{}
}

// New returns an empty Geometry with an empty selection.
func New() *Geometry {
	return &Geometry{selSet: make(map[uint32]struct{})}
}

// NewWithHandle is New, additionally stamping the registry-assigned handle
// the host uses to address this Geometry across the flat call boundary.
func NewWithHandle(handle uint32) *Geometry {
	g := New()
	g.handle = handle
	return g
}

// Handle returns the registry handle this Geometry was created with.
func (g *Geometry) Handle() uint32 {
	return g.handle
}

// SetHandle stamps the registry-assigned handle onto a Geometry built by
// a constructor, like Cube, that doesn't take one directly.
func (g *Geometry) SetHandle(handle uint32) {
	g.handle = handle
}

// Cube returns a Geometry of 8 corner vertices at +-1 on each axis and 12
// triangles, with all 8 vertices selected.
func Cube() *Geometry {
	g := New()
	g.vtcs = []vector.V3{
		vector.New(-1, 1, -1),
		vector.New(-1, 1, 1),
		vector.New(-1, -1, -1),
		vector.New(-1, -1, 1),
		vector.New(1, 1, -1),
		vector.New(1, 1, 1),
		vector.New(1, -1, -1),
		vector.New(1, -1, 1),
	}
	g.tris = []Tri{
		// Top
		{1, 3, 5}, {3, 7, 5},
		// +X side
		{4, 5, 6}, {5, 7, 6},
		// -X side
		{0, 2, 1}, {1, 2, 3},
		// +Y side
		{0, 1, 4}, {1, 5, 4},
		// -Y side
		{2, 6, 3}, {3, 6, 7},
		// Bottom
		{0, 4, 2}, {2, 4, 6},
	}
	g.replaceSelection([]uint32{0, 1, 2, 3, 4, 5, 6, 7})
	return g
}

// VtxCount returns the number of vertices.
func (g *Geometry) VtxCount() int {
	return len(g.vtcs)
}

// TriCount returns the number of triangles.
func (g *Geometry) TriCount() int {
	return len(g.tris)
}

// Vtx returns the vertex at index i.
func (g *Geometry) Vtx(i uint32) (vector.V3, error) {
	if i >= uint32(len(g.vtcs)) {
		return vector.V3{}, emgerr.New(emgerr.VtxOutOfBounds, "vtx %d >= vtx count %d", i, len(g.vtcs))
	}
	return g.vtcs[i], nil
}

// Tri returns the triangle at index i.
func (g *Geometry) Tri(i uint32) (Tri, error) {
	if i >= uint32(len(g.tris)) {
		return Tri{}, emgerr.New(emgerr.TriOutOfBounds, "tri %d >= tri count %d", i, len(g.tris))
	}
	return g.tris[i], nil
}

// Vtcs returns a copy of the vertex slice, in insertion order.
func (g *Geometry) Vtcs() []vector.V3 {
	out := make([]vector.V3, len(g.vtcs))
	copy(out, g.vtcs)
	return out
}

// Tris returns a copy of the triangle slice, in insertion order.
func (g *Geometry) Tris() []Tri {
	out := make([]Tri, len(g.tris))
	copy(out, g.tris)
	return out
}

// Selection returns the current selection, in ascending order.
func (g *Geometry) Selection() []uint32 {
	out := make([]uint32, len(g.selection))
	copy(out, g.selection)
	return out
}

// SetVtx overwrites an existing vertex in place (distinct from CreateVtx,
// which appends).
func (g *Geometry) SetVtx(i uint32, v vector.V3) error {
	if i >= uint32(len(g.vtcs)) {
		return emgerr.New(emgerr.VtxOutOfBounds, "vtx %d >= vtx count %d", i, len(g.vtcs))
	}
	g.vtcs[i] = v
	return nil
}

// SetTri overwrites an existing triangle in place (distinct from CreateTri,
// which appends). Fails with VtxOutOfBounds if any of the new triangle's
// vertex indices is out of range.
func (g *Geometry) SetTri(i uint32, tri Tri) error {
	if i >= uint32(len(g.tris)) {
		return emgerr.New(emgerr.TriOutOfBounds, "tri %d >= tri count %d", i, len(g.tris))
	}
	for _, v := range tri {
		if v >= uint32(len(g.vtcs)) {
			return emgerr.New(emgerr.VtxOutOfBounds, "vtx %d >= vtx count %d", v, len(g.vtcs))
		}
	}
	g.tris[i] = tri
	return nil
}
