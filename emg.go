// Package emg is a procedural mesh editor and glTF/GLB packer: build
// triangle-soup geometry with an ordered vertex selection, edit it with
// transform and topology operations, then pack it into a scene document
// and serialize that document to a binary GLB file.
//
// The package-level functions here are the library's host-facing
// surface, addressing live Geometry values and the single scene document
// by integer handle rather than by Go pointer — the same indirection the
// original implementation's WebAssembly FFI boundary used, minus the
// flat numeric calling convention itself, which has no purpose in a
// native Go library and is treated as out of scope.
package emg

import (
	"github.com/paraforge-go/emg/document"
	"github.com/paraforge-go/emg/geometry"
	"github.com/paraforge-go/emg/glb"
	"github.com/paraforge-go/emg/internal/emgerr"
	"github.com/paraforge-go/emg/packer"
	"github.com/paraforge-go/emg/registry"
	"github.com/paraforge-go/emg/vector"
)

var (
	geometries       = registry.NewGeometryRegistry()
	packedGeometries = registry.NewPackedGeometryRegistry()
	documents        = registry.NewDocumentRegistry()
	scratch          = registry.NewScratchRegistry()
)

// Init (re)creates the scene document, discarding any document built by
// a previous Init. Geometry handles are unaffected.
func Init() {
	documents.Init()
}

// NewGeometry creates an empty Geometry and returns its handle.
func NewGeometry() uint32 {
	return geometries.New()
}

// NewCubeGeometry creates a Geometry pre-populated with Cube's 8
// vertices and 12 triangles, all selected, and returns its handle.
func NewCubeGeometry() uint32 {
	return geometries.NewCube()
}

func getGeometry(handle uint32) (*geometry.Geometry, error) {
	return geometries.Get(handle)
}

// GeometryVtxCount returns the number of vertices in the Geometry named
// by handle.
func GeometryVtxCount(handle uint32) (int, error) {
	g, err := getGeometry(handle)
	if err != nil {
		return 0, err
	}
	return g.VtxCount(), nil
}

// GeometryTriCount returns the number of triangles in the Geometry named
// by handle.
func GeometryTriCount(handle uint32) (int, error) {
	g, err := getGeometry(handle)
	if err != nil {
		return 0, err
	}
	return g.TriCount(), nil
}

// GeometryVtx returns vertex i of the Geometry named by handle.
func GeometryVtx(handle uint32, i uint32) (vector.V3, error) {
	g, err := getGeometry(handle)
	if err != nil {
		return vector.V3{}, err
	}
	return g.Vtx(i)
}

// GeometryTri returns triangle i of the Geometry named by handle.
func GeometryTri(handle uint32, i uint32) (geometry.Tri, error) {
	g, err := getGeometry(handle)
	if err != nil {
		return geometry.Tri{}, err
	}
	return g.Tri(i)
}

// GeometrySetVtx overwrites vertex i of the Geometry named by handle.
func GeometrySetVtx(handle uint32, i uint32, v vector.V3) error {
	g, err := getGeometry(handle)
	if err != nil {
		return err
	}
	return g.SetVtx(i, v)
}

// GeometrySetTri overwrites triangle i of the Geometry named by handle.
func GeometrySetTri(handle uint32, i uint32, tri geometry.Tri) error {
	g, err := getGeometry(handle)
	if err != nil {
		return err
	}
	return g.SetTri(i, tri)
}

// GeometrySelection returns the current selection of the Geometry named
// by handle, in ascending order.
func GeometrySelection(handle uint32) ([]uint32, error) {
	g, err := getGeometry(handle)
	if err != nil {
		return nil, err
	}
	return g.Selection(), nil
}

// GeometrySelect replaces the selection of the Geometry named by handle
// with every vertex inside the bounding box spanned by p1 and p2.
func GeometrySelect(handle uint32, p1, p2 vector.V3) error {
	g, err := getGeometry(handle)
	if err != nil {
		return err
	}
	g.Select(p1, p2)
	return nil
}

// GeometryTranslate adds (dx, dy, dz) to every selected vertex of the
// Geometry named by handle.
func GeometryTranslate(handle uint32, dx, dy, dz float64) error {
	g, err := getGeometry(handle)
	if err != nil {
		return err
	}
	g.Translate(dx, dy, dz)
	return nil
}

// GeometryRotateEuler applies an XYZ-Euler rotation to every selected
// vertex of the Geometry named by handle.
func GeometryRotateEuler(handle uint32, rx, ry, rz float64) error {
	g, err := getGeometry(handle)
	if err != nil {
		return err
	}
	g.RotateEuler(rx, ry, rz)
	return nil
}

// GeometryRotateAxis applies an axis-angle rotation to every selected
// vertex of the Geometry named by handle.
func GeometryRotateAxis(handle uint32, ax, ay, az, omega float64) error {
	g, err := getGeometry(handle)
	if err != nil {
		return err
	}
	g.RotateAxis(ax, ay, az, omega)
	return nil
}

// GeometryScale multiplies every selected vertex of the Geometry named
// by handle by (sx, sy, sz).
func GeometryScale(handle uint32, sx, sy, sz float64) error {
	g, err := getGeometry(handle)
	if err != nil {
		return err
	}
	g.Scale(sx, sy, sz)
	return nil
}

// GeometryCreateVtx appends a vertex to the Geometry named by handle and
// returns its new index.
func GeometryCreateVtx(handle uint32, v vector.V3) (uint32, error) {
	g, err := getGeometry(handle)
	if err != nil {
		return 0, err
	}
	return g.CreateVtx(v), nil
}

// GeometryCreateTri appends a triangle to the Geometry named by handle
// and returns its new index.
func GeometryCreateTri(handle uint32, tri geometry.Tri) (uint32, error) {
	g, err := getGeometry(handle)
	if err != nil {
		return 0, err
	}
	return g.CreateTri(tri)
}

// GeometryDeleteVtx removes vertex vtx from the Geometry named by handle.
func GeometryDeleteVtx(handle uint32, vtx uint32) error {
	g, err := getGeometry(handle)
	if err != nil {
		return err
	}
	return g.DeleteVtx(vtx)
}

// GeometryDeleteTri removes triangle tri from the Geometry named by
// handle.
func GeometryDeleteTri(handle uint32, tri uint32) error {
	g, err := getGeometry(handle)
	if err != nil {
		return err
	}
	return g.DeleteTri(tri)
}

// GeometryDeleteVtcs deletes every selected vertex of the Geometry named
// by handle.
func GeometryDeleteVtcs(handle uint32) error {
	g, err := getGeometry(handle)
	if err != nil {
		return err
	}
	return g.DeleteVtcs()
}

// GeometryDeleteTris deletes every fully-selected triangle of the
// Geometry named by handle.
func GeometryDeleteTris(handle uint32) error {
	g, err := getGeometry(handle)
	if err != nil {
		return err
	}
	return g.DeleteTris()
}

// GeometryDeleteStrayVtcs deletes every vertex of the Geometry named by
// handle that no triangle references.
func GeometryDeleteStrayVtcs(handle uint32) error {
	g, err := getGeometry(handle)
	if err != nil {
		return err
	}
	return g.DeleteStrayVtcs()
}

// GeometryMerge collapses the selection of the Geometry named by handle
// onto its first selected vertex, moved to (x, y, z).
func GeometryMerge(handle uint32, x, y, z float64) error {
	g, err := getGeometry(handle)
	if err != nil {
		return err
	}
	return g.Merge(vector.New(x, y, z))
}

// GeometryFlipNormals reverses the winding of every fully-selected
// triangle of the Geometry named by handle.
func GeometryFlipNormals(handle uint32) error {
	g, err := getGeometry(handle)
	if err != nil {
		return err
	}
	g.FlipNormals()
	return nil
}

// GeometryDoubleside adds a reverse-wound copy of every fully-selected
// triangle of the Geometry named by handle.
func GeometryDoubleside(handle uint32) error {
	g, err := getGeometry(handle)
	if err != nil {
		return err
	}
	g.Doubleside()
	return nil
}

// GeometryCopy duplicates the selection of the Geometry named by handle.
func GeometryCopy(handle uint32) error {
	g, err := getGeometry(handle)
	if err != nil {
		return err
	}
	g.Copy()
	return nil
}

// GeometryExtrude extrudes the selection of the Geometry named by
// handle by (dx, dy, dz).
func GeometryExtrude(handle uint32, dx, dy, dz float64) error {
	g, err := getGeometry(handle)
	if err != nil {
		return err
	}
	return g.Extrude(dx, dy, dz)
}

// GeometryAddSquare appends a square spanning [0,1] (unit) or [-1,1]
// (otherwise) on X and Y to the Geometry named by handle.
func GeometryAddSquare(handle uint32, unit bool) error {
	g, err := getGeometry(handle)
	if err != nil {
		return err
	}
	g.AddSquare(unit)
	return nil
}

// GeometryAddCube appends a cube to the Geometry named by handle.
func GeometryAddCube(handle uint32, unit bool) error {
	g, err := getGeometry(handle)
	if err != nil {
		return err
	}
	g.AddCube(unit)
	return nil
}

// GeometryAddCircle appends an N-gon fan to the Geometry named by
// handle.
func GeometryAddCircle(handle uint32, segments uint32) error {
	g, err := getGeometry(handle)
	if err != nil {
		return err
	}
	g.AddCircle(segments)
	return nil
}

// GeometryAddCylinder appends a capped cylinder to the Geometry named by
// handle.
func GeometryAddCylinder(handle uint32, segments uint32, unit bool) error {
	g, err := getGeometry(handle)
	if err != nil {
		return err
	}
	g.AddCylinder(segments, unit)
	return nil
}

// Pack encodes the Geometry named by handle into the current scene
// document's binary buffer, registers the resulting accessor bindings,
// and returns a packed-geometry handle.
func Pack(handle uint32) (uint32, error) {
	g, err := getGeometry(handle)
	if err != nil {
		return 0, err
	}
	doc, err := documents.Get()
	if err != nil {
		return 0, err
	}
	return packedGeometries.New(packer.Pack(g, doc)), nil
}

func getPackedGeometry(handle uint32) (packer.PackedGeometry, error) {
	return packedGeometries.Get(handle)
}

// PackedGeometryAccessors returns the vertex-positions and triangle-
// indices accessor indices bound to the packed geometry named by
// handle.
func PackedGeometryAccessors(handle uint32) (vtxAccessor, triAccessor int, err error) {
	pg, err := getPackedGeometry(handle)
	if err != nil {
		return 0, 0, err
	}
	return pg.VtxAccessor, pg.TriAccessor, nil
}

// NewMaterial appends a new material with the given base color and
// metallic-roughness parameters to the scene document and returns its
// index. All other material parameters keep their glTF defaults.
func NewMaterial(name string, r, g, b, a, metallicity, roughness float64) (int, error) {
	doc, err := documents.Get()
	if err != nil {
		return 0, err
	}
	m := document.NewMaterial(name)
	m.PBRMetallicRoughness.BaseColorFactor = [4]float64{r, g, b, a}
	m.PBRMetallicRoughness.MetallicFactor = metallicity
	m.PBRMetallicRoughness.RoughnessFactor = roughness
	return doc.AddMaterial(m), nil
}

// ScratchTransport exposes scratch buffer idx for the string-transport
// call spec.md §6 describes: a negative size leaves the buffer's
// length untouched, any other size resizes it (zero-filled) before the
// call returns. The host writes its UTF-8 name into the returned slice
// and then calls whichever *Named constructor consumes that slot.
func ScratchTransport(idx uint32, size int) ([]byte, error) {
	return scratch.Transport(int(idx), size)
}

// NewMaterialNamed is NewMaterial, taking its name from scratch buffer
// slot 0 instead of a Go string argument, matching the original FFI's
// convention for material names.
func NewMaterialNamed(r, g, b, a, metallicity, roughness float64) (int, error) {
	name, err := scratch.Name(0)
	if err != nil {
		return 0, err
	}
	return NewMaterial(name, r, g, b, a, metallicity, roughness)
}

// SceneAddNode appends node as a root of scene.
func SceneAddNode(scene, node int) error {
	doc, err := documents.Get()
	if err != nil {
		return err
	}
	return doc.SceneAddNode(scene, node)
}

// NodeNew appends a new, empty node to the scene document and returns
// its index.
func NodeNew(name string) (int, error) {
	doc, err := documents.Get()
	if err != nil {
		return 0, err
	}
	return doc.NodeNew(name), nil
}

// NodeNewNamed is NodeNew, taking its name from scratch buffer slot 0.
func NodeNewNamed() (int, error) {
	name, err := scratch.Name(0)
	if err != nil {
		return 0, err
	}
	return NodeNew(name)
}

// NodeCloneSubtree deep-copies node and its descendants and returns the
// new subtree's root.
func NodeCloneSubtree(node int) (int, error) {
	doc, err := documents.Get()
	if err != nil {
		return 0, err
	}
	return doc.NodeCloneSubtree(node)
}

// NodeAddNode appends child as a child of parent.
func NodeAddNode(parent, child int) error {
	doc, err := documents.Get()
	if err != nil {
		return err
	}
	return doc.NodeAddNode(parent, child)
}

// NodeSetTranslation overwrites node's translation.
func NodeSetTranslation(node int, x, y, z float64) error {
	doc, err := documents.Get()
	if err != nil {
		return err
	}
	return doc.NodeSetTranslation(node, x, y, z)
}

// NodeSetRotation overwrites node's rotation quaternion.
func NodeSetRotation(node int, x, y, z, w float64) error {
	doc, err := documents.Get()
	if err != nil {
		return err
	}
	return doc.NodeSetRotation(node, x, y, z, w)
}

// NodeSetScale overwrites node's scale.
func NodeSetScale(node int, x, y, z float64) error {
	doc, err := documents.Get()
	if err != nil {
		return err
	}
	return doc.NodeSetScale(node, x, y, z)
}

// NodeSetMatrix overwrites node's transform with an explicit matrix.
func NodeSetMatrix(node int, m [16]float64) error {
	doc, err := documents.Get()
	if err != nil {
		return err
	}
	return doc.NodeSetMatrix(node, m)
}

// NodeSetMesh attaches mesh to node.
func NodeSetMesh(node, mesh int) error {
	doc, err := documents.Get()
	if err != nil {
		return err
	}
	return doc.NodeSetMesh(node, mesh)
}

// MeshNewNamed is MeshNew, taking its name from scratch buffer slot 0.
func MeshNewNamed() (int, error) {
	name, err := scratch.Name(0)
	if err != nil {
		return 0, err
	}
	return MeshNew(name)
}

// MeshNew appends a new, empty mesh to the scene document and returns
// its index.
func MeshNew(name string) (int, error) {
	doc, err := documents.Get()
	if err != nil {
		return 0, err
	}
	return doc.MeshNew(name), nil
}

// MeshAddPrimitive appends a primitive referencing the packed geometry
// named by packed and material to mesh, and returns the primitive's
// index.
func MeshAddPrimitive(mesh int, packed uint32, material *int) (int, error) {
	doc, err := documents.Get()
	if err != nil {
		return 0, err
	}
	pg, err := getPackedGeometry(packed)
	if err != nil {
		return 0, err
	}
	pos := pg.VtxAccessor
	idx := pg.TriAccessor
	return doc.MeshAddPrimitive(mesh, document.Primitive{
		Attributes: document.Attributes{Position: &pos},
		Indices:    &idx,
		Material:   material,
	})
}

// SceneCount, NodeCount, MeshCount, and MaterialCount report the size of
// the scene document's corresponding collection.
func SceneCount() (int, error) {
	doc, err := documents.Get()
	if err != nil {
		return 0, err
	}
	return doc.SceneCount(), nil
}

func NodeCount() (int, error) {
	doc, err := documents.Get()
	if err != nil {
		return 0, err
	}
	return doc.NodeCount(), nil
}

func MeshCount() (int, error) {
	doc, err := documents.Get()
	if err != nil {
		return 0, err
	}
	return doc.MeshCount(), nil
}

func MaterialCount() (int, error) {
	doc, err := documents.Get()
	if err != nil {
		return 0, err
	}
	return doc.MaterialCount(), nil
}

// MeshPrimitiveCount reports how many primitives mesh holds.
func MeshPrimitiveCount(mesh int) (int, error) {
	doc, err := documents.Get()
	if err != nil {
		return 0, err
	}
	if mesh < 0 || mesh >= doc.MeshCount() {
		return 0, emgerr.New(emgerr.HandleOutOfBounds, "mesh %d >= mesh count %d", mesh, doc.MeshCount())
	}
	return doc.Meshes[mesh].PrimitiveCount(), nil
}

// Serialize marshals the current scene document into a complete GLB
// byte stream.
func Serialize() ([]byte, error) {
	doc, err := documents.Get()
	if err != nil {
		return nil, err
	}
	return glb.Serialize(doc)
}
