package document

import "github.com/paraforge-go/emg/internal/emgerr"

// generator is stamped into every Document's asset metadata, identifying
// this library as the tool that produced the glTF output.
const generator = "emg v0.1.0"

// Document is the full in-memory glTF scene graph this library builds up
// before serializing it to a GLB file: a single default scene, a node
// hierarchy, meshes, materials, and the accessor/bufferView/buffer triple
// the packer fills in with geometry data.
type Document struct {
	Asset       Asset
	Scene       *int
	Scenes      []Scene
	Nodes       []Node
	Materials   []Material
	Meshes      []Mesh
	Accessors   []Accessor
	BufferViews []BufferView
	Buffers     []Buffer

	// BufferBlob holds the bytes backing Buffers[0], the single GLB-BIN
	// chunk this library ever produces. It is not part of the glTF JSON
	// and is never marshaled directly.
	BufferBlob []byte
}

// New returns a Document with the default scene (index 0) and default
// buffer (index 0) already created, matching the document every
// Geometry gets packed into.
func New() *Document {
	defaultScene := 0
	return &Document{
		Asset: Asset{
			Generator:  generator,
			Version:    "2.0",
			MinVersion: "2.0",
		},
		Scene:  &defaultScene,
		Scenes: []Scene{{}},
		Buffers: []Buffer{{}},
	}
}

// SceneCount, NodeCount, MeshCount, and MaterialCount report the size of
// each top-level collection, mirroring accessors the original FFI
// surface exposed per-collection so hosts can size their own buffers
// before reading handles back out.
func (d *Document) SceneCount() int    { return len(d.Scenes) }
func (d *Document) NodeCount() int     { return len(d.Nodes) }
func (d *Document) MeshCount() int     { return len(d.Meshes) }
func (d *Document) MaterialCount() int { return len(d.Materials) }

// AddMaterial appends a new material and returns its index.
func (d *Document) AddMaterial(m Material) int {
	d.Materials = append(d.Materials, m)
	return len(d.Materials) - 1
}

// SceneAddNode appends node as a root of scene sceneIdx.
func (d *Document) SceneAddNode(sceneIdx int, nodeIdx int) error {
	if sceneIdx < 0 || sceneIdx >= len(d.Scenes) {
		return emgerr.New(emgerr.HandleOutOfBounds, "scene %d >= scene count %d", sceneIdx, len(d.Scenes))
	}
	if nodeIdx < 0 || nodeIdx >= len(d.Nodes) {
		return emgerr.New(emgerr.HandleOutOfBounds, "node %d >= node count %d", nodeIdx, len(d.Nodes))
	}
	d.Scenes[sceneIdx].Nodes = append(d.Scenes[sceneIdx].Nodes, nodeIdx)
	return nil
}

// NodeNew appends a new, empty node and returns its index.
func (d *Document) NodeNew(name string) int {
	d.Nodes = append(d.Nodes, Node{Name: name})
	return len(d.Nodes) - 1
}

// NodeAddNode appends child as a child of parent.
func (d *Document) NodeAddNode(parent, child int) error {
	if err := d.checkNode(parent); err != nil {
		return err
	}
	if err := d.checkNode(child); err != nil {
		return err
	}
	d.Nodes[parent].Children = append(d.Nodes[parent].Children, child)
	return nil
}

// NodeCloneSubtree deep-copies node and every descendant, appending the
// copies to Nodes, and returns the root of the new subtree.
func (d *Document) NodeCloneSubtree(node int) (int, error) {
	if err := d.checkNode(node); err != nil {
		return 0, err
	}
	return d.cloneSubtree(node), nil
}

func (d *Document) cloneSubtree(node int) int {
	original := d.Nodes[node]
	clone := original
	clone.Children = nil

	newIdx := len(d.Nodes)
	d.Nodes = append(d.Nodes, clone)

	for _, child := range original.Children {
		newChild := d.cloneSubtree(child)
		d.Nodes[newIdx].Children = append(d.Nodes[newIdx].Children, newChild)
	}

	return newIdx
}

// NodeSetTranslation, NodeSetRotation, NodeSetScale, and NodeSetMatrix
// overwrite a node's transform. Setting one does not clear the others —
// glTF allows either a matrix or TRS components, and it is the caller's
// responsibility not to mix them.
func (d *Document) NodeSetTranslation(node int, x, y, z float64) error {
	if err := d.checkNode(node); err != nil {
		return err
	}
	t := [3]float64{x, y, z}
	d.Nodes[node].Translation = &t
	return nil
}

func (d *Document) NodeSetRotation(node int, x, y, z, w float64) error {
	if err := d.checkNode(node); err != nil {
		return err
	}
	r := [4]float64{x, y, z, w}
	d.Nodes[node].Rotation = &r
	return nil
}

func (d *Document) NodeSetScale(node int, x, y, z float64) error {
	if err := d.checkNode(node); err != nil {
		return err
	}
	s := [3]float64{x, y, z}
	d.Nodes[node].Scale = &s
	return nil
}

func (d *Document) NodeSetMatrix(node int, m [16]float64) error {
	if err := d.checkNode(node); err != nil {
		return err
	}
	d.Nodes[node].Matrix = &m
	return nil
}

// NodeSetMesh attaches mesh to node.
func (d *Document) NodeSetMesh(node, mesh int) error {
	if err := d.checkNode(node); err != nil {
		return err
	}
	if mesh < 0 || mesh >= len(d.Meshes) {
		return emgerr.New(emgerr.HandleOutOfBounds, "mesh %d >= mesh count %d", mesh, len(d.Meshes))
	}
	d.Nodes[node].Mesh = &mesh
	return nil
}

// MeshNew appends a new, empty mesh and returns its index.
func (d *Document) MeshNew(name string) int {
	d.Meshes = append(d.Meshes, Mesh{Name: name})
	return len(d.Meshes) - 1
}

// MeshAddPrimitive appends prim to mesh and returns its index within
// that mesh's primitive list.
func (d *Document) MeshAddPrimitive(mesh int, prim Primitive) (int, error) {
	if mesh < 0 || mesh >= len(d.Meshes) {
		return 0, emgerr.New(emgerr.HandleOutOfBounds, "mesh %d >= mesh count %d", mesh, len(d.Meshes))
	}
	if prim.Material != nil && (*prim.Material < 0 || *prim.Material >= len(d.Materials)) {
		return 0, emgerr.New(emgerr.HandleOutOfBounds, "material %d >= material count %d", *prim.Material, len(d.Materials))
	}
	d.Meshes[mesh].Primitives = append(d.Meshes[mesh].Primitives, prim)
	return len(d.Meshes[mesh].Primitives) - 1, nil
}

func (d *Document) checkNode(idx int) error {
	if idx < 0 || idx >= len(d.Nodes) {
		return emgerr.New(emgerr.HandleOutOfBounds, "node %d >= node count %d", idx, len(d.Nodes))
	}
	return nil
}
