package document

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewHasDefaultSceneAndBuffer(t *testing.T) {
	d := New()
	assert.Equal(t, 1, d.SceneCount())
	require.NotNil(t, d.Scene)
	assert.Equal(t, 0, *d.Scene)
	assert.Len(t, d.Buffers, 1)
}

func TestNodeHierarchy(t *testing.T) {
	d := New()
	parent := d.NodeNew("parent")
	child := d.NodeNew("child")
	require.NoError(t, d.NodeAddNode(parent, child))
	assert.Equal(t, []int{child}, d.Nodes[parent].Children)

	require.NoError(t, d.SceneAddNode(0, parent))
	assert.Equal(t, []int{parent}, d.Scenes[0].Nodes)
}

func TestNodeAddNodeOutOfBounds(t *testing.T) {
	d := New()
	err := d.NodeAddNode(0, 0)
	require.Error(t, err)
}

func TestNodeCloneSubtree(t *testing.T) {
	d := New()
	root := d.NodeNew("root")
	a := d.NodeNew("a")
	b := d.NodeNew("b")
	require.NoError(t, d.NodeAddNode(root, a))
	require.NoError(t, d.NodeAddNode(root, b))

	clone, err := d.NodeCloneSubtree(root)
	require.NoError(t, err)
	assert.NotEqual(t, root, clone)
	assert.Equal(t, "root", d.Nodes[clone].Name)
	assert.Len(t, d.Nodes[clone].Children, 2)

	for _, childIdx := range d.Nodes[clone].Children {
		assert.NotContains(t, []int{a, b}, childIdx)
	}
}

func TestNodeSetTransform(t *testing.T) {
	d := New()
	n := d.NodeNew("")
	require.NoError(t, d.NodeSetTranslation(n, 1, 2, 3))
	require.NotNil(t, d.Nodes[n].Translation)
	assert.Equal(t, [3]float64{1, 2, 3}, *d.Nodes[n].Translation)
}

func TestMeshAndMaterial(t *testing.T) {
	d := New()
	mat := d.AddMaterial(NewMaterial("red"))
	mesh := d.MeshNew("box")
	material := mat
	_, err := d.MeshAddPrimitive(mesh, Primitive{Material: &material})
	require.NoError(t, err)

	require.NoError(t, d.NodeSetMesh(d.NodeNew(""), mesh))
	assert.Equal(t, 1, d.MeshCount())
	assert.Equal(t, 1, d.MaterialCount())
	assert.Equal(t, 1, d.Meshes[mesh].PrimitiveCount())
}

func TestMeshAddPrimitiveValidatesMaterial(t *testing.T) {
	d := New()
	mesh := d.MeshNew("box")
	bad := 3
	_, err := d.MeshAddPrimitive(mesh, Primitive{Material: &bad})
	require.Error(t, err)
}

func TestMaterialMarshalOmitsDefaults(t *testing.T) {
	m := NewMaterial("plain")
	b, err := json.Marshal(m)
	require.NoError(t, err)

	var got map[string]any
	require.NoError(t, json.Unmarshal(b, &got))

	assert.NotContains(t, got, "emissiveFactor")
	assert.NotContains(t, got, "alphaMode")
	assert.NotContains(t, got, "alphaCutoff")
	assert.NotContains(t, got, "doubleSided")
	assert.Contains(t, got, "pbrMetallicRoughness")
}

func TestMaterialMarshalIncludesNonDefaults(t *testing.T) {
	m := NewMaterial("see-through")
	m.AlphaMode = AlphaBlend
	m.DoubleSided = true

	b, err := json.Marshal(m)
	require.NoError(t, err)

	var got map[string]any
	require.NoError(t, json.Unmarshal(b, &got))
	assert.Equal(t, "BLEND", got["alphaMode"])
	assert.Equal(t, true, got["doubleSided"])
}

func TestDocumentMarshalOmitsUntouchedBuffer(t *testing.T) {
	d := New()
	b, err := json.Marshal(d)
	require.NoError(t, err)
	assert.NotContains(t, string(b), "buffers")

	d.BufferBlob = []byte{0, 0, 0, 0}
	d.Buffers[0].ByteLength = 4
	b, err = json.Marshal(d)
	require.NoError(t, err)
	assert.Contains(t, string(b), `"buffers":[{"byteLength":4}]`)
}

func TestDocumentMarshalOmitsBufferBlob(t *testing.T) {
	d := New()
	d.BufferBlob = []byte{1, 2, 3}

	b, err := json.Marshal(d)
	require.NoError(t, err)
	assert.NotContains(t, string(b), "BufferBlob")
}
