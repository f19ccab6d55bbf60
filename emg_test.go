package emg

import (
	"encoding/binary"
	"encoding/json"
	"testing"

	"github.com/paraforge-go/emg/vector"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestEmptyInit covers scenario 1: init then serialize on a document
// with nothing added to it yields the minimal valid GLB.
func TestEmptyInit(t *testing.T) {
	Init()
	out, err := Serialize()
	require.NoError(t, err)

	assert.Equal(t, "glTF", string(out[0:4]))
	assert.Equal(t, uint32(2), binary.LittleEndian.Uint32(out[4:8]))
	assert.Equal(t, uint32(len(out)), binary.LittleEndian.Uint32(out[8:12]))

	jsonLength := binary.LittleEndian.Uint32(out[12:16])
	jsonBytes := out[20 : 20+jsonLength]

	var doc map[string]any
	require.NoError(t, json.Unmarshal(jsonBytes, &doc))

	asset := doc["asset"].(map[string]any)
	assert.Equal(t, "emg v0.1.0", asset["generator"])
	assert.Equal(t, "2.0", asset["minVersion"])
	assert.Equal(t, "2.0", asset["version"])
	assert.Equal(t, float64(0), doc["scene"])
	assert.Len(t, doc["scenes"], 1)

	// Nothing has been packed, so the empty buffer and every other
	// untouched collection stay out of the JSON entirely.
	assert.NotContains(t, doc, "buffers")
	assert.NotContains(t, doc, "nodes")
	assert.NotContains(t, doc, "accessors")
}

// TestCubePack covers scenario 2: packing a fresh cube geometry creates
// two accessors and a buffer sized to hold both streams, with the
// vertex accessor's bounds matching the cube's corners.
func TestCubePack(t *testing.T) {
	Init()
	g0 := NewCubeGeometry()
	pg0, err := Pack(g0)
	require.NoError(t, err)

	vtxAccessor, triAccessor, err := PackedGeometryAccessors(pg0)
	require.NoError(t, err)
	assert.Equal(t, 0, vtxAccessor)
	assert.Equal(t, 1, triAccessor)

	doc, err := documents.Get()
	require.NoError(t, err)

	require.Len(t, doc.Accessors, 2)
	require.Len(t, doc.BufferViews, 2)

	wantLen := 8*3*4 + 12*3*2
	assert.Equal(t, wantLen, doc.Buffers[0].ByteLength)

	vtxAcc := doc.Accessors[vtxAccessor]
	assert.Equal(t, []float32{-1, -1, -1}, vtxAcc.Min)
	assert.Equal(t, []float32{1, 1, 1}, vtxAcc.Max)
}

// TestExtrudeSquare covers scenario 3.
func TestExtrudeSquare(t *testing.T) {
	h := NewGeometry()
	require.NoError(t, GeometryAddSquare(h, false))
	require.NoError(t, GeometryExtrude(h, 0, 0, 1))

	vtxCount, err := GeometryVtxCount(h)
	require.NoError(t, err)
	assert.Equal(t, 8, vtxCount)

	triCount, err := GeometryTriCount(h)
	require.NoError(t, err)
	assert.Equal(t, 12, triCount)

	sel, err := GeometrySelection(h)
	require.NoError(t, err)
	assert.Len(t, sel, 4)
}

// TestDeleteAndReindex covers scenario 4.
func TestDeleteAndReindex(t *testing.T) {
	h := NewCubeGeometry()
	require.NoError(t, GeometrySelect(h, vector.New(0.9, -2, -2), vector.New(2, 2, 2)))
	require.NoError(t, GeometryDeleteVtcs(h))

	vtxCount, err := GeometryVtxCount(h)
	require.NoError(t, err)
	assert.Equal(t, 4, vtxCount)

	triCount, err := GeometryTriCount(h)
	require.NoError(t, err)
	assert.Equal(t, 2, triCount)

	for i := uint32(0); i < uint32(triCount); i++ {
		tri, err := GeometryTri(h, i)
		require.NoError(t, err)
		for _, v := range tri {
			assert.Less(t, v, uint32(vtxCount))
		}
	}
}

// TestMergeCollapses covers scenario 5.
func TestMergeCollapses(t *testing.T) {
	h := NewCubeGeometry()
	require.NoError(t, GeometryMerge(h, 0, 0, 0))

	vtxCount, err := GeometryVtxCount(h)
	require.NoError(t, err)
	assert.Equal(t, 1, vtxCount)

	triCount, err := GeometryTriCount(h)
	require.NoError(t, err)
	assert.Equal(t, 0, triCount)

	sel, err := GeometrySelection(h)
	require.NoError(t, err)
	assert.Equal(t, []uint32{0}, sel)

	v, err := GeometryVtx(h, 0)
	require.NoError(t, err)
	assert.Equal(t, vector.New(0, 0, 0), v)
}

// TestGLBRoundTripWithBin covers scenario 6.
func TestGLBRoundTripWithBin(t *testing.T) {
	Init()
	g0 := NewCubeGeometry()
	_, err := Pack(g0)
	require.NoError(t, err)

	out, err := Serialize()
	require.NoError(t, err)

	jsonLength := binary.LittleEndian.Uint32(out[12:16])
	binChunkStart := 20 + int(jsonLength)
	binLength := binary.LittleEndian.Uint32(out[binChunkStart : binChunkStart+4])

	assert.Equal(t, "BIN\x00", string(out[binChunkStart+4:binChunkStart+8]))
	assert.Equal(t, 0, int(binLength)%4)
	assert.Equal(t, len(out), binChunkStart+8+int(binLength))
}

// TestMeshAddPrimitiveFromPackedHandle covers the packed-geometry
// registry end to end: pack a cube, bind it to a mesh primitive by
// handle rather than by raw accessor indices.
func TestMeshAddPrimitiveFromPackedHandle(t *testing.T) {
	Init()
	g0 := NewCubeGeometry()
	pg0, err := Pack(g0)
	require.NoError(t, err)

	material, err := NewMaterial("cube material", 0.8, 0.2, 0.2, 1, 0, 0.9)
	require.NoError(t, err)

	meshIdx, err := MeshNew("cube")
	require.NoError(t, err)

	primIdx, err := MeshAddPrimitive(meshIdx, pg0, &material)
	require.NoError(t, err)
	assert.Equal(t, 0, primIdx)

	primCount, err := MeshPrimitiveCount(meshIdx)
	require.NoError(t, err)
	assert.Equal(t, 1, primCount)

	meshCount, err := MeshCount()
	require.NoError(t, err)
	assert.Equal(t, 1, meshCount)

	materialCount, err := MaterialCount()
	require.NoError(t, err)
	assert.Equal(t, 1, materialCount)

	_, _, err = PackedGeometryAccessors(pg0 + 1)
	require.Error(t, err)
}

// TestScratchNamedConstructors covers the scratch-buffer string
// transport: writing a UTF-8 name into slot 0 and consuming it via the
// *Named constructors, matching the original FFI's name-passing
// convention.
func TestScratchNamedConstructors(t *testing.T) {
	Init()

	buf, err := ScratchTransport(0, len("north tower"))
	require.NoError(t, err)
	copy(buf, "north tower")

	node, err := NodeNewNamed()
	require.NoError(t, err)
	assert.Equal(t, 0, node)

	buf, err = ScratchTransport(0, len("glass"))
	require.NoError(t, err)
	copy(buf, "glass")

	material, err := NewMaterialNamed(1, 1, 1, 0.5, 0, 1)
	require.NoError(t, err)
	assert.Equal(t, 0, material)

	buf, err = ScratchTransport(0, len("tower mesh"))
	require.NoError(t, err)
	copy(buf, "tower mesh")

	mesh, err := MeshNewNamed()
	require.NoError(t, err)
	assert.Equal(t, 0, mesh)
}
