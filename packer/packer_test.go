package packer

import (
	"testing"

	"github.com/paraforge-go/emg/document"
	"github.com/paraforge-go/emg/geometry"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPackCube(t *testing.T) {
	g := geometry.Cube()
	doc := document.New()

	packed := Pack(g, doc)

	assert.Equal(t, 0, packed.VtxAccessor)
	assert.Equal(t, 1, packed.TriAccessor)
	require.Len(t, doc.Accessors, 2)

	vtxAcc := doc.Accessors[packed.VtxAccessor]
	assert.Equal(t, 8, vtxAcc.Count)
	assert.Equal(t, document.TypeVec3, vtxAcc.Type)
	assert.Equal(t, document.ComponentFloat, vtxAcc.ComponentType)
	assert.Len(t, vtxAcc.Min, 3)
	assert.Len(t, vtxAcc.Max, 3)

	triAcc := doc.Accessors[packed.TriAccessor]
	assert.Equal(t, 12*3, triAcc.Count)
	assert.Equal(t, document.ComponentUnsignedShort, triAcc.ComponentType)

	assert.Equal(t, 8*3*4+12*3*2, len(doc.BufferBlob))
	assert.Equal(t, len(doc.BufferBlob), doc.Buffers[0].ByteLength)
}

func TestPackSetsBufferViewTargets(t *testing.T) {
	g := geometry.Cube()
	doc := document.New()
	Pack(g, doc)

	require.Len(t, doc.BufferViews, 2)
	require.NotNil(t, doc.BufferViews[0].Target)
	assert.Equal(t, document.TargetArrayBuffer, *doc.BufferViews[0].Target)
	require.NotNil(t, doc.BufferViews[1].Target)
	assert.Equal(t, document.TargetElementArrayBuffer, *doc.BufferViews[1].Target)
}

func TestPackAppendsToExistingBuffer(t *testing.T) {
	doc := document.New()
	doc.BufferBlob = []byte{1, 2, 3, 4}
	doc.Buffers[0].ByteLength = 4

	g := geometry.Cube()
	Pack(g, doc)

	assert.Equal(t, 4, doc.BufferViews[0].ByteOffset)
	assert.Equal(t, []byte{1, 2, 3, 4}, doc.BufferBlob[:4])
}
