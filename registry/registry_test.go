package registry

import (
	"testing"

	"github.com/paraforge-go/emg/internal/emgerr"
	"github.com/paraforge-go/emg/packer"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGeometryRegistryNewAndGet(t *testing.T) {
	r := NewGeometryRegistry()
	h := r.New()
	g, err := r.Get(h)
	require.NoError(t, err)
	assert.Equal(t, h, g.Handle())
	assert.Equal(t, 1, r.Count())
}

func TestGeometryRegistryNewCube(t *testing.T) {
	r := NewGeometryRegistry()
	h := r.NewCube()
	g, err := r.Get(h)
	require.NoError(t, err)
	assert.Equal(t, 8, g.VtxCount())
	assert.Equal(t, h, g.Handle())
}

func TestGeometryRegistryGetOutOfBounds(t *testing.T) {
	r := NewGeometryRegistry()
	_, err := r.Get(0)
	require.Error(t, err)
	assert.Equal(t, emgerr.HandleOutOfBounds, emgerr.KindOf(err))
}

func TestPackedGeometryRegistryNewAndGet(t *testing.T) {
	r := NewPackedGeometryRegistry()
	h := r.New(packer.PackedGeometry{VtxAccessor: 0, TriAccessor: 1})

	pg, err := r.Get(h)
	require.NoError(t, err)
	assert.Equal(t, 0, pg.VtxAccessor)
	assert.Equal(t, 1, pg.TriAccessor)
	assert.Equal(t, 1, r.Count())
}

func TestPackedGeometryRegistryGetOutOfBounds(t *testing.T) {
	r := NewPackedGeometryRegistry()
	_, err := r.Get(0)
	require.Error(t, err)
	assert.Equal(t, emgerr.HandleOutOfBounds, emgerr.KindOf(err))
}

func TestDocumentRegistryRequiresInit(t *testing.T) {
	r := NewDocumentRegistry()
	_, err := r.Get()
	require.Error(t, err)
	assert.Equal(t, emgerr.NotInitialized, emgerr.KindOf(err))

	r.Init()
	doc, err := r.Get()
	require.NoError(t, err)
	assert.Equal(t, 1, doc.SceneCount())
}

func TestScratchRegistryWriteRead(t *testing.T) {
	r := NewScratchRegistry()
	require.NoError(t, r.Write(0, []byte("hello")))

	out, err := r.Read(0, 5)
	require.NoError(t, err)
	assert.Equal(t, "hello", string(out))
}

func TestScratchRegistryOutOfRange(t *testing.T) {
	r := NewScratchRegistry()
	err := r.Write(4, []byte("x"))
	assert.Equal(t, emgerr.HandleOutOfBounds, emgerr.KindOf(err))
}

func TestScratchRegistryTooLarge(t *testing.T) {
	r := NewScratchRegistry()
	err := r.Write(0, make([]byte, 65))
	assert.Equal(t, emgerr.SizeOutOfBounds, emgerr.KindOf(err))
}

func TestScratchRegistryTransportResizeAndName(t *testing.T) {
	r := NewScratchRegistry()

	buf, err := r.Transport(0, 5)
	require.NoError(t, err)
	require.Len(t, buf, 5)
	copy(buf, "hello")

	name, err := r.Name(0)
	require.NoError(t, err)
	assert.Equal(t, "hello", name)

	buf2, err := r.Transport(0, -1)
	require.NoError(t, err)
	assert.Equal(t, "hello", string(buf2))
}

func TestScratchRegistryNameRejectsInvalidUTF8(t *testing.T) {
	r := NewScratchRegistry()
	buf, err := r.Transport(0, 2)
	require.NoError(t, err)
	buf[0], buf[1] = 0xff, 0xfe

	_, err = r.Name(0)
	assert.Equal(t, emgerr.UnicodeError, emgerr.KindOf(err))
}

func TestScratchRegistryTransportOutOfRange(t *testing.T) {
	r := NewScratchRegistry()
	_, err := r.Transport(4, 1)
	assert.Equal(t, emgerr.HandleOutOfBounds, emgerr.KindOf(err))
}
