// Package packer encodes a geometry.Geometry's vertex and triangle data
// into a document.Document's binary buffer, appending the bufferViews
// and accessors needed to describe the new bytes. It plays the role the
// teacher's GPUOverlayParams.Marshal does for its own uniform blocks:
// a deterministic, one-shot encode into a byte buffer via
// encoding/binary, rather than an unsafe byte-reinterpretation cast.
package packer

import (
	"encoding/binary"
	"math"

	"github.com/paraforge-go/emg/document"
	"github.com/paraforge-go/emg/geometry"
)

// indexThreshold is the vertex count at or above which triangle indices
// must be encoded as 32-bit rather than 16-bit, since a 16-bit index
// cannot address a vertex count of 2^16 or more.
const indexThreshold = 0x10000

// PackedGeometry names the accessor indices a Pack call created, so the
// caller can wire them into a mesh primitive's Attributes.Position and
// Indices fields.
type PackedGeometry struct {
	VtxAccessor int
	TriAccessor int
}

// Pack appends g's vertex positions and triangle indices to doc's binary
// buffer as two new bufferView/accessor pairs, and returns their indices.
func Pack(g *geometry.Geometry, doc *document.Document) PackedGeometry {
	vtxAccessor := appendVtcs(g, doc)
	triAccessor := appendTris(g, doc)
	return PackedGeometry{VtxAccessor: vtxAccessor, TriAccessor: triAccessor}
}

func appendVtcs(g *geometry.Geometry, doc *document.Document) int {
	vtcs := g.Vtcs()

	min := [3]float32{math.MaxFloat32, math.MaxFloat32, math.MaxFloat32}
	max := [3]float32{-math.MaxFloat32, -math.MaxFloat32, -math.MaxFloat32}

	buf := make([]byte, 0, len(vtcs)*3*4)
	for _, v := range vtcs {
		x, y, z := float32(v.X), float32(v.Y), float32(v.Z)
		min[0], max[0] = minF32(min[0], x), maxF32(max[0], x)
		min[1], max[1] = minF32(min[1], y), maxF32(max[1], y)
		min[2], max[2] = minF32(min[2], z), maxF32(max[2], z)

		buf = appendFloat32(buf, x)
		buf = appendFloat32(buf, y)
		buf = appendFloat32(buf, z)
	}

	viewIdx := appendBufferView(doc, buf, document.TargetArrayBuffer)

	accessor := document.Accessor{
		BufferView:    &viewIdx,
		ComponentType: document.ComponentFloat,
		Count:         len(vtcs),
		Type:          document.TypeVec3,
	}
	if len(vtcs) > 0 {
		accessor.Min = min[:]
		accessor.Max = max[:]
	}
	doc.Accessors = append(doc.Accessors, accessor)
	return len(doc.Accessors) - 1
}

func appendTris(g *geometry.Geometry, doc *document.Document) int {
	tris := g.Tris()
	wide := g.VtxCount() >= indexThreshold

	var buf []byte
	componentType := document.ComponentUnsignedShort
	if wide {
		componentType = document.ComponentUnsignedInt
		buf = make([]byte, 0, len(tris)*3*4)
	} else {
		buf = make([]byte, 0, len(tris)*3*2)
	}

	for _, tri := range tris {
		for _, idx := range tri {
			if wide {
				buf = binary.LittleEndian.AppendUint32(buf, idx)
			} else {
				buf = binary.LittleEndian.AppendUint16(buf, uint16(idx))
			}
		}
	}

	viewIdx := appendBufferView(doc, buf, document.TargetElementArrayBuffer)

	doc.Accessors = append(doc.Accessors, document.Accessor{
		BufferView:    &viewIdx,
		ComponentType: componentType,
		Count:         len(tris) * 3,
		Type:          document.TypeScalar,
	})
	return len(doc.Accessors) - 1
}

func appendBufferView(doc *document.Document, bytes []byte, target document.BufferTarget) int {
	offset := len(doc.BufferBlob)
	doc.BufferBlob = append(doc.BufferBlob, bytes...)
	doc.Buffers[0].ByteLength = len(doc.BufferBlob)

	t := target
	doc.BufferViews = append(doc.BufferViews, document.BufferView{
		Buffer:     0,
		ByteOffset: offset,
		ByteLength: len(bytes),
		Target:     &t,
	})
	return len(doc.BufferViews) - 1
}

func appendFloat32(buf []byte, f float32) []byte {
	return binary.LittleEndian.AppendUint32(buf, math.Float32bits(f))
}

func minF32(a, b float32) float32 {
	if a < b {
		return a
	}
	return b
}

func maxF32(a, b float32) float32 {
	if a > b {
		return a
	}
	return b
}
