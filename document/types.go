// Package document implements the glTF 2.0 JSON object model this library
// packs geometry into: the asset/scene/node/mesh/material schema, with the
// default-omission rules the glTF spec requires (identity transforms, a
// white opaque material, triangle-list primitives) applied the way the
// original hand-rolled schema did it, via pointer fields and
// "omitempty"/is-default checks rather than a generated bindings package.
//
// Reference: https://registry.khronos.org/glTF/specs/2.0/glTF-2.0.html
package document

// AccessorType names the shape of an accessor's elements.
type AccessorType string

const (
	TypeScalar AccessorType = "SCALAR"
	TypeVec2   AccessorType = "VEC2"
	TypeVec3   AccessorType = "VEC3"
	TypeVec4   AccessorType = "VEC4"
	TypeMat2   AccessorType = "MAT2"
	TypeMat3   AccessorType = "MAT3"
	TypeMat4   AccessorType = "MAT4"
)

// ComponentCount is the number of scalar components an element of this
// type carries.
func (t AccessorType) ComponentCount() int {
	switch t {
	case TypeScalar:
		return 1
	case TypeVec2:
		return 2
	case TypeVec3:
		return 3
	case TypeVec4:
		return 4
	case TypeMat2:
		return 4
	case TypeMat3:
		return 9
	case TypeMat4:
		return 16
	default:
		return 0
	}
}

// ComponentType names the binary encoding of an accessor's scalar
// components, using the glTF spec's numeric WebGL enum values.
type ComponentType uint32

const (
	ComponentByte          ComponentType = 5120
	ComponentUnsignedByte  ComponentType = 5121
	ComponentShort         ComponentType = 5122
	ComponentUnsignedShort ComponentType = 5123
	ComponentUnsignedInt   ComponentType = 5125
	ComponentFloat         ComponentType = 5126
)

// ByteCount is the size in bytes of one component of this type.
func (c ComponentType) ByteCount() int {
	switch c {
	case ComponentByte, ComponentUnsignedByte:
		return 1
	case ComponentShort, ComponentUnsignedShort:
		return 2
	case ComponentUnsignedInt, ComponentFloat:
		return 4
	default:
		return 0
	}
}

// BufferTarget names the intended GPU binding point for a bufferView.
type BufferTarget uint32

const (
	TargetArrayBuffer        BufferTarget = 34962
	TargetElementArrayBuffer BufferTarget = 34963
)

// PrimitiveMode names the topology a mesh primitive's indices describe.
type PrimitiveMode uint32

const (
	ModePoints        PrimitiveMode = 0
	ModeLines         PrimitiveMode = 1
	ModeLineLoop      PrimitiveMode = 2
	ModeLineStrip     PrimitiveMode = 3
	ModeTriangles     PrimitiveMode = 4
	ModeTriangleStrip PrimitiveMode = 5
	ModeTriangleFan   PrimitiveMode = 6
)

// AlphaMode names a material's alpha compositing behavior.
type AlphaMode string

const (
	AlphaOpaque AlphaMode = "OPAQUE"
	AlphaMask   AlphaMode = "MASK"
	AlphaBlend  AlphaMode = "BLEND"
)

// Asset carries the mandatory glTF asset-metadata block.
type Asset struct {
	Copyright  string `json:"copyright,omitempty"`
	Generator  string `json:"generator,omitempty"`
	Version    string `json:"version"`
	MinVersion string `json:"minVersion,omitempty"`
}

// Scene is a set of root nodes to render.
type Scene struct {
	Name  string `json:"name,omitempty"`
	Nodes []int  `json:"nodes,omitempty"`
}

// Node is a single entry in the scene's transform hierarchy. Translation,
// Rotation, Scale, and Matrix are pointers so the default (identity)
// values are omitted from the serialized JSON rather than written out
// explicitly.
type Node struct {
	Name        string       `json:"name,omitempty"`
	Children    []int        `json:"children,omitempty"`
	Mesh        *int         `json:"mesh,omitempty"`
	Matrix      *[16]float64 `json:"matrix,omitempty"`
	Translation *[3]float64  `json:"translation,omitempty"`
	Rotation    *[4]float64  `json:"rotation,omitempty"`
	Scale       *[3]float64  `json:"scale,omitempty"`
}

// Attributes maps the standard glTF vertex attribute semantics to
// accessor indices. Only Position is populated by this library's packer,
// but the rest are kept so a hand-built document can use them.
type Attributes struct {
	Position  *int `json:"POSITION,omitempty"`
	Normal    *int `json:"NORMAL,omitempty"`
	Tangent   *int `json:"TANGENT,omitempty"`
	Texcoord0 *int `json:"TEXCOORD_0,omitempty"`
	Texcoord1 *int `json:"TEXCOORD_1,omitempty"`
	Texcoord2 *int `json:"TEXCOORD_2,omitempty"`
	Texcoord3 *int `json:"TEXCOORD_3,omitempty"`
	Color0    *int `json:"COLOR_0,omitempty"`
	Joints0   *int `json:"JOINTS_0,omitempty"`
	Weights0  *int `json:"WEIGHTS_0,omitempty"`
}

// Primitive is one drawable piece of a mesh: an attribute set, an
// optional index accessor, an optional material, and a topology mode
// that defaults to triangle lists and is omitted from JSON when it is.
type Primitive struct {
	Attributes Attributes     `json:"attributes"`
	Indices    *int           `json:"indices,omitempty"`
	Material   *int           `json:"material,omitempty"`
	Mode       *PrimitiveMode `json:"mode,omitempty"`
}

// Mesh is a named collection of primitives.
type Mesh struct {
	Name       string      `json:"name,omitempty"`
	Primitives []Primitive `json:"primitives"`
}

// PrimitiveCount returns the number of primitives this mesh holds.
func (m Mesh) PrimitiveCount() int {
	return len(m.Primitives)
}

// pbrDefault holds the glTF-default PBRMetallicRoughness values.
var pbrDefault = PBRMetallicRoughness{
	BaseColorFactor: [4]float64{1, 1, 1, 1},
	MetallicFactor:  1,
	RoughnessFactor: 1,
}

// PBRMetallicRoughness is the metallic-roughness PBR parameter set. Its
// zero value is NOT the glTF default (1.0 metallic/roughness, opaque
// white) — use NewPBRMetallicRoughness to get spec defaults. Default
// omission on marshal is implemented by MarshalJSON, not struct tags,
// since encoding/json's omitempty can't express "omit when equal to 1.0".
type PBRMetallicRoughness struct {
	BaseColorFactor [4]float64
	MetallicFactor  float64
	RoughnessFactor float64
}

// NewPBRMetallicRoughness returns the glTF-default PBR parameter set:
// opaque white base color, fully metallic, fully rough.
func NewPBRMetallicRoughness() PBRMetallicRoughness {
	return pbrDefault
}

// Material is a named PBR material. EmissiveFactor, AlphaMode,
// AlphaCutoff, and DoubleSided carry glTF-defined defaults and are
// marshaled through MarshalJSON so those defaults are omitted exactly as
// the glTF spec recommends.
type Material struct {
	Name                 string
	EmissiveFactor       [3]float64
	AlphaMode            AlphaMode
	AlphaCutoff          float64
	DoubleSided          bool
	PBRMetallicRoughness PBRMetallicRoughness
}

// NewMaterial returns a Material with every field at its glTF default:
// opaque, non-emissive, single-sided, alpha cutoff 0.5, and default PBR
// parameters.
func NewMaterial(name string) Material {
	return Material{
		Name:                 name,
		EmissiveFactor:       [3]float64{0, 0, 0},
		AlphaMode:            AlphaOpaque,
		AlphaCutoff:          0.5,
		DoubleSided:          false,
		PBRMetallicRoughness: NewPBRMetallicRoughness(),
	}
}

// Accessor describes how to interpret a slice of a bufferView's bytes as
// typed elements.
type Accessor struct {
	Name          string        `json:"name,omitempty"`
	BufferView    *int          `json:"bufferView,omitempty"`
	ByteOffset    int           `json:"byteOffset,omitempty"`
	ComponentType ComponentType `json:"componentType"`
	Normalized    bool          `json:"normalized,omitempty"`
	Count         int           `json:"count"`
	Type          AccessorType  `json:"type"`
	Max           []float32     `json:"max,omitempty"`
	Min           []float32     `json:"min,omitempty"`
}

// BufferView is a contiguous byte range within a Buffer.
type BufferView struct {
	Name       string        `json:"name,omitempty"`
	Buffer     int           `json:"buffer"`
	ByteOffset int           `json:"byteOffset,omitempty"`
	ByteLength int           `json:"byteLength"`
	ByteStride *int          `json:"byteStride,omitempty"`
	Target     *BufferTarget `json:"target,omitempty"`
}

// Buffer describes a block of binary data. This library only ever
// produces the single embedded GLB-BIN buffer, so URI is always empty.
type Buffer struct {
	Name       string `json:"name,omitempty"`
	ByteLength int    `json:"byteLength"`
	URI        string `json:"uri,omitempty"`
}
