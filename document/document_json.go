package document

import "encoding/json"

// MarshalJSON writes the root glTF JSON object. BufferBlob is
// intentionally excluded — it is written as the GLB file's separate
// binary chunk, not embedded in the JSON chunk.
//
// A buffer that never received any bytes would serialize with a
// byteLength of 0, which the glTF schema forbids (the minimum is 1), so
// a document serialized before anything was packed omits its buffer list
// entirely.
func (d *Document) MarshalJSON() ([]byte, error) {
	buffers := d.Buffers
	if len(buffers) == 1 && buffers[0] == (Buffer{}) && len(d.BufferBlob) == 0 {
		buffers = nil
	}

	out := struct {
		Asset       Asset        `json:"asset"`
		Scene       *int         `json:"scene,omitempty"`
		Scenes      []Scene      `json:"scenes,omitempty"`
		Nodes       []Node       `json:"nodes,omitempty"`
		Materials   []Material   `json:"materials,omitempty"`
		Meshes      []Mesh       `json:"meshes,omitempty"`
		Accessors   []Accessor   `json:"accessors,omitempty"`
		BufferViews []BufferView `json:"bufferViews,omitempty"`
		Buffers     []Buffer     `json:"buffers,omitempty"`
	}{
		Asset:       d.Asset,
		Scene:       d.Scene,
		Scenes:      d.Scenes,
		Nodes:       d.Nodes,
		Materials:   d.Materials,
		Meshes:      d.Meshes,
		Accessors:   d.Accessors,
		BufferViews: d.BufferViews,
		Buffers:     buffers,
	}
	return json.Marshal(out)
}
