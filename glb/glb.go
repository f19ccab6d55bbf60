// Package glb serializes a document.Document into the binary GLB
// container: a 12-byte header followed by a JSON chunk and an optional
// BIN chunk, each individually padded to a 4-byte boundary per the glTF
// binary file format spec.
//
// Reference: https://registry.khronos.org/glTF/specs/2.0/glTF-2.0.html#glb-file-format-specification
package glb

import (
	"encoding/binary"
	"encoding/json"

	"github.com/paraforge-go/emg/document"
)

const (
	magic           = 0x46546c67 // "glTF"
	version         = 2
	chunkTypeJSON   = 0x4e4f534a // "JSON"
	chunkTypeBIN    = 0x004e4942 // "BIN\0"
	headerSize      = 12
	chunkHeaderSize = 8
)

// Serialize marshals doc's JSON document and binary buffer into a
// complete GLB byte stream.
func Serialize(doc *document.Document) ([]byte, error) {
	jsonBytes, err := json.Marshal(doc)
	if err != nil {
		return nil, err
	}

	// Per the GLB spec, each chunk's length field excludes its own header
	// but includes padding; the JSON chunk pads with ASCII spaces, the BIN
	// chunk with zero bytes.
	jsonPadding := pad4(len(jsonBytes))
	jsonLength := len(jsonBytes) + jsonPadding

	binBytes := doc.BufferBlob
	binPadding := pad4(len(binBytes))
	binLength := len(binBytes) + binPadding

	totalLength := headerSize + chunkHeaderSize + jsonLength
	if len(binBytes) > 0 {
		totalLength += chunkHeaderSize + binLength
	}

	out := make([]byte, 0, totalLength)

	out = binary.LittleEndian.AppendUint32(out, magic)
	out = binary.LittleEndian.AppendUint32(out, version)
	out = binary.LittleEndian.AppendUint32(out, uint32(totalLength))

	out = binary.LittleEndian.AppendUint32(out, uint32(jsonLength))
	out = binary.LittleEndian.AppendUint32(out, chunkTypeJSON)
	out = append(out, jsonBytes...)
	for i := 0; i < jsonPadding; i++ {
		out = append(out, 0x20)
	}

	if len(binBytes) > 0 {
		out = binary.LittleEndian.AppendUint32(out, uint32(binLength))
		out = binary.LittleEndian.AppendUint32(out, chunkTypeBIN)
		out = append(out, binBytes...)
		for i := 0; i < binPadding; i++ {
			out = append(out, 0x00)
		}
	}

	return out, nil
}

// pad4 returns the number of bytes needed to round n up to a multiple of 4.
func pad4(n int) int {
	return (4 - n%4) % 4
}
