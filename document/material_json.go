package document

import "encoding/json"

// MarshalJSON writes baseColorFactor only when it differs from opaque
// white, and metallicFactor/roughnessFactor only when they differ from
// 1.0 — the glTF-defined defaults — mirroring the original schema's
// per-field is_default_* skip_serializing_if checks rather than relying
// on encoding/json's omitempty, which can't express "omit when equal to
// 1.0" or "omit when equal to [1,1,1,1]".
func (p PBRMetallicRoughness) MarshalJSON() ([]byte, error) {
	out := struct {
		BaseColorFactor *[4]float64 `json:"baseColorFactor,omitempty"`
		MetallicFactor  *float64    `json:"metallicFactor,omitempty"`
		RoughnessFactor *float64    `json:"roughnessFactor,omitempty"`
	}{}

	if p.BaseColorFactor != ([4]float64{1, 1, 1, 1}) {
		out.BaseColorFactor = &p.BaseColorFactor
	}
	if p.MetallicFactor != 1 {
		out.MetallicFactor = &p.MetallicFactor
	}
	if p.RoughnessFactor != 1 {
		out.RoughnessFactor = &p.RoughnessFactor
	}

	return json.Marshal(out)
}

// MarshalJSON writes each glTF-defaulted field only when it differs from
// its spec default (emissiveFactor [0,0,0], alphaMode OPAQUE, alphaCutoff
// 0.5, doubleSided false), matching the original schema's per-field
// default-omission behavior.
func (m Material) MarshalJSON() ([]byte, error) {
	out := struct {
		Name                 string                `json:"name,omitempty"`
		EmissiveFactor       *[3]float64           `json:"emissiveFactor,omitempty"`
		AlphaMode            *AlphaMode            `json:"alphaMode,omitempty"`
		AlphaCutoff          *float64              `json:"alphaCutoff,omitempty"`
		DoubleSided          *bool                 `json:"doubleSided,omitempty"`
		PBRMetallicRoughness PBRMetallicRoughness  `json:"pbrMetallicRoughness"`
	}{
		Name:                 m.Name,
		PBRMetallicRoughness: m.PBRMetallicRoughness,
	}

	if m.EmissiveFactor != ([3]float64{0, 0, 0}) {
		out.EmissiveFactor = &m.EmissiveFactor
	}
	if m.AlphaMode != AlphaOpaque && m.AlphaMode != "" {
		out.AlphaMode = &m.AlphaMode
	}
	if m.AlphaCutoff != 0.5 {
		out.AlphaCutoff = &m.AlphaCutoff
	}
	if m.DoubleSided {
		out.DoubleSided = &m.DoubleSided
	}

	return json.Marshal(out)
}
