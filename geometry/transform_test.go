package geometry

import (
	"math"
	"testing"

	"github.com/paraforge-go/emg/vector"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTranslate(t *testing.T) {
	g := New()
	g.CreateVtx(vector.New(0, 0, 0))
	g.Select(vector.New(-1, -1, -1), vector.New(1, 1, 1))

	g.Translate(1, 2, 3)

	v, err := g.Vtx(0)
	require.NoError(t, err)
	assert.Equal(t, vector.New(1, 2, 3), v)
}

func TestRotateEulerQuarterTurnAboutZ(t *testing.T) {
	g := New()
	g.CreateVtx(vector.New(1, 0, 0))
	g.Select(vector.New(0, -1, -1), vector.New(2, 1, 1))

	g.RotateEuler(0, 0, math.Pi/2)

	v, err := g.Vtx(0)
	require.NoError(t, err)
	assert.InDelta(t, 0, v.X, 1e-9)
	assert.InDelta(t, 1, v.Y, 1e-9)
}

func TestRotateAxisMatchesEulerForZ(t *testing.T) {
	g := New()
	g.CreateVtx(vector.New(1, 0, 0))
	g.Select(vector.New(0, -1, -1), vector.New(2, 1, 1))

	g.RotateAxis(0, 0, 1, math.Pi/2)

	v, err := g.Vtx(0)
	require.NoError(t, err)
	assert.InDelta(t, 0, v.X, 1e-9)
	assert.InDelta(t, 1, v.Y, 1e-9)
}

func TestScalePositiveDoesNotFlip(t *testing.T) {
	g := Cube()
	before := g.Tris()
	g.Scale(2, 2, 2)
	assert.Equal(t, before, g.Tris())
}

func TestScaleSingleNegativeFactorFlipsNormals(t *testing.T) {
	g := Cube()
	before, err := g.Tri(0)
	require.NoError(t, err)

	g.Scale(-1, 1, 1)

	after, err := g.Tri(0)
	require.NoError(t, err)
	assert.Equal(t, before[0], after[2])
	assert.Equal(t, before[2], after[0])
}

func TestScaleTwoNegativeFactorsDoesNotFlip(t *testing.T) {
	g := Cube()
	before := g.Tris()
	g.Scale(-1, -1, 1)
	assert.Equal(t, before, g.Tris())
}
