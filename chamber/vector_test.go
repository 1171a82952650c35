package chamber_test

import (
	"testing"

	"github.com/plus3/cubefall/chamber"
	"github.com/stretchr/testify/assert"
)

func TestVectorArithmetic(t *testing.T) {
	a := chamber.Vector3i{X: 1, Y: -2, Z: 3}
	b := chamber.Vector3i{X: 4, Y: 5, Z: -6}

	assert.Equal(t, chamber.Vector3i{X: 5, Y: 3, Z: -3}, a.Add(b))
	assert.Equal(t, chamber.Vector3i{X: -3, Y: -7, Z: 9}, a.Sub(b))
	assert.Equal(t, a, a.Add(b).Sub(b))
	assert.Equal(t, 9+49+81, a.DistSq(b))
}

func TestVectorInBounds(t *testing.T) {
	tests := []struct {
		name string
		v    chamber.Vector3i
		want bool
	}{
		{"origin", chamber.Vector3i{}, true},
		{"far corner", chamber.Vector3i{X: 2, Y: 3, Z: 4}, true},
		{"x at bound", chamber.Vector3i{X: 3, Y: 0, Z: 0}, false},
		{"y at bound", chamber.Vector3i{X: 0, Y: 4, Z: 0}, false},
		{"z at bound", chamber.Vector3i{X: 0, Y: 0, Z: 5}, false},
		{"negative x", chamber.Vector3i{X: -1, Y: 0, Z: 0}, false},
		{"negative z", chamber.Vector3i{X: 0, Y: 0, Z: -1}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.v.InBounds(3, 4, 5))
		})
	}
}

func TestVectorRotate(t *testing.T) {
	v := chamber.Vector3i{X: 1, Y: 2, Z: 3}

	t.Run("formulas", func(t *testing.T) {
		assert.Equal(t, chamber.Vector3i{X: 1, Y: -3, Z: 2}, v.Rotate(chamber.AxisX, chamber.Plus))
		assert.Equal(t, chamber.Vector3i{X: 1, Y: 3, Z: -2}, v.Rotate(chamber.AxisX, chamber.Minus))
		assert.Equal(t, chamber.Vector3i{X: 3, Y: 2, Z: -1}, v.Rotate(chamber.AxisY, chamber.Plus))
		assert.Equal(t, chamber.Vector3i{X: -3, Y: 2, Z: 1}, v.Rotate(chamber.AxisY, chamber.Minus))
		assert.Equal(t, chamber.Vector3i{X: -2, Y: 1, Z: 3}, v.Rotate(chamber.AxisZ, chamber.Plus))
		assert.Equal(t, chamber.Vector3i{X: 2, Y: -1, Z: 3}, v.Rotate(chamber.AxisZ, chamber.Minus))
	})

	for _, axis := range []chamber.Axis{chamber.AxisX, chamber.AxisY, chamber.AxisZ} {
		t.Run("inverse about "+axis.String(), func(t *testing.T) {
			assert.Equal(t, v, v.Rotate(axis, chamber.Plus).Rotate(axis, chamber.Minus))
			assert.Equal(t, v, v.Rotate(axis, chamber.Minus).Rotate(axis, chamber.Plus))
		})

		t.Run("four quarters about "+axis.String(), func(t *testing.T) {
			r := v
			for range 4 {
				r = r.Rotate(axis, chamber.Plus)
			}
			assert.Equal(t, v, r)
		})

		t.Run("length preserved about "+axis.String(), func(t *testing.T) {
			var origin chamber.Vector3i
			assert.Equal(t, v.DistSq(origin), v.Rotate(axis, chamber.Plus).DistSq(origin))
		})
	}
}

func TestUnit(t *testing.T) {
	assert.Equal(t, chamber.Right, chamber.Unit(chamber.AxisX, chamber.Plus))
	assert.Equal(t, chamber.Left, chamber.Unit(chamber.AxisX, chamber.Minus))
	assert.Equal(t, chamber.Front, chamber.Unit(chamber.AxisY, chamber.Plus))
	assert.Equal(t, chamber.Back, chamber.Unit(chamber.AxisY, chamber.Minus))
	assert.Equal(t, chamber.Up, chamber.Unit(chamber.AxisZ, chamber.Plus))
	assert.Equal(t, chamber.Down, chamber.Unit(chamber.AxisZ, chamber.Minus))
	assert.Equal(t, chamber.Plus, chamber.Minus.Opposite())
}
