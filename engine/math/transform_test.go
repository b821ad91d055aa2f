package math

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestComposeTransformIdentity(t *testing.T) {
	m := ComposeTransform(NewVec3One(), NewVec3Zero(), NewVec3Zero())
	assert.True(t, m.ApproxEqual(NewMat4Identity(), 1e-6))
}

func TestComposeTransformTranslationOnly(t *testing.T) {
	m := ComposeTransform(NewVec3One(), NewVec3Zero(), NewVec3(3, 4, 5))
	assert.True(t, m.ApproxEqual(NewMat4Translation(NewVec3(3, 4, 5)), 1e-6))
}

func TestComposeTransformScaleAppliesBeforeTranslation(t *testing.T) {
	m := ComposeTransform(NewVec3(2, 2, 2), NewVec3Zero(), NewVec3(1, 0, 0))
	assertVec3InDelta(t, NewVec3(3, 2, 2), transformPoint(m, NewVec3(1, 1, 1)), 1e-5)
}

func TestComposeTransformRotationAppliesAfterScale(t *testing.T) {
	// Scale by 2 on x, rotate 90 degrees about y, move to (1, 0, 0).
	m := ComposeTransform(NewVec3(2, 1, 1), NewVec3(0, 90, 0), NewVec3(1, 0, 0))

	expected := Mat4{Data: [16]float32{
		0, 0, -2, 0,
		0, 1, 0, 0,
		1, 0, 0, 0,
		1, 0, 0, 1,
	}}
	assert.True(t, m.ApproxEqual(expected, 1e-5))

	// The scaled x axis ends up along negative z, shifted by the position.
	assertVec3InDelta(t, NewVec3(1, 0, -2), transformPoint(m, NewVec3(1, 0, 0)), 1e-5)
}

func TestComposeTransformRotationOrderIsXThenYThenZ(t *testing.T) {
	m := ComposeTransform(NewVec3One(), NewVec3(90, 90, 0), NewVec3Zero())

	// y goes to z under the x rotation, then z goes to x under the y
	// rotation.
	assertVec3InDelta(t, NewVec3(1, 0, 0), transformPoint(m, NewVec3(0, 1, 0)), 1e-5)

	reversed := NewMat4EulerY(DegToRad(90)).Mul(NewMat4EulerX(DegToRad(90)))
	assert.False(t, m.ApproxEqual(reversed, 1e-5))
}

func TestComposeTransformDoesNotMutateInputs(t *testing.T) {
	scale := NewVec3(2, 2, 2)
	rotation := NewVec3(10, 20, 30)
	position := NewVec3(1, 2, 3)

	_ = ComposeTransform(scale, rotation, position)

	assert.Equal(t, NewVec3(2, 2, 2), scale)
	assert.Equal(t, NewVec3(10, 20, 30), rotation)
	assert.Equal(t, NewVec3(1, 2, 3), position)
}
