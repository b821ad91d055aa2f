package math

// ComposeTransform builds a model matrix from a scale, per-axis rotation
// angles in degrees and a position. The composition order is fixed: scale
// first, then rotation about x, y and z in that order, then translation.
// Applied to column vectors this is the matrix T * Rz * Ry * Rx * S. The
// order is not commutative; scene placement data depends on it.
//
// The matrix is returned rather than written to shader state so that callers
// decide when to push it.
func ComposeTransform(scale, rotationDeg, position Vec3) Mat4 {
	out := NewMat4Scale(scale)
	out = out.Mul(NewMat4EulerX(DegToRad(rotationDeg.X)))
	out = out.Mul(NewMat4EulerY(DegToRad(rotationDeg.Y)))
	out = out.Mul(NewMat4EulerZ(DegToRad(rotationDeg.Z)))
	return out.Mul(NewMat4Translation(position))
}
