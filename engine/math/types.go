package math

// Vec2 is a 2-component float32 vector.
type Vec2 struct {
	X, Y float32
}

// Vec3 is a 3-component float32 vector.
type Vec3 struct {
	X, Y, Z float32
}

// Vec4 is a 4-component float32 vector.
type Vec4 struct {
	X, Y, Z, W float32
}

// Mat4 is a 4x4 matrix stored row-major with a row-vector convention:
// translation occupies Data[12..14]. Laid out this way the backing array is
// byte-compatible with the column-major buffers the graphics API expects.
type Mat4 struct {
	Data [16]float32
}
