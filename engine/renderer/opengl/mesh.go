package opengl

import (
	"github.com/chewxy/math32"
	"github.com/go-gl/gl/v4.1-core/gl"

	"github.com/SoldierMechanic/CS-330-Comp-Graphic-and-Visualization/engine/core"
)

// Vertex layout: position(3), normal(3), texcoord(2), interleaved.
const vertexStride = 8

const (
	cylinderSlices = 36
	coneSlices     = 36
	sphereStacks   = 18
	sphereSectors  = 36
)

type meshBuffer struct {
	vao         uint32
	vbo         uint32
	vertexCount int32
}

func uploadMesh(vertices []float32) *meshBuffer {
	m := &meshBuffer{vertexCount: int32(len(vertices) / vertexStride)}

	gl.GenVertexArrays(1, &m.vao)
	gl.BindVertexArray(m.vao)

	gl.GenBuffers(1, &m.vbo)
	gl.BindBuffer(gl.ARRAY_BUFFER, m.vbo)
	gl.BufferData(gl.ARRAY_BUFFER, len(vertices)*4, gl.Ptr(vertices), gl.STATIC_DRAW)

	stride := int32(vertexStride * 4)
	gl.EnableVertexAttribArray(0)
	gl.VertexAttribPointer(0, 3, gl.FLOAT, false, stride, gl.PtrOffset(0))
	gl.EnableVertexAttribArray(1)
	gl.VertexAttribPointer(1, 3, gl.FLOAT, false, stride, gl.PtrOffset(3*4))
	gl.EnableVertexAttribArray(2)
	gl.VertexAttribPointer(2, 2, gl.FLOAT, false, stride, gl.PtrOffset(6*4))

	gl.BindVertexArray(0)
	return m
}

func (m *meshBuffer) draw() {
	gl.BindVertexArray(m.vao)
	gl.DrawArrays(gl.TRIANGLES, 0, m.vertexCount)
	gl.BindVertexArray(0)
}

func (m *meshBuffer) dispose() {
	gl.DeleteBuffers(1, &m.vbo)
	gl.DeleteVertexArrays(1, &m.vao)
}

// MeshProvider implements renderer.MeshProvider with generated unit
// primitives. Each mesh is generated and uploaded once; repeated Load calls
// are no-ops.
type MeshProvider struct {
	plane    *meshBuffer
	box      *meshBuffer
	cylinder *meshBuffer
	sphere   *meshBuffer
	cone     *meshBuffer
}

func NewMeshProvider() *MeshProvider {
	return &MeshProvider{}
}

func (mp *MeshProvider) LoadPlaneMesh() {
	if mp.plane == nil {
		mp.plane = uploadMesh(planeVertices())
	}
}

func (mp *MeshProvider) LoadBoxMesh() {
	if mp.box == nil {
		mp.box = uploadMesh(boxVertices())
	}
}

func (mp *MeshProvider) LoadCylinderMesh() {
	if mp.cylinder == nil {
		mp.cylinder = uploadMesh(cylinderVertices(cylinderSlices))
	}
}

func (mp *MeshProvider) LoadSphereMesh() {
	if mp.sphere == nil {
		mp.sphere = uploadMesh(sphereVertices(sphereStacks, sphereSectors))
	}
}

func (mp *MeshProvider) LoadConeMesh() {
	if mp.cone == nil {
		mp.cone = uploadMesh(coneVertices(coneSlices))
	}
}

func (mp *MeshProvider) DrawPlaneMesh()    { mp.drawMesh(mp.plane, "plane") }
func (mp *MeshProvider) DrawBoxMesh()      { mp.drawMesh(mp.box, "box") }
func (mp *MeshProvider) DrawCylinderMesh() { mp.drawMesh(mp.cylinder, "cylinder") }
func (mp *MeshProvider) DrawSphereMesh()   { mp.drawMesh(mp.sphere, "sphere") }
func (mp *MeshProvider) DrawConeMesh()     { mp.drawMesh(mp.cone, "cone") }

func (mp *MeshProvider) drawMesh(m *meshBuffer, name string) {
	if m == nil {
		core.LogWarn("draw of %s mesh before it was loaded", name)
		return
	}
	m.draw()
}

func (mp *MeshProvider) Dispose() {
	for _, m := range []*meshBuffer{mp.plane, mp.box, mp.cylinder, mp.sphere, mp.cone} {
		if m != nil {
			m.dispose()
		}
	}
	mp.plane, mp.box, mp.cylinder, mp.sphere, mp.cone = nil, nil, nil, nil, nil
}

// planeVertices builds a quad in the XZ plane with half-extent 1 and its
// normal pointing up.
func planeVertices() []float32 {
	return []float32{
		-1, 0, -1, 0, 1, 0, 0, 1,
		-1, 0, 1, 0, 1, 0, 0, 0,
		1, 0, 1, 0, 1, 0, 1, 0,

		-1, 0, -1, 0, 1, 0, 0, 1,
		1, 0, 1, 0, 1, 0, 1, 0,
		1, 0, -1, 0, 1, 0, 1, 1,
	}
}

// boxVertices builds a unit cube centered at the origin.
func boxVertices() []float32 {
	h := float32(0.5)
	verts := make([]float32, 0, 36*vertexStride)

	quad := func(a, b, c, d [3]float32, n [3]float32) {
		uv := [4][2]float32{{0, 0}, {1, 0}, {1, 1}, {0, 1}}
		corners := [4][3]float32{a, b, c, d}
		for _, i := range [6]int{0, 1, 2, 0, 2, 3} {
			verts = append(verts,
				corners[i][0], corners[i][1], corners[i][2],
				n[0], n[1], n[2],
				uv[i][0], uv[i][1])
		}
	}

	// front, back, left, right, top, bottom
	quad([3]float32{-h, -h, h}, [3]float32{h, -h, h}, [3]float32{h, h, h}, [3]float32{-h, h, h}, [3]float32{0, 0, 1})
	quad([3]float32{h, -h, -h}, [3]float32{-h, -h, -h}, [3]float32{-h, h, -h}, [3]float32{h, h, -h}, [3]float32{0, 0, -1})
	quad([3]float32{-h, -h, -h}, [3]float32{-h, -h, h}, [3]float32{-h, h, h}, [3]float32{-h, h, -h}, [3]float32{-1, 0, 0})
	quad([3]float32{h, -h, h}, [3]float32{h, -h, -h}, [3]float32{h, h, -h}, [3]float32{h, h, h}, [3]float32{1, 0, 0})
	quad([3]float32{-h, h, h}, [3]float32{h, h, h}, [3]float32{h, h, -h}, [3]float32{-h, h, -h}, [3]float32{0, 1, 0})
	quad([3]float32{-h, -h, -h}, [3]float32{h, -h, -h}, [3]float32{h, -h, h}, [3]float32{-h, -h, h}, [3]float32{0, -1, 0})

	return verts
}

// cylinderVertices builds a cylinder of radius 1 with its base at y=0 and
// top at y=1, including both caps.
func cylinderVertices(slices int) []float32 {
	verts := make([]float32, 0, slices*12*vertexStride)

	for i := 0; i < slices; i++ {
		a0 := 2 * math32.Pi * float32(i) / float32(slices)
		a1 := 2 * math32.Pi * float32(i+1) / float32(slices)
		x0, z0 := math32.Cos(a0), math32.Sin(a0)
		x1, z1 := math32.Cos(a1), math32.Sin(a1)
		u0 := float32(i) / float32(slices)
		u1 := float32(i+1) / float32(slices)

		// side
		verts = append(verts,
			x0, 0, z0, x0, 0, z0, u0, 0,
			x1, 0, z1, x1, 0, z1, u1, 0,
			x1, 1, z1, x1, 0, z1, u1, 1,

			x0, 0, z0, x0, 0, z0, u0, 0,
			x1, 1, z1, x1, 0, z1, u1, 1,
			x0, 1, z0, x0, 0, z0, u0, 1,
		)
		// top cap
		verts = append(verts,
			0, 1, 0, 0, 1, 0, 0.5, 0.5,
			x1, 1, z1, 0, 1, 0, 0.5+x1*0.5, 0.5+z1*0.5,
			x0, 1, z0, 0, 1, 0, 0.5+x0*0.5, 0.5+z0*0.5,
		)
		// bottom cap
		verts = append(verts,
			0, 0, 0, 0, -1, 0, 0.5, 0.5,
			x0, 0, z0, 0, -1, 0, 0.5+x0*0.5, 0.5+z0*0.5,
			x1, 0, z1, 0, -1, 0, 0.5+x1*0.5, 0.5+z1*0.5,
		)
	}

	return verts
}

// sphereVertices builds a unit sphere centered at the origin.
func sphereVertices(stacks, sectors int) []float32 {
	point := func(stack, sector int) (pos [3]float32, uv [2]float32) {
		phi := math32.Pi/2 - math32.Pi*float32(stack)/float32(stacks)
		theta := 2 * math32.Pi * float32(sector) / float32(sectors)
		pos[0] = math32.Cos(phi) * math32.Cos(theta)
		pos[1] = math32.Sin(phi)
		pos[2] = math32.Cos(phi) * math32.Sin(theta)
		uv[0] = float32(sector) / float32(sectors)
		uv[1] = float32(stack) / float32(stacks)
		return pos, uv
	}

	verts := make([]float32, 0, stacks*sectors*6*vertexStride)
	push := func(stack, sector int) {
		pos, uv := point(stack, sector)
		// unit sphere: the normal equals the position
		verts = append(verts, pos[0], pos[1], pos[2], pos[0], pos[1], pos[2], uv[0], uv[1])
	}

	for stack := 0; stack < stacks; stack++ {
		for sector := 0; sector < sectors; sector++ {
			if stack > 0 {
				push(stack, sector)
				push(stack+1, sector)
				push(stack, sector+1)
			}
			if stack < stacks-1 {
				push(stack, sector+1)
				push(stack+1, sector)
				push(stack+1, sector+1)
			}
		}
	}

	return verts
}

// coneVertices builds a cone with base radius 1 at y=0 and apex at y=1.
func coneVertices(slices int) []float32 {
	verts := make([]float32, 0, slices*9*vertexStride)
	// slant normal component for r=1, h=1
	inv := 1 / math32.Sqrt(2)

	for i := 0; i < slices; i++ {
		a0 := 2 * math32.Pi * float32(i) / float32(slices)
		a1 := 2 * math32.Pi * float32(i+1) / float32(slices)
		am := (a0 + a1) * 0.5
		x0, z0 := math32.Cos(a0), math32.Sin(a0)
		x1, z1 := math32.Cos(a1), math32.Sin(a1)
		u0 := float32(i) / float32(slices)
		u1 := float32(i+1) / float32(slices)

		// side
		verts = append(verts,
			x0, 0, z0, x0*inv, inv, z0*inv, u0, 0,
			x1, 0, z1, x1*inv, inv, z1*inv, u1, 0,
			0, 1, 0, math32.Cos(am)*inv, inv, math32.Sin(am)*inv, (u0+u1)*0.5, 1,
		)
		// base cap
		verts = append(verts,
			0, 0, 0, 0, -1, 0, 0.5, 0.5,
			x0, 0, z0, 0, -1, 0, 0.5+x0*0.5, 0.5+z0*0.5,
			x1, 0, z1, 0, -1, 0, 0.5+x1*0.5, 0.5+z1*0.5,
		)
	}

	return verts
}
