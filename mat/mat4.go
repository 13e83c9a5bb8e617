// Package mat provides the 4x4 model matrix uploaded to the vertex shader.
package mat

import (
	"github.com/chewxy/math32"
	pcmat "github.com/seqsense/pcgol/mat"
)

// Matrix4 is a 4x4 transformation matrix stored in column-major order.
// Element 4*col+row holds the value at the given row and column.
type Matrix4 struct {
	Elements [16]float32
}

// NewMatrix4 returns an identity matrix.
func NewMatrix4() *Matrix4 {
	return (&Matrix4{}).SetIdentity()
}

// SetIdentity overwrites m with the identity matrix and returns m.
func (m *Matrix4) SetIdentity() *Matrix4 {
	m.Elements = [16]float32{
		1, 0, 0, 0,
		0, 1, 0, 0,
		0, 0, 1, 0,
		0, 0, 0, 1,
	}
	return m
}

// SetRotate overwrites m with a rotation of ang degrees around the axis
// (x, y, z) and returns m.
// The axis needs not to be normalized but must not be a zero vector.
func (m *Matrix4) SetRotate(ang, x, y, z float32) *Matrix4 {
	s, c := math32.Sincos(math32.Pi * ang / 180)

	switch {
	case x != 0 && y == 0 && z == 0:
		if x < 0 {
			s = -s
		}
		m.Elements = [16]float32{
			1, 0, 0, 0,
			0, c, s, 0,
			0, -s, c, 0,
			0, 0, 0, 1,
		}
	case x == 0 && y != 0 && z == 0:
		if y < 0 {
			s = -s
		}
		m.Elements = [16]float32{
			c, 0, -s, 0,
			0, 1, 0, 0,
			s, 0, c, 0,
			0, 0, 0, 1,
		}
	case x == 0 && y == 0 && z != 0:
		if z < 0 {
			s = -s
		}
		m.Elements = [16]float32{
			c, s, 0, 0,
			-s, c, 0, 0,
			0, 0, 1, 0,
			0, 0, 0, 1,
		}
	default:
		// Exact comparison: an axis which is almost but not exactly unit
		// length is used as is.
		if l := math32.Sqrt(x*x + y*y + z*z); l != 1 {
			x, y, z = x/l, y/l, z/l
		}
		nc := 1 - c
		xy, yz, zx := x*y, y*z, z*x
		xs, ys, zs := x*s, y*s, z*s
		m.Elements = [16]float32{
			x*x*nc + c, xy*nc + zs, zx*nc - ys, 0,
			xy*nc - zs, y*y*nc + c, yz*nc + xs, 0,
			zx*nc + ys, yz*nc - xs, z*z*nc + c, 0,
			0, 0, 0, 1,
		}
	}
	return m
}

// Mat4 returns the elements in the layout expected by UniformMatrix4fv.
func (m *Matrix4) Mat4() pcmat.Mat4 {
	return pcmat.Mat4(m.Elements)
}
