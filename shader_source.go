package main

import (
	"fmt"
)

const (
	uniformModelMatrix = "u_ModelMatrix"
	attribPosition     = "a_Position"
)

const vsSource = `
	attribute vec4 a_Position;
	uniform mat4 u_ModelMatrix;

	void main(void) {
		gl_Position = u_ModelMatrix * a_Position;
	}
`

const fsSourceFormat = `
	precision mediump float;

	void main(void) {
		gl_FragColor = vec4(%.4f, %.4f, %.4f, %.4f);
	}
`

// fsSource returns the fragment shader filling the polygon with a constant
// color.
func fsSource(color [4]float32) string {
	return fmt.Sprintf(fsSourceFormat, color[0], color[1], color[2], color[3])
}
