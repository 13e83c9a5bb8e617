package main

import (
	"fmt"
	"syscall/js"

	"github.com/seqsense/glrotate/mat"
	webgl "github.com/seqsense/webgl-go"
)

// renderer holds the WebGL context together with the program and the
// locations bound to it.
type renderer struct {
	gl *webgl.WebGL

	program      webgl.Program
	uModelMatrix webgl.Location
	aPosition    int
	vertexBuf    webgl.Buffer
	nVertices    int

	width, height int
}

func newRenderer(gl *webgl.WebGL, c *config) (*renderer, error) {
	vs, err := initVertexShader(gl, vsSource)
	if err != nil {
		return nil, err
	}
	fs, err := initFragmentShader(gl, fsSource(c.Color))
	if err != nil {
		return nil, err
	}
	program, err := linkShaders(gl, vs, fs)
	if err != nil {
		return nil, err
	}
	gl.UseProgram(program)

	r := &renderer{
		gl:        gl,
		program:   program,
		nVertices: len(c.Vertices),
	}
	if err := r.initVertexBuffer(flattenVertices(c.Vertices)); err != nil {
		return nil, err
	}

	r.uModelMatrix = gl.GetUniformLocation(program, uniformModelMatrix)
	if js.Value(r.uModelMatrix).IsNull() {
		if gl.IsContextLost() {
			return nil, errContextLost
		}
		return nil, fmt.Errorf("%w: %s", errUniformLocation, uniformModelMatrix)
	}

	gl.ClearColor(c.ClearColor[0], c.ClearColor[1], c.ClearColor[2], c.ClearColor[3])
	return r, nil
}

func (r *renderer) initVertexBuffer(vertices []float32) error {
	gl := r.gl

	r.vertexBuf = gl.CreateBuffer()
	if v := js.Value(r.vertexBuf); v.IsNull() || v.IsUndefined() {
		return errCreateBuffer
	}
	gl.BindBuffer(gl.ARRAY_BUFFER, r.vertexBuf)
	gl.BufferData(gl.ARRAY_BUFFER, webgl.Float32ArrayBuffer(vertices), gl.STATIC_DRAW)

	r.aPosition = gl.GetAttribLocation(r.program, attribPosition)
	if r.aPosition < 0 {
		return fmt.Errorf("%w: %s", errAttribLocation, attribPosition)
	}
	gl.VertexAttribPointer(r.aPosition, positionSize, gl.FLOAT, false, 0, 0)
	gl.EnableVertexAttribArray(r.aPosition)
	return nil
}

func (r *renderer) resize() {
	w, h := r.gl.Canvas.ClientWidth(), r.gl.Canvas.ClientHeight()
	if w == r.width && h == r.height {
		return
	}
	r.width, r.height = w, h
	r.gl.Canvas.SetWidth(w)
	r.gl.Canvas.SetHeight(h)
	r.gl.Viewport(0, 0, w, h)
}

func (r *renderer) draw(model *mat.Matrix4) {
	gl := r.gl

	r.resize()
	gl.UniformMatrix4fv(r.uModelMatrix, false, model.Mat4())
	gl.Clear(gl.COLOR_BUFFER_BIT)
	gl.DrawArrays(gl.TRIANGLE_FAN, 0, r.nVertices)
}
