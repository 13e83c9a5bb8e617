package main

import (
	"fmt"
	"syscall/js"

	webgl "github.com/seqsense/webgl-go"
)

func initShader(gl *webgl.WebGL, typ webgl.ShaderType, stage, src string) (webgl.Shader, error) {
	s := gl.CreateShader(typ)
	gl.ShaderSource(s, src)
	gl.CompileShader(s)
	if !gl.GetShaderParameter(s, gl.COMPILE_STATUS).(bool) {
		if gl.IsContextLost() {
			return webgl.Shader(js.Null()), errContextLost
		}
		log := gl.JS().Call("getShaderInfoLog", js.Value(s)).String()
		gl.JS().Call("deleteShader", js.Value(s))
		return webgl.Shader(js.Null()), fmt.Errorf("%w (%s): %s", errCompile, stage, log)
	}
	return s, nil
}

func initVertexShader(gl *webgl.WebGL, src string) (webgl.Shader, error) {
	return initShader(gl, gl.VERTEX_SHADER, "VERTEX_SHADER", src)
}

func initFragmentShader(gl *webgl.WebGL, src string) (webgl.Shader, error) {
	return initShader(gl, gl.FRAGMENT_SHADER, "FRAGMENT_SHADER", src)
}

func linkShaders(gl *webgl.WebGL, shaders ...webgl.Shader) (webgl.Program, error) {
	program := gl.CreateProgram()
	for _, s := range shaders {
		gl.AttachShader(program, s)
	}
	gl.LinkProgram(program)
	if !gl.GetProgramParameter(program, gl.LINK_STATUS).(bool) {
		if gl.IsContextLost() {
			return webgl.Program(js.Null()), errContextLost
		}
		log := gl.GetProgramInfoLog(program)
		gl.JS().Call("deleteProgram", js.Value(program))
		return webgl.Program(js.Null()), fmt.Errorf("%w: %s", errLink, log)
	}
	return program, nil
}
