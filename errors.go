package main

import (
	"errors"
)

var (
	errContextLost     = errors.New("WebGL context lost")
	errCompile         = errors.New("compile failed")
	errLink            = errors.New("link failed")
	errUniformLocation = errors.New("failed to get the storage location of uniform")
	errAttribLocation  = errors.New("failed to get the storage location of attribute")
	errCreateBuffer    = errors.New("failed to create the buffer object")
)
