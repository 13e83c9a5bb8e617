package main

import (
	"golang.org/x/image/math/f32"
)

const positionSize = 2

// flattenVertices packs the polygon into the interleaved layout bound to
// the a_Position attribute.
func flattenVertices(vertices []f32.Vec2) []float32 {
	buf := make([]float32, 0, len(vertices)*positionSize)
	for _, v := range vertices {
		buf = append(buf, v[0], v[1])
	}
	return buf
}
