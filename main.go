//go:build !js

package main

import (
	"log/slog"
	"os"
)

func main() {
	logger := newLogger(os.Stderr, slog.LevelInfo)
	logger.Error("WebGL is not supported on this platform, build with GOOS=js GOARCH=wasm")
	os.Exit(1)
}
