package main

import (
	"log/slog"
	"syscall/js"
	"time"

	webgl "github.com/seqsense/webgl-go"
)

func main() {
	doc := js.Global().Get("document")
	canvas := doc.Call("getElementById", "webgl")
	logOut := newLogWriter(doc.Call("getElementById", "log"))
	logger := newLogger(logOut, slog.LevelInfo)

	if canvas.IsNull() {
		logger.Error("failed to retrieve the <canvas> element")
		return
	}

	override, err := fetchConfig(canvas)
	if err != nil {
		logger.Error("failed to fetch config", "error", err)
		return
	}
	c, err := loadConfig(override)
	if err != nil {
		logger.Error("failed to load config", "error", err)
		return
	}
	logger = newLogger(logOut, c.LogLevel)

	gl, err := webgl.New(canvas)
	if err != nil {
		logger.Error("failed to get the rendering context for WebGL", "error", err)
		return
	}
	showDebugInfo(gl, logger)

	r, err := newRenderer(gl, c)
	if err != nil {
		logger.Error("failed to initialize shaders", "error", err)
		return
	}
	logger.Info("renderer initialized", "vertices", r.nVertices, "angle_step", c.AngleStep)

	d := newFrameDriver(c, time.Now, r, logger)

	chFrame := make(chan struct{}, 1)
	onFrame := js.FuncOf(func(this js.Value, args []js.Value) interface{} {
		select {
		case chFrame <- struct{}{}:
		default:
		}
		return nil
	})
	defer onFrame.Release()
	sched := &frameScheduler{
		request: func() {
			js.Global().Call("requestAnimationFrame", onFrame)
		},
	}

	chContextLost := make(chan webgl.WebGLContextEvent, 1)
	gl.Canvas.OnWebGLContextLost(func(e webgl.WebGLContextEvent) {
		// Required to be restored.
		e.PreventDefault()
		chContextLost <- e
	})
	chContextRestored := make(chan webgl.WebGLContextEvent, 1)
	gl.Canvas.OnWebGLContextRestored(func(e webgl.WebGLContextEvent) {
		chContextRestored <- e
	})

	sched.schedule()
	for {
		select {
		case <-chFrame:
			if !sched.onFrame() {
				continue
			}
			d.tick()
			sched.schedule()
		case e := <-chContextLost:
			logger.Warn("WebGL context lost", "status", e.StatusMessage)
			sched.pause()
		case <-chContextRestored:
			r, err := newRenderer(gl, c)
			if err != nil {
				logger.Error("failed to restore renderer", "error", err)
				return
			}
			d.target = r
			logger.Info("WebGL context restored")
			sched.resume()
		}
	}
}
