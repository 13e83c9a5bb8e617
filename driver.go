package main

import (
	"log/slog"
	"time"

	"github.com/seqsense/glrotate/mat"
)

// frameTarget uploads the model matrix and draws one frame.
type frameTarget interface {
	draw(model *mat.Matrix4)
}

type frameDriver struct {
	anim   animation
	axis   [3]float32
	model  *mat.Matrix4
	target frameTarget
	logger *slog.Logger
}

func newFrameDriver(c *config, now func() time.Time, target frameTarget, logger *slog.Logger) *frameDriver {
	return &frameDriver{
		anim: animation{
			clock: newFrameClock(now),
			step:  c.AngleStep,
		},
		axis:   c.Axis,
		model:  mat.NewMatrix4(),
		target: target,
		logger: logger,
	}
}

// tick renders one frame. The rotation is rebuilt from the absolute angle
// every time so rounding errors do not accumulate.
func (d *frameDriver) tick() {
	ang := d.anim.advance()
	d.model.SetRotate(ang, d.axis[0], d.axis[1], d.axis[2])
	d.logger.Debug("frame", "angle", ang)
	d.target.draw(d.model)
}
