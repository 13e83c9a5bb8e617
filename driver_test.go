package main

import (
	"bytes"
	"log/slog"
	"testing"
	"time"

	"github.com/seqsense/glrotate/mat"
)

type recordTarget struct {
	frames [][16]float32
}

func (r *recordTarget) draw(m *mat.Matrix4) {
	r.frames = append(r.frames, m.Elements)
}

func TestFrameDriver(t *testing.T) {
	c, err := loadConfig()
	if err != nil {
		t.Fatal(err)
	}
	fc := &fakeClock{t: time.Unix(0, 0)}
	rt := &recordTarget{}
	var logBuf bytes.Buffer
	d := newFrameDriver(c, fc.now, rt, newLogger(&logBuf, slog.LevelDebug))

	steps := []time.Duration{
		0,
		time.Second,
		500 * time.Millisecond,
		11 * time.Second,
	}
	expectedAngles := []float32{0, 30, 45, 15}

	for i, s := range steps {
		fc.add(s)
		d.tick()

		expected := mat.NewMatrix4().SetRotate(expectedAngles[i], 0, 0, 1).Elements
		if len(rt.frames) != i+1 {
			t.Fatalf("Expected %d frames, got %d", i+1, len(rt.frames))
		}
		if !nearlyEqualElements(rt.frames[i], expected, 1e-5) {
			t.Errorf("Frame %d: expected %v, got %v", i, expected, rt.frames[i])
		}
	}
	if logBuf.Len() == 0 {
		t.Error("Frames must be logged at debug level")
	}
}

func TestFrameDriver_Axis(t *testing.T) {
	c, err := loadConfig([]byte("axis: [1, 1, 1]\nangle_step: 120\n"))
	if err != nil {
		t.Fatal(err)
	}
	fc := &fakeClock{t: time.Unix(0, 0)}
	rt := &recordTarget{}
	var logBuf bytes.Buffer
	d := newFrameDriver(c, fc.now, rt, newLogger(&logBuf, slog.LevelInfo))

	fc.add(time.Second)
	d.tick()

	expected := mat.NewMatrix4().SetRotate(120, 1, 1, 1).Elements
	if !nearlyEqualElements(rt.frames[0], expected, 1e-5) {
		t.Errorf("Expected %v, got %v", expected, rt.frames[0])
	}
	if logBuf.Len() != 0 {
		t.Errorf("Frames must not be logged at info level, got %q", logBuf.String())
	}
}

func nearlyEqualElements(a, b [16]float32, tol float32) bool {
	for i := range a {
		d := a[i] - b[i]
		if d < -tol || tol < d {
			return false
		}
	}
	return true
}
