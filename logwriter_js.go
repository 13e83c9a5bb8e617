package main

import (
	"fmt"
	"html"
	"strings"
	"syscall/js"
)

// logWriter mirrors log lines to the browser console and the log pane.
type logWriter struct {
	console js.Value
	div     js.Value
}

func newLogWriter(div js.Value) *logWriter {
	return &logWriter{
		console: js.Global().Get("console"),
		div:     div,
	}
}

func (w *logWriter) Write(p []byte) (int, error) {
	msg := strings.TrimRight(string(p), "\n")
	w.console.Call("log", msg)
	if w.div.IsNull() || w.div.IsUndefined() {
		return len(p), nil
	}
	s := w.div.Get("innerHTML").String()
	w.div.Set("innerHTML", fmt.Sprintf("%s%s<br/>", s, html.EscapeString(msg)))
	return len(p), nil
}
