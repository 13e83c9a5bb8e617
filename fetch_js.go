package main

import (
	"errors"
	"fmt"
	"syscall/js"
)

// fetchGet reads the whole body of the given URL.
// Only the last stage of the promise chain reports the result, so that the
// callbacks can be released after it.
func fetchGet(path string) ([]byte, error) {
	var (
		b      []byte
		errGet error
	)
	done := make(chan struct{}, 1)

	onResponse := js.FuncOf(func(this js.Value, args []js.Value) interface{} {
		if res := args[0]; !res.Get("ok").Bool() {
			errGet = fmt.Errorf("failed to fetch file: %s", res.Get("statusText").String())
			return nil
		}
		return args[0].Call("arrayBuffer")
	})
	onFetchError := js.FuncOf(func(this js.Value, args []js.Value) interface{} {
		errGet = errors.New("failed to fetch file")
		return nil
	})
	onBody := js.FuncOf(func(this js.Value, args []js.Value) interface{} {
		if errGet == nil {
			array := js.Global().Get("Uint8Array").New(args[0])
			b = make([]byte, array.Get("byteLength").Int())
			js.CopyBytesToGo(b, array)
		}
		done <- struct{}{}
		return nil
	})
	onBodyError := js.FuncOf(func(this js.Value, args []js.Value) interface{} {
		errGet = errors.New("failed to handle received data")
		done <- struct{}{}
		return nil
	})
	defer func() {
		for _, f := range []js.Func{onResponse, onFetchError, onBody, onBodyError} {
			f.Release()
		}
	}()

	js.Global().Call("fetch", path, map[string]interface{}{
		"credentials": "include",
	}).
		Call("then", onResponse, onFetchError).
		Call("then", onBody, onBodyError)

	<-done
	if errGet != nil {
		return nil, errGet
	}
	return b, nil
}

// fetchConfig returns the YAML document referred by the data-config
// attribute of the canvas. It returns nil if the attribute is not set.
func fetchConfig(canvas js.Value) ([]byte, error) {
	p := canvas.Call("getAttribute", "data-config")
	if p.IsNull() || p.IsUndefined() || p.String() == "" {
		return nil, nil
	}
	b, err := fetchGet(p.String())
	if err != nil {
		return nil, fmt.Errorf("%s: %w", p.String(), err)
	}
	return b, nil
}
