//go:build js && wasm

// Package jsdom binds the dom, history and storage contracts to the browser
// through syscall/js. It only builds for GOOS=js GOARCH=wasm.
package jsdom
