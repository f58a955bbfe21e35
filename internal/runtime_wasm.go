//go:build wasm

package internal

// wasm is single-threaded, one runtime is enough
var runtime = NewRuntime()

func GetRuntime() *Runtime {
	return runtime
}
