// Package web carries the page's static markup. The wasm binary and
// wasm_exec.js are build outputs and live next to these files on disk.
package web

import "embed"

//go:embed index.html style.css
var Files embed.FS

// IndexHTML returns the embedded page.
func IndexHTML() []byte {
	b, err := Files.ReadFile("index.html")
	if err != nil {
		panic(err) // embedded at build time
	}
	return b
}
