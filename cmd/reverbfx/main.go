//go:build js && wasm && !test

// Command reverbfx is the page controller compiled to WebAssembly. The page
// may set window.reverbfxConfig before loading it to override config keys.
package main

import (
	"encoding/json"
	"os"
	"syscall/js"

	"github.com/ingyamilmolinar/reverbfx/core/clock"
	"github.com/ingyamilmolinar/reverbfx/internal/audio"
	"github.com/ingyamilmolinar/reverbfx/internal/config"
	"github.com/ingyamilmolinar/reverbfx/internal/dom"
	"github.com/ingyamilmolinar/reverbfx/internal/log"
	"github.com/ingyamilmolinar/reverbfx/internal/ui"
)

func pageOverrides(logger *log.Logger) map[string]interface{} {
	v := js.Global().Get("reverbfxConfig")
	if v.IsUndefined() || v.IsNull() {
		return nil
	}
	raw := js.Global().Get("JSON").Call("stringify", v).String()
	var m map[string]interface{}
	if err := json.Unmarshal([]byte(raw), &m); err != nil {
		logger.Warnf("ignoring window.reverbfxConfig: %v", err)
		return nil
	}
	return m
}

func main() {
	logger := log.New(os.Stdout, log.LevelInfo)

	cfg, err := config.Load("", pageOverrides(logger))
	if err != nil {
		logger.Errorf("%v; falling back to defaults", err)
		cfg = config.Default()
	}
	logger.SetLevel(log.LevelFromString(cfg.LogLevel))

	dom.OnReady(func() {
		page := ui.New(ui.Deps{
			Doc:       dom.Global(),
			Config:    cfg,
			Scheduler: clock.Real{},
			Sound:     audio.Open(cfg.Tone, logger.With("audio")),
			Logger:    logger,
		})
		page.Start()
		page.ExportJS()
	})

	select {}
}
