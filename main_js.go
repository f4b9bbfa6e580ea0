//go:build js && wasm

package main

import (
	"context"

	"github.com/achilleasa/vista/log"
	"github.com/achilleasa/vista/view"
)

var logger = log.New("vista")

// The image fetched into the demo texture on startup.
const demoTexture = "https://m.media-amazon.com/images/G/01/credit/CBCC/acq-marketing/maple/Q123-1103_US_CBCC_ACQ_Maple_Thumbnail_126x80._CB613265021_.png"

// Browsers have no CLI; the wasm build binds the canvas named "canvas" and
// starts the animation frame chain as soon as the module loads.
func main() {
	log.SetLevel(log.Info)

	v, err := view.Open(view.Options{Width: 800, Height: 600})
	if err != nil {
		logger.Errorf("%s", err)
		return
	}

	if err = v.LoadTexture(context.Background(), demoTexture); err != nil {
		logger.Errorf("%s", err)
		return
	}
	v.BindTexture(demoTexture)

	if err = v.Run(); err != nil {
		logger.Errorf("%s", err)
	}
}
