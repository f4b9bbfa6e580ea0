package cmd

import (
	"context"
	"runtime"

	"github.com/urfave/cli"

	"github.com/achilleasa/vista/view"
)

// Open a window, optionally load and bind a texture, and drive the frame
// loop until the window is closed.
func RunView(cliCtx *cli.Context) error {
	setupLogging(cliCtx)

	// The GL context binds to the OS thread that created it.
	runtime.LockOSThread()

	v, err := view.Open(view.Options{
		Width:        uint32(cliCtx.Int("width")),
		Height:       uint32(cliCtx.Int("height")),
		Title:        cliCtx.String("title"),
		FetchTimeout: cliCtx.Duration("fetch-timeout"),
	})
	if err != nil {
		return err
	}

	if texturePath := cliCtx.String("texture"); texturePath != "" {
		logger.Noticef("loading texture from %s", texturePath)
		if err = v.LoadTexture(context.Background(), texturePath); err != nil {
			return err
		}
		v.BindTexture(texturePath)
	}

	logger.Notice("entering frame loop; close the window to exit")
	return v.Run()
}
