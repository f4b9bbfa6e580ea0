package cmd

import (
	"github.com/achilleasa/vista/log"
	"github.com/urfave/cli"
)

var logger = log.New("vista")

func setupLogging(ctx *cli.Context) {
	if ctx.GlobalBool("v") {
		log.SetLevel(log.Info)
	}

	if ctx.GlobalBool("vv") {
		log.SetLevel(log.Debug)
	}
}
