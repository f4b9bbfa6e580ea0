package cmd

import (
	"bytes"
	"strings"

	"github.com/olekukonko/tablewriter"
	"github.com/urfave/cli"

	"github.com/achilleasa/vista/asset/texture"
)

// List the image formats the texture loader can decode.
func ListFormats(ctx *cli.Context) error {
	setupLogging(ctx)

	var buf bytes.Buffer
	table := tablewriter.NewWriter(&buf)
	table.SetAutoFormatHeaders(false)
	table.SetAutoWrapText(false)
	table.SetHeader([]string{"Format", "Extensions", "Decoder"})
	for _, format := range texture.SupportedFormats() {
		table.Append([]string{format.Name, strings.Join(format.Extensions, " "), format.Decoder})
	}
	table.Render()

	logger.Noticef("supported texture formats\n%s", buf.String())
	return nil
}
