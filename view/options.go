package view

import "time"

const (
	defaultWidth        = 800
	defaultHeight       = 600
	defaultTitle        = "vista"
	defaultCanvasID     = "canvas"
	defaultFetchTimeout = 30 * time.Second
)

type Options struct {
	// Surface dims in pixels.
	Width  uint32
	Height uint32

	// Window title. Native targets only.
	Title string

	// ID of the canvas element to bind. Browser target only.
	CanvasID string

	// Upper bound for a single texture fetch+decode+upload. Zero selects the
	// 30s default; a negative value disables the bound.
	FetchTimeout time.Duration
}

func (o *Options) defaults() {
	if o.Width == 0 {
		o.Width = defaultWidth
	}
	if o.Height == 0 {
		o.Height = defaultHeight
	}
	if o.Title == "" {
		o.Title = defaultTitle
	}
	if o.CanvasID == "" {
		o.CanvasID = defaultCanvasID
	}
	if o.FetchTimeout == 0 {
		o.FetchTimeout = defaultFetchTimeout
	}
}
