package view

import (
	"errors"
	"fmt"
)

var (
	ErrCanvasNotFound   = errors.New("canvas element not found in document")
	ErrWebGLUnsupported = errors.New("webgl2 context unavailable")
)

// ContextError indicates that the platform could not produce a usable window,
// canvas or graphics context. These are environment failures; callers are not
// expected to retry them.
type ContextError struct {
	Op  string
	Err error
}

func (e *ContextError) Error() string {
	return fmt.Sprintf("view: %s: %s", e.Op, e.Err)
}

func (e *ContextError) Unwrap() error {
	return e.Err
}

// The texture load pipeline stages an AssetError can originate from.
const (
	StageFetch  = "fetch"
	StageDecode = "decode"
	StageUpload = "upload"
)

// AssetError indicates that a texture load failed at a particular stage.
// Failed loads are not cached; a later load of the same identifier starts
// over.
type AssetError struct {
	Stage string
	Path  string
	Err   error
}

func (e *AssetError) Error() string {
	return fmt.Sprintf("view: could not %s texture '%s': %s", e.Stage, e.Path, e.Err)
}

func (e *AssetError) Unwrap() error {
	return e.Err
}
