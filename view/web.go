//go:build js && wasm

package view

import (
	"errors"
	"syscall/js"
)

// Open locates the canvas element named by opts.CanvasID in the document,
// sets its pixel dimensions and wraps its WebGL2 context. The browser owns
// context currency on this target; there is no explicit binding step.
func Open(opts Options) (*View, error) {
	opts.defaults()

	document := js.Global().Get("document")
	canvas := document.Call("getElementById", opts.CanvasID)
	if canvas.IsNull() || canvas.IsUndefined() {
		return nil, &ContextError{Op: "locate canvas '" + opts.CanvasID + "'", Err: ErrCanvasNotFound}
	}
	canvas.Set("width", int(opts.Width))
	canvas.Set("height", int(opts.Height))

	glCtx := canvas.Call("getContext", "webgl2")
	if glCtx.IsNull() {
		return nil, &ContextError{Op: "acquire webgl2 context", Err: ErrWebGLUnsupported}
	}
	logger.Infof("bound %dx%d canvas '%s' with a webgl2 context", opts.Width, opts.Height, opts.CanvasID)

	backend := newWebGLBackend(glCtx)
	backend.Viewport(0, 0, int(opts.Width), int(opts.Height))

	return New(backend, &canvasSurface{canvas: canvas}, opts), nil
}

// webGLBackend forwards Backend calls to a WebGL2RenderingContext. The GL
// enum values are properties of the context object; they are snapshotted once
// to avoid a js property lookup per call.
type webGLBackend struct {
	gl js.Value

	texture2D        int
	textureMinFilter int
	textureMagFilter int
	textureWrapS     int
	textureWrapT     int
	linear           int
	clampToEdge      int
	rgba             int
	unsignedByte     int
	colorBufferBit   int
}

func newWebGLBackend(gl js.Value) *webGLBackend {
	return &webGLBackend{
		gl:               gl,
		texture2D:        gl.Get("TEXTURE_2D").Int(),
		textureMinFilter: gl.Get("TEXTURE_MIN_FILTER").Int(),
		textureMagFilter: gl.Get("TEXTURE_MAG_FILTER").Int(),
		textureWrapS:     gl.Get("TEXTURE_WRAP_S").Int(),
		textureWrapT:     gl.Get("TEXTURE_WRAP_T").Int(),
		linear:           gl.Get("LINEAR").Int(),
		clampToEdge:      gl.Get("CLAMP_TO_EDGE").Int(),
		rgba:             gl.Get("RGBA").Int(),
		unsignedByte:     gl.Get("UNSIGNED_BYTE").Int(),
		colorBufferBit:   gl.Get("COLOR_BUFFER_BIT").Int(),
	}
}

type webTexture struct {
	value js.Value
}

func (webTexture) texture() {}

func (b *webGLBackend) UploadTexture(width, height int, rgba []byte) (Texture, error) {
	tex := b.gl.Call("createTexture")
	if tex.IsNull() {
		return nil, errors.New("createTexture returned null")
	}

	b.gl.Call("bindTexture", b.texture2D, tex)
	b.gl.Call("texParameteri", b.texture2D, b.textureMinFilter, b.linear)
	b.gl.Call("texParameteri", b.texture2D, b.textureMagFilter, b.linear)
	b.gl.Call("texParameteri", b.texture2D, b.textureWrapS, b.clampToEdge)
	b.gl.Call("texParameteri", b.texture2D, b.textureWrapT, b.clampToEdge)

	pixels := js.Global().Get("Uint8Array").New(len(rgba))
	js.CopyBytesToJS(pixels, rgba)
	b.gl.Call("texImage2D", b.texture2D, 0, b.rgba, width, height, 0, b.rgba, b.unsignedByte, pixels)

	return webTexture{value: tex}, nil
}

func (b *webGLBackend) BindTexture(tex Texture) {
	b.gl.Call("bindTexture", b.texture2D, tex.(webTexture).value)
}

func (b *webGLBackend) ClearColor(r, g, bl, a float32) {
	b.gl.Call("clearColor", r, g, bl, a)
}

func (b *webGLBackend) Clear() {
	b.gl.Call("clear", b.colorBufferBit)
}

func (b *webGLBackend) Viewport(x, y, width, height int) {
	b.gl.Call("viewport", x, y, width, height)
}

// canvasSurface wraps the canvas element backing the WebGL2 context.
type canvasSurface struct {
	canvas js.Value
}

func (s *canvasSurface) Size() (int, int) {
	return s.canvas.Get("width").Int(), s.canvas.Get("height").Int()
}

func (s *canvasSurface) Resize(width, height int) {
	s.canvas.Set("width", width)
	s.canvas.Set("height", height)
}

// Run registers a self-rescheduling animation frame callback timed by
// performance.now() and blocks until tick asks to stop. Dropping the
// registration is the only form of cancellation; the page unloading tears the
// chain down implicitly.
func (s *canvasSurface) Run(tick TickFunc) error {
	perf := js.Global().Get("performance")
	done := make(chan struct{})

	var frame js.Func
	frame = js.FuncOf(func(js.Value, []js.Value) any {
		if tick(perf.Call("now").Float()) == Stop {
			frame.Release()
			close(done)
			return nil
		}
		js.Global().Call("requestAnimationFrame", frame)
		return nil
	})
	js.Global().Call("requestAnimationFrame", frame)

	<-done
	return nil
}
