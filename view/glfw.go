//go:build !js

package view

import (
	"errors"
	"time"

	"github.com/go-gl/gl/v3.3-core/gl"
	"github.com/go-gl/glfw/v3.3/glfw"
)

// Open constructs an OS window with an OpenGL 3.3 core profile context, makes
// the context current and loads the GL function pointers. The returned View
// is ready for texture uploads and frame rendering.
//
// The calling goroutine must be locked to its OS thread before Open and must
// be the one that later calls LoadTexture and Run; the context is made
// current against it exactly once.
func Open(opts Options) (*View, error) {
	opts.defaults()

	if err := glfw.Init(); err != nil {
		return nil, &ContextError{Op: "initialize glfw", Err: err}
	}

	glfw.WindowHint(glfw.Resizable, glfw.True)
	glfw.WindowHint(glfw.ContextVersionMajor, 3)
	glfw.WindowHint(glfw.ContextVersionMinor, 3)
	glfw.WindowHint(glfw.OpenGLProfile, glfw.OpenGLCoreProfile)
	glfw.WindowHint(glfw.OpenGLForwardCompatible, glfw.True)

	window, err := glfw.CreateWindow(int(opts.Width), int(opts.Height), opts.Title, nil, nil)
	if err != nil {
		return nil, &ContextError{Op: "create window", Err: err}
	}
	window.MakeContextCurrent()

	if err = gl.Init(); err != nil {
		return nil, &ContextError{Op: "load gl function pointers", Err: err}
	}
	logger.Infof("created %dx%d window; %s", opts.Width, opts.Height, gl.GoStr(gl.GetString(gl.VERSION)))

	backend := &glBackend{}
	backend.Viewport(0, 0, int(opts.Width), int(opts.Height))

	return New(backend, &glfwSurface{window: window}, opts), nil
}

// glBackend issues calls through the go-gl generated bindings.
type glBackend struct{}

type glTexture uint32

func (glTexture) texture() {}

func (*glBackend) UploadTexture(width, height int, rgba []byte) (Texture, error) {
	var tex uint32
	gl.GenTextures(1, &tex)
	if tex == 0 {
		return nil, errors.New("could not create texture object")
	}

	gl.BindTexture(gl.TEXTURE_2D, tex)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MIN_FILTER, gl.LINEAR)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MAG_FILTER, gl.LINEAR)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_WRAP_S, gl.CLAMP_TO_EDGE)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_WRAP_T, gl.CLAMP_TO_EDGE)
	gl.TexImage2D(gl.TEXTURE_2D, 0, gl.RGBA, int32(width), int32(height), 0, gl.RGBA, gl.UNSIGNED_BYTE, gl.Ptr(rgba))

	return glTexture(tex), nil
}

func (*glBackend) BindTexture(tex Texture) {
	gl.BindTexture(gl.TEXTURE_2D, uint32(tex.(glTexture)))
}

func (*glBackend) ClearColor(r, g, b, a float32) {
	gl.ClearColor(r, g, b, a)
}

func (*glBackend) Clear() {
	gl.Clear(gl.COLOR_BUFFER_BIT)
}

func (*glBackend) Viewport(x, y, width, height int) {
	gl.Viewport(int32(x), int32(y), int32(width), int32(height))
}

// glfwSurface wraps the OS window backing the GL context.
type glfwSurface struct {
	window *glfw.Window
}

func (s *glfwSurface) Size() (int, int) {
	return s.window.GetSize()
}

func (s *glfwSurface) Resize(width, height int) {
	s.window.SetSize(width, height)
}

// Run pumps the OS event loop with a non-blocking poll policy, invoking tick
// once per iteration and swapping buffers after each rendered frame. Returns
// when the window receives a close request or tick asks to stop.
func (s *glfwSurface) Run(tick TickFunc) error {
	start := time.Now()
	for !s.window.ShouldClose() {
		glfw.PollEvents()

		elapsed := float64(time.Since(start)) / float64(time.Millisecond)
		if tick(elapsed) == Stop {
			s.window.SetShouldClose(true)
			continue
		}

		s.window.SwapBuffers()
	}
	return nil
}
