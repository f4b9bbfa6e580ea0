package view

// Backend is the function-pointer-table abstraction over the graphics API.
// Exactly one implementation is linked per target: the desktop OpenGL
// bindings or the browser's WebGL2 context. Implementations assume the
// context is current on the calling goroutine; ordering is owned by the
// caller and is not re-checked per call.
type Backend interface {
	// Create a 2D texture with linear min/mag filtering and clamp-to-edge
	// wrapping on both axes and upload the given RGBA8 pixel data to it.
	UploadTexture(width, height int, rgba []byte) (Texture, error)

	// Bind tex as the active 2D texture target.
	BindTexture(tex Texture)

	// Set the color the next Clear writes.
	ClearColor(r, g, b, a float32)

	// Clear the color buffer.
	Clear()

	// Set the drawable region in pixels.
	Viewport(x, y, width, height int)
}

// Texture is an opaque handle to a GPU texture owned by a Backend.
type Texture interface {
	texture()
}

// Surface couples the drawable target a Backend renders into with the
// platform mechanism that schedules frame callbacks.
type Surface interface {
	// Report the backing store dimensions in pixels.
	Size() (width, height int)

	// Request that the backing store adopt the given pixel dimensions.
	Resize(width, height int)

	// Repeatedly invoke tick with the elapsed time in milliseconds until
	// tick returns Stop or the platform signals a close request. Cancellation
	// is the driver ceasing to invoke tick; the callback observes nothing.
	Run(tick TickFunc) error
}

// TickAction tells a Surface drive loop whether to keep scheduling frames.
type TickAction int

const (
	Continue TickAction = iota
	Stop
)

// TickFunc renders one frame for the given elapsed time in milliseconds.
type TickFunc func(elapsedMs float64) TickAction
