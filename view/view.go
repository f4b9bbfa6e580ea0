// Package view implements a minimal cross-platform rendering harness: one
// API over a native OpenGL window and a browser WebGL2 canvas, covering
// context creation, texture loading and a per-frame clear-color animation.
//
// Open creates the platform window or canvas binding and returns a View;
// LoadTexture/BindTexture manage the texture cache; Run enters the platform
// drive loop, rendering one frame per tick until a close request arrives.
package view

import (
	"context"
	"sync"
	"time"

	"github.com/chewxy/math32"

	"github.com/achilleasa/vista/asset"
	"github.com/achilleasa/vista/asset/texture"
	"github.com/achilleasa/vista/log"
)

var logger = log.New("view")

// View owns an initialized graphics backend together with its drawable
// surface and tracks uploaded textures by their source identifier.
type View struct {
	backend Backend
	surface Surface

	width  uint32
	height uint32

	fetchTimeout time.Duration

	// mutex guarding the texture cache and the in-flight claim map.
	mu       sync.Mutex
	textures map[string]Texture
	loading  map[string]*textureClaim
}

// textureClaim serializes concurrent loads of the same identifier so that a
// texture is fetched and uploaded at most once per process.
type textureClaim struct {
	done chan struct{}
	err  error
}

// Create a View from an already initialized backend and surface. Most callers
// want Open instead, which also creates the platform window or canvas binding
// and the graphics context.
func New(backend Backend, surface Surface, opts Options) *View {
	opts.defaults()

	return &View{
		backend:      backend,
		surface:      surface,
		width:        opts.Width,
		height:       opts.Height,
		fetchTimeout: opts.FetchTimeout,
		textures:     make(map[string]Texture),
		loading:      make(map[string]*textureClaim),
	}
}

// LoadTexture fetches the image at path, decodes it and uploads it to the GPU,
// caching the resulting handle under path. An identifier that has already been
// loaded returns immediately without touching the network or the GPU.
// Concurrent calls for the same identifier share a single load and observe its
// outcome.
//
// The graphics context must be current on the calling goroutine.
func (v *View) LoadTexture(ctx context.Context, path string) error {
	v.mu.Lock()
	if _, loaded := v.textures[path]; loaded {
		v.mu.Unlock()
		return nil
	}
	if pending, inFlight := v.loading[path]; inFlight {
		v.mu.Unlock()
		select {
		case <-pending.done:
			return pending.err
		case <-ctx.Done():
			return ctx.Err()
		}
	}
	claim := &textureClaim{done: make(chan struct{})}
	v.loading[path] = claim
	v.mu.Unlock()

	claim.err = v.loadTexture(ctx, path)

	v.mu.Lock()
	delete(v.loading, path)
	v.mu.Unlock()
	close(claim.done)

	return claim.err
}

func (v *View) loadTexture(ctx context.Context, path string) error {
	if v.fetchTimeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, v.fetchTimeout)
		defer cancel()
	}

	start := time.Now()
	res, err := asset.NewResource(ctx, path, nil)
	if err != nil {
		return &AssetError{Stage: StageFetch, Path: path, Err: err}
	}
	defer res.Close()

	tex, err := texture.New(res)
	if err != nil {
		return &AssetError{Stage: StageDecode, Path: path, Err: err}
	}

	handle, err := v.backend.UploadTexture(int(tex.Width), int(tex.Height), tex.Data)
	if err != nil {
		return &AssetError{Stage: StageUpload, Path: path, Err: err}
	}

	v.mu.Lock()
	v.textures[path] = handle
	v.mu.Unlock()

	logger.Infof("loaded %dx%d texture from %s in %d ms", tex.Width, tex.Height, path, time.Since(start).Nanoseconds()/1000000)
	return nil
}

// BindTexture binds the cached texture for path as the active 2D texture
// target. An unknown identifier is a silent no-op; callers are responsible
// for having awaited LoadTexture first.
func (v *View) BindTexture(path string) {
	v.mu.Lock()
	handle, loaded := v.textures[path]
	v.mu.Unlock()

	if !loaded {
		logger.Debugf("bind skipped; no texture loaded for %s", path)
		return
	}
	v.backend.BindTexture(handle)
}

// RenderFrame clears the surface with a color derived from the elapsed time:
// the red and green channels oscillate with a 2π second period while blue
// stays constant. No geometry is drawn.
func (v *View) RenderFrame(elapsedMs float64) {
	t := float32(elapsedMs / 1000.0)
	v.backend.ClearColor(math32.Sin(t)*0.5+0.5, math32.Cos(t)*0.5+0.5, 0.5, 1.0)
	v.backend.Clear()
}

// Resize updates the stored dimensions and requests that the physical backing
// store follow. The graphics context itself is left untouched; the backend is
// expected to track surface size changes transparently.
func (v *View) Resize(width, height uint32) {
	v.width, v.height = width, height
	v.surface.Resize(int(width), int(height))
}

// Size returns the view dimensions in pixels.
func (v *View) Size() (width, height uint32) {
	return v.width, v.height
}

// Run drives the platform frame loop, rendering one frame per tick until the
// platform reports a close request. The tick callback borrows the View for
// the duration of each frame; no other goroutine may use it while Run blocks.
func (v *View) Run() error {
	return v.surface.Run(func(elapsedMs float64) TickAction {
		v.RenderFrame(elapsedMs)
		return Continue
	})
}
