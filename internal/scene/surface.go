package scene

// Surface is a drawable render target sized to the host viewport.
type Surface interface {
	Resize(width, height int)
	Size() (width, height int)
	Render(s *Scene, cam *Camera)
	Dispose() error
}

// SurfaceFactory allocates a render target. It returns an error wrapping
// ErrEnvironmentUnavailable when no surface can be created.
type SurfaceFactory func(width, height int) (Surface, error)
