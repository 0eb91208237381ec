package render

import (
	"fmt"
	"landmark-flight/internal/logging"
	"landmark-flight/internal/scene"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

var logger = logging.New("render")

// Surface is an offscreen ebiten image the run draws into. The host copies
// Image onto the screen each frame.
type Surface struct {
	image    *ebiten.Image
	width    int
	height   int
	items    int
	disposed bool
}

var _ scene.Surface = (*Surface)(nil)

func NewSurface(width, height int) (*Surface, error) {
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("surface %dx%d: %w", width, height, scene.ErrEnvironmentUnavailable)
	}
	s := &Surface{
		image:  ebiten.NewImage(width, height),
		width:  width,
		height: height,
	}
	logger.Debugf("surface allocated %dx%d", width, height)
	return s, nil
}

// Factory adapts NewSurface to scene.SurfaceFactory.
func Factory(width, height int) (scene.Surface, error) {
	s, err := NewSurface(width, height)
	if err != nil {
		return nil, err
	}
	return s, nil
}

func (s *Surface) Image() *ebiten.Image {
	if s.disposed {
		return nil
	}
	return s.image
}

func (s *Surface) Size() (int, int) {
	return s.width, s.height
}

// Resize reallocates the backing image when the viewport changes.
func (s *Surface) Resize(width, height int) {
	if s.disposed || width <= 0 || height <= 0 {
		return
	}
	if width == s.width && height == s.height {
		return
	}
	s.image.Deallocate()
	s.image = ebiten.NewImage(width, height)
	s.width, s.height = width, height
	logger.Debugf("surface resized to %dx%d", width, height)
}

func (s *Surface) Render(sc *scene.Scene, cam *scene.Camera) {
	if s.disposed || sc == nil || sc.Disposed() {
		return
	}
	s.image.Fill(sc.Background)

	items := Project(sc, cam, s.width, s.height)
	for _, it := range items {
		switch it.Kind {
		case LineItem:
			vector.StrokeLine(s.image, it.X0, it.Y0, it.X1, it.Y1, it.Width, it.Color, true)
		case DiscItem:
			vector.DrawFilledCircle(s.image, it.X0, it.Y0, it.Radius, it.Color, true)
		case LabelItem:
			ebitenutil.DebugPrintAt(s.image, it.Text, int(it.X0)-len(it.Text)*3, int(it.Y0)-8)
		}
	}
	s.items = len(items)
}

// Items reports how many primitives the last Render drew.
func (s *Surface) Items() int {
	return s.items
}

func (s *Surface) Dispose() error {
	if s.disposed {
		return scene.ErrDisposed
	}
	s.disposed = true
	s.image.Deallocate()
	s.image = nil
	return nil
}
