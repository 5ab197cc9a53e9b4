package common

import (
	"errors"
	"fmt"
	"image"
	"image/color"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/milk9111/mouseball/prefabs"
	"golang.org/x/image/colornames"
	"golang.org/x/image/draw"
)

var ErrInvalidSettings = errors.New("settings: invalid")

// Settings is the immutable configuration shared by every component. It is
// built once at startup and passed by value.
type Settings struct {
	Width   int
	Height  int
	WindowX int
	WindowY int
	Title   string
	TPS     int

	// InnerRect bounds the ball and hides the cursor while it is inside.
	InnerRect image.Rectangle

	ImageDir   string
	BallImage  string
	BallSize   int
	ScaleStep  int
	MinSize    int
	Filter     string
	Background color.Color
}

var filters = map[string]draw.Interpolator{
	"nearest":         draw.NearestNeighbor,
	"approx-bilinear": draw.ApproxBiLinear,
	"bilinear":        draw.BiLinear,
	"catmull-rom":     draw.CatmullRom,
}

// NewSettings validates spec and resolves relative paths against baseDir.
func NewSettings(spec prefabs.SettingsSpec, baseDir string) (Settings, error) {
	w, h := spec.Window.Width, spec.Window.Height
	if w <= 0 || h <= 0 {
		return Settings{}, fmt.Errorf("%w: window size %dx%d", ErrInvalidSettings, w, h)
	}
	if spec.Margin < 0 || 2*spec.Margin >= w || 2*spec.Margin >= h {
		return Settings{}, fmt.Errorf("%w: margin %d leaves no inner area in %dx%d", ErrInvalidSettings, spec.Margin, w, h)
	}
	if spec.TPS <= 0 {
		return Settings{}, fmt.Errorf("%w: tps %d", ErrInvalidSettings, spec.TPS)
	}

	inner := Inset(image.Rect(0, 0, w, h), spec.Margin)
	ball := spec.Ball
	if ball.Image == "" {
		return Settings{}, fmt.Errorf("%w: empty ball image", ErrInvalidSettings)
	}
	if ball.Step <= 0 {
		return Settings{}, fmt.Errorf("%w: scale step %d", ErrInvalidSettings, ball.Step)
	}
	if ball.MinSize <= 0 || ball.Size < ball.MinSize || ball.Size > inner.Dx() {
		return Settings{}, fmt.Errorf("%w: ball size %d outside [%d, %d]", ErrInvalidSettings, ball.Size, ball.MinSize, inner.Dx())
	}

	filter := ball.Filter
	if filter == "" {
		filter = "nearest"
	}
	if _, ok := filters[filter]; !ok {
		return Settings{}, fmt.Errorf("%w: unknown filter %q", ErrInvalidSettings, filter)
	}

	bg, err := parseColor(spec.Background)
	if err != nil {
		return Settings{}, fmt.Errorf("%w: background: %v", ErrInvalidSettings, err)
	}

	imageDir := spec.ImagesDir
	if !filepath.IsAbs(imageDir) {
		imageDir = filepath.Join(baseDir, imageDir)
	}

	title := spec.Window.Title
	if title == "" {
		title = "Maus"
	}

	return Settings{
		Width:      w,
		Height:     h,
		WindowX:    spec.Window.X,
		WindowY:    spec.Window.Y,
		Title:      title,
		TPS:        spec.TPS,
		InnerRect:  inner,
		ImageDir:   imageDir,
		BallImage:  ball.Image,
		BallSize:   ball.Size,
		ScaleStep:  ball.Step,
		MinSize:    ball.MinSize,
		Filter:     filter,
		Background: bg,
	}, nil
}

// LoadSettings reads the settings spec at path (the embedded prefab when empty)
// and builds Settings from it.
func LoadSettings(path, baseDir string) (Settings, error) {
	spec, err := prefabs.LoadSettingsSpec(path)
	if err != nil {
		return Settings{}, err
	}
	return NewSettings(spec, baseDir)
}

// Dim returns the window size.
func (s Settings) Dim() (int, int) {
	return s.Width, s.Height
}

// Scaler returns the resampling filter used to scale the ball.
func (s Settings) Scaler() draw.Scaler {
	if f, ok := filters[s.Filter]; ok {
		return f
	}
	return draw.NearestNeighbor
}

func parseColor(s string) (color.Color, error) {
	s = strings.TrimSpace(strings.ToLower(s))
	if s == "" {
		return color.Black, nil
	}
	if c, ok := colornames.Map[s]; ok {
		return c, nil
	}
	hex, ok := strings.CutPrefix(s, "#")
	if !ok || len(hex) != 6 {
		return nil, fmt.Errorf("unknown colour %q", s)
	}
	v, err := strconv.ParseUint(hex, 16, 32)
	if err != nil {
		return nil, fmt.Errorf("unknown colour %q", s)
	}
	return color.RGBA{R: uint8(v >> 16), G: uint8(v >> 8), B: uint8(v), A: 0xff}, nil
}
