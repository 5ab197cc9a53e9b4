package obj

import (
	"image"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// Action is a discrete command produced from one tick of input.
type Action int

const (
	ActionNone Action = iota
	ActionQuit
	ActionRotateLeft
	ActionRotateRight
	ActionScaleUp
	ActionScaleDown
)

func (a Action) String() string {
	switch a {
	case ActionQuit:
		return "quit"
	case ActionRotateLeft:
		return "rotate-left"
	case ActionRotateRight:
		return "rotate-right"
	case ActionScaleUp:
		return "scale-up"
	case ActionScaleDown:
		return "scale-down"
	default:
		return "none"
	}
}

// Frame is the input gathered for one tick.
type Frame struct {
	Cursor  image.Point
	Actions []Action
}

// Source produces one Frame per tick.
type Source interface {
	Poll() Frame
}

// Snapshot is the raw device state read for one tick.
type Snapshot struct {
	Cursor      image.Point
	Closing     bool
	Escape      bool
	LeftClick   bool
	MiddleClick bool
	RightClick  bool
	WheelY      float64
}

// Input polls ebiten for the mouse and keyboard state the demo reacts to.
type Input struct {
	// wheel holds scroll offset that has not yet added up to a full notch.
	wheel float64
}

func NewInput() *Input {
	return &Input{}
}

// Poll reads the devices and translates them to actions.
func (i *Input) Poll() Frame {
	x, y := ebiten.CursorPosition()
	_, wy := ebiten.Wheel()
	return i.Translate(Snapshot{
		Cursor:      image.Pt(x, y),
		Closing:     ebiten.IsWindowBeingClosed(),
		Escape:      inpututil.IsKeyJustPressed(ebiten.KeyEscape),
		LeftClick:   inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft),
		MiddleClick: inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonMiddle),
		RightClick:  inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonRight),
		WheelY:      wy,
	})
}

// Translate maps a snapshot to a frame. Scroll offsets accumulate across
// calls and each whole notch yields one scale action; a change of direction
// drops the leftover of the previous direction.
func (i *Input) Translate(s Snapshot) Frame {
	f := Frame{Cursor: s.Cursor}

	if s.Closing || s.Escape {
		f.Actions = append(f.Actions, ActionQuit)
	}
	if s.LeftClick {
		f.Actions = append(f.Actions, ActionRotateLeft)
	}
	if s.MiddleClick {
		f.Actions = append(f.Actions, ActionQuit)
	}
	if s.RightClick {
		f.Actions = append(f.Actions, ActionRotateRight)
	}

	if (s.WheelY > 0 && i.wheel < 0) || (s.WheelY < 0 && i.wheel > 0) {
		i.wheel = 0
	}
	i.wheel += s.WheelY
	for i.wheel >= 1 {
		f.Actions = append(f.Actions, ActionScaleUp)
		i.wheel--
	}
	for i.wheel <= -1 {
		f.Actions = append(f.Actions, ActionScaleDown)
		i.wheel++
	}

	return f
}
