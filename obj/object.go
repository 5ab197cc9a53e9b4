package obj

import "github.com/hajimehoshi/ebiten/v2"

// Updater advances an object by one tick.
type Updater interface {
	Update()
}

// Drawer renders an object onto the screen.
type Drawer interface {
	Draw(screen *ebiten.Image)
}

// Object is anything the game loop both updates and draws.
type Object interface {
	Updater
	Drawer
}

// Group runs a fixed list of objects in insertion order.
type Group struct {
	objects []Object
}

func NewGroup(objects ...Object) *Group {
	g := &Group{}
	for _, o := range objects {
		g.Add(o)
	}
	return g
}

func (g *Group) Add(o Object) {
	if o == nil {
		return
	}
	g.objects = append(g.objects, o)
}

func (g *Group) Len() int {
	return len(g.objects)
}

func (g *Group) Update() {
	for _, o := range g.objects {
		o.Update()
	}
}

func (g *Group) Draw(screen *ebiten.Image) {
	for _, o := range g.objects {
		o.Draw(screen)
	}
}
