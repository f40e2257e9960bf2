package cloth

import "github.com/hajimehoshi/ebiten/v2"

const maxPointers = 10 // pointer 0 = mouse, 1-9 = touch

// pointerState tracks one pointer between ticks.
type pointerState struct {
	down  bool
	lastX float64
	lastY float64
}

// Input turns mouse and touch pointers into cut-path operations on a Sim.
// Only one pointer draws at a time: the first to go down owns the path until
// it is released or leaves the surface.
type Input struct {
	pointers     [maxPointers]pointerState
	touchMap     [maxPointers]ebiten.TouchID
	touchUsed    [maxPointers]bool
	prevTouchIDs []ebiten.TouchID

	active      int // pointer owning the path, -1 when none
	injectQueue []syntheticPointerEvent
}

// NewInput returns an Input with no active pointer.
func NewInput() *Input {
	return &Input{active: -1}
}

// Active reports whether a pointer is currently drawing a path.
func (in *Input) Active() bool {
	return in.active >= 0
}

// Update reads pointer state for this tick and forwards path events to sim.
// Injected events take precedence over real mouse input: one is consumed per
// tick.
func (in *Input) Update(sim *Sim, set Settings) {
	if in.processInjectedInput(sim, set) {
		return
	}
	in.processMousePointer(sim, set)
	in.processTouchPointers(sim, set)
}

// processMousePointer handles the mouse (pointer 0). Leaving the window
// finalizes the path as a release would.
func (in *Input) processMousePointer(sim *Sim, set Settings) {
	mx, my := ebiten.CursorPosition()
	x, y := float64(mx), float64(my)
	pressed := ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft)
	inside := Rect{Width: set.Width, Height: set.Height}.Contains(x, y)
	in.processPointer(sim, set, 0, x, y, pressed, inside)
}

// processTouchPointers handles touch input (pointers 1-9).
func (in *Input) processTouchPointers(sim *Sim, set Settings) {
	touchIDs := ebiten.AppendTouchIDs(in.prevTouchIDs[:0])
	in.prevTouchIDs = touchIDs

	var activeSlots [maxPointers]bool
	for _, tid := range touchIDs {
		slot := in.touchSlot(tid)
		if slot < 0 {
			continue
		}
		activeSlots[slot] = true

		tx, ty := ebiten.TouchPosition(tid)
		in.processPointer(sim, set, slot, float64(tx), float64(ty), true, true)
	}

	// Lifted fingers release their slot.
	for i := 1; i < maxPointers; i++ {
		if in.touchUsed[i] && !activeSlots[i] {
			ps := &in.pointers[i]
			if ps.down {
				in.processPointer(sim, set, i, ps.lastX, ps.lastY, false, true)
			}
			in.touchUsed[i] = false
			in.touchMap[i] = 0
		}
	}
}

// touchSlot maps an ebiten.TouchID to a pointer slot (1-9).
// Returns the existing slot or allocates a new one. Returns -1 if full.
func (in *Input) touchSlot(tid ebiten.TouchID) int {
	for i := 1; i < maxPointers; i++ {
		if in.touchUsed[i] && in.touchMap[i] == tid {
			return i
		}
	}
	for i := 1; i < maxPointers; i++ {
		if !in.touchUsed[i] {
			in.touchUsed[i] = true
			in.touchMap[i] = tid
			return i
		}
	}
	return -1
}

// processPointer runs the path state machine for a single pointer.
//
//	press          → BeginPath (if no other pointer owns the path)
//	move while down → ExtendPath (only when the position changed)
//	release        → FinalizePath
//	leave surface  → FinalizePath; further moves are ignored until release
func (in *Input) processPointer(sim *Sim, set Settings, id int, x, y float64, pressed, inside bool) {
	ps := &in.pointers[id]
	wasDown := ps.down
	moved := x != ps.lastX || y != ps.lastY
	ps.down = pressed
	ps.lastX, ps.lastY = x, y

	switch {
	case pressed && !wasDown:
		if in.active < 0 && inside {
			in.active = id
			sim.BeginPath(Vec2{X: x, Y: y})
		}

	case pressed && wasDown:
		if in.active != id {
			return
		}
		if !inside {
			in.active = -1
			sim.FinalizePath(set)
			return
		}
		if moved {
			sim.ExtendPath(Vec2{X: x, Y: y})
		}

	case !pressed && wasDown:
		if in.active == id {
			in.active = -1
			sim.FinalizePath(set)
		}
	}
}
