// Package stub is an in-memory implementation of the wlcore interfaces,
// used by internal/tree, internal/txn, and internal/seat tests, and as the
// headless fallback toolkit when the real backend reports zero outputs
// (spec §6 "headless fallback output").
package stub

import (
	"image"
	"image/color"
	"sync"
	"time"

	"github.com/disintegration/imaging"

	"github.com/bwhmather/hayward/internal/wlcore"
)

// Output is a fixed-geometry fake display.
type Output struct {
	name string
	rect wlcore.Rect
}

func NewOutput(name string, rect wlcore.Rect) *Output {
	return &Output{name: name, rect: rect}
}

func (o *Output) Name() string         { return o.name }
func (o *Output) Geometry() wlcore.Rect { return o.rect }

// Buffer is a reference-counted placeholder snapshot.
type Buffer struct {
	mu   sync.Mutex
	refs int
	img  *image.NRGBA
}

func (b *Buffer) Lock()   { b.mu.Lock(); b.refs++; b.mu.Unlock() }
func (b *Buffer) Unlock() { b.mu.Lock(); b.refs--; b.mu.Unlock() }

// Surface is a fake client surface with no real rendering; Configure
// records the requested rectangle, runs the OnCommit callbacks and returns
// a fresh serial. It never acks a transaction itself, so tests drive the
// await step explicitly (an ack or a timeout).
type Surface struct {
	rect              wlcore.Rect
	integerPositioned bool
	acceptsTabletV2   bool

	nextSerial uint32

	onCommit        []func()
	onDestroy       []func()
	onNewSubsurface []func(wlcore.Surface)
	onMap           []func()
	onUnmap         []func()

	// pointerButtons/pointerAxis record delivered pointer events for tests
	// to assert against; the stub has no client to actually forward to.
	pointerButtons []PointerButtonEvent
	pointerAxis    []PointerAxisEvent
}

// PointerButtonEvent is one recorded SendPointerButton call.
type PointerButtonEvent struct {
	Button  uint32
	Pressed bool
}

// PointerAxisEvent is one recorded SendPointerAxis call.
type PointerAxisEvent struct {
	Horiz, Vert float64
}

func NewSurface(rect wlcore.Rect, integerPositioned bool) *Surface {
	return &Surface{rect: rect, integerPositioned: integerPositioned}
}

func (s *Surface) Geometry() wlcore.Rect        { return s.rect }
func (s *Surface) IntegerPositioned() bool      { return s.integerPositioned }
func (s *Surface) AcceptsTabletV2() bool        { return s.acceptsTabletV2 }

func (s *Surface) SurfaceAt(sx, sy float64) (wlcore.Surface, float64, float64, bool) {
	if sx < 0 || sy < 0 || sx > s.rect.W || sy > s.rect.H {
		return nil, 0, 0, false
	}
	return s, sx, sy, true
}

func (s *Surface) SendEnter(wlcore.Output)      {}
func (s *Surface) SendLeave(wlcore.Output)      {}
func (s *Surface) SendFrameDone(time.Time)      {}

func (s *Surface) SendPointerButton(button uint32, pressed bool) {
	s.pointerButtons = append(s.pointerButtons, PointerButtonEvent{Button: button, Pressed: pressed})
}

func (s *Surface) SendPointerAxis(horiz, vert float64) {
	s.pointerAxis = append(s.pointerAxis, PointerAxisEvent{Horiz: horiz, Vert: vert})
}

// PointerButtonEvents returns every button event delivered to this surface.
func (s *Surface) PointerButtonEvents() []PointerButtonEvent { return s.pointerButtons }

// PointerAxisEvents returns every axis event delivered to this surface.
func (s *Surface) PointerAxisEvents() []PointerAxisEvent { return s.pointerAxis }

func (s *Surface) Configure(r wlcore.Rect) uint32 {
	s.rect = r
	s.nextSerial++
	for _, f := range s.onCommit {
		f()
	}
	return s.nextSerial
}

// SaveBuffers renders a flat placeholder image the size of the surface's
// rectangle, standing in for a real compositor's GPU buffer snapshot.
func (s *Surface) SaveBuffers() wlcore.Buffer {
	w, h := int(s.rect.W), int(s.rect.H)
	if w <= 0 || h <= 0 {
		return nil
	}
	img := imaging.New(w, h, color.NRGBA{R: 40, G: 40, B: 48, A: 255})
	buf := &Buffer{img: img}
	buf.Lock()
	return buf
}

func (s *Surface) OnCommit(f func())               { s.onCommit = append(s.onCommit, f) }
func (s *Surface) OnDestroy(f func())               { s.onDestroy = append(s.onDestroy, f) }
func (s *Surface) OnNewSubsurface(f func(wlcore.Surface)) {
	s.onNewSubsurface = append(s.onNewSubsurface, f)
}
func (s *Surface) OnMap(f func())   { s.onMap = append(s.onMap, f) }
func (s *Surface) OnUnmap(f func()) { s.onUnmap = append(s.onUnmap, f) }

// Map fires every registered map callback, simulating the client's surface
// becoming visible after SpawnToplevel hands it to the shell.
func (s *Surface) Map() {
	for _, f := range s.onMap {
		f()
	}
}

// Destroy fires every registered destroy callback, simulating the client
// disconnecting.
func (s *Surface) Destroy() {
	for _, f := range s.onDestroy {
		f()
	}
}
