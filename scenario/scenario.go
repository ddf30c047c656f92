// Package scenario compiles tengo touch scripts into fixed-rate input frames
// for replaying gestures against a simulated room.
package scenario

import (
	"context"
	"errors"
	"fmt"
	"math"

	"github.com/d5/tengo/v2"
	"github.com/d5/tengo/v2/stdlib"

	"github.com/milk9111/arplace/input"
	"github.com/milk9111/arplace/prefabs"
)

// FrameDT is the duration of one scenario frame in seconds.
const FrameDT = 1.0 / 60

// MaxFrames caps how long a script may run (ten minutes of frames).
const MaxFrames = 60 * 60 * 10

// Pointer IDs used by scripts.
const (
	PrimaryID   = 0
	SecondaryID = 1
)

var (
	ErrPointerDown = errors.New("pointer already down")
	ErrPointerUp   = errors.New("pointer not down")
	ErrTooLong     = errors.New("scenario exceeds frame limit")
)

// Frame is the set of pointers held during one frame.
type Frame struct {
	Touches []input.RawTouch
}

// Scenario is a compiled script.
type Scenario struct {
	Name   string
	Frames []Frame
}

// Options configures the globals a script sees.
type Options struct {
	Width, Height float64
}

// Duration returns the scenario length in seconds.
func (s *Scenario) Duration() float64 {
	if s == nil {
		return 0
	}
	return float64(len(s.Frames)) * FrameDT
}

// Load compiles a named script from the prefabs scripts directory.
func Load(ctx context.Context, name string, opts Options) (*Scenario, error) {
	src, err := prefabs.LoadScript(name)
	if err != nil {
		return nil, fmt.Errorf("scenario: load %s: %w", name, err)
	}
	return Compile(ctx, name, src, opts)
}

// Compile runs src and records the frames its built-ins produce.
func Compile(ctx context.Context, name string, src []byte, opts Options) (*Scenario, error) {
	b := &builder{}

	script := tengo.NewScript(src)
	script.SetImports(stdlib.GetModuleMap("math", "fmt"))
	for fname, fn := range b.builtins() {
		if err := script.Add(fname, &tengo.UserFunction{Name: fname, Value: fn}); err != nil {
			return nil, fmt.Errorf("scenario: %s: %w", name, err)
		}
	}
	_ = script.Add("screen_w", opts.Width)
	_ = script.Add("screen_h", opts.Height)

	compiled, err := script.Compile()
	if err != nil {
		return nil, fmt.Errorf("scenario: compile %s: %w", name, err)
	}
	if err := compiled.RunContext(ctx); err != nil {
		return nil, fmt.Errorf("scenario: run %s: %w", name, err)
	}
	if b.pointers[PrimaryID] != nil || b.pointers[SecondaryID] != nil {
		b.release()
	}
	return &Scenario{Name: name, Frames: b.frames}, nil
}

// Player replays a scenario as an input.Source, one frame per Poll.
type Player struct {
	frames []Frame
	next   int
}

func NewPlayer(s *Scenario) *Player {
	if s == nil {
		return &Player{}
	}
	return &Player{frames: s.Frames}
}

func (p *Player) Poll() []input.RawTouch {
	if p == nil || p.next >= len(p.frames) {
		return nil
	}
	f := p.frames[p.next]
	p.next++
	return f.Touches
}

// Done reports whether every frame has been played.
func (p *Player) Done() bool {
	return p == nil || p.next >= len(p.frames)
}

// Remaining returns the number of unplayed frames.
func (p *Player) Remaining() int {
	if p == nil {
		return 0
	}
	return len(p.frames) - p.next
}

type pointer struct {
	x, y float64
}

type builder struct {
	frames   []Frame
	pointers [2]*pointer
}

func frameCount(seconds float64) int {
	n := int(math.Round(seconds / FrameDT))
	if n < 1 {
		n = 1
	}
	return n
}

func (b *builder) emit() error {
	if len(b.frames) >= MaxFrames {
		return ErrTooLong
	}
	var f Frame
	for id, p := range b.pointers {
		if p != nil {
			f.Touches = append(f.Touches, input.RawTouch{ID: id, X: p.x, Y: p.y})
		}
	}
	b.frames = append(b.frames, f)
	return nil
}

func (b *builder) down(id int, x, y float64) error {
	if b.pointers[id] != nil {
		return ErrPointerDown
	}
	b.pointers[id] = &pointer{x: x, y: y}
	return b.emit()
}

func (b *builder) stay(seconds float64) error {
	for i := 0; i < frameCount(seconds); i++ {
		if err := b.emit(); err != nil {
			return err
		}
	}
	return nil
}

func (b *builder) move(id int, x, y, seconds float64) error {
	p := b.pointers[id]
	if p == nil {
		return ErrPointerUp
	}
	n := frameCount(seconds)
	x0, y0 := p.x, p.y
	for i := 1; i <= n; i++ {
		t := float64(i) / float64(n)
		p.x = x0 + (x-x0)*t
		p.y = y0 + (y-y0)*t
		if err := b.emit(); err != nil {
			return err
		}
	}
	return nil
}

func (b *builder) up(id int) error {
	if b.pointers[id] == nil {
		return ErrPointerUp
	}
	b.pointers[id] = nil
	return b.emit()
}

func (b *builder) release() {
	b.pointers = [2]*pointer{}
	_ = b.emit()
}

func (b *builder) pinch(cx, cy, from, to, seconds float64) error {
	if b.pointers[PrimaryID] != nil || b.pointers[SecondaryID] != nil {
		return ErrPointerDown
	}
	b.pointers[PrimaryID] = &pointer{x: cx - from/2, y: cy}
	b.pointers[SecondaryID] = &pointer{x: cx + from/2, y: cy}
	if err := b.emit(); err != nil {
		return err
	}
	n := frameCount(seconds)
	for i := 1; i <= n; i++ {
		spread := from + (to-from)*float64(i)/float64(n)
		b.pointers[PrimaryID].x = cx - spread/2
		b.pointers[SecondaryID].x = cx + spread/2
		if err := b.emit(); err != nil {
			return err
		}
	}
	b.release()
	return nil
}
