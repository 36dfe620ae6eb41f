package memhost

import (
	"context"
	"fmt"
	"math"
	"sync"

	"github.com/rerapony/Nuke-KeenTools-sub003/host"
)

// Source is an upstream producer serving a fixed geometry list.
// ValidateErr and GeometryErr simulate upstream failures.
type Source struct {
	List        *List
	ValidateErr error
	GeometryErr error
}

var _ host.Input = (*Source)(nil)

// NewSource returns a Source serving deep copies of meshes.
func NewSource(meshes ...*Mesh) *Source {
	return &Source{List: NewList(meshes...)}
}

// Validate implements host.Input.
func (s *Source) Validate(ctx context.Context) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	return s.ValidateErr
}

// Geometry implements host.Input.
func (s *Source) Geometry(ctx context.Context) (host.GeometryList, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if s.GeometryErr != nil {
		return nil, s.GeometryErr
	}
	if s.List == nil {
		return &List{}, nil
	}

	return s.List, nil
}

// AppendHash implements host.Input.
func (s *Source) AppendHash(h host.Hash) {
	if s.List == nil {
		h.AppendInt(0)
		return
	}
	s.List.AppendHash(h)
}

// Slots is a fixed set of input slots; a nil entry is disconnected.
type Slots []host.Input

var _ host.Inputs = Slots(nil)

// Len implements host.Inputs.
func (s Slots) Len() int { return len(s) }

// Input implements host.Inputs.
func (s Slots) Input(slot int) host.Input {
	if slot < 0 || slot >= len(s) {
		return nil
	}

	return s[slot]
}

// SlotsOf connects the given sources in order. A nil *Source stays disconnected.
func SlotsOf(sources ...*Source) Slots {
	out := make(Slots, len(sources))
	for i, s := range sources {
		if s != nil {
			out[i] = s
		}
	}

	return out
}

type knobKind int

const (
	intKnob knobKind = iota
	floatKnob
	boolKnob
)

type knob struct {
	kind knobKind
	lk   sync.Locker
	ip   *int
	ilo  int
	ihi  int
	fp   *float64
	flo  float64
	fhi  float64
	bp   *bool
}

// KnobTable records knob bindings and plays the host UI: Set writes a
// clamped value straight into the bound field.
type KnobTable struct {
	mu    sync.Mutex
	knobs map[string]*knob
	order []string
	guard sync.Locker
}

var _ host.KnobRegistrar = (*KnobTable)(nil)

// NewKnobTable returns an empty table.
func NewKnobTable() *KnobTable { return &KnobTable{knobs: make(map[string]*knob)} }

// Guard implements host.KnobRegistrar. Knobs registered after Guard are
// written under l.
func (t *KnobTable) Guard(l sync.Locker) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.guard = l
}

func (t *KnobTable) add(name string, k *knob) {
	t.mu.Lock()
	defer t.mu.Unlock()
	k.lk = t.guard
	if _, ok := t.knobs[name]; !ok {
		t.order = append(t.order, name)
	}
	t.knobs[name] = k
}

// Int implements host.KnobRegistrar.
func (t *KnobTable) Int(name string, p *int, lo, hi int) {
	t.add(name, &knob{kind: intKnob, ip: p, ilo: lo, ihi: hi})
}

// Float implements host.KnobRegistrar.
func (t *KnobTable) Float(name string, p *float64, lo, hi float64) {
	t.add(name, &knob{kind: floatKnob, fp: p, flo: lo, fhi: hi})
}

// Bool implements host.KnobRegistrar.
func (t *KnobTable) Bool(name string, p *bool) {
	t.add(name, &knob{kind: boolKnob, bp: p})
}

// Names returns the registered knob names in registration order.
func (t *KnobTable) Names() []string {
	t.mu.Lock()
	defer t.mu.Unlock()

	return append([]string(nil), t.order...)
}

// Set writes v into the field bound to name. Ints accept int, floats accept
// float64 or int, bools accept bool. Numeric values are clamped to the
// registered range; NaN is rejected.
func (t *KnobTable) Set(name string, v any) error {
	t.mu.Lock()
	k, ok := t.knobs[name]
	t.mu.Unlock()
	if !ok {
		return fmt.Errorf("Set(%q): %w", name, ErrUnknownKnob)
	}
	if k.lk != nil {
		k.lk.Lock()
		defer k.lk.Unlock()
	}

	switch k.kind {
	case intKnob:
		iv, ok := v.(int)
		if !ok {
			return fmt.Errorf("Set(%q, %T): %w", name, v, ErrKnobType)
		}
		*k.ip = min(max(iv, k.ilo), k.ihi)
	case floatKnob:
		var fv float64
		switch x := v.(type) {
		case float64:
			fv = x
		case int:
			fv = float64(x)
		default:
			return fmt.Errorf("Set(%q, %T): %w", name, v, ErrKnobType)
		}
		if math.IsNaN(fv) {
			return fmt.Errorf("Set(%q, NaN): %w", name, ErrKnobType)
		}
		*k.fp = math.Min(math.Max(fv, k.flo), k.fhi)
	case boolKnob:
		bv, ok := v.(bool)
		if !ok {
			return fmt.Errorf("Set(%q, %T): %w", name, v, ErrKnobType)
		}
		*k.bp = bv
	}

	return nil
}

// Range returns the registered bounds of a numeric knob.
func (t *KnobTable) Range(name string) (lo, hi float64, ok bool) {
	t.mu.Lock()
	defer t.mu.Unlock()
	k, found := t.knobs[name]
	if !found {
		return 0, 0, false
	}
	switch k.kind {
	case intKnob:
		return float64(k.ilo), float64(k.ihi), true
	case floatKnob:
		return k.flo, k.fhi, true
	}

	return 0, 0, false
}

// ErrorSink collects messages sent to the host error channel.
type ErrorSink struct {
	mu   sync.Mutex
	msgs []string
}

var _ host.ErrorReporter = (*ErrorSink)(nil)

// Error implements host.ErrorReporter.
func (s *ErrorSink) Error(msg string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.msgs = append(s.msgs, msg)
}

// Messages returns the reported messages in order.
func (s *ErrorSink) Messages() []string {
	s.mu.Lock()
	defer s.mu.Unlock()

	return append([]string(nil), s.msgs...)
}

// Last returns the most recent message, or "" when none.
func (s *ErrorSink) Last() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	if len(s.msgs) == 0 {
		return ""
	}

	return s.msgs[len(s.msgs)-1]
}

// Reset drops all messages.
func (s *ErrorSink) Reset() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.msgs = nil
}

