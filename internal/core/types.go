package core

import "sort"

// Size describes the dimensions of a simulation grid.
type Size struct {
	W int
	H int
}

// Sim defines the minimal contract a cellular automaton must implement.
type Sim interface {
	Name() string
	Size() Size
	Reset(seed int64)
	Step()
	Cells() []uint8
}

// Halter is implemented by sims that can reach a terminal state. Drivers must
// stop calling Step once Halted reports true.
type Halter interface {
	Halted() bool
}

// Editor is implemented by sims that accept direct cell toggles from a user.
type Editor interface {
	Toggle(x, y int) error
}

// Failer is implemented by sims that keep the last error hit while resetting
// or stepping. Drivers surface it to the user.
type Failer interface {
	Err() error
}

// Factory constructs a Sim using an optional configuration map. It fails when
// the map holds a malformed or invalid setting.
type Factory func(cfg map[string]string) (Sim, error)

var sims = map[string]Factory{}

// Register adds a simulation factory under the provided name.
func Register(name string, f Factory) {
	if name == "" || f == nil {
		return
	}
	sims[name] = f
}

// Sims exposes the registry of available simulation factories.
func Sims() map[string]Factory {
	return sims
}

// SimNames returns the registered simulation names in sorted order.
func SimNames() []string {
	names := make([]string, 0, len(sims))
	for name := range sims {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
