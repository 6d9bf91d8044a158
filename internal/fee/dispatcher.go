package fee

import "fmt"

// Dispatcher maps platform ids to calculators. Platforms whose rate table
// failed to load stay recognised but unavailable.
type Dispatcher struct {
	calculators map[PlatformID]*Calculator
	failures    map[PlatformID]error
}

func NewDispatcher(calculators []*Calculator, failures map[PlatformID]error) *Dispatcher {
	d := &Dispatcher{
		calculators: make(map[PlatformID]*Calculator, len(calculators)),
		failures:    make(map[PlatformID]error, len(failures)),
	}
	for _, c := range calculators {
		d.calculators[c.Platform()] = c
	}
	for id, err := range failures {
		d.failures[id] = err
		delete(d.calculators, id)
	}
	return d
}

func (d *Dispatcher) Dispatch(platformID string) (*Calculator, error) {
	id, err := ParsePlatformID(platformID)
	if err != nil {
		return nil, err
	}
	if cause, failed := d.failures[id]; failed {
		return nil, fmt.Errorf("%w: %s: %w", ErrPlatformUnavailable, id, cause)
	}
	c, ok := d.calculators[id]
	if !ok {
		return nil, fmt.Errorf("%w: %s not loaded", ErrPlatformUnavailable, id)
	}
	return c, nil
}

// Available lists loaded platforms in registry order.
func (d *Dispatcher) Available() []*Calculator {
	var out []*Calculator
	for _, desc := range registry {
		if c, ok := d.calculators[desc.ID]; ok {
			out = append(out, c)
		}
	}
	return out
}

func (d *Dispatcher) Failures() map[PlatformID]error {
	out := make(map[PlatformID]error, len(d.failures))
	for id, err := range d.failures {
		out[id] = err
	}
	return out
}
