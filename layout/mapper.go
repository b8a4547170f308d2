package layout

import (
	"errors"
	"fmt"
	"math"
)

// ErrNoLeds is reported when the parsed grid contains no LED indices.
var ErrNoLeds = errors.New("no LED positions found in grid")

// Options carries the mapping parameters shared by all strategies.
type Options struct {
	Mode          Mode
	Group         int
	Depth         float64 // perimeter strip thickness, fraction of screen
	EdgeBias      float64 // ambient blend between position and edge placement
	BoundaryAware bool
}

// DefaultOptions returns the parameter defaults the CLI exposes.
func DefaultOptions() Options {
	return Options{
		Mode:     ModeAmbient,
		Depth:    0.05,
		EdgeBias: 0.5,
	}
}

// Validate checks the scalar parameters' ranges. Range violations are fatal
// before any parsing or mapping runs.
func (o Options) Validate() error {
	if o.Depth < 0 || o.Depth > 1 {
		return fmt.Errorf("depth %.4g out of range [0, 1]", o.Depth)
	}
	if o.EdgeBias < 0 || o.EdgeBias > 1 {
		return fmt.Errorf("edge-bias %.4g out of range [0, 1]", o.EdgeBias)
	}
	return nil
}

// Mapper converts a parsed layout into one sampling region per LED, ordered
// by ascending LED index. The tally is non-nil only for strategies that
// classify edges (perimeter); it is diagnostic and not part of the output.
type Mapper interface {
	Map(l *Layout) ([]Region, *EdgeTally)
}

// NewMapper selects the strategy for the configured mode.
func NewMapper(opts Options) (Mapper, error) {
	if err := opts.Validate(); err != nil {
		return nil, err
	}
	switch opts.Mode {
	case ModeWall:
		return &WallMapper{Group: opts.Group, BoundaryAware: opts.BoundaryAware}, nil
	case ModePerimeter:
		return &PerimeterMapper{Group: opts.Group, Depth: opts.Depth, BoundaryAware: opts.BoundaryAware}, nil
	case ModeAmbient:
		return &AmbientMapper{Group: opts.Group, EdgeBias: opts.EdgeBias, BoundaryAware: opts.BoundaryAware}, nil
	}
	return nil, fmt.Errorf("unknown mode %q", opts.Mode)
}

// round4 rounds to four decimal places, the precision of the wire format.
func round4(v float64) float64 {
	return math.Round(v*10000) / 10000
}

// clamp01 clamps a normalized coordinate to [0, 1].
func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
