package layout

// Mode selects one of the three region-mapping strategies.
type Mode string

const (
	ModeWall      Mode = "wall"
	ModePerimeter Mode = "perimeter"
	ModeAmbient   Mode = "ambient"
)

// ParseMode validates a mode string from the CLI or config file.
func ParseMode(s string) (Mode, bool) {
	switch Mode(s) {
	case ModeWall, ModePerimeter, ModeAmbient:
		return Mode(s), true
	}
	return "", false
}

// Coordinate is a zero-based (row, col) cell in the source grid.
type Coordinate struct {
	Row int
	Col int
}

// Layout is the parsed sparse grid: LED index -> cell, plus the set of
// boundary-marked cells. Built once by the parser and never mutated.
type Layout struct {
	Leds       map[int]Coordinate
	Boundaries map[Coordinate]struct{}

	// Duplicates lists LED indices that appeared more than once in the
	// source grid (last occurrence wins). Informational only.
	Duplicates []int
}

// BoundingBox is the inclusive extent of a coordinate set.
// The zero value stands in for an empty set.
type BoundingBox struct {
	MinRow int
	MaxRow int
	MinCol int
	MaxCol int
}

// Width returns the number of columns the box spans, never less than 1 so
// callers can divide by it without guarding.
func (b BoundingBox) Width() int {
	w := b.MaxCol - b.MinCol + 1
	if w < 1 {
		return 1
	}
	return w
}

// Height returns the number of rows the box spans, never less than 1.
func (b BoundingBox) Height() int {
	h := b.MaxRow - b.MinRow + 1
	if h < 1 {
		return 1
	}
	return h
}

// Region is one LED's sampling rectangle in normalized screen space.
// Field order matches the HyperHDR layout wire format (hmax, hmin, vmax,
// vmin, group); all four bounds are clamped to [0,1] and rounded to four
// decimal places.
type Region struct {
	HMax  float64 `json:"hmax"`
	HMin  float64 `json:"hmin"`
	VMax  float64 `json:"vmax"`
	VMin  float64 `json:"vmin"`
	Group int     `json:"group"`
}

// Edge identifies which screen edge an LED is nearest to.
type Edge int

const (
	EdgeTop Edge = iota
	EdgeBottom
	EdgeLeft
	EdgeRight
	EdgeInterior
)

// String returns the lowercase edge name used in diagnostics and exports.
func (e Edge) String() string {
	switch e {
	case EdgeTop:
		return "top"
	case EdgeBottom:
		return "bottom"
	case EdgeLeft:
		return "left"
	case EdgeRight:
		return "right"
	default:
		return "interior"
	}
}

// Config is the optional YAML configuration file. It carries defaults for
// the mapping parameters and the MQTT settings used when publishing layouts.
// Numeric fields are pointers so an explicit zero in the file is
// distinguishable from the field being absent.
type Config struct {
	Mode          string   `yaml:"mode,omitempty" json:"mode,omitempty"`
	BoundaryAware bool     `yaml:"boundaryAware,omitempty" json:"boundaryAware,omitempty"`
	Group         *int     `yaml:"group,omitempty" json:"group,omitempty"`
	Depth         *float64 `yaml:"depth,omitempty" json:"depth,omitempty"`
	EdgeBias      *float64 `yaml:"edgeBias,omitempty" json:"edgeBias,omitempty"`
	Pretty        bool     `yaml:"pretty,omitempty" json:"pretty,omitempty"`

	MQTT MQTTConfig `yaml:"mqtt,omitempty" json:"mqtt,omitempty"`
}

// MQTTConfig holds MQTT connection settings.
type MQTTConfig struct {
	Broker        string `yaml:"broker" json:"broker"`
	PublishPrefix string `yaml:"publishPrefix" json:"publishPrefix"`
	ClientID      string `yaml:"clientId" json:"clientId"`
	Username      string `yaml:"username,omitempty" json:"username,omitempty"`
	Password      string `yaml:"password,omitempty" json:"password,omitempty"`
}

// EdgeTally counts how many LEDs the perimeter mapper assigned to each edge.
// Returned alongside the regions so callers decide whether to print it.
type EdgeTally struct {
	Top      int
	Bottom   int
	Left     int
	Right    int
	Interior int
}

// Add increments the count for the given edge.
func (t *EdgeTally) Add(e Edge) {
	switch e {
	case EdgeTop:
		t.Top++
	case EdgeBottom:
		t.Bottom++
	case EdgeLeft:
		t.Left++
	case EdgeRight:
		t.Right++
	default:
		t.Interior++
	}
}
