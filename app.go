package main

import (
	"fmt"
	"log"

	"github.com/kwv/ledgrid/layout"
)

// App encapsulates one conversion run and its dependencies
type App struct {
	InputFile  string
	OutputFile string
	Options    layout.Options
	Pretty     bool

	ConfigFile  string
	PreviewFile string
	GeoJSONFile string
	MqttMode    bool

	// SetFlags names the CLI flags the user set explicitly; those override
	// config file values.
	SetFlags map[string]bool

	// Publish is swappable for tests; defaults to layout.PublishRun.
	Publish func(layout.MQTTConfig, []layout.Region, layout.LayoutSummary) error

	config *layout.Config
}

// NewApp creates a new App instance with defaults
func NewApp() *App {
	return &App{
		Options:  layout.DefaultOptions(),
		SetFlags: make(map[string]bool),
		Publish:  layout.PublishRun,
	}
}

// AppOptions carries the parsed CLI surface into the App
type AppOptions struct {
	InputFile     string
	OutputFile    string
	Mode          string
	BoundaryAware bool
	Group         int
	Depth         float64
	EdgeBias      float64
	Pretty        bool
	ConfigFile    string
	PreviewFile   string
	GeoJSONFile   string
	MqttMode      bool
	SetFlags      map[string]bool
}

// ApplyOptions applies CLI options to the App instance
func (a *App) ApplyOptions(opts AppOptions) error {
	a.InputFile = opts.InputFile
	a.OutputFile = opts.OutputFile
	a.ConfigFile = opts.ConfigFile
	a.PreviewFile = opts.PreviewFile
	a.GeoJSONFile = opts.GeoJSONFile
	a.MqttMode = opts.MqttMode
	a.Pretty = opts.Pretty
	if opts.SetFlags != nil {
		a.SetFlags = opts.SetFlags
	}

	mode, ok := layout.ParseMode(opts.Mode)
	if !ok {
		return fmt.Errorf("invalid mode %q (must be wall, perimeter, or ambient)", opts.Mode)
	}

	a.Options = layout.Options{
		Mode:          mode,
		Group:         opts.Group,
		Depth:         opts.Depth,
		EdgeBias:      opts.EdgeBias,
		BoundaryAware: opts.BoundaryAware,
	}
	return nil
}

// resolveOptions overlays config file defaults under explicitly-set CLI
// flags. Flags the user typed always win; config fills the rest.
func (a *App) resolveOptions() error {
	if a.ConfigFile == "" {
		return nil
	}

	config, err := layout.LoadConfig(a.ConfigFile)
	if err != nil {
		return err
	}
	a.config = config

	cli := a.Options
	pretty := a.Pretty

	resolved := layout.DefaultOptions()
	config.ApplyOptions(&resolved)
	if config.Pretty {
		a.Pretty = true
	}

	if a.SetFlags["mode"] {
		resolved.Mode = cli.Mode
	}
	if a.SetFlags["boundary-aware"] {
		resolved.BoundaryAware = cli.BoundaryAware
	}
	if a.SetFlags["group"] {
		resolved.Group = cli.Group
	}
	if a.SetFlags["depth"] {
		resolved.Depth = cli.Depth
	}
	if a.SetFlags["edge-bias"] {
		resolved.EdgeBias = cli.EdgeBias
	}
	if a.SetFlags["pretty"] {
		a.Pretty = pretty
	}

	a.Options = resolved
	return nil
}

// Run executes the full conversion: parse, map, write, then the optional
// preview/export/publish steps.
func (a *App) Run() error {
	if err := a.resolveOptions(); err != nil {
		return err
	}

	// Parameter ranges are fatal before any input is read.
	if err := a.Options.Validate(); err != nil {
		return err
	}

	fmt.Printf("Reading LED positions from %s...\n", a.InputFile)
	l, err := layout.ParseGridFile(a.InputFile)
	if err != nil {
		return err
	}

	for _, idx := range l.Duplicates {
		log.Printf("Warning: LED index %d appears more than once; keeping the last position", idx)
	}

	if len(l.Leds) == 0 {
		return layout.ErrNoLeds
	}

	fmt.Printf("Found %d LEDs\n", len(l.Leds))
	if len(l.Boundaries) > 0 {
		fmt.Printf("Found %d boundary markers\n", len(l.Boundaries))
	}

	bounds := l.LedBounds()
	fmt.Printf("LED grid dimensions: %d cols x %d rows\n", bounds.Width(), bounds.Height())

	if a.Options.BoundaryAware && len(l.Boundaries) > 0 {
		bb := l.BoundaryBounds()
		fmt.Println("Using boundary markers to define screen area")
		fmt.Printf("  Boundary area: rows %d-%d, cols %d-%d\n",
			bb.MinRow, bb.MaxRow, bb.MinCol, bb.MaxCol)
	}

	fmt.Printf("Converting to controller layout (mode: %s)...\n", a.Options.Mode)
	mapper, err := layout.NewMapper(a.Options)
	if err != nil {
		return err
	}

	regions, tally := mapper.Map(l)
	if tally != nil {
		fmt.Printf("Edge distribution: Top=%d, Bottom=%d, Left=%d, Right=%d, Interior=%d\n",
			tally.Top, tally.Bottom, tally.Left, tally.Right, tally.Interior)
		if tally.Interior > 0 {
			log.Printf("Warning: %d LEDs classified as interior; these may not work well in perimeter mode", tally.Interior)
		}
	}

	fmt.Printf("Writing to %s...\n", a.OutputFile)
	if err := layout.WriteRegionsFile(a.OutputFile, regions, a.Pretty); err != nil {
		return err
	}
	fmt.Printf("Converted %d LEDs\n", len(regions))

	if a.PreviewFile != "" {
		if err := layout.RenderPreviewFile(a.PreviewFile, l, regions); err != nil {
			return fmt.Errorf("rendering preview: %w", err)
		}
		fmt.Printf("Created preview: %s\n", a.PreviewFile)
	}

	if a.GeoJSONFile != "" {
		if err := layout.WriteGeoJSONFile(a.GeoJSONFile, l, regions); err != nil {
			return err
		}
		fmt.Printf("Created GeoJSON export: %s\n", a.GeoJSONFile)
	}

	if a.MqttMode {
		if a.config == nil || a.config.MQTT.Broker == "" {
			return fmt.Errorf("--mqtt requires a config file with an mqtt broker")
		}
		summary := layout.LayoutSummary{
			Mode:          string(a.Options.Mode),
			LedCount:      len(l.Leds),
			BoundaryCount: len(l.Boundaries),
			BoundaryAware: a.Options.BoundaryAware,
			Group:         a.Options.Group,
		}
		if err := a.Publish(a.config.MQTT, regions, summary); err != nil {
			return err
		}
		fmt.Println("Published layout to MQTT")
	}

	return nil
}
