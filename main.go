package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
)

// Version is set at build time via -ldflags
var Version = "dev"

// appRunner lets tests drive flag parsing against a mock application.
type appRunner interface {
	ApplyOptions(opts AppOptions) error
	Run() error
}

func run(args []string, out io.Writer, app appRunner) error {
	fs := flag.NewFlagSet("ledgrid", flag.ContinueOnError)
	fs.SetOutput(out)

	mode := fs.String("mode", "ambient", "Mapping mode: wall (full grid), perimeter (edges), or ambient (hybrid)")
	boundaryAware := fs.Bool("boundary-aware", false, "Use boundary markers (x/X) to define the screen area")
	group := fs.Int("group", 0, "LED group number")
	depth := fs.Float64("depth", 0.05, "Perimeter depth: how far LEDs sample into the screen (0.0-1.0)")
	edgeBias := fs.Float64("edge-bias", 0.5, "Ambient mode edge vs position bias (0.0=wall, 1.0=edge)")
	pretty := fs.Bool("pretty", false, "Pretty-print JSON output")
	configFile := fs.String("config", "", "Optional YAML config file with defaults and MQTT settings")
	previewFile := fs.String("render", "", "Render a layout preview to this file (.svg or .png)")
	geojsonFile := fs.String("geojson", "", "Export sampling regions as GeoJSON to this file")
	mqttMode := fs.Bool("mqtt", false, "Publish the generated layout to MQTT (requires -config)")
	showVersion := fs.Bool("version", false, "Print version and exit")

	fs.Usage = func() {
		fmt.Fprintf(out, "Usage: ledgrid [flags] input.csv output.json\n\n")
		fmt.Fprintln(out, "Converts a spreadsheet-exported LED grid into an ambient-lighting sampling layout.")
		fmt.Fprintln(out, "Number cells are LED indices; cells containing x or X mark the monitor area.")
		fmt.Fprintln(out, "\nFlags:")
		fs.PrintDefaults()
	}

	if err := fs.Parse(args); err != nil {
		return err
	}

	if *showVersion {
		fmt.Fprintf(out, "ledgrid version: %s\n", Version)
		return nil
	}

	if fs.NArg() != 2 {
		fs.Usage()
		return fmt.Errorf("expected input.csv and output.json arguments, got %d", fs.NArg())
	}

	setFlags := make(map[string]bool)
	fs.Visit(func(f *flag.Flag) {
		setFlags[f.Name] = true
	})

	err := app.ApplyOptions(AppOptions{
		InputFile:     fs.Arg(0),
		OutputFile:    fs.Arg(1),
		Mode:          *mode,
		BoundaryAware: *boundaryAware,
		Group:         *group,
		Depth:         *depth,
		EdgeBias:      *edgeBias,
		Pretty:        *pretty,
		ConfigFile:    *configFile,
		PreviewFile:   *previewFile,
		GeoJSONFile:   *geojsonFile,
		MqttMode:      *mqttMode,
		SetFlags:      setFlags,
	})
	if err != nil {
		return err
	}

	return app.Run()
}

func main() {
	if err := run(os.Args[1:], os.Stdout, NewApp()); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return
		}
		log.Fatalf("Error: %v", err)
	}
}
