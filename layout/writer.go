package layout

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
)

// MarshalRegions serializes the region list in the controller's wire format.
// Pretty mode uses two-space indentation; otherwise the output is compact.
func MarshalRegions(regions []Region, pretty bool) ([]byte, error) {
	if pretty {
		return json.MarshalIndent(regions, "", "  ")
	}
	return json.Marshal(regions)
}

// WriteRegions writes the serialized region list to w in one pass.
func WriteRegions(w io.Writer, regions []Region, pretty bool) error {
	data, err := MarshalRegions(regions, pretty)
	if err != nil {
		return fmt.Errorf("marshaling regions: %w", err)
	}
	if _, err := w.Write(data); err != nil {
		return fmt.Errorf("writing regions: %w", err)
	}
	return nil
}

// WriteRegionsFile writes the region list to path. The file is only created
// after marshaling succeeds, so a failed run never leaves partial output.
func WriteRegionsFile(path string, regions []Region, pretty bool) error {
	data, err := MarshalRegions(regions, pretty)
	if err != nil {
		return fmt.Errorf("marshaling regions: %w", err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("writing regions file: %w", err)
	}
	return nil
}
