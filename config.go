package isoline

import (
	"fmt"
	"io"

	"gopkg.in/yaml.v3"
)

// yamlOptions mirrors the §6 option keys using the wire names a config
// file would naturally use (snake_case), decoupled from the exported Go
// field names in Options.
type yamlOptions struct {
	Epsilon               *float64 `yaml:"epsilon"`
	OverlapTolerance       *float64 `yaml:"overlap_tolerance"`
	TileSize               *int     `yaml:"tile_size"`
	StripWidth             *int     `yaml:"strip_width"`
	ForcePolygonClosure    *bool    `yaml:"force_polygon_closure"`
	MaxForceCloseDistance  *float64 `yaml:"max_force_close_distance"`
	BucketSize             *float64 `yaml:"bucket_size"`
	GlueRings              *bool    `yaml:"glue_rings"`
	GlueMuFactor           *float64 `yaml:"glue_mu_factor"`
	TotalTileRows          *int     `yaml:"total_tile_rows"`
	TotalTileCols          *int     `yaml:"total_tile_cols"`
}

// LoadOptionsYAML decodes an Options value from r, per the §6 option
// keys. Fields absent from the document keep their DefaultOptions
// value; the result is normalized before being returned, so a partial
// or empty document yields valid Options.
func LoadOptionsYAML(r io.Reader) (Options, error) {
	var raw yamlOptions
	if err := yaml.NewDecoder(r).Decode(&raw); err != nil && err != io.EOF {
		return Options{}, fmt.Errorf("isoline: decode options: %w", err)
	}

	o := DefaultOptions()
	if raw.Epsilon != nil {
		o.Epsilon = *raw.Epsilon
	}
	if raw.OverlapTolerance != nil {
		o.OverlapTolerance = *raw.OverlapTolerance
	}
	if raw.TileSize != nil {
		o.TileSize = *raw.TileSize
	}
	if raw.StripWidth != nil {
		o.StripWidth = *raw.StripWidth
	}
	if raw.ForcePolygonClosure != nil {
		o.ForcePolygonClosure = *raw.ForcePolygonClosure
	}
	if raw.MaxForceCloseDistance != nil {
		o.MaxForceCloseDistance = *raw.MaxForceCloseDistance
	}
	if raw.BucketSize != nil {
		o.BucketSize = *raw.BucketSize
	}
	if raw.GlueRings != nil {
		o.GlueRings = *raw.GlueRings
	}
	if raw.GlueMuFactor != nil {
		o.GlueMuFactor = *raw.GlueMuFactor
	}
	if raw.TotalTileRows != nil {
		o.TotalTileRows = *raw.TotalTileRows
	}
	if raw.TotalTileCols != nil {
		o.TotalTileCols = *raw.TotalTileCols
	}

	if o.OverlapTolerance < o.Epsilon && raw.OverlapTolerance != nil && raw.Epsilon != nil {
		return Options{}, fmt.Errorf("isoline: overlap_tolerance < epsilon: %w", ErrInvalidOptions)
	}

	return o.normalize(), nil
}
