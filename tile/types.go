package tile

import "github.com/katalvlaran/isoline/grid"

// Coord identifies a tile by its integer (row, col) tile coordinates
// (ti, tj), per §3.
type Coord struct {
	TI, TJ int
}

// Options configures a Builder, per §6.
//
// Fields:
//
//	Levels        - contour levels to extract.
//	TileSize      - T, the nominal tile side (§6 tile_size, default 64).
//	StripWidth    - W, the boundary-strip width (§6 strip_width, default 2).
//	Epsilon       - equality/interpolation tolerance (§6 epsilon).
//	BucketSize    - spatial-index bucket size (§6 bucket_size).
//	TotalTileRows - total tile-grid extent, rows (see below).
//	TotalTileCols - total tile-grid extent, columns (see below).
//
// TotalTileRows/TotalTileCols tell AddTile which tiles sit on the true
// domain boundary, so grid.PreprocessEdges pole-normalizes/antimeridian-
// wraps only a tile's genuine outer edge rather than a merely tile-local
// one whose neighbor simply hasn't arrived yet (ti==0/tj==0 already give
// the top/left edge unambiguously; the bottom/right edge needs the total
// extent to tell "last tile" from "neighbor not arrived yet"). Both
// default to 1, and a zero value normalizes to 1: the domain is assumed to be a
// single tile row/column, matching the common single-AddTile-call case.
// Callers that split a domain into more than one tile row or column must
// set these for correct edge behavior.
type Options struct {
	Levels        []float64
	TileSize      int
	StripWidth    int
	Epsilon       float64
	BucketSize    float64
	TotalTileRows int
	TotalTileCols int
}

// DefaultOptions returns Options with TileSize=64, StripWidth=2,
// Epsilon=1e-4, BucketSize=1, TotalTileRows=1, TotalTileCols=1, and no
// levels configured (callers must set Levels).
func DefaultOptions() Options {
	return Options{
		TileSize:      64,
		StripWidth:    2,
		Epsilon:       1e-4,
		BucketSize:    1,
		TotalTileRows: 1,
		TotalTileCols: 1,
	}
}

func (o Options) normalize() Options {
	if o.TileSize < 2 {
		o.TileSize = 64
	}
	if o.StripWidth < 1 {
		o.StripWidth = 2
	}
	if o.Epsilon <= 0 {
		o.Epsilon = 1e-4
	}
	if o.BucketSize <= 0 {
		o.BucketSize = 1
	}
	if o.TotalTileRows < 1 {
		o.TotalTileRows = 1
	}
	if o.TotalTileCols < 1 {
		o.TotalTileCols = 1
	}
	return o
}

// edges indexes the four axis-aligned boundary strips published by a
// tile for its neighbors: top/bottom are W rows wide (full tile width),
// left/right are W columns wide (full tile height).
type edges struct {
	top, bottom [][]float64 // W rows each, nil if not yet published
	left, right [][]float64 // W cols each (stored row-major), nil if not yet published
}

// corners indexes the four diagonal WxW blocks a tile publishes for its
// diagonal neighbors, needed so the expanded neighborhood of §4.5 step 4
// has data at every one of its eight surrounding blocks, not just the
// four edges.
type corners struct {
	topLeft, topRight, bottomLeft, bottomRight [][]float64
}

// haloStore holds, for each tile coordinate, the strips and corner
// blocks published *for* that tile by its already-arrived neighbors.
type haloStore struct {
	edges   map[Coord]*edges
	corners map[Coord]*corners
}

func newHaloStore() *haloStore {
	return &haloStore{
		edges:   make(map[Coord]*edges),
		corners: make(map[Coord]*corners),
	}
}

func (h *haloStore) edgesFor(c Coord) *edges {
	e, ok := h.edges[c]
	if !ok {
		e = &edges{}
		h.edges[c] = e
	}
	return e
}

func (h *haloStore) cornersFor(c Coord) *corners {
	cc, ok := h.corners[c]
	if !ok {
		cc = &corners{}
		h.corners[c] = cc
	}
	return cc
}

// tileRecord is the stored state for one arrived tile.
type tileRecord struct {
	data *grid.Grid
}
