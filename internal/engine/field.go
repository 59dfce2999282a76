package engine

import (
	"fmt"
	"strings"

	"github.com/vovakirdan/minigames/internal/core"
)

// Field is the playable rectangle. Grid games set CellSize to 1 and use
// integer cell coordinates.
type Field struct {
	Width    float64 `yaml:"width"`
	Height   float64 `yaml:"height"`
	CellSize int     `yaml:"cell_size"`
}

// Grid reports whether positions are grid cells.
func (f Field) Grid() bool {
	return f.CellSize > 0
}

// Contains reports whether p lies in [0,Width]×[0,Height].
func (f Field) Contains(p core.Vec) bool {
	return p.X >= 0 && p.X <= f.Width && p.Y >= 0 && p.Y <= f.Height
}

// ContainsCell reports whether a grid cell lies on the field.
func (f Field) ContainsCell(x, y int) bool {
	return x >= 0 && y >= 0 && float64(x) < f.Width && float64(y) < f.Height
}

// Cells returns the number of grid cells, row-major.
func (f Field) Cells() int {
	return int(f.Width) * int(f.Height)
}

// CellIndex converts a cell to its row-major index.
func (f Field) CellIndex(x, y int) int {
	return y*int(f.Width) + x
}

// CellAt converts a row-major index to a cell.
func (f Field) CellAt(index int) (int, int) {
	w := int(f.Width)
	if w <= 0 {
		return 0, 0
	}
	return index % w, index / w
}

// Escaped reports whether e has left the field by more than its own size.
func (f Field) Escaped(e Entity) bool {
	margin := max(e.Size.X, e.Size.Y, 1)
	return e.Pos.X < -margin || e.Pos.X > f.Width+margin ||
		e.Pos.Y < -margin || e.Pos.Y > f.Height+margin
}

// Clamp keeps p inside bounds, or inside the field when bounds is empty.
func (f Field) Clamp(p core.Vec, bounds Bounds) core.Vec {
	if bounds.empty() {
		bounds = Bounds{MaxX: f.Width, MaxY: f.Height}
	}
	return core.V(
		core.ClampF(p.X, bounds.MinX, bounds.MaxX),
		core.ClampF(p.Y, bounds.MinY, bounds.MaxY),
	)
}

// Bounds is a clamp region for an entity center.
type Bounds struct {
	MinX float64 `yaml:"min_x"`
	MinY float64 `yaml:"min_y"`
	MaxX float64 `yaml:"max_x"`
	MaxY float64 `yaml:"max_y"`
}

func (b Bounds) empty() bool {
	return b.MinX == 0 && b.MinY == 0 && b.MaxX == 0 && b.MaxY == 0
}

// Edge names a side of the field.
type Edge uint8

const (
	EdgeTop Edge = iota
	EdgeBottom
	EdgeLeft
	EdgeRight
)

var edgeNames = [...]string{
	EdgeTop:    "top",
	EdgeBottom: "bottom",
	EdgeLeft:   "left",
	EdgeRight:  "right",
}

func (e Edge) String() string {
	if int(e) < len(edgeNames) {
		return edgeNames[e]
	}
	return fmt.Sprintf("edge(%d)", uint8(e))
}

// UnmarshalText parses an edge name.
func (e *Edge) UnmarshalText(text []byte) error {
	want := strings.ToLower(strings.TrimSpace(string(text)))
	for i, name := range edgeNames {
		if name == want {
			*e = Edge(i)
			return nil
		}
	}
	return fmt.Errorf("engine: unknown edge %q", string(text))
}

// MarshalText returns the edge name.
func (e Edge) MarshalText() ([]byte, error) {
	return []byte(e.String()), nil
}

// Line returns the coordinate of the edge moved inward by offset.
func (f Field) Line(edge Edge, offset float64) float64 {
	switch edge {
	case EdgeBottom:
		return f.Height - offset
	case EdgeLeft:
		return offset
	case EdgeRight:
		return f.Width - offset
	default:
		return offset
	}
}
