package geometry

import "fmt"

// Layout names the per-vertex record format of a Mesh. Every attribute takes
// a 4-wide float slot so records stay 16-byte aligned on the GPU.
type Layout int

const (
	LayoutNone Layout = iota
	// LayoutPosition holds a homogeneous position only, stride 4.
	LayoutPosition
	// LayoutPositionNormal holds position and normal, stride 8.
	LayoutPositionNormal
	// LayoutPositionNormalUV holds position, normal and texture coordinates,
	// stride 12. The UV slot is (u, v, 0, 0).
	LayoutPositionNormalUV
)

// SlotSize is the number of floats each attribute occupies.
const SlotSize = 4

// Semantic identifies what an attribute slot holds.
type Semantic int

const (
	SemanticPosition Semantic = iota
	SemanticNormal
	SemanticUV
)

func (s Semantic) String() string {
	switch s {
	case SemanticPosition:
		return "position"
	case SemanticNormal:
		return "normal"
	case SemanticUV:
		return "uv"
	default:
		return fmt.Sprintf("semantic(%d)", int(s))
	}
}

// Attribute describes one slot of a vertex record. Offset and Components
// are counted in floats.
type Attribute struct {
	Semantic   Semantic
	Offset     int
	Components int
}

func (l Layout) String() string {
	switch l {
	case LayoutNone:
		return "none"
	case LayoutPosition:
		return "position"
	case LayoutPositionNormal:
		return "position+normal"
	case LayoutPositionNormalUV:
		return "position+normal+uv"
	default:
		return fmt.Sprintf("layout(%d)", int(l))
	}
}

func (l Layout) Valid() bool {
	return l >= LayoutPosition && l <= LayoutPositionNormalUV
}

// Attributes lists the slots of l in record order.
func (l Layout) Attributes() []Attribute {
	if !l.Valid() {
		return nil
	}
	attrs := make([]Attribute, 0, 3)
	for i, s := range []Semantic{SemanticPosition, SemanticNormal, SemanticUV} {
		if i >= int(l) {
			break
		}
		attrs = append(attrs, Attribute{Semantic: s, Offset: i * SlotSize, Components: SlotSize})
	}
	return attrs
}

// Stride is the number of floats per vertex record.
func (l Layout) Stride() int {
	if !l.Valid() {
		return 0
	}
	return int(l) * SlotSize
}

// StrideBytes is Stride in bytes of float32 data.
func (l Layout) StrideBytes() int {
	return l.Stride() * 4
}

// Offset returns the float offset of the given attribute inside a record and
// whether the layout carries it at all.
func (l Layout) Offset(s Semantic) (int, bool) {
	for _, a := range l.Attributes() {
		if a.Semantic == s {
			return a.Offset, true
		}
	}
	return 0, false
}

func (l Layout) Has(s Semantic) bool {
	_, ok := l.Offset(s)
	return ok
}
