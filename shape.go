package squares

// ShapeKind discriminates the live variant of a Shape.
type ShapeKind uint8

const (
	ShapeNone      ShapeKind = iota // released or never initialised
	ShapeRectangle                  // axis-aligned rectangle
	ShapeCircle                     // circle
)

// String returns the kind's name.
func (k ShapeKind) String() string {
	switch k {
	case ShapeRectangle:
		return "rectangle"
	case ShapeCircle:
		return "circle"
	default:
		return "none"
	}
}

// Shape is the collision bounds of an object: a rectangle or a circle, never
// both. Only the variant named by Kind holds data; the other reads as its
// zero value.
type Shape struct {
	kind   ShapeKind
	rect   Rect
	circle Circle

	// slot is the arena index, or -1 for shapes allocated past capacity.
	slot int32
}

// Kind returns the live variant.
func (s *Shape) Kind() ShapeKind { return s.kind }

// Rect returns the rectangle variant. Zero unless Kind is ShapeRectangle.
func (s *Shape) Rect() Rect { return s.rect }

// Circle returns the circle variant. Zero unless Kind is ShapeCircle.
func (s *Shape) Circle() Circle { return s.circle }

// SetRect makes the shape a rectangle.
func (s *Shape) SetRect(r Rect) {
	s.kind = ShapeRectangle
	s.rect = r
	s.circle = Circle{}
}

// SetCircle makes the shape a circle.
func (s *Shape) SetCircle(c Circle) {
	s.kind = ShapeCircle
	s.circle = c
	s.rect = Rect{}
}

// setPosition moves the live variant. A circle is offset by its radius so its
// bounding box lines up with a sprite anchored at (x, y).
func (s *Shape) setPosition(x, y float64) {
	switch s.kind {
	case ShapeRectangle:
		s.rect.X, s.rect.Y = x, y
	case ShapeCircle:
		s.circle.X, s.circle.Y = x+s.circle.Radius, y+s.circle.Radius
	}
}

func (s *Shape) setX(x float64) {
	switch s.kind {
	case ShapeRectangle:
		s.rect.X = x
	case ShapeCircle:
		s.circle.X = x + s.circle.Radius
	}
}

func (s *Shape) setY(y float64) {
	switch s.kind {
	case ShapeRectangle:
		s.rect.Y = y
	case ShapeCircle:
		s.circle.Y = y + s.circle.Radius
	}
}

func (s *Shape) clear() {
	s.kind = ShapeNone
	s.rect = Rect{}
	s.circle = Circle{}
}

// ShapePool is a fixed-capacity arena of shapes with a free list of indices.
// Objects acquire a shape when initialised and release it when reset. It is
// not safe for concurrent use.
type ShapePool struct {
	arena    []Shape
	free     []int32
	live     []bool
	overflow int
}

// PoolStats reports the occupancy of a ShapePool.
type PoolStats struct {
	Live     int // arena shapes currently acquired
	Free     int // arena shapes available
	Overflow int // shapes handed out after the arena ran dry
}

// NewShapePool creates a pool backed by an arena of the given capacity.
func NewShapePool(capacity int) *ShapePool {
	p := &ShapePool{
		arena: make([]Shape, capacity),
		free:  make([]int32, capacity),
		live:  make([]bool, capacity),
	}
	// Hand out low indices first.
	for i := range p.free {
		p.free[i] = int32(capacity - 1 - i)
		p.arena[i].slot = int32(i)
	}
	return p
}

// Acquire returns an unused shape of kind ShapeNone. When the arena is
// exhausted a heap-allocated shape is returned instead; releasing it is a
// no-op.
func (p *ShapePool) Acquire() *Shape {
	n := len(p.free)
	if n == 0 {
		p.overflow++
		if globalDebug {
			debugf("shape pool exhausted (capacity %d), overflow %d", len(p.arena), p.overflow)
		}
		return &Shape{slot: -1}
	}
	idx := p.free[n-1]
	p.free = p.free[:n-1]
	p.live[idx] = true
	s := &p.arena[idx]
	s.clear()
	return s
}

// Release returns s to the pool. Releasing a shape twice, a nil shape, or an
// overflow shape does nothing.
func (p *ShapePool) Release(s *Shape) {
	if s == nil {
		return
	}
	s.clear()
	idx := s.slot
	if idx < 0 || int(idx) >= len(p.arena) || &p.arena[idx] != s {
		return
	}
	if !p.live[idx] {
		return
	}
	p.live[idx] = false
	p.free = append(p.free, idx)
}

// Stats returns the pool's current occupancy.
func (p *ShapePool) Stats() PoolStats {
	return PoolStats{
		Live:     len(p.arena) - len(p.free),
		Free:     len(p.free),
		Overflow: p.overflow,
	}
}
