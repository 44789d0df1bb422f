package lod

import "sort"

// Collision priorities for text objects (spec.md §4.4).
const (
	PriorityShipLabel   = 110
	PriorityIDTag       = 108
	PriorityOrbitHover  = 95
	PriorityShipCluster = 90
	PriorityBodyLabel   = 80
	PriorityLocation    = 70
	PriorityGeneric     = 10
)

// CollisionPadding is added to each bound before overlap testing
// (spec.md §4.4: "padded by 6 px").
const CollisionPadding = 6.0

// Bounds is an axis-aligned screen-space rectangle.
type Bounds struct {
	X, Y, W, H float64
}

func (b Bounds) padded(p float64) Bounds {
	return Bounds{X: b.X - p, Y: b.Y - p, W: b.W + 2*p, H: b.H + 2*p}
}

func (b Bounds) area() float64 { return b.W * b.H }

func (a Bounds) overlaps(b Bounds) bool {
	return a.X < b.X+b.W && a.X+a.W > b.X && a.Y < b.Y+b.H && a.Y+a.H > b.Y
}

// Text is one registered label candidate for the collision pass.
type Text struct {
	ID       string
	Priority int
	Alpha    float64
	Parented bool
	Bounds   Bounds

	// Visible is set by CullLabels; callers read it back to drive
	// rendering for the frame.
	Visible bool
}

// CullLabels implements the per-frame label LOD and collision pass
// (spec.md §4.4):
//
//  1. Collect all registered texts whose alpha > 0.001 and which are
//     parented.
//  2. Sort by (priority desc, area asc).
//  3. Greedily keep a text if its padded bounds do not overlap any
//     already-kept text; otherwise mark it not visible for this frame.
//
// texts is mutated in place (Visible is set on every element,
// including ones excluded from consideration by alpha/parented).
func CullLabels(texts []*Text) {
	var candidates []*Text
	for _, t := range texts {
		if t.Alpha <= 0.001 || !t.Parented {
			t.Visible = false
			continue
		}
		candidates = append(candidates, t)
	}

	sort.SliceStable(candidates, func(i, j int) bool {
		if candidates[i].Priority != candidates[j].Priority {
			return candidates[i].Priority > candidates[j].Priority
		}
		return candidates[i].Bounds.area() < candidates[j].Bounds.area()
	})

	var kept []Bounds
	for _, t := range candidates {
		pb := t.Bounds.padded(CollisionPadding)
		overlapped := false
		for _, k := range kept {
			if pb.overlaps(k) {
				overlapped = true
				break
			}
		}
		if overlapped {
			t.Visible = false
			continue
		}
		t.Visible = true
		kept = append(kept, pb)
	}
}

// ScreenSizeCap enforces the per-object local-scale ceiling from
// spec.md §4.4 ("its final local scale cannot exceed cap / zoom, so
// zooming out never blows labels past a fixed screen fraction").
func ScreenSizeCap(localScale, scaleCap, zoom float64) float64 {
	if zoom <= 0 {
		return localScale
	}
	ceiling := scaleCap / zoom
	if localScale > ceiling {
		return ceiling
	}
	return localScale
}

// TextRasterResolution returns the rasterization resolution from
// spec.md §4.4: "min(8, max(1, devicePixelRatio * zoom))".
func TextRasterResolution(devicePixelRatio, zoom float64) float64 {
	r := devicePixelRatio * zoom
	if r < 1 {
		r = 1
	}
	if r > 8 {
		r = 8
	}
	return r
}
