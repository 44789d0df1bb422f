package camera

import (
	"math"
	"testing"

	"orbitalmap/engine/depth"
)

func TestLayerParallaxFactors(t *testing.T) {
	tests := []struct {
		layer    depth.Layer
		expected float64
	}{
		{depth.LayerDust, 0.00},
		{depth.LayerOrbitRings, 0.94},
		{depth.LayerShips, 1.00},
		{depth.LayerLabels, 1.00},
	}

	for _, tc := range tests {
		got := tc.layer.Parallax()
		if got != tc.expected {
			t.Errorf("Layer %s: got parallax %v, want %v", tc.layer.Name(), got, tc.expected)
		}
	}
}

func TestParallaxCameraForLayer(t *testing.T) {
	cam := NewParallaxCamera(1280, 960)
	cam.SetPosition(100, 200)

	x, y := cam.ForLayer(depth.LayerDust)
	if x != 0 || y != 0 {
		t.Errorf("Dust (fixed): got (%v, %v), want (0, 0)", x, y)
	}

	x, y = cam.ForLayer(depth.LayerOrbitRings)
	if x != 94 || y != 188 {
		t.Errorf("OrbitRings (0.94x): got (%v, %v), want (94, 188)", x, y)
	}

	x, y = cam.ForLayer(depth.LayerShips)
	if x != 100 || y != 200 {
		t.Errorf("Ships (1.0x): got (%v, %v), want (100, 200)", x, y)
	}
}

func TestParallaxCameraTransformForLayer(t *testing.T) {
	cam := NewParallaxCamera(1280, 960)
	cam.SetPosition(100, 0)
	cam.SetZoom(1.0)

	transform := cam.TransformForLayer(depth.LayerShips)
	expectedOffsetX := 540.0
	if transform.OffsetX != expectedOffsetX {
		t.Errorf("Ships OffsetX: got %v, want %v", transform.OffsetX, expectedOffsetX)
	}

	dustTransform := cam.TransformForLayer(depth.LayerDust)
	expectedDustOffsetX := 640.0
	if dustTransform.OffsetX != expectedDustOffsetX {
		t.Errorf("Dust OffsetX: got %v, want %v", dustTransform.OffsetX, expectedDustOffsetX)
	}
}

func TestParallaxCameraWorldToScreen(t *testing.T) {
	cam := NewParallaxCamera(1280, 960)
	cam.SetPosition(0, 0)
	cam.SetZoom(1.0)

	sx, sy := cam.WorldToScreen(0, 0, depth.LayerShips)
	if sx != 640 || sy != 480 {
		t.Errorf("WorldToScreen(0,0): got (%v, %v), want (640, 480)", sx, sy)
	}

	sx, sy = cam.WorldToScreen(100, 100, depth.LayerShips)
	if sx != 740 || sy != 580 {
		t.Errorf("WorldToScreen(100,100): got (%v, %v), want (740, 580)", sx, sy)
	}
}

func TestParallaxCameraScreenToWorld(t *testing.T) {
	cam := NewParallaxCamera(1280, 960)
	cam.SetPosition(0, 0)
	cam.SetZoom(1.0)

	wx, wy := cam.ScreenToWorld(640, 480)
	if wx != 0 || wy != 0 {
		t.Errorf("ScreenToWorld(640,480): got (%v, %v), want (0, 0)", wx, wy)
	}
}

func TestParallaxCameraWithZoom(t *testing.T) {
	cam := NewParallaxCamera(1280, 960)
	cam.SetPosition(0, 0)
	cam.SetZoom(2.0)

	sx, sy := cam.WorldToScreen(50, 50, depth.LayerShips)
	if sx != 740 || sy != 580 {
		t.Errorf("WorldToScreen at 2x zoom: got (%v, %v), want (740, 580)", sx, sy)
	}
}

func floatEquals(a, b, epsilon float64) bool {
	return math.Abs(a-b) < epsilon
}

func TestLayerNames(t *testing.T) {
	names := []struct {
		layer    depth.Layer
		expected string
	}{
		{depth.LayerDust, "Dust"},
		{depth.LayerOrbitRings, "OrbitRings"},
		{depth.LayerShips, "Ships"},
		{depth.LayerLabels, "Labels"},
	}

	for _, tc := range names {
		got := tc.layer.Name()
		if got != tc.expected {
			t.Errorf("Layer.Name(): got %q, want %q", got, tc.expected)
		}
	}
}
