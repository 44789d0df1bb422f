package render

import (
	"image/color"
	"testing"

	"orbitalmap/engine/scene"
)

func TestColorForKnownIconsAreDistinct(t *testing.T) {
	sun := colorFor(scene.IconSunburst)
	moon := colorFor(scene.IconCrescentMoon)
	if sun == moon {
		t.Error("expected the Sun and a moon to get visually distinct colors")
	}
}

func TestColorForOutOfRangeIconFallsBackToWhite(t *testing.T) {
	got := colorFor(scene.Icon(999))
	want := color.RGBA{255, 255, 255, 255}
	if got != want {
		t.Errorf("colorFor(out-of-range) = %+v, want %+v", got, want)
	}
}

func TestFadeColorScalesAlpha(t *testing.T) {
	base := color.RGBA{230, 230, 235, 255}
	got := fadeColor(base, 0.5)
	if got.A != 127 {
		t.Errorf("fadeColor alpha = %d, want 127", got.A)
	}
}

func TestFadeColorClampsOutOfRangeAlpha(t *testing.T) {
	base := color.RGBA{230, 230, 235, 200}
	if got := fadeColor(base, 2.0); got.A != 200 {
		t.Errorf("alpha > 1 should clamp to the base alpha, got %d", got.A)
	}
	if got := fadeColor(base, -1.0); got.A != 0 {
		t.Errorf("alpha < 0 should clamp to 0, got %d", got.A)
	}
}
