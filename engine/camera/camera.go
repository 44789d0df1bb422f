package camera

import (
	"math"

	"github.com/google/uuid"

	"orbitalmap/engine/view"
)

// ZoomMin and ZoomMax bound the camera scale (spec.md §4.5: "new scale
// clamped to [0.001, 60]").
const (
	ZoomMin = 0.001
	ZoomMax = 60.0

	flyToDurationS = 0.32 // 320 ms (spec.md §4.5)

	motionDecay = 0.86 // cameraMotion decays 0.86 per frame
	energyDecay = 0.9  // energy scalar decays 0.9 per frame

	dustMinCount = 16
	dustMaxCount = 42
)

// Camera holds pan/zoom state, an in-flight fly-to tween, and the
// motion/energy feedback that drives the dust field (spec.md §4.5).
type Camera struct {
	State State

	motionX, motionY float64
	energy           float64

	flyTo *flyToTween
}

type flyToTween struct {
	token             string
	startX, startY    float64
	targetX, targetY  float64
	elapsedS          float64
}

// New returns a camera centered at the origin with zoom 1.
func New() *Camera {
	return &Camera{State: State{X: 0, Y: 0, Zoom: 1}}
}

// Pan translates the camera by a pointer delta in world units (already
// divided by zoom by the caller), per spec.md §4.5's primary-button
// drag behavior, and feeds the parallax/dust motion vector.
func (c *Camera) Pan(dx, dy float64) {
	c.State.X -= dx
	c.State.Y -= dy
	c.motionX += dx
	c.motionY += dy
	c.energy += math.Hypot(dx, dy) * 0.01
}

// Zoom applies a wheel delta, zooming toward the cursor's world point so
// that point stays fixed on screen (spec.md §4.5: "scaleFactor =
// exp(-deltaY * 0.0015)").
func (c *Camera) Zoom(deltaY, cursorScreenX, cursorScreenY float64, screenW, screenH int) {
	scaleFactor := math.Exp(-deltaY * 0.0015)
	newZoom := c.State.Zoom * scaleFactor
	if newZoom < ZoomMin {
		newZoom = ZoomMin
	}
	if newZoom > ZoomMax {
		newZoom = ZoomMax
	}
	if newZoom == c.State.Zoom {
		return // clamped to a no-op: wheel delta would exceed the bound
	}

	before := FromState(c.State, screenW, screenH)
	worldX, worldY := before.ScreenToWorld(cursorScreenX, cursorScreenY)

	c.State.Zoom = newZoom
	after := FromState(c.State, screenW, screenH)
	screenAfterX, screenAfterY := after.WorldToScreen(worldX, worldY)

	// Translate so the cursor's world point lands back under the cursor.
	dxScreen := cursorScreenX - screenAfterX
	dyScreen := cursorScreenY - screenAfterY
	c.State.X -= dxScreen / c.State.Zoom
	c.State.Y -= dyScreen / c.State.Zoom

	c.energy += math.Abs(deltaY) * 0.002
}

// FlyTo starts (or cancels and restarts) a 320ms ease-out-cubic
// animation centering (wx, wy) on screen. It returns a cancellation
// token; a subsequent FlyTo call invalidates any prior token.
func (c *Camera) FlyTo(wx, wy float64) string {
	token := uuid.NewString()
	c.flyTo = &flyToTween{token: token, startX: c.State.X, startY: c.State.Y, targetX: wx, targetY: wy}
	return token
}

// CancelFlyTo cancels the in-flight tween if its token matches.
func (c *Camera) CancelFlyTo(token string) {
	if c.flyTo != nil && c.flyTo.token == token {
		c.flyTo = nil
	}
}

// IsFlyingTo reports whether a fly-to tween is in progress.
func (c *Camera) IsFlyingTo() bool { return c.flyTo != nil }

// Update advances the fly-to tween and decays the motion/energy
// feedback vector. dt is delta time in seconds.
func (c *Camera) Update(dt float64) {
	if c.flyTo != nil {
		c.flyTo.elapsedS += dt
		t := c.flyTo.elapsedS / flyToDurationS
		if t >= 1 {
			c.State.X, c.State.Y = c.flyTo.targetX, c.flyTo.targetY
			c.flyTo = nil
		} else {
			eased := view.EaseOutCubic(t)
			c.State.X = c.flyTo.startX + (c.flyTo.targetX-c.flyTo.startX)*eased
			c.State.Y = c.flyTo.startY + (c.flyTo.targetY-c.flyTo.startY)*eased
		}
	}

	c.motionX *= motionDecay
	c.motionY *= motionDecay
	c.energy *= energyDecay
}

// Motion returns the decaying cameraMotion vector used to nudge dust
// particle velocity.
func (c *Camera) Motion() (x, y float64) { return c.motionX, c.motionY }

// Energy returns the current energy scalar, used to boost dust alpha.
func (c *Camera) Energy() float64 { return c.energy }
