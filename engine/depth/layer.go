// Package depth defines the back-to-front render layer order for the
// scene graph. This package has no dependencies to avoid import cycles.
package depth

// Layer represents one retained-container tier in the scene graph.
// Lower layers draw first (background), higher layers draw last
// (foreground), per the draw order: dust, orbit rings, planets,
// location markers, transit path layer, ships, labels, ship-cluster
// labels.
type Layer int

const (
	LayerDust         Layer = iota // Parallax dust field, drifts with camera inertia
	LayerOrbitRings                // Redrawn only when orbitRingsDirty
	LayerPlanets                   // Body icons: sun burst, crescent moon, asteroid, diamond
	LayerLocations                 // Non-body leaf locations: Lagrange/moonlet/asteroid glyphs
	LayerTransitPaths              // Curve polylines for in-flight and previewed routes
	LayerShips                     // Ship sprites, under-glow, selection brackets
	LayerLabels                    // Body/location/ship labels and id tags
	LayerShipClusters              // Docked-chip count badges and ship cluster labels
	LayerCount
)

// layerNames for debugging.
var layerNames = [LayerCount]string{
	"Dust",
	"OrbitRings",
	"Planets",
	"Locations",
	"TransitPaths",
	"Ships",
	"Labels",
	"ShipClusters",
}

// Name returns a human-readable name for the layer.
func (l Layer) Name() string {
	if l >= 0 && l < LayerCount {
		return layerNames[l]
	}
	return "Unknown"
}

// layerParallax defines the parallax factor for each layer. 0.0 is
// fixed at infinity (the dust field's farthest plane), 1.0 moves
// exactly with the camera. These are defaults and can be overridden
// via SetParallax.
var layerParallax = [LayerCount]float64{
	LayerDust:         0.00,
	LayerOrbitRings:   0.94,
	LayerPlanets:      1.00,
	LayerLocations:    1.00,
	LayerTransitPaths: 1.00,
	LayerShips:        1.00,
	LayerLabels:       1.00,
	LayerShipClusters: 1.00,
}

// Parallax returns the parallax factor for this layer.
func (l Layer) Parallax() float64 {
	if l >= 0 && l < LayerCount {
		return layerParallax[l]
	}
	return 1.0
}

// SetParallax allows configuring the parallax factor for a layer at
// runtime. Used to tune the dust field's sense of depth.
func SetParallax(layer Layer, factor float64) {
	if layer >= 0 && layer < LayerCount {
		layerParallax[layer] = factor
	}
}

// GetAllParallax returns a copy of all parallax factors for inspection.
func GetAllParallax() [LayerCount]float64 {
	return layerParallax
}
