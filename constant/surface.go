package constant

// Secondary surfaces reachable by carousel swipe
const (
	SurfaceMenu      = "menu"
	SurfaceFavorites = "favorites"
	SurfaceSearch    = "search"
)

// Layout and variant names accepted by configuration
const (
	LayoutCircle = "circle"
	LayoutArc    = "arc"

	VariantOrbital  = "orbital"
	VariantCarousel = "carousel"
)

// EnvPrefix is the environment variable prefix for configuration overrides
const EnvPrefix = "ORBITAL"
