package constants

// Redis key formats
const (
	// Geocoder cache, keyed by normalized address
	KeyGeocodeCache = "geocode:%s"

	// GEO set of verified mechanic shop locations
	KeyMechanicGeo = "mechanics:geo"
)
