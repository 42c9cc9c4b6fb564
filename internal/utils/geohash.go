package utils

import (
	"github.com/mmcloughlin/geohash"
)

// GeohashPrecision is the character length used for stored geohashes;
// 9 characters resolve to roughly 5 meters.
const GeohashPrecision = 9

// EncodeLocation converts a coordinate pair to a geohash string
func EncodeLocation(latitude, longitude float64) string {
	return geohash.EncodeWithPrecision(latitude, longitude, GeohashPrecision)
}

// DecodeGeohash converts a geohash string back to a coordinate pair
func DecodeGeohash(hash string) (latitude, longitude float64) {
	return geohash.Decode(hash)
}
