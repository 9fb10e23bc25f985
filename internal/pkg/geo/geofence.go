package geo

import (
	"errors"
	"math"
)

// EarthRadiusMeters is the mean earth radius used by the haversine formula.
const EarthRadiusMeters = 6371000.0

var ErrInvalidCoordinates = errors.New("invalid coordinates")

// Point is a WGS84 latitude/longitude pair in degrees.
type Point struct {
	Latitude  float64 `json:"lat"`
	Longitude float64 `json:"lng"`
}

// Validate reports whether p is a finite coordinate inside the valid ranges.
func (p Point) Validate() error {
	if !isFinite(p.Latitude) || !isFinite(p.Longitude) {
		return ErrInvalidCoordinates
	}
	if p.Latitude < -90 || p.Latitude > 90 {
		return ErrInvalidCoordinates
	}
	if p.Longitude < -180 || p.Longitude > 180 {
		return ErrInvalidCoordinates
	}
	return nil
}

// Result is the outcome of a geofence evaluation.
type Result struct {
	DistanceMeters float64
	WithinRadius   bool
}

// Evaluate computes the great-circle distance between office and probe and
// checks it against radiusMeters.
func Evaluate(office, probe Point, radiusMeters float64) (Result, error) {
	if err := office.Validate(); err != nil {
		return Result{}, err
	}
	if err := probe.Validate(); err != nil {
		return Result{}, err
	}
	if !isFinite(radiusMeters) || radiusMeters < 0 {
		return Result{}, ErrInvalidCoordinates
	}

	distance := HaversineDistance(office, probe)
	return Result{
		DistanceMeters: distance,
		WithinRadius:   distance <= radiusMeters,
	}, nil
}

// HaversineDistance returns the distance between a and b in meters.
func HaversineDistance(a, b Point) float64 {
	dLat := toRadians(b.Latitude - a.Latitude)
	dLon := toRadians(b.Longitude - a.Longitude)

	lat1 := toRadians(a.Latitude)
	lat2 := toRadians(b.Latitude)

	h := math.Sin(dLat/2)*math.Sin(dLat/2) +
		math.Sin(dLon/2)*math.Sin(dLon/2)*math.Cos(lat1)*math.Cos(lat2)

	// clamp guards against h drifting past 1 for antipodal points
	h = math.Min(1, math.Max(0, h))

	c := 2 * math.Atan2(math.Sqrt(h), math.Sqrt(1-h))
	return EarthRadiusMeters * c
}

// RoundMeters rounds a distance to the nearest whole meter.
func RoundMeters(d float64) int64 {
	return int64(math.Round(d))
}

func toRadians(deg float64) float64 {
	return deg * (math.Pi / 180.0)
}

func isFinite(f float64) bool {
	return !math.IsNaN(f) && !math.IsInf(f, 0)
}
