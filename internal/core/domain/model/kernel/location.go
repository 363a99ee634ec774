package kernel

import (
	"errors"
	"fmt"
	"math"

	"foodorder/internal/pkg/errs"
	"foodorder/internal/pkg/guard"
)

const (
	// LatitudeMin is the southern bound of a valid latitude in degrees.
	LatitudeMin = -90.0
	// LatitudeMax is the northern bound of a valid latitude in degrees.
	LatitudeMax = 90.0
	// LongitudeMin is the western bound of a valid longitude in degrees.
	LongitudeMin = -180.0
	// LongitudeMax is the eastern bound of a valid longitude in degrees.
	LongitudeMax = 180.0

	// earthRadiusKm is the mean Earth radius used for great-circle distances.
	earthRadiusKm = 6371.0
)

// ErrLocationIsNotConstructed is returned when a Location was not created via NewLocation.
var ErrLocationIsNotConstructed = errs.NewValueIsRequiredError("location must be created via NewLocation constructor")

// Location is an immutable geographic point (WGS84 degrees). Restaurants and
// delivery addresses both carry one; the distance between them is recorded on
// an order when it is delivered.
//
// Example:
//
//	restaurant, _ := kernel.NewLocation(12.9716, 77.5946)
//	address, _ := kernel.NewLocation(12.9352, 77.6245)
//	km, _ := restaurant.DistanceKm(address) // 5.18
type Location struct { //nolint:recvcheck //using for validation
	latitude  float64
	longitude float64
	guard     guard.ConstructorGuard
}

// NewLocation creates a Location after checking both coordinates are finite and
// within their bounds. Invalid coordinates are a validation error.
//
// Parameters:
//   - latitude: degrees in [LatitudeMin, LatitudeMax]
//   - longitude: degrees in [LongitudeMin, LongitudeMax]
//
// Returns:
//   - Location: a valid location
//   - error: joined out-of-range errors for every invalid coordinate
func NewLocation(latitude, longitude float64) (Location, error) {
	loc := Location{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(loc.setLatitude(latitude), loc.setLongitude(longitude)); err != nil {
		return Location{}, err
	}

	return loc, nil
}

// Validate checks that the Location was built by NewLocation.
func (l Location) Validate() error {
	return l.guard.Validate(ErrLocationIsNotConstructed)
}

// Latitude returns the latitude in degrees.
func (l Location) Latitude() float64 {
	return l.latitude
}

// Longitude returns the longitude in degrees.
func (l Location) Longitude() float64 {
	return l.longitude
}

// String implements fmt.Stringer, e.g. "Location(12.971600,77.594600)".
func (l Location) String() string {
	return fmt.Sprintf("Location(%f,%f)", l.latitude, l.longitude)
}

// IsEqual compares coordinates of two constructed locations.
func (l Location) IsEqual(other Location) (bool, error) {
	if err := errors.Join(l.Validate(), other.Validate()); err != nil {
		return false, err
	}

	return l.latitude == other.latitude && l.longitude == other.longitude, nil
}

// DistanceKm returns the great-circle (haversine) distance between two locations
// in kilometres, rounded to 2 decimal places. The result is symmetric and zero
// for identical points.
//
// Returns:
//   - float64: distance in kilometres
//   - error: validation error if either location is not constructed
func (l Location) DistanceKm(other Location) (float64, error) {
	if err := errors.Join(l.Validate(), other.Validate()); err != nil {
		return 0, err
	}

	lat1 := toRadians(l.latitude)
	lat2 := toRadians(other.latitude)
	dLat := lat2 - lat1
	dLon := toRadians(other.longitude - l.longitude)

	a := math.Sin(dLat/2)*math.Sin(dLat/2) +
		math.Cos(lat1)*math.Cos(lat2)*math.Sin(dLon/2)*math.Sin(dLon/2)
	c := 2 * math.Atan2(math.Sqrt(a), math.Sqrt(1-a))

	return math.Round(earthRadiusKm*c*100) / 100, nil
}

// setLatitude uses a pointer receiver so construction can validate in place.
func (l *Location) setLatitude(latitude float64) error {
	if math.IsNaN(latitude) || latitude < LatitudeMin || latitude > LatitudeMax {
		return errs.NewValueIsOutOfRangeError("latitude", latitude, LatitudeMin, LatitudeMax)
	}

	l.latitude = latitude
	return nil
}

func (l *Location) setLongitude(longitude float64) error {
	if math.IsNaN(longitude) || longitude < LongitudeMin || longitude > LongitudeMax {
		return errs.NewValueIsOutOfRangeError("longitude", longitude, LongitudeMin, LongitudeMax)
	}

	l.longitude = longitude
	return nil
}

func toRadians(deg float64) float64 {
	return deg * math.Pi / 180
}
