package kernel

import (
	"errors"
	"fmt"
	"math"

	"fastfood/internal/pkg/errs"
	"fastfood/internal/pkg/guard"
)

const (
	// LatitudeMin is the southernmost valid latitude in degrees.
	LatitudeMin = -90.0
	// LatitudeMax is the northernmost valid latitude in degrees.
	LatitudeMax = 90.0
	// LongitudeMin is the westernmost valid longitude in degrees.
	LongitudeMin = -180.0
	// LongitudeMax is the easternmost valid longitude in degrees.
	LongitudeMax = 180.0

	// KilometersPerDegree converts a great-circle angle in degrees to kilometers
	// using the mean Earth radius.
	KilometersPerDegree = 111.133
)

// ErrLocationIsNotConstructed is returned when a zero-value Location is used.
var ErrLocationIsNotConstructed = errs.NewValueIsRequiredError(
	"location must be created via NewLocation constructor")

// Location is a point on the Earth's surface: a food's pickup point or an
// order's delivery destination. It is an immutable value object; coordinates
// are validated once, at construction.
//
// Example:
//
//	pickup, err := kernel.NewLocation(40.84116, 72.32745)
//	if err != nil {
//	    return err // InvalidInput
//	}
//	km, _ := destination.Distance(pickup)
type Location struct { //nolint:recvcheck //using for validation
	latitude  float64
	longitude float64
	guard     guard.ConstructorGuard
}

// NewLocation creates a Location from degrees. Latitude must lie within
// [LatitudeMin, LatitudeMax] and longitude within [LongitudeMin, LongitudeMax];
// NaN and infinities are rejected.
func NewLocation(latitude float64, longitude float64) (Location, error) {
	loc := Location{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(loc.setLatitude(latitude), loc.setLongitude(longitude)); err != nil {
		return Location{}, err
	}

	return loc, nil
}

// Validate fails for a Location that was not built by NewLocation.
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

func (l Location) String() string {
	return fmt.Sprintf("Location(%.6f,%.6f)", l.latitude, l.longitude)
}

// IsEqual reports whether both locations hold the same coordinates.
func (l Location) IsEqual(other Location) (bool, error) {
	if err := errors.Join(l.Validate(), other.Validate()); err != nil {
		return false, err
	}

	return l.latitude == other.latitude && l.longitude == other.longitude, nil
}

// Distance returns the great-circle distance to other in whole kilometers.
//
// The central angle comes from the spherical law of cosines
//
//	d = acos(sin φa·sin φb + cos φa·cos φb·cos(λa − λb))
//
// and is converted to kilometers at KilometersPerDegree per degree, truncated
// toward zero. Rounding can push the acos argument just past ±1 (for example
// when both points are identical), so it is clamped to [-1, 1].
//
// Example:
//
//	a, _ := kernel.NewLocation(0, 0)
//	b, _ := kernel.NewLocation(0, 90)
//	km, _ := a.Distance(b) // 10001
func (l Location) Distance(other Location) (int, error) {
	if err := errors.Join(l.Validate(), other.Validate()); err != nil {
		return 0, err
	}

	latA, lonA := toRadians(l.latitude), toRadians(l.longitude)
	latB, lonB := toRadians(other.latitude), toRadians(other.longitude)

	cosAngle := math.Sin(latA)*math.Sin(latB) + math.Cos(latA)*math.Cos(latB)*math.Cos(lonA-lonB)
	cosAngle = math.Max(-1, math.Min(1, cosAngle))

	km := int(toDegrees(math.Acos(cosAngle)) * KilometersPerDegree)
	if km < 0 {
		km = -km
	}
	return km, nil
}

func (l *Location) setLatitude(latitude float64) error {
	if math.IsNaN(latitude) || math.IsInf(latitude, 0) {
		return errs.NewValueIsInvalidErrorWithCause("latitude", fmt.Errorf("%v is not a finite number", latitude))
	}
	if latitude < LatitudeMin || latitude > LatitudeMax {
		return errs.NewValueIsOutOfRangeError("latitude", latitude, LatitudeMin, LatitudeMax)
	}

	l.latitude = latitude
	return nil
}

func (l *Location) setLongitude(longitude float64) error {
	if math.IsNaN(longitude) || math.IsInf(longitude, 0) {
		return errs.NewValueIsInvalidErrorWithCause("longitude", fmt.Errorf("%v is not a finite number", longitude))
	}
	if longitude < LongitudeMin || longitude > LongitudeMax {
		return errs.NewValueIsOutOfRangeError("longitude", longitude, LongitudeMin, LongitudeMax)
	}

	l.longitude = longitude
	return nil
}

func toRadians(deg float64) float64 {
	return deg * math.Pi / 180
}

func toDegrees(rad float64) float64 {
	return rad * 180 / math.Pi
}
