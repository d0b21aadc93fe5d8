package numo

import (
	"context"
	"errors"
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

type dimension int

const (
	dimLength dimension = iota
	dimMass
	dimTime
	dimData
	dimVolume
	dimSpeed
	dimTemperature
)

type unit struct {
	dim    dimension
	factor float64 // multiplier to the dimension's base unit
}

// unitTable maps a lowercase unit token to its dimension and base factor.
// Bases: meter, gram, second, byte, liter, meter/second. Temperature is
// handled separately because its conversions are affine.
var unitTable = map[string]unit{
	// length (base: meter)
	"mm": {dimLength, 0.001}, "millimeter": {dimLength, 0.001}, "millimeters": {dimLength, 0.001},
	"cm": {dimLength, 0.01}, "centimeter": {dimLength, 0.01}, "centimeters": {dimLength, 0.01},
	"m": {dimLength, 1}, "meter": {dimLength, 1}, "meters": {dimLength, 1},
	"km": {dimLength, 1000}, "kilometer": {dimLength, 1000}, "kilometers": {dimLength, 1000},
	"inch": {dimLength, 0.0254}, "inches": {dimLength, 0.0254},
	"ft": {dimLength, 0.3048}, "foot": {dimLength, 0.3048}, "feet": {dimLength, 0.3048},
	"yd": {dimLength, 0.9144}, "yard": {dimLength, 0.9144}, "yards": {dimLength, 0.9144},
	"mi": {dimLength, 1609.344}, "mile": {dimLength, 1609.344}, "miles": {dimLength, 1609.344},

	// mass (base: gram)
	"mg": {dimMass, 0.001}, "milligram": {dimMass, 0.001}, "milligrams": {dimMass, 0.001},
	"g": {dimMass, 1}, "gram": {dimMass, 1}, "grams": {dimMass, 1},
	"kg": {dimMass, 1000}, "kilogram": {dimMass, 1000}, "kilograms": {dimMass, 1000},
	"t": {dimMass, 1e6}, "ton": {dimMass, 1e6}, "tons": {dimMass, 1e6},
	"oz": {dimMass, 28.349523125}, "ounce": {dimMass, 28.349523125}, "ounces": {dimMass, 28.349523125},
	"lb": {dimMass, 453.59237}, "lbs": {dimMass, 453.59237}, "pound": {dimMass, 453.59237}, "pounds": {dimMass, 453.59237},

	// time (base: second)
	"ms": {dimTime, 0.001}, "millisecond": {dimTime, 0.001}, "milliseconds": {dimTime, 0.001},
	"s": {dimTime, 1}, "sec": {dimTime, 1}, "second": {dimTime, 1}, "seconds": {dimTime, 1},
	"min": {dimTime, 60}, "minute": {dimTime, 60}, "minutes": {dimTime, 60},
	"h": {dimTime, 3600}, "hr": {dimTime, 3600}, "hour": {dimTime, 3600}, "hours": {dimTime, 3600},
	"day": {dimTime, 86400}, "days": {dimTime, 86400},
	"week": {dimTime, 604800}, "weeks": {dimTime, 604800},

	// data (base: byte)
	"byte": {dimData, 1}, "bytes": {dimData, 1},
	"kb": {dimData, 1e3}, "mb": {dimData, 1e6}, "gb": {dimData, 1e9}, "tb": {dimData, 1e12},
	"kib": {dimData, 1024}, "mib": {dimData, 1 << 20}, "gib": {dimData, 1 << 30}, "tib": {dimData, 1 << 40},

	// volume (base: liter)
	"ml": {dimVolume, 0.001}, "milliliter": {dimVolume, 0.001}, "milliliters": {dimVolume, 0.001},
	"l": {dimVolume, 1}, "liter": {dimVolume, 1}, "liters": {dimVolume, 1},
	"gal": {dimVolume, 3.785411784}, "gallon": {dimVolume, 3.785411784}, "gallons": {dimVolume, 3.785411784},
	"pt": {dimVolume, 0.473176473}, "pint": {dimVolume, 0.473176473}, "pints": {dimVolume, 0.473176473},

	// speed (base: meter/second)
	"m/s": {dimSpeed, 1},
	"km/h": {dimSpeed, 1.0 / 3.6}, "kph": {dimSpeed, 1.0 / 3.6},
	"mph":  {dimSpeed, 0.44704},
	"knot": {dimSpeed, 0.514444}, "knots": {dimSpeed, 0.514444},

	// temperature (affine, factors unused)
	"c": {dimTemperature, 0}, "celsius": {dimTemperature, 0},
	"f": {dimTemperature, 0}, "fahrenheit": {dimTemperature, 0},
	"k": {dimTemperature, 0}, "kelvin": {dimTemperature, 0},
}

var unitPattern = regexp.MustCompile(`^(-?\d+(?:\.\d+)?)\s+([a-zA-Z/]+)\s+(?:to|in|as)\s+([a-zA-Z/]+)$`)

// UnitRunner converts "<number> <unit> to <unit>" lines using static factor
// tables; it declines anything with an unknown unit or mismatched dimensions.
type UnitRunner struct{}

func NewUnitRunner() *UnitRunner {
	return &UnitRunner{}
}

func (r *UnitRunner) Name() string { return "unit" }

func (r *UnitRunner) Run(_ context.Context, source string) (string, error) {
	m := unitPattern.FindStringSubmatch(source)
	if m == nil {
		return "", errors.New("not a unit conversion")
	}
	value, err := strconv.ParseFloat(m[1], 64)
	if err != nil {
		return "", err
	}
	from, ok := unitTable[strings.ToLower(m[2])]
	if !ok {
		return "", fmt.Errorf("unknown unit %q", m[2])
	}
	to, ok := unitTable[strings.ToLower(m[3])]
	if !ok {
		return "", fmt.Errorf("unknown unit %q", m[3])
	}
	if from.dim != to.dim {
		return "", fmt.Errorf("cannot convert %s to %s", m[2], m[3])
	}
	var result float64
	if from.dim == dimTemperature {
		result, err = convertTemperature(value, strings.ToLower(m[2]), strings.ToLower(m[3]))
		if err != nil {
			return "", err
		}
	} else {
		result = value * from.factor / to.factor
	}
	if err := validateResult(result); err != nil {
		return "", err
	}
	return formatNumber(result), nil
}

func convertTemperature(value float64, from, to string) (float64, error) {
	// normalize to celsius first
	var c float64
	switch from[0] {
	case 'c':
		c = value
	case 'f':
		c = (value - 32) * 5 / 9
	case 'k':
		c = value - 273.15
	default:
		return 0, fmt.Errorf("unknown temperature unit %q", from)
	}
	switch to[0] {
	case 'c':
		return c, nil
	case 'f':
		return c*9/5 + 32, nil
	case 'k':
		return c + 273.15, nil
	default:
		return 0, fmt.Errorf("unknown temperature unit %q", to)
	}
}
