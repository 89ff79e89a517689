package units

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"
)

// Dimension holds the exponents of the base quantities of a unit expression.
type Dimension struct {
	Length int
	Mass   int
	Amount int
	Energy int
}

var (
	// Dimensionless is the dimension of a bare number.
	Dimensionless = Dimension{}
	// LengthDimension ...
	LengthDimension = Dimension{Length: 1}
	// DensityDimension ...
	DensityDimension = Dimension{Length: -3, Mass: 1}
	// MolarMassDimension ...
	MolarMassDimension = Dimension{Mass: 1, Amount: -1}
	// EnergyDimension ...
	EnergyDimension = Dimension{Energy: 1}
)

func (d Dimension) mul(o Dimension, sign int) Dimension {
	return Dimension{
		Length: d.Length + sign*o.Length,
		Mass:   d.Mass + sign*o.Mass,
		Amount: d.Amount + sign*o.Amount,
		Energy: d.Energy + sign*o.Energy,
	}
}

type unit struct {
	value     float64
	dimension Dimension
}

var unitSymbols = map[string]unit{
	"um":   {Micrometer, LengthDimension},
	"mm":   {Millimeter, LengthDimension},
	"cm":   {Centimeter, LengthDimension},
	"m":    {Meter, LengthDimension},
	"mm3":  {Mm3, Dimension{Length: 3}},
	"cm3":  {Cm3, Dimension{Length: 3}},
	"m3":   {M3, Dimension{Length: 3}},
	"mg":   {Milligram, Dimension{Mass: 1}},
	"g":    {Gram, Dimension{Mass: 1}},
	"kg":   {Kilogram, Dimension{Mass: 1}},
	"mole": {Mole, Dimension{Amount: 1}},
	"mol":  {Mole, Dimension{Amount: 1}},
	"eV":   {ElectronVolt, EnergyDimension},
	"keV":  {KiloElectronVolt, EnergyDimension},
}

// ParseQuantity parses "value", "value*unit[*|/unit...]" or "value unit[*|/unit...]"
// and returns the value in internal units with its dimension.
// Unit tokens after the first must be joined with '*' or '/'.
func ParseQuantity(s string) (float64, Dimension, error) {
	expr := strings.TrimSpace(s)
	if expr == "" {
		return 0, Dimensionless, fmt.Errorf("empty quantity")
	}

	numberEnd := strings.IndexAny(expr, " \t*")
	numberText, rest := expr, ""
	if numberEnd >= 0 {
		numberText, rest = expr[:numberEnd], strings.TrimSpace(expr[numberEnd:])
	}
	value, err := strconv.ParseFloat(numberText, 64)
	if err != nil {
		return 0, Dimensionless, fmt.Errorf("quantity %q: invalid number %q", s, numberText)
	}
	if math.IsNaN(value) || math.IsInf(value, 0) {
		return 0, Dimensionless, fmt.Errorf("quantity %q: number must be finite", s)
	}
	if rest == "" {
		return value, Dimensionless, nil
	}
	if rest[0] == '*' {
		rest = strings.TrimSpace(rest[1:])
	}

	dimension := Dimensionless
	sign := 1
	for {
		tokenEnd := strings.IndexAny(rest, "*/")
		token := rest
		if tokenEnd >= 0 {
			token = rest[:tokenEnd]
		}
		token = strings.TrimSpace(token)
		if strings.ContainsAny(token, " \t") {
			return 0, Dimensionless, fmt.Errorf(
				"quantity %q: units %q must be joined with '*' or '/'", s, token)
		}
		u, known := unitSymbols[token]
		if !known {
			return 0, Dimensionless, fmt.Errorf("quantity %q: unknown unit %q", s, token)
		}
		if sign > 0 {
			value *= u.value
		} else {
			value /= u.value
		}
		dimension = dimension.mul(u.dimension, sign)

		if tokenEnd < 0 {
			break
		}
		if rest[tokenEnd] == '/' {
			sign = -1
		} else {
			sign = 1
		}
		rest = rest[tokenEnd+1:]
	}
	return value, dimension, nil
}

// ParseDimensioned parses s and checks it has the expected dimension.
func ParseDimensioned(s string, expected Dimension) (float64, error) {
	value, dimension, err := ParseQuantity(s)
	if err != nil {
		return 0, err
	}
	if dimension != expected {
		return 0, fmt.Errorf("quantity %q: dimension %+v, expected %+v", s, dimension, expected)
	}
	return value, nil
}

func unmarshalDimensioned(node *yaml.Node, expected Dimension, target *float64) error {
	if node.Kind != yaml.ScalarNode {
		return fmt.Errorf("line %d: quantity must be a scalar", node.Line)
	}
	value, err := ParseDimensioned(node.Value, expected)
	if err != nil {
		return fmt.Errorf("line %d: %w", node.Line, err)
	}
	*target = value
	return nil
}

// Length is a length in internal units, read from YAML as e.g. "100 mm".
type Length float64

// UnmarshalYAML yaml.Unmarshaler implementation.
func (l *Length) UnmarshalYAML(node *yaml.Node) error {
	return unmarshalDimensioned(node, LengthDimension, (*float64)(l))
}

// MarshalYAML yaml.Marshaler implementation.
func (l Length) MarshalYAML() (interface{}, error) {
	return formatQuantity(float64(l), Millimeter, "mm"), nil
}

// Density is a mass density in internal units, read from YAML as e.g. "4.42 g/cm3".
type Density float64

// UnmarshalYAML yaml.Unmarshaler implementation.
func (d *Density) UnmarshalYAML(node *yaml.Node) error {
	return unmarshalDimensioned(node, DensityDimension, (*float64)(d))
}

// MarshalYAML yaml.Marshaler implementation.
func (d Density) MarshalYAML() (interface{}, error) {
	return formatQuantity(float64(d), GramPerCm3, "g/cm3"), nil
}

// MolarMass is a molar mass in internal units, read from YAML as e.g. "207.2 g/mole".
type MolarMass float64

// UnmarshalYAML yaml.Unmarshaler implementation.
func (m *MolarMass) UnmarshalYAML(node *yaml.Node) error {
	return unmarshalDimensioned(node, MolarMassDimension, (*float64)(m))
}

// MarshalYAML yaml.Marshaler implementation.
func (m MolarMass) MarshalYAML() (interface{}, error) {
	return formatQuantity(float64(m), GramPerMole, "g/mole"), nil
}

func formatQuantity(value, unit float64, symbol string) string {
	return strconv.FormatFloat(In(value, unit), 'g', -1, 64) + " " + symbol
}
