// Package units defines the system of units used by geometry and material
// definitions. Base units are millimetre, gram and mole; every other unit is
// a multiple of those, so a literal is written as value*unit.
package units

// Length.
const (
	Millimeter = 1.0
	Micrometer = 1e-3 * Millimeter
	Centimeter = 10.0 * Millimeter
	Meter      = 1000.0 * Millimeter

	Mm = Millimeter
	Um = Micrometer
	Cm = Centimeter
	M  = Meter
)

// Volume.
const (
	Mm3 = Millimeter * Millimeter * Millimeter
	Cm3 = Centimeter * Centimeter * Centimeter
	M3  = Meter * Meter * Meter
)

// Mass and amount of substance.
const (
	Gram      = 1.0
	Milligram = 1e-3 * Gram
	Kilogram  = 1000.0 * Gram
	Mole      = 1.0

	G  = Gram
	Mg = Milligram
	Kg = Kilogram
)

// Derived units.
const (
	GramPerMole     = Gram / Mole
	GramPerCm3      = Gram / Cm3
	MilligramPerCm3 = Milligram / Cm3
	KilogramPerM3   = Kilogram / M3
)

// Energy, used only for mean excitation energies.
const (
	ElectronVolt     = 1.0
	KiloElectronVolt = 1000.0 * ElectronVolt

	EV = ElectronVolt
)

// Avogadro is the Avogadro constant in 1/mole.
const Avogadro = 6.02214076e23 / Mole

// In expresses value, given in internal units, in the given unit.
func In(value, unit float64) float64 {
	return value / unit
}
