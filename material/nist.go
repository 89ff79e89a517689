package material

import (
	"sort"

	"github.com/hanc4-git/B1/units"
)

type nistElement struct {
	name      string
	z         int
	molarMass float64
}

// nistElements is keyed by symbol. Molar masses in g/mole.
var nistElements = map[string]nistElement{
	"H":  {"Hydrogen", 1, 1.00794},
	"C":  {"Carbon", 6, 12.0107},
	"N":  {"Nitrogen", 7, 14.0067},
	"O":  {"Oxygen", 8, 15.9994},
	"Na": {"Sodium", 11, 22.98977},
	"Si": {"Silicon", 14, 28.0855},
	"Ar": {"Argon", 18, 39.948},
	"Ge": {"Germanium", 32, 72.64},
	"Br": {"Bromine", 35, 79.904},
	"I":  {"Iodine", 53, 126.90447},
	"Cs": {"Caesium", 55, 132.90545},
	"W":  {"Tungsten", 74, 183.84},
	"Pb": {"Lead", 82, 207.217},
	"Bi": {"Bismuth", 83, 208.98038},
}

type nistComponent struct {
	symbol   string
	atoms    int
	fraction float64
}

type nistMaterial struct {
	density    float64
	state      State
	iValue     float64
	components []nistComponent
}

var nistMaterials = map[string]nistMaterial{
	"G4_AIR": {
		density: 1.20479 * units.MilligramPerCm3, state: Gas, iValue: 85.7,
		components: []nistComponent{
			{symbol: "C", fraction: 0.000124},
			{symbol: "N", fraction: 0.755268},
			{symbol: "O", fraction: 0.231781},
			{symbol: "Ar", fraction: 0.012827},
		},
	},
	"G4_WATER": {
		density: 1.0 * units.GramPerCm3, state: Liquid, iValue: 78.0,
		components: []nistComponent{{symbol: "H", atoms: 2}, {symbol: "O", atoms: 1}},
	},
	"G4_Galactic": {
		density: 1e-25 * units.GramPerCm3, state: Gas, iValue: 21.8,
		components: []nistComponent{{symbol: "H", atoms: 1}},
	},
	"G4_Pb": {
		density: 11.35 * units.GramPerCm3, state: Solid, iValue: 823.0,
		components: []nistComponent{{symbol: "Pb", atoms: 1}},
	},
	"G4_CESIUM_IODIDE": {
		density: 4.51 * units.GramPerCm3, state: Solid, iValue: 553.1,
		components: []nistComponent{{symbol: "Cs", atoms: 1}, {symbol: "I", atoms: 1}},
	},
	"G4_SODIUM_IODIDE": {
		density: 3.667 * units.GramPerCm3, state: Solid, iValue: 452.0,
		components: []nistComponent{{symbol: "Na", atoms: 1}, {symbol: "I", atoms: 1}},
	},
	"G4_BGO": {
		density: 7.13 * units.GramPerCm3, state: Solid, iValue: 534.1,
		components: []nistComponent{
			{symbol: "Bi", atoms: 4}, {symbol: "Ge", atoms: 3}, {symbol: "O", atoms: 12},
		},
	},
	"G4_PbWO4": {
		density: 8.28 * units.GramPerCm3, state: Solid,
		components: []nistComponent{
			{symbol: "Pb", atoms: 1}, {symbol: "W", atoms: 1}, {symbol: "O", atoms: 4},
		},
	},
}

// NISTMaterialNames lists predefined material names in sorted order.
func NISTMaterialNames() []string {
	names := make([]string, 0, len(nistMaterials))
	for name := range nistMaterials {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// NISTElementSymbols lists predefined element symbols in sorted order.
func NISTElementSymbols() []string {
	symbols := make([]string, 0, len(nistElements))
	for symbol := range nistElements {
		symbols = append(symbols, symbol)
	}
	sort.Strings(symbols)
	return symbols
}
