package material

import "fmt"

// State of matter.
type State int

// Available states.
const (
	Undefined State = iota
	Solid
	Liquid
	Gas
)

var stateNames = map[State]string{
	Undefined: "",
	Solid:     "solid",
	Liquid:    "liquid",
	Gas:       "gas",
}

// String ...
func (s State) String() string {
	if name, found := stateNames[s]; found && name != "" {
		return name
	}
	return "undefined"
}

// MarshalText encoding.TextMarshaler implementation.
func (s State) MarshalText() ([]byte, error) {
	name, found := stateNames[s]
	if !found {
		return nil, fmt.Errorf("unknown state of matter %d", int(s))
	}
	return []byte(name), nil
}

// UnmarshalText encoding.TextUnmarshaler implementation.
func (s *State) UnmarshalText(b []byte) error {
	for state, name := range stateNames {
		if name == string(b) {
			*s = state
			return nil
		}
	}
	return fmt.Errorf("unknown state of matter %q", string(b))
}
