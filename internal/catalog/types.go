package catalog

import (
	"fmt"
	"strings"

	"gopkg.in/yaml.v3"
)

// Type is the closed set of record categories.
type Type int

const (
	Grass Type = iota
	Fire
	Water
	Bug
	Normal
	Poison
	Electric
	Ground
	Fairy
	Fighting
	Psychic
	Rock
	Ghost
	Dragon
	Ice
)

var typeNames = [...]string{
	Grass:    "GRASS",
	Fire:     "FIRE",
	Water:    "WATER",
	Bug:      "BUG",
	Normal:   "NORMAL",
	Poison:   "POISON",
	Electric: "ELECTRIC",
	Ground:   "GROUND",
	Fairy:    "FAIRY",
	Fighting: "FIGHTING",
	Psychic:  "PSYCHIC",
	Rock:     "ROCK",
	Ghost:    "GHOST",
	Dragon:   "DRAGON",
	Ice:      "ICE",
}

func (t Type) String() string {
	if t < 0 || int(t) >= len(typeNames) {
		return "UNKNOWN"
	}
	return typeNames[t]
}

// Types returns every category in declaration order.
func Types() []Type {
	out := make([]Type, len(typeNames))
	for i := range typeNames {
		out[i] = Type(i)
	}
	return out
}

// ParseType converts a category name, ignoring case and surrounding space.
func ParseType(s string) (Type, error) {
	want := strings.ToUpper(strings.TrimSpace(s))
	for i, name := range typeNames {
		if name == want {
			return Type(i), nil
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownType, s)
}

// UnmarshalYAML decodes a category from its name.
func (t *Type) UnmarshalYAML(value *yaml.Node) error {
	var s string
	if err := value.Decode(&s); err != nil {
		return err
	}
	parsed, err := ParseType(s)
	if err != nil {
		return fmt.Errorf("line %d: %w", value.Line, err)
	}
	*t = parsed
	return nil
}

// MarshalYAML encodes a category as its name.
func (t Type) MarshalYAML() (any, error) {
	return t.String(), nil
}

// MarshalText lets encoding/json render a category as its name.
func (t Type) MarshalText() ([]byte, error) {
	return []byte(t.String()), nil
}
