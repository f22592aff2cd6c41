package component

import (
	"fmt"
	"strings"

	"gopkg.in/yaml.v3"
)

// ColorType is the team color of an actor and of the dye it collects.
type ColorType int

const (
	ColorRed ColorType = iota
	ColorBlue
	ColorGreen
	ColorYellow
)

var colorNames = [...]string{"red", "blue", "green", "yellow"}

// Colors lists every team color in rotation order.
func Colors() []ColorType {
	return []ColorType{ColorRed, ColorBlue, ColorGreen, ColorYellow}
}

func (c ColorType) String() string {
	if c < 0 || int(c) >= len(colorNames) {
		return fmt.Sprintf("color(%d)", int(c))
	}
	return colorNames[c]
}

// ParseColorType accepts the lower-case color names used in prefabs and
// levels.
func ParseColorType(s string) (ColorType, error) {
	name := strings.ToLower(strings.TrimSpace(s))
	for i, n := range colorNames {
		if n == name {
			return ColorType(i), nil
		}
	}
	return 0, fmt.Errorf("unknown color %q", s)
}

func (c *ColorType) UnmarshalYAML(value *yaml.Node) error {
	if value.Kind != yaml.ScalarNode {
		return fmt.Errorf("color must be a string")
	}
	parsed, err := ParseColorType(value.Value)
	if err != nil {
		return err
	}
	*c = parsed
	return nil
}

func (c *ColorType) UnmarshalText(text []byte) error {
	parsed, err := ParseColorType(string(text))
	if err != nil {
		return err
	}
	*c = parsed
	return nil
}
