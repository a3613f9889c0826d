package config

import (
	"fmt"
	"regexp"
)

var colourPattern = regexp.MustCompile(`^#[0-9A-Fa-f]{8}$`)

// Colour is an #RRGGBBAA string from the config.
type Colour string

const defaultClearColour Colour = "#1a1a1fff"

func (c Colour) Validate() error {
	if !colourPattern.MatchString(string(c)) {
		return fmt.Errorf("colour %q is not of the form #RRGGBBAA", string(c))
	}
	return nil
}

// RGBA returns the channels scaled to [0, 1].
func (c Colour) RGBA() (r, g, b, a float32) {
	var cr, cg, cb, ca uint8
	fmt.Sscanf(string(c), "#%02x%02x%02x%02x", &cr, &cg, &cb, &ca)
	return float32(cr) / 255, float32(cg) / 255, float32(cb) / 255, float32(ca) / 255
}
