package compiler

// propertyFlip maps a physical dash-cased property to its horizontal
// mirror: a left-anchored declaration becomes a right-anchored one under
// `[dir=rtl]`, and vice versa (the map is symmetric by construction).
var propertyFlip = map[string]string{
	"left":                     "right",
	"right":                    "left",
	"margin-left":              "margin-right",
	"margin-right":             "margin-left",
	"padding-left":             "padding-right",
	"padding-right":            "padding-left",
	"border-left":              "border-right",
	"border-right":             "border-left",
	"border-left-width":        "border-right-width",
	"border-right-width":       "border-left-width",
	"border-left-color":        "border-right-color",
	"border-right-color":       "border-left-color",
	"border-left-style":        "border-right-style",
	"border-right-style":       "border-left-style",
	"border-top-left-radius":   "border-top-right-radius",
	"border-top-right-radius":  "border-top-left-radius",
	"border-bottom-left-radius": "border-bottom-right-radius",
	"border-bottom-right-radius": "border-bottom-left-radius",
}

// valueFlip lists properties whose physical direction lives in the VALUE
// rather than the property name (text-align: left vs right, float, clear).
var valueFlip = map[string]bool{
	"text-align": true,
	"float":      true,
	"clear":      true,
}

var directionWord = map[string]string{
	"left":  "right",
	"right": "left",
}

// mirror computes the [dir=rtl] counterpart of a declaration, returning
// ok=false when the property/value carries no direction to flip.
func mirror(dashProperty, cssValue string) (property, val string, ok bool) {
	if flipped, has := propertyFlip[dashProperty]; has {
		return flipped, cssValue, true
	}
	if valueFlip[dashProperty] {
		if flipped, has := directionWord[cssValue]; has {
			return dashProperty, flipped, true
		}
	}
	return "", "", false
}
