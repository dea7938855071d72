package paint

import "strings"

// Swatches is the fixed preset grid, in display order.
var Swatches = []string{
	"#000000", "#808080", "#800000", "#808000", "#008000", "#008080", "#000080",
	"#800080", "#808040", "#004040", "#0080FF", "#004080", "#8000FF", "#804000",
	"#FFFFFF", "#C0C0C0", "#FF0000", "#FFFF00", "#00FF00", "#00FFFF", "#0000FF",
	"#FF00FF", "#FFFF80", "#00FF80", "#80FFFF", "#8080FF", "#FF0080", "#FF8040",
}

// SwatchColumns is how many swatches render per row.
const SwatchColumns = 14

// Swatch returns the uppercased hex of swatch i.
func Swatch(i int) (string, bool) {
	if i < 0 || i >= len(Swatches) {
		return "", false
	}
	return strings.ToUpper(Swatches[i]), true
}
