package storefront

import (
	"revorz_storefront/structs"
	"strings"
)

// ColorFromImage derives the variant from an image reference by substring match,
// defaulting to white.
func ColorFromImage(image string) structs.Color {
	for _, c := range structs.Colors {
		if c == structs.ColorWhite {
			continue
		}
		if strings.Contains(image, string(c)) {
			return c
		}
	}
	return structs.ColorWhite
}

func findOption(options []structs.ColorOption, c structs.Color) (structs.ColorOption, bool) {
	for _, opt := range options {
		if opt.Color == c {
			return opt, true
		}
	}
	return structs.ColorOption{}, false
}

// colorLabel returns the localized label of c, or the key itself when the page has no option for it
func colorLabel(options []structs.ColorOption, c structs.Color) string {
	if opt, ok := findOption(options, c); ok {
		return opt.Label
	}
	return string(c)
}
