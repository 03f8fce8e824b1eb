package models

// RegionNames maps the single-letter Czech region codes used in the ERÚ
// bulletins to full region names.
var RegionNames = map[string]string{
	"A": "Hlavní město Praha",
	"B": "Jihomoravský kraj",
	"C": "Jihočeský kraj",
	"E": "Pardubický kraj",
	"H": "Královéhradecký kraj",
	"J": "Kraj Vysočina",
	"K": "Karlovarský kraj",
	"L": "Liberecký kraj",
	"M": "Olomoucký kraj",
	"P": "Plzeňský kraj",
	"S": "Středočeský kraj",
	"T": "Moravskoslezský kraj",
	"U": "Ústecký kraj",
	"Z": "Zlínský kraj",
}

// ValidRegionCode reports whether code is one of the 14 region codes.
func ValidRegionCode(code string) bool {
	_, ok := RegionNames[code]
	return ok
}

// RegionCodeByName resolves a full region name back to its code.
// Returns "" when the name is unknown.
func RegionCodeByName(name string) string {
	for code, n := range RegionNames {
		if n == name {
			return code
		}
	}
	return ""
}
