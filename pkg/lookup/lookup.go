// Package lookup holds the closed code tables used to enrich restaurant rows.
package lookup

import (
	"fmt"
	"sort"
)

var countries = map[int]string{
	1:   "India",
	14:  "Australia",
	30:  "Brazil",
	37:  "Canada",
	94:  "Indonesia",
	148: "New Zeland",
	162: "Philippines",
	166: "Qatar",
	184: "Singapure",
	189: "South Africa",
	191: "Sri Lanka",
	208: "Turkey",
	214: "United Arab Emirates",
	215: "United Kingdom",
	216: "United States of America",
}

// FF7800 and CBCBC8 both resolve to darkred.
var colors = map[string]string{
	"3F7E00": "darkgreen",
	"5BA829": "green",
	"9ACD32": "lightgreen",
	"CDD614": "orange",
	"FFBA00": "red",
	"CBCBC8": "darkred",
	"FF7800": "darkred",
}

// LookupError reports a key outside one of the closed tables.
type LookupError struct {
	Table string
	Key   any
}

func (e *LookupError) Error() string {
	return fmt.Sprintf("lookup %s: unknown key %v", e.Table, e.Key)
}

// CountryName resolves a numeric country code.
func CountryName(code int) (string, error) {
	name, ok := countries[code]
	if !ok {
		return "", &LookupError{Table: "country", Key: code}
	}
	return name, nil
}

// ColorName resolves a rating color hex code. Matching is exact.
func ColorName(code string) (string, error) {
	name, ok := colors[code]
	if !ok {
		return "", &LookupError{Table: "color", Key: code}
	}
	return name, nil
}

// CountryCodes returns the known country codes in ascending order.
func CountryCodes() []int {
	out := make([]int, 0, len(countries))
	for code := range countries {
		out = append(out, code)
	}
	sort.Ints(out)
	return out
}

// ColorCodes returns the known rating color codes in ascending order.
func ColorCodes() []string {
	out := make([]string, 0, len(colors))
	for code := range colors {
		out = append(out, code)
	}
	sort.Strings(out)
	return out
}
