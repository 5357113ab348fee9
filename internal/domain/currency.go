package domain

import "sort"

// Currencies maps a currency code to its display name.
type Currencies map[string]string

// Has reports whether code is in the catalog. Matching is case-sensitive.
func (c Currencies) Has(code string) bool {
	_, ok := c[code]
	return ok
}

func (c Currencies) Codes() []string {
	out := make([]string, 0, len(c))
	for code := range c {
		out = append(out, code)
	}
	sort.Strings(out)
	return out
}
