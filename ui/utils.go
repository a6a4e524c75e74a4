package ui

import (
	"fmt"
	"html/template"
	"strings"
)

// formatMoney renders a dollar amount with thousands separators, e.g.
// "$25,544.83"
func formatMoney(v float64) string {
	negative := v < 0
	if negative {
		v = -v
	}
	s := fmt.Sprintf("%.2f", v)
	parts := strings.SplitN(s, ".", 2)
	intPart := parts[0]

	var grouped []string
	for len(intPart) > 3 {
		grouped = append([]string{intPart[len(intPart)-3:]}, grouped...)
		intPart = intPart[:len(intPart)-3]
	}
	grouped = append([]string{intPart}, grouped...)

	out := "$" + strings.Join(grouped, ",") + "." + parts[1]
	if negative {
		out = "-" + out
	}
	return out
}

// templateHTML marks server-rendered markdown as safe for templates
func templateHTML(b []byte) template.HTML {
	return template.HTML(b)
}
