package service

import (
	"strings"
	"unicode"
)

// Detector labels that need a more specific query to get useful nutrition
// data. Checked in order; the first substring match wins.
var foodNameMappings = []struct {
	match, query string
}{
	{"paneer butter masala", "paneer makhani"},
	{"dal makhani", "dal makhani"},
	{"chicken tikka masala", "chicken tikka masala"},
	{"biryani", "chicken biryani"},
	{"dosa", "plain dosa"},
	{"idli", "idli sambar"},
	{"roti", "chapati"},
	{"naan", "garlic naan"},
}

// CleanFoodName turns a detector label into a nutrition query.
func CleanFoodName(name string) string {
	name = strings.NewReplacer("_", " ", "-", " ").Replace(name)

	words := strings.Fields(name)
	kept := words[:0]
	for _, w := range words {
		if isDigits(w) {
			continue
		}
		kept = append(kept, w)
	}
	cleaned := strings.Join(kept, " ")

	lower := strings.ToLower(cleaned)
	for _, m := range foodNameMappings {
		if strings.Contains(lower, m.match) {
			return m.query
		}
	}
	return cleaned
}

func isDigits(s string) bool {
	for _, r := range s {
		if !unicode.IsDigit(r) {
			return false
		}
	}
	return s != ""
}
