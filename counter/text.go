package counter

import "strings"

// ToUpperCase upper-cases s at a cost of 1.
func ToUpperCase(s string) Counter[string] {
	return Counter[string]{Value: strings.ToUpper(s), Cost: 1}
}

// ToWords splits s on single spaces at a cost of 1.
func ToWords(s string) Counter[[]string] {
	return Counter[[]string]{Value: strings.Split(s, " "), Cost: 1}
}
