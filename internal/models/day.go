package models

import "strings"

// Day is one training day of a program cycle.
type Day struct {
	Name  string
	Lifts []Lift
}

// DaySeparator separates the day name and each lift in day notation.
const DaySeparator = " | "

// String formats the day as "Name | lift1 | lift2".
func (d Day) String() string {
	parts := make([]string, 0, len(d.Lifts)+1)
	parts = append(parts, d.Name)
	for _, l := range d.Lifts {
		parts = append(parts, l.String())
	}
	return strings.Join(parts, DaySeparator)
}

// Equal reports whether two days have the same name and lifts in order.
func (d Day) Equal(other Day) bool {
	if d.Name != other.Name || len(d.Lifts) != len(other.Lifts) {
		return false
	}
	for i := range d.Lifts {
		if !d.Lifts[i].Equal(other.Lifts[i]) {
			return false
		}
	}
	return true
}
