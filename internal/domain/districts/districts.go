package districts

import (
	"errors"
	"strings"
)

var ErrUnresolved = errors.New("district could not be resolved")

// Kerala lists the 14 canonical districts in the order they are presented.
var Kerala = []string{
	"Thiruvananthapuram", "Kollam", "Pathanamthitta", "Alappuzha",
	"Kottayam", "Idukki", "Ernakulam", "Thrissur", "Palakkad",
	"Malappuram", "Kozhikode", "Wayanad", "Kannur", "Kasaragod",
}

type alias struct {
	name     string
	district string
}

// aliases maps historical and colloquial names to canonical districts.
// Checked in order, so longer names come before their prefixes.
var aliases = []alias{
	{"trivandrum", "Thiruvananthapuram"},
	{"cochin", "Ernakulam"},
	{"kochi", "Ernakulam"},
	{"quilon", "Kollam"},
	{"alleppey", "Alappuzha"},
	{"alleppy", "Alappuzha"},
	{"trichur", "Thrissur"},
	{"palghat", "Palakkad"},
	{"calicut", "Kozhikode"},
	{"cannanore", "Kannur"},
	{"tellicherry", "Kannur"},
	{"thalassery", "Kannur"},
	{"kasargod", "Kasaragod"},
	{"kasargode", "Kasaragod"},
	{"munnar", "Idukki"},
}

// IsCanonical reports whether name is exactly one of the canonical districts.
func IsCanonical(name string) bool {
	for _, d := range Kerala {
		if d == name {
			return true
		}
	}
	return false
}

// Resolve returns the canonical district for the first candidate that
// matches. Each candidate is checked against the canonical list by
// case-insensitive containment in either direction, then against the alias
// table. Blank candidates are skipped.
func Resolve(candidates ...string) (string, error) {
	for _, c := range candidates {
		if d, ok := match(c); ok {
			return d, nil
		}
	}
	return "", ErrUnresolved
}

func match(candidate string) (string, bool) {
	c := strings.ToLower(strings.TrimSpace(candidate))
	if c == "" {
		return "", false
	}

	for _, d := range Kerala {
		ld := strings.ToLower(d)
		if strings.Contains(c, ld) || strings.Contains(ld, c) {
			return d, true
		}
	}

	for _, a := range aliases {
		if strings.Contains(c, a.name) || strings.Contains(a.name, c) {
			return a.district, true
		}
	}
	return "", false
}
