// Package standardize formats extracted contact fields and canonicalizes skill names.
package standardize

import (
	"regexp"
)

var nonDigits = regexp.MustCompile(`\D+`)

// Digits strips everything but ASCII digits from s.
func Digits(s string) string {
	return nonDigits.ReplaceAllString(s, "")
}

// Phone renders a phone number in a country-coded display format. It is a display
// formatter, not a validator: no numbering-plan checks are made. Inputs with fewer
// than 7 digits yield "".
func Phone(raw string) string {
	d := Digits(raw)
	n := len(d)
	switch {
	case n == 10:
		return "(+1) " + d[0:3] + "-" + d[3:6] + "-" + d[6:]
	case n == 11 && d[0] == '1':
		return "(+1) " + d[1:4] + "-" + d[4:7] + "-" + d[7:]
	case n == 12 && d[:2] == "91":
		return "(+91) " + d[2:7] + "-" + d[7:]
	case n == 11 && d[:2] == "44":
		return "(+44) " + d[2:6] + "-" + d[6:]
	case n == 12 && d[:2] == "33":
		return "(+33) " + d[2:3] + "-" + d[3:5] + "-" + d[5:7] + "-" + d[7:9] + "-" + d[9:]
	case n >= 7 && n <= 15:
		return "(+" + d[:2] + ") " + d[2:]
	case n >= 7:
		return d
	}
	return ""
}
