package models

import "strconv"

func formatScore(s float64) string {
	return strconv.FormatFloat(s, 'f', 2, 64)
}
