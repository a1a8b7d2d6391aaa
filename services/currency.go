package services

import (
	"fmt"
	"math"
	"strings"
)

// FormatINR renders an amount with Indian digit grouping (1,00,000 rather
// than 100,000), rounded to whole rupees.
func FormatINR(amount float64) string {
	n := int64(math.Round(amount))
	neg := n < 0
	if neg {
		n = -n
	}

	s := fmt.Sprintf("%d", n)
	if len(s) > 3 {
		head := s[:len(s)-3]
		tail := s[len(s)-3:]

		var groups []string
		for len(head) > 2 {
			groups = append([]string{head[len(head)-2:]}, groups...)
			head = head[:len(head)-2]
		}
		if head != "" {
			groups = append([]string{head}, groups...)
		}
		s = strings.Join(groups, ",") + "," + tail
	}

	if neg {
		s = "-" + s
	}
	return s
}
