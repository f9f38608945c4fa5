// Package currency formats integer Rupiah amounts for display. The core
// stores smallest-unit integers; this is presentation only.
package currency

import "strconv"

// FormatIDR renders n per konvensi display Rupiah: "Rp 75.000".
func FormatIDR(n int64) string {
	return "Rp " + Group(n)
}

// Group inserts dot thousand separators: 1234567 -> "1.234.567".
func Group(n int64) string {
	sign := ""
	if n < 0 {
		sign = "-"
		n = -n
	}

	digits := strconv.FormatInt(n, 10)
	var out []byte
	for i, d := range []byte(digits) {
		if i > 0 && (len(digits)-i)%3 == 0 {
			out = append(out, '.')
		}
		out = append(out, d)
	}
	return sign + string(out)
}
