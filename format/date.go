package format

import "fmt"

// Date converts a GS1 YYMMDD date to YYYY-MM-DD. Two-digit years below 50
// fall in the 2000s, the rest in the 1900s. Only the month (1-12) and day
// (1-31) ranges are checked: "230229" becomes "2023-02-29" even though 2023
// is not a leap year. Anything else is returned unchanged.
func Date(raw string) string {
	if len(raw) != 6 || !digits(raw) {
		return raw
	}
	yy := atoi2(raw[0:2])
	mm := atoi2(raw[2:4])
	dd := atoi2(raw[4:6])
	if mm < 1 || mm > 12 || dd < 1 || dd > 31 {
		return raw
	}
	year := 1900 + yy
	if yy < 50 {
		year = 2000 + yy
	}
	return fmt.Sprintf("%04d-%02d-%02d", year, mm, dd)
}

func atoi2(s string) int {
	return int(s[0]-'0')*10 + int(s[1]-'0')
}

func digits(s string) bool {
	if s == "" {
		return false
	}
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return false
		}
	}
	return true
}
