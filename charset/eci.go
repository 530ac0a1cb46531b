package charset

import "fmt"

// ECI designator values and the character set each selects. Values 0 and 2
// both mean Cp437, 1 and 3 both mean ISO-8859-1, and 170 is ASCII.
var eciNames = map[int]string{
	0:   "CP437",
	1:   ISO8859_1,
	2:   "CP437",
	3:   ISO8859_1,
	4:   "ISO-8859-2",
	5:   "ISO-8859-3",
	6:   "ISO-8859-4",
	7:   "ISO-8859-5",
	8:   "ISO-8859-6",
	9:   "ISO-8859-7",
	10:  "ISO-8859-8",
	11:  "ISO-8859-9",
	12:  "ISO-8859-10",
	13:  "TIS-620",
	15:  "ISO-8859-13",
	16:  "ISO-8859-14",
	17:  "ISO-8859-15",
	18:  "ISO-8859-16",
	20:  ShiftJIS,
	21:  "CP1250",
	22:  "CP1251",
	23:  "CP1252",
	24:  "CP1256",
	25:  "UNICODEBIGUNMARKED",
	26:  UTF8,
	27:  "ASCII",
	28:  "BIG5",
	29:  "GB18030",
	30:  "EUC_KR",
	170: "ASCII",
}

// NameForECI returns the character set name an ECI value designates.
func NameForECI(eci int) (string, error) {
	if eci < 0 || eci >= 900 {
		return "", fmt.Errorf("%w: ECI %d out of range", ErrUnknownCharset, eci)
	}
	name, ok := eciNames[eci]
	if !ok {
		return "", fmt.Errorf("%w: ECI %d", ErrUnknownCharset, eci)
	}
	return name, nil
}
