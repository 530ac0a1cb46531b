package charset

// GuessEncoding picks the most plausible character set for data among
// UTF-8, Shift_JIS and ISO-8859-1. A leading UTF-16 byte order mark gives
// UTF-16. Pure ASCII is reported as ISO-8859-1, which decodes it unchanged.
func GuessEncoding(data []byte) string {
	if len(data) == 0 {
		return UTF8
	}
	if len(data) > 2 && (data[0] == 0xFE && data[1] == 0xFF || data[0] == 0xFF && data[1] == 0xFE) {
		return UTF16
	}

	u := utf8Detector{ok: true}
	s := sjisDetector{ok: true}
	l := latin1Detector{ok: true}
	for i := 0; i < len(data) && (u.ok || s.ok || l.ok); i++ {
		b := data[i]
		if u.ok {
			u.feed(b)
		}
		if s.ok {
			s.feed(b)
		}
		if l.ok {
			l.feed(b)
		}
	}
	u.finish()
	s.finish()

	bom := len(data) > 3 && data[0] == 0xEF && data[1] == 0xBB && data[2] == 0xBF
	switch {
	case u.ok && (bom || u.multibyte > 0):
		return UTF8
	case s.ok && (s.maxKatakanaRun >= 3 || s.maxDoubleRun >= 3):
		return ShiftJIS
	case l.ok && s.ok:
		if s.maxKatakanaRun == 2 && s.katakana == 2 || l.highOther*10 >= len(data) {
			return ShiftJIS
		}
		return ISO8859_1
	case l.ok:
		return ISO8859_1
	case s.ok:
		return ShiftJIS
	default:
		return UTF8
	}
}

type utf8Detector struct {
	ok        bool
	pending   int
	multibyte int
}

func (d *utf8Detector) feed(b byte) {
	switch {
	case d.pending > 0:
		if b&0xC0 != 0x80 {
			d.ok = false
			return
		}
		d.pending--
	case b&0x80 == 0:
	case b&0xE0 == 0xC0:
		d.pending, d.multibyte = 1, d.multibyte+1
	case b&0xF0 == 0xE0:
		d.pending, d.multibyte = 2, d.multibyte+1
	case b&0xF8 == 0xF0:
		d.pending, d.multibyte = 3, d.multibyte+1
	default:
		d.ok = false
	}
}

func (d *utf8Detector) finish() {
	if d.pending > 0 {
		d.ok = false
	}
}

type sjisDetector struct {
	ok             bool
	pending        int
	katakana       int
	katakanaRun    int
	doubleRun      int
	maxKatakanaRun int
	maxDoubleRun   int
}

func (d *sjisDetector) feed(b byte) {
	switch {
	case d.pending > 0:
		if b < 0x40 || b == 0x7F || b > 0xFC {
			d.ok = false
			return
		}
		d.pending--
	case b == 0x80 || b == 0xA0 || b > 0xEF:
		d.ok = false
	case b > 0xA0 && b < 0xE0:
		// half-width katakana
		d.katakana++
		d.doubleRun = 0
		d.katakanaRun++
		d.maxKatakanaRun = max(d.maxKatakanaRun, d.katakanaRun)
	case b > 0x7F:
		d.pending++
		d.katakanaRun = 0
		d.doubleRun++
		d.maxDoubleRun = max(d.maxDoubleRun, d.doubleRun)
	default:
		d.katakanaRun, d.doubleRun = 0, 0
	}
}

func (d *sjisDetector) finish() {
	if d.pending > 0 {
		d.ok = false
	}
}

type latin1Detector struct {
	ok        bool
	highOther int
}

func (d *latin1Detector) feed(b byte) {
	switch {
	case b > 0x7F && b < 0xA0:
		d.ok = false
	case b > 0x9F && (b < 0xC0 || b == 0xD7 || b == 0xF7):
		d.highOther++
	}
}
