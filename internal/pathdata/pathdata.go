// Package pathdata tokenizes SVG path-data strings into command segments.
//
// The scanner is deliberately forgiving: unrecognized command letters are
// skipped (along with any operands that follow them) and a malformed operand
// ends the parse with whatever was read so far. Consumers get only
// well-formed segments and no errors, matching the best-effort rendering
// policy of the package above it.
package pathdata

import "strconv"

// Segment is one parsed path command: a command letter (case encodes
// absolute vs. relative) plus its numeric operands.
type Segment struct {
	Key  byte
	Data []float64
}

// paramCounts maps a lowercased command letter to its SVG operand arity.
var paramCounts = map[byte]int{
	'a': 7, 'c': 6, 'h': 1, 'l': 2, 'm': 2,
	'q': 4, 's': 4, 't': 2, 'v': 1, 'z': 0,
}

func isCommand(c byte) bool {
	lc := c | 0x20
	_, ok := paramCounts[lc]
	return ok
}

func isNumberStart(c byte) bool {
	return (c >= '0' && c <= '9') || c == '+' || c == '-' || c == '.'
}

// Parse scans a path-data string into segments. Implicit command repetition
// follows the SVG rules: bare operands repeat the previous command, with
// moveto repeating as lineto.
func Parse(d string) []Segment {
	sc := scanner{s: d}
	var segs []Segment
	var prev byte
	for {
		sc.skipSeparators()
		if sc.i >= len(sc.s) {
			break
		}
		c := sc.s[sc.i]
		var key byte
		switch {
		case isCommand(c):
			key = c
			sc.i++
		case isNumberStart(c) && prev != 0 && prev|0x20 != 'z':
			key = prev
			if key == 'M' {
				key = 'L'
			} else if key == 'm' {
				key = 'l'
			}
		default:
			// Unknown letter or stray operand: drop it and everything it
			// would have owned.
			sc.i++
			prev = 0
			continue
		}

		n := paramCounts[key|0x20]
		data := make([]float64, 0, n)
		ok := true
		for j := 0; j < n; j++ {
			var v float64
			var good bool
			if key|0x20 == 'a' && (j == 3 || j == 4) {
				v, good = sc.flag()
			} else {
				v, good = sc.number()
			}
			if !good {
				ok = false
				break
			}
			data = append(data, v)
		}
		if !ok {
			break
		}
		segs = append(segs, Segment{Key: key, Data: data})
		prev = key
	}
	return segs
}

type scanner struct {
	s string
	i int
}

func (sc *scanner) skipSeparators() {
	for sc.i < len(sc.s) {
		switch sc.s[sc.i] {
		case ' ', '\t', '\n', '\r', '\f', ',':
			sc.i++
		default:
			return
		}
	}
}

// number scans one signed decimal with optional fraction and exponent.
func (sc *scanner) number() (float64, bool) {
	sc.skipSeparators()
	start := sc.i
	i := sc.i
	s := sc.s
	if i < len(s) && (s[i] == '+' || s[i] == '-') {
		i++
	}
	digits := false
	for i < len(s) && s[i] >= '0' && s[i] <= '9' {
		i++
		digits = true
	}
	if i < len(s) && s[i] == '.' {
		i++
		for i < len(s) && s[i] >= '0' && s[i] <= '9' {
			i++
			digits = true
		}
	}
	if !digits {
		return 0, false
	}
	if i < len(s) && (s[i] == 'e' || s[i] == 'E') {
		j := i + 1
		if j < len(s) && (s[j] == '+' || s[j] == '-') {
			j++
		}
		expDigits := false
		for j < len(s) && s[j] >= '0' && s[j] <= '9' {
			j++
			expDigits = true
		}
		if expDigits {
			i = j
		}
	}
	v, err := strconv.ParseFloat(s[start:i], 64)
	if err != nil {
		return 0, false
	}
	sc.i = i
	return v, true
}

// flag scans a single arc flag, which per the SVG grammar is one bare digit
// and may be packed against the next operand with no separator.
func (sc *scanner) flag() (float64, bool) {
	sc.skipSeparators()
	if sc.i < len(sc.s) && (sc.s[sc.i] == '0' || sc.s[sc.i] == '1') {
		v := float64(sc.s[sc.i] - '0')
		sc.i++
		return v, true
	}
	return 0, false
}
