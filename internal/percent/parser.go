// Package percent splits percentage literals such as "-85%" into their sign,
// digits and unit groups.
//
// The grammar is anchored: one optional leading sign ('+' or '-'), one
// optional trailing unit ('%'), and everything in between taken verbatim as
// the digits group. Digits are not validated, so "+1.5e3%" parses as
// ("+", "1.5e3", "%").
package percent

import (
	"fmt"
	"strings"
)

const unit = "%"

// Result holds the three groups of a parsed percentage. Missing groups are
// empty strings, never absent.
type Result struct {
	Sign   string
	Digits string
	Unit   string
}

// Slice returns the groups as an ordered triple.
func (r Result) Slice() [3]string {
	return [3]string{r.Sign, r.Digits, r.Unit}
}

func (r Result) String() string {
	return fmt.Sprintf("[%q %q %q]", r.Sign, r.Digits, r.Unit)
}

// Parse splits s into sign, digits and unit. Groups are tried in a fixed
// order: sign with unit, sign without unit, sign alone, then no sign.
func Parse(s string) Result {
	if sign, rest, ok := cutSign(s); ok {
		switch {
		case strings.HasSuffix(rest, unit):
			return Result{Sign: sign, Digits: strings.TrimSuffix(rest, unit), Unit: unit}
		case rest != "":
			return Result{Sign: sign, Digits: rest}
		default:
			return Result{Sign: sign}
		}
	}

	if strings.HasSuffix(s, unit) {
		return Result{Digits: strings.TrimSuffix(s, unit), Unit: unit}
	}

	return Result{Digits: s}
}

func cutSign(s string) (sign, rest string, ok bool) {
	if s == "" {
		return "", s, false
	}

	switch s[0] {
	case '+', '-':
		return s[:1], s[1:], true
	default:
		return "", s, false
	}
}
