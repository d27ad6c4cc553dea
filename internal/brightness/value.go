package brightness

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// ErrInvalidValue marks a set/toggle argument that does not match the
// value grammar. Errors wrapping it map to their own exit code.
var ErrInvalidValue = errors.New("invalid brightness value")

type Kind int

const (
	Absolute Kind = iota
	AbsolutePercent
	RelativeDelta
	RelativePercent
	Multiply
	Divide
	LinearStep
	LogStep
)

// Value is a parsed brightness expression. Num carries the magnitude for
// the absolute/percent/factor kinds, Steps the count for the step kinds.
// Neg is only meaningful for the relative and step kinds.
type Value struct {
	Kind  Kind
	Neg   bool
	Num   float64
	Steps int
}

// Parse turns a raw set argument into a Value.
//
//	300    absolute
//	50%    percent of max
//	+5     relative delta
//	-10%   relative percent of max
//	x1.5   multiply current
//	/2     divide current
//	+/10   step up to the next multiple of max/10
//	-//8   step down an 8-level log curve
//
// The argument must already be separated from flag parsing; a leading '-'
// here always means "relative", never an option.
func Parse(arg string) (Value, error) {
	s := strings.TrimSpace(arg)
	if s == "" {
		return Value{}, fmt.Errorf("%w: empty argument", ErrInvalidValue)
	}

	switch {
	case strings.HasPrefix(s, "+//"), strings.HasPrefix(s, "-//"):
		steps, err := parseSteps(s[3:])
		if err != nil {
			return Value{}, fmt.Errorf("%w: %q", ErrInvalidValue, arg)
		}
		return Value{Kind: LogStep, Neg: s[0] == '-', Steps: steps}, nil

	case strings.HasPrefix(s, "+/"), strings.HasPrefix(s, "-/"):
		steps, err := parseSteps(s[2:])
		if err != nil {
			return Value{}, fmt.Errorf("%w: %q", ErrInvalidValue, arg)
		}
		return Value{Kind: LinearStep, Neg: s[0] == '-', Steps: steps}, nil

	case strings.HasPrefix(s, "x"):
		factor, err := parseMagnitude(s[1:], true)
		if err != nil {
			return Value{}, fmt.Errorf("%w: %q", ErrInvalidValue, arg)
		}
		return Value{Kind: Multiply, Num: factor}, nil

	case strings.HasPrefix(s, "/"):
		factor, err := parseMagnitude(s[1:], true)
		if err != nil || factor == 0 {
			return Value{}, fmt.Errorf("%w: %q", ErrInvalidValue, arg)
		}
		return Value{Kind: Divide, Num: factor}, nil
	}

	var relative, neg bool
	if s[0] == '+' || s[0] == '-' {
		relative = true
		neg = s[0] == '-'
		s = s[1:]
	}

	percent := strings.HasSuffix(s, "%")
	if percent {
		s = strings.TrimSuffix(s, "%")
	}

	// Fractional magnitudes only make sense against the percent scale;
	// plain units are integers.
	num, err := parseMagnitude(s, percent)
	if err != nil {
		return Value{}, fmt.Errorf("%w: %q", ErrInvalidValue, arg)
	}

	switch {
	case relative && percent:
		return Value{Kind: RelativePercent, Neg: neg, Num: num}, nil
	case relative:
		return Value{Kind: RelativeDelta, Neg: neg, Num: num}, nil
	case percent:
		return Value{Kind: AbsolutePercent, Num: num}, nil
	default:
		return Value{Kind: Absolute, Num: num}, nil
	}
}

// parseMagnitude accepts digits with an optional fractional part. It is
// stricter than strconv alone: no signs, no exponents, no bare ".5".
func parseMagnitude(s string, allowFraction bool) (float64, error) {
	intPart, fracPart, hasDot := strings.Cut(s, ".")
	if !isDigits(intPart) {
		return 0, fmt.Errorf("not a number: %q", s)
	}
	if hasDot && (!allowFraction || !isDigits(fracPart)) {
		return 0, fmt.Errorf("not a number: %q", s)
	}
	return strconv.ParseFloat(s, 64)
}

func parseSteps(s string) (int, error) {
	if !isDigits(s) {
		return 0, fmt.Errorf("not a number: %q", s)
	}
	n, err := strconv.Atoi(s)
	if err != nil {
		return 0, err
	}
	if n < 1 {
		return 0, fmt.Errorf("step count must be positive")
	}
	return n, nil
}

func isDigits(s string) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}
