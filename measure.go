package latex

import (
	"errors"
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

var measure = regexp.MustCompile("^(-?(?:[0-9]+(?:\\.[0-9]*)?|\\.[0-9]+)?) *([a-z]{2}|\\\\[a-zA-Z]+\\*?)$")

// Measure parses measurement value, a number and units, for example: 5.1cm, 6em, 0.25\textwidth
//
// Number may be omitted for length commands, for example \textwidth or \fill, in this case it's 1.
func Measure(raw string) (float32, string, error) {
	match := measure.FindStringSubmatch(strings.TrimSpace(raw))
	if len(match) == 0 {
		return 0, "", fmt.Errorf("unable to parse measurement %q", raw)
	}

	unit := match[2]
	if !strings.HasPrefix(unit, "\\") && !isUnit(unit) {
		return 0, "", fmt.Errorf("measurement unit %#v is not supported", unit)
	}

	if match[1] == "" || match[1] == "-" {
		if !strings.HasPrefix(unit, "\\") {
			return 0, "", errors.New("measurement value is expected")
		}

		if match[1] == "-" {
			return -1, unit, nil
		}

		return 1, unit, nil
	}

	number, err := strconv.ParseFloat(match[1], 32)
	if err != nil {
		return 0, "", err
	}

	return float32(number), unit, nil
}

// isUnit returns true for units TeX understands
func isUnit(unit string) bool {
	switch unit {
	case "pt", "mm", "cm", "in", "ex", "em", "bp", "pc", "dd", "cc", "sp", "mu", "nd", "nc":
		return true
	default:
		return false
	}
}
