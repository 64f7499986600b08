package gmexpr

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/specialistvlad/gmc/internal/gmerr"
	"github.com/specialistvlad/gmc/internal/model"
)

// ParseRobotNumber parses a robot count. "[n]" is a fixed count of n robots
// and "[a,b]" a variable count between a and b inclusive. Counts must be
// positive and a must not exceed b.
func ParseRobotNumber(text string) (model.RobotCount, error) {
	s := strings.TrimSpace(text)
	if !strings.HasPrefix(s, "[") || !strings.HasSuffix(s, "]") || len(s) < 2 {
		return model.RobotCount{}, gmerr.NewSyntax(ParserRobotNumber, text, `expected "[n]" or "[min,max]"`)
	}

	parts := strings.Split(s[1:len(s)-1], ",")
	if len(parts) > 2 {
		return model.RobotCount{}, gmerr.NewSyntax(ParserRobotNumber, text, "too many bounds")
	}

	bounds := make([]int, len(parts))
	for i, p := range parts {
		n, err := strconv.Atoi(strings.TrimSpace(p))
		if err != nil {
			return model.RobotCount{}, gmerr.NewSyntax(ParserRobotNumber, text,
				fmt.Sprintf("count %q is not an integer", strings.TrimSpace(p)))
		}
		bounds[i] = n
	}

	if len(bounds) == 1 {
		if bounds[0] < 1 {
			return model.RobotCount{}, gmerr.NewInvalidRange(ParserRobotNumber, text, bounds[0], bounds[0])
		}
		return model.ExactRobots(bounds[0]), nil
	}

	lo, hi := bounds[0], bounds[1]
	if lo < 1 || lo > hi {
		return model.RobotCount{}, gmerr.NewInvalidRange(ParserRobotNumber, text, lo, hi)
	}
	return model.RobotRange(lo, hi), nil
}

// ParseBool parses a boolean annotation value, "true" or "false" in any case.
func ParseBool(key, text string) (bool, error) {
	switch strings.ToLower(strings.TrimSpace(text)) {
	case "true":
		return true, nil
	case "false":
		return false, nil
	default:
		return false, gmerr.NewSyntax(ParserScalar, text, fmt.Sprintf("%s must be true or false", key))
	}
}

// ParseFloat parses a numeric annotation value.
func ParseFloat(key, text string) (float64, error) {
	f, err := strconv.ParseFloat(strings.TrimSpace(text), 64)
	if err != nil {
		return 0, gmerr.NewSyntax(ParserScalar, text, fmt.Sprintf("%s must be a number", key))
	}
	return f, nil
}
