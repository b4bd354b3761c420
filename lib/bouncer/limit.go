package bouncer

import (
	"errors"
	"strconv"
	"strings"
)

const (
	MinLimit     = 10
	MaxLimit     = 100000
	DefaultLimit = 1000

	LimitPromptTitle = "Cat Limit"
	LimitPromptText  = "Enter max number of cats before BSOD:"
)

// ParseLimit turns the prompt answer into a spawn limit. Blank or
// unparsable answers give the default, everything else is clamped.
func ParseLimit(input string) int {
	input = strings.TrimSpace(input)
	if input == "" {
		return DefaultLimit
	}

	n, err := strconv.Atoi(input)
	if err != nil {
		var numErr *strconv.NumError
		if errors.As(err, &numErr) && numErr.Err == strconv.ErrRange {
			if strings.HasPrefix(input, "-") {
				return MinLimit
			}
			return MaxLimit
		}
		return DefaultLimit
	}

	return ClampLimit(n)
}

func ClampLimit(n int) int {
	if n < MinLimit {
		return MinLimit
	} else if n > MaxLimit {
		return MaxLimit
	}
	return n
}
