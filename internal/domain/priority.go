package domain

import (
	"fmt"
	"math"
	"regexp"
	"strconv"
	"strings"
)

type Priority int

const (
	PriorityLow    Priority = 1
	PriorityMedium Priority = 3
	PriorityHigh   Priority = 5
	PriorityUrgent Priority = 7
)

// Priorities returns every valid level, lowest first.
func Priorities() []Priority {
	return []Priority{PriorityLow, PriorityMedium, PriorityHigh, PriorityUrgent}
}

func (p Priority) Valid() bool {
	switch p {
	case PriorityLow, PriorityMedium, PriorityHigh, PriorityUrgent:
		return true
	default:
		return false
	}
}

// Normalize returns p when it is a known level and PriorityLow otherwise.
func (p Priority) Normalize() Priority {
	if p.Valid() {
		return p
	}
	return PriorityLow
}

func (p Priority) String() string {
	switch p {
	case PriorityLow:
		return "LOW"
	case PriorityMedium:
		return "MEDIUM"
	case PriorityHigh:
		return "HIGH"
	case PriorityUrgent:
		return "URGENT"
	default:
		return "Priority(" + strconv.Itoa(int(p)) + ")"
	}
}

// NormalizePriority coerces raw into a priority level. Anything that does not
// read as exactly 1, 3, 5 or 7 (negative, fractional, non-numeric, nil) falls
// back to PriorityLow. It never fails.
func NormalizePriority(raw any) Priority {
	switch v := raw.(type) {
	case nil:
		return PriorityLow
	case Priority:
		return v.Normalize()
	case int:
		return fromInt(int64(v))
	case int8:
		return fromInt(int64(v))
	case int16:
		return fromInt(int64(v))
	case int32:
		return fromInt(int64(v))
	case int64:
		return fromInt(v)
	case uint:
		return fromUint(uint64(v))
	case uint8:
		return fromUint(uint64(v))
	case uint16:
		return fromUint(uint64(v))
	case uint32:
		return fromUint(uint64(v))
	case uint64:
		return fromUint(v)
	case float32:
		return fromFloat(float64(v))
	case float64:
		return fromFloat(v)
	case string:
		return fromString(v)
	case fmt.Stringer:
		return fromString(v.String())
	default:
		return PriorityLow
	}
}

func fromInt(n int64) Priority {
	if n < int64(PriorityLow) || n > int64(PriorityUrgent) {
		return PriorityLow
	}
	return Priority(n).Normalize()
}

func fromUint(n uint64) Priority {
	if n > uint64(PriorityUrgent) {
		return PriorityLow
	}
	return Priority(n).Normalize()
}

func fromFloat(f float64) Priority {
	if math.IsNaN(f) || math.IsInf(f, 0) || f != math.Trunc(f) {
		return PriorityLow
	}
	return fromInt(int64(f))
}

func fromString(s string) Priority {
	s = strings.TrimSpace(s)
	if s == "" {
		return PriorityLow
	}

	if len(s) > 2 && s[0] == '0' {
		switch s[1] {
		case 'x', 'X', 'o', 'O', 'b', 'B':
			n, err := strconv.ParseInt(s, 0, 64)
			if err != nil {
				return PriorityLow
			}
			return fromInt(n)
		}
	}

	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return PriorityLow
	}
	return fromFloat(f)
}

var digitsOnly = regexp.MustCompile(`^[0-9]+$`)

// IsValidNonNegativeInteger reports whether v, rendered as text and trimmed,
// is made of decimal digits only and is not negative.
func IsValidNonNegativeInteger(v any) bool {
	s := strings.TrimSpace(fmt.Sprint(v))
	if !digitsOnly.MatchString(s) {
		return false
	}

	// digit strings too long for float64 still parse as +Inf
	f, err := strconv.ParseFloat(s, 64)
	if err != nil && !math.IsInf(f, 1) {
		return false
	}
	return f >= 0
}
