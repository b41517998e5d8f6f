package layout

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// This file defines unit-aware lengths and their conversion to printer dots.

// Unit represents the original unit of a length value as specified in DSL.
type Unit int

const (
	UnitDots    Unit = iota // bare numbers are device dots
	UnitMM                  // millimeters
	UnitCM                  // centimeters
	UnitIN                  // inches
	UnitPT                  // points (1/72 in)
	UnitPercent             // percent of the canvas extent along the same axis
)

const (
	mmPerInch = 25.4
	ptPerInch = 72.0
)

// UnitToString returns a short string for a Unit value.
func UnitToString(u Unit) string {
	switch u {
	case UnitMM:
		return "mm"
	case UnitCM:
		return "cm"
	case UnitIN:
		return "in"
	case UnitPT:
		return "pt"
	case UnitPercent:
		return "%"
	default:
		return ""
	}
}

// Length preserves a numeric value with its unit.
type Length struct {
	Value float64 `json:"value"`
	Unit  Unit    `json:"unit"`
}

func (l Length) String() string {
	return strconv.FormatFloat(l.Value, 'f', -1, 64) + UnitToString(l.Unit)
}

// Dots converts the length to printer dots at dpi. reference is the canvas
// extent percentages are taken of. Physical units are rounded to the
// nearest dot; bare dot values are truncated.
func (l Length) Dots(dpi, reference int) int {
	var inches float64
	switch l.Unit {
	case UnitDots:
		return int(l.Value)
	case UnitPercent:
		return int(math.Round(float64(reference) * l.Value / 100))
	case UnitMM:
		inches = l.Value / mmPerInch
	case UnitCM:
		inches = l.Value * 10 / mmPerInch
	case UnitIN:
		inches = l.Value
	case UnitPT:
		inches = l.Value / ptPerInch
	}
	return int(math.Round(inches * float64(dpi)))
}

var unitSuffixes = []struct {
	s string
	u Unit
}{{"mm", UnitMM}, {"cm", UnitCM}, {"in", UnitIN}, {"pt", UnitPT}, {"%", UnitPercent}}

// ParseLength parses a DSL length such as 20, 2.5mm, 3in or 50%.
func ParseLength(value string) (Length, error) {
	v := strings.ToLower(strings.TrimSpace(value))
	if v == "" {
		return Length{}, fmt.Errorf("长度为空")
	}
	unit := UnitDots
	num := v
	for _, suf := range unitSuffixes {
		if strings.HasSuffix(v, suf.s) {
			unit = suf.u
			num = strings.TrimSpace(strings.TrimSuffix(v, suf.s))
			break
		}
	}
	f, err := strconv.ParseFloat(num, 64)
	if err != nil {
		return Length{}, fmt.Errorf("无法解析长度 %q", value)
	}
	return Length{Value: f, Unit: unit}, nil
}
