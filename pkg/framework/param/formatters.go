package param

import (
	"fmt"
	"strconv"
	"strings"
)

// SamplesFormatter formats a sample count with two decimals, e.g. "44100.00 samples"
func SamplesFormatter(samples float64) string {
	return fmt.Sprintf("%.2f samples", samples)
}

// SamplesParser parses sample count strings with or without the unit
func SamplesParser(str string) (float64, error) {
	str = strings.TrimSpace(str)
	str = strings.TrimSuffix(str, "samples")
	str = strings.TrimSuffix(str, "smp")
	return strconv.ParseFloat(strings.TrimSpace(str), 64)
}

// MultiplierFormatter formats a speed multiplier, e.g. "1.00x"
func MultiplierFormatter(value float64) string {
	return fmt.Sprintf("%.2fx", value)
}

// MultiplierParser parses multiplier strings like "2x" or "0.5"
func MultiplierParser(str string) (float64, error) {
	str = strings.ToLower(strings.TrimSpace(str))
	str = strings.TrimSuffix(str, "x")
	return strconv.ParseFloat(strings.TrimSpace(str), 64)
}
