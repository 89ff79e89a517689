// Package format contains fixed column helpers for card based input files.
package format

import (
	"fmt"
	"strconv"
	"strings"
)

// FloatToFixedWidthString right-aligns n in a field of width w, keeping as
// many decimals as fit and dropping trailing zeros. Numbers whose integer part
// does not fit fall back to exponent notation.
func FloatToFixedWidthString(n float64, w int) string {
	wStr := strconv.Itoa(w)
	s := fmt.Sprintf("%"+wStr+"."+wStr+"f", n)
	if dot := strings.IndexByte(s, '.'); dot < 0 || dot >= w {
		return fmt.Sprintf("%"+wStr+"."+strconv.Itoa(w-6)+"e", n)
	}
	trimed := strings.TrimRight(s[:w], "0")
	return strings.Repeat(" ", w-len(trimed)) + trimed
}

// IntToFixedWidthString right-aligns n in a field of width w.
func IntToFixedWidthString(n int64, w int) string {
	return fmt.Sprintf("%"+strconv.Itoa(w)+"d", n)
}

// StringToFixedWidthString right-aligns s in a field of width w.
func StringToFixedWidthString(s string, w int) string {
	return fmt.Sprintf("%"+strconv.Itoa(w)+"s", s)
}
