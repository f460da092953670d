package smooth

import (
	"fmt"
	"strings"
)

// Method selects the smoothing routine.
type Method string

const (
	None    Method = ""
	Linear  Method = "linear"
	Poly    Method = "poly"
	Lowess  Method = "lowess"
	Splines Method = "splines"
)

// Methods lists the methods that produce a curve.
var Methods = []Method{Linear, Poly, Lowess, Splines}

// ParseMethod maps a smoother name to a Method. The empty string and "none"
// select no smoothing; "polyfit" is accepted as an alias of "poly".
func ParseMethod(name string) (Method, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "", "none":
		return None, nil
	case "linear":
		return Linear, nil
	case "poly", "polyfit":
		return Poly, nil
	case "lowess":
		return Lowess, nil
	case "splines", "spline":
		return Splines, nil
	}
	return None, fmt.Errorf("%w: %q", ErrUnknownMethod, name)
}

// Valid reports whether m is one of the known methods, including None.
func (m Method) Valid() bool {
	if m == None {
		return true
	}
	for _, known := range Methods {
		if m == known {
			return true
		}
	}
	return false
}

func (m Method) String() string {
	if m == None {
		return "none"
	}
	return string(m)
}
