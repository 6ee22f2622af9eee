package quadrature

import (
	"fmt"
	"strings"
)

// Method selects a composite quadrature rule.
type Method int

const (
	// Trapezium is the composite Trapezoidal rule.
	Trapezium Method = iota + 1

	// Simpson is the composite Simpson 1/3 rule.
	Simpson
)

// String returns the canonical method name.
func (m Method) String() string {
	switch m {
	case Trapezium:
		return "trapezium"
	case Simpson:
		return "simpson"
	default:
		return fmt.Sprintf("Method(%d)", int(m))
	}
}

// ParseMethod maps a name to a Method. Accepted (case-insensitive):
// "trapezium", "trapezoidal", "simpson".
func ParseMethod(name string) (Method, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "trapezium", "trapezoidal":
		return Trapezium, nil
	case "simpson":
		return Simpson, nil
	default:
		return 0, fmt.Errorf("%w: %q", ErrUnknownMethod, name)
	}
}

// MarshalText implements encoding.TextMarshaler.
func (m Method) MarshalText() ([]byte, error) {
	if m != Trapezium && m != Simpson {
		return nil, fmt.Errorf("%w: %d", ErrUnknownMethod, int(m))
	}

	return []byte(m.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (m *Method) UnmarshalText(text []byte) error {
	v, err := ParseMethod(string(text))
	if err != nil {
		return err
	}
	*m = v

	return nil
}

// Func is a real function of one variable over backend values.
type Func[T any] func(x T) T
