package xmlkit

import "strconv"

// Float returns a binding that parses the attribute value as a float64 and
// stores it through dst.
func Float(dst *float64) func(string) error {
	return func(s string) error {
		v, err := strconv.ParseFloat(s, 64)
		if err != nil {
			return err
		}
		*dst = v
		return nil
	}
}

// Int returns a binding that parses the attribute value as an int and stores
// it through dst.
func Int(dst *int) func(string) error {
	return func(s string) error {
		v, err := strconv.Atoi(s)
		if err != nil {
			return err
		}
		*dst = v
		return nil
	}
}

// Str returns a binding that copies the attribute value verbatim through
// dst.
func Str(dst *string) func(string) error {
	return func(s string) error {
		*dst = s
		return nil
	}
}

// Bool returns a binding that parses the attribute value as a bool ("true"/
// "false"/"1"/"0") and stores it through dst.
func Bool(dst *bool) func(string) error {
	return func(s string) error {
		v, err := strconv.ParseBool(s)
		if err != nil {
			return err
		}
		*dst = v
		return nil
	}
}

// Enum returns a binding that looks the attribute value up in parse and
// stores the result through dst, failing if the value isn't a recognized
// member of the enumeration.
func Enum[T any](dst *T, parse func(string) (T, bool)) func(string) error {
	return func(s string) error {
		v, ok := parse(s)
		if !ok {
			return &unrecognizedValueError{s}
		}
		*dst = v
		return nil
	}
}

type unrecognizedValueError struct{ value string }

func (e *unrecognizedValueError) Error() string {
	return "unrecognized value " + strconv.Quote(e.value)
}
