package cli

import (
	"fmt"
	"strconv"
	"strings"
)

func hasFlag(args []string, flag string) bool {
	for _, a := range args {
		if strings.EqualFold(a, flag) {
			return true
		}
	}
	return false
}

// flagValue returns the value of the last "--flag value" or "--flag=value"
// in args.
func flagValue(args []string, flag string) (string, bool, error) {
	vals, err := flagValues(args, flag)
	if err != nil || len(vals) == 0 {
		return "", false, err
	}
	return vals[len(vals)-1], true, nil
}

// flagValues returns every value given for a repeatable flag.
func flagValues(args []string, flag string) ([]string, error) {
	var out []string
	for i := 0; i < len(args); i++ {
		name, value, inline := strings.Cut(args[i], "=")
		if !strings.EqualFold(name, flag) {
			continue
		}
		if !inline {
			if i+1 >= len(args) {
				return nil, fmt.Errorf("%s: missing value: %w", flag, ErrUsage)
			}
			i++
			value = args[i]
		}
		out = append(out, value)
	}
	return out, nil
}

func intFlag(args []string, flag string, def int) (int, error) {
	v, ok, err := flagValue(args, flag)
	if err != nil || !ok {
		return def, err
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return 0, fmt.Errorf("%s %q: %w", flag, v, ErrUsage)
	}
	return n, nil
}

func floatFlag(args []string, flag string, def float64) (float64, error) {
	v, ok, err := flagValue(args, flag)
	if err != nil || !ok {
		return def, err
	}
	f, err := strconv.ParseFloat(v, 64)
	if err != nil {
		return 0, fmt.Errorf("%s %q: %w", flag, v, ErrUsage)
	}
	return f, nil
}
