package source

import (
	"os"
	"strings"
)

const (
	flagPrefix = "--"
	switchOn   = "true"
)

// FromProcess reads the arguments the process was started with.
func FromProcess() Map {
	if len(os.Args) < 2 {
		return Map{}
	}
	return FromArgs(os.Args[1:])
}

// FromArgs turns command-line arguments into a Map.
// The program name must not be part of args.
func FromArgs(args []string) Map {
	m := Map{}

	// pending holds a key that is still waiting for its value.
	var pending string
	hasPending := false

	flush := func() {
		if hasPending {
			m[pending] = switchOn
			hasPending = false
		}
	}

	for _, arg := range args {
		if arg == flagPrefix {
			break
		}

		if !strings.HasPrefix(arg, flagPrefix) {
			if hasPending {
				m[pending] = unquote(arg)
				hasPending = false
			}
			continue
		}

		flush()

		name := strings.TrimPrefix(arg, flagPrefix)
		if key, value, ok := strings.Cut(name, "="); ok {
			key = unquote(key)
			if key != "" {
				m[key] = unquote(value)
			}
			continue
		}

		name = unquote(name)
		if name == "" {
			continue
		}
		pending = name
		hasPending = true
	}
	flush()

	return m
}
