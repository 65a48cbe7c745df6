package pattern

/*
License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2021 Norbert Pillmayer <norbert@pillmayer.com>

*/

import "fmt"

// ConfigError reports a malformed rule description. It is raised at pattern
// compile time, before any matching occurs.
type ConfigError struct {
	Var    string // offending variable name
	Reason string
}

func (e *ConfigError) Error() string {
	return fmt.Sprintf("pattern variable '%s': %s", e.Var, e.Reason)
}

// Compile validates a rule description and returns the matchable pattern.
//
// Within one pattern a variable name may occur repeatedly, but at most one
// occurrence of a given name may carry a predicate. Violations return a
// *ConfigError; matching a pattern that did not pass Compile is a
// programming error.
func Compile(desc Pattern) (Pattern, error) {
	if desc == nil {
		return nil, &ConfigError{Var: "", Reason: "empty pattern description"}
	}
	guarded := make(map[string]int)
	desc.variables(func(name string, hasPred bool) {
		if hasPred {
			guarded[name]++
		}
	})
	for name, count := range guarded {
		if count > 1 {
			tracer().Errorf("rejecting pattern %s: variable '%s' guarded %d times",
				desc, name, count)
			return nil, &ConfigError{
				Var:    name,
				Reason: "more than one occurrence carries a predicate",
			}
		}
	}
	return desc, nil
}

// MustCompile is like Compile but panics on a malformed description. It
// simplifies safe initialization of package-level rule tables.
func MustCompile(desc Pattern) Pattern {
	p, err := Compile(desc)
	if err != nil {
		panic(err)
	}
	return p
}
