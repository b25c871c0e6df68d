package validation

import "sort"

var registered = map[string]Rule{}

func Register(r Rule) {
	if r.Code == "" || r.Check == nil {
		return
	}
	registered[r.Code] = r
}

// All returns the registered rules ordered by code.
func All() []Rule {
	out := make([]Rule, 0, len(registered))
	for _, r := range registered {
		out = append(out, r)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Code < out[j].Code })
	return out
}

func Lookup(code string) (Rule, bool) {
	r, ok := registered[code]
	return r, ok
}
