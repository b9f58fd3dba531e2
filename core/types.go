package core

import (
	"reflect"
	"sort"
)

// TypeName returns the concrete type name of an agent, indirecting through
// pointers, e.g. "Wolf" for both Wolf and *Wolf. It is the runtime type tag
// used to partition heterogeneous populations.
func TypeName(a Agent) string {
	t := reflect.TypeOf(a)
	for t != nil && t.Kind() == reflect.Ptr {
		t = t.Elem()
	}
	if t == nil {
		return "<nil>"
	}
	return t.Name()
}

// CanonicalTypes decomposes a union of agent prototypes into its concrete
// member type names: duplicates collapse and the result is sorted by name.
// The canonical order is therefore stable, reproducible across runs and
// independent of how the union was originally written; listing {B, A} and
// {A, B} decompose identically.
func CanonicalTypes(protos ...Agent) []string {
	seen := make(map[string]struct{}, len(protos))
	names := make([]string, 0, len(protos))
	for _, p := range protos {
		name := TypeName(p)
		if _, dup := seen[name]; dup {
			continue
		}
		seen[name] = struct{}{}
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
