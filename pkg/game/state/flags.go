package state

import "sort"

// Flags holds the named special-room booleans
type Flags map[string]bool

// Set stores a flag. False values are removed.
func (f Flags) Set(key string, value bool) {
	if value {
		f[key] = true
		return
	}
	delete(f, key)
}

// Is returns the value of a flag
func (f Flags) Is(key string) bool {
	return f[key]
}

// Keys returns the set flags in lexical order
func (f Flags) Keys() []string {
	keys := make([]string, 0, len(f))
	for k, v := range f {
		if v {
			keys = append(keys, k)
		}
	}
	sort.Strings(keys)
	return keys
}
