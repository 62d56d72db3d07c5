package html

import "maps"

// Get returns the value stored under key, or def when the key is absent.
func (a Attributes) Get(key string, def any) any {
	if v, ok := a[key]; ok {
		return v
	}
	return def
}

// Remove deletes key from a and returns its value, or def when the key is absent.
func (a Attributes) Remove(key string, def any) any {
	v, ok := a[key]
	if !ok {
		return def
	}
	delete(a, key)
	return v
}

// Merge returns a new map holding base overlaid with override.
// Keys in override win. Neither input is modified.
func Merge(base, override Attributes) Attributes {
	out := make(Attributes, len(base)+len(override))
	maps.Copy(out, base)
	maps.Copy(out, override)
	return out
}

// Clone returns a shallow copy of a, or nil when a is nil.
func (a Attributes) Clone() Attributes {
	if a == nil {
		return nil
	}
	return maps.Clone(a)
}
