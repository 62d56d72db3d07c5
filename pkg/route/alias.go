package route

import "strings"

// Aliases maps alias names (with the leading "@") to their expansion.
// An alias may contain slashes, in which case the longest match wins.
type Aliases map[string]string

// Resolve expands token when it starts with a known alias. The alias must
// match the whole token or be followed by a "/". Unknown aliases and plain
// tokens are returned unchanged.
func (a Aliases) Resolve(token string) string {
	if !strings.HasPrefix(token, "@") || len(a) == 0 {
		return token
	}

	for end := len(token); end > 0; {
		if v, ok := a[token[:end]]; ok {
			return v + token[end:]
		}

		end = strings.LastIndex(token[:end], "/")
	}

	return token
}
