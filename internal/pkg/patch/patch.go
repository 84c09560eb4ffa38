package patch

// Pick returns the value of the first key present with a non-nil value.
// m is only read.
func Pick(m map[string]any, keys ...string) (any, bool) {
	for _, k := range keys {
		if v, ok := m[k]; ok && v != nil {
			return v, true
		}
	}
	return nil, false
}
