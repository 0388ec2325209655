// Package ty provides utility types shared across packages.
package ty

// MI is a shorthand for map[string]interface{}
type MI map[string]interface{}

// MS is a shorthand for map[string]string
type MS map[string]string

// GetOr returns the value for the key if it exists, otherwise the default value.
func (mi MI) GetOr(key string, def interface{}) interface{} {
	if v, b := mi[key]; b {
		return v
	}
	return def
}

// GetString returns the value as a string if it exists, otherwise empty string.
func (mi MI) GetString(key string) string {
	s, _ := mi.GetStringOk(key)
	return s
}

// GetStringOk returns the value as a non-empty string if it exists, along with true.
func (mi MI) GetStringOk(key string) (string, bool) {
	if v, b := mi[key]; b {
		if s, ok := v.(string); ok && s != "" {
			return s, true
		}
	}
	return "", false
}
