package models

import "strings"

// Path joins document keys into a gjson/sjson path, escaping every character
// that the path syntax would otherwise interpret (dots, wildcards, modifiers).
func Path(keys ...string) string {
	escaped := make([]string, len(keys))
	for i, key := range keys {
		escaped[i] = escapeKey(key)
	}
	return strings.Join(escaped, ".")
}

func escapeKey(key string) string {
	var b strings.Builder
	b.Grow(len(key))
	for i := 0; i < len(key); i++ {
		c := key[i]
		if !isSafeKeyChar(c) {
			b.WriteByte('\\')
		}
		b.WriteByte(c)
	}
	return b.String()
}

func isSafeKeyChar(c byte) bool {
	return (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z') ||
		(c >= '0' && c <= '9') || c <= ' ' || c > '~' ||
		c == '_' || c == '-' || c == ':'
}
