package cli

import (
	"mime"
	"path/filepath"
	"strconv"
	"strings"
)

// splitPair splits a "name=value" line on its first equals sign.
func splitPair(line string) (name, value string, ok bool) {
	name, value, ok = strings.Cut(line, "=")
	return strings.TrimSpace(name), strings.TrimSpace(value), ok
}

// mimeTypeByExt resolves a file's mime type from its extension, falling back
// to a generic binary type.
func mimeTypeByExt(path string) string {
	if t := mime.TypeByExtension(filepath.Ext(path)); t != "" {
		return t
	}
	return "application/octet-stream"
}

// parseScalar interprets user input as a bool or an int where possible and
// keeps it a string otherwise. Settings values round-trip through JSON, so
// these three types cover the whole schema.
func parseScalar(s string) any {
	if b, err := strconv.ParseBool(s); err == nil {
		return b
	}
	if n, err := strconv.Atoi(s); err == nil {
		return n
	}
	return s
}
