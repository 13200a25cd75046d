// Package executor provides small text-rendering helpers: "${Name}" /
// "${Name | transform}" placeholder interpolation, identifier case
// conversion, and Slugify. The serialize package's tag and markdown
// formatters use Interpolate for annotation label lines; no formatter calls
// Slugify.
package executor

import (
	"bytes"
	"regexp"
	"strings"
)

var placeholder = regexp.MustCompile(`\$\{(\w+)(?:\s*\|\s*(\w+))?\}`)

// Interpolate replaces every "${Name}" or "${Name | transform}" in text
// with vars[Name] (optionally run through ApplyTransform first). A
// placeholder naming a key not present in vars is left unchanged.
func Interpolate(text string, vars map[string]string) string {
	return placeholder.ReplaceAllStringFunc(text, func(match string) string {
		parts := placeholder.FindStringSubmatch(match)
		name, transform := parts[1], parts[2]

		val, ok := vars[name]
		if !ok {
			return match
		}
		if transform != "" {
			val = ApplyTransform(val, transform)
		}
		return val
	})
}

// ApplyTransform applies a named transform to a string. Unknown transform
// names pass the string through unchanged.
func ApplyTransform(s, transform string) string {
	switch transform {
	case "snake_case":
		return ToSnakeCase(s)
	case "camel_case":
		return ToCamelCase(s)
	case "lower":
		return strings.ToLower(s)
	case "upper":
		return strings.ToUpper(s)
	default:
		return s
	}
}

// ToSnakeCase converts PascalCase/camelCase to snake_case.
func ToSnakeCase(s string) string {
	var out bytes.Buffer
	for i, r := range s {
		if i > 0 && r >= 'A' && r <= 'Z' {
			out.WriteByte('_')
		}
		out.WriteRune(r)
	}
	return strings.ToLower(out.String())
}

// ToCamelCase converts snake_case to camelCase.
func ToCamelCase(s string) string {
	parts := strings.Split(s, "_")
	for i := 1; i < len(parts); i++ {
		if len(parts[i]) > 0 {
			parts[i] = strings.ToUpper(parts[i][:1]) + parts[i][1:]
		}
	}
	return strings.Join(parts, "")
}

// Slugify turns arbitrary heading text into a markdown anchor: lowercased,
// non-alphanumeric runs collapsed to a single hyphen, no leading/trailing
// hyphen.
func Slugify(s string) string {
	var out bytes.Buffer
	prevHyphen := false
	for _, r := range strings.ToLower(s) {
		switch {
		case r >= 'a' && r <= 'z' || r >= '0' && r <= '9':
			out.WriteRune(r)
			prevHyphen = false
		default:
			if !prevHyphen && out.Len() > 0 {
				out.WriteByte('-')
				prevHyphen = true
			}
		}
	}
	return strings.TrimRight(out.String(), "-")
}
