package matching

import "strings"

// Aliases maps spelling/punctuation variants to a canonical skill token.
// Keys and values are already in normalized (cleaned) form.
var Aliases = map[string]string{
	"js":                  "javascript",
	"ecmascript":          "javascript",
	"ts":                  "typescript",
	"golang":              "go",
	"nodejs":              "node",
	"node js":             "node",
	"reactjs":             "react",
	"react js":            "react",
	"vuejs":               "vue",
	"vue js":              "vue",
	"nextjs":              "next",
	"next js":             "next",
	"postgres":            "postgresql",
	"psql":                "postgresql",
	"k8s":                 "kubernetes",
	"gcp":                 "google cloud",
	"amazon web services": "aws",
	"c sharp":             "c#",
	"dotnet":              "net",
	"ci cd":               "cicd",
	"rest api":            "rest",
	"restful":             "rest",
	"py":                  "python",
	"tf":                  "terraform",
	"ml":                  "machine learning",
}

// Normalize canonicalizes a raw skill name for comparison: trim, case-fold,
// collapse separators, then resolve against the alias table. Total and
// idempotent; unknown input passes through cleaned.
func Normalize(raw string) string {
	cleaned := clean(raw)
	if canonical, ok := Aliases[cleaned]; ok {
		return canonical
	}
	return cleaned
}

func clean(s string) string {
	s = strings.ToLower(strings.TrimSpace(s))
	if s == "" {
		return ""
	}

	var b strings.Builder
	b.Grow(len(s))
	pendingSpace := false
	for _, r := range s {
		switch {
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9', r == '#', r == '+':
			if pendingSpace && b.Len() > 0 {
				b.WriteByte(' ')
			}
			pendingSpace = false
			b.WriteRune(r)
		default:
			pendingSpace = true
		}
	}
	return b.String()
}
