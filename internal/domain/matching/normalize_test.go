package matching

import "testing"

func TestNormalize_CaseAndWhitespace(t *testing.T) {
	if got := Normalize("  TypeScript "); got != "typescript" {
		t.Fatalf("expected typescript, got %q", got)
	}
	if Normalize("typescript ") != Normalize("TypeScript") {
		t.Fatalf("variants should normalize equal")
	}
}

func TestNormalize_Aliases(t *testing.T) {
	cases := map[string]string{
		"JS":       "javascript",
		"Golang":   "go",
		"Node.js":  "node",
		"ReactJS":  "react",
		"Postgres": "postgresql",
		"K8s":      "kubernetes",
		"C Sharp":  "c#",
		"c++":      "c++",
		"REST API": "rest",
		".NET":     "net",
	}
	for in, want := range cases {
		if got := Normalize(in); got != want {
			t.Fatalf("Normalize(%q) = %q, want %q", in, got, want)
		}
	}
}

func TestNormalize_Idempotent(t *testing.T) {
	inputs := []string{
		"", "  ", "JavaScript", "node.js", "C Sharp", ".NET", "ci/cd",
		"Machine-Learning", "gcp", "Vue.JS", "weird___input!!!", "c++", "42",
	}
	for _, in := range inputs {
		once := Normalize(in)
		twice := Normalize(once)
		if once != twice {
			t.Fatalf("Normalize not idempotent for %q: %q != %q", in, once, twice)
		}
	}
}

func TestNormalize_SeparatorCollapse(t *testing.T) {
	if got := Normalize("machine---learning"); got != "machine learning" {
		t.Fatalf("expected machine learning, got %q", got)
	}
	if got := Normalize("ci/cd"); got != "cicd" {
		t.Fatalf("expected cicd, got %q", got)
	}
}

func TestSimilarity_Bounds(t *testing.T) {
	if Similarity("go", "go") != 1 {
		t.Fatalf("identical strings must score 1")
	}
	if Similarity("", "go") != 0 {
		t.Fatalf("empty vs non-empty must score 0")
	}
	s := Similarity("javascript", "javascripts")
	if s <= 0 || s >= 1 {
		t.Fatalf("near-identical strings should score in (0,1), got %f", s)
	}
}

func TestSimilarity_Symmetric(t *testing.T) {
	a, b := "postgresql", "postgres"
	if Similarity(a, b) != Similarity(b, a) {
		t.Fatalf("similarity should be symmetric")
	}
}
