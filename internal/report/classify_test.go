package report

import "testing"

func TestClassify(t *testing.T) {
	tests := []struct {
		id   string
		want Severity
	}{
		{"missing-lang", SeverityCritical},
		{"missing-title", SeverityCritical},
		{"missing-viewport", SeverityCritical},
		{"noindex-tag", SeverityCritical},
		{"color-contrast-low", SeverityCritical},
		{"missing-alt", SeverityMajor},
		{"missing-alt-multiple", SeverityMajor},
		{"images-missing-alt", SeverityMajor},
		{"aria-missing-label", SeverityMajor},
		{"form-missing-label", SeverityMajor},
		{"missing-h1", SeverityMajor},
		{"multiple-h1", SeverityMajor},
		{"missing-meta-desc", SeverityMajor},
		{"missing-canonical", SeverityMajor},
		{"missing-og-tags", SeverityMajor},
		{"heading-hierarchy", SeverityMajor},
		{"flat-heading-hierarchy", SeverityMajor},
		{"short-title", SeverityModerate},
		{"long-title", SeverityModerate},
		{"short-meta-desc", SeverityModerate},
		{"long-meta-desc", SeverityModerate},
		{"small-text", SeverityModerate},
		{"missing-favicon", SeverityMinor},
		{"missing-hreflang", SeverityMinor},
		{"generic-image-names", SeverityMinor},
		{"robots-disallowed", SeverityMinor},
		{"", SeverityMinor},
	}

	for _, tt := range tests {
		t.Run(tt.id, func(t *testing.T) {
			got := Classify(Issue{ID: tt.id})
			if got != tt.want {
				t.Fatalf("Classify(%q) = %s, want %s", tt.id, got, tt.want)
			}
		})
	}
}

func TestClassifyCaseInsensitive(t *testing.T) {
	if got := Classify(Issue{ID: "MISSING-LANG"}); got != SeverityCritical {
		t.Fatalf("uppercase ID classified as %s, want %s", got, SeverityCritical)
	}
}

func TestClassifyDeterministic(t *testing.T) {
	issue := Issue{ID: "heading-hierarchy"}
	first := Classify(issue)
	for i := 0; i < 100; i++ {
		if got := Classify(issue); got != first {
			t.Fatalf("classification changed between calls: %s then %s", first, got)
		}
	}
}
