package report

// Severity tiers, ordered from most to least damaging. The classifier assigns
// one of these to every issue based on its ID.
type Severity string

const (
	SeverityCritical Severity = "critical"
	SeverityMajor    Severity = "major"
	SeverityModerate Severity = "moderate"
	SeverityMinor    Severity = "minor"
)

// Issue is a single rule violation found in a document. A rule may emit the
// same ID multiple times (one per offending element, capped by the rule).
type Issue struct {
	ID       string `json:"id"`
	Desc     string `json:"desc"`
	Location string `json:"location,omitempty"`
	Snippet  string `json:"snippet,omitempty"`
}

// Breakdown records per-severity counts and the penalty math behind a score.
type Breakdown struct {
	Critical      int `json:"critical"`
	Major         int `json:"major"`
	Moderate      int `json:"moderate"`
	Minor         int `json:"minor"`
	Total         int `json:"total"`
	BasePenalty   int `json:"basePenalty"`
	CappedPenalty int `json:"cappedPenalty"`
}

// CategoryResult is the scored outcome for one rule catalog (accessibility or SEO).
type CategoryResult struct {
	Score     int       `json:"score"`
	Breakdown Breakdown `json:"breakdown"`
	Issues    []Issue   `json:"issues"`
}

// Overall is the weighted blend reported at the top level of an audit.
// The ranking engine separately computes an unweighted average for
// tier and grade purposes; the two values serve different consumers.
type Overall struct {
	Score      int `json:"score"`
	WCAGWeight int `json:"wcagWeight"`
	SEOWeight  int `json:"seoWeight"`
}

// Suggestion is one remediation hint, either phrased by a generative
// provider or produced by the deterministic local fallback.
type Suggestion struct {
	Title  string `json:"title"`
	Text   string `json:"text"`
	Source string `json:"source"` // "ai" or "local"
}

const (
	SuggestionSourceAI    = "ai"
	SuggestionSourceLocal = "local"
)

// AuditReport is the root result of one scan. It is built once per request
// and returned synchronously; nothing retains it afterwards.
type AuditReport struct {
	URL         string         `json:"url"`
	WCAG        CategoryResult `json:"wcag"`
	SEO         CategoryResult `json:"seo"`
	Overall     Overall        `json:"overall"`
	Ranking     Ranking        `json:"ranking"`
	Suggestions []Suggestion   `json:"suggestions"`
}

// Ranking is the presentation-layer view of the two category scores:
// letter grades, performance tier, percentile metrics, and a prioritized
// remediation list.
type Ranking struct {
	Grades          Grades           `json:"grades"`
	Performance     PerformanceTier  `json:"performance"`
	Metrics         Metrics          `json:"metrics"`
	Recommendations []Recommendation `json:"recommendations"`
	Summary         Summary          `json:"summary"`
}

type Grades struct {
	WCAG    string `json:"wcag"`
	SEO     string `json:"seo"`
	Overall string `json:"overall"`
}

type PerformanceTier struct {
	Tier  int    `json:"tier"`
	Name  string `json:"name"`
	Label string `json:"label"`
}

type Metric struct {
	Score      int    `json:"score"`
	Grade      string `json:"grade"`
	Percentile string `json:"percentile"`
	Label      string `json:"label"`
}

type OverallMetric struct {
	Score int    `json:"score"`
	Grade string `json:"grade"`
	Label string `json:"label"`
}

type Metrics struct {
	WCAG    Metric        `json:"wcag"`
	SEO     Metric        `json:"seo"`
	Overall OverallMetric `json:"overall"`
}

type Recommendation struct {
	Priority int    `json:"priority"`
	Category string `json:"category"`
	Count    int    `json:"count"`
	Action   string `json:"action"`
	Impact   string `json:"impact"`
}

type Summary struct {
	WCAGScore    int    `json:"wcagScore"`
	SEOScore     int    `json:"seoScore"`
	OverallScore int    `json:"overallScore"`
	WCAGGrade    string `json:"wcagGrade"`
	SEOGrade     string `json:"seoGrade"`
	OverallGrade string `json:"overallGrade"`
	WCAGColor    string `json:"wcagColor"`
	SEOColor     string `json:"seoColor"`
	OverallColor string `json:"overallColor"`
	Message      string `json:"message"`
}
