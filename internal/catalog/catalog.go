package catalog

// ModelInfo describes a known model identifier for probing and display.
type ModelInfo struct {
	Name string
	Note string
}

// Candidates is the ordered list of model identifiers the checker probes.
var Candidates = []ModelInfo{
	{Name: "gemini-3-pro-preview", Note: "latest and most advanced, not for free tier"},
	{Name: "gemini-2.5-pro", Note: "most advanced available"},
	{Name: "gemini-2.5-flash", Note: "fast and efficient"},
	{Name: "gemini-2.5-flash-lite", Note: "fastest option"},
	{Name: "gemini-2.0-flash", Note: "previous generation workhorse"},
	{Name: "gemini-2.0-flash-lite", Note: "previous generation fast"},
	{Name: "models/gemini-2.5-pro", Note: "alternative naming"},
	{Name: "models/gemini-2.5-flash", Note: "alternative naming"},
}

// Restricted lists models known to require billing or a paid plan.
// Informational only; these are not probed.
var Restricted = []ModelInfo{
	{Name: "gemini-3-pro-preview", Note: "quota exceeded (requires billing)"},
	{Name: "gemini-3-pro-image-preview", Note: "quota exceeded (requires billing)"},
}

// Deprecated lists models that are no longer served.
// Informational only; these are not probed.
var Deprecated = []ModelInfo{
	{Name: "gemini-pro", Note: "deprecated"},
	{Name: "gemini-1.5-pro", Note: "no longer available"},
	{Name: "gemini-1.5-flash", Note: "no longer available"},
	{Name: "gemini-2.5-pro-latest", Note: "not found"},
	{Name: "gemini-2.5-flash-latest", Note: "not found"},
}

// CandidateNames returns the candidate identifiers in probe order.
func CandidateNames() []string {
	names := make([]string, 0, len(Candidates))
	for _, m := range Candidates {
		names = append(names, m.Name)
	}
	return names
}

// IsCandidate reports whether the given model name is in the probe list.
func IsCandidate(name string) bool {
	for _, m := range Candidates {
		if m.Name == name {
			return true
		}
	}
	return false
}
