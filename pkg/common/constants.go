package common

const (
	ProviderAnthropic = "anthropic"
	ProviderGemini    = "gemini"

	// UnknownNewsSource labels broad-query items whose feed omits a source element.
	UnknownNewsSource = "Unknown"

	// TwitterMinPageSize and TwitterMaxPageSize bound max_results on recent search.
	TwitterMinPageSize = 10
	TwitterMaxPageSize = 100

	ErrorBulletPrefix = "Error generating analysis: "
)
