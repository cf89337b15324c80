package config

// Default values shared between InitConfig and the loaders. Defined once so
// config file, env and flag layers all agree on the fallback.
const (
	// DefaultTimeOfDay is the clock time assumed for due dates when the
	// user never mentioned one. Start of day keeps date-only comparisons
	// honest; override with resolver.defaultTime.
	DefaultTimeOfDay = "00:00"

	// DefaultListenSeconds is how long each microphone capture runs.
	DefaultListenSeconds = 5

	// DefaultLanguageCode is the speech transcription language.
	DefaultLanguageCode = "en-US"
)
