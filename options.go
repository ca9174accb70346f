package kahuna

import "time"

// LogLevel mirrors the host analytics logger verbosity. Debug mode on the
// downstream client is enabled at LogLevelDebug and above.
type LogLevel int

const (
	LogLevelNone LogLevel = iota
	LogLevelInfo
	LogLevelDebug
	LogLevelVerbose
)

// Advanced options for configuring the Kahuna client
type Options struct {
	API                  string `json:"api"`
	LocalMode            bool   `json:"localMode"`
	LoggingInterval      time.Duration
	LoggingMaxBufferSize int
	LogLevel             LogLevel
	// IPAddress and UserAgent describe the device this process reports as;
	// they feed the country and device fields of the request metadata.
	IPAddress           string
	UserAgent           string
	OutputLoggerOptions OutputLoggerOptions
	IPCountryOptions    IPCountryOptions
	UAParserOptions     UAParserOptions
}

type OutputLoggerOptions struct {
	LogCallback func(message string, err error)
	EnableDebug bool
}

type IPCountryOptions struct {
	Disabled     bool // Fully disable IP to country lookup
	LazyLoad     bool // Load in background
	EnsureLoaded bool // Wait until loaded when needed
}

type UAParserOptions struct {
	Disabled     bool // Fully disable UA parser
	LazyLoad     bool // Load in background
	EnsureLoaded bool // Wait until loaded when needed
}
