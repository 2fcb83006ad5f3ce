package logger

// Log level string values
const (
	LogLevelDebug   = "debug"
	LogLevelInfo    = "info"
	LogLevelWarn    = "warn"
	LogLevelWarning = "warning"
	LogLevelError   = "error"
)

// Log format string values
const (
	LogFormatJSON = "json"
	LogFormatText = "text"
)

const (
	GameName       = "wumpus"
	DefaultVersion = "dev"
)

// Log attribute keys
const (
	AttrKeyGame      = "game"
	AttrKeyVersion   = "version"
	AttrKeySessionID = "session_id"
)
