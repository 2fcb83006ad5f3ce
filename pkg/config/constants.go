package config

// Environment variable names
const (
	EnvRenderer  = "WUMPUS_RENDERER"
	EnvSeed      = "WUMPUS_SEED"
	EnvSaveDir   = "WUMPUS_SAVE_DIR"
	EnvLogLevel  = "WUMPUS_LOG_LEVEL"
	EnvLogFormat = "WUMPUS_LOG_FORMAT"
	EnvLogFile   = "WUMPUS_LOG_FILE"
	EnvLocale    = "WUMPUS_LOCALE"
	EnvContent   = "WUMPUS_CONTENT"
	EnvPits      = "WUMPUS_PITS"
	EnvBats      = "WUMPUS_BATS"
)

// Defaults
const (
	DefaultRenderer  = "tui"
	DefaultLogLevel  = "info"
	DefaultLogFormat = "text"
	DefaultLogFile   = "wumpus.log"
	DefaultPits      = 2
	DefaultBats      = 2
)
