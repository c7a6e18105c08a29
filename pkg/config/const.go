package config

const (
	AppName           = "countdown"
	CliConfigFileName = "countdown"
	DotConfigDirName  = ".countdown"
	EnvPrefix         = "COUNTDOWN"

	DefaultTimezone = "Local"
	DefaultLogLevel = "Info"
	DefaultLogFile  = "/dev/stderr"
)

// Configuration keys, also used as flag names where a flag exists.
const (
	TargetKey   = "target"
	TimezoneKey = "timezone"
	LogsLevel   = "logs.level"
	LogsFile    = "logs.file"
)

// Flag names.
const (
	TargetFlag    = "target"
	TimezoneFlag  = "timezone"
	ConfigFlag    = "config"
	LogsLevelFlag = "logs-level"
	LogsFileFlag  = "logs-file"
)
