// Package keys holds Viper key name constants.
package keys

// Program settings
const (
	Port       string = "port"
	ToolPath   string = "ytdlp"
	StaticDir  string = "static-dir"
	DebugLevel string = "debug-level"
	LogFile    string = "log-file"
)
