package config

const (
	defaultLogLevel       = "info"
	defaultLogFormat      = FormatConsole
	defaultColor          = ColorAuto
	defaultMinFuncNameCol = 120
	defaultTopLevel       = "main"
	defaultIndentSpaces   = 4
	defaultDateFormat     = "2006-01-02 15:04:05"
)

// Supported values for logging.format.
const (
	FormatConsole = "console"
	FormatJSON    = "json"
)

// Supported values for logging.color.
const (
	ColorAuto   = "auto"
	ColorAlways = "always"
	ColorNever  = "never"
)

// Default returns a Config populated with repository defaults.
func Default() Config {
	return Config{
		Logging: Logging{
			Level:  defaultLogLevel,
			Format: defaultLogFormat,
			Color:  defaultColor,
		},
		Render: Render{
			MinFuncNameCol: defaultMinFuncNameCol,
			TopLevel:       defaultTopLevel,
			IndentSpaces:   defaultIndentSpaces,
			DateFormat:     defaultDateFormat,
		},
	}
}
