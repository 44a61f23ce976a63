package genconfig

// ErrTrapMode selects whether and how the generated script installs an ERR trap.
type ErrTrapMode int

const (
	ErrTrapNone ErrTrapMode = iota
	ErrTrapRoot
	ErrTrapInherited
)

// ExitTrapMode selects whether and how the generated script installs an EXIT trap.
type ExitTrapMode int

const (
	ExitTrapNone ExitTrapMode = iota
	ExitTrapLog
	ExitTrapTempDir
	ExitTrapDeleteList
)

// UsageMode selects whether a print_help function is generated and how it is wired.
type UsageMode int

const (
	UsageNone UsageMode = iota
	UsageHelpFlag
	UsageAutoNoArgs
	UsageUnwired
)

// UtilsMode selects where shared utility functions are stored.
type UtilsMode int

const (
	UtilsEmbed UtilsMode = iota
	UtilsSeparateOverwrite
	UtilsSeparateSuffix
)

// Config describes one generation run. It is mutated only during elicitation
// and treated as frozen once composition starts.
type Config struct {
	UseEnv       bool         `json:"use_env"`
	Greadlink    bool         `json:"greadlink"`
	LoggingUtils bool         `json:"logging_utils"`
	SetE         bool         `json:"set_e"`
	SetX         bool         `json:"set_x"`
	ErrTrap      ErrTrapMode  `json:"err_trap"`
	ExitTrap     ExitTrapMode `json:"exit_trap"`
	Main         bool         `json:"main"`
	Options      bool         `json:"options"`
	Positionals  bool         `json:"positionals"`
	Usage        UsageMode    `json:"usage"`
	Dry          bool         `json:"dry"`
	Utils        UtilsMode    `json:"utils"`
}

// Default returns the configuration used when nothing was loaded and no
// question adjusted a field.
func Default() Config {
	return Config{
		UseEnv:       true,
		Greadlink:    false,
		LoggingUtils: true,
		SetE:         false,
		SetX:         false,
		ErrTrap:      ErrTrapNone,
		ExitTrap:     ExitTrapNone,
		Main:         false,
		Options:      true,
		Positionals:  true,
		Usage:        UsageHelpFlag,
		Dry:          false,
		Utils:        UtilsEmbed,
	}
}

// FieldNames returns the serialized key of every Config field, in declaration
// order. The order doubles as the stable key order of dumped configurations.
func FieldNames() []string {
	return []string{
		"use_env",
		"greadlink",
		"logging_utils",
		"set_e",
		"set_x",
		"err_trap",
		"exit_trap",
		"main",
		"options",
		"positionals",
		"usage",
		"dry",
		"utils",
	}
}
