package compose

import (
	"path/filepath"

	"github.com/scriptsmith-labs/scriptsmith/internal/emit"
	"github.com/scriptsmith-labs/scriptsmith/internal/genconfig"
)

// Request bundles the frozen configuration with the two writers of one run.
// Utils is nil when utility functions are embedded in the main script.
type Request struct {
	Config genconfig.Config
	Main   *emit.Writer
	Utils  *emit.Writer
}

// fragment is one conditionally-emitted block of generated text.
type fragment struct {
	name string
	emit func(*Request) error
}

// fragments is the composition order, and it is a contract: later fragments
// reference identifiers emitted by earlier ones (the parse_command function
// calls err/log from the logging helpers, the trap bodies call them too, and
// the activation statements need the trap functions defined). Do not reorder.
var fragments = []fragment{
	{"shebang", shebangPart},
	{"flags", flagsPart},
	{"basedir", basedirPart},
	{"constants", constantsPart},
	{"logging-utils", loggingUtilsPart},
	{"dry-run-utils", dryRunUtilsPart},
	{"libraries", librariesPart},
	{"trap-definitions", trapDefinitionsPart},
	{"usage", usagePart},
	{"parse-command", parseCommandPart},
	{"main-open", mainOpenPart},
	{"trap-activation", trapActivationPart},
	{"parse-command-call", parseCommandCallPart},
	{"business", businessPart},
	{"main-close", mainClosePart},
}

// Run executes every fragment generator exactly once, in order, against the
// request. It only reads the configuration and appends to the writers, so
// running twice on fresh writers yields byte-identical output.
func Run(req *Request) error {
	for _, f := range fragments {
		if err := f.emit(req); err != nil {
			return err
		}
	}
	return nil
}

// Shebang returns the interpreter header line for the configured invocation
// style. The finalizer reuses it as the utility artifact's header.
func Shebang(cfg genconfig.Config) string {
	if cfg.UseEnv {
		return "#! /usr/bin/env bash"
	}
	return "#! /bin/bash"
}

// utilsTarget routes a shared-helper fragment: to the utility writer when
// utilities are externalized, to the main writer when embedded. A fragment
// writes entirely to one writer or the other, never split mid-fragment.
func (r *Request) utilsTarget() *emit.Writer {
	if r.Config.Utils == genconfig.UtilsEmbed || r.Utils == nil {
		return r.Main
	}
	return r.Utils
}

// utilsBasename names the file the sourcing instruction points at.
func (r *Request) utilsBasename() string {
	if r.Utils != nil && r.Utils.Dest() != "" {
		return filepath.Base(r.Utils.Dest())
	}
	return emit.CommonBasename
}
