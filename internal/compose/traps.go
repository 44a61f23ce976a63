package compose

import (
	"github.com/scriptsmith-labs/scriptsmith/internal/genconfig"
)

// trapDefinitionsPart emits the err_trap/exit_trap function bodies. These are
// script-specific, so they always land on the main writer.
func trapDefinitionsPart(r *Request) error {
	if r.Config.ErrTrap != genconfig.ErrTrapNone {
		r.Main.Block(`# Executed when a command fails, with the same exceptions as for “set -e”.
# See “trap” documentation in “man bash” for details.
err_trap() {`, false)
		r.Main.Indent(1)
		if r.Config.LoggingUtils {
			r.Main.Line(`err 'An error occurred.'`)
		} else {
			r.Main.Line(`printf '%s: An error occurred.\n' "$(basename "$0")" >&2`)
		}
		r.Main.Unindent(1)
		r.Main.Line("}")
		r.Main.Blank()
	}

	if r.Config.ExitTrap != genconfig.ExitTrapNone {
		r.Main.Block(`# Executed upon exit, regardless of the cause.
exit_trap() {`, false)
		r.Main.Indent(1)
		switch r.Config.ExitTrap {
		case genconfig.ExitTrapLog:
			if r.Config.LoggingUtils {
				r.Main.Line(`log 'Exiting.'`)
			} else {
				r.Main.Line(`printf '%s: Exiting.\n' "$(basename "$0")"`)
			}
		case genconfig.ExitTrapTempDir:
			r.Main.Line(`rm -rf -- "$_temp_dir"`)
		case genconfig.ExitTrapDeleteList:
			r.Main.Line(`rm -rf -- "${_to_be_deleted[@]}"`)
		case genconfig.ExitTrapNone:
			// Unreachable: guarded above.
		}
		r.Main.Unindent(1)
		r.Main.Line("}")
		r.Main.Blank()
	}
	return nil
}

// trapActivationPart emits the trap statements. Runs inside the entry-point
// scope when a main function is generated.
func trapActivationPart(r *Request) error {
	if r.Config.ErrTrap != genconfig.ErrTrapNone {
		r.Main.Line("trap err_trap ERR")
		r.Main.Blank()
	}

	switch r.Config.ExitTrap {
	case genconfig.ExitTrapNone:

	case genconfig.ExitTrapLog:
		r.Main.Line("trap exit_trap EXIT")
		r.Main.Blank()

	case genconfig.ExitTrapTempDir:
		r.Main.Line("unset -v _temp_dir")
		r.Main.Line("trap exit_trap EXIT")
		if r.Config.SetE {
			r.Main.Line("_temp_dir=$(mktemp --directory)")
		} else {
			r.Main.Line("_temp_dir=$(mktemp --directory) || exit")
		}
		r.Main.Blank()

	case genconfig.ExitTrapDeleteList:
		r.Main.Line("unset -v _to_be_deleted")
		r.Main.Line("_to_be_deleted=()")
		r.Main.Line("trap exit_trap EXIT")
		if r.Config.SetE {
			r.Main.Line("_some_dir=$(mktemp --directory)")
		} else {
			r.Main.Line("_some_dir=$(mktemp --directory) || exit")
		}
		r.Main.Line(`_to_be_deleted+=("$_some_dir")`)
		r.Main.Blank()
	}
	return nil
}
