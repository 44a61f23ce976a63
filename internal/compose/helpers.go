package compose

import (
	"fmt"

	"github.com/scriptsmith-labs/scriptsmith/internal/genconfig"
)

// loggingUtilsPart emits the leveled logging helpers. Routed to the utility
// writer when utilities are externalized.
func loggingUtilsPart(r *Request) error {
	if !r.Config.LoggingUtils {
		return nil
	}

	w := r.utilsTarget()

	w.Block(`# For internal use via the logging functions below.
#
# $1    String added between the program name and the message,
#       typically to specify the log level.
# $2    Printf-style format string.
# $3…n  Arguments for printf.
_f_log() {
    local prog`, false)

	w.Indent(1)
	if r.Config.Dry {
		w.Line(`prog=$(basename "$0"):${DRY:+ [DRY RUN]}`)
	} else {
		w.Line(`prog=$(basename "$0"):`)
	}
	w.Unindent(1)

	w.Block(`    printf "%s %s${2}\n" "$prog" "$1" "${@:3}"
}

# $1    Printf-style format string.
# $2…n  Arguments for printf.
log() {
    _f_log '   INFO  ' "$@"
}

# $1    Printf-style format string.
# $2…n  Arguments for printf.
warn() {
    _f_log 'WARNING  ' "$@" >&2
}

# $1    Printf-style format string.
# $2…n  Arguments for printf.
err() {
    _f_log '  ERROR  ' "$@" >&2
}

# Print a command before running it.
# (This function takes care of running it).
#
# $@    The words making up the command to run.
log_and_run() {
    log 'Running: %s' "${*@Q}"
    "$@"
}
`, false)
	return nil
}

// dryRunUtilsPart emits the dry-run helpers. Same routing as the logging
// helpers; its report line depends on whether those exist.
func dryRunUtilsPart(r *Request) error {
	if !r.Config.Dry {
		return nil
	}

	loggingCommand := `printf '[DRY RUN] Would have run: %s\n' "${*@Q}"`
	if r.Config.LoggingUtils {
		loggingCommand = `log 'Would have run: %s' "${*@Q}"`
	}

	w := r.utilsTarget()
	w.Block(fmt.Sprintf(`# Returns with 0 status if and only if
# the dry run mode is currently activated.
is_dry_run() {
    [[ $DRY ]]
}

# Only run a command if dry run mode is not activated.
# In dry run mode, log the command instead to show what
# would have been run in a normal context.
#
# $@    The words making up the command to potentially run.
run_if_not_dry() {
    if is_dry_run
    then
        %s
    else
        "$@"
    fi
}
`, loggingCommand), false)
	return nil
}

// librariesPart emits the sourcing instruction for the externalized utility
// file. Always on the main writer.
func librariesPart(r *Request) error {
	if r.Config.Utils == genconfig.UtilsEmbed {
		return nil
	}
	if r.Utils == nil {
		return fmt.Errorf("utility functions writer not defined")
	}

	instruction := fmt.Sprintf(`. "${BASEDIR:?}/%s"`, r.utilsBasename())
	if !r.Config.SetE {
		instruction += " || exit"
	}
	r.Main.Line(instruction)
	r.Main.Blank()
	return nil
}
