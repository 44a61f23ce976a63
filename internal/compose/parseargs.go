package compose

import (
	"github.com/scriptsmith-labs/scriptsmith/internal/genconfig"
)

// parseCommandPart emits the parse_command function in one of three mutually
// exclusive shapes selected by (options, positionals). With neither, no
// function is defined at all.
func parseCommandPart(r *Request) error {
	switch {
	case r.Config.Options && r.Config.Positionals:
		optionsAndPositionalsFunc(r)
	case r.Config.Options:
		optionsOnlyFunc(r)
	case r.Config.Positionals:
		positionalsOnlyFunc(r)
	}
	return nil
}

// optionsAndPositionalsFunc: flag parsing with residual positional capture,
// unknown-flag and missing-mandatory-positional error paths.
func optionsAndPositionalsFunc(r *Request) {
	w := r.Main
	w.Block(`# Fill up global “opt_*” and “arg_*” variables according to given
# options and positional parameters, and perform basic checks
# on the presence of mandatory info.
#
# $@    Arguments originally passed to the script itself.
parse_command() {`, false)
	w.Indent(1)
	printHelpIfNoArg(r)
	w.Block(`# Clear all option-related variables before parsing.
unset -v "${!opt_@}"

local param
local -a positionals=()
while (($# > 0))
do
    param=$1
    shift
    case $param in
        -y|--yo)
            opt_yo=1
            ;;

        -p|--plop)
            opt_plop=${1:?Missing argument for option: ${param}}
            shift
            ;;
`, false)

	caseArms(r, "-*")

	w.Indent(3)
	if r.Config.LoggingUtils {
		w.Line(`err 'Invalid option: %q' "$param"`)
	} else {
		w.Line(`printf '%s: Error: Invalid option: %q\n' "$(basename "$0")" "$param" >&2`)
	}
	w.Unindent(4)
	w.Block(`                exit 1
                ;;

            *)
                positionals+=("$param")
                ;;
        esac
    done

    set -- "${positionals[@]}"
    arg_foo=$1
    arg_bar=${2:-${DEFAULT_BAR}}

    if [[ -z $arg_foo ]]
    then`, true)
	w.Indent(2)
	if r.Config.Usage != genconfig.UsageNone {
		w.Line("print_help")
	}
	if r.Config.LoggingUtils {
		w.Line(`err 'Missing mandatory parameter: foo'`)
	} else {
		w.Line(`printf '%s: Error: Missing mandatory parameter: foo\n' "$(basename "$0")"`)
	}
	w.Line("exit 1")
	w.Unindent(1)
	w.Line("fi >&2")
	w.Unindent(1)
	w.Line("}")
	w.Blank()
}

// optionsOnlyFunc: flag parsing with no positional capture; any leftover
// token is an error.
func optionsOnlyFunc(r *Request) {
	w := r.Main
	w.Block(`# Fill up global “opt_*” variables according to given options
# and perform basic checks on the presence of mandatory info.
#
# $@    Arguments originally passed to the script itself.
parse_command() {`, false)
	w.Indent(1)
	printHelpIfNoArg(r)
	w.Block(`# Clear all option-related variables before parsing.
unset -v "${!opt_@}"

local param
while (($# > 0))
do
    param=$1
    shift
    case $param in
        -y|--yo)
            opt_yo=1
            ;;

        -p|--plop)
            opt_plop=${1:?Missing argument for option: ${param}}
            shift
            ;;
`, false)

	caseArms(r, "*")

	w.Indent(3)
	if r.Config.LoggingUtils {
		w.Line(`err 'Invalid option or extra parameter: %q' "$param"`)
	} else {
		w.Line(`printf '%s: Error: Invalid option or extra parameter: %q\n' "$(basename "$0")" "$param" >&2`)
	}
	w.Unindent(4)
	w.Block(`                exit 1
                ;;
        esac
    done
}`, false)
}

// positionalsOnlyFunc: no flag case statement, only positional assignment and
// the mandatory-argument check. Help requests are handled by a pre-scan.
func positionalsOnlyFunc(r *Request) {
	w := r.Main
	w.Block(`# Fill up global “arg_*” variables according to given arguments
# and perform basic checks on the presence of mandatory info.
#
# $@    Arguments originally passed to the script itself.
parse_command() {`, false)
	w.Indent(1)
	handleHelpWithoutOptionParsing(r, true)
	w.Block(`arg_foo=$1
arg_bar=${2:-${DEFAULT_BAR}}

if [[ -z $arg_foo ]]
then`, false)
	w.Indent(1)
	if r.Config.Usage != genconfig.UsageNone {
		w.Line("print_help")
	}
	if r.Config.LoggingUtils {
		w.Line(`err 'Missing mandatory parameter: foo'`)
	} else {
		w.Line(`printf '%s: Error: Missing mandatory parameter: foo\n' "$(basename "$0")" >&2`)
	}
	w.Line("exit 1")
	w.Unindent(1)
	w.Line("fi >&2")
	w.Unindent(1)
	w.Line("}")
	w.Blank()
}

// caseArms emits the conditional case arms shared by the two option-parsing
// shapes: --dry, -h/--help, and the opening of the catch-all arm. The blocks
// keep their authored indentation because they continue a case statement the
// surrounding blocks already opened.
func caseArms(r *Request, catchAll string) {
	w := r.Main

	if r.Config.Dry {
		w.Block(`        --dry)
            DRY=1
            ;;
`, true)
	}

	if r.Config.Usage == genconfig.UsageHelpFlag {
		w.Block(`        -h|--help)
            print_help
            exit 0
            ;;
`, true)
	}

	if r.Config.Usage != genconfig.UsageNone {
		w.Block("        "+catchAll+")\n            print_help >&2", true)
	} else {
		w.Block("        "+catchAll+")", true)
	}
}

// printHelpIfNoArg emits the auto-help check used when usage mode 2 was
// selected.
func printHelpIfNoArg(r *Request) {
	if r.Config.Usage != genconfig.UsageAutoNoArgs {
		return
	}
	w := r.Main
	w.Block(`if (($# == 0))
then
    print_help
    exit 1
fi`, false)
	w.Blank()
}

// handleHelpWithoutOptionParsing emits a pre-scan over all arguments matching
// -h or any letter-case variant of the long help spellings, for shapes that
// have no case statement to hang -h|--help on.
func handleHelpWithoutOptionParsing(r *Request, withLocalVars bool) {
	w := r.Main
	if r.Config.Usage == genconfig.UsageHelpFlag {
		if withLocalVars {
			w.Line("local arg")
		}
		w.Block(`for arg
do
    if [[ ${arg,,} = @(-h|+(-)help) ]]
    then
        print_help
        exit 0
    fi
done`, false)
		w.Blank()
	}
	printHelpIfNoArg(r)
}
