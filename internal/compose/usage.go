package compose

import (
	"github.com/scriptsmith-labs/scriptsmith/internal/genconfig"
)

// usagePart emits the print_help function. The here-doc blurb is authored at
// 2-space steps regardless of the user's chosen width, so the writer's width
// is narrowed for its duration and restored afterwards.
func usagePart(r *Request) error {
	cfg := r.Config
	if cfg.Usage == genconfig.UsageNone {
		return nil
	}

	w := r.Main
	w.Block(`print_help() {
    local prog
    prog=$(printf '%q' "$0")
    cat << _HELP_`, false)

	// Now entering the Bash here-document part.
	initialWidth := w.IndentWidth
	w.IndentWidth = 2
	defer func() { w.IndentWidth = initialWidth }()

	w.Blank()
	w.Indent(1)
	w.Line("Perform blah blah on a blah blah.")
	w.Blank()
	w.Line("Usage:")
	w.Indent(1)

	switch {
	case cfg.Options && cfg.Positionals:
		w.Line("${prog} [OPTIONS]... FOO [BAR]")
	case cfg.Options:
		w.Line("${prog} [OPTIONS]...")
	case cfg.Positionals:
		w.Line("${prog} FOO [BAR]")
	default:
		// Nothing to parse, so no arguments to document.
		w.Line("<No arguments>")
	}
	w.Unindent(1)
	w.Blank()

	if cfg.Positionals {
		w.Line("Arguments:")
		w.Indent(1)
		w.Line("FOO     The foo to process.")
		w.Line("BAR     (Optional) A bar in which to write the plop.")
		w.Line("        This allows to blah blah.")
		w.Line(`        Default: “${DEFAULT_BAR}”`)
		w.Unindent(1)
		w.Blank()
	}

	if cfg.Usage == genconfig.UsageHelpFlag || cfg.Options {
		w.Line("Options:")
		w.Indent(1)
	}

	if cfg.Options {
		w.Line("-y, --yo            Turn on yo mode.")
		w.Line("-p, --plop PLOP     Use PLOP as the plop.")
		if cfg.Dry {
			w.Line("--dry               Turn dry mode on.")
		}
	}

	if cfg.Usage == genconfig.UsageHelpFlag {
		w.Line("-h, --help          Print this message and exit.")
	}

	if cfg.Usage == genconfig.UsageHelpFlag || cfg.Options {
		w.Unindent(1)
		w.Blank()
	}

	w.Line("Environment variables:")
	w.Indent(1)
	w.Line("GIT_USER    Username for requests to GitHub.")
	if cfg.Dry {
		w.Line("DRY         If not empty, turn dry mode on.")
		w.Line(`            “Important” commands will be skipped.`)
	}

	w.Unindent(2)

	w.Blank()
	w.Line("_HELP_")
	w.Line("}")
	w.Blank()
	return nil
}
