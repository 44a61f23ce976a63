package compose

// mainOpenPart opens the entry-point function, or emits a visual separator
// when the body stays at top level.
func mainOpenPart(r *Request) error {
	if r.Config.Main {
		r.Main.Line("main() {")
		r.Main.Indent(1)
	} else {
		r.Main.Line("# ================================")
		r.Main.Blank()
	}
	return nil
}

// parseCommandCallPart invokes parse_command and echoes the parsed values
// back. With nothing to parse, only the standalone help pre-scan may remain.
func parseCommandCallPart(r *Request) error {
	w := r.Main
	const theCall = `parse_command "$@"`

	switch {
	case r.Config.Options && r.Config.Positionals:
		w.Line(theCall)
		w.Blank()
		logOptionValues(r)
		logParameterValues(r)
		w.Blank()
	case r.Config.Options:
		w.Line(theCall)
		w.Blank()
		logOptionValues(r)
		w.Blank()
	case r.Config.Positionals:
		w.Line(theCall)
		logParameterValues(r)
		w.Blank()
	default:
		// Nothing to parse, so no function to call.
		// We may need to handle help requests, though.
		handleHelpWithoutOptionParsing(r, r.Config.Main)
	}
	return nil
}

func logOptionValues(r *Request) {
	w := r.Main
	if r.Config.LoggingUtils {
		w.Line(`log 'Yo: %q; Plop: %q' "$opt_yo" "$opt_plop"`)
		return
	}
	w.Line(`printf '%s: Yo: %q; Plop: %q\n' \`)
	w.Indent(2)
	w.Line(`"$(basename "$0")" "$opt_yo" "$opt_plop"`)
	w.Unindent(2)
}

func logParameterValues(r *Request) {
	w := r.Main
	if r.Config.LoggingUtils {
		w.Line(`log 'Foo: %q; Bar: %q' "$arg_foo" "$arg_bar"`)
		return
	}
	w.Line(`printf '%s: Foo: %q; Bar: %q\n' \`)
	w.Indent(2)
	w.Line(`"$(basename "$0")" "$arg_foo" "$arg_bar"`)
	w.Unindent(2)
}

// businessPart emits the placeholder business logic.
func businessPart(r *Request) error {
	prefix := ""
	if r.Config.Dry {
		prefix = "run_if_not_dry "
	}
	if r.Config.LoggingUtils {
		r.Main.Line(prefix + "log 'TODO'")
	} else {
		r.Main.Line(prefix + "echo 'TODO'")
	}
	return nil
}

// mainClosePart closes the entry-point function and invokes it, or emits the
// explicit zero-status exit.
func mainClosePart(r *Request) error {
	if r.Config.Main {
		r.Main.Line("return 0")
		r.Main.Unindent(1)
		r.Main.Block(`}

main "$@"`, false)
	} else {
		r.Main.Blank()
		r.Main.Line("exit 0")
	}
	return nil
}
