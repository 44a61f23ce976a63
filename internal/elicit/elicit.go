package elicit

import (
	"bufio"
	"fmt"
	"io"

	"github.com/scriptsmith-labs/scriptsmith/internal/emit"
	"github.com/scriptsmith-labs/scriptsmith/internal/genconfig"
)

// Engine walks the operator through the level-gated question sequence,
// mutating the configuration in place. Every question's default is seeded
// from the configuration's current value, so a loaded base configuration
// transparently becomes the set of proposed answers.
type Engine struct {
	cfg *genconfig.Config
	in  *bufio.Reader
	out io.Writer

	// hasOutputFile simplifies the utils question to a plain yes/no when the
	// main artifact goes to stdout, since file splitting is meaningless then.
	hasOutputFile bool
}

// New creates an Engine bound to one prompt stream pair.
func New(cfg *genconfig.Config, in io.Reader, out io.Writer, hasOutputFile bool) *Engine {
	return &Engine{
		cfg:           cfg,
		in:            bufio.NewReader(in),
		out:           out,
		hasOutputFile: hasOutputFile,
	}
}

// questionGroup ties a block of questions to the minimum level that unlocks
// it. Groups run in fixed order; a group runs when the requested level is at
// least its tag. Batch unlocks nothing.
type questionGroup struct {
	minLevel Level
	ask      func(*Engine) error
}

var questionGroups = []questionGroup{
	{Default, (*Engine).askDefaultLevel},
	{Advanced, (*Engine).askAdvancedLevel},
	{Full, (*Engine).askFullLevel},
}

// Run asks every question unlocked by the requested level, in fixed group
// order. At Batch level the configuration is used as-is.
func (e *Engine) Run(level Level) error {
	for _, group := range questionGroups {
		if level < group.minLevel {
			continue
		}
		if err := group.ask(e); err != nil {
			return err
		}
	}
	return nil
}

// askDefaultLevel holds the questions that are always asked, unless pure
// batch mode was selected.
func (e *Engine) askDefaultLevel() error {
	var err error

	e.cfg.LoggingUtils, err = e.AskYesNo("Add logging utils?", boolPtr(e.cfg.LoggingUtils))
	if err != nil {
		return err
	}
	e.cfg.Options, err = e.AskYesNo("Support options?", boolPtr(e.cfg.Options))
	if err != nil {
		return err
	}
	e.cfg.Positionals, err = e.AskYesNo("Support positional parameters?", boolPtr(e.cfg.Positionals))
	if err != nil {
		return err
	}

	usage, err := e.AskChoice(
		"Generate a \"print_help\" function?",
		[]string{
			"No",
			"Yes, tied to \"-h\" and \"--help\" options",
			"Yes, and call it if no argument is given",
			"Yes, but let me call it the way I want later",
		},
		int(e.cfg.Usage),
	)
	if err != nil {
		return err
	}
	e.cfg.Usage = genconfig.UsageMode(usage)

	if e.hasOutputFile {
		utils, err := e.AskChoice(
			"Where should utility functions be stored?",
			[]string{
				"Within the script itself",
				fmt.Sprintf("Within a %q file alongside the script (overwrite if it exists)", emit.CommonBasename),
				fmt.Sprintf("Within a %q file alongside the script (add suffix if it exists)", emit.CommonBasename),
			},
			int(e.cfg.Utils),
		)
		if err != nil {
			return err
		}
		e.cfg.Utils = genconfig.UtilsMode(utils)
	} else {
		// Simplify the question somewhat because no files get created anyway.
		embed, err := e.AskYesNo(
			"Should utility functions be stored in the script itself? (vs. separately)",
			boolPtr(e.cfg.Utils == genconfig.UtilsEmbed),
		)
		if err != nil {
			return err
		}
		// Map the yes/no answer back onto the multi-choice field, as if the
		// question had not been simplified.
		if embed {
			e.cfg.Utils = genconfig.UtilsEmbed
		} else {
			e.cfg.Utils = genconfig.UtilsSeparateOverwrite
		}
	}

	return nil
}

// askAdvancedLevel holds the questions only asked at advanced or full level.
func (e *Engine) askAdvancedLevel() error {
	var err error

	e.cfg.SetE, err = e.AskYesNo(
		"Add \"set -e\"? "+
			"WARNING: Make sure you understand the errexit pitfalls "+
			"(see BashFAQ/105) before activating this.",
		boolPtr(e.cfg.SetE),
	)
	if err != nil {
		return err
	}
	e.cfg.SetX, err = e.AskYesNo("Add \"set -x\"? (Log executed commands to stderr.)", boolPtr(e.cfg.SetX))
	if err != nil {
		return err
	}

	errTrap, err := e.AskChoice(
		"Add an error (ERR) trap? NB: Can be hard to master.",
		[]string{
			"No",
			"Yes, root level only",
			"Yes, inherited by functions, subshells, etc. (\"set -E\")",
		},
		int(e.cfg.ErrTrap),
	)
	if err != nil {
		return err
	}
	e.cfg.ErrTrap = genconfig.ErrTrapMode(errTrap)

	exitTrap, err := e.AskChoice(
		"Add an exit trap? (Typically for cleanup or logging purposes.)",
		[]string{
			"No",
			"Yes, logging only",
			"Yes, with a temporary directory",
			"Yes, with a dynamic list of files or directories to delete",
		},
		int(e.cfg.ExitTrap),
	)
	if err != nil {
		return err
	}
	e.cfg.ExitTrap = genconfig.ExitTrapMode(exitTrap)

	e.cfg.Dry, err = e.AskYesNo("Implement a \"dry run\" mode?", boolPtr(e.cfg.Dry))
	return err
}

// askFullLevel holds the most technical or niche questions, only asked when
// the user really wanted them to be.
func (e *Engine) askFullLevel() error {
	var err error

	e.cfg.UseEnv, err = e.AskYesNo("Use env-based shebang?", boolPtr(e.cfg.UseEnv))
	if err != nil {
		return err
	}
	e.cfg.Greadlink, err = e.AskYesNo("Support MacOS' \"greadlink\"?", boolPtr(e.cfg.Greadlink))
	if err != nil {
		return err
	}
	e.cfg.Main, err = e.AskYesNo(
		"Use a \"main\" function? "+
			"NB: Its local variables are still visible from within subfunctions, "+
			"so main functions are of debatable usefulness.",
		boolPtr(e.cfg.Main),
	)
	return err
}

func boolPtr(b bool) *bool { return &b }
