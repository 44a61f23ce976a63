package elicit

import (
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/scriptsmith-labs/scriptsmith/internal/logger"
)

// ErrCancelled reports that the operator aborted the run during elicitation.
// It is distinct from a validation failure: no reprompt, no output.
var ErrCancelled = errors.New("elicitation cancelled")

// noDefault marks a choice question the user is forced to answer.
const noDefault = -1

// readAnswer reads one line of operator input. End of input on the prompt
// stream means the operator walked away, which cancels the whole run. Any
// other read failure is a real error, not a cancellation.
func (e *Engine) readAnswer() (string, error) {
	line, err := e.in.ReadString('\n')
	if err != nil {
		if !errors.Is(err, io.EOF) {
			return "", fmt.Errorf("reading answer: %w", err)
		}
		if strings.TrimSpace(line) != "" {
			// A final unterminated line still counts as an answer.
			return strings.TrimSpace(line), nil
		}
		return "", ErrCancelled
	}
	return strings.TrimSpace(line), nil
}

// AskChoice presents a numbered list and returns the index of the selected
// option. A non-negative def marks that option as the default, selected by an
// empty answer. Invalid input (non-numeric or out of range) reprompts without
// bound; only valid input or cancellation ends the loop.
func (e *Engine) AskChoice(question string, options []string, def int) (int, error) {
	fmt.Fprintln(e.out)
	fmt.Fprintln(e.out, question)

	for i, option := range options {
		switch {
		case def == noDefault:
			fmt.Fprintf(e.out, "  %d. %s\n", i+1, option)
		case def == i:
			fmt.Fprintf(e.out, "  [Default] %d. %s\n", i+1, option)
		default:
			fmt.Fprintf(e.out, "            %d. %s\n", i+1, option)
		}
	}

	prompt := "Enter the number of your choice: "
	if def != noDefault {
		prompt = "Enter the number of your choice (empty for default): "
	}

	for {
		fmt.Fprint(e.out, prompt)
		answer, err := e.readAnswer()
		if err != nil {
			return 0, err
		}

		if answer == "" && def != noDefault {
			return def, nil
		}

		if choice, err := strconv.Atoi(answer); err == nil && choice >= 1 && choice <= len(options) {
			return choice - 1, nil
		}
		logger.Logger.Errorf("Invalid input. Please enter a number in 1-%d.", len(options))
	}
}

// AskYesNo asks a closed question. The answer is matched case-insensitively:
// containing "y" means yes, containing "n" means no, both is ambiguous and
// reprompts, neither falls back to the default when one is defined and
// reprompts otherwise.
func (e *Engine) AskYesNo(question string, def *bool) (bool, error) {
	instructions := "[y/n]"
	if def != nil {
		if *def {
			instructions = "[Y/n]"
		} else {
			instructions = "[y/N]"
		}
	}

	fmt.Fprintln(e.out)
	fmt.Fprintln(e.out, question, instructions)

	prompt := "Choice: "
	if def != nil {
		prompt = fmt.Sprintf("Choice (empty for default: %t): ", *def)
	}

	for {
		fmt.Fprint(e.out, prompt)
		answer, err := e.readAnswer()
		if err != nil {
			return false, err
		}

		lowered := strings.ToLower(answer)
		y := strings.Contains(lowered, "y")
		n := strings.Contains(lowered, "n")
		switch {
		case y && !n:
			return true, nil
		case n && !y:
			return false, nil
		case y && n:
			logger.Logger.Error("Ambiguous input. Please specify either \"y\" or \"n\".")
		default:
			if def != nil {
				return *def, nil
			}
			logger.Logger.Error("Invalid input. Please specify either \"y\" or \"n\".")
		}
	}
}
