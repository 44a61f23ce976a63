package emit

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/scriptsmith-labs/scriptsmith/internal/logger"
)

// Flush merges the buffered lines and commits them to the destination. A real
// path is overwritten and ends with a trailing newline; the main artifact
// additionally gets the owner-execute bit, where failure is only a warning.
// Standard output gets the merged text framed by labeled banner lines. A
// destination of os.DevNull short-circuits entirely so we never try to make
// /dev/null executable.
func (w *Writer) Flush(stdout io.Writer) error {
	result := strings.Join(w.lines, "\n")

	if w.dest == os.DevNull {
		return nil
	}

	if w.dest != "" {
		logger.Logger.Infof("Printing %s to %q...", w.label, w.dest)
		if err := os.WriteFile(w.dest, []byte(result+"\n"), 0644); err != nil {
			return fmt.Errorf("writing %s: %w", w.label, err)
		}
		if w.executable {
			if err := markOwnerExecutable(w.dest); err != nil {
				logger.Logger.Warnf("Failed to ensure %q is executable: %v", w.dest, err)
			}
		}
		logger.Logger.Info("Done.")
		return nil
	}

	what := strings.ToUpper(w.label)
	fmt.Fprintln(stdout)
	fmt.Fprintf(stdout, "==== [ ↓ %s START ↓ ] ====\n", what)
	fmt.Fprintln(stdout, result)
	fmt.Fprintf(stdout, "==== [ ↑  %s END  ↑ ] ====\n", what)
	return nil
}

// markOwnerExecutable adds the owner-execute permission bit to an existing file.
func markOwnerExecutable(path string) error {
	info, err := os.Stat(path)
	if err != nil {
		return err
	}
	return os.Chmod(path, info.Mode()|0100)
}

// Finalize drains the main writer unconditionally and the utility writer only
// when it exists and accumulated at least one line. The utility artifact gets
// the header (shebang) prepended and its trailing blank lines trimmed first.
func Finalize(main, utils *Writer, header string, stdout io.Writer) error {
	if err := main.Flush(stdout); err != nil {
		return err
	}
	if utils == nil || utils.Empty() {
		return nil
	}
	// Prepend the header at the last moment: doing it earlier would make an
	// otherwise empty utility buffer look like it has content worth emitting.
	utils.Prepend(header, "")
	utils.TrimTrailingBlanks()
	return utils.Flush(stdout)
}
