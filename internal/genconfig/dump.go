package genconfig

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/scriptsmith-labs/scriptsmith/internal/logger"
)

// stdoutSentinel is the dump target meaning "print to standard output".
const stdoutSentinel = "-"

// Dump serializes the configuration as JSON with a stable key order and the
// given indent width. An empty target is a no-op, the "-" sentinel prints the
// data to stdout framed by banners, anything else is a file path.
func Dump(cfg Config, target string, indent int, stdout io.Writer) error {
	if strings.TrimSpace(target) == "" {
		return nil
	}

	data, err := json.MarshalIndent(cfg, "", strings.Repeat(" ", indent))
	if err != nil {
		return fmt.Errorf("serializing configuration: %w", err)
	}

	if target == stdoutSentinel {
		fmt.Fprintln(stdout)
		fmt.Fprintln(stdout, "==== [ ↓ CONFIG START ↓ ] ====")
		fmt.Fprintln(stdout, string(data))
		fmt.Fprintln(stdout, "==== [ ↑  CONFIG END  ↑ ] ====")
		return nil
	}

	logger.Logger.Infof("Printing generator configuration to %q...", target)
	if err := os.WriteFile(target, append(data, '\n'), 0644); err != nil {
		return fmt.Errorf("writing configuration file: %w", err)
	}
	logger.Logger.Info("Done.")
	return nil
}
