package genconfig

import (
	"encoding/json"
	"fmt"
	"os"
	"sort"
	"strings"

	"github.com/scriptsmith-labs/scriptsmith/internal/logger"
)

// ConfigError reports unrecognized fields in a loaded configuration. Its
// message enumerates the valid field names so the caller can fix the input.
type ConfigError struct {
	Unknown []string
}

func (e *ConfigError) Error() string {
	return fmt.Sprintf("unrecognized configuration field(s): %s (valid fields are: %s)",
		strings.Join(e.Unknown, ", "),
		strings.Join(FieldNames(), ", "))
}

// Load builds a Config from a serialized snapshot. The argument is either a
// raw JSON object (detected by a leading brace) or a path to a JSON file.
// Absent fields keep their Default() value; unknown fields fail with a
// *ConfigError; out-of-range values fail with the schema issues.
func Load(pathOrJSON string) (Config, error) {
	var data []byte
	if strings.HasPrefix(strings.TrimSpace(pathOrJSON), "{") {
		logger.Logger.Infof("Parsing the given configuration string... (%d characters)", len(pathOrJSON))
		data = []byte(pathOrJSON)
	} else {
		logger.Logger.Infof("Loading generator configuration from %q...", pathOrJSON)
		b, err := os.ReadFile(pathOrJSON)
		if err != nil {
			return Config{}, fmt.Errorf("reading configuration file: %w", err)
		}
		data = b
	}

	cfg, err := parse(data)
	if err != nil {
		return Config{}, err
	}
	logger.Logger.Info("Done.")
	return cfg, nil
}

// parse decodes and validates one JSON object into a Config seeded from the
// defaults.
func parse(data []byte) (Config, error) {
	// Key check first so unknown fields get the friendlier enumerating error
	// instead of the schema's additionalProperties message.
	var raw map[string]json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		return Config{}, fmt.Errorf("parsing configuration JSON: %w", err)
	}

	known := make(map[string]bool, len(FieldNames()))
	for _, name := range FieldNames() {
		known[name] = true
	}
	var unknown []string
	for key := range raw {
		if !known[key] {
			unknown = append(unknown, key)
		}
	}
	if len(unknown) > 0 {
		sort.Strings(unknown)
		return Config{}, &ConfigError{Unknown: unknown}
	}

	issues, err := validate(data)
	if err != nil {
		return Config{}, err
	}
	if len(issues) > 0 {
		msgs := make([]string, len(issues))
		for i, issue := range issues {
			msgs[i] = issue.String()
		}
		return Config{}, fmt.Errorf("invalid configuration: %s", strings.Join(msgs, "; "))
	}

	cfg := Default()
	if err := json.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("decoding configuration: %w", err)
	}
	return cfg, nil
}
