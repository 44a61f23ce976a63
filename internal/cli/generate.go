package cli

import (
	"fmt"
	"io"

	"github.com/scriptsmith-labs/scriptsmith/internal/compose"
	"github.com/scriptsmith-labs/scriptsmith/internal/elicit"
	"github.com/scriptsmith-labs/scriptsmith/internal/emit"
	"github.com/scriptsmith-labs/scriptsmith/internal/genconfig"
)

// runGenerate drives one generation run: configuration acquisition, then
// elicitation, then composition, then finalization, strictly in that order.
func runGenerate(stdin io.Reader, stdout io.Writer) error {
	level, base, err := resolveLevelAndBase()
	if err != nil {
		return err
	}

	cfg := genconfig.Default()
	if base != "" {
		cfg, err = genconfig.Load(base)
		if err != nil {
			return err
		}
	}

	engine := elicit.New(&cfg, stdin, stdout, outputPath != "")
	if err := engine.Run(level); err != nil {
		return err
	}

	// The configuration is frozen from here on.
	mainWriter := emit.NewWriter(indentSize, outputPath, "script template", true)

	var utilsWriter *emit.Writer
	if cfg.Utils != genconfig.UtilsEmbed {
		dest := emit.UtilsPath(outputPath, cfg.Utils == genconfig.UtilsSeparateOverwrite)
		utilsWriter = emit.NewWriter(indentSize, dest, "utils", false)
	}

	req := &compose.Request{
		Config: cfg,
		Main:   mainWriter,
		Utils:  utilsWriter,
	}
	if err := compose.Run(req); err != nil {
		return err
	}

	if err := emit.Finalize(mainWriter, utilsWriter, compose.Shebang(cfg), stdout); err != nil {
		return err
	}

	return genconfig.Dump(cfg, dumpConfPath, indentSize, stdout)
}

// resolveLevelAndBase applies the load/base flag semantics: loading a
// configuration forces batch level and treats the loaded object as
// authoritative, while a base configuration only seeds the question defaults.
func resolveLevelAndBase() (elicit.Level, string, error) {
	if loadConfPath != "" {
		return elicit.Batch, loadConfPath, nil
	}
	level, err := elicit.ParseLevel(levelName)
	if err != nil {
		return elicit.Batch, "", fmt.Errorf("invalid --level: %w", err)
	}
	return level, baseConfPath, nil
}
