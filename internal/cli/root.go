package cli

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/scriptsmith-labs/scriptsmith/internal/branding"
	"github.com/scriptsmith-labs/scriptsmith/internal/config"
)

var (
	buildVersion string
	buildCommit  string
	buildDate    string
)

var (
	indentSize   int
	outputPath   string
	levelName    string
	loadConfPath string
	baseConfPath string
	dumpConfPath string
)

var rootCmd = &cobra.Command{
	Use:   branding.CLIName(),
	Short: branding.Description(),
	Long: branding.DisplayName() + ` asks a configurable amount of questions and renders the answers
into a structured Bash script skeleton, optionally splitting shared utility
functions into a companion file next to the script.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		// Flags win; otherwise fall back to the persisted user settings.
		if !cmd.Flags().Changed("indent-size") {
			indentSize = config.IndentSize()
		}
		if !cmd.Flags().Changed("level") {
			levelName = config.Level()
		}
		return runGenerate(os.Stdin, os.Stdout)
	},
}

func init() {
	rootCmd.Flags().IntVarP(&indentSize, "indent-size", "i", 4,
		"Number of spaces used to indent the generated script template")
	rootCmd.Flags().StringVarP(&outputPath, "output", "o", "",
		"Print script template to a file instead of standard output")
	rootCmd.Flags().StringVarP(&levelName, "level", "l", "default",
		"Level of details of the questions asked (batch, default, advanced, full, or b/d/a/f); use \"batch\" for non-interactive generation")
	rootCmd.Flags().StringVarP(&loadConfPath, "load-config", "c", "",
		"Load a configuration JSON file previously generated via --dump-config, and skip all questions; JSON can also directly be given as a string")
	rootCmd.Flags().StringVarP(&baseConfPath, "base-config", "b", "",
		"Load a configuration JSON file previously generated via --dump-config, use it as a base to set default values, and still ask questions as usual afterward")
	rootCmd.Flags().StringVarP(&dumpConfPath, "dump-config", "d", "",
		"Print or save, as JSON data, the configuration resulting from the given answers; give \"-\" as path to print to standard output")

	// Loading a configuration as-is and loading it as a base are different
	// intents; make the user choose explicitly.
	rootCmd.MarkFlagsMutuallyExclusive("load-config", "base-config")
}

// Execute runs the root command with build info injected via ldflags.
func Execute(version, commit, date string) error {
	buildVersion = version
	buildCommit = commit
	buildDate = date
	config.Load()
	return rootCmd.Execute()
}
