package cli

import (
	"fmt"
	"os"

	charmlog "github.com/charmbracelet/log"
	"github.com/spf13/cobra"
)

var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

// SetVersion sets the build metadata displayed by --version, typically
// injected via ldflags.
func SetVersion(v, c, d string) {
	version = v
	commit = c
	date = d
}

// Execute runs the slidefix CLI and returns an error if any command fails.
func Execute() error {
	var verbose bool

	root := &cobra.Command{
		Use:          "slidefix",
		Short:        "slidefix repairs generated slide content trees",
		Long:         `slidefix takes slide decks produced by generative pipelines and makes them structurally valid and renderable: canonical component types, enforced content budgets, and feasible layout variants.`,
		Version:      version,
		SilenceUsage: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			level := charmlog.InfoLevel
			if verbose {
				level = charmlog.DebugLevel
			}
			cmd.SetContext(withLogger(cmd.Context(), newLogger(os.Stderr, level)))
		},
	}

	root.SetVersionTemplate(fmt.Sprintf("slidefix %s\ncommit: %s\nbuilt: %s\n", version, commit, date))
	root.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable verbose logging")

	root.AddCommand(newRepairCmd())
	root.AddCommand(newValidateCmd())
	root.AddCommand(newReportCmd())

	return root.Execute()
}
