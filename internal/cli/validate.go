package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	slidefix "github.com/goliatone/go-slidefix"
	"github.com/goliatone/go-slidefix/pkg/deck"
	"github.com/goliatone/go-slidefix/pkg/validation"
)

func newValidateCmd() *cobra.Command {
	var repairFirst bool

	cmd := &cobra.Command{
		Use:   "validate <deck.json|deck.yaml>",
		Short: "Validate a deck against the repaired-slide contract",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runValidate(cmd, args[0], repairFirst)
		},
	}

	cmd.Flags().BoolVar(&repairFirst, "repair", false, "run the repair engine before validating")

	return cmd
}

func runValidate(cmd *cobra.Command, path string, repairFirst bool) error {
	logger := loggerFrom(cmd.Context())

	d, err := deck.LoadFile(path)
	if err != nil {
		return err
	}
	if repairFirst {
		slidefix.RepairDeck(d)
	}

	invalid := 0
	for i := range d.Slides {
		result, err := validation.ValidateSlide(cmd.Context(), &d.Slides[i])
		if err != nil {
			return err
		}
		if result.Valid {
			logger.Debug("slide valid", "slide", i+1)
			continue
		}
		invalid++
		for _, issue := range result.Issues {
			if issue.Path != "" {
				fmt.Fprintf(cmd.OutOrStdout(), "slide %d: %s: %s\n", i+1, issue.Path, issue.Message)
				continue
			}
			fmt.Fprintf(cmd.OutOrStdout(), "slide %d: %s\n", i+1, issue.Message)
		}
	}

	if invalid > 0 {
		return fmt.Errorf("cli: %d of %d slides violate the contract", invalid, len(d.Slides))
	}
	logger.Info("deck valid", "slides", len(d.Slides))
	return nil
}
