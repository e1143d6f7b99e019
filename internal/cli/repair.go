package cli

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/goliatone/go-slidefix/pkg/deck"
	"github.com/goliatone/go-slidefix/pkg/layout"
	"github.com/goliatone/go-slidefix/pkg/repair"
	"github.com/goliatone/go-slidefix/pkg/report"
	"github.com/goliatone/go-slidefix/pkg/slide"
)

type repairOptions struct {
	output      string
	reportPath  string
	interactive bool

	prompts PromptDriver
}

func newRepairCmd() *cobra.Command {
	return newRepairCmdWithPrompts(surveyDriver{})
}

func newRepairCmdWithPrompts(prompts PromptDriver) *cobra.Command {
	opts := &repairOptions{prompts: prompts}

	cmd := &cobra.Command{
		Use:   "repair <deck.json|deck.yaml>",
		Short: "Repair a generated slide deck",
		Long:  "Repair loads a deck document, runs every slide through the repair engine, and writes the canonical JSON result.",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runRepair(cmd, args[0], opts)
		},
	}

	cmd.Flags().StringVarP(&opts.output, "output", "o", "", "output file (stdout if empty)")
	cmd.Flags().StringVar(&opts.reportPath, "report", "", "also write a repair report to this file")
	cmd.Flags().BoolVarP(&opts.interactive, "interactive", "i", false, "confirm repairs per slide and offer layout overrides")

	return cmd
}

func runRepair(cmd *cobra.Command, path string, opts *repairOptions) error {
	logger := loggerFrom(cmd.Context())

	d, err := deck.LoadFile(path)
	if err != nil {
		return err
	}
	logger.Debug("deck loaded", "path", path, "slides", len(d.Slides))

	engine := repair.New()
	for i := range d.Slides {
		s := &d.Slides[i]
		if s.Order <= 0 {
			s.Order = i + 1
		}

		if opts.interactive {
			proceed, err := opts.prompts.Confirm(fmt.Sprintf("Repair slide %d (%s)?", i+1, displayTitle(s.Title)), true)
			if err != nil {
				if errors.Is(err, ErrPromptInterrupted) {
					return err
				}
				return fmt.Errorf("cli: prompt: %w", err)
			}
			if !proceed {
				logger.Info("slide skipped", "slide", i+1)
				continue
			}
			if err := promptVariantOverride(opts.prompts, s); err != nil {
				return err
			}
		}

		engine.Repair(s)
		logger.Debug("slide repaired", "slide", i+1, "variant", s.Router.LayoutVariant, "warnings", len(s.Warnings))
	}

	data, err := d.EncodeJSON()
	if err != nil {
		return err
	}
	if opts.output != "" {
		if err := os.WriteFile(opts.output, data, 0o644); err != nil {
			return fmt.Errorf("cli: write output: %w", err)
		}
		logger.Info("repaired deck written", "path", opts.output)
	} else {
		fmt.Fprint(cmd.OutOrStdout(), string(data))
	}

	if opts.reportPath != "" {
		renderer, err := report.New()
		if err != nil {
			return err
		}
		text, err := renderer.Render(d)
		if err != nil {
			return err
		}
		if err := os.WriteFile(opts.reportPath, []byte(text), 0o644); err != nil {
			return fmt.Errorf("cli: write report: %w", err)
		}
		logger.Info("repair report written", "path", opts.reportPath)
	}

	return nil
}

func promptVariantOverride(prompts PromptDriver, s *slide.Slide) error {
	variants := layout.Variants()
	options := make([]string, 0, len(variants)+1)
	options = append(options, "(keep "+s.Router.LayoutVariant+")")
	for _, v := range variants {
		options = append(options, string(v))
	}

	choice, err := prompts.Select("Layout variant", options, 0)
	if err != nil {
		return err
	}
	if choice > 0 {
		s.Router.LayoutVariant = options[choice]
	}
	return nil
}

func displayTitle(title string) string {
	if title == "" {
		return "untitled"
	}
	return title
}
