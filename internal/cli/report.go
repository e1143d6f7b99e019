package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	slidefix "github.com/goliatone/go-slidefix"
	"github.com/goliatone/go-slidefix/pkg/deck"
	"github.com/goliatone/go-slidefix/pkg/report"
)

func newReportCmd() *cobra.Command {
	var (
		output       string
		templatePath string
	)

	cmd := &cobra.Command{
		Use:   "report <deck.json|deck.yaml>",
		Short: "Repair a deck and render the repair report",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runReport(cmd, args[0], output, templatePath)
		},
	}

	cmd.Flags().StringVarP(&output, "output", "o", "", "output file (stdout if empty)")
	cmd.Flags().StringVar(&templatePath, "template", "", "custom pongo2 report template")

	return cmd
}

func runReport(cmd *cobra.Command, path, output, templatePath string) error {
	d, err := deck.LoadFile(path)
	if err != nil {
		return err
	}
	slidefix.RepairDeck(d)

	var options []report.Option
	if templatePath != "" {
		src, err := os.ReadFile(templatePath)
		if err != nil {
			return fmt.Errorf("cli: read template: %w", err)
		}
		options = append(options, report.WithTemplate(string(src)))
	}

	renderer, err := report.New(options...)
	if err != nil {
		return err
	}
	text, err := renderer.Render(d)
	if err != nil {
		return err
	}

	if output != "" {
		if err := os.WriteFile(output, []byte(text), 0o644); err != nil {
			return fmt.Errorf("cli: write report: %w", err)
		}
		return nil
	}
	fmt.Fprint(cmd.OutOrStdout(), text)
	return nil
}
