package cli

import (
	"errors"

	"github.com/AlecAivazis/survey/v2"
	"github.com/AlecAivazis/survey/v2/terminal"
)

// ErrPromptInterrupted is returned when the operator cancels an interactive
// prompt.
var ErrPromptInterrupted = errors.New("cli: prompt interrupted")

// PromptDriver abstracts the interactive prompts so command logic can be
// tested without a terminal.
type PromptDriver interface {
	Confirm(message string, preset bool) (bool, error)
	Select(message string, options []string, defaultIndex int) (int, error)
}

type surveyDriver struct{}

func (surveyDriver) Confirm(message string, preset bool) (bool, error) {
	var out bool
	prompt := &survey.Confirm{Message: message, Default: preset}
	if err := survey.AskOne(prompt, &out); err != nil {
		return false, translateSurveyErr(err)
	}
	return out, nil
}

func (surveyDriver) Select(message string, options []string, defaultIndex int) (int, error) {
	if defaultIndex < 0 || defaultIndex >= len(options) {
		defaultIndex = 0
	}
	var out string
	prompt := &survey.Select{
		Message: message,
		Options: options,
		Default: options[defaultIndex],
	}
	if err := survey.AskOne(prompt, &out); err != nil {
		return 0, translateSurveyErr(err)
	}
	for i, option := range options {
		if option == out {
			return i, nil
		}
	}
	return defaultIndex, nil
}

func translateSurveyErr(err error) error {
	if errors.Is(err, terminal.InterruptErr) {
		return ErrPromptInterrupted
	}
	return err
}
