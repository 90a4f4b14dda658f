package ui

import (
	"errors"

	"github.com/AlecAivazis/survey/v2"

	"github.com/daxog/gitus/internal/apperr"
)

// PromptUntilValid prompts with message until validate accepts the
// input. A ValidationError is shown in red and the prompt re-issued; any
// other error aborts.
func PromptUntilValid(message string, validate func(string) error) (string, error) {
	for {
		var input string
		prompt := &survey.Input{Message: message}
		if err := survey.AskOne(prompt, &input); err != nil {
			return "", err
		}

		err := validate(input)
		if err == nil {
			return input, nil
		}
		var validationErr *apperr.ValidationError
		if errors.As(err, &validationErr) {
			Errorf("%s", validationErr.Reason)
			continue
		}
		return "", err
	}
}

// SelectOption prompts the user to pick one of options.
func SelectOption(message string, options []string) (string, error) {
	var choice string
	prompt := &survey.Select{
		Message: message,
		Options: options,
	}
	if err := survey.AskOne(prompt, &choice); err != nil {
		return "", err
	}
	return choice, nil
}

// Confirm prompts for yes/no confirmation
func Confirm(message string) (bool, error) {
	var confirmed bool
	prompt := &survey.Confirm{
		Message: message,
		Default: false,
	}
	if err := survey.AskOne(prompt, &confirmed); err != nil {
		return false, err
	}
	return confirmed, nil
}
