package main

import (
	"errors"
	"time"

	"fyne.io/fyne/v2"
)

// Form field validators, shared by the create and edit forms. Each mirrors
// one rule of the declarative schema in models.EventFields.Validate.

func requiredValidator(message string) fyne.StringValidator {
	return func(text string) error {
		if text == "" {
			return errors.New(message)
		}
		return nil
	}
}

func maxLenValidator(max int, message string) fyne.StringValidator {
	return func(text string) error {
		if len(text) > max {
			return errors.New(message)
		}
		return nil
	}
}

func dateValidator(message string) fyne.StringValidator {
	return func(text string) error {
		if text == "" {
			return errors.New(message)
		}
		if _, err := time.ParseInLocation(dateInputLayout, text, time.Local); err != nil {
			return errors.New("Use the YYYY-MM-DD format")
		}
		return nil
	}
}
