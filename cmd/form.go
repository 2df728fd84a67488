package main

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"

	"picconv/internal/model"
)

type action string

const (
	actionSource      action = "source"
	actionFormat      action = "format"
	actionDestination action = "destination"
	actionConvert     action = "convert"
	actionQuit        action = "quit"
)

const pickerHeight = 12

// loop runs the main menu until the user quits. Errors from a single action
// are shown and the menu comes back; only a broken menu ends the loop.
func (a *app) loop() error {
	for {
		act, err := a.chooseAction()
		if err != nil {
			if errors.Is(err, huh.ErrUserAborted) {
				return nil
			}
			return fmt.Errorf("run main menu: %w", err)
		}

		var actErr error
		switch act {
		case actionSource:
			actErr = a.pickSource()
		case actionFormat:
			actErr = a.pickFormat()
		case actionDestination:
			actErr = a.pickDestination()
		case actionConvert:
			actErr = a.convertInteractively()
		case actionQuit:
			return nil
		}

		if actErr != nil && !errors.Is(actErr, huh.ErrUserAborted) {
			a.box.Error(actErr)
		}
	}
}

func (a *app) newForm(groups ...*huh.Group) *huh.Form {
	return huh.NewForm(groups...).
		WithAccessible(a.cfg.Accessible).
		WithProgramOptions(tea.WithOutput(a.formOut))
}

func (a *app) chooseAction() (action, error) {
	act := actionSource
	if a.state.Source != "" {
		act = actionConvert
	}

	err := a.newForm(huh.NewGroup(
		huh.NewSelect[action]().
			Title("picconv").
			Description(buildStatePreview(a.state.Source, a.state.Format, a.state.Destination, a.sourceSummary)).
			Options(
				huh.NewOption("Convert", actionConvert),
				huh.NewOption("Choose input image", actionSource),
				huh.NewOption("Change output format", actionFormat),
				huh.NewOption("Choose output location", actionDestination),
				huh.NewOption("Quit", actionQuit),
			).
			Value(&act),
	)).Run()
	return act, err
}

func (a *app) pickSource() error {
	path := a.state.Source
	err := a.newForm(huh.NewGroup(
		huh.NewFilePicker().
			Title("Input image").
			Description("Enter opens a directory or picks a file. Esc goes back.").
			CurrentDirectory(a.pickerDir()).
			AllowedTypes(model.InputExtensions).
			FileAllowed(true).
			DirAllowed(false).
			Height(pickerHeight).
			Value(&path),
	)).Run()
	if err != nil {
		return err
	}

	a.state.SelectSource(path)
	if a.state.Source != "" {
		a.describeSource()
	}
	return nil
}

func (a *app) pickFormat() error {
	format := a.state.Format
	err := a.newForm(huh.NewGroup(
		huh.NewSelect[model.Format]().
			Title("Output format").
			Options(formatOptions()...).
			Value(&format),
	)).Run()
	if err != nil {
		return err
	}

	a.state.ChangeFormat(format)
	return nil
}

func (a *app) pickDestination() error {
	dir, file := a.state.SaveAsDefaults(homeDir())
	path := filepath.Join(dir, file)

	err := a.newForm(huh.NewGroup(
		huh.NewInput().
			Title("Output location").
			Description(fmt.Sprintf("%s files; .%s is appended when missing.", a.state.Format, a.state.Format.Ext())).
			Value(&path).
			Validate(func(s string) error {
				if strings.TrimSpace(s) == "" {
					return errors.New("enter a destination path")
				}
				return nil
			}),
	)).Run()
	if err != nil {
		return err
	}

	a.state.ChooseDestination(path)
	return nil
}

func (a *app) convertInteractively() error {
	req, err := a.state.Request()
	if err != nil {
		return err
	}

	if fileExists(req.Destination) {
		overwrite := false
		err := a.newForm(huh.NewGroup(
			huh.NewConfirm().
				Title(fmt.Sprintf("%s already exists.", filepath.Base(req.Destination))).
				Description("Do you want to replace it?").
				Affirmative("Overwrite").
				Negative("Cancel").
				Value(&overwrite),
		)).Run()
		if err != nil {
			return err
		}
		if !overwrite {
			a.logger.Infof("Kept existing %s", req.Destination)
			a.box.Info("Conversion cancelled; %s was left untouched.", req.Destination)
			return nil
		}
		a.logger.Warnf("Overwriting %s", req.Destination)
	}

	return a.convert(req)
}

func (a *app) pickerDir() string {
	if a.state.Source != "" {
		return filepath.Dir(a.state.Source)
	}
	if wd, err := os.Getwd(); err == nil {
		return wd
	}
	return "."
}

func formatOptions() []huh.Option[model.Format] {
	options := make([]huh.Option[model.Format], 0, len(model.Formats))
	for _, f := range model.Formats {
		options = append(options, huh.NewOption(f.String(), f))
	}
	return options
}

func buildStatePreview(source string, format model.Format, destination, sourceSummary string) string {
	var b strings.Builder

	b.WriteString("Input:  ")
	if source == "" {
		b.WriteString("(none)")
	} else {
		b.WriteString(source)
	}
	if sourceSummary != "" {
		for _, line := range strings.Split(sourceSummary, "\n") {
			b.WriteString("\n        " + line)
		}
	}

	b.WriteString(fmt.Sprintf("\nFormat: %s", format))

	b.WriteString("\nOutput: ")
	if destination == "" {
		b.WriteString("(none)")
	} else {
		b.WriteString(destination)
	}

	return b.String()
}

func homeDir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return "."
	}
	return home
}
