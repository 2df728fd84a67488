package main

import (
	"errors"
	"fmt"
	"io"
	"os"
	"runtime/debug"
	"time"

	"github.com/charmbracelet/huh/spinner"

	"picconv/internal/config"
	"picconv/internal/convert"
	"picconv/internal/crashlog"
	"picconv/internal/form"
	"picconv/internal/imageinfo"
	"picconv/internal/logging"
	"picconv/internal/model"
	"picconv/internal/notify"
)

type app struct {
	cfg     config.Config
	logger  *logging.Logger
	box     *notify.Box
	state   *form.State
	opts    convert.Options
	formOut io.Writer

	sourceSummary string
}

func main() {
	cfg := config.Parse()
	logger := logging.New(os.Stderr)
	box := notify.New(os.Stdout)

	defer func() {
		if r := recover(); r != nil {
			if err := crashlog.WritePanic(cfg.ErrorLogPath, r, debug.Stack()); err != nil {
				logger.Errorf("write error log: %v", err)
			}
			box.Error(fmt.Errorf("An error occurred: %v\nCheck %s for details.", r, cfg.ErrorLogPath))
			os.Exit(1)
		}
	}()

	a, err := newApp(cfg, logger, box)
	if err != nil {
		fatal(cfg, logger, box, err)
	}

	if !cfg.Interactive {
		if err := a.convertOnce(); err != nil {
			logger.Errorf("%v", err)
			box.Error(err)
			os.Exit(1)
		}
		return
	}

	if err := requireTerminal(); err != nil {
		fatal(cfg, logger, box, err)
	}
	if err := a.loop(); err != nil {
		fatal(cfg, logger, box, err)
	}
}

func fatal(cfg config.Config, logger *logging.Logger, box *notify.Box, err error) {
	logger.Errorf("%v", err)
	if logErr := crashlog.Write(cfg.ErrorLogPath, err); logErr != nil {
		logger.Errorf("write error log: %v", logErr)
	}
	box.Error(fmt.Errorf("An error occurred: %v\nCheck %s for details.", err, cfg.ErrorLogPath))
	os.Exit(1)
}

func newApp(cfg config.Config, logger *logging.Logger, box *notify.Box) (*app, error) {
	format, err := model.ParseFormat(cfg.Format)
	if err != nil {
		return nil, fmt.Errorf("parse --format: %w", err)
	}

	a := &app{
		cfg:     cfg,
		logger:  logger,
		box:     box,
		state:   form.New(),
		opts:    convert.Options{Quality: cfg.Quality},
		formOut: os.Stderr,
	}
	a.applyFlags(format)
	return a, nil
}

// applyFlags replays the flag values through the same handlers the form uses.
func (a *app) applyFlags(format model.Format) {
	if a.cfg.Input != "" {
		a.state.SelectSource(a.cfg.Input)
		a.describeSource()
	}
	a.state.ChangeFormat(format)
	if a.cfg.Output != "" {
		a.state.ChooseDestination(a.cfg.Output)
	}
}

func (a *app) describeSource() {
	info, err := imageinfo.Probe(a.state.Source)
	if err != nil {
		a.logger.Warnf("Probe %s failed: %v", a.state.Source, err)
		a.sourceSummary = fmt.Sprintf("Unreadable: %v", err)
		return
	}
	a.logger.Infof("Selected %s (%s %dx%d)", a.state.Source, info.Format, info.Width, info.Height)
	a.sourceSummary = info.Summary()
}

func (a *app) convertOnce() error {
	req, err := a.state.Request()
	if err != nil {
		return err
	}
	if !a.cfg.Overwrite && fileExists(req.Destination) {
		return fmt.Errorf("destination %s already exists; pass --overwrite to replace it", req.Destination)
	}
	return a.convert(req)
}

func (a *app) convert(req model.Request) error {
	started := time.Now()
	a.logger.Infof("Converting %s -> %s (%s)", req.Source, req.Destination, req.Format)

	var convErr error
	run := func() { convErr = convert.Convert(req, a.opts) }
	if a.cfg.Interactive {
		if err := spinner.New().Title(fmt.Sprintf("Converting to %s...", req.Format)).Action(run).Run(); err != nil {
			return fmt.Errorf("run progress spinner: %w", err)
		}
	} else {
		run()
	}

	if convErr != nil {
		a.logger.Errorf("Convert %s failed: %v", req.Source, convErr)
		if errors.Is(convErr, convert.ErrMissingSource) || errors.Is(convErr, convert.ErrMissingDestination) {
			return convErr
		}
		return fmt.Errorf("An error occurred: %w", convErr)
	}

	a.logger.Infof("Converted %s in %s", req.Destination, time.Since(started).Round(time.Millisecond))
	a.box.Success("Image converted successfully!\n%s", req.Destination)
	return nil
}

func requireTerminal() error {
	stat, err := os.Stdin.Stat()
	if err != nil {
		return fmt.Errorf("inspect stdin: %w", err)
	}
	if stat.Mode()&os.ModeCharDevice == 0 {
		return fmt.Errorf("interactive mode requires a terminal; use --interactive=false with --input and --output instead")
	}
	return nil
}

func fileExists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}
