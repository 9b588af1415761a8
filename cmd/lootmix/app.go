// SPDX-License-Identifier: MPL-2.0

package cmd

import (
	"context"
	"io"
	"os"

	"github.com/charmbracelet/log"

	"github.com/lootmix/lootmix/internal/app/generate"
	"github.com/lootmix/lootmix/internal/config"
)

type (
	// App wires CLI services and shared dependencies. It is the composition
	// root of the CLI layer: every Cobra handler receives an App and delegates
	// through its service interfaces.
	App struct {
		Config    ConfigProvider
		Generator GenerateService
		stdout    io.Writer
		stderr    io.Writer
	}

	// Dependencies defines the injection points for building an App. Nil
	// fields are replaced with production defaults by NewApp.
	Dependencies struct {
		Config ConfigProvider
		// Generator overrides the generation pipeline. When nil a
		// generate.Service logging at the requested verbosity is built per run.
		Generator GenerateService
		Stdout    io.Writer
		Stderr    io.Writer
	}

	// ConfigProvider loads configuration using explicit options.
	ConfigProvider interface {
		Load(ctx context.Context, opts config.LoadOptions) (*config.Config, error)
	}

	// GenerateService writes one datapack. Implementations must not write to
	// stdout; the CLI layer renders the result.
	GenerateService interface {
		Generate(ctx context.Context, req generate.Request) (generate.Result, error)
	}
)

// NewApp creates an App with defaults for omitted dependencies.
func NewApp(deps Dependencies) (*App, error) {
	if deps.Stdout == nil {
		deps.Stdout = os.Stdout
	}
	if deps.Stderr == nil {
		deps.Stderr = os.Stderr
	}
	if deps.Config == nil {
		deps.Config = config.NewProvider()
	}

	return &App{
		Config:    deps.Config,
		Generator: deps.Generator,
		stdout:    deps.Stdout,
		stderr:    deps.Stderr,
	}, nil
}

func (a *App) generator(logger *log.Logger) GenerateService {
	if a.Generator != nil {
		return a.Generator
	}
	return generate.NewService(logger)
}

// newLogger returns the stderr logger of one invocation.
func newLogger(w io.Writer, verbose bool) *log.Logger {
	logger := log.NewWithOptions(w, log.Options{
		Prefix: config.AppName,
	})
	if verbose {
		logger.SetLevel(log.DebugLevel)
	}
	return logger
}
