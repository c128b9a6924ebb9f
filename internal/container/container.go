// Package container wires the application's dependencies from configuration
// so that commands receive them ready to use.
package container

import (
	"fmt"

	"fjacquet/pain-gen/internal/config"
	"fjacquet/pain-gen/internal/generator"
	"fjacquet/pain-gen/internal/holidays"
	"fjacquet/pain-gen/internal/input"
	"fjacquet/pain-gen/internal/logging"

	"github.com/google/uuid"
)

// Container holds the wired dependencies. It is immutable after creation.
type Container struct {
	logger    logging.Logger
	config    *config.Config
	store     *holidays.Store
	loader    *input.Loader
	generator *generator.Generator
}

// NewContainer builds the logger from cfg and wires everything else.
func NewContainer(cfg *config.Config) (*Container, error) {
	if cfg == nil {
		return nil, fmt.Errorf("configuration cannot be nil")
	}
	return NewContainerWithLogger(cfg, config.ConfigureLoggingFromConfig(cfg))
}

// NewContainerWithLogger wires the dependencies around an existing logger.
// Every log line of the run carries the same run_id.
func NewContainerWithLogger(cfg *config.Config, base logging.Logger) (*Container, error) {
	if cfg == nil {
		return nil, fmt.Errorf("configuration cannot be nil")
	}
	if base == nil {
		return nil, fmt.Errorf("logger cannot be nil")
	}

	logger := base.WithField(logging.FieldRunID, uuid.NewString())

	store := holidays.NewStore(cfg.Holidays.File, logger)
	extra, err := store.Load()
	if err != nil {
		return nil, fmt.Errorf("failed to load holidays: %w", err)
	}
	provider := holidays.NewProvider(cfg.Holidays.National, extra)

	gen := generator.New(provider, generator.Options{
		StripIDSeparators: cfg.Debtor.StripIDSeparators,
		StrictValidation:  cfg.Validation.Strict,
		IndentWidth:       cfg.Output.Indent,
		FilePrefix:        cfg.Output.FilePrefix,
	}, logger)

	logger.Debug("Container initialized",
		logging.F("national_holidays", cfg.Holidays.National),
		logging.F("extra_holiday_countries", len(extra)))

	return &Container{
		logger:    logger,
		config:    cfg,
		store:     store,
		loader:    input.NewLoader(logger),
		generator: gen,
	}, nil
}

func (c *Container) GetLogger() logging.Logger {
	return c.logger
}

func (c *Container) GetConfig() *config.Config {
	return c.config
}

// GetHolidayStore returns the store behind the extra closing days.
func (c *Container) GetHolidayStore() *holidays.Store {
	return c.store
}

func (c *Container) GetLoader() *input.Loader {
	return c.loader
}

func (c *Container) GetGenerator() *generator.Generator {
	return c.generator
}
