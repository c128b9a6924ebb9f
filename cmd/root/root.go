// Package root contains the root command for the application
package root

import (
	"fmt"

	"fjacquet/pain-gen/internal/config"
	"fjacquet/pain-gen/internal/container"
	"fjacquet/pain-gen/internal/logging"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
)

var (
	// Log is the shared logger instance for commands. It is replaced by the
	// configured logger once the container is built.
	Log logging.Logger = logging.NewLogrusAdapter(config.EarlyLogLevel(), logging.FormatText)

	// AppContainer holds the dependencies of the running command.
	AppContainer *container.Container

	// ConfigFile is the --config flag.
	ConfigFile string

	settings = config.NewViper("")

	// Cmd is the root command
	Cmd = &cobra.Command{
		Use:   "pain-gen",
		Short: "Generate ISO 20022 pain.001 payment initiation files.",
		Long: `pain-gen turns a list of supplier payments into a pain.001.001.03
credit transfer initiation file for Bankgiro.

Due dates are moved into the current banking window: no earlier than the next
banking day and no later than the last banking day of the month.`,
		SilenceUsage: true,
		Run: func(cmd *cobra.Command, args []string) {
			_ = cmd.Help()
		},
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return Setup()
		},
	}
)

// Init registers the persistent flags.
func Init() {
	flags := Cmd.PersistentFlags()
	flags.StringVarP(&ConfigFile, "config", "c", "", "Config file (default searches ./config.yaml and $HOME/.pain-gen)")
	flags.String("log-level", "", "Log level: trace, debug, info, warn, error")
	flags.String("log-format", "", "Log format: text or json")
	flags.String("holidays", "", "YAML file of extra bank closing days")

	BindFlag("log.level", flags.Lookup("log-level"))
	BindFlag("log.format", flags.Lookup("log-format"))
	BindFlag("holidays.file", flags.Lookup("holidays"))
}

// BindFlag makes flag override the configuration key when it is set.
func BindFlag(key string, flag *pflag.Flag) {
	if flag == nil {
		return
	}
	if err := settings.BindPFlag(key, flag); err != nil {
		Log.WithError(err).Warn("Failed to bind flag", logging.F("key", key))
	}
}

// Setup loads the environment and configuration and builds AppContainer.
func Setup() error {
	config.LoadEnv(Log)

	if ConfigFile != "" {
		settings.SetConfigFile(ConfigFile)
	}
	cfg, err := config.Load(settings)
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}

	c, err := container.NewContainer(cfg)
	if err != nil {
		return fmt.Errorf("failed to initialize: %w", err)
	}
	AppContainer = c
	Log = c.GetLogger()
	return nil
}

// GetContainer returns AppContainer, failing the command when setup did not run.
func GetContainer() *container.Container {
	if AppContainer == nil {
		Log.Fatal("Container not initialized")
	}
	return AppContainer
}
