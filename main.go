package main

import (
	"fmt"
	"os"
	"path/filepath"

	"fjacquet/pain-gen/cmd/bankdays"
	"fjacquet/pain-gen/cmd/generate"
	"fjacquet/pain-gen/cmd/inspect"
	"fjacquet/pain-gen/cmd/root"
	"fjacquet/pain-gen/internal/config"

	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"
)

func init() {
	// Environment first, silently: the log level may come from .env.
	loadEnvSilently()

	level, err := logrus.ParseLevel(config.EarlyLogLevel())
	if err != nil {
		level = logrus.InfoLevel
	}
	logrus.SetLevel(level)

	root.Init()

	root.Cmd.AddCommand(generate.Cmd)
	root.Cmd.AddCommand(bankdays.Cmd)
	root.Cmd.AddCommand(inspect.Cmd)
}

// loadEnvSilently loads .env from the working directory or its parent
// without logging anything.
func loadEnvSilently() {
	for _, envFile := range []string{".env", filepath.Join("..", ".env")} {
		if _, err := os.Stat(envFile); err == nil {
			_ = godotenv.Load(envFile)
			return
		}
	}
}

func main() {
	if err := root.Cmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
