package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path"
	"runtime"
	"time"

	"github.com/adrg/xdg"
	"github.com/brightsteps/site/internal/config"
	"github.com/brightsteps/site/internal/nav"
	"github.com/brightsteps/site/internal/ui"
	"github.com/charmbracelet/fang"
	"github.com/google/uuid"
	_ "github.com/joho/godotenv/autoload"
	"github.com/spf13/cobra"
)

var (
	BuildVersion   = "master"
	BuildCommit    = "00000000"
	BuildDate      = time.Now().Format("2006-01-02T15:04:05Z")
	BuildGoVersion = runtime.Version()
	cfgFile        string
	startView      string
	rootCmd        = &cobra.Command{
		Use:   "brightsteps",
		Short: "BrightSteps Behavioral Therapy in your terminal",
		Long:  `brightsteps - The BrightSteps in-home therapy site: services, careers, intake and contact details`,
		RunE:  run,
	}

	versionCmd = &cobra.Command{
		Use:               "version",
		Short:             "Print version information",
		Long:              "Print detailed version information about brightsteps",
		Args:              cobra.NoArgs,
		ValidArgsFunction: cobra.NoFileCompletions,
		Run:               version,
	}

	configCmd = &cobra.Command{
		Use:   "config",
		Short: "Manage the config file",
	}

	configInitCmd = &cobra.Command{
		Use:               "init",
		Short:             "Write a config file populated with the defaults",
		Args:              cobra.NoArgs,
		ValidArgsFunction: cobra.NoFileCompletions,
		RunE:              configInit,
	}
)

var errApp = errors.New("application error")

func main() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "Config file path")
	rootCmd.Flags().StringVar(&startView, "view", "", "View to open on start (home, about, services, careers, get-started, contact)")
	configCmd.AddCommand(configInitCmd)
	rootCmd.AddCommand(versionCmd, configCmd)

	if err := fang.Execute(context.Background(), rootCmd); err != nil {
		slog.Error("Exited with error", slog.String("error", err.Error()))
		os.Exit(1)
	}
}

func version(_ *cobra.Command, _ []string) {
	fmt.Printf("brightsteps - BrightSteps Terminal Site\n\n") //nolint:forbidigo
	fmt.Printf("  Version: %s\n", BuildVersion)               //nolint:forbidigo
	fmt.Printf("  Commit:  %s\n", BuildCommit)                //nolint:forbidigo
	fmt.Printf("  Built:   %s\n", BuildDate)                  //nolint:forbidigo
	fmt.Printf("  Runtime: %s\n\n", BuildGoVersion)           //nolint:forbidigo
}

func configInit(cmd *cobra.Command, _ []string) error {
	if err := os.MkdirAll(path.Join(xdg.ConfigHome, config.ConfigDirName), 0o750); err != nil {
		return errors.Join(err, errApp)
	}

	loader := config.NewLoader(nil, cfgFile)
	defaults, errRead := loader.Read()
	if errRead != nil {
		return errors.Join(errRead, errApp)
	}

	target := cfgFile
	if target == "" {
		target = config.Path(config.DefaultConfigName + ".yaml")
	}

	if err := loader.Write(defaults, target); err != nil {
		return errors.Join(err, errApp)
	}

	cmd.Printf("Wrote %s\n", target)

	return nil
}

// run is the main entry point of brightsteps.
func run(cmd *cobra.Command, _ []string) error {
	// Make sure our config home exists.
	if err := os.MkdirAll(path.Join(xdg.ConfigHome, config.ConfigDirName), 0o750); err != nil {
		return errors.Join(err, errApp)
	}

	configUpdates := make(chan config.Config)

	configLoader := config.NewLoader(configUpdates, cfgFile)
	userConfig, errConfig := configLoader.Read()
	if errConfig != nil {
		return errors.Join(errApp, errConfig)
	}

	if startView != "" {
		view, errView := nav.ParseView(startView)
		if errView != nil {
			return errors.Join(errView, errApp)
		}
		userConfig.StartView = view
	}

	// Setup file based logger. This is very useful for us as our console is taken over by the ui.
	logFile, errLogger := config.LoggerInit(config.DefaultLogName, userConfig.Level())
	if errLogger != nil {
		return errors.Join(errLogger, errApp)
	}

	defer func(closer io.Closer) {
		if err := closer.Close(); err != nil {
			slog.Error("Failed to close log file", slog.String("error", err.Error()))
		}
	}(logFile)

	slog.SetDefault(slog.Default().With(slog.String("session", uuid.NewString())))
	slog.Info("Starting brightsteps", slog.String("version", BuildVersion),
		slog.String("commit", BuildCommit), slog.String("date", BuildDate),
		slog.String("go", runtime.Version()), slog.String("start_view", userConfig.StartView.String()))

	configLoader.Watch()

	app := NewApp(userConfig, configUpdates)

	return app.Run(cmd.Context(), ui.BuildInfo{
		Version:    BuildVersion,
		Date:       BuildDate,
		Commit:     BuildCommit,
		ConfigPath: configLoader.Path(),
		LogPath:    path.Join(xdg.ConfigHome, config.ConfigDirName, config.DefaultLogName),
	})
}
