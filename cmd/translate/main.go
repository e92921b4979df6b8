package main

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/at-ishikawa/translate/internal/cli"
	"github.com/at-ishikawa/translate/internal/config"
	"github.com/at-ishikawa/translate/internal/fetcher"
	"github.com/at-ishikawa/translate/internal/logging"
	"github.com/spf13/cobra"
)

const version = "0.1.0"

func main() {
	rootCommand := newRootCommand(os.Stdout)
	if err := rootCommand.Execute(); err != nil {
		// Lookup failures are already in the log file.
		if errors.Is(err, cli.ErrLookupFailed) {
			os.Exit(1)
		}
		if _, fprintfErr := fmt.Fprintf(os.Stderr, "failed to execute a command: %+v\n", err); fprintfErr != nil {
			panic(fmt.Errorf("failed to output an error: %w. Reason: %w", err, fprintfErr))
		}
		os.Exit(1)
	}
	os.Exit(0)
}

func newRootCommand(stdoutWriter io.Writer) *cobra.Command {
	var (
		configFile string
		debugMode  bool
		list       bool
	)
	output := cli.OutputFormatTable

	rootCommand := cobra.Command{
		Use:   "translate [dictionary] [word]",
		Short: "Translate a word with wordreference.com",
		Long: `Translate a word with wordreference.com.

dictionary is the dictionary to use for the translation. To translate from english to french,
it should take the value enfr, for english to italian, enit, etc.
word is the word to be translated.`,
		Version:       version,
		Args:          cobra.MaximumNArgs(2),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load(configFile)
			if err != nil {
				return fmt.Errorf("config.Load > %w", err)
			}

			logger, logFile, err := setupLogger(cfg.Log, debugMode)
			if err != nil {
				return err
			}
			defer func() {
				_ = logFile.Close()
			}()
			logger.Info("Arguments parsed")

			httpFetcher := fetcher.New(logger)
			defer func() {
				_ = httpFetcher.Close()
			}()

			var opts cli.Options
			opts.List = list
			if len(args) > 0 {
				opts.Dictionary = args[0]
			}
			if len(args) > 1 {
				opts.Word = args[1]
			}

			app := cli.NewApp(httpFetcher, cfg.Provider.BaseURL, output, cmd.OutOrStdout(), logger)
			return app.Run(cmd.Context(), opts)
		},
	}
	rootCommand.SetOut(stdoutWriter)

	flags := rootCommand.Flags()
	flags.BoolVarP(&list, "list", "l", false, "Returns the list of available dictionaries.")
	flags.VarP(&output, "output", "o", fmt.Sprintf("Output format. Possible values are %v", cli.AllOutputFormats))
	rootCommand.PersistentFlags().StringVar(&configFile, "config", "", "config file path")
	rootCommand.PersistentFlags().BoolVar(&debugMode, "debug", false, "Enable debug mode")

	return &rootCommand
}

// setupLogger opens the log file and makes its logger the default one.
func setupLogger(cfg config.LogConfig, debugMode bool) (*slog.Logger, io.Closer, error) {
	logLevel := logging.ParseLevel(cfg.Level)
	if debugMode {
		logLevel = slog.LevelDebug
	}

	logger, closer, err := logging.OpenFile(cfg.File, logLevel)
	if err != nil {
		return nil, nil, fmt.Errorf("logging.OpenFile > %w", err)
	}
	slog.SetDefault(logger)
	return logger, closer, nil
}
