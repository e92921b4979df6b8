package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"

	"github.com/at-ishikawa/translate/internal/dictionary"
	"github.com/at-ishikawa/translate/internal/dom"
	"github.com/at-ishikawa/translate/internal/table"
	"github.com/at-ishikawa/translate/internal/wordreference"
	"github.com/fatih/color"
)

// ErrLookupFailed is returned by Run when a request or an extraction failed.
// The cause is already logged, nothing has been printed for that branch.
var ErrLookupFailed = errors.New("lookup failed")

const usage = `Please enter a dictionary and a word.
	Enter -l or --list to get a list of all available dictionaries.
Enter -h or --help for help.
`

//go:generate mockgen -source=app.go -destination=../mocks/cli/mock_fetcher.go -package=mock_cli Fetcher

type Fetcher interface {
	Fetch(ctx context.Context, url string) ([]byte, error)
}

// App looks words up on the dictionary website and prints the results.
type App struct {
	fetcher      Fetcher
	urls         wordreference.URLBuilder
	format       OutputFormat
	stdoutWriter io.Writer
	logger       *slog.Logger
	banner       *color.Color
}

func NewApp(fetcher Fetcher, baseURL string, format OutputFormat, stdoutWriter io.Writer, logger *slog.Logger) *App {
	return &App{
		fetcher:      fetcher,
		urls:         wordreference.NewURLBuilder(baseURL),
		format:       format,
		stdoutWriter: stdoutWriter,
		logger:       logger,
		banner:       color.New(color.Bold),
	}
}

type Options struct {
	Dictionary string
	Word       string
	List       bool
}

// Run prints the list of dictionaries when requested, then the translations of the word.
// Without a dictionary and a word, and without the list, it prints how to use the command.
func (app *App) Run(ctx context.Context, opts Options) error {
	var failed bool

	if opts.List {
		if err := app.ListDictionaries(ctx); err != nil {
			if !isLookupFailure(err) {
				return err
			}
			app.logger.InfoContext(ctx, "Could not print the list of available dictionaries: "+err.Error())
			failed = true
		}
	}

	if opts.Dictionary != "" && opts.Word != "" {
		if err := app.TranslateWord(ctx, opts.Dictionary, opts.Word); err != nil {
			if !isLookupFailure(err) {
				return err
			}
			app.logger.InfoContext(ctx, "Could not print the translations: "+err.Error())
			failed = true
		}
	} else if !opts.List {
		app.logger.InfoContext(ctx, "User didn't pass the correct arguments. Displaying the help message and shutting down")
		if _, err := io.WriteString(app.stdoutWriter, usage); err != nil {
			return fmt.Errorf("io.WriteString > %w", err)
		}
		return nil
	}

	if failed {
		return ErrLookupFailed
	}
	return nil
}

// ListDictionaries prints the bilingual dictionaries of the website.
func (app *App) ListDictionaries(ctx context.Context) error {
	app.logger.InfoContext(ctx, "Attempting to print the list of available dictionaries")

	body, err := app.fetcher.Fetch(ctx, app.urls.HomePage())
	if err != nil {
		return fmt.Errorf("fetcher.Fetch > %w", err)
	}

	app.logger.InfoContext(ctx, "Attempting to parse the html and extract the list of dictionaries")
	root, err := dom.Parse(body)
	if err != nil {
		return fmt.Errorf("%w: %w", dictionary.ErrMalformedResponse, err)
	}
	entries := wordreference.ExtractDictionaries(root)
	app.logger.InfoContext(ctx, fmt.Sprintf("Extracted %d dictionaries", len(entries)))

	if err := app.show("Available dictionaries", entries, dictionary.EntryRows(entries)); err != nil {
		return err
	}
	app.logger.InfoContext(ctx, "Printed the list of available dictionaries")
	return nil
}

// TranslateWord prints the translations of a word.
// An invalid dictionary code or an empty word fails before any request is sent.
// A word made of spaces is looked up as is.
func (app *App) TranslateWord(ctx context.Context, dictionaryCode string, word string) error {
	code, err := dictionary.ParseCode(dictionaryCode)
	if err != nil {
		return err
	}
	if word == "" {
		return fmt.Errorf("%w: the word to translate must not be empty", dictionary.ErrInvalidArgument)
	}

	body, err := app.fetcher.Fetch(ctx, app.urls.Translation(code, word))
	if err != nil {
		return fmt.Errorf("fetcher.Fetch > %w", err)
	}

	app.logger.InfoContext(ctx, "Attempting to parse the html and extract the translations")
	root, err := dom.Parse(body)
	if err != nil {
		return fmt.Errorf("%w: %w", dictionary.ErrMalformedResponse, err)
	}
	translations, err := wordreference.ExtractTranslations(ctx, root, app.logger)
	if errors.Is(err, dictionary.ErrNoTranslationFound) {
		app.logger.WarnContext(ctx, fmt.Sprintf("The word passed doesn't have any translation in %s: %q", code, word))
		return err
	}
	if err != nil {
		return fmt.Errorf("wordreference.ExtractTranslations > %w", err)
	}
	app.logger.InfoContext(ctx, fmt.Sprintf("Extracted %d translations", len(translations)))

	return app.show("Translations for "+word, translations, dictionary.TranslationRows(translations))
}

func (app *App) show(title string, value any, rows [][]string) error {
	switch app.format {
	case OutputFormatYAML:
		return writeYAML(app.stdoutWriter, value)
	default:
		if _, err := fmt.Fprintln(app.stdoutWriter); err != nil {
			return fmt.Errorf("fmt.Fprintln > %w", err)
		}
		if _, err := app.banner.Fprintf(app.stdoutWriter, "**** %s:\n", title); err != nil {
			return fmt.Errorf("banner.Fprintf > %w", err)
		}
		if _, err := fmt.Fprintf(app.stdoutWriter, "%s\n\n", table.Render(rows)); err != nil {
			return fmt.Errorf("fmt.Fprintf > %w", err)
		}
		return nil
	}
}

func isLookupFailure(err error) bool {
	return errors.Is(err, dictionary.ErrTransport) || errors.Is(err, dictionary.ErrNoTranslationFound)
}
