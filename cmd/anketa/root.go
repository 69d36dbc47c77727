package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"slices"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/dmitrymomot/anketa/pkg/config"
	"github.com/dmitrymomot/anketa/pkg/i18n"
	"github.com/dmitrymomot/anketa/pkg/logger"
	"github.com/dmitrymomot/anketa/pkg/questionnaire"
	"github.com/dmitrymomot/anketa/pkg/report"
	"github.com/dmitrymomot/anketa/pkg/validator"
)

const programName = "anketa"

var errUsage = errors.New("usage error")

// app carries what a single run needs besides its arguments.
type app struct {
	cfg    Config
	tr     *i18n.Translator
	log    *slog.Logger
	level  *slog.LevelVar
	stdout io.Writer
	stderr io.Writer
	now    func() time.Time

	lang    string
	verbose bool
}

// execute runs the command line and returns the process exit code.
func execute(args []string, stdout, stderr io.Writer, now func() time.Time) int {
	ctx := context.Background()

	var cfg Config
	if err := config.Load(&cfg, config.WithPrefix(envPrefix)); err != nil {
		fmt.Fprintln(stderr, flatten(err))
		return 1
	}

	a := &app{cfg: cfg, stdout: stdout, stderr: stderr, now: now}
	a.setupLogger()

	tr, err := report.NewTranslator(ctx,
		i18n.WithLogger(a.log),
		i18n.WithMissingTranslationsLogging(true),
	)
	if err != nil {
		fmt.Fprintln(stderr, flatten(err))
		return 1
	}
	a.tr = tr

	cmd := a.command()
	cmd.SetArgs(args)
	cmd.SetOut(stdout)
	cmd.SetErr(stderr)

	if err := cmd.ExecuteContext(ctx); err != nil {
		fmt.Fprintln(stderr, a.errorMessage(err))
		return 1
	}
	return 0
}

func (a *app) command() *cobra.Command {
	cmd := &cobra.Command{
		Use:   programName + " <file>",
		Short: "Find the oldest and the youngest respondent in a questionnaire file",
		Long: `Reads blocks of six lines (surname, name, gender, birth date, contact, city)
separated by blank lines, drops every block with an invalid field and prints
the oldest and the youngest of the remaining respondents.`,
		Args: func(_ *cobra.Command, args []string) error {
			if len(args) != 1 {
				return errUsage
			}
			return nil
		},
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.run(cmd.Context(), args[0])
		},
	}

	cmd.Flags().StringVar(&a.lang, "lang", a.cfg.Lang, "report language (ru, en)")
	cmd.Flags().BoolVarP(&a.verbose, "verbose", "v", false, "log debug details to stderr")
	cmd.SetFlagErrorFunc(func(_ *cobra.Command, err error) error {
		return errors.Join(errUsage, err)
	})

	return cmd
}

// setupLogger builds the run logger. The level starts at the configured one
// and is lowered to debug by --verbose once flags are parsed.
func (a *app) setupLogger() {
	a.level = new(slog.LevelVar)
	a.level.Set(a.cfg.LogLevel)

	opts := []logger.Option{
		logger.WithOutput(a.stderr),
		logger.WithEnvironment(a.cfg.Env.String(), programName),
		logger.WithLevel(a.level),
		logger.WithContextExtractors(logger.RunIDExtractor()),
	}
	if a.cfg.LogFormat != "" {
		opts = append(opts, logger.WithFormat(a.cfg.LogFormat))
	}
	a.log = logger.New(opts...)
}

// renderer returns a renderer for the requested language, or for the
// catalog default when that language is not shipped.
func (a *app) renderer() *report.Renderer {
	if slices.Contains(a.tr.SupportedLanguages(), a.lang) {
		return report.New(a.tr, a.lang)
	}
	return report.New(a.tr, a.tr.DefaultLanguage())
}

func (a *app) run(ctx context.Context, path string) error {
	if a.verbose {
		a.level.Set(slog.LevelDebug)
	}
	log := a.log
	ctx = logger.WithRunID(ctx, uuid.NewString())
	today := a.now()

	if a.lang != "" && !slices.Contains(a.tr.SupportedLanguages(), a.lang) {
		log.WarnContext(ctx, "unsupported report language, using default",
			slog.String("lang", a.lang),
			slog.String("default", a.tr.DefaultLanguage()),
		)
	}
	r := a.renderer()

	content, err := questionnaire.ReadSource(path)
	if err != nil {
		log.DebugContext(ctx, "source not read", logger.File(path), logger.Error(err))
		return &sourceError{path: path, err: err}
	}
	log.InfoContext(ctx, "source read", logger.File(path), logger.Bytes(len(content)))

	res := questionnaire.Scan(content, today)
	for _, rej := range res.Rejected {
		attrs := []any{logger.Count("block", rej.Index)}
		if fields := validator.ExtractValidationErrors(rej.Err).Fields(); len(fields) > 0 {
			attrs = append(attrs, logger.Fields(fields))
		} else {
			attrs = append(attrs, logger.Error(rej.Err))
		}
		log.DebugContext(ctx, "block rejected", attrs...)
	}
	log.InfoContext(ctx, "parse summary",
		logger.Count("blocks", res.Blocks),
		logger.Count("valid", len(res.People)),
		logger.Count("rejected", len(res.Rejected)),
	)

	oldest, youngest, ok := questionnaire.Extremes(res.People)
	if !ok {
		return r.RenderEmpty(a.stdout)
	}
	log.InfoContext(ctx, "extremes selected", logger.Group("ages",
		slog.Int("oldest", oldest.Age),
		slog.Int("youngest", youngest.Age),
	))

	return r.Render(a.stdout, oldest, youngest)
}

// errorMessage maps a run error to the localized line printed on stderr.
func (a *app) errorMessage(err error) string {
	r := a.renderer()
	if errors.Is(err, errUsage) {
		return r.Message(report.KeyUsage, "program", programName)
	}

	var serr *sourceError
	if errors.As(err, &serr) {
		if errors.Is(serr.err, questionnaire.ErrSourceNotFound) {
			return r.Message(report.KeyNotFound, "path", serr.path)
		}
		return r.Message(report.KeyRead, "error", flatten(serr.err))
	}
	return r.Message(report.KeyRead, "error", flatten(err))
}

// sourceError ties a read failure to the file it happened on.
type sourceError struct {
	path string
	err  error
}

func (e *sourceError) Error() string { return e.path + ": " + e.err.Error() }

func (e *sourceError) Unwrap() error { return e.err }

// flatten renders joined errors on a single line.
func flatten(err error) string {
	return strings.ReplaceAll(err.Error(), "\n", ": ")
}
