package cmd

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/arcanaland/tarotsim/internal/config"
	"github.com/arcanaland/tarotsim/internal/deck"
	"github.com/arcanaland/tarotsim/internal/oracle"
	"github.com/arcanaland/tarotsim/internal/prompt"
	"github.com/arcanaland/tarotsim/internal/render"
	"github.com/arcanaland/tarotsim/internal/spread"
)

var (
	cfgPath     string
	spreadFlag  string
	question    string
	langFlag    string
	interactive bool
	extensive   bool
	apiKey      string
	seed        uint64
	logLevel    string
)

// RootCmd represents the base command when called without any subcommands
var RootCmd = &cobra.Command{
	Use:   "tarotsim",
	Short: "Tarot card reading simulator",
	Long: `Tarotsim draws tarot cards into the positions of a spread and prints the reading.
Optionally the reading is sent to Google Gemini for an extensive interpretation.

Without --spread it starts an interactive session when run from a terminal,
and performs the default spread from the config file otherwise.

Examples:
  tarotsim --spread three --question "Will I find a new job?"
  tarotsim -s yesno -q "Should I move?" --lang it
  tarotsim -s celtic --extensive
  tarotsim -i`,
	Args:              cobra.NoArgs,
	SilenceUsage:      true,
	SilenceErrors:     true,
	PersistentPreRunE: setup,
	RunE:              runReading,
}

func init() {
	flags := RootCmd.PersistentFlags()
	flags.StringVar(&cfgPath, "config", "", "Config file (default $XDG_CONFIG_HOME/tarotsim/config.toml)")
	flags.StringVarP(&langFlag, "lang", "l", "", "Output language (en, it, or any installed locale)")
	flags.StringVar(&logLevel, "log-level", "", "Log level (debug, info, warn, error)")

	RootCmd.Flags().StringVarP(&spreadFlag, "spread", "s", "",
		"Type of spread to perform ("+strings.Join(kindNames(), ", ")+")")
	RootCmd.Flags().StringVarP(&question, "question", "q", "", "Question for the reading")
	RootCmd.Flags().BoolVarP(&interactive, "interactive", "i", false, "Run in interactive mode")
	RootCmd.Flags().BoolVarP(&extensive, "extensive", "e", false, "Generate extensive AI-powered reading")
	RootCmd.Flags().StringVar(&apiKey, "api-key", "", "Google Gemini API key for extensive readings")
	RootCmd.Flags().Uint64Var(&seed, "seed", 0, "Seed for reproducible draws")
	_ = RootCmd.Flags().MarkHidden("seed")

	RootCmd.AddCommand(validateCmd)
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute(ctx context.Context) error {
	return RootCmd.ExecuteContext(ctx)
}

func kindNames() []string {
	var names []string
	for _, k := range spread.Kinds() {
		names = append(names, string(k))
	}
	return names
}

func newOracle(a *app) *oracle.Client {
	g := a.cfg.Gemini
	return oracle.NewClient(oracle.Config{
		APIKey:            config.ResolveAPIKey(apiKey, a.cfg),
		BaseURL:           g.BaseURL,
		Model:             g.Model,
		Timeout:           g.Timeout.Duration,
		RequestsPerMinute: g.RequestsPerMinute,
	}, nil, a.logger)
}

func newEngine(a *app) *spread.Engine {
	var src deck.Source
	if seed != 0 {
		src = deck.NewSource(seed)
	}
	return spread.NewEngine(deck.New(a.cards, src), spread.WithLogger(a.logger))
}

func runReading(cmd *cobra.Command, _ []string) error {
	a := current
	ctx := cmd.Context()
	out := cmd.OutOrStdout()
	printer := render.New(out, a.bundle, 0)
	client := newOracle(a)
	engine := newEngine(a)

	if !client.Available() && (interactive || extensive) {
		l := a.bundle.Labels
		fmt.Fprintf(out, "⚠️  %s\n   %s\n", l.KeyWarning, l.KeyHint)
	}

	kind := spreadFlag
	if kind == "" && !interactive && !isTerminal(cmd) {
		kind = a.cfg.DefaultSpread
	}

	if interactive || kind == "" {
		a.logger.Debug("starting interactive session", "lang", a.bundle.Language)
		return prompt.NewSession(cmd.InOrStdin(), out, printer, engine, client, a.logger).Run(ctx)
	}

	k, err := spread.ParseKind(kind)
	if err != nil {
		return err
	}
	r, err := engine.Read(k, question)
	if err != nil {
		return err
	}
	prompt.Present(ctx, printer, r, client, extensive, a.logger)
	return nil
}

// isTerminal reports whether the command reads from an interactive console
func isTerminal(cmd *cobra.Command) bool {
	f, ok := cmd.InOrStdin().(*os.File)
	return ok && term.IsTerminal(int(f.Fd()))
}

func newLogger(level string) (*slog.Logger, error) {
	var lvl slog.Level
	if level != "" {
		if err := lvl.UnmarshalText([]byte(level)); err != nil {
			return nil, fmt.Errorf("invalid log level %q", level)
		}
	} else {
		lvl = slog.LevelWarn
	}
	return slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: lvl})), nil
}
