package cmd

import (
	"fmt"
	"log/slog"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/arcanaland/tarotsim/internal/card"
	"github.com/arcanaland/tarotsim/internal/catalog"
	"github.com/arcanaland/tarotsim/internal/config"
	"github.com/arcanaland/tarotsim/internal/locale"
)

// app is the state shared by every command, built once before it runs
type app struct {
	cfgPath string
	cfg     *config.Config
	logger  *slog.Logger
	bundle  *locale.Bundle
	cards   []card.Card
}

var current *app

func setup(cmd *cobra.Command, _ []string) error {
	path := cfgPath
	if path == "" {
		path = config.GetConfigFilePath()
	}

	cfg, err := config.Load(path)
	if err != nil {
		return fmt.Errorf("error loading config: %w", err)
	}

	level := logLevel
	if level == "" {
		level = cfg.LogLevel
	}
	logger, err := newLogger(level)
	if err != nil {
		return err
	}
	slog.SetDefault(logger)

	extra, err := locale.LoadDir(cfg.LocaleDir)
	if err != nil {
		logger.Warn("ignoring locale directory", "dir", cfg.LocaleDir, "error", err)
		extra = nil
	}

	bundles := map[card.Lang]*locale.Bundle{}
	available := locale.Languages()
	var attach []*locale.Bundle
	for _, lang := range available {
		b, _ := locale.Embedded(lang)
		bundles[lang] = b
		if lang != card.English {
			attach = append(attach, b)
		}
	}
	en := bundles[card.English]
	for _, b := range extra {
		if !catalog.Covers(b) {
			logger.Warn("skipping incomplete locale", "lang", b.Language)
			continue
		}
		if _, ok := bundles[b.Lang()]; !ok {
			available = append(available, b.Lang())
		}
		bundles[b.Lang()] = b.WithFallback(en)
		attach = append(attach, b)
	}

	want := langFlag
	if want == "" {
		want = cfg.Language
	}
	if want == "" {
		want = strings.SplitN(os.Getenv("LANG"), ".", 2)[0]
	}
	lang := locale.Match(want, available)

	current = &app{
		cfgPath: path,
		cfg:     cfg,
		logger:  logger,
		bundle:  bundles[lang],
		cards:   catalog.BuildWith(attach...),
	}
	logger.Debug("configured", "config", path, "lang", lang, "locales", len(available))
	return nil
}
