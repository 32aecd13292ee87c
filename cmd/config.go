package cmd

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/arcanaland/tarotsim/internal/card"
	"github.com/arcanaland/tarotsim/internal/config"
	"github.com/arcanaland/tarotsim/internal/locale"
	"github.com/arcanaland/tarotsim/internal/spread"
)

// configCmd represents the config command group
var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Manage the tarotsim configuration",
	Long:  `Commands for creating and editing the tarotsim config file.`,
}

// configInitCmd represents the config init command
var configInitCmd = &cobra.Command{
	Use:   "init",
	Short: "Initialize the config file and the locale directory",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		out := cmd.OutOrStdout()
		a := current

		// setup already created the config file if it was missing
		fmt.Fprintln(out, "Config file initialized at:", a.cfgPath)

		if err := os.MkdirAll(a.cfg.LocaleDir, 0755); err != nil {
			return fmt.Errorf("error creating locale directory: %w", err)
		}
		fmt.Fprintln(out, "Locale directory initialized at:", a.cfg.LocaleDir)
		fmt.Fprintln(out, "You can add languages by copying <lang>.toml files to this directory.")
		return nil
	},
}

// configSetSpreadCmd represents the config set-spread command
var configSetSpreadCmd = &cobra.Command{
	Use:   "set-spread [spread]",
	Short: "Set the spread used when no --spread is given and input is not a terminal",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		kind, err := spread.ParseKind(args[0])
		if err != nil {
			return err
		}

		if err := config.SetDefaultSpread(current.cfgPath, string(kind)); err != nil {
			return fmt.Errorf("error setting default spread: %w", err)
		}

		fmt.Fprintf(cmd.OutOrStdout(), "Default spread set to: %s\n", kind)
		return nil
	},
}

// configSetLanguageCmd represents the config set-language command
var configSetLanguageCmd = &cobra.Command{
	Use:   "set-language [lang]",
	Short: "Set the output language",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		lang := locale.Match(args[0], locale.Languages())
		if lang == card.English && !isEnglish(args[0]) {
			fmt.Fprintf(cmd.ErrOrStderr(), "Note: %s is not a built-in language, it is used only if a matching locale is installed\n", args[0])
			lang = card.Lang(args[0])
		}

		if err := config.SetLanguage(current.cfgPath, string(lang)); err != nil {
			return fmt.Errorf("error setting language: %w", err)
		}

		fmt.Fprintf(cmd.OutOrStdout(), "Language set to: %s\n", lang)
		return nil
	},
}

// configPathCmd prints the config file location
var configPathCmd = &cobra.Command{
	Use:   "path",
	Short: "Print the config file path",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Fprintln(cmd.OutOrStdout(), current.cfgPath)
	},
}

func init() {
	RootCmd.AddCommand(configCmd)
	configCmd.AddCommand(configInitCmd)
	configCmd.AddCommand(configSetSpreadCmd)
	configCmd.AddCommand(configSetLanguageCmd)
	configCmd.AddCommand(configPathCmd)
}

func isEnglish(tag string) bool {
	return strings.HasPrefix(strings.ToLower(tag), "en")
}
