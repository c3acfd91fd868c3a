package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/spf13/cobra"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"indentlog/internal/config"
)

func newConfigCommand(ctx *commandContext) *cobra.Command {
	configCmd := &cobra.Command{
		Use:   "config",
		Short: "Configuration utilities",
	}

	configCmd.AddCommand(newConfigInitCommand())
	configCmd.AddCommand(newConfigShowCommand(ctx))
	configCmd.AddCommand(newConfigValidateCommand(ctx))

	return configCmd
}

func newConfigInitCommand() *cobra.Command {
	var overwrite bool

	cmd := &cobra.Command{
		Use:         "init [PATH]",
		Short:       "Create a sample configuration file",
		Args:        cobra.MaximumNArgs(1),
		Annotations: map[string]string{"skipConfigLoad": "true"},
		RunE: func(cmd *cobra.Command, args []string) error {
			var target string
			if len(args) == 1 && strings.TrimSpace(args[0]) != "" {
				expanded, err := config.ExpandPath(strings.TrimSpace(args[0]))
				if err != nil {
					return fmt.Errorf("resolve config path: %w", err)
				}
				target = expanded
			} else {
				defaultPath, err := config.DefaultConfigPath()
				if err != nil {
					return fmt.Errorf("determine default config path: %w", err)
				}
				target = defaultPath
			}

			dir := filepath.Dir(target)
			if err := os.MkdirAll(dir, 0o755); err != nil {
				return fmt.Errorf("create config directory %q: %w", dir, err)
			}

			if !overwrite {
				if _, err := os.Stat(target); err == nil {
					return fmt.Errorf("config file already exists at %s (use --overwrite to replace it)", target)
				} else if !os.IsNotExist(err) {
					return fmt.Errorf("check config path: %w", err)
				}
			}

			if err := config.CreateSample(target); err != nil {
				return fmt.Errorf("create sample config: %w", err)
			}

			fmt.Fprintf(cmd.OutOrStdout(), "Wrote sample configuration to %s\n", target)
			return nil
		},
	}

	cmd.Flags().BoolVar(&overwrite, "overwrite", false, "Overwrite existing configuration if present")
	return cmd
}

func newConfigShowCommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "show",
		Short: "Print the resolved configuration",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := ctx.ensureConfig()
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			source := ctx.configPath
			if !ctx.configRead {
				source += " (not found, defaults used)"
			}
			fmt.Fprintf(out, "Config path: %s\n", source)
			fmt.Fprintln(out, renderTable([]string{"Section", "Key", "Value"}, settingsRows(cfg)))
			return nil
		},
	}
}

func newConfigValidateCommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "validate",
		Short: "Validate configuration file",
		RunE: func(cmd *cobra.Command, args []string) error {
			if _, err := ctx.ensureConfig(); err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "Config path: %s\n", ctx.configPath)
			if !ctx.configRead {
				fmt.Fprintln(out, "Config file did not exist; defaults were used")
			}
			fmt.Fprintln(out, "Configuration valid")
			return nil
		},
	}
}

func settingsRows(cfg *config.Config) [][]string {
	title := cases.Title(language.English)
	section := func(name string, pairs ...string) [][]string {
		rows := make([][]string, 0, len(pairs)/2)
		for i := 0; i+1 < len(pairs); i += 2 {
			rows = append(rows, []string{title.String(name), pairs[i], pairs[i+1]})
		}
		return rows
	}

	var rows [][]string
	rows = append(rows, section("logging",
		"level", cfg.Logging.Level,
		"format", cfg.Logging.Format,
		"color", cfg.Logging.Color,
		"file", valueOrNone(cfg.Logging.File),
		"file_keep_ansi", yesNo(cfg.Logging.FileKeepANSI),
		"file_no_indent", yesNo(cfg.Logging.FileNoIndent),
	)...)
	rows = append(rows, section("render",
		"include_func", yesNo(cfg.Render.IncludeFunc),
		"include_module", yesNo(cfg.Render.IncludeModule),
		"func_module_format", valueOrNone(cfg.Render.FuncModuleFormat),
		"truncate_messages", yesNo(cfg.Render.TruncateMessages),
		"min_func_name_col", strconv.Itoa(cfg.Render.MinFuncNameCol),
		"indent_modules", yesNo(cfg.Render.IndentModules),
		"indent_packages", yesNo(cfg.Render.IndentPackages),
		"top_level", cfg.Render.TopLevel,
		"indent_spaces", strconv.Itoa(cfg.Render.IndentSpaces),
		"date_format", cfg.Render.DateFormat,
		"no_timestamp", yesNo(cfg.Render.NoTimestamp),
	)...)
	rows = append(rows, section("dump",
		"flatten_long_text", yesNo(cfg.Dump.FlattenLongText),
		"exclude", valueOrNone(strings.Join(cfg.Dump.Exclude, ", ")),
	)...)
	return rows
}

func valueOrNone(value string) string {
	if strings.TrimSpace(value) == "" {
		return "(none)"
	}
	return value
}
