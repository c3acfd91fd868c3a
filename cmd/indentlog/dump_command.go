package main

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/pelletier/go-toml/v2"
	"github.com/spf13/cobra"

	"indentlog/internal/dump"
	"indentlog/internal/logging"
)

func newDumpCommand(ctx *commandContext) *cobra.Command {
	var name string
	var exclude []string
	var flatten bool
	var raw bool

	cmd := &cobra.Command{
		Use:   "dump FILE",
		Short: "Render a JSON, YAML, or TOML document as an indented tree",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := ctx.ensureConfig()
			if err != nil {
				return err
			}
			node, err := loadDocument(args[0])
			if err != nil {
				return err
			}

			opts := cfg.DumpOptions()
			opts.Name = strings.TrimSpace(name)
			opts.Exclude = append(opts.Exclude, exclude...)
			if cmd.Flags().Changed("flatten") {
				opts.FlattenLongText = flatten
			}

			if raw {
				text := dump.Text(dump.Lines(node, 0, opts), cfg.Render.IndentSpaces)
				_, err := fmt.Fprint(cmd.OutOrStdout(), text)
				return err
			}

			logger, err := ctx.logger(cmd)
			if err != nil {
				return err
			}
			logging.Dump(cmd.Context(), logger, slog.LevelInfo, node, 0, opts)
			return nil
		},
	}

	cmd.Flags().StringVar(&name, "name", "", "Label printed above the dumped value")
	cmd.Flags().StringSliceVar(&exclude, "exclude", nil, "Mapping keys to skip (repeatable)")
	cmd.Flags().BoolVar(&flatten, "flatten", false, "Collapse whitespace in long leaf lines")
	cmd.Flags().BoolVar(&raw, "raw", false, "Print the tree without log prefixes")
	return cmd
}

// loadDocument parses path by extension. TOML tables come back as Go maps, so
// their keys are dumped sorted; JSON and YAML keep document order.
func loadDocument(path string) (dump.Node, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", path, err)
	}
	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".json":
		node, err := dump.FromJSON(data)
		if err != nil {
			return nil, fmt.Errorf("parse %s: %w", path, err)
		}
		return node, nil
	case ".yaml", ".yml":
		node, err := dump.FromYAML(data)
		if err != nil {
			return nil, fmt.Errorf("parse %s: %w", path, err)
		}
		return node, nil
	case ".toml":
		var doc map[string]any
		if err := toml.Unmarshal(data, &doc); err != nil {
			return nil, fmt.Errorf("parse %s: %w", path, err)
		}
		return dump.FromValue(doc), nil
	default:
		return nil, fmt.Errorf("dump: unsupported file type %q (want .json, .yaml, .yml, or .toml)", ext)
	}
}
