// Command gocodegen is a thin CLI front end over package gen: it reads
// a template manifest and renders each entry to disk (or to stdout),
// giving the library a real, minimal caller the way rugo ships cmd/dev
// alongside its interpreter core.
package main

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/mattn/go-isatty"
	"github.com/mattn/go-runewidth"
	"github.com/pkg/errors"
	"github.com/urfave/cli/v3"
	"golang.org/x/term"

	"github.com/sensmetry/gocodegen/internal/config"
	"github.com/sensmetry/gocodegen/internal/genlog"
	"github.com/sensmetry/gocodegen/internal/manifest"
)

var version = "v0.1.0"

func main() {
	log := genlog.Default()

	cmd := &cli.Command{
		Name:                   "gocodegen",
		Usage:                  "Render gen-flavored template manifests to files",
		Version:                version,
		UseShortOptionHandling: true,
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:  "config",
				Usage: "Path to a YAML config file (indent, eol, manifest)",
			},
			&cli.StringFlag{
				Name:    "manifest",
				Aliases: []string{"m"},
				Usage:   "Path to the template manifest (overrides config/env)",
			},
		},
		Commands: []*cli.Command{
			renderCommand(log),
			checkCommand(log),
		},
	}

	if err := cmd.Run(context.Background(), os.Args); err != nil {
		log.Error("gocodegen failed", err)
		os.Exit(1)
	}
}

func loadConfig(cmd *cli.Command) (config.Config, error) {
	cfg, err := config.Load(cmd.String("config"))
	if err != nil {
		return cfg, err
	}
	if m := cmd.String("manifest"); m != "" {
		cfg.ManifestPath = m
	}
	return cfg, nil
}

func renderCommand(log *genlog.Logger) *cli.Command {
	return &cli.Command{
		Name:  "render",
		Usage: "Render every manifest entry to its destination path",
		Flags: []cli.Flag{
			&cli.StringFlag{Name: "out", Usage: "Output directory (default: current directory)"},
			&cli.BoolFlag{Name: "dry-run", Usage: "Print rendered output instead of writing files"},
		},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			cfg, err := loadConfig(cmd)
			if err != nil {
				return err
			}

			m, err := manifest.Load(cfg.ManifestPath)
			if err != nil {
				return err
			}

			outDir := cmd.String("out")
			dryRun := cmd.Bool("dry-run")

			for _, entry := range m.Entries {
				rendered, err := manifest.Render(cfg.ManifestPath, entry)
				if err != nil {
					return err
				}

				if dryRun {
					fmt.Printf("--- %s ---\n%s", entry.Path, rendered)
					continue
				}

				dest := entry.Path
				if outDir != "" {
					dest = filepath.Join(outDir, entry.Path)
				}
				if err := os.MkdirAll(filepath.Dir(dest), 0o755); err != nil {
					return errors.Wrapf(err, "gocodegen: create directory for %s", dest)
				}
				if err := os.WriteFile(dest, []byte(rendered), 0o644); err != nil {
					return errors.Wrapf(err, "gocodegen: write %s", dest)
				}
				log.Info("rendered", genlog.F("path", dest), genlog.F("bytes", len(rendered)))
			}
			return nil
		},
	}
}

func checkCommand(log *genlog.Logger) *cli.Command {
	return &cli.Command{
		Name:  "check",
		Usage: "Render every manifest entry in memory and print a summary table",
		Action: func(ctx context.Context, cmd *cli.Command) error {
			cfg, err := loadConfig(cmd)
			if err != nil {
				return err
			}

			m, err := manifest.Load(cfg.ManifestPath)
			if err != nil {
				return err
			}

			width := terminalWidth()
			interactive := isatty.IsTerminal(os.Stdout.Fd())

			var failed int
			for _, entry := range m.Entries {
				rendered, err := manifest.Render(cfg.ManifestPath, entry)
				if err != nil {
					failed++
					log.Warn("render failed", genlog.F("path", entry.Path), genlog.F("error", err.Error()))
					printRow(entry.Path, "FAIL", width, interactive)
					continue
				}
				printRow(entry.Path, fmt.Sprintf("%d bytes", len(rendered)), width, interactive)
			}

			if failed > 0 {
				return errors.Errorf("gocodegen: check: %d of %d entries failed to render", failed, len(m.Entries))
			}
			return nil
		},
	}
}

// printRow prints a two-column, width-aware summary row. Column
// alignment uses runewidth so multi-byte path segments line up the
// same as ASCII ones; plain output (no padding) is used when stdout is
// not a terminal, matching the corpus's convention of degrading
// gracefully for piped/CI output.
func printRow(path, status string, width int, interactive bool) {
	if !interactive {
		fmt.Printf("%s\t%s\n", path, status)
		return
	}
	label := "path"
	pathCol := width - runewidth.StringWidth(status) - 3
	if pathCol < len(label) {
		pathCol = len(label)
	}
	fmt.Printf("%s  %s\n", runewidth.FillRight(path, pathCol), status)
}

// terminalWidth returns the width of stdout's terminal, falling back to
// 80 columns when it cannot be determined (not a terminal, or the query
// failed).
func terminalWidth() int {
	fd := int(os.Stdout.Fd())
	if !term.IsTerminal(fd) {
		return 80
	}
	w, _, err := term.GetSize(fd)
	if err != nil || w <= 0 {
		return 80
	}
	return w
}
