// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package main is the entry point for the escala CLI. It reads one roster
// PDF and prints the extracted roster as a single document on stdout.
package main

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/pdiddy/escala-extractor/internal/convert"
	"github.com/pdiddy/escala-extractor/internal/document"
	"github.com/pdiddy/escala-extractor/internal/render"
	"github.com/pdiddy/escala-extractor/pkg/types"
)

// version is set at build time via ldflags.
var version = "dev"

// rootCmd extracts a roster from the PDF named by its only argument.
var rootCmd = &cobra.Command{
	Use:   "escala <pdf>",
	Short: "Extract duty roster data from military schedule PDFs",
	Long: `escala reads a duty roster (escala de serviço) PDF and prints its header,
the personnel listed under each shift (pernoite, manha, tarde, diario), the
observation lines, and per-shift counts as JSON.

A document that cannot be opened or read still exits 0; the output is then a
single-key object {"erro": "..."} that callers must check for.`,
	Args: func(cmd *cobra.Command, args []string) error {
		if err := cobra.ExactArgs(1)(cmd, args); err != nil {
			return usageError{err}
		}
		return nil
	},
	SilenceErrors: true,
	SilenceUsage:  true,
	RunE: func(cmd *cobra.Command, args []string) error {
		return run(loadConfig(), args[0], cmd.OutOrStdout(), cmd.ErrOrStderr())
	},
}

// usageError marks errors caused by how the command was invoked; they are
// followed by the usage text.
type usageError struct {
	err error
}

func (e usageError) Error() string { return e.err.Error() }

func (e usageError) Unwrap() error { return e.err }

func init() {
	cobra.OnInitialize(initConfig)
	rootCmd.SetFlagErrorFunc(func(_ *cobra.Command, err error) error {
		return usageError{err}
	})

	rootCmd.PersistentFlags().String("config", "", "config file (default: ./escala.yaml or ~/.config/escala/escala.yaml)")

	flags := rootCmd.Flags()
	flags.String("format", string(types.OutputJSON), "output format: json, yaml, or html")
	flags.String("layout", string(types.LayoutRows), "text linearization: rows or plain")
	flags.Bool("sanitize", false, "sanitize html output")
	flags.BoolP("verbose", "v", false, "print scan diagnostics to stderr")

	for _, key := range []string{"format", "layout", "sanitize", "verbose"} {
		if err := viper.BindPFlag(key, flags.Lookup(key)); err != nil {
			panic(err)
		}
	}
}

func initConfig() {
	cfgFile, _ := rootCmd.PersistentFlags().GetString("config")
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		viper.SetConfigName("escala")
		viper.SetConfigType("yaml")
		viper.AddConfigPath(".")

		home, err := os.UserHomeDir()
		if err == nil {
			viper.AddConfigPath(filepath.Join(home, ".config", "escala"))
		}
	}

	viper.SetEnvPrefix("ESCALA")
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err == nil {
		fmt.Fprintln(os.Stderr, "Using config file:", viper.ConfigFileUsed())
	}
}

func loadConfig() types.Config {
	return types.Config{
		Format:   types.OutputFormat(viper.GetString("format")),
		Layout:   types.TextLayout(viper.GetString("layout")),
		Sanitize: viper.GetBool("sanitize"),
		Verbose:  viper.GetBool("verbose"),
	}
}

// run converts pdfPath and writes the outcome to stdout. Document failures
// are part of the output, not errors; run only fails on bad settings or when
// stdout cannot be written.
func run(cfg types.Config, pdfPath string, stdout, stderr io.Writer) error {
	switch cfg.Format {
	case "", types.OutputJSON, types.OutputYAML, types.OutputHTML:
	default:
		return fmt.Errorf("unknown output format %q (want json, yaml, or html)", cfg.Format)
	}

	loader, err := document.NewPDFLoader(cfg.Layout)
	if err != nil {
		return err
	}

	log := io.Discard
	if cfg.Verbose {
		log = stderr
	}

	out := convert.ConvertRoster(loader, pdfPath, log)
	return render.Write(stdout, cfg.Format, cfg.Sanitize, out.Document())
}

// execute runs the CLI with args and returns the process exit code. Errors
// go to stderr, with the usage text when the invocation itself was wrong.
func execute(args []string, stdout, stderr io.Writer) int {
	rootCmd.SetArgs(args)
	rootCmd.SetOut(stdout)
	rootCmd.SetErr(stderr)

	cmd, err := rootCmd.ExecuteC()
	if err == nil {
		return 0
	}
	fmt.Fprintln(stderr, "Error:", err)
	var ue usageError
	if errors.As(err, &ue) {
		fmt.Fprint(stderr, cmd.UsageString())
	}
	return 1
}

func main() {
	os.Exit(execute(os.Args[1:], os.Stdout, os.Stderr))
}
