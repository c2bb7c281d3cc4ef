package main

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/alucardeht/figuras/internal/config"
	"github.com/alucardeht/figuras/internal/logger"
	"github.com/alucardeht/figuras/internal/report"
	"github.com/alucardeht/figuras/internal/shape"
	"github.com/alucardeht/figuras/internal/tools"
	"github.com/alucardeht/figuras/internal/tools/geometry"
	"github.com/alucardeht/figuras/pkg/protocol"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var (
	// Global flags
	configPath  string
	verbose     bool
	showDetails bool
	locale      string
	strict      bool

	// tools flags
	toolFilter string

	cfg *config.Config
)

var rootCmd = &cobra.Command{
	Use:   "figuras",
	Short: "Compute the areas of sample geometric shapes",
	Long: `figuras builds a rectangle, a triangle and a circle from the configured
sample dimensions and prints the area of each one.

Shape queries (area, description, details, large-area check) are also
available as named tools taking JSON input; see "figuras tools".`,
	SilenceUsage:      true,
	SilenceErrors:     true,
	PersistentPreRunE: setup,
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		logger.Sync()
	},
	RunE: runReport,
}

var toolsCmd = &cobra.Command{
	Use:   "tools",
	Short: "List the shape tools as JSON definitions",
	Args:  cobra.NoArgs,
	RunE:  runTools,
}

var callCmd = &cobra.Command{
	Use:   "call [tool] [json]",
	Short: "Execute a shape tool with JSON input",
	Long: `Executes a tool and prints its result as JSON.

Example:
  figuras call shape_is_large_area '{"shape":"rectangle","dimensions":{"width":10,"height":5},"threshold":40}'`,
	Args: cobra.RangeArgs(1, 2),
	RunE: runCall,
}

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Configuration commands",
}

var configInitCmd = &cobra.Command{
	Use:   "init [path]",
	Short: "Write the default configuration as YAML",
	Args:  cobra.MaximumNArgs(1),
	RunE:  runConfigInit,
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&configPath, "config", "c", "", "Path to a YAML config file")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable debug logging")
	rootCmd.PersistentFlags().BoolVar(&strict, "strict", false, "Reject zero, negative and non-finite dimensions")
	rootCmd.Flags().BoolVarP(&showDetails, "details", "d", false, "Print description and dimensions of each shape")
	rootCmd.Flags().StringVar(&locale, "locale", "", "Format numbers for a locale such as es or es-AR")

	toolsCmd.Flags().StringVar(&toolFilter, "filter", "*", "Glob over tool names")

	configCmd.AddCommand(configInitCmd)
	rootCmd.AddCommand(toolsCmd, callCmd, configCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		logger.Error("command failed", zap.Error(err))
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func setup(cmd *cobra.Command, args []string) error {
	loaded, err := config.Load(configPath)
	if err != nil {
		return err
	}

	if verbose {
		loaded.Logging.Level = "debug"
	}
	if strict {
		loaded.Validation.Strict = true
	}
	if showDetails {
		loaded.Output.Details = true
	}
	if locale != "" {
		loaded.Output.Locale = locale
	}

	if err := logger.Init(loaded.Logger()); err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}

	cfg = loaded
	logger.Debug("config loaded",
		zap.String("path", configPath),
		zap.Bool("strict", cfg.Validation.Strict),
		zap.String("locale", cfg.Output.Locale))
	return nil
}

func shapeOptions() []shape.Option {
	if cfg.Validation.Strict {
		return []shape.Option{shape.WithStrict()}
	}
	return nil
}

func runReport(cmd *cobra.Command, args []string) error {
	shapes, err := report.Samples(cfg.Samples, shapeOptions()...)
	if err != nil {
		return err
	}

	opts := []report.Option{report.WithLocale(cfg.Output.Locale)}
	if cfg.Output.Details {
		opts = append(opts, report.WithDetails())
	}

	p, err := report.New(cmd.OutOrStdout(), opts...)
	if err != nil {
		return err
	}
	if err := p.Print(shapes...); err != nil {
		return err
	}
	logger.Info("report printed", zap.Int("shapes", len(shapes)), zap.String("locale", cfg.Output.Locale))
	return nil
}

func newRegistry() (*tools.Registry, error) {
	r := tools.NewRegistry()
	if err := r.RegisterAll(geometry.GetTools(cfg.Validation.Strict)); err != nil {
		return nil, err
	}
	logger.ForComponent("cli").Debug("tools registered", zap.Strings("tools", r.Names()))
	return r, nil
}

func runTools(cmd *cobra.Command, args []string) error {
	r, err := newRegistry()
	if err != nil {
		return err
	}

	matched, err := r.Match(toolFilter)
	if err != nil {
		return err
	}
	return writeJSON(cmd.OutOrStdout(), tools.Definitions(matched))
}

func runCall(cmd *cobra.Command, args []string) error {
	r, err := newRegistry()
	if err != nil {
		return err
	}

	name := args[0]
	input := json.RawMessage(`{}`)
	if len(args) > 1 {
		input = json.RawMessage(args[1])
	}

	result := protocol.CallResult{Tool: name}
	out, err := r.Execute(name, input)
	if err == nil {
		result.Result = out
		var buf bytes.Buffer
		if err = writeJSON(&buf, result); err == nil {
			_, werr := buf.WriteTo(cmd.OutOrStdout())
			return werr
		}
		result.Result = nil
	}

	te := tools.AsToolError(name, err)
	logger.Warn("tool call failed", zap.String("tool", name), zap.Int("code", te.Code), zap.Error(te))
	result.Error = &protocol.CallError{Code: te.Code, Message: te.Message}
	if werr := writeJSON(cmd.OutOrStdout(), result); werr != nil {
		return werr
	}
	return te
}

func runConfigInit(cmd *cobra.Command, args []string) error {
	path := "figuras.yaml"
	if len(args) > 0 {
		path = args[0]
	}

	if _, err := os.Stat(path); err == nil {
		return fmt.Errorf("config already exists: %s", path)
	}

	if err := config.DefaultConfig().Save(path); err != nil {
		return err
	}
	fmt.Fprintf(cmd.OutOrStdout(), "Wrote %s\n", path)
	return nil
}

func writeJSON(w io.Writer, v interface{}) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
