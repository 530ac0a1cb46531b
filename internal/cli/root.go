// Package cli implements the gs1parse command line.
package cli

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/ericlevine/gs1parse"
	"github.com/ericlevine/gs1parse/ai"
	"github.com/ericlevine/gs1parse/internal/config"
	"github.com/ericlevine/gs1parse/internal/logging"
)

// Build-time variables injected via ldflags.
var (
	GitCommit = "unknown"
	BuildDate = "unknown"
)

// exitError ends the process with code after the command has reported the
// problem itself.
type exitError struct {
	code int
}

func (e exitError) Error() string {
	return fmt.Sprintf("exit status %d", e.code)
}

type rootOptions struct {
	configPath string
	envFile    string
	logLevel   string
	table      string
}

// NewRootCommand builds the gs1parse command tree.
func NewRootCommand() *cobra.Command {
	opts := &rootOptions{}
	cmd := &cobra.Command{
		Use:   "gs1parse",
		Short: "Parse GS1 Application Identifier payloads",
		Long: "gs1parse splits decoded GS1 barcode payloads into Application Identifier\n" +
			"elements, formats dates and decimal quantities, and verifies check digits.",
		Version:       versionString(),
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	pf := cmd.PersistentFlags()
	pf.StringVarP(&opts.configPath, "config", "c", "", "YAML config file")
	pf.StringVar(&opts.envFile, "env-file", ".env", "dotenv file read before the environment")
	pf.StringVar(&opts.logLevel, "log-level", "", "log level (debug, info, warn, error); overrides log.level")
	pf.StringVarP(&opts.table, "table", "t", "", "AI table file (JSON or YAML); overrides registry.path")

	cmd.AddCommand(
		newParseCmd(opts),
		newAICmd(opts),
		newInfoCmd(opts),
		newServeCmd(opts),
		newVersionCmd(),
	)
	return cmd
}

// Execute runs the command line and returns the process exit code.
func Execute() int {
	return run(context.Background(), NewRootCommand(), os.Args[1:])
}

func run(ctx context.Context, cmd *cobra.Command, args []string) int {
	cmd.SetArgs(args)
	err := cmd.ExecuteContext(ctx)
	if err == nil {
		return 0
	}
	var ee exitError
	if errors.As(err, &ee) {
		return ee.code
	}
	fmt.Fprintf(cmd.ErrOrStderr(), "Error: %v\n", err)
	return 1
}

func versionString() string {
	return fmt.Sprintf("%s (commit: %s, built: %s)", gs1parse.Version, GitCommit, BuildDate)
}

// setup loads the configuration with flag overrides applied and builds the
// logger.
func setup(opts *rootOptions) (*config.Config, logging.Logger, error) {
	if opts.envFile != "" {
		if err := config.LoadDotEnv(opts.envFile); err != nil {
			return nil, nil, err
		}
	}
	cfg, err := config.Load(opts.configPath)
	if err != nil {
		return nil, nil, err
	}
	if opts.table != "" {
		cfg.Registry.Path = opts.table
	}
	if opts.logLevel != "" {
		cfg.Log.Level = opts.logLevel
	}
	log, err := logging.New(cfg.Log)
	if err != nil {
		return nil, nil, err
	}
	return cfg, log, nil
}

// openRegistry loads the configured AI table. A table that cannot be read
// is logged and replaced by the fallback table.
func openRegistry(cfg *config.Config, log logging.Logger) *ai.Registry {
	reg, err := ai.Open(cfg.Registry.Path)
	if err != nil {
		log.Warn("AI table unavailable, using fallback table",
			logging.String("path", cfg.Registry.Path), logging.Err(err))
	}
	log.Debug("AI table loaded",
		logging.String("source", reg.Source()), logging.Int("size", reg.Len()))
	return reg
}
