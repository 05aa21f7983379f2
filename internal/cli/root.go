package cli

import (
	"fmt"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/bullish-design/templateer/internal/version"
	"github.com/bullish-design/templateer/pkg/binding"
	"github.com/bullish-design/templateer/pkg/config"
	"github.com/bullish-design/templateer/pkg/generator"
	"github.com/bullish-design/templateer/pkg/logging"
	"github.com/bullish-design/templateer/pkg/ui"
)

// Options configures the command tree
type Options struct {
	// Bindings defaults to binding.Default()
	Bindings *binding.Registry
}

// app holds global flag values shared by all commands
type app struct {
	bindings *binding.Registry

	verbosity   int
	projectRoot string
	templateDir string
	modelDir    string
	outputDir   string
	format      string
}

// NewRootCmd creates the root command bound to the default binding registry
func NewRootCmd() *cobra.Command {
	return NewRootCmdWithOptions(Options{})
}

// NewRootCmdWithOptions creates the root command
func NewRootCmdWithOptions(opts Options) *cobra.Command {
	initTemplateFormatting()

	a := &app{bindings: opts.Bindings}
	if a.bindings == nil {
		a.bindings = binding.Default()
	}

	rootCmd := &cobra.Command{
		Use:     "templateer",
		Short:   MsgRootShort,
		Long:    MsgRootLong,
		Version: version.Version,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			logging.SetupLogger(a.verbosity)
			log.Debug().Str("command", cmd.Name()).Msg("Command started")
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			_ = cmd.Help()
			return fmt.Errorf("no command specified")
		},
		SilenceUsage:      true,
		SilenceErrors:     true,
		DisableAutoGenTag: true,
		CompletionOptions: cobra.CompletionOptions{
			DisableDefaultCmd: true,
		},
	}

	// Global flags
	flags := rootCmd.PersistentFlags()
	flags.CountVarP(&a.verbosity, "verbose", "v", MsgFlagVerbose)
	flags.StringVar(&a.projectRoot, "project-root", "", MsgFlagProjectRoot)
	flags.StringVar(&a.templateDir, "template-dir", "", MsgFlagTemplateDir)
	flags.StringVar(&a.modelDir, "model-dir", "", MsgFlagModelDir)
	flags.StringVar(&a.outputDir, "output-dir", "", MsgFlagOutputDir)
	flags.StringVar(&a.format, "format", "auto", MsgFlagFormat)

	rootCmd.AddGroup(&cobra.Group{ID: "core", Title: "COMMANDS:"})
	rootCmd.AddGroup(&cobra.Group{ID: "inspect", Title: "INSPECT:"})
	rootCmd.AddGroup(&cobra.Group{ID: "misc", Title: "MISC:"})
	rootCmd.SetUsageTemplate(usageTemplate)

	rootCmd.AddCommand(newAutogenCmd(a))
	rootCmd.AddCommand(newGenerateCmd(a))
	rootCmd.AddCommand(newInitCmd(a))
	rootCmd.AddCommand(newVarsCmd(a))
	rootCmd.AddCommand(newRenderCmd(a))
	rootCmd.AddCommand(newListCmd(a))
	rootCmd.AddCommand(newExplainCmd(a))
	rootCmd.AddCommand(newVersionCmd())
	rootCmd.AddCommand(newCompletionCmd())

	return rootCmd
}

// loadConfig loads configuration with the global flag overrides applied
func (a *app) loadConfig(cmd *cobra.Command) (*config.Config, error) {
	cfg, err := config.Load(config.LoadOptions{
		ProjectRoot: a.projectRoot,
		Overrides: map[string]interface{}{
			"paths.template_dir": a.templateDir,
			"paths.model_dir":    a.modelDir,
			"paths.output_dir":   a.outputDir,
		},
	})
	if err != nil {
		return nil, fmt.Errorf(MsgErrLoadConfig, err)
	}

	if cfg.Root().UsedFallback() {
		_, _ = fmt.Fprintf(cmd.ErrOrStderr(), MsgFallbackWarning, cfg.ProjectRoot())
	}
	return cfg, nil
}

// driver builds a generation driver for the loaded configuration
func (a *app) driver(cfg *config.Config) *generator.Driver {
	return generator.New(generator.Options{
		Config:   cfg,
		Bindings: a.bindings,
	})
}

// printer returns a printer for the command's stdout in the selected format
func (a *app) printer(cmd *cobra.Command) (*ui.Printer, error) {
	format, err := ui.ParseFormat(a.format)
	if err != nil {
		return nil, err
	}
	return ui.NewPrinter(cmd.OutOrStdout(), format), nil
}

// verbose reports whether per-item output was requested
func (a *app) verbose() bool {
	return a.verbosity > 0
}
