package cli

import (
	_ "embed"
	"strings"
)

// Short messages (one-liners)
const (
	// Command descriptions
	MsgRootShort       = "Generate typed bindings from templates and render them"
	MsgAutogenShort    = "Write model stubs for templates that lack one"
	MsgGenerateShort   = "Render every registered binding to the output directory"
	MsgVarsShort       = "Print the variables a template references"
	MsgRenderShort     = "Render one registered binding to stdout"
	MsgListShort       = "List registered bindings"
	MsgInitShort       = "Create a starter config and the project directories"
	MsgExplainShort    = "Explain templateer conventions and configuration"
	MsgVersionShort    = "Print version information"
	MsgCompletionShort = "Generate shell completion scripts"

	// Pass output
	MsgStubCreated       = "[templateer] model stub → %s\n"
	MsgStubKept          = "[templateer] model stub kept %s\n"
	MsgTemplateSkipped   = "[templateer] no template in %s\n"
	MsgTemplateFailed    = "⚠️ %s could not be processed: %v\n"
	MsgRendered          = "[templateer] rendered → %s\n"
	MsgWouldRender       = "[templateer] would render → %s\n"
	MsgCouldNotRender    = "⚠️ %s could not render: %v\n"
	MsgGeneratedStubs    = "Generated %d model stubs (%d new, %d kept)\n"
	MsgRenderedTemplates = "Rendered %d templates\n"
	MsgFailuresHint      = "%d failed; rerun with -v for details\n"

	// init output
	MsgConfigCreated = "Created %s\n"
	MsgConfigKept    = "Kept existing %s\n"
	MsgDirReady      = "Directory %s\n"
	MsgExampleAdded  = "Added example template %s\n"

	// list output
	MsgNoBindings = "No bindings registered. Run autogen, then rebuild the program importing the model package."

	// MsgBrokenBinding fills the template column when a constructor fails
	MsgBrokenBinding = "(constructor failed)"

	// explain output
	MsgTopicsHeader = "Topics:"
	MsgTopicItem    = "  %s\n"

	// Version output
	MsgVersionFormat = "templateer version %s\n"
	MsgCommitFormat  = "Commit: %s\n"
	MsgBuiltFormat   = "Built:  %s\n"

	// Warnings
	MsgFallbackWarning = "Warning: no git repository or TEMPLATEER_PROJECT_ROOT found, using current directory %s\n"

	// Error messages
	MsgErrLoadConfig   = "failed to load configuration: %w"
	MsgErrUnknownTopic = "unknown topic %q"
	MsgErrWriteFile    = "failed to write %s"

	// Flag descriptions
	MsgFlagVerbose     = "Increase verbosity (-v INFO, -vv DEBUG, -vvv TRACE)"
	MsgFlagProjectRoot = "Project root (default: git toplevel or current directory)"
	MsgFlagTemplateDir = "Template directory, overriding configuration"
	MsgFlagModelDir    = "Model stub directory, overriding configuration"
	MsgFlagOutputDir   = "Output directory, overriding configuration"
	MsgFlagFormat      = "Output format: auto, term, text or json"
	MsgFlagNoWrite     = "Render without writing output files"
	MsgFlagExample     = "Also add an example template"
)

// Long messages from embedded files
var (
	//go:embed msgs/root-long.txt
	msgRootLongRaw string
	MsgRootLong    = strings.TrimSpace(msgRootLongRaw)

	//go:embed msgs/autogen-long.txt
	msgAutogenLongRaw string
	MsgAutogenLong    = strings.TrimSpace(msgAutogenLongRaw)

	//go:embed msgs/generate-long.txt
	msgGenerateLongRaw string
	MsgGenerateLong    = strings.TrimSpace(msgGenerateLongRaw)

	//go:embed msgs/generate-example.txt
	msgGenerateExampleRaw string
	MsgGenerateExample    = strings.TrimRight(msgGenerateExampleRaw, "\n")

	//go:embed msgs/init-long.txt
	msgInitLongRaw string
	MsgInitLong    = strings.TrimSpace(msgInitLongRaw)
)
