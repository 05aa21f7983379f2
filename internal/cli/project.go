package cli

import (
	"embed"
	stderrors "errors"
	"io/fs"
	"path/filepath"
	"sort"
	"strings"

	"github.com/spf13/cobra"

	"github.com/bullish-design/templateer/pkg/config"
	"github.com/bullish-design/templateer/pkg/errors"
	"github.com/bullish-design/templateer/pkg/filesystem"
	"github.com/bullish-design/templateer/pkg/ui"
)

// exampleTemplate is written by init --example
const exampleTemplate = "package templates\n\n" +
	"// Template renders a greeting function.\n" +
	"const Template = `package greetings\n\n" +
	"// {{ .function_name }} greets {{ .name }}.\n" +
	"func {{ .function_name }}() string {\n" +
	"\treturn {{ quote .greeting }}\n" +
	"}\n" +
	"`\n"

func newInitCmd(a *app) *cobra.Command {
	var example bool

	cmd := &cobra.Command{
		Use:     "init",
		Short:   MsgInitShort,
		Long:    MsgInitLong,
		Args:    cobra.NoArgs,
		GroupID: "core",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := a.loadConfig(cmd)
			if err != nil {
				return err
			}
			p, err := a.printer(cmd)
			if err != nil {
				return err
			}
			fsys := filesystem.NewOS()

			configPath := filepath.Join(cfg.ProjectRoot(), config.ProjectConfigFiles[0])
			created, err := createOnce(fsys, configPath, func() ([]byte, error) { return config.Render(cfg) })
			if err != nil {
				return err
			}
			if created {
				p.Printf(MsgConfigCreated, p.Style(ui.StyleSuccess, cfg.Root().Rel(configPath)))
			} else {
				p.Printf(MsgConfigKept, p.Style(ui.StyleMuted, cfg.Root().Rel(configPath)))
			}

			for _, dir := range []string{cfg.TemplateDir(), cfg.ModelDir(), cfg.OutputDir()} {
				if err := fsys.MkdirAll(dir, 0755); err != nil {
					return errors.Wrapf(err, errors.ErrDirCreate, "failed to create %s", dir)
				}
				p.Printf(MsgDirReady, p.Style(ui.StylePath, cfg.Root().Rel(dir)))
			}

			if example {
				path := filepath.Join(cfg.TemplateDir(), "greeting_function.go")
				created, err := createOnce(fsys, path, func() ([]byte, error) { return []byte(exampleTemplate), nil })
				if err != nil {
					return err
				}
				if created {
					p.Printf(MsgExampleAdded, p.Style(ui.StylePath, cfg.Root().Rel(path)))
				}
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&example, "example", false, MsgFlagExample)
	return cmd
}

// createOnce writes the content produced by fn to path unless path exists
func createOnce(fsys filesystem.FS, path string, fn func() ([]byte, error)) (bool, error) {
	if filesystem.Exists(fsys, path) {
		return false, nil
	}
	data, err := fn()
	if err != nil {
		return false, err
	}
	if err := fsys.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return false, errors.Wrapf(err, errors.ErrDirCreate, "failed to create %s", filepath.Dir(path))
	}
	if err := fsys.CreateExclusive(path, data, 0644); err != nil {
		if stderrors.Is(err, fs.ErrExist) {
			return false, nil
		}
		return false, errors.Wrapf(err, errors.ErrFileWrite, MsgErrWriteFile, path)
	}
	return true, nil
}

//go:embed topics/*.md
var topicFS embed.FS

// topicNames lists the embedded help topics
func topicNames() []string {
	entries, _ := fs.ReadDir(topicFS, "topics")
	names := make([]string, 0, len(entries))
	for _, e := range entries {
		names = append(names, strings.TrimSuffix(e.Name(), ".md"))
	}
	sort.Strings(names)
	return names
}

func newExplainCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:       "explain [topic]",
		Short:     MsgExplainShort,
		Args:      cobra.MaximumNArgs(1),
		ValidArgs: topicNames(),
		GroupID:   "misc",
		RunE: func(cmd *cobra.Command, args []string) error {
			p, err := a.printer(cmd)
			if err != nil {
				return err
			}

			if len(args) == 0 {
				p.Header(MsgTopicsHeader)
				for _, name := range topicNames() {
					p.Printf(MsgTopicItem, name)
				}
				return nil
			}

			content, err := topicFS.ReadFile("topics/" + args[0] + ".md")
			if err != nil {
				return errors.Newf(errors.ErrNotFound, MsgErrUnknownTopic, args[0])
			}
			p.Println(p.Markdown(string(content)))
			return nil
		},
	}
}
