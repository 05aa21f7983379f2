package cli

import (
	"fmt"
	"path/filepath"
	"strings"
	"text/tabwriter"

	"github.com/pterm/pterm"
	"github.com/spf13/cobra"

	"github.com/bullish-design/templateer/internal/version"
	"github.com/bullish-design/templateer/pkg/binding"
	"github.com/bullish-design/templateer/pkg/engine"
	"github.com/bullish-design/templateer/pkg/extract"
	"github.com/bullish-design/templateer/pkg/filesystem"
	"github.com/bullish-design/templateer/pkg/source"
	"github.com/bullish-design/templateer/pkg/ui"
)

func newVarsCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:     "vars <template>",
		Short:   MsgVarsShort,
		Long:    "Print the sorted variables of a template, given as a file path or a stem in the template directory.",
		Args:    cobra.ExactArgs(1),
		GroupID: "inspect",
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
			def, err := source.Load(fsys, templatePath(fsys, cfg.TemplateDir(), args[0]), cfg.Templates.Attr)
			if err != nil {
				return err
			}

			vars, err := extract.New(engine.New(cfg.Templates.LeftDelim, cfg.Templates.RightDelim)).Extract(def.Text)
			if err != nil {
				return err
			}

			names := vars.Sorted()
			if p.Format() == ui.FormatJSON {
				return p.JSON(names)
			}
			for _, name := range names {
				p.Println(name)
			}
			return nil
		},
	}
}

// templatePath accepts a path to a module or a bare stem in the template directory
func templatePath(fsys filesystem.FS, templateDir, arg string) string {
	if filesystem.Exists(fsys, arg) {
		return arg
	}
	if !strings.HasSuffix(arg, ".go") {
		arg += ".go"
	}
	return filepath.Join(templateDir, arg)
}

func newRenderCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:     "render <binding>",
		Short:   MsgRenderShort,
		Long:    "Render a single registered binding and print the result without writing it.",
		Args:    cobra.ExactArgs(1),
		GroupID: "inspect",
		ValidArgsFunction: func(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
			return bindingNames(a.bindings), cobra.ShellCompDirectiveNoFileComp
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := a.loadConfig(cmd)
			if err != nil {
				return err
			}

			art, err := a.driver(cfg).RenderOne(args[0], false)
			if err != nil {
				return err
			}
			_, err = fmt.Fprint(cmd.OutOrStdout(), art.Text)
			return err
		},
	}
}

func bindingNames(reg *binding.Registry) []string {
	entries := reg.Entries()
	names := make([]string, len(entries))
	for i, e := range entries {
		names[i] = e.Name
	}
	return names
}

type bindingReport struct {
	Name     string `json:"name"`
	Stub     string `json:"stub"`
	Template string `json:"template"`
	Output   string `json:"output"`
	Error    string `json:"error,omitempty"`
}

func newListCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:     "list",
		Short:   MsgListShort,
		Args:    cobra.NoArgs,
		GroupID: "inspect",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := a.loadConfig(cmd)
			if err != nil {
				return err
			}
			p, err := a.printer(cmd)
			if err != nil {
				return err
			}

			renderer := a.driver(cfg).Renderer()
			rows := []bindingReport{}
			for _, e := range a.bindings.Entries() {
				row := bindingReport{Name: e.Name, Stub: e.Stub}
				b, err := e.Construct()
				if err != nil {
					row.Template = MsgBrokenBinding
					row.Error = err.Error()
				} else {
					row.Template = b.TemplateRef()
					row.Output = cfg.Root().Rel(renderer.OutputPath(b))
				}
				rows = append(rows, row)
			}

			switch {
			case p.Format() == ui.FormatJSON:
				return p.JSON(rows)
			case len(rows) == 0:
				p.Println(MsgNoBindings)
				return nil
			case p.Format() == ui.FormatTerminal:
				data := pterm.TableData{{"BINDING", "STUB", "TEMPLATE", "OUTPUT"}}
				for _, r := range rows {
					data = append(data, []string{r.Name, r.Stub, r.Template, r.Output})
				}
				table, err := pterm.DefaultTable.WithHasHeader().WithData(data).Srender()
				if err != nil {
					return err
				}
				p.Println(table)
				return nil
			default:
				w := tabwriter.NewWriter(p.Writer(), 0, 0, 2, ' ', 0)
				_, _ = fmt.Fprintln(w, "BINDING\tSTUB\tTEMPLATE\tOUTPUT")
				for _, r := range rows {
					_, _ = fmt.Fprintf(w, "%s\t%s\t%s\t%s\n", r.Name, r.Stub, r.Template, r.Output)
				}
				return w.Flush()
			}
		},
	}
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:     "version",
		Short:   MsgVersionShort,
		Args:    cobra.NoArgs,
		GroupID: "misc",
		Run: func(cmd *cobra.Command, args []string) {
			out := cmd.OutOrStdout()
			_, _ = fmt.Fprintf(out, MsgVersionFormat, version.Version)
			_, _ = fmt.Fprintf(out, MsgCommitFormat, version.Commit)
			_, _ = fmt.Fprintf(out, MsgBuiltFormat, version.Date)
		},
	}
}

func newCompletionCmd() *cobra.Command {
	return &cobra.Command{
		Use:                   "completion [bash|zsh|fish|powershell]",
		Short:                 MsgCompletionShort,
		DisableFlagsInUseLine: true,
		ValidArgs:             []string{"bash", "zsh", "fish", "powershell"},
		Args:                  cobra.MatchAll(cobra.ExactArgs(1), cobra.OnlyValidArgs),
		GroupID:               "misc",
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			switch args[0] {
			case "bash":
				return cmd.Root().GenBashCompletionV2(out, true)
			case "zsh":
				return cmd.Root().GenZshCompletion(out)
			case "fish":
				return cmd.Root().GenFishCompletion(out, true)
			case "powershell":
				return cmd.Root().GenPowerShellCompletionWithDesc(out)
			}
			return nil
		},
	}
}

