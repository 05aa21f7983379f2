package cli

import (
	"github.com/spf13/cobra"

	"github.com/bullish-design/templateer/pkg/config"
	"github.com/bullish-design/templateer/pkg/errors"
	"github.com/bullish-design/templateer/pkg/generator"
	"github.com/bullish-design/templateer/pkg/ui"
)

func newAutogenCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:     "autogen",
		Short:   MsgAutogenShort,
		Long:    MsgAutogenLong,
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

			res, err := a.driver(cfg).Autogen()
			if err != nil {
				return err
			}

			if p.Format() == ui.FormatJSON {
				return p.JSON(newAutogenReport(cfg, res))
			}
			a.printAutogen(p, cfg, res)
			p.Printf(MsgGeneratedStubs, len(res.Stubs), res.Created(), len(res.Stubs)-res.Created())
			a.printFailureHint(p, len(res.Failures))
			return nil
		},
	}
}

func newGenerateCmd(a *app) *cobra.Command {
	var noWrite bool

	cmd := &cobra.Command{
		Use:     "generate",
		Short:   MsgGenerateShort,
		Long:    MsgGenerateLong,
		Example: MsgGenerateExample,
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

			res, err := a.driver(cfg).Generate(!noWrite)
			if err != nil {
				return err
			}

			if p.Format() == ui.FormatJSON {
				return p.JSON(newGenerateReport(cfg, res))
			}

			a.printAutogen(p, cfg, res.Autogen)
			if a.verbose() {
				for _, art := range res.Artifacts {
					msg := MsgRendered
					if !art.Written {
						msg = MsgWouldRender
					}
					p.Printf(msg, p.Style(ui.StylePath, cfg.Root().Rel(art.Path)))
				}
				for _, f := range res.Failures {
					p.Printf(MsgCouldNotRender, p.Style(ui.StyleWarning, f.Item), f.Err)
				}
			}
			p.Printf(MsgRenderedTemplates, len(res.Artifacts))
			a.printFailureHint(p, len(res.Autogen.Failures)+len(res.Failures))
			return nil
		},
	}

	cmd.Flags().BoolVar(&noWrite, "no-write", false, MsgFlagNoWrite)
	return cmd
}

// printAutogen prints one line per stub and failure in verbose mode
func (a *app) printAutogen(p *ui.Printer, cfg *config.Config, res *generator.AutogenResult) {
	if !a.verbose() {
		return
	}
	for _, s := range res.Stubs {
		rel := p.Style(ui.StylePath, cfg.Root().Rel(s.Path))
		if s.Created {
			p.Printf(MsgStubCreated, rel)
		} else {
			p.Printf(MsgStubKept, rel)
		}
	}
	for _, path := range res.Skipped {
		p.Printf(MsgTemplateSkipped, p.Style(ui.StyleMuted, cfg.Root().Rel(path)))
	}
	for _, f := range res.Failures {
		p.Printf(MsgTemplateFailed, p.Style(ui.StyleWarning, cfg.Root().Rel(f.Item)), f.Err)
	}
}

func (a *app) printFailureHint(p *ui.Printer, failed int) {
	if failed > 0 && !a.verbose() {
		p.Printf(MsgFailuresHint, failed)
	}
}

type failureReport struct {
	Item  string `json:"item"`
	Code  string `json:"code,omitempty"`
	Error string `json:"error"`
}

type stubReport struct {
	Path    string `json:"path"`
	Created bool   `json:"created"`
}

type autogenReport struct {
	Created  int             `json:"created"`
	Stubs    []stubReport    `json:"stubs"`
	Skipped  []string        `json:"skipped"`
	Failures []failureReport `json:"failures"`
}

type artifactReport struct {
	Stub    string `json:"stub"`
	Binding string `json:"binding"`
	Path    string `json:"path"`
	Written bool   `json:"written"`
}

type generateReport struct {
	Autogen   autogenReport    `json:"autogen"`
	Rendered  int              `json:"rendered"`
	Artifacts []artifactReport `json:"artifacts"`
	Failures  []failureReport  `json:"failures"`
}

func newAutogenReport(cfg *config.Config, res *generator.AutogenResult) autogenReport {
	r := autogenReport{
		Created:  res.Created(),
		Stubs:    []stubReport{},
		Skipped:  []string{},
		Failures: failureReports(cfg, res.Failures),
	}
	for _, s := range res.Stubs {
		r.Stubs = append(r.Stubs, stubReport{Path: cfg.Root().Rel(s.Path), Created: s.Created})
	}
	for _, path := range res.Skipped {
		r.Skipped = append(r.Skipped, cfg.Root().Rel(path))
	}
	return r
}

func newGenerateReport(cfg *config.Config, res *generator.GenerateResult) generateReport {
	r := generateReport{
		Autogen:   newAutogenReport(cfg, res.Autogen),
		Rendered:  len(res.Artifacts),
		Artifacts: []artifactReport{},
		Failures:  failureReports(cfg, res.Failures),
	}
	for _, art := range res.Artifacts {
		r.Artifacts = append(r.Artifacts, artifactReport{
			Stub:    art.Stub,
			Binding: art.Binding,
			Path:    cfg.Root().Rel(art.Path),
			Written: art.Written,
		})
	}
	return r
}

func failureReports(cfg *config.Config, failures []generator.Failure) []failureReport {
	reports := make([]failureReport, 0, len(failures))
	for _, f := range failures {
		reports = append(reports, failureReport{
			Item:  cfg.Root().Rel(f.Item),
			Code:  string(errors.GetErrorCode(f.Err)),
			Error: f.Err.Error(),
		})
	}
	return reports
}
