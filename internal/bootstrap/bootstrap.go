package bootstrap

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"

	bankinadapter "scidrill/internal/modules/bank/adapter/in"
	bankoutadapter "scidrill/internal/modules/bank/adapter/out"
	bankservice "scidrill/internal/modules/bank/service"
	bankusecase "scidrill/internal/modules/bank/usecase"
	drillinadapter "scidrill/internal/modules/drill/adapter/in"
	drilldomain "scidrill/internal/modules/drill/domain"
	drillservice "scidrill/internal/modules/drill/service"
	drillusecase "scidrill/internal/modules/drill/usecase"
	exportinadapter "scidrill/internal/modules/export/adapter/in"
	exportoutadapter "scidrill/internal/modules/export/adapter/out"
	exportservice "scidrill/internal/modules/export/service"
	exportusecase "scidrill/internal/modules/export/usecase"
	"scidrill/internal/platform/clock"
	"scidrill/internal/platform/config"
	"scidrill/internal/platform/id"
	"scidrill/internal/platform/random"
	uiapp "scidrill/internal/ui/app"
)

type App struct {
	BankCLI   bankinadapter.CLIHandler
	DrillCLI  drillinadapter.CLIHandler
	ExportCLI exportinadapter.CLIHandler
}

func New(cfg config.Config) (*App, error) {
	return build(cfg, random.NewSystemSource())
}

// NewSeeded wires the app with a fixed sampling seed, so repeated headless
// sample runs over the same pool produce the same sequence.
func NewSeeded(cfg config.Config, seed int64) (*App, error) {
	return build(cfg, random.NewMathSource(seed))
}

func build(cfg config.Config, src random.Source) (*App, error) {
	clk := clock.SystemClock{}
	ids := id.RandomHex{}

	catalog, err := bankoutadapter.NewSQLiteCatalogProjector(cfg.DBPath)
	if err != nil {
		return nil, fmt.Errorf("new catalog projector: %w", err)
	}
	bankSvc := bankservice.NewBankService(
		bankoutadapter.NewCSVQuestionSource(cfg.CSVPath),
		bankoutadapter.NewPDFQuestionParser(),
		catalog,
	)
	bankUC := bankusecase.NewInteractor(bankSvc)

	drillSvc := drillservice.NewDrillService(clk, ids, src, drillservice.Options{
		SamplingPolicy:  drilldomain.SamplingPolicy(cfg.Drill.SamplingPolicy),
		TopicQuota:      cfg.Drill.TopicQuota,
		DefaultCount:    cfg.Drill.QuestionCount,
		QuestionSeconds: cfg.Drill.QuestionSeconds,
		CheatPolicy:     drilldomain.CheatSheetPolicy(cfg.Drill.CheatSheetPolicy),
	})
	drillUC := drillusecase.NewInteractor(drillSvc, bankUC, clk)

	exportSvc := exportservice.NewExportService(
		cfg.Drill.ExportPrefix,
		exportoutadapter.NewFileArtifactWriter(cfg.Drill.ExportDir),
	)
	exportUC := exportusecase.NewInteractor(exportSvc, drillUC)

	return &App{
		BankCLI:   bankinadapter.NewCLIHandler(bankUC),
		DrillCLI:  drillinadapter.NewCLIHandler(drillUC),
		ExportCLI: exportinadapter.NewCLIHandler(exportUC),
	}, nil
}

func RunTUI(app *App) error {
	model := uiapp.NewModel(app.BankCLI, app.DrillCLI, app.ExportCLI)
	program := tea.NewProgram(model, tea.WithAltScreen())
	_, err := program.Run()
	return err
}
