package usecase

import (
	"context"

	drillin "scidrill/internal/modules/drill/port/in"
	"scidrill/internal/modules/export/domain"
	"scidrill/internal/modules/export/dto"
	exportin "scidrill/internal/modules/export/port/in"
	"scidrill/internal/modules/export/service"
)

type Interactor struct {
	svc   *service.ExportService
	drill drillin.Usecase
}

func NewInteractor(svc *service.ExportService, drill drillin.Usecase) exportin.Usecase {
	return &Interactor{svc: svc, drill: drill}
}

func (i *Interactor) ExportCheatSheet(ctx context.Context, input dto.ExportInput) (dto.ExportOutput, error) {
	sheet, err := i.drill.CheatSheet(ctx)
	if err != nil {
		return dto.ExportOutput{}, err
	}
	entries := make([]domain.Entry, 0, len(sheet.Entries))
	for _, entry := range sheet.Entries {
		entries = append(entries, domain.Entry{
			Prompt:      entry.Prompt,
			Answer:      entry.Answer,
			Explanation: entry.Explanation,
		})
	}
	path, err := i.svc.Export(ctx, sheet.Event, entries, domain.Format(input.Format))
	if err != nil {
		return dto.ExportOutput{}, err
	}
	return dto.ExportOutput{Path: path, Entries: len(entries)}, nil
}
