package in

import (
	"context"

	"scidrill/internal/modules/export/dto"
	exportin "scidrill/internal/modules/export/port/in"
)

type CLIHandler struct {
	usecase exportin.Usecase
}

func NewCLIHandler(usecase exportin.Usecase) CLIHandler {
	return CLIHandler{usecase: usecase}
}

func (h CLIHandler) ExportCheatSheet(ctx context.Context, format string) (dto.ExportOutput, error) {
	return h.usecase.ExportCheatSheet(ctx, dto.ExportInput{Format: format})
}
