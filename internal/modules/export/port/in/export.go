package in

import (
	"context"

	"scidrill/internal/modules/export/dto"
)

type Usecase interface {
	ExportCheatSheet(ctx context.Context, input dto.ExportInput) (dto.ExportOutput, error)
}
