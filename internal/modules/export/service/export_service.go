package service

import (
	"context"

	"scidrill/internal/modules/export/domain"
	exportout "scidrill/internal/modules/export/port/out"
)

type ExportService struct {
	prefix string
	writer exportout.ArtifactWriter
}

func NewExportService(prefix string, writer exportout.ArtifactWriter) *ExportService {
	if prefix == "" {
		prefix = "SciOly"
	}
	return &ExportService{prefix: prefix, writer: writer}
}

func (s *ExportService) Export(ctx context.Context, event string, entries []domain.Entry, format domain.Format) (string, error) {
	if err := format.Validate(); err != nil {
		return "", err
	}
	body, err := domain.Render(entries)
	if err != nil {
		return "", err
	}
	return s.writer.Write(ctx, domain.Filename(s.prefix, event, format), []byte(body))
}
