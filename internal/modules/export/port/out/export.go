package out

import "context"

// ArtifactWriter persists a rendered export and returns its full path.
type ArtifactWriter interface {
	Write(ctx context.Context, name string, data []byte) (string, error)
}
