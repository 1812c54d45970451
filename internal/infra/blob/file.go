package blob

import (
	"context"
	"log/slog"
	"os"
	"path/filepath"

	"hotel-booking-api/internal/infra"
)

// FileBackend keeps each namespace key as <dir>/<key>.json. Writes go to a
// temp file first and are renamed into place, so readers never observe a
// half-written collection.
type FileBackend struct {
	dir    string
	logger *slog.Logger
}

func NewFileBackend(dir string, logger *slog.Logger) (*FileBackend, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, infra.WrapRepoErr(logger, infra.KindIOFailure, "failed to create store directory", err)
	}
	return &FileBackend{dir: dir, logger: logger}, nil
}

func (b *FileBackend) Load(_ context.Context, key string) ([]byte, error) {
	data, err := os.ReadFile(b.path(key))
	if err != nil {
		if os.IsNotExist(err) {
			return nil, infra.NewRepoErr(infra.KindNotFound, "blob "+key+" does not exist")
		}
		return nil, infra.WrapRepoErr(b.logger, infra.KindIOFailure, "failed to read blob", err)
	}
	return data, nil
}

func (b *FileBackend) Store(_ context.Context, key string, data []byte) error {
	target := b.path(key)

	tmp, err := os.CreateTemp(b.dir, key+".tmp-*")
	if err != nil {
		return infra.WrapRepoErr(b.logger, infra.KindIOFailure, "failed to create temp blob", err)
	}
	tmpName := tmp.Name()

	if _, err = tmp.Write(data); err != nil {
		_ = tmp.Close()
		_ = os.Remove(tmpName)
		return infra.WrapRepoErr(b.logger, infra.KindIOFailure, "failed to write temp blob", err)
	}
	if err = tmp.Close(); err != nil {
		_ = os.Remove(tmpName)
		return infra.WrapRepoErr(b.logger, infra.KindIOFailure, "failed to close temp blob", err)
	}

	if err = os.Rename(tmpName, target); err != nil {
		_ = os.Remove(tmpName)
		return infra.WrapRepoErr(b.logger, infra.KindIOFailure, "failed to replace blob", err)
	}
	return nil
}

func (b *FileBackend) path(key string) string {
	return filepath.Join(b.dir, key+".json")
}
