package ratetable

import (
	"context"
	"fmt"
	"io/fs"

	json "github.com/goccy/go-json"

	"github.com/feewhiz/feewhiz/internal/model"
)

// Source yields the rate document for a platform.
type Source interface {
	Document(ctx context.Context, platform string) (*model.RateDocument, error)
}

// FSSource reads <platform>.json from a file system, either the embedded
// bundle or a directory opened with os.DirFS.
type FSSource struct {
	FS fs.FS
}

func (s FSSource) Document(_ context.Context, platform string) (*model.RateDocument, error) {
	data, err := fs.ReadFile(s.FS, platform+".json")
	if err != nil {
		return nil, fmt.Errorf("read %s rate document: %w", platform, err)
	}

	var doc model.RateDocument
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("parse %s rate document: %w", platform, err)
	}
	return &doc, nil
}

// DocumentStore is implemented by the Postgres rate-table repository.
type DocumentStore interface {
	LoadDocument(ctx context.Context, platform string) (*model.RateDocument, error)
}

type RepositorySource struct {
	Store DocumentStore
}

func (s RepositorySource) Document(ctx context.Context, platform string) (*model.RateDocument, error) {
	doc, err := s.Store.LoadDocument(ctx, platform)
	if err != nil {
		return nil, fmt.Errorf("load %s rate document: %w", platform, err)
	}
	return doc, nil
}
