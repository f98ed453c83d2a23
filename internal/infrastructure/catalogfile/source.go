package catalogfile

import (
	"context"

	"github.com/jaras-platform/jaras/internal/domain/catalog"
)

// FileSource serves the catalog straight from a YAML file. The file is
// read on every call, so edits are picked up by the next provider reload.
type FileSource struct {
	path string
}

func NewFileSource(path string) *FileSource {
	return &FileSource{path: path}
}

func (s *FileSource) Path() string {
	return s.path
}

func (s *FileSource) load() ([]*catalog.Plan, []*catalog.Addon, error) {
	doc, err := ReadFile(s.path)
	if err != nil {
		return nil, nil, err
	}
	return doc.Entities()
}

func (s *FileSource) ListActivePlans(ctx context.Context) ([]*catalog.Plan, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	plans, _, err := s.load()
	if err != nil {
		return nil, err
	}
	return catalog.NewSnapshot(plans, nil).Plans(), nil
}

func (s *FileSource) ListActiveAddons(ctx context.Context) ([]*catalog.Addon, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	_, addons, err := s.load()
	if err != nil {
		return nil, err
	}
	return catalog.NewSnapshot(nil, addons).Addons(), nil
}
