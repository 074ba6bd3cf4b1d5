package decorator

import (
	"context"
	"os"

	"github.com/kbukum/patternkit/errors"
)

// DataSource is the component interface decorators wrap.
type DataSource interface {
	Write(ctx context.Context, data []byte) error
	Read(ctx context.Context) ([]byte, error)
}

// FileSource is the concrete component: bytes on disk.
type FileSource struct {
	path string
}

// NewFileSource creates a data source backed by the file at path.
func NewFileSource(path string) *FileSource {
	return &FileSource{path: path}
}

func (f *FileSource) Write(_ context.Context, data []byte) error {
	if err := os.WriteFile(f.path, data, 0o600); err != nil {
		return errors.IO("write "+f.path, err)
	}
	return nil
}

func (f *FileSource) Read(_ context.Context) ([]byte, error) {
	data, err := os.ReadFile(f.path)
	if err != nil {
		return nil, errors.IO("read "+f.path, err)
	}
	return data, nil
}

// MemorySource keeps bytes in memory. Used in tests and anywhere a demo
// should not touch the filesystem.
type MemorySource struct {
	data []byte
}

func NewMemorySource() *MemorySource { return &MemorySource{} }

func (m *MemorySource) Write(_ context.Context, data []byte) error {
	m.data = append(m.data[:0], data...)
	return nil
}

func (m *MemorySource) Read(_ context.Context) ([]byte, error) {
	return append([]byte(nil), m.data...), nil
}
