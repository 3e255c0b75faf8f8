package files

import (
	"fmt"
	"os"
	"path/filepath"
)

// Reader schedules asynchronous file reads. Read returns immediately;
// fn receives the loaded Data, or a non-nil error, at most once. The
// returned Task can be cancelled to suppress delivery.
type Reader interface {
	Read(f File, fn func(Data, error)) *Task
}

// LocalReader reads files from the local filesystem. The zero value is
// usable and imposes no size limit.
type LocalReader struct {
	maxBytes int64
}

// LocalOption configures a LocalReader.
type LocalOption func(*LocalReader)

// WithMaxBytes rejects files larger than n bytes with ErrTooLarge.
// A non-positive n disables the limit.
func WithMaxBytes(n int64) LocalOption {
	return func(r *LocalReader) {
		r.maxBytes = n
	}
}

// NewLocalReader builds a LocalReader with the given options.
func NewLocalReader(opts ...LocalOption) *LocalReader {
	r := &LocalReader{}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Read loads f on a new goroutine and delivers the result to fn.
func (r *LocalReader) Read(f File, fn func(Data, error)) *Task {
	t := NewTask()
	go func() {
		data, err := r.load(f)
		t.Complete(func() {
			if err != nil {
				fn(Data{}, fmt.Errorf("read %s: %w", f.Path, err))
				return
			}
			fn(data, nil)
		})
	}()
	return t
}

func (r *LocalReader) load(f File) (Data, error) {
	info, err := os.Stat(f.Path)
	if err != nil {
		if os.IsNotExist(err) {
			return Data{}, ErrNotFound
		}
		return Data{}, err
	}
	if info.IsDir() {
		return Data{}, ErrIsDirectory
	}
	if r.maxBytes > 0 && info.Size() > r.maxBytes {
		return Data{}, ErrTooLarge
	}

	content, err := os.ReadFile(f.Path)
	if err != nil {
		return Data{}, err
	}

	name := f.Name
	if name == "" {
		name = filepath.Base(f.Path)
	}
	typ := f.Type
	if typ == "" {
		typ = detectType(name, content)
	}
	return Data{Name: name, Content: content, Type: typ}, nil
}
