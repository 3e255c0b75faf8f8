package files

import (
	"mime"
	"net/http"
	"os"
	"path/filepath"
)

// File describes a file that has been selected but not yet read.
type File struct {
	// Name is the display name, usually the base name of Path.
	Name string

	// Path locates the file for the reader.
	Path string

	// Size is the size in bytes, when known.
	Size int64

	// Type is the MIME type, when known. Readers detect it if empty.
	Type string
}

// Data holds the contents of a completed read.
type Data struct {
	Name    string
	Content []byte
	Type    string
}

// FromPath builds a File descriptor for a local path. Size and Type are
// filled in on a best-effort basis; a stat failure leaves them zero.
func FromPath(path string) File {
	f := File{
		Name: filepath.Base(path),
		Path: path,
		Type: typeByName(path),
	}
	if info, err := os.Stat(path); err == nil && !info.IsDir() {
		f.Size = info.Size()
	}
	return f
}

// typeByName resolves a MIME type from the file extension alone. The
// result is stripped of parameters such as charset.
func typeByName(name string) string {
	t := mime.TypeByExtension(filepath.Ext(name))
	if t == "" {
		return ""
	}
	if mediaType, _, err := mime.ParseMediaType(t); err == nil {
		return mediaType
	}
	return t
}

// detectType resolves a MIME type for loaded content, preferring the
// file extension and falling back to content sniffing.
func detectType(name string, content []byte) string {
	if t := typeByName(name); t != "" {
		return t
	}
	return http.DetectContentType(content)
}
