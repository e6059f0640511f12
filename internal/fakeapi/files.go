package fakeapi

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"mime"
	"net/http"
	"net/url"
	"os"
	"path"
	"path/filepath"
	"strings"

	"github.com/go-chi/chi/v5"
)

var errFileNotFound = errors.New("file not found")

// fileStore keeps uploaded files under "{id}/{filename}" keys.
type fileStore interface {
	Save(id, filename string, data io.Reader) (string, error)
	Open(key string) (io.ReadCloser, error)
	Delete(key string) error
}

// fileKey builds the storage key for an upload. Only the base name of the
// client supplied filename is kept.
func fileKey(id, filename string) string {
	name := filepath.Base(filepath.Clean("/" + strings.ReplaceAll(filename, "\\", "/")))
	if name == "/" || name == "." {
		name = "file"
	}
	return path.Join(id, name)
}

type diskFiles struct {
	rootPath string
}

func newDiskFiles(rootPath string) (*diskFiles, error) {
	p := filepath.Clean(rootPath)
	if err := os.MkdirAll(p, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create root storage directory %s: %w", p, err)
	}
	return &diskFiles{rootPath: p}, nil
}

func (s *diskFiles) Save(id, filename string, data io.Reader) (string, error) {
	key := fileKey(id, filename)
	fullPath := filepath.Join(s.rootPath, filepath.FromSlash(key))

	if err := os.MkdirAll(filepath.Dir(fullPath), 0o755); err != nil {
		return "", fmt.Errorf("failed to create subdirectories: %w", err)
	}
	dst, err := os.Create(fullPath)
	if err != nil {
		return "", fmt.Errorf("failed to create destination file: %w", err)
	}
	defer dst.Close()

	if _, err := io.Copy(dst, data); err != nil {
		os.Remove(fullPath)
		return "", fmt.Errorf("failed to copy file data: %w", err)
	}
	return key, nil
}

func (s *diskFiles) Open(key string) (io.ReadCloser, error) {
	f, err := os.Open(filepath.Join(s.rootPath, filepath.FromSlash(path.Clean("/"+key))))
	if os.IsNotExist(err) {
		return nil, errFileNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to open file: %w", err)
	}
	return f, nil
}

// Delete removes the file together with its id directory.
func (s *diskFiles) Delete(key string) error {
	dir := path.Dir(path.Clean("/" + key))
	if dir == "/" {
		return nil
	}
	if err := os.RemoveAll(filepath.Join(s.rootPath, filepath.FromSlash(dir))); err != nil {
		return fmt.Errorf("failed to delete file: %w", err)
	}
	return nil
}

// memFiles is the default store; contents live as long as the server.
type memFiles struct {
	files *Collection[[]byte]
}

func newMemFiles() *memFiles {
	return &memFiles{files: NewCollection[[]byte]()}
}

func (s *memFiles) Save(id, filename string, data io.Reader) (string, error) {
	b, err := io.ReadAll(data)
	if err != nil {
		return "", fmt.Errorf("failed to copy file data: %w", err)
	}
	key := fileKey(id, filename)
	s.files.Put(key, b)
	return key, nil
}

func (s *memFiles) Open(key string) (io.ReadCloser, error) {
	b, ok := s.files.Get(key)
	if !ok {
		return nil, errFileNotFound
	}
	return io.NopCloser(bytes.NewReader(b)), nil
}

func (s *memFiles) Delete(key string) error {
	s.files.Delete(key)
	return nil
}

func fileURL(key string) string {
	id, name, _ := strings.Cut(key, "/")
	return "/files/" + id + "/" + url.PathEscape(name)
}

// fileKeyFromURL reverses fileURL. ok is false for URLs not served here.
func fileKeyFromURL(u string) (string, bool) {
	rest, found := strings.CutPrefix(u, "/files/")
	if !found {
		return "", false
	}
	key, err := url.PathUnescape(rest)
	return key, err == nil
}

func (s *Server) serveFile(w http.ResponseWriter, r *http.Request) {
	name, err := url.PathUnescape(chi.URLParam(r, "name"))
	if err != nil {
		writeErrorAndStatusCode(w, notFound("file"))
		return
	}
	key := fileKey(chi.URLParam(r, "id"), name)
	f, err := s.files.Open(key)
	if errors.Is(err, errFileNotFound) {
		writeErrorAndStatusCode(w, notFound("file"))
		return
	}
	if err != nil {
		writeErrorAndStatusCode(w, err)
		return
	}
	defer f.Close()

	contentType := mime.TypeByExtension(path.Ext(key))
	if contentType == "" {
		contentType = "application/octet-stream"
	}
	w.Header().Set("Content-Type", contentType)
	io.Copy(w, f)
}
