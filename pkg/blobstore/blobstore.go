package blobstore

import (
	"io"
	"os"
	"path/filepath"

	"github.com/google/uuid"

	"eventhive/pkg/logger"
)

// Store, görsel dosyaları için opak bir blob deposudur. Hatalar bu
// sınırı aşmaz: Save boş string, Load nil döner.
type Store struct {
	baseDir string
	logger  logger.Logger
}

func New(baseDir string, logger logger.Logger) *Store {
	return &Store{
		baseDir: baseDir,
		logger:  logger,
	}
}

func (s *Store) Save(src io.Reader, ext string) string {
	if err := os.MkdirAll(s.baseDir, 0o755); err != nil {
		s.logger.Error("Blob dizini oluşturulamadı", map[string]interface{}{"dir": s.baseDir, "error": err.Error()})
		return ""
	}

	name := uuid.NewString()
	if ext != "" {
		name += "." + ext
	}
	path := filepath.Join(s.baseDir, name)

	dst, err := os.Create(path)
	if err != nil {
		s.logger.Error("Blob dosyası oluşturulamadı", map[string]interface{}{"path": path, "error": err.Error()})
		return ""
	}
	defer dst.Close()

	if _, err := io.Copy(dst, src); err != nil {
		s.logger.Error("Blob dosyası yazılamadı", map[string]interface{}{"path": path, "error": err.Error()})
		os.Remove(path)
		return ""
	}

	return path
}

func (s *Store) Load(path string) []byte {
	if path == "" {
		return nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		s.logger.Warn("Blob dosyası okunamadı", map[string]interface{}{"path": path, "error": err.Error()})
		return nil
	}

	return data
}

func (s *Store) Delete(path string) {
	if path == "" {
		return
	}
	if err := os.Remove(path); err != nil && !os.IsNotExist(err) {
		s.logger.Warn("Blob dosyası silinemedi", map[string]interface{}{"path": path, "error": err.Error()})
	}
}
