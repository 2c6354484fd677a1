package attachment

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
)

const (
	// MaxFileSize caps attachment bodies at 10 MiB.
	MaxFileSize = 10 * 1024 * 1024

	DefaultUploadDir = "./uploads"
)

// allowedTypes maps accepted content types to their stored extension.
// Evidence attachments are documents and photos only.
var allowedTypes = map[string]string{
	"application/pdf": ".pdf",
	"image/jpeg":      ".jpg",
	"image/png":       ".png",
}

// Service stores evidence attachments on local disk.
// Stored files are never cleaned up when an enclosing database operation
// fails later; orphaned files are an accepted leak.
type Service struct {
	baseDir string
}

func NewService(baseDir string) *Service {
	if baseDir == "" {
		baseDir = DefaultUploadDir
	}
	return &Service{baseDir: baseDir}
}

// Save validates and persists one attachment. The declared content type must
// be PDF, JPEG or PNG; the body is limited to MaxFileSize. Returns the stored
// path and the caller-supplied original name (kept for display only — lookups
// always go through the path).
func (s *Service) Save(r io.Reader, contentType, originalName string) (string, string, error) {
	ext, ok := allowedTypes[normalizeContentType(contentType)]
	if !ok {
		return "", "", ErrInvalidFileType
	}

	// Read one byte past the limit so an oversized body is detectable
	// without buffering the whole stream.
	body, err := io.ReadAll(io.LimitReader(r, MaxFileSize+1))
	if err != nil {
		return "", "", fmt.Errorf("failed to read file: %w", err)
	}
	if len(body) == 0 {
		return "", "", ErrEmptyFile
	}
	if len(body) > MaxFileSize {
		return "", "", ErrFileTooLarge
	}

	if err := os.MkdirAll(s.baseDir, 0755); err != nil {
		return "", "", fmt.Errorf("failed to create upload directory: %w", err)
	}

	filename := uuid.New().String() + ext
	path := filepath.Join(s.baseDir, filename)
	if err := os.WriteFile(path, body, 0644); err != nil {
		return "", "", fmt.Errorf("failed to write file: %w", err)
	}

	return path, originalName, nil
}

// Remove deletes a stored attachment. Best-effort: the file may already be
// gone, and cleanup must never fail the enclosing operation.
func (s *Service) Remove(path string) {
	if path == "" {
		return
	}
	_ = os.Remove(path)
}

func normalizeContentType(ct string) string {
	return strings.TrimSpace(strings.ToLower(strings.Split(ct, ";")[0]))
}
