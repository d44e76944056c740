package services

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
	"github.com/moodverse/moodverse-backend/internal/config"
)

var (
	ErrUploadTooLarge    = errors.New("file exceeds the upload size limit")
	ErrUploadUnsupported = errors.New("unsupported file type")
)

// maxUploadBytes caps voice notes and photos at 10 MB.
const maxUploadBytes = 10 << 20

var allowedUploadExtensions = map[string]string{
	".jpg":  "photo",
	".jpeg": "photo",
	".png":  "photo",
	".webp": "photo",
	".m4a":  "voice",
	".mp3":  "voice",
	".ogg":  "voice",
	".wav":  "voice",
}

// UploadService stores entry attachments on local disk and hands back the
// public URL to embed in the entry.
type UploadService struct {
	dir     string
	baseURL string
}

func NewUploadService(cfg *config.Config) *UploadService {
	return &UploadService{dir: cfg.UploadDir, baseURL: cfg.UploadBaseURL}
}

// Save streams the file under a random name, namespaced per user.
// Returns the URL clients reference it by.
func (s *UploadService) Save(userID uuid.UUID, filename string, size int64, r io.Reader) (string, error) {
	if size > maxUploadBytes {
		return "", ErrUploadTooLarge
	}

	ext := strings.ToLower(filepath.Ext(filename))
	if _, ok := allowedUploadExtensions[ext]; !ok {
		return "", ErrUploadUnsupported
	}

	userDir := filepath.Join(s.dir, userID.String())
	if err := os.MkdirAll(userDir, 0o755); err != nil {
		return "", fmt.Errorf("failed to create upload directory: %w", err)
	}

	name := uuid.NewString() + ext
	path := filepath.Join(userDir, name)

	f, err := os.Create(path)
	if err != nil {
		return "", fmt.Errorf("failed to create upload file: %w", err)
	}
	defer f.Close()

	if _, err := io.Copy(f, io.LimitReader(r, maxUploadBytes)); err != nil {
		os.Remove(path)
		return "", fmt.Errorf("failed to write upload: %w", err)
	}

	return s.baseURL + "/" + userID.String() + "/" + name, nil
}
