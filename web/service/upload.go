package service

import (
	"fmt"
	"mime/multipart"
	"os"
	"path/filepath"
	"regexp"
	"strings"
	"time"

	"github.com/vaiicko/cafe-web/config"
	"github.com/vaiicko/cafe-web/logger"

	"github.com/gin-gonic/gin"
)

var unsafeFilenameChars = regexp.MustCompile(`[^a-zA-Z0-9._-]`)

// UploadService stores picture uploads under the public assets folder and
// hands back the relative path recorded on the entity.
type UploadService struct{}

// Store saves the uploaded file under the upload folder. The original
// filename is sanitized and prefixed with a timestamp to avoid collisions.
// The returned path is relative, e.g. "images/1700000000_latte.jpg".
func (s *UploadService) Store(c *gin.Context, file *multipart.FileHeader) (string, error) {
	dir := config.GetUploadFolder()
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", err
	}

	name := fmt.Sprintf("%d_%s", time.Now().Unix(), SanitizeFilename(file.Filename))
	if err := c.SaveUploadedFile(file, filepath.Join(dir, name)); err != nil {
		return "", err
	}
	return "images/" + name, nil
}

// Remove deletes the file behind a stored relative path. Best effort: a
// missing or undeletable file is logged and swallowed, the caller's operation
// already succeeded.
func (s *UploadService) Remove(relPath string) {
	if relPath == "" {
		return
	}
	name := filepath.Base(relPath)
	if err := os.Remove(filepath.Join(config.GetUploadFolder(), name)); err != nil && !os.IsNotExist(err) {
		logger.Warningf("could not remove upload %s: %v", name, err)
	}
}

// SanitizeFilename replaces every character outside [a-zA-Z0-9._-] with an
// underscore.
func SanitizeFilename(name string) string {
	name = filepath.Base(strings.TrimSpace(name))
	return unsafeFilenameChars.ReplaceAllString(name, "_")
}
