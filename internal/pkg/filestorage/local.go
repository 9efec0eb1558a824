// Package filestorage saves uploaded files to the local filesystem.
package filestorage

import (
	"fmt"
	"io"
	"mime/multipart"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
	"github.com/wkalungi/sponsorbase/internal/pkg/logger"
)

// LocalStorage handles saving files to the local filesystem.
type LocalStorage struct {
	basePath string
}

// NewLocalStorage creates a new LocalStorage instance rooted at basePath.
func NewLocalStorage(basePath string) (*LocalStorage, error) {
	if err := os.MkdirAll(basePath, os.ModePerm); err != nil {
		logger.Error().Err(err).Str("path", basePath).Msg("Failed to create storage directory")
		return nil, fmt.Errorf("failed to create storage directory %s: %w", basePath, err)
	}
	return &LocalStorage{basePath: basePath}, nil
}

// SaveFile stores an uploaded file under the given subdirectory with a
// collision-free name and returns the relative path.
func (ls *LocalStorage) SaveFile(fileHeader *multipart.FileHeader, subPath string) (string, error) {
	if fileHeader == nil {
		return "", nil
	}

	file, err := fileHeader.Open()
	if err != nil {
		logger.Error().Err(err).Str("filename", fileHeader.Filename).Msg("Failed to open uploaded file")
		return "", fmt.Errorf("failed to open uploaded file: %w", err)
	}
	defer file.Close()

	fullDirPath := ls.basePath
	if subPath != "" {
		fullDirPath = filepath.Join(ls.basePath, subPath)
		if err := os.MkdirAll(fullDirPath, os.ModePerm); err != nil {
			logger.Error().Err(err).Str("path", fullDirPath).Msg("Failed to create subdirectory")
			return "", fmt.Errorf("failed to create subdirectory: %w", err)
		}
	}

	ext := filepath.Ext(fileHeader.Filename)
	uniqueFilename := uuid.New().String() + ext
	dstPath := filepath.Join(fullDirPath, uniqueFilename)

	dst, err := os.Create(dstPath)
	if err != nil {
		logger.Error().Err(err).Str("path", dstPath).Msg("Failed to create destination file")
		return "", fmt.Errorf("failed to create destination file: %w", err)
	}
	defer dst.Close()

	if _, err := io.Copy(dst, file); err != nil {
		logger.Error().Err(err).Str("path", dstPath).Msg("Failed to write uploaded file")
		return "", fmt.Errorf("failed to write uploaded file: %w", err)
	}

	relPath := uniqueFilename
	if subPath != "" {
		relPath = filepath.ToSlash(filepath.Join(subPath, uniqueFilename))
	}
	return relPath, nil
}

// DeleteFile removes a previously stored file. Missing files are not an error.
func (ls *LocalStorage) DeleteFile(relPath string) error {
	if relPath == "" {
		return nil
	}
	fullPath := ls.GetFullPath(relPath)
	if err := os.Remove(fullPath); err != nil && !os.IsNotExist(err) {
		logger.Error().Err(err).Str("path", fullPath).Msg("Failed to delete stored file")
		return fmt.Errorf("failed to delete stored file: %w", err)
	}
	return nil
}

// GetFullPath returns the filesystem path for a stored file's relative path.
func (ls *LocalStorage) GetFullPath(relPath string) string {
	return filepath.Join(ls.basePath, filepath.FromSlash(strings.TrimPrefix(relPath, "/")))
}
