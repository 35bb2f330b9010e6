package utils

import (
	"context"
	"os"
	"path/filepath"
	"strings"
)

func uploadDir() string {
	dir := strings.TrimSpace(os.Getenv("UPLOAD_DIR"))
	if dir == "" {
		dir = "./uploads"
	}
	return dir
}

// SaveUploadBytes stores file data via the configured provider and returns the
// URL to persist on the organization record. Local storage serves files from
// /uploads/<subfolder>/<filename>; GCS returns the object access URL.
func SaveUploadBytes(ctx context.Context, subfolder, filename string, data []byte, contentType string) (string, error) {
	if GetStorageProvider() == StorageProviderGCS {
		objectKey := subfolder + "/" + filename
		if err := UploadBytesToGCS(ctx, objectKey, data, contentType); err != nil {
			return "", err
		}
		return BuildObjectAccessURL(objectKey), nil
	}

	dir := filepath.Join(uploadDir(), filepath.FromSlash(subfolder))
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", err
	}
	if err := os.WriteFile(filepath.Join(dir, filename), data, 0o644); err != nil {
		return "", err
	}
	return "/uploads/" + subfolder + "/" + filename, nil
}

// DeleteStoredFile removes a previously stored file. Returns false when the
// file does not exist.
func DeleteStoredFile(ctx context.Context, fileURL string) (bool, error) {
	if GetStorageProvider() == StorageProviderGCS {
		objectKey := ExtractObjectKeyFromURL(fileURL)
		if objectKey == "" {
			return false, nil
		}
		return DeleteObjectFromGCS(ctx, objectKey)
	}

	if !strings.HasPrefix(fileURL, "/uploads/") {
		return false, nil
	}
	rel := strings.TrimPrefix(fileURL, "/uploads/")
	if strings.Contains(rel, "..") {
		return false, nil
	}
	path := filepath.Join(uploadDir(), filepath.FromSlash(rel))
	if _, err := os.Stat(path); err != nil {
		return false, nil
	}
	if err := os.Remove(path); err != nil {
		return false, err
	}
	return true, nil
}
