package utils

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
)

var ErrNotLocalImage = errors.New("not a local image")

var allowedImageExtensions = map[string]bool{
	".jpg":  true,
	".jpeg": true,
	".png":  true,
	".gif":  true,
	".webp": true,
}

func IsImageFile(name string) bool {
	return allowedImageExtensions[strings.ToLower(filepath.Ext(name))]
}

// LocalImagePath maps a catalog image reference such as
// "/static/nano.png" onto a file under staticDir. Remote URLs and paths
// escaping staticDir are rejected.
func LocalImagePath(staticDir, ref string) (string, error) {
	if ref == "" || strings.Contains(ref, "://") || !IsImageFile(ref) {
		return "", ErrNotLocalImage
	}

	rel := strings.TrimPrefix(filepath.ToSlash(ref), "/")
	rel = strings.TrimPrefix(rel, "static/")

	root, err := filepath.Abs(staticDir)
	if err != nil {
		return "", err
	}
	full := filepath.Join(root, filepath.FromSlash(rel))
	if !strings.HasPrefix(full, root+string(os.PathSeparator)) {
		return "", ErrNotLocalImage
	}

	info, err := os.Stat(full)
	if err != nil {
		return "", err
	}
	if info.IsDir() {
		return "", ErrNotLocalImage
	}
	return full, nil
}
