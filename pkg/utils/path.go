package utils

import (
	"path"
	"path/filepath"
	"regexp"
	"strings"
)

var dangerousChars = regexp.MustCompile(`[<>:"|?*\x00-\x1f\x7f\s]`)

// SanitizeFileName sanitizes a filename to ensure it's safe for storage
func SanitizeFileName(filename string) string {
	filename = strings.ReplaceAll(filename, "\\", "/")
	filename = path.Base(filename)
	filename = strings.TrimSpace(filename)
	filename = dangerousChars.ReplaceAllString(filename, "_")

	if filename == "" || filename == "." || filename == ".." || filename == "/" {
		filename = "file"
	}

	return filename
}

// ProfilePhotoPath builds the storage key of a profile photo: photos/<user>/<random>_<name>
func ProfilePhotoPath(userID, filename string) string {
	name := SanitizeFileName(filename)
	ext := strings.ToLower(filepath.Ext(name))
	base := strings.TrimSuffix(name, filepath.Ext(name))
	if len(base) > 40 {
		base = base[:40]
	}
	return path.Join("photos", userID, GenerateRandomString(8)+"_"+base+ext)
}
