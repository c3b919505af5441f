package entity

import (
	"fmt"
	"strings"
)

// Storage paths are pure functions of their inputs so they can be computed
// before or after the backing document exists (two-phase upload flow).

func UploadPath(ownerUID, submissionID, filename string) string {
	return fmt.Sprintf("uploads/%s/%s/%s", ownerUID, submissionID, filename)
}

func ResultPath(submissionID, filename string) string {
	return fmt.Sprintf("results/%s/%s", submissionID, filename)
}

func TemplatePath(templateID, filename string) string {
	return fmt.Sprintf("templates/%s/%s", templateID, filename)
}

// ParseUploadPath returns the owner uid and submission id from an
// uploads/{uid}/{submissionId}/{filename} path.
func ParseUploadPath(path string) (ownerUID, submissionID string, ok bool) {
	parts := strings.Split(path, "/")
	if len(parts) < 4 || parts[0] != "uploads" || parts[1] == "" || parts[2] == "" {
		return "", "", false
	}
	return parts[1], parts[2], true
}

// ParseResultPath returns the submission id from a
// results/{submissionId}/{filename} path.
func ParseResultPath(path string) (submissionID string, ok bool) {
	parts := strings.Split(path, "/")
	if len(parts) < 3 || parts[0] != "results" || parts[1] == "" {
		return "", false
	}
	return parts[1], true
}

// Content types accepted for uploads, results and templates.
var allowedContentTypes = map[string]struct{}{
	"application/pdf":              {},
	"application/zip":              {},
	"application/x-zip-compressed": {},
	"text/csv":                     {},
	"application/vnd.ms-excel":     {},
	"application/vnd.openxmlformats-officedocument.spreadsheetml.sheet": {},
	"application/json": {},
	"image/png":        {},
	"image/jpeg":       {},
	"image/webp":       {},
	"text/plain":       {},
}

func AllowedContentType(contentType string) bool {
	_, ok := allowedContentTypes[contentType]
	return ok
}

var allowedExtensions = map[string]struct{}{
	"pdf": {}, "zip": {}, "csv": {}, "xls": {}, "xlsx": {},
	"json": {}, "png": {}, "jpg": {}, "jpeg": {}, "webp": {}, "txt": {},
}

// ValidFilename rejects names that could escape their storage prefix or
// carry control characters, and restricts extensions to the known set.
func ValidFilename(name string) bool {
	if name == "" || len(name) > 180 {
		return false
	}
	if strings.Contains(name, "..") || strings.ContainsAny(name, `/\`) {
		return false
	}
	if strings.ContainsAny(name, "\x00\n\r") {
		return false
	}
	idx := strings.LastIndex(name, ".")
	if idx < 0 || idx == len(name)-1 {
		return false
	}
	ext := strings.ToLower(name[idx+1:])
	_, ok := allowedExtensions[ext]
	return ok
}
