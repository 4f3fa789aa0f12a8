// Package fileid provides candidate IDs: deterministic ones for resume files on disk and
// random ones for uploads.
package fileid

import (
	"crypto/sha256"
	"encoding/hex"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
)

const (
	filePrefix   = "resume:"
	uploadPrefix = "upload:"
)

// CandidateID returns a stable candidate ID for the resume at path.
// Same file always yields the same ID, so re-parsing a changed file replaces its record.
// Relative paths are resolved against the working directory first.
func CandidateID(path string) string {
	if abs, err := filepath.Abs(path); err == nil {
		path = abs
	}
	hash := sha256.Sum256([]byte(filepath.Clean(path)))
	return filePrefix + hex.EncodeToString(hash[:16])
}

// UploadID returns a fresh ID for a resume received over the API.
func UploadID() string {
	return uploadPrefix + uuid.NewString()
}

// IsUpload reports whether id was issued by UploadID.
func IsUpload(id string) bool {
	return strings.HasPrefix(id, uploadPrefix)
}
