// Package uploads stores admin-submitted images under a per-category
// directory tree and hands back the relative URL the public site serves
// them from.
package uploads

import (
	"io"
	"os"
	"path"
	"path/filepath"
	"strings"
	"time"

	"github.com/ayaskant-12/portfolio-backend/errs"
)

// Categories of the upload tree. Each maps to one directory.
const (
	CategoryProjects       = "projects"
	CategoryProfile        = "profile"
	CategoryCertifications = "certifications"
)

var allowedExtensions = []string{".png", ".jpg", ".jpeg", ".gif", ".svg"}

type Uploader struct {
	baseDir string
	now     func() time.Time
}

// New returns an Uploader rooted at baseDir. Category directories are
// created lazily on the first store into them.
func New(baseDir string) *Uploader {
	return &Uploader{baseDir: baseDir, now: time.Now}
}

// Allowed reports whether the filename carries one of the permitted image
// extensions. The match is case-insensitive; a name without an extension is
// never allowed.
func Allowed(filename string) bool {
	ext := strings.ToLower(filepath.Ext(filename))
	if ext == "" {
		return false
	}
	for _, allowed := range allowedExtensions {
		if ext == allowed {
			return true
		}
	}
	return false
}

// Store writes the file under the category directory and returns the
// relative URL of the stored file. The original name is sanitized and a
// timestamp suffix is appended so re-uploads of the same name never
// overwrite each other. Replaced files are not cleaned up.
func (u *Uploader) Store(file io.Reader, filename, category string) (string, error) {
	if !Allowed(filename) {
		return "", errs.NewUnsupportedMediaTypeError(filepath.Ext(filename), allowedExtensions)
	}

	dir := filepath.Join(u.baseDir, category)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", errs.NewInternalError("failed to create upload directory: " + err.Error())
	}

	name := sanitizeName(filename)
	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	stamped := base + "_" + u.now().UTC().Format("20060102_150405") + ext

	dst, err := os.Create(filepath.Join(dir, stamped))
	if err != nil {
		return "", errs.NewInternalError("failed to create upload file: " + err.Error())
	}
	defer dst.Close()

	if _, err := io.Copy(dst, file); err != nil {
		return "", errs.NewInternalError("failed to write upload file: " + err.Error())
	}

	return path.Join("uploads", category, stamped), nil
}

// EnsureDirs creates the directories for the given categories up front so
// the static file server has a tree to serve even before the first upload.
func (u *Uploader) EnsureDirs(categories ...string) error {
	for _, category := range categories {
		if err := os.MkdirAll(filepath.Join(u.baseDir, category), 0o755); err != nil {
			return err
		}
	}
	return nil
}

// sanitizeName strips directory components and replaces every rune outside
// [A-Za-z0-9._-] with an underscore.
func sanitizeName(filename string) string {
	name := filename
	if i := strings.LastIndexAny(name, `/\`); i >= 0 {
		name = name[i+1:]
	}
	var b strings.Builder
	b.Grow(len(name))
	for _, r := range name {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9',
			r == '.', r == '_', r == '-':
			b.WriteRune(r)
		default:
			b.WriteRune('_')
		}
	}
	return b.String()
}
