package api

import (
	"net/http"

	"github.com/ayaskant-12/portfolio-backend/uploads"
)

// storeOptionalImage stores the uploaded file under the given form field, if
// one was attached with an allowed extension. A file with a disallowed
// extension is skipped rather than rejected: the record is saved without an
// image, matching how the admin form treats it. The previous image file, if
// any, is intentionally left on disk.
func storeOptionalImage(r *http.Request, uploader *uploads.Uploader, field, category string) (string, error) {
	file, filename, err := formFile(r, field)
	if err != nil {
		return "", err
	}
	if file == nil {
		return "", nil
	}
	defer file.Close()

	if !uploads.Allowed(filename) {
		return "", nil
	}

	return uploader.Store(file, filename, category)
}
