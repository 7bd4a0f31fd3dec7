package api

import (
	"errors"
	"mime/multipart"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/ayaskant-12/portfolio-backend/errs"
)

// Admin mutations arrive as HTML form posts (urlencoded or multipart when an
// image rides along). The helpers here are the single place where raw form
// values become typed fields: trimming, required checks, integer and date
// parsing, checkbox semantics.

const (
	maxUploadMemory = 10 << 20 // 10 MiB before multipart spills to disk
	dateLayout      = "2006-01-02"
)

// parseForm populates r.Form for both urlencoded and multipart bodies.
func parseForm(r *http.Request) error {
	contentType := r.Header.Get("Content-Type")
	if strings.HasPrefix(contentType, "multipart/form-data") {
		if err := r.ParseMultipartForm(maxUploadMemory); err != nil {
			return errs.NewBadRequestError("malformed form body")
		}
		return nil
	}
	if err := r.ParseForm(); err != nil {
		return errs.NewBadRequestError("malformed form body")
	}
	return nil
}

// formString returns the trimmed value of a form field, empty when absent.
func formString(r *http.Request, name string) string {
	return strings.TrimSpace(r.FormValue(name))
}

// formPresent reports whether the field was submitted at all. Update
// handlers use this to leave unsubmitted fields untouched.
func formPresent(r *http.Request, name string) bool {
	if _, ok := r.Form[name]; ok {
		return true
	}
	if r.MultipartForm != nil {
		_, ok := r.MultipartForm.Value[name]
		return ok
	}
	return false
}

// formRequired returns the trimmed value of a required field, failing when
// the result is empty.
func formRequired(r *http.Request, name string) (string, error) {
	value := formString(r, name)
	if value == "" {
		return "", errs.NewMissingRequiredFieldError(name)
	}
	return value, nil
}

// formInt parses an integer field. An empty or absent value defaults to 0;
// anything non-numeric is a validation error.
func formInt(r *http.Request, name string) (int, error) {
	value := formString(r, name)
	if value == "" {
		return 0, nil
	}
	parsed, err := strconv.Atoi(value)
	if err != nil {
		return 0, errs.NewInvalidFieldError(name, "must be an integer")
	}
	return parsed, nil
}

// formRequiredInt parses an integer field that must be submitted non-empty.
func formRequiredInt(r *http.Request, name string) (int, error) {
	if formString(r, name) == "" {
		return 0, errs.NewMissingRequiredFieldError(name)
	}
	return formInt(r, name)
}

// formDate parses a required date field in strict YYYY-MM-DD form.
func formDate(r *http.Request, name string) (time.Time, error) {
	value := formString(r, name)
	if value == "" {
		return time.Time{}, errs.NewMissingRequiredFieldError(name)
	}
	parsed, err := time.Parse(dateLayout, value)
	if err != nil {
		return time.Time{}, errs.NewInvalidFieldError(name, "must be a date in YYYY-MM-DD format")
	}
	return parsed, nil
}

// formOptionalDate parses a date field that may be left empty, returning nil
// when it is.
func formOptionalDate(r *http.Request, name string) (*time.Time, error) {
	value := formString(r, name)
	if value == "" {
		return nil, nil
	}
	parsed, err := time.Parse(dateLayout, value)
	if err != nil {
		return nil, errs.NewInvalidFieldError(name, "must be a date in YYYY-MM-DD format")
	}
	return &parsed, nil
}

// formBool implements checkbox semantics: an absent or empty field is false,
// as are the usual negative spellings.
func formBool(r *http.Request, name string) bool {
	value := strings.ToLower(formString(r, name))
	switch value {
	case "", "false", "0", "off", "no":
		return false
	default:
		return true
	}
}

// formFile returns the uploaded file under the given field name, or
// (nil, "", nil) when none was attached.
func formFile(r *http.Request, name string) (multipart.File, string, error) {
	file, header, err := r.FormFile(name)
	if errors.Is(err, http.ErrMissingFile) {
		return nil, "", nil
	}
	if err != nil {
		// No multipart body at all also counts as "no file attached".
		if errors.Is(err, http.ErrNotMultipart) {
			return nil, "", nil
		}
		return nil, "", errs.NewBadRequestError("malformed file upload")
	}
	if header.Filename == "" {
		file.Close()
		return nil, "", nil
	}
	return file, header.Filename, nil
}
