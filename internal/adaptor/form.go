package adaptor

import (
	"mime/multipart"
	"net/http"
	"strconv"
	"strings"
)

const maxUploadMemory = 10 << 20

// isMultipart reports whether the request carries a multipart form. The
// create and update endpoints accept both JSON bodies and multipart forms;
// only the latter can carry an image file.
func isMultipart(r *http.Request) bool {
	return strings.HasPrefix(r.Header.Get("Content-Type"), "multipart/form-data")
}

// formFile returns the named upload, or nil when the field is absent.
func formFile(r *http.Request, field string) (*multipart.FileHeader, error) {
	_, header, err := r.FormFile(field)
	if err == http.ErrMissingFile {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return header, nil
}

func formString(r *http.Request, key string) string {
	return strings.TrimSpace(r.FormValue(key))
}

// formStringPtr returns nil when the field was not submitted at all, so
// partial updates can tell "absent" apart from "empty".
func formStringPtr(r *http.Request, key string) *string {
	values, ok := r.MultipartForm.Value[key]
	if !ok || len(values) == 0 {
		return nil
	}
	v := strings.TrimSpace(values[0])
	return &v
}

func formBool(r *http.Request, key string) bool {
	v, _ := strconv.ParseBool(formString(r, key))
	return v
}

func formBoolPtr(r *http.Request, key string) *bool {
	s := formStringPtr(r, key)
	if s == nil {
		return nil
	}
	v, err := strconv.ParseBool(*s)
	if err != nil {
		return nil
	}
	return &v
}

func formInt64(r *http.Request, key string) (int64, error) {
	v := formString(r, key)
	if v == "" {
		return 0, nil
	}
	return strconv.ParseInt(v, 10, 64)
}

func formInt64Ptr(r *http.Request, key string) (*int64, error) {
	s := formStringPtr(r, key)
	if s == nil || *s == "" {
		return nil, nil
	}
	v, err := strconv.ParseInt(*s, 10, 64)
	if err != nil {
		return nil, err
	}
	return &v, nil
}

func parseInt(value string, fallback int) int {
	if value == "" {
		return fallback
	}
	v, err := strconv.Atoi(value)
	if err != nil || v < 1 {
		return fallback
	}
	return v
}

// emptyToNil collapses blank optional fields to nil.
func emptyToNil(s *string) *string {
	if s == nil || *s == "" {
		return nil
	}
	return s
}
