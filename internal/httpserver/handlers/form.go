package handlers

import (
	"errors"
	"net/http"
	"strconv"
	"strings"

	"boutiquehub/internal/storage"
)

const maxUploadMemory = 32 << 20

func isMultipart(r *http.Request) bool {
	return strings.HasPrefix(r.Header.Get("Content-Type"), "multipart/form-data")
}

// formValue reports the value and whether the field was present at all,
// so partial updates can tell "absent" from "set to empty".
func formValue(r *http.Request, key string) (string, bool) {
	if r.MultipartForm == nil {
		return "", false
	}
	vs, ok := r.MultipartForm.Value[key]
	if !ok || len(vs) == 0 {
		return "", false
	}
	return vs[0], true
}

// storeFile resolves an uploaded file field to a URL through the storer.
// A missing field is not an error.
func storeFile(r *http.Request, field string, st storage.Storer) (string, bool, error) {
	f, hdr, err := r.FormFile(field)
	if err != nil {
		if errors.Is(err, http.ErrMissingFile) {
			return "", false, nil
		}
		return "", false, err
	}
	defer f.Close()
	url, err := st.Store(r.Context(), hdr.Filename, f)
	if err != nil {
		return "", false, err
	}
	return url, true, nil
}

func parseBool(s string) bool {
	b, _ := strconv.ParseBool(s)
	return b
}

func parseFloat(s string) float64 {
	f, _ := strconv.ParseFloat(s, 64)
	return f
}

func parseInt(s string) int {
	n, _ := strconv.Atoi(s)
	return n
}
