package api

import (
	"net/http"
	"strconv"

	"hellod/internal/errors"
)

// Path parameters are read with r.PathValue, which returns the segment already
// percent-decoded. Each extractor returns *errors.ParamError on failure.

// PathUint32 extracts a base-10 unsigned 32-bit integer path parameter.
func PathUint32(r *http.Request, name string) (uint32, error) {
	raw := r.PathValue(name)
	v, err := strconv.ParseUint(raw, 10, 32)
	if err != nil {
		return 0, errors.NewParamError(name, raw, errors.KindU32, err)
	}
	return uint32(v), nil
}

// PathString extracts a non-empty string path parameter.
func PathString(r *http.Request, name string) (string, error) {
	raw := r.PathValue(name)
	if raw == "" {
		return "", errors.NewParamError(name, raw, errors.KindString, nil)
	}
	return raw, nil
}

// PathBool extracts a boolean path parameter. Only the lowercase literals
// "true" and "false" are accepted.
func PathBool(r *http.Request, name string) (bool, error) {
	raw := r.PathValue(name)
	switch raw {
	case "true":
		return true, nil
	case "false":
		return false, nil
	default:
		return false, errors.NewParamError(name, raw, errors.KindBool, nil)
	}
}
