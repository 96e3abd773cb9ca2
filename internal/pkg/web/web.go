package web

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"
)

var ErrInvalidPathParam = errors.New("invalid path parameter")

// PathID parses the named path wildcard as a positive int64 ID.
func PathID(r *http.Request, name string) (int64, error) {
	raw := r.PathValue(name)
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || id <= 0 {
		return 0, fmt.Errorf("%w: %s=%q", ErrInvalidPathParam, name, raw)
	}
	return id, nil
}
