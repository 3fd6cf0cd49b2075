package pkg

import (
	"fmt"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"
)

// IntPathVar reads the named mux path variable as an int.
func IntPathVar(r *http.Request, name string) (int, error) {
	raw := mux.Vars(r)[name]
	if raw == "" {
		return 0, fmt.Errorf("%s empty", name)
	}
	v, err := strconv.Atoi(raw)
	if err != nil {
		return 0, fmt.Errorf("%s NaN", name)
	}
	return v, nil
}

// IsJSONRequest reports whether the request declares a JSON body.
func IsJSONRequest(r *http.Request) bool {
	ct := r.Header.Get("Content-Type")
	return ct == ContentType.JSON || ct == ContentType.JSON+"; charset=utf-8"
}
