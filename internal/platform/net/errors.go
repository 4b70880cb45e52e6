package net

import (
	"net/http"

	perr "langid/internal/platform/errors"
)

// HTTPStatus maps an error to an HTTP status code
// nil is success, not an unknown error
func HTTPStatus(err error) int {
	if err == nil {
		return http.StatusOK
	}
	return perr.HTTPStatus(err)
}
