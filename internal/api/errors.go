package api

import (
	"net/http"

	"github.com/stayhub/stayhub/internal/api/respond"
	"github.com/stayhub/stayhub/internal/model"
)

// writeDomainError maps the domain error taxonomy onto HTTP statuses.
// The facade makes no assumption about status codes; this mapping is
// owned by the transport layer.
func writeDomainError(w http.ResponseWriter, err error) {
	switch {
	case model.IsValidationError(err):
		respond.WriteBadRequest(w, err.Error())
	case model.IsConflictError(err):
		respond.WriteConflict(w, err.Error())
	case model.IsNotFoundError(err):
		respond.WriteNotFound(w, err.Error())
	default:
		respond.WriteInternalError(w, err.Error())
	}
}
