package httpserver

import (
	"encoding/json"
	"errors"
	"net/http"

	roleerrors "folio/contexts/identity-access/role-service/domain/errors"
	rolehttp "folio/contexts/identity-access/role-service/transport/http"
)

func (s *Server) handleRegisterRole(w http.ResponseWriter, r *http.Request) {
	var req rolehttp.RegisterRoleRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeRoleError(w, http.StatusBadRequest, "invalid_json", "request body must be valid JSON")
		return
	}

	resp, err := s.roles.Handler.RegisterRoleHandler(r.Context(), req)
	if err != nil {
		writeRoleDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, resp)
}

func (s *Server) handleHasRole(w http.ResponseWriter, r *http.Request) {
	resp, err := s.roles.Handler.HasRoleHandler(r.Context(), r.PathValue("user_id"), r.PathValue("role"))
	if err != nil {
		writeRoleDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, resp)
}

func (s *Server) handleListUserRoles(w http.ResponseWriter, r *http.Request) {
	resp, err := s.roles.Handler.ListUserRolesHandler(r.Context(), r.PathValue("user_id"))
	if err != nil {
		writeRoleDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, resp)
}

func writeRoleDomainError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, roleerrors.ErrGrantNotFound):
		writeRoleError(w, http.StatusNotFound, "grant_not_found", err.Error())
	case errors.Is(err, roleerrors.ErrDuplicateGrant):
		writeRoleError(w, http.StatusConflict, "duplicate_grant", err.Error())
	case errors.Is(err, roleerrors.ErrInvalidGrant),
		errors.Is(err, roleerrors.ErrUnknownRole):
		writeRoleError(w, http.StatusBadRequest, "invalid_request", err.Error())
	default:
		writeRoleError(w, http.StatusInternalServerError, "internal_error", "internal server error")
	}
}

func writeRoleError(w http.ResponseWriter, status int, code string, message string) {
	writeJSON(w, status, rolehttp.ErrorResponse{
		Code:    code,
		Message: message,
	})
}
