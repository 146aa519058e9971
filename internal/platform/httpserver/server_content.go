package httpserver

import (
	"encoding/json"
	"errors"
	"net/http"

	contenterrors "folio/contexts/publishing-editorial/content-service/domain/errors"
	contenthttp "folio/contexts/publishing-editorial/content-service/transport/http"
)

func (s *Server) handleCreateBook(w http.ResponseWriter, r *http.Request) {
	var req contenthttp.CreateBookRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeContentError(w, http.StatusBadRequest, "invalid_json", "request body must be valid JSON")
		return
	}

	resp, err := s.content.Handler.CreateBookHandler(r.Context(), req)
	if err != nil {
		writeContentDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, resp)
}

func (s *Server) handleGetBook(w http.ResponseWriter, r *http.Request) {
	resp, err := s.content.Handler.GetBookHandler(r.Context(), r.PathValue("book_id"))
	if err != nil {
		writeContentDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, resp)
}

func (s *Server) handleAddChapter(w http.ResponseWriter, r *http.Request) {
	var req contenthttp.AddChapterRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeContentError(w, http.StatusBadRequest, "invalid_json", "request body must be valid JSON")
		return
	}

	resp, err := s.content.Handler.AddChapterHandler(r.Context(), r.PathValue("book_id"), req)
	if err != nil {
		writeContentDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, resp)
}

func (s *Server) handleListChapters(w http.ResponseWriter, r *http.Request) {
	resp, err := s.content.Handler.ListChaptersHandler(r.Context(), r.PathValue("book_id"))
	if err != nil {
		writeContentDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, resp)
}

func (s *Server) handleCreateExclusiveContent(w http.ResponseWriter, r *http.Request) {
	var req contenthttp.CreateExclusiveContentRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeContentError(w, http.StatusBadRequest, "invalid_json", "request body must be valid JSON")
		return
	}

	resp, err := s.content.Handler.CreateExclusiveContentHandler(r.Context(), r.PathValue("collection_id"), req)
	if err != nil {
		writeContentDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, resp)
}

func (s *Server) handleSubmitReview(w http.ResponseWriter, r *http.Request) {
	var req contenthttp.SubmitReviewRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeContentError(w, http.StatusBadRequest, "invalid_json", "request body must be valid JSON")
		return
	}

	resp, err := s.content.Handler.SubmitReviewHandler(r.Context(), r.PathValue("chapter_id"), req)
	if err != nil {
		writeContentDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, resp)
}

func (s *Server) handleListReviews(w http.ResponseWriter, r *http.Request) {
	resp, err := s.content.Handler.ListReviewsHandler(r.Context(), r.PathValue("chapter_id"))
	if err != nil {
		writeContentDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, resp)
}

func (s *Server) handleVerifyAccess(w http.ResponseWriter, r *http.Request) {
	var req contenthttp.VerifyAccessRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeContentError(w, http.StatusBadRequest, "invalid_json", "request body must be valid JSON")
		return
	}

	resp, err := s.content.Handler.VerifyAccessHandler(r.Context(), req)
	if err != nil {
		writeContentDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, resp)
}

func (s *Server) handleTipWriter(w http.ResponseWriter, r *http.Request) {
	var req contenthttp.TipWriterRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeContentError(w, http.StatusBadRequest, "invalid_json", "request body must be valid JSON")
		return
	}

	resp, err := s.content.Handler.TipWriterHandler(r.Context(), req)
	if err != nil {
		writeContentDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, resp)
}

func writeContentDomainError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, contenterrors.ErrBookNotFound):
		writeContentError(w, http.StatusNotFound, "book_not_found", err.Error())
	case errors.Is(err, contenterrors.ErrChapterNotFound):
		writeContentError(w, http.StatusNotFound, "chapter_not_found", err.Error())
	case errors.Is(err, contenterrors.ErrContentNotFound):
		writeContentError(w, http.StatusNotFound, "content_not_found", err.Error())
	case errors.Is(err, contenterrors.ErrAssetNotFound):
		writeContentError(w, http.StatusNotFound, "asset_not_found", err.Error())
	case errors.Is(err, contenterrors.ErrNotWriter),
		errors.Is(err, contenterrors.ErrNotHolder),
		errors.Is(err, contenterrors.ErrUnverifiedCollection):
		writeContentError(w, http.StatusForbidden, "forbidden", err.Error())
	case errors.Is(err, contenterrors.ErrCapacityExceeded),
		errors.Is(err, contenterrors.ErrDuplicateContent),
		errors.Is(err, contenterrors.ErrDuplicateReview),
		errors.Is(err, contenterrors.ErrCollectionMismatch):
		writeContentError(w, http.StatusConflict, "conflict", err.Error())
	case errors.Is(err, contenterrors.ErrInsufficientFunds):
		writeContentError(w, http.StatusPaymentRequired, "insufficient_funds", err.Error())
	case errors.Is(err, contenterrors.ErrInvalidBook),
		errors.Is(err, contenterrors.ErrInvalidChapter),
		errors.Is(err, contenterrors.ErrInvalidContent),
		errors.Is(err, contenterrors.ErrInvalidReview),
		errors.Is(err, contenterrors.ErrInvalidRating),
		errors.Is(err, contenterrors.ErrInvalidTip),
		errors.Is(err, contenterrors.ErrZeroTip):
		writeContentError(w, http.StatusBadRequest, "invalid_request", err.Error())
	default:
		writeContentError(w, http.StatusInternalServerError, "internal_error", "internal server error")
	}
}

func writeContentError(w http.ResponseWriter, status int, code string, message string) {
	writeJSON(w, status, contenthttp.ErrorResponse{
		Code:    code,
		Message: message,
	})
}
