package controller

import (
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5/middleware"
	"github.com/project/bookshelf/internal/entity"
	"github.com/project/bookshelf/internal/usecase/llm"
	"github.com/project/bookshelf/pkg/logger"
	"go.uber.org/zap"
)

type errorResponse struct {
	Error string `json:"error"`
}

// convertErr maps usecase errors to status codes. Everything unrecognized is
// a bare 500: storage details never reach the caller.
func (i *implementation) convertErr(w http.ResponseWriter, r *http.Request, err error) {
	switch {
	case errors.Is(err, entity.ErrInvalidInput):
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: err.Error()})
	case errors.Is(err, entity.ErrBookNotFound):
		writeJSON(w, http.StatusNotFound, errorResponse{Error: entity.ErrBookNotFound.Error()})
	case errors.Is(err, entity.ErrReviewNotFound):
		writeJSON(w, http.StatusNotFound, errorResponse{Error: entity.ErrReviewNotFound.Error()})
	case errors.Is(err, entity.ErrBookExists):
		writeJSON(w, http.StatusConflict, errorResponse{Error: entity.ErrBookExists.Error()})
	case errors.Is(err, llm.ErrTimeout), errors.Is(err, llm.ErrService):
		writeJSON(w, http.StatusBadGateway, errorResponse{Error: "text generation unavailable"})
	default:
		logger.CheckError(err, i.logger, "unhandled error",
			zap.String("request_id", middleware.GetReqID(r.Context())),
			zap.Error(err))
		writeJSON(w, http.StatusInternalServerError, errorResponse{Error: "internal server error"})
	}
}
