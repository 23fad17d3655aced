package convert

import (
	"context"
	"errors"
	"fmt"
	"mime"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	"gib2sgf/internal/bootstrap"
	"gib2sgf/internal/domain/conversion"
	apperrors "gib2sgf/internal/errors"
	"gib2sgf/internal/httpresponse"
	"gib2sgf/internal/utils"
)

const sgfContentType = "application/x-go-sgf"

type ConvertUseCase interface {
	Convert(ctx context.Context, req conversion.ConvertRequest) (conversion.Conversion, error)
	GetConversion(ctx context.Context, id string) (conversion.Conversion, error)
}

type ConvertHandler struct {
	cfg       bootstrap.Config
	log       *zap.SugaredLogger
	convertUC ConvertUseCase
}

func NewConvertHandler(cfg bootstrap.Config, log *zap.SugaredLogger, convertUC ConvertUseCase) *ConvertHandler {
	return &ConvertHandler{
		cfg:       cfg,
		log:       log,
		convertUC: convertUC,
	}
}

// HandleConvert accepts either a JSON ConvertRequest or the raw GIB file as
// the body. Raw uploads take the file name and export flag from the query.
// With ?format=sgf the SGF text is returned instead of the JSON envelope.
func (h *ConvertHandler) HandleConvert(w http.ResponseWriter, r *http.Request) {
	req, err := h.readConvertRequest(w, r)
	if err != nil {
		h.log.Infow("bad convert request", "error", err)
		h.writeError(w, err)
		return
	}

	c, err := h.convertUC.Convert(r.Context(), req)
	if err != nil {
		h.writeError(w, err)
		return
	}

	if r.URL.Query().Get("format") == "sgf" {
		writeSgf(w, c)
		return
	}
	httpresponse.WriteResponseWithStatus(w, http.StatusOK, c.Response())
}

func (h *ConvertHandler) readConvertRequest(w http.ResponseWriter, r *http.Request) (conversion.ConvertRequest, error) {
	var req conversion.ConvertRequest
	mediaType, _, _ := mime.ParseMediaType(r.Header.Get("Content-Type"))
	if mediaType == "application/json" {
		if err := utils.DecodeJSONRequest(w, r, &req, h.cfg.MaxBodyBytes); err != nil {
			return req, err
		}
		return req, nil
	}

	body, err := utils.ReadRequestBody(w, r, h.cfg.MaxBodyBytes)
	if err != nil {
		return req, err
	}
	req.Gib = string(body)
	req.FileName = r.URL.Query().Get("name")
	if export := r.URL.Query().Get("export"); export != "" {
		if req.Export, err = strconv.ParseBool(export); err != nil {
			return req, fmt.Errorf("export: %w", err)
		}
	}
	return req, nil
}

func (h *ConvertHandler) GetConversionById(w http.ResponseWriter, r *http.Request) {
	c, err := h.convertUC.GetConversion(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		h.writeError(w, err)
		return
	}
	httpresponse.WriteResponseWithStatus(w, http.StatusOK, c)
}

func (h *ConvertHandler) DownloadSgf(w http.ResponseWriter, r *http.Request) {
	c, err := h.convertUC.GetConversion(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		h.writeError(w, err)
		return
	}
	w.Header().Set("Content-Disposition", mime.FormatMediaType("attachment", map[string]string{"filename": c.ID + ".sgf"}))
	writeSgf(w, c)
}

func writeSgf(w http.ResponseWriter, c conversion.Conversion) {
	w.Header().Set("Content-Type", sgfContentType+"; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte(c.Sgf))
}

func (h *ConvertHandler) writeError(w http.ResponseWriter, err error) {
	var tooLarge *http.MaxBytesError
	switch {
	case errors.Is(err, apperrors.ErrParse):
		httpresponse.WriteErrorWithStatus(w, http.StatusUnprocessableEntity, err.Error())
	case errors.Is(err, apperrors.ErrConversionNotFound):
		httpresponse.WriteErrorWithStatus(w, http.StatusNotFound, "conversion not found")
	case errors.Is(err, apperrors.ErrExportDisabled):
		httpresponse.WriteErrorWithStatus(w, http.StatusServiceUnavailable, err.Error())
	case errors.As(err, &tooLarge):
		httpresponse.WriteErrorWithStatus(w, http.StatusRequestEntityTooLarge, "request body too large")
	case isClientError(err):
		httpresponse.WriteErrorWithStatus(w, http.StatusBadRequest, err.Error())
	default:
		h.log.Errorw("conversion request failed", "error", err)
		httpresponse.WriteInternalErrorResponse(w)
	}
}

func isClientError(err error) bool {
	var numErr *strconv.NumError
	return errors.Is(err, apperrors.ErrInvalidJSON) || errors.As(err, &numErr)
}
