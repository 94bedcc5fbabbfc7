package http

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/MKhiriev/go-card-validator/internal/app"
	"github.com/MKhiriev/go-card-validator/internal/logger"
	"github.com/MKhiriev/go-card-validator/internal/utils"
	"github.com/MKhiriev/go-card-validator/internal/validators"
	"github.com/MKhiriev/go-card-validator/models"
)

const maxValidateBodyBytes = 4 << 10

func (h *Handler) validateCard(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	var req models.ValidateRequest
	body := http.MaxBytesReader(w, r.Body, maxValidateBodyBytes)
	if err := json.NewDecoder(body).Decode(&req); err != nil {
		log.Debug().Err(err).Str("func", "*Handler.validateCard").Msg("invalid JSON was passed")
		h.metrics.RecordRejection()
		writeError(w, r, validators.ErrCardNumberRequired.Error(), http.StatusBadRequest)
		return
	}

	resp, err := h.services.CardService.Validate(r.Context(), req)
	if err != nil {
		status := statusFromError(err)
		if status >= http.StatusInternalServerError {
			log.Err(err).Str("func", "*Handler.validateCard").Msg("error validating card")
		}
		writeError(w, r, messageFromError(err), status)
		return
	}

	if _, err = utils.WriteJSON(w, resp, http.StatusOK); err != nil {
		log.Err(err).Str("func", "*Handler.validateCard").Msg("error writing response")
	}
}

func (h *Handler) getHistory(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	limit := 0
	if raw := r.URL.Query().Get("limit"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil {
			writeError(w, r, app.MsgLimitNotInteger, http.StatusBadRequest)
			return
		}
		limit = n
	}

	records, err := h.services.CardService.History(r.Context(), limit)
	if err != nil {
		log.Err(err).Str("func", "*Handler.getHistory").Msg("error reading history")
		writeError(w, r, messageFromError(err), statusFromError(err))
		return
	}

	if _, err = utils.WriteJSON(w, models.HistoryResponse{Records: records, Length: len(records)}, http.StatusOK); err != nil {
		log.Err(err).Str("func", "*Handler.getHistory").Msg("error writing response")
	}
}

func writeError(w http.ResponseWriter, r *http.Request, message string, status int) {
	if _, err := utils.WriteJSON(w, models.ErrorResponse{Error: message}, status); err != nil {
		logger.FromRequest(r).Err(err).Msg("error writing error response")
	}
}
