package httpinterface

import (
	"encoding/json"
	"errors"
	"net/http"

	log "github.com/sirupsen/logrus"
	"github.com/tdex-network/tdex-pooling/internal/core/application/pooling"
	"github.com/tdex-network/tdex-pooling/internal/core/application/pubsub"
	"github.com/tdex-network/tdex-pooling/internal/core/domain"
	"github.com/tdex-network/tdex-pooling/internal/core/ports"
)

var (
	ErrInvalidBody   = errors.New("invalid request body")
	ErrInvalidAmount = errors.New("amount must be a positive integer")
	ErrInvalidPage   = errors.New("page and size must be positive integers")
)

var errorStatuses = []struct {
	err    error
	status int
}{
	{domain.ErrShareCountMismatch, http.StatusBadRequest},
	{domain.ErrZeroShare, http.StatusBadRequest},
	{domain.ErrSharesNotFull, http.StatusBadRequest},
	{domain.ErrInvalidParticipant, http.StatusBadRequest},
	{domain.ErrDuplicateParticipant, http.StatusBadRequest},
	{domain.ErrMissingCustodyAccount, http.StatusBadRequest},
	{domain.ErrMissingAsset, http.StatusBadRequest},
	{domain.ErrNotAParticipant, http.StatusForbidden},
	{domain.ErrNothingDue, http.StatusConflict},
	{domain.ErrTransferFailed, http.StatusBadGateway},
	{domain.ErrPoolNotFound, http.StatusNotFound},
	{domain.ErrPoolAlreadyExists, http.StatusConflict},
	{domain.ErrCustodyAccountInUse, http.StatusConflict},
	{domain.ErrAmountOverflow, http.StatusInternalServerError},
	{pooling.ErrDepositNotSupported, http.StatusNotImplemented},
	{pooling.ErrZeroDepositAmount, http.StatusBadRequest},
	{pubsub.ErrInvalidEvent, http.StatusBadRequest},
	{pubsub.ErrInvalidEndpoint, http.StatusBadRequest},
	{ports.ErrSubscriptionNotFound, http.StatusNotFound},
	{ErrInvalidBody, http.StatusBadRequest},
	{ErrInvalidAmount, http.StatusBadRequest},
	{ErrInvalidPage, http.StatusBadRequest},
	{ErrMissingCaller, http.StatusUnauthorized},
}

func statusFromError(err error) int {
	for _, e := range errorStatuses {
		if errors.Is(err, e.err) {
			return e.status
		}
	}
	return http.StatusInternalServerError
}

type errorResponse struct {
	Error string `json:"error"`
}

func writeError(w http.ResponseWriter, status int, err error) {
	writeJSON(w, status, errorResponse{err.Error()})
}

// writeAppError maps an error returned by the application layer to its http
// status.
func writeAppError(w http.ResponseWriter, err error) {
	status := statusFromError(err)
	if status == http.StatusInternalServerError {
		log.WithError(err).Error("internal error")
	}
	writeError(w, status, err)
}

func writeJSON(w http.ResponseWriter, status int, body interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(body); err != nil {
		log.WithError(err).Warn("failed to write response")
	}
}
