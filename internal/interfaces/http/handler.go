package httpinterface

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/tdex-network/tdex-pooling/internal/core/application"
	"github.com/tdex-network/tdex-pooling/internal/core/domain"
)

type handler struct {
	poolingSvc application.PoolingService
	pubsubSvc  application.PubSubService
}

func (h *handler) createPool(w http.ResponseWriter, r *http.Request) {
	req := createPoolRequest{}
	if err := decodeBody(r, &req); err != nil {
		writeAppError(w, err)
		return
	}

	pool, err := h.poolingSvc.CreatePool(
		r.Context(), req.CustodyAccount, req.Participants, req.Shares,
	)
	if err != nil {
		writeAppError(w, err)
		return
	}

	writeJSON(w, http.StatusCreated, poolResponse{toPoolJSON(*pool, nil)})
}

func (h *handler) listPools(w http.ResponseWriter, r *http.Request) {
	pools, err := h.poolingSvc.ListPools(r.Context())
	if err != nil {
		writeAppError(w, err)
		return
	}

	list := make([]poolJSON, 0, len(pools))
	for _, pool := range pools {
		list = append(list, toPoolJSON(pool, nil))
	}
	writeJSON(w, http.StatusOK, listPoolsResponse{list})
}

func (h *handler) getPool(w http.ResponseWriter, r *http.Request) {
	info, err := h.poolingSvc.GetPool(r.Context(), chi.URLParam(r, "pool"))
	if err != nil {
		writeAppError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, poolResponse{toPoolJSON(info.Pool, info.Assets)})
}

func (h *handler) participantShare(w http.ResponseWriter, r *http.Request) {
	share, err := h.poolingSvc.ParticipantShare(
		r.Context(), chi.URLParam(r, "pool"), chi.URLParam(r, "account"),
	)
	if err != nil {
		writeAppError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, shareResponse{share})
}

func (h *handler) totalDeposited(w http.ResponseWriter, r *http.Request) {
	amount, err := h.poolingSvc.TotalDeposited(
		r.Context(), chi.URLParam(r, "pool"), chi.URLParam(r, "asset"),
	)
	if err != nil {
		writeAppError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, amountResponse{formatAmount(amount)})
}

func (h *handler) claimable(w http.ResponseWriter, r *http.Request) {
	amount, err := h.poolingSvc.Claimable(
		r.Context(),
		chi.URLParam(r, "pool"), chi.URLParam(r, "asset"),
		chi.URLParam(r, "account"),
	)
	if err != nil {
		writeAppError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, amountResponse{formatAmount(amount)})
}

func (h *handler) alreadyWithdrawn(w http.ResponseWriter, r *http.Request) {
	amount, err := h.poolingSvc.AlreadyWithdrawn(
		r.Context(),
		chi.URLParam(r, "pool"), chi.URLParam(r, "asset"),
		chi.URLParam(r, "account"),
	)
	if err != nil {
		writeAppError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, amountResponse{formatAmount(amount)})
}

func (h *handler) withdraw(w http.ResponseWriter, r *http.Request) {
	c := callerFromContext(r.Context())
	if c == nil || c.account == "" {
		writeAppError(w, ErrMissingCaller)
		return
	}

	withdrawal, err := h.poolingSvc.Withdraw(
		r.Context(), chi.URLParam(r, "pool"), chi.URLParam(r, "asset"), c.account,
	)
	if err != nil {
		writeAppError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, withdrawalResponse{toWithdrawalJSON(*withdrawal)})
}

func (h *handler) listWithdrawals(w http.ResponseWriter, r *http.Request) {
	page, err := parsePage(r)
	if err != nil {
		writeAppError(w, err)
		return
	}

	poolID := chi.URLParam(r, "pool")
	var withdrawals []domain.Withdrawal
	if account := r.URL.Query().Get("account"); account != "" {
		withdrawals, err = h.poolingSvc.ListWithdrawalsForAccount(
			r.Context(), poolID, account, page,
		)
	} else {
		withdrawals, err = h.poolingSvc.ListWithdrawals(r.Context(), poolID, page)
	}
	if err != nil {
		writeAppError(w, err)
		return
	}

	list := make([]withdrawalJSON, 0, len(withdrawals))
	for _, withdrawal := range withdrawals {
		list = append(list, toWithdrawalJSON(withdrawal))
	}
	writeJSON(w, http.StatusOK, listWithdrawalsResponse{list})
}

func (h *handler) deposit(w http.ResponseWriter, r *http.Request) {
	req := depositRequest{}
	if err := decodeBody(r, &req); err != nil {
		writeAppError(w, err)
		return
	}
	amount, err := parseAmount(req.Amount)
	if err != nil {
		writeAppError(w, err)
		return
	}

	ref, err := h.poolingSvc.Deposit(r.Context(), req.PoolID, req.Asset, amount)
	if err != nil {
		writeAppError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, depositResponse{ref})
}

func (h *handler) addWebhook(w http.ResponseWriter, r *http.Request) {
	req := addWebhookRequest{}
	if err := decodeBody(r, &req); err != nil {
		writeAppError(w, err)
		return
	}

	id, err := h.pubsubSvc.AddWebhook(r.Context(), req.Event, req.Endpoint, req.Secret)
	if err != nil {
		writeAppError(w, err)
		return
	}

	writeJSON(w, http.StatusCreated, idResponse{id})
}

func (h *handler) listWebhooks(w http.ResponseWriter, r *http.Request) {
	hooks, err := h.pubsubSvc.ListWebhooks(r.Context(), r.URL.Query().Get("event"))
	if err != nil {
		writeAppError(w, err)
		return
	}

	list := make([]webhookJSON, 0, len(hooks))
	for _, hook := range hooks {
		list = append(list, webhookJSON{
			hook.ID, hook.Event, hook.Endpoint, hook.IsSecured,
		})
	}
	writeJSON(w, http.StatusOK, listWebhooksResponse{list})
}

func (h *handler) removeWebhook(w http.ResponseWriter, r *http.Request) {
	if err := h.pubsubSvc.RemoveWebhook(r.Context(), chi.URLParam(r, "id")); err != nil {
		writeAppError(w, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func decodeBody(r *http.Request, v interface{}) error {
	dec := json.NewDecoder(r.Body)
	dec.DisallowUnknownFields()
	if err := dec.Decode(v); err != nil {
		return ErrInvalidBody
	}
	return nil
}

// parsePage returns nil if no page is requested.
func parsePage(r *http.Request) (*domain.Page, error) {
	query := r.URL.Query()
	pageStr, sizeStr := query.Get("page"), query.Get("size")
	if pageStr == "" && sizeStr == "" {
		return nil, nil
	}

	var number, size int
	var err error
	if pageStr != "" {
		if number, err = strconv.Atoi(pageStr); err != nil || number <= 0 {
			return nil, ErrInvalidPage
		}
	}
	if sizeStr != "" {
		if size, err = strconv.Atoi(sizeStr); err != nil || size <= 0 {
			return nil, ErrInvalidPage
		}
	}

	page := domain.NewPage(number, size)
	return &page, nil
}
