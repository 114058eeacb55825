package httpinterface

import (
	"strconv"

	"github.com/tdex-network/tdex-pooling/internal/core/application"
	"github.com/tdex-network/tdex-pooling/internal/core/domain"
)

type createPoolRequest struct {
	CustodyAccount string   `json:"custody_account"`
	Participants   []string `json:"participants"`
	Shares         []uint32 `json:"shares"`
}

type depositRequest struct {
	PoolID string `json:"pool_id"`
	Asset  string `json:"asset"`
	Amount string `json:"amount"`
}

type addWebhookRequest struct {
	Event    string `json:"event"`
	Endpoint string `json:"endpoint"`
	Secret   string `json:"secret"`
}

type participantJSON struct {
	Account string `json:"account"`
	Share   uint32 `json:"share"`
}

type assetJSON struct {
	Asset          string `json:"asset"`
	TotalDeposited string `json:"total_deposited"`
	TotalWithdrawn string `json:"total_withdrawn"`
	Balance        string `json:"balance"`
}

type poolJSON struct {
	ID             string            `json:"id"`
	CustodyAccount string            `json:"custody_account"`
	Participants   []participantJSON `json:"participants"`
	CreatedAt      int64             `json:"created_at"`
	Assets         []assetJSON       `json:"assets,omitempty"`
}

type withdrawalJSON struct {
	ID             string `json:"id"`
	PoolID         string `json:"pool_id"`
	Asset          string `json:"asset"`
	Account        string `json:"account"`
	Amount         string `json:"amount"`
	TotalDeposited string `json:"total_deposited"`
	TransferRef    string `json:"transfer_ref"`
	Timestamp      int64  `json:"timestamp"`
}

type webhookJSON struct {
	ID        string `json:"id"`
	Event     string `json:"event"`
	Endpoint  string `json:"endpoint"`
	IsSecured bool   `json:"is_secured"`
}

type poolResponse struct {
	Pool poolJSON `json:"pool"`
}

type listPoolsResponse struct {
	Pools []poolJSON `json:"pools"`
}

type shareResponse struct {
	Share uint32 `json:"share"`
}

type amountResponse struct {
	Amount string `json:"amount"`
}

type withdrawalResponse struct {
	Withdrawal withdrawalJSON `json:"withdrawal"`
}

type listWithdrawalsResponse struct {
	Withdrawals []withdrawalJSON `json:"withdrawals"`
}

type idResponse struct {
	ID string `json:"id"`
}

type depositResponse struct {
	Ref string `json:"ref"`
}

type listWebhooksResponse struct {
	Webhooks []webhookJSON `json:"webhooks"`
}

func formatAmount(amount uint64) string {
	return strconv.FormatUint(amount, 10)
}

func parseAmount(str string) (uint64, error) {
	amount, err := strconv.ParseUint(str, 10, 64)
	if err != nil || amount == 0 {
		return 0, ErrInvalidAmount
	}
	return amount, nil
}

func toPoolJSON(pool domain.Pool, assets []application.AssetInfo) poolJSON {
	participants := make([]participantJSON, 0, len(pool.Participants))
	for _, p := range pool.Participants {
		participants = append(participants, participantJSON{p.Account, p.Share})
	}

	var assetList []assetJSON
	for _, a := range assets {
		assetList = append(assetList, assetJSON{
			Asset:          a.Asset,
			TotalDeposited: formatAmount(a.TotalDeposited),
			TotalWithdrawn: formatAmount(a.TotalWithdrawn),
			Balance:        formatAmount(a.Balance),
		})
	}

	return poolJSON{
		ID:             pool.ID,
		CustodyAccount: pool.CustodyAccount,
		Participants:   participants,
		CreatedAt:      pool.CreatedAt,
		Assets:         assetList,
	}
}

func toWithdrawalJSON(w domain.Withdrawal) withdrawalJSON {
	return withdrawalJSON{
		ID:             w.ID,
		PoolID:         w.PoolID,
		Asset:          w.Asset,
		Account:        w.Account,
		Amount:         formatAmount(w.Amount),
		TotalDeposited: formatAmount(w.TotalDeposited),
		TransferRef:    w.TransferRef,
		Timestamp:      w.Timestamp,
	}
}
