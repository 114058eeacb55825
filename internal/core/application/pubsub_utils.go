package application

import (
	log "github.com/sirupsen/logrus"
	"github.com/tdex-network/tdex-pooling/internal/core/application/pooling"
	"github.com/tdex-network/tdex-pooling/internal/core/domain"
)

func publishWithdrawal(pubsubSvc PubSubService) pooling.WithdrawalHandler {
	return func(withdrawal domain.Withdrawal) {
		if err := pubsubSvc.PublishWithdrawalEvent(withdrawal); err != nil {
			log.WithError(err).Warnf(
				"failed to publish event for withdrawal %s", withdrawal.ID,
			)
			return
		}
		log.Debugf("published event for withdrawal %s", withdrawal.ID)
	}
}
