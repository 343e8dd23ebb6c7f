package payments

import (
	"context"
	"time"

	"doctorsportal-service/internal/app/contracts"

	"go.uber.org/zap"
)

const reconcilePassTimeout = 30 * time.Second

// StartReconciler runs ReconcileUnpaidBookings on a fixed interval until the
// returned stop function is called. Stop blocks until the loop has exited.
func StartReconciler(paymentUsecase contracts.PaymentUsecase, interval time.Duration, logger *zap.Logger) func() {
	done := make(chan struct{})
	stopped := make(chan struct{})

	go func() {
		defer close(stopped)
		ticker := time.NewTicker(interval)
		defer ticker.Stop()

		for {
			select {
			case <-done:
				return
			case <-ticker.C:
				ctx, cancel := context.WithTimeout(context.Background(), reconcilePassTimeout)
				if _, err := paymentUsecase.ReconcileUnpaidBookings(ctx); err != nil {
					logger.Error("payment reconciler pass failed", zap.Error(err))
				}
				cancel()
			}
		}
	}()

	return func() {
		close(done)
		<-stopped
	}
}
