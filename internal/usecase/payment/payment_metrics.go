package usecase

// recordPaymentCreated - called after the payment row commits
func (uc *DefaultPaymentUsecase) recordPaymentCreated(currency, mode string) {
	if uc.Metrics == nil {
		return
	}

	uc.Metrics.RecordPaymentCreated(currency, mode)
}

// recordRefundRequested - called after the processor accepts a refund
func (uc *DefaultPaymentUsecase) recordRefundRequested(currency string) {
	if uc.Metrics == nil {
		return
	}

	uc.Metrics.RecordRefundRequested(currency)
}

// recordStalePaymentExpired - called per payment canceled by the sweep
func (uc *DefaultPaymentUsecase) recordStalePaymentExpired() {
	if uc.Metrics == nil {
		return
	}

	uc.Metrics.RecordStalePaymentExpired()
}

// recordPaymentTransition - called after a status write commits
func (uc *DefaultPaymentUsecase) recordPaymentTransition(from, to string) {
	if uc.Metrics == nil {
		return
	}

	uc.Metrics.RecordPaymentTransition(from, to)
}
