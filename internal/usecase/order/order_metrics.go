package usecase

// recordOrderCreated - called after the order row commits
func (uc *DefaultOrderUsecase) recordOrderCreated() {
	if uc.Metrics == nil {
		return
	}

	uc.Metrics.RecordOrderCreated()
}

// recordOrderShipped - called after the SHIPPED write commits
func (uc *DefaultOrderUsecase) recordOrderShipped() {
	if uc.Metrics == nil {
		return
	}

	uc.Metrics.RecordOrderShipped()
}

// recordOrderTransition - called after a status write commits
func (uc *DefaultOrderUsecase) recordOrderTransition(from, to string) {
	if uc.Metrics == nil {
		return
	}

	uc.Metrics.RecordOrderTransition(from, to)
}

// recordNotification - called once per notification with the result
func (uc *DefaultOrderUsecase) recordNotification(outcome, reason string) {
	if uc.Metrics == nil {
		return
	}

	uc.Metrics.RecordNotification(outcome, reason)
}
