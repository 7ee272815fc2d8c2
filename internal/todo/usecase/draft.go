package usecase

func (uc *implUseCase) SetDraftTitle(title string) {
	uc.mu.Lock()
	uc.draftTitle = title
	uc.mu.Unlock()
	uc.notify()
}

func (uc *implUseCase) SetDraftTime(time string) {
	uc.mu.Lock()
	uc.draftTime = time
	uc.mu.Unlock()
	uc.notify()
}
