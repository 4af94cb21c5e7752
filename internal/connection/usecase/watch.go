package usecase

// Watch registers fn to run whenever IsReady flips. Watchers fire
// outside the state lock, so they may call back into the use case.
func (uc *implUseCase) Watch(fn func(ready bool)) (cancel func()) {
	uc.mu.Lock()
	id := uc.nextWatch
	uc.nextWatch++
	uc.watchers[id] = fn
	uc.mu.Unlock()

	return func() {
		uc.mu.Lock()
		delete(uc.watchers, id)
		uc.mu.Unlock()
	}
}
