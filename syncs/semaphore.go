package syncs

// Semaphore bounds the number of goroutines holding it at once.
type Semaphore struct {
	tokens chan struct{}
}

func NewSemaphore(n int) *Semaphore {
	return &Semaphore{
		tokens: make(chan struct{}, n),
	}
}

func (s *Semaphore) Acquire() {
	s.tokens <- struct{}{}
}

func (s *Semaphore) Release() {
	<-s.tokens
}
