package history

type Option interface {
	config(*Ledger)
}

// WithCapacity sets the number of entries kept before the oldest is evicted.
// Values below one are ignored.
func WithCapacity(capacity int) Option {
	return &withCapacity{
		capacity: capacity,
	}
}

type withCapacity struct {
	capacity int
}

func (opt withCapacity) config(ledger *Ledger) {
	if opt.capacity > 0 {
		ledger.capacity = opt.capacity
	}
}
