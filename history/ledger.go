package history

import (
	"sync"

	"github.com/bradenaw/juniper/container/deque"
	"github.com/sirupsen/logrus"
)

// DefaultCapacity is the number of entries a ledger keeps unless configured otherwise.
const DefaultCapacity = 10

// Ledger holds completed measurements, newest first.
// Recording past capacity evicts the oldest entry. There is no other way to remove entries.
type Ledger struct {
	// entries holds the newest entry at the front.
	entries deque.Deque[Entry]

	capacity int

	lock sync.RWMutex
}

func NewLedger(withOpt ...Option) *Ledger {
	ledger := &Ledger{
		capacity: DefaultCapacity,
	}

	for _, opt := range withOpt {
		opt.config(ledger)
	}

	return ledger
}

// Record prepends the entry, dropping the oldest entries past capacity.
func (l *Ledger) Record(entry Entry) {
	l.lock.Lock()
	defer l.lock.Unlock()

	l.entries.PushFront(entry)

	for l.entries.Len() > l.capacity {
		evicted := l.entries.PopBack()

		logrus.WithField("reference", evicted.Reference).
			WithField("recordedAt", evicted.RecordedAt).
			Debug("Evicted oldest history entry")
	}
}

// List returns the entries newest first. The returned slice belongs to the caller.
func (l *Ledger) List() []Entry {
	l.lock.RLock()
	defer l.lock.RUnlock()

	entries := make([]Entry, 0, l.entries.Len())

	for i := 0; i < l.entries.Len(); i++ {
		entries = append(entries, l.entries.Item(i))
	}

	return entries
}

func (l *Ledger) Len() int {
	l.lock.RLock()
	defer l.lock.RUnlock()

	return l.entries.Len()
}

func (l *Ledger) Cap() int {
	return l.capacity
}
