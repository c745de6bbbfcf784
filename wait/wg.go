// Package wait tracks goroutines so their owner can wait for them on shutdown.
package wait

import (
	"sync"

	"github.com/ProtonMail/sceneprobe/async"
)

type Group struct {
	wg           sync.WaitGroup
	PanicHandler async.PanicHandler
}

// Go runs f in a new goroutine. Panics are passed to the group's panic handler, if any.
func (wg *Group) Go(f func()) {
	wg.wg.Add(1)

	go func() {
		defer wg.wg.Done()
		defer async.HandlePanic(wg.PanicHandler)

		f()
	}()
}

func (wg *Group) Wait() {
	wg.wg.Wait()
}
