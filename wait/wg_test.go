package wait

import (
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"
)

type countingHandler struct {
	count atomic.Int32
}

func (h *countingHandler) HandlePanic(any) {
	h.count.Add(1)
}

func TestGroup(t *testing.T) {
	defer goleak.VerifyNone(t)

	handler := &countingHandler{}
	group := &Group{PanicHandler: handler}

	var ran atomic.Int32

	for i := 0; i < 10; i++ {
		group.Go(func() {
			ran.Add(1)
		})
	}

	group.Go(func() {
		panic("renderer")
	})

	group.Wait()

	require.Equal(t, int32(10), ran.Load())
	require.Equal(t, int32(1), handler.count.Load())
}
