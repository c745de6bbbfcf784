package observability

import "context"

type senderCtxKey struct{}

func NewContextWithObservabilitySender(ctx context.Context, sender Sender) context.Context {
	return context.WithValue(ctx, senderCtxKey{}, sender)
}

func getSenderFromContext(ctx context.Context) (Sender, bool) {
	sender, ok := ctx.Value(senderCtxKey{}).(Sender)

	return sender, ok && sender != nil
}
