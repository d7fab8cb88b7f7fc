package contract

import "context"

// Router decides how to answer one inbound message. Implementations must
// resolve external failures to a user-facing Outcome; a non-nil error means
// the message could not be routed at all.
type Router interface {
	Handle(ctx context.Context, userID, text string) (Outcome, error)
}
