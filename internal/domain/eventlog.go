package domain

// EventLogger records human-readable tracker events. The tracker reports its
// recoverable conditions (bad index, unknown name) through this channel
// instead of error returns, so any sink with a single Log method satisfies
// the contract.
type EventLogger interface {
	Log(message string)
}
