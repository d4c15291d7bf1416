// Package notify abstracts the user-visible notification sink. The calculator
// and services never notify directly; only their callers (handlers, the
// background refresher) decide what surfaces.
package notify

import "github.com/rs/zerolog/log"

// Notifier surfaces outcomes exactly once per event. No retries.
type Notifier interface {
	Exito(msg string)
	Error(msg string, err error)
}

type logNotifier struct{}

// NewLogNotifier returns a Notifier backed by the structured logger.
func NewLogNotifier() Notifier { return logNotifier{} }

func (logNotifier) Exito(msg string) {
	log.Info().Msg(msg)
}

func (logNotifier) Error(msg string, err error) {
	log.Error().Err(err).Msg(msg)
}
