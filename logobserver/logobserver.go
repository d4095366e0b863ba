// Package logobserver adapts singleton registry events to apex/log entries.
package logobserver

import (
	"github.com/apex/log"

	singleton "github.com/probablyarth/singleton-go"
)

// Observer logs every registry event it receives. Failures are logged at
// error level, constructions at info, hits and dedups at debug.
type Observer struct {
	logger log.Interface
}

// New returns an Observer writing to logger. A nil logger uses the apex/log
// package-level logger.
func New(logger log.Interface) *Observer {
	if logger == nil {
		logger = log.Log
	}
	return &Observer{logger: logger}
}

// On implements singleton.Observer.
func (o *Observer) On(e singleton.EventData) {
	entry := o.logger.WithFields(log.Fields{
		"event": e.Event.String(),
		"type":  e.Type.String(),
		"name":  e.Name,
	})

	switch e.Event {
	case singleton.EventFailure:
		entry.WithError(e.Err).Error("singleton construction failed")
	case singleton.EventConstruct:
		entry.Info("constructing singleton")
	case singleton.EventDedup:
		entry.Debug("joined in-flight construction")
	default:
		entry.Debug("singleton hit")
	}
}
