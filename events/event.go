// Package events defines the events published by a probe to its watchers.
package events

type Event interface {
	_isEvent()
}

type eventBase struct{}

func (eventBase) _isEvent() {}
