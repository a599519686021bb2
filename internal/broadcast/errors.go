package broadcast

import "errors"

var (
	ErrClientQueueFull = errors.New("client event queue is full")
	ErrMissingTopic    = errors.New("topic is required")
)
