package myqueue

import (
	"context"
)

// Task asks the queue to PUT Payload to WebhookURLPath on this service, once per UID.
type Task struct {
	UID            string
	WebhookURLPath string
	Payload        []byte
}

var New func(c context.Context) (TaskQueuer, func(), error)

//go:generate mockgen -source=api.go -package myqueue -destination queuer_mock.go TaskQueuer
type TaskQueuer interface {
	Enqueue(c context.Context, task Task) error
}
