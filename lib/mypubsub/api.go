package mypubsub

import "context"

//go:generate mockgen -source=api.go -package mypubsub -destination pubsub_mock.go PubSub
type PubSub interface {
	CreateTopic(c context.Context, topic string) error
	Publish(c context.Context, topic string, data string) error
	Subscribe(c context.Context, topic string, urlToPostTo string) error
}

// New is bound by init: a google cloud client when GOOGLE_CLOUD_PROJECT is set, a no-op otherwise.
var New func(c context.Context) (PubSub, func(), error)
