package storefront

import (
	"context"
	"sync"

	"github.com/danudara/storefront/services/cart"
)

const maxPendingNotifications = 20

type Notification struct {
	Kind    cart.NotificationKind `json:"kind"`
	Message string                `json:"message"`
}

// NotificationSink keeps user feedback until the page fetches it; the oldest are dropped when full.
type NotificationSink struct {
	sync.Mutex
	pending []Notification
}

func NewNotificationSink() *NotificationSink {
	return &NotificationSink{
		pending: []Notification{},
	}
}

func (s *NotificationSink) Notify(c context.Context, kind cart.NotificationKind, message string) {
	s.Lock()
	defer s.Unlock()

	s.pending = append(s.pending, Notification{Kind: kind, Message: message})
	if len(s.pending) > maxPendingNotifications {
		s.pending = s.pending[len(s.pending)-maxPendingNotifications:]
	}
}

// Drain returns the pending notifications, oldest first, and forgets them.
func (s *NotificationSink) Drain() []Notification {
	s.Lock()
	defer s.Unlock()

	drained := s.pending
	s.pending = []Notification{}
	return drained
}
