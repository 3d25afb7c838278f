package storefront

import (
	"context"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/danudara/storefront/services/cart"
)

func TestNotificationSink(t *testing.T) {
	c := context.TODO()

	t.Run("Drain returns oldest first and empties", func(t *testing.T) {
		// given
		sink := NewNotificationSink()
		sink.Notify(c, cart.NotificationSuccess, "first")
		sink.Notify(c, cart.NotificationError, "second")

		// when
		drained := sink.Drain()

		// then
		assert.Equal(t, []Notification{
			{Kind: cart.NotificationSuccess, Message: "first"},
			{Kind: cart.NotificationError, Message: "second"},
		}, drained)
		assert.Empty(t, sink.Drain())
	})

	t.Run("Oldest dropped when full", func(t *testing.T) {
		// given
		sink := NewNotificationSink()
		for i := 0; i < maxPendingNotifications+5; i++ {
			sink.Notify(c, cart.NotificationSuccess, fmt.Sprintf("msg-%d", i))
		}

		// when
		drained := sink.Drain()

		// then
		assert.Len(t, drained, maxPendingNotifications)
		assert.Equal(t, "msg-5", drained[0].Message)
	})
}

func TestNavigationLauncher(t *testing.T) {

	t.Run("Records target", func(t *testing.T) {
		// given
		c, nav := withNavigation(context.TODO())

		// when
		err := NavigationLauncher{}.Launch(c, "https://wa.me/94771234567?text=hi")

		// then
		assert.NoError(t, err)
		assert.Equal(t, "https://wa.me/94771234567?text=hi", nav.target)
	})

	t.Run("No page to navigate from", func(t *testing.T) {
		// when
		err := NavigationLauncher{}.Launch(context.TODO(), "https://wa.me/94771234567")

		// then
		assert.ErrorIs(t, err, errNoNavigation)
	})

	t.Run("Refuses plain http", func(t *testing.T) {
		// given
		c, nav := withNavigation(context.TODO())

		// when
		err := NavigationLauncher{}.Launch(c, "http://wa.me/94771234567")

		// then
		assert.Error(t, err)
		assert.Empty(t, nav.target)
	})
}
