package storefront

import (
	"context"
	"errors"
	"net/url"
)

var errNoNavigation = errors.New("no page to navigate from")

type navigationKey struct{}

type navigation struct {
	target string
}

func withNavigation(c context.Context) (context.Context, *navigation) {
	nav := &navigation{}
	return context.WithValue(c, navigationKey{}, nav), nav
}

// NavigationLauncher opens external urls by redirecting the browser that made the request.
type NavigationLauncher struct{}

func (l NavigationLauncher) Launch(c context.Context, target string) error {
	nav, ok := c.Value(navigationKey{}).(*navigation)
	if !ok {
		return errNoNavigation
	}
	parsed, err := url.Parse(target)
	if err != nil {
		return err
	}
	if parsed.Scheme != "https" {
		return errors.New("refusing to navigate to non-https url")
	}
	nav.target = target
	return nil
}
