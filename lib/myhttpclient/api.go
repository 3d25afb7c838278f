package myhttpclient

import (
	"context"
	"time"
)

const defaultTimeout = 5 * time.Second

//go:generate mockgen -source=api.go -package myhttpclient -destination httpclient_mock.go HTTPSender
type HTTPSender interface {
	Send(c context.Context, method string, url string, body []byte) (int, []byte, error)
}

// New returns a json sender that adds the given headers to every request.
func New(headers map[string]string) HTTPSender {
	return newJSONHTTPClient(defaultTimeout, headers)
}
