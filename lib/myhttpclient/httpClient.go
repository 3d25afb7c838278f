package myhttpclient

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/danudara/storefront/lib/mylog"
)

type jsonHTTPClient struct {
	client  *http.Client
	headers map[string]string
	logger  mylog.Logger
}

func newJSONHTTPClient(timeout time.Duration, headers map[string]string) *jsonHTTPClient {
	return &jsonHTTPClient{
		client: &http.Client{
			Timeout: timeout,
		},
		headers: headers,
		logger:  mylog.New("httpclient"),
	}
}

func (hc *jsonHTTPClient) Send(c context.Context, method string, url string, body []byte) (int, []byte, error) {
	httpReq, err := http.NewRequestWithContext(c, method, url, bytes.NewReader(body))
	if err != nil {
		return 0, nil, fmt.Errorf("error creating http request for %s %s: %s", method, url, err)
	}

	httpReq.Header.Set("Accept", "application/json")
	if len(body) > 0 {
		httpReq.Header.Set("Content-Type", "application/json")
	}
	for name, value := range hc.headers {
		httpReq.Header.Set(name, value)
	}

	hc.logger.Log(c, "", mylog.SeverityDebug, "HTTP request: %s %s", method, url)

	httpResp, err := hc.client.Do(httpReq)
	if err != nil {
		return 0, nil, fmt.Errorf("error sending %s %s: %s", method, url, err)
	}
	defer httpResp.Body.Close()

	respPayload, err := io.ReadAll(httpResp.Body)
	if err != nil {
		return 0, nil, fmt.Errorf("error reading response %s %s: %s", method, url, err)
	}

	hc.logger.Log(c, "", mylog.SeverityDebug, "HTTP response: %s %s -> %d", method, url, httpResp.StatusCode)

	return httpResp.StatusCode, respPayload, nil
}
