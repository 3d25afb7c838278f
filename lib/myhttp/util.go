package myhttp

import (
	"fmt"
	"net/http"
	"os"
	"strings"
)

// HostnameWithScheme returns the externally visible base url of the request.
func HostnameWithScheme(r *http.Request) string {
	if base := os.Getenv("STOREFRONT_BASE_URL"); base != "" {
		return strings.TrimSuffix(base, "/")
	}

	scheme := "https"
	if r.TLS == nil {
		scheme = "http"
	}

	return fmt.Sprintf("%s://%s", scheme, r.Host)
}

// BearerToken extracts the token of an "Authorization: Bearer <token>" header.
func BearerToken(r *http.Request) (string, bool) {
	header := r.Header.Get("Authorization")
	token, found := strings.CutPrefix(header, "Bearer ")
	if !found || strings.TrimSpace(token) == "" {
		return "", false
	}
	return strings.TrimSpace(token), true
}
