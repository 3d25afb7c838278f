// Package cms reads and writes the storefront content kept in a hosted json document.
package cms

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/danudara/storefront/lib/myerrors"
	"github.com/danudara/storefront/lib/myhttpclient"
	"github.com/danudara/storefront/lib/mylog"
	"github.com/danudara/storefront/services/i18n"
)

var errNotConfigured = errors.New("content bin not configured")

type Client struct {
	sender  myhttpclient.HTTPSender
	baseURL string
	binID   string
	logger  mylog.Logger
}

// binResponse is the envelope the document store wraps around the stored record.
type binResponse struct {
	Record json.RawMessage `json:"record"`
}

// Use dependency injection to isolate the infrastructure and easy testing
func NewClient(sender myhttpclient.HTTPSender, baseURL string, binID string, logger mylog.Logger) *Client {
	return &Client{
		sender:  sender,
		baseURL: strings.TrimSuffix(baseURL, "/"),
		binID:   binID,
		logger:  logger,
	}
}

// GetContent never fails: anything that goes wrong yields the default content.
func (cl *Client) GetContent(c context.Context) Content {
	content, err := cl.fetchContent(c)
	if err != nil {
		cl.logger.Log(c, cl.binID, mylog.SeverityWarn, "Serving default content: %s", err)
		return DefaultContent()
	}
	return content
}

// UpdateContent replaces the hosted document and returns what was stored.
func (cl *Client) UpdateContent(c context.Context, content Content) (Content, error) {
	asJSON, err := json.Marshal(content)
	if err != nil {
		return Content{}, myerrors.NewInternalError(fmt.Errorf("error marshalling content: %s", err))
	}
	record, err := cl.put(c, asJSON)
	if err != nil {
		return Content{}, err
	}
	return decodeContent(record)
}

// GetSection returns one section of the content; found is false for sections the document lacks.
func (cl *Client) GetSection(c context.Context, name string) (json.RawMessage, bool, error) {
	if !IsSection(name) {
		return nil, false, myerrors.NewNotFoundError(fmt.Errorf("unknown content section %q", name))
	}
	sections, err := cl.fetchSections(c)
	if err != nil {
		cl.logger.Log(c, cl.binID, mylog.SeverityWarn, "Serving default section %s: %s", name, err)
		sections, err = defaultSections()
		if err != nil {
			return nil, false, myerrors.NewInternalError(err)
		}
	}
	section, found := sections[name]
	if !found || isNull(section) {
		return nil, false, nil
	}
	return section, true, nil
}

// UpdateSection replaces one section and keeps the rest of the hosted document as is.
// Unlike the read side it does not fall back to defaults, to never overwrite hosted content with them.
func (cl *Client) UpdateSection(c context.Context, name string, data json.RawMessage) (Content, error) {
	if !IsSection(name) {
		return Content{}, myerrors.NewNotFoundError(fmt.Errorf("unknown content section %q", name))
	}
	if !json.Valid(data) {
		return Content{}, myerrors.NewInvalidInputError(fmt.Errorf("section %s is not valid json", name))
	}

	sections, err := cl.fetchSections(c)
	if err != nil {
		return Content{}, myerrors.NewUnavailableError(err)
	}
	sections[name] = data

	// the typed view must still be readable after the change
	asJSON, err := json.Marshal(sections)
	if err != nil {
		return Content{}, myerrors.NewInternalError(err)
	}
	_, err = decodeContent(asJSON)
	if err != nil {
		return Content{}, myerrors.NewInvalidInputError(fmt.Errorf("section %s has unexpected shape: %s", name, err))
	}

	record, err := cl.put(c, asJSON)
	if err != nil {
		return Content{}, err
	}
	return decodeContent(record)
}

// LanguageStrings feeds the translator; unlike GetContent it reports failures.
func (cl *Client) LanguageStrings(c context.Context) (i18n.Strings, error) {
	content, err := cl.fetchContent(c)
	if err != nil {
		return nil, err
	}
	if len(content.Languages) == 0 {
		return nil, fmt.Errorf("content has no %s section", SectionLanguages)
	}
	return content.Languages, nil
}

func (cl *Client) fetchContent(c context.Context) (Content, error) {
	record, err := cl.get(c)
	if err != nil {
		return Content{}, err
	}
	return decodeContent(record)
}

func (cl *Client) fetchSections(c context.Context) (map[string]json.RawMessage, error) {
	record, err := cl.get(c)
	if err != nil {
		return nil, err
	}
	sections := map[string]json.RawMessage{}
	err = json.Unmarshal(record, &sections)
	if err != nil {
		return nil, fmt.Errorf("error parsing content record: %s", err)
	}
	return sections, nil
}

func (cl *Client) get(c context.Context) (json.RawMessage, error) {
	if cl.binID == "" {
		return nil, errNotConfigured
	}
	url := fmt.Sprintf("%s/b/%s/latest", cl.baseURL, cl.binID)
	status, body, err := cl.sender.Send(c, http.MethodGet, url, nil)
	if err != nil {
		return nil, err
	}
	if status != http.StatusOK {
		return nil, fmt.Errorf("error fetching content: http-status %d", status)
	}
	return unwrapRecord(body)
}

func (cl *Client) put(c context.Context, document []byte) (json.RawMessage, error) {
	if cl.binID == "" {
		return nil, myerrors.NewUnavailableError(errNotConfigured)
	}
	url := fmt.Sprintf("%s/b/%s", cl.baseURL, cl.binID)
	status, body, err := cl.sender.Send(c, http.MethodPut, url, document)
	if err != nil {
		return nil, myerrors.NewUnavailableError(err)
	}
	if status != http.StatusOK {
		return nil, myerrors.NewUnavailableError(fmt.Errorf("error updating content: http-status %d", status))
	}
	record, err := unwrapRecord(body)
	if err != nil {
		return nil, myerrors.NewInternalError(err)
	}
	cl.logger.Log(c, cl.binID, mylog.SeverityInfo, "Updated hosted content")
	return record, nil
}

func unwrapRecord(body []byte) (json.RawMessage, error) {
	resp := binResponse{}
	err := json.Unmarshal(body, &resp)
	if err != nil {
		return nil, fmt.Errorf("error parsing content response: %s", err)
	}
	if isNull(resp.Record) {
		return nil, fmt.Errorf("content response without record")
	}
	return resp.Record, nil
}

func decodeContent(record json.RawMessage) (Content, error) {
	content := Content{}
	err := json.Unmarshal(record, &content)
	if err != nil {
		return Content{}, fmt.Errorf("error parsing content: %s", err)
	}
	return content, nil
}

func defaultSections() (map[string]json.RawMessage, error) {
	asJSON, err := json.Marshal(DefaultContent())
	if err != nil {
		return nil, err
	}
	sections := map[string]json.RawMessage{}
	err = json.Unmarshal(asJSON, &sections)
	if err != nil {
		return nil, err
	}
	return sections, nil
}

func isNull(raw json.RawMessage) bool {
	trimmed := strings.TrimSpace(string(raw))
	return trimmed == "" || trimmed == "null"
}
