package cms

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/danudara/storefront/lib/myerrors"
	"github.com/danudara/storefront/lib/myhttpclient"
	"github.com/danudara/storefront/lib/mylog"
)

const hostedRecord = `{
	"banners": [{"id": 7, "image": "b.jpg", "title": {"en": "Sale"}, "subtitle": {"en": "Now"}, "link": "shop.html"}],
	"promotions": {"active": false, "text": {"en": "none"}},
	"about": {"title": {"en": "About us"}, "content": {"en": "We weave"}, "image": "a.jpg"},
	"contact": {"phone": "+94 11 234 5678", "whatsapp": "94112345678", "email": "shop@example.lk", "address": {"en": "Kandy"}},
	"newArrivals": {"enabled": true, "limit": 4, "title": {"en": "Fresh"}},
	"languages": {"en": {"itemAdded": "Added!"}},
	"extra": {"keep": true}
}`

// fakeBin mimics the hosted json document store.
type fakeBin struct {
	sync.Mutex
	record string
	fail   bool
	puts   int
}

func (b *fakeBin) handler(t *testing.T) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		b.Lock()
		defer b.Unlock()

		assert.Equal(t, "master", r.Header.Get("X-Master-Key"))
		if b.fail {
			w.WriteHeader(http.StatusInternalServerError)
			return
		}
		switch {
		case r.Method == http.MethodGet && r.URL.Path == "/v3/b/bin1/latest":
			w.Write([]byte(`{"record":` + b.record + `,"metadata":{"id":"bin1"}}`))
		case r.Method == http.MethodPut && r.URL.Path == "/v3/b/bin1":
			body, _ := io.ReadAll(r.Body)
			b.record = string(body)
			b.puts++
			w.Write([]byte(`{"record":` + b.record + `,"metadata":{"parentId":"bin1"}}`))
		default:
			w.WriteHeader(http.StatusNotFound)
		}
	})
}

func setup(t *testing.T, record string) (context.Context, *Client, *fakeBin) {
	bin := &fakeBin{record: record}
	server := httptest.NewServer(bin.handler(t))
	t.Cleanup(server.Close)

	sender := myhttpclient.New(map[string]string{"X-Master-Key": "master"})
	return context.TODO(), NewClient(sender, server.URL+"/v3/", "bin1", mylog.New("cms")), bin
}

func TestGetContent(t *testing.T) {
	t.Run("Hosted content", func(t *testing.T) {
		// setup
		c, client, _ := setup(t, hostedRecord)

		// when
		content := client.GetContent(c)

		// then
		require.Len(t, content.Banners, 1)
		assert.Equal(t, 7, content.Banners[0].ID)
		assert.False(t, content.Promotions.Active)
		assert.Equal(t, "94112345678", content.Contact.WhatsApp)
		assert.Equal(t, 4, content.NewArrivals.Limit)
	})

	t.Run("Failure gives defaults", func(t *testing.T) {
		// setup
		c, client, bin := setup(t, hostedRecord)
		bin.fail = true

		// when
		content := client.GetContent(c)

		// then
		assert.Equal(t, DefaultContent(), content)
	})

	t.Run("Garbage gives defaults", func(t *testing.T) {
		// setup
		c, client, _ := setup(t, `"not an object"`)

		// when
		content := client.GetContent(c)

		// then
		assert.Equal(t, DefaultContent().Contact, content.Contact)
	})

	t.Run("Not configured gives defaults", func(t *testing.T) {
		// setup
		client := NewClient(myhttpclient.New(nil), "https://unused", "", mylog.New("cms"))

		// when
		content := client.GetContent(context.TODO())

		// then
		assert.Equal(t, DefaultContent(), content)
	})
}

func TestSections(t *testing.T) {
	t.Run("Get section", func(t *testing.T) {
		// setup
		c, client, _ := setup(t, hostedRecord)

		// when
		raw, found, err := client.GetSection(c, SectionAbout)

		// then
		require.NoError(t, err)
		assert.True(t, found)
		about := About{}
		require.NoError(t, json.Unmarshal(raw, &about))
		assert.Equal(t, "We weave", about.Content["en"])
	})

	t.Run("Missing section", func(t *testing.T) {
		// setup
		c, client, _ := setup(t, `{"about": null}`)

		// when
		_, found, err := client.GetSection(c, SectionAbout)

		// then
		require.NoError(t, err)
		assert.False(t, found)
	})

	t.Run("Unknown section", func(t *testing.T) {
		// setup
		c, client, _ := setup(t, hostedRecord)

		// when
		_, _, err := client.GetSection(c, "secrets")

		// then
		assert.Equal(t, http.StatusNotFound, myerrors.GetHTTPStatus(err))
	})

	t.Run("Update section keeps the rest", func(t *testing.T) {
		// setup
		c, client, bin := setup(t, hostedRecord)

		// when
		content, err := client.UpdateSection(c, SectionPromotions, json.RawMessage(`{"active": true, "text": {"en": "50% off"}}`))

		// then
		require.NoError(t, err)
		assert.True(t, content.Promotions.Active)
		assert.Equal(t, "50% off", content.Promotions.Text["en"])
		assert.Equal(t, "Kandy", content.Contact.Address["en"])
		assert.Equal(t, 1, bin.puts)
		assert.Contains(t, bin.record, `"extra"`)
	})

	t.Run("Update section with wrong shape", func(t *testing.T) {
		// setup
		c, client, bin := setup(t, hostedRecord)

		// when
		_, err := client.UpdateSection(c, SectionNewArrivals, json.RawMessage(`{"limit": "many"}`))

		// then
		assert.Equal(t, http.StatusBadRequest, myerrors.GetHTTPStatus(err))
		assert.Equal(t, 0, bin.puts)
	})

	t.Run("Update section never writes defaults over unreadable content", func(t *testing.T) {
		// setup
		c, client, bin := setup(t, hostedRecord)
		bin.fail = true

		// when
		_, err := client.UpdateSection(c, SectionAbout, json.RawMessage(`{}`))

		// then
		assert.Equal(t, http.StatusServiceUnavailable, myerrors.GetHTTPStatus(err))
		assert.Equal(t, 0, bin.puts)
	})
}

func TestUpdateContent(t *testing.T) {
	t.Run("Replaces document", func(t *testing.T) {
		// setup
		c, client, bin := setup(t, hostedRecord)
		content := DefaultContent()
		content.Contact.WhatsApp = "94771234567"

		// when
		stored, err := client.UpdateContent(c, content)

		// then
		require.NoError(t, err)
		assert.Equal(t, "94771234567", stored.Contact.WhatsApp)
		assert.Equal(t, 1, bin.puts)
	})

	t.Run("Rejected by store", func(t *testing.T) {
		ctrl := gomock.NewController(t)

		// setup
		sender := myhttpclient.NewMockHTTPSender(ctrl)
		client := NewClient(sender, "https://api.jsonbin.io/v3", "bin1", mylog.New("cms"))

		// given
		sender.EXPECT().Send(gomock.Any(), http.MethodPut, "https://api.jsonbin.io/v3/b/bin1", gomock.Any()).Return(http.StatusUnauthorized, []byte(`{"message":"bad key"}`), nil)

		// when
		_, err := client.UpdateContent(context.TODO(), DefaultContent())

		// then
		assert.Equal(t, http.StatusServiceUnavailable, myerrors.GetHTTPStatus(err))
	})
}

func TestLanguageStrings(t *testing.T) {
	t.Run("From hosted content", func(t *testing.T) {
		// setup
		c, client, _ := setup(t, hostedRecord)

		// when
		strings, err := client.LanguageStrings(c)

		// then
		require.NoError(t, err)
		assert.Equal(t, "Added!", strings.Translate("en", "itemAdded"))
	})

	t.Run("Failure is reported", func(t *testing.T) {
		ctrl := gomock.NewController(t)

		// setup
		sender := myhttpclient.NewMockHTTPSender(ctrl)
		client := NewClient(sender, "https://api.jsonbin.io/v3", "bin1", mylog.New("cms"))

		// given
		sender.EXPECT().Send(gomock.Any(), http.MethodGet, "https://api.jsonbin.io/v3/b/bin1/latest", gomock.Any()).Return(0, nil, errors.New("offline"))

		// when
		_, err := client.LanguageStrings(context.TODO())

		// then
		assert.Error(t, err)
	})
}
