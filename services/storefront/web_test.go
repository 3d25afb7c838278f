package storefront

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/danudara/storefront/lib/myevents"
	"github.com/danudara/storefront/lib/myhttp"
	"github.com/danudara/storefront/lib/myhttpclient"
	"github.com/danudara/storefront/lib/mykv"
	"github.com/danudara/storefront/lib/mylog"
	"github.com/danudara/storefront/lib/mymetrics"
	"github.com/danudara/storefront/lib/mypublisher"
	"github.com/danudara/storefront/lib/mypubsub"
	"github.com/danudara/storefront/lib/mystore"
	"github.com/danudara/storefront/lib/mytime"
	"github.com/danudara/storefront/lib/myuuid"
	"github.com/danudara/storefront/services/cart"
	"github.com/danudara/storefront/services/catalog"
	"github.com/danudara/storefront/services/catalog/catalogevents"
	"github.com/danudara/storefront/services/checkout"
	"github.com/danudara/storefront/services/cms"
	"github.com/danudara/storefront/services/i18n"
)

const adminToken = "s3cret"

var (
	saree  = catalog.Product{ID: "p1", Name: "Batik Saree", PriceCents: 250000, CategoryID: "sarees", IsActive: true, IsFeatured: true, CreatedAt: mytime.ExampleTime}
	sarong = catalog.Product{ID: "p2", Name: "Cotton Sarong", PriceCents: 150000, CategoryID: "sarongs", IsActive: true, CreatedAt: mytime.ExampleTime.Add(1)}
	hidden = catalog.Product{ID: "p3", Name: "Old Saree", PriceCents: 100000, CategoryID: "sarees", IsActive: false, CreatedAt: mytime.ExampleTime.Add(2)}
)

type testContext struct {
	c         context.Context
	router    *mux.Router
	stores    catalog.Stores
	uuider    *myuuid.MockUUIDer
	publisher *mypublisher.MockPublisher
}

func TestCatalogPages(t *testing.T) {

	t.Run("List active products", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		// setup
		tc := setup(t, ctrl, "")

		// when
		response := tc.do(http.MethodGet, "/api/products", "", nil)

		// then
		assert.Equal(t, http.StatusOK, response.Code)
		assert.Equal(t, []string{"p2", "p1"}, productIDs(t, response))
	})

	t.Run("Search within category", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		// setup
		tc := setup(t, ctrl, "")

		// when
		response := tc.do(http.MethodGet, "/api/products?q=saree&category=sarees", "", nil)

		// then
		assert.Equal(t, http.StatusOK, response.Code)
		assert.Equal(t, []string{"p1"}, productIDs(t, response))
	})

	t.Run("Featured products", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		// setup
		tc := setup(t, ctrl, "")

		// when
		response := tc.do(http.MethodGet, "/api/products/featured", "", nil)

		// then
		assert.Equal(t, http.StatusOK, response.Code)
		assert.Equal(t, []string{"p1"}, productIDs(t, response))
	})

	t.Run("Inactive product not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		// setup
		tc := setup(t, ctrl, "")

		// when
		response := tc.do(http.MethodGet, "/api/products/p3", "", nil)

		// then
		assert.Equal(t, http.StatusNotFound, response.Code)
		assert.Equal(t, 5, errorResponse(t, response).ErrorCode)
	})

	t.Run("Invalid new arrivals limit", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		// setup
		tc := setup(t, ctrl, "")

		// when
		response := tc.do(http.MethodGet, "/api/products/new?limit=many", "", nil)

		// then
		assert.Equal(t, http.StatusBadRequest, response.Code)
	})

	t.Run("Delivery charge of district", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		// setup
		tc := setup(t, ctrl, "")

		// when
		response := tc.do(http.MethodGet, "/api/delivery-charge?district=Colombo&city=Dehiwala", "", nil)

		// then
		assert.Equal(t, http.StatusOK, response.Code)
		view := deliveryChargeView{}
		require.NoError(t, json.Unmarshal(response.Body.Bytes(), &view))
		assert.Equal(t, "350", view.Charge.String())
	})

	t.Run("Delivery charge without district", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		// setup
		tc := setup(t, ctrl, "")

		// when
		response := tc.do(http.MethodGet, "/api/delivery-charge", "", nil)

		// then
		assert.Equal(t, http.StatusBadRequest, response.Code)
	})

	t.Run("Default content when no bin configured", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		// setup
		tc := setup(t, ctrl, "")

		// when
		response := tc.do(http.MethodGet, "/api/content", "", nil)

		// then
		assert.Equal(t, http.StatusOK, response.Code)
		view := contentView{}
		require.NoError(t, json.Unmarshal(response.Body.Bytes(), &view))
		assert.Equal(t, "en", view.Language)
		assert.Equal(t, cms.DefaultContent().Contact.Phone, view.Content.Contact.Phone)
	})

	t.Run("Warmup seeds payment methods", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		// setup
		tc := setup(t, ctrl, "")

		// when
		warmup := tc.do(http.MethodGet, "/_ah/warmup", "", nil)
		response := tc.do(http.MethodGet, "/api/payment-methods", "", nil)

		// then
		assert.Equal(t, http.StatusOK, warmup.Code)
		methods := []catalog.PaymentMethod{}
		require.NoError(t, json.Unmarshal(response.Body.Bytes(), &methods))
		assert.Len(t, methods, 2)
	})
}

func TestCartPages(t *testing.T) {

	t.Run("Add item and read notifications", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		// setup
		tc := setup(t, ctrl, "")

		// when
		response := tc.do(http.MethodPost, "/api/cart/items", "productId=p1&quantity=2", nil)
		notifications := tc.do(http.MethodGet, "/api/notifications", "", nil)
		again := tc.do(http.MethodGet, "/api/notifications", "", nil)

		// then
		assert.Equal(t, http.StatusOK, response.Code)
		view := cartResponse(t, response)
		assert.Equal(t, 2, view.ItemCount)
		assert.Equal(t, "5000", view.Subtotal.String())
		assert.Equal(t, placeholderImage, view.Items[0].Image)
		assert.Equal(t, "Rs.", view.CurrencySymbol)

		received := []Notification{}
		require.NoError(t, json.Unmarshal(notifications.Body.Bytes(), &received))
		assert.Equal(t, []Notification{{Kind: cart.NotificationSuccess, Message: "Item added to cart"}}, received)
		assert.JSONEq(t, `[]`, again.Body.String())
	})

	t.Run("Add without quantity adds one", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		// setup
		tc := setup(t, ctrl, "")

		// when
		response := tc.do(http.MethodPost, "/api/cart/items", "productId=p2", nil)

		// then
		assert.Equal(t, 1, cartResponse(t, response).ItemCount)
	})

	t.Run("Add inactive product", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		// setup
		tc := setup(t, ctrl, "")

		// when
		response := tc.do(http.MethodPost, "/api/cart/items", "productId=p3&quantity=1", nil)

		// then
		assert.Equal(t, http.StatusNotFound, response.Code)
	})

	t.Run("Add with invalid quantity", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		// setup
		tc := setup(t, ctrl, "")

		// when
		response := tc.do(http.MethodPost, "/api/cart/items", "productId=p1&quantity=lots", nil)

		// then
		assert.Equal(t, http.StatusBadRequest, response.Code)
		assert.Equal(t, 12, errorResponse(t, response).ErrorCode)
	})

	t.Run("Increase, decrease and set to zero", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		// setup
		tc := setup(t, ctrl, "")
		tc.do(http.MethodPost, "/api/cart/items", "productId=p1&quantity=1", nil)

		// when
		increased := cartResponse(t, tc.do(http.MethodPost, "/api/cart/items/p1/increase", "", nil))
		decreased := cartResponse(t, tc.do(http.MethodPost, "/api/cart/items/p1/decrease", "", nil))
		removed := cartResponse(t, tc.do(http.MethodPut, "/api/cart/items/p1", "quantity=0", nil))

		// then
		assert.Equal(t, 2, increased.ItemCount)
		assert.Equal(t, 1, decreased.ItemCount)
		assert.Equal(t, 0, removed.ItemCount)
		assert.Empty(t, removed.Items)
	})

	t.Run("Remove unknown item", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		// setup
		tc := setup(t, ctrl, "")

		// when
		response := tc.do(http.MethodDelete, "/api/cart/items/p9", "", nil)

		// then
		assert.Equal(t, http.StatusNotFound, response.Code)
	})

	t.Run("Clear cart", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		// setup
		tc := setup(t, ctrl, "")
		tc.do(http.MethodPost, "/api/cart/items", "productId=p1&quantity=3", nil)

		// when
		response := tc.do(http.MethodDelete, "/api/cart", "", nil)

		// then
		assert.Equal(t, 0, cartResponse(t, response).ItemCount)
	})

	t.Run("Switch language", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		// setup
		tc := setup(t, ctrl, "")

		// when
		switched := tc.do(http.MethodPut, "/api/language", "language=si", nil)
		current := tc.do(http.MethodGet, "/api/language", "", nil)
		unsupported := tc.do(http.MethodPut, "/api/language", "language=fr", nil)

		// then
		assert.Equal(t, http.StatusOK, switched.Code)
		view := languageView{}
		require.NoError(t, json.Unmarshal(current.Body.Bytes(), &view))
		assert.Equal(t, "si", view.Language)
		assert.Equal(t, i18n.DefaultStrings().Translate("si", "cart"), view.Strings["cart"])
		assert.Equal(t, http.StatusBadRequest, unsupported.Code)
	})
}

func TestCheckoutPage(t *testing.T) {

	t.Run("Empty cart", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		// setup
		tc := setup(t, ctrl, "")

		// when
		response := tc.do(http.MethodPost, "/checkout", "phone=0771234567&district=Colombo", nil)

		// then
		assert.Equal(t, http.StatusBadRequest, response.Code)
		assert.Equal(t, 22, errorResponse(t, response).ErrorCode)
		assert.Contains(t, errorResponse(t, response).Message, checkout.ErrEmptyCart.Error())
	})

	t.Run("Missing district", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		// setup
		tc := setup(t, ctrl, "")
		tc.do(http.MethodPost, "/api/cart/items", "productId=p1&quantity=1", nil)

		// when
		response := tc.do(http.MethodPost, "/checkout", "phone=0771234567", nil)

		// then
		assert.Equal(t, http.StatusBadRequest, response.Code)
		assert.Contains(t, errorResponse(t, response).Message, checkout.ErrIncompleteCustomerInfo.Error())
	})

	t.Run("Redirects to the messaging app", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		// setup
		tc := setup(t, ctrl, "")
		tc.do(http.MethodGet, "/_ah/warmup", "", nil)
		tc.do(http.MethodPost, "/api/cart/items", "productId=p1&quantity=2", nil)

		// when
		response := tc.do(http.MethodPost, "/checkout", "phone=0771234567&district=Colombo&paymentMethod=bank_transfer", nil)

		// then
		assert.Equal(t, http.StatusSeeOther, response.Code)
		location := response.Header().Get("Location")
		assert.True(t, strings.HasPrefix(location, "https://wa.me/94771234567?text="))
		link, err := url.Parse(location)
		require.NoError(t, err)
		message := link.Query().Get("text")
		assert.Contains(t, message, "💳 *Payment:* Bank Transfer\n")
		assert.Contains(t, message, "🚚 *Delivery:* Rs.350\n")
		assert.Contains(t, message, "💰 *Total:* Rs.5,350\n")

		cartAfter := cartResponse(t, tc.do(http.MethodGet, "/api/cart", "", nil))
		assert.Equal(t, 2, cartAfter.ItemCount)
	})
}

func TestAdminPages(t *testing.T) {
	bearer := map[string]string{"Authorization": "Bearer " + adminToken}

	t.Run("Disabled without admin token", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		// setup
		tc := setup(t, ctrl, "")

		// when
		response := tc.do(http.MethodGet, "/admin/api/products", "", bearer)

		// then
		assert.Equal(t, http.StatusNotFound, response.Code)
	})

	t.Run("Wrong token", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		// setup
		tc := setup(t, ctrl, adminToken)

		// when
		response := tc.do(http.MethodGet, "/admin/api/products", "", map[string]string{"Authorization": "Bearer guess"})

		// then
		assert.Equal(t, http.StatusForbidden, response.Code)
		assert.Equal(t, 40, errorResponse(t, response).ErrorCode)
	})

	t.Run("List includes inactive products", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		// setup
		tc := setup(t, ctrl, adminToken)

		// when
		response := tc.do(http.MethodGet, "/admin/api/products", "", bearer)

		// then
		assert.Equal(t, http.StatusOK, response.Code)
		assert.Equal(t, []string{"p3", "p2", "p1"}, productIDs(t, response))
	})

	t.Run("Create product", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		// setup
		tc := setup(t, ctrl, adminToken)

		// given
		tc.uuider.EXPECT().Create().Return("p9")
		tc.publisher.EXPECT().Publish(gomock.Any(), catalogevents.TopicName, gomock.Any()).Return(nil)

		// when
		response := tc.do(http.MethodPost, "/admin/api/products", `{"name":"Silk Saree","price":12500.5,"is_active":true}`, bearer)

		// then
		assert.Equal(t, http.StatusCreated, response.Code)
		assert.Contains(t, response.Body.String(), `"price": 12500.5`)
		stored, found, _ := tc.stores.Products.Get(tc.c, "p9")
		assert.True(t, found)
		assert.Equal(t, int64(1250050), stored.PriceCents)
	})

	t.Run("Create product with invalid price", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		// setup
		tc := setup(t, ctrl, adminToken)

		// when
		response := tc.do(http.MethodPost, "/admin/api/products", `{"name":"Silk Saree","price":-1}`, bearer)

		// then
		assert.Equal(t, http.StatusBadRequest, response.Code)
		assert.Contains(t, errorResponse(t, response).Message, "price")
	})

	t.Run("Content update needs a bin", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		// setup
		tc := setup(t, ctrl, adminToken)

		// when
		response := tc.do(http.MethodPut, "/admin/api/content/promotions", `{"active":false,"text":{"en":"Sale"}}`, bearer)

		// then
		assert.Equal(t, http.StatusServiceUnavailable, response.Code)
	})
}

func TestCatalogEvents(t *testing.T) {

	t.Run("Product deleted", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		// setup
		tc := setup(t, ctrl, "")

		// when
		response := tc.do(http.MethodPost, "/api/catalog/event", pushBody(t, catalogevents.ProductDeleted{ProductID: "p1"}), nil)

		// then
		assert.Equal(t, http.StatusOK, response.Code)
	})

	t.Run("Unknown event", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		// setup
		tc := setup(t, ctrl, "")

		// when
		response := tc.do(http.MethodPost, "/api/catalog/event", pushBody(t, unknownEvent{}), nil)

		// then
		assert.Equal(t, http.StatusNotImplemented, response.Code)
	})

	t.Run("Garbage", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		// setup
		tc := setup(t, ctrl, "")

		// when
		response := tc.do(http.MethodPost, "/api/catalog/event", "not json", nil)

		// then
		assert.Equal(t, http.StatusBadRequest, response.Code)
	})
}

type unknownEvent struct{}

func (e unknownEvent) GetEventTypeName() string {
	return "catalog.unknown"
}

func (e unknownEvent) GetAggregateName() string {
	return "x"
}

func pushBody(t *testing.T, event myevents.Event) string {
	payload, err := json.Marshal(event)
	require.NoError(t, err)
	envelope, err := json.Marshal(myevents.EventEnvelope{
		Topic:         catalogevents.TopicName,
		AggregateUID:  event.GetAggregateName(),
		EventTypeName: event.GetEventTypeName(),
		EventPayload:  string(payload),
	})
	require.NoError(t, err)
	body, err := json.Marshal(myevents.PushRequest{Message: myevents.PushMessage{Data: envelope}})
	require.NoError(t, err)
	return string(body)
}

func (tc testContext) do(method string, path string, body string, headers map[string]string) *httptest.ResponseRecorder {
	request := httptest.NewRequest(method, path, strings.NewReader(body))
	request.Host = "localhost:8080"
	if body != "" && !strings.HasPrefix(body, "{") {
		request.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	}
	for name, value := range headers {
		request.Header.Set(name, value)
	}
	response := httptest.NewRecorder()
	tc.router.ServeHTTP(response, request)
	return response
}

func productIDs(t *testing.T, response *httptest.ResponseRecorder) []string {
	products := []map[string]any{}
	require.NoError(t, json.Unmarshal(response.Body.Bytes(), &products))
	ids := []string{}
	for _, p := range products {
		ids = append(ids, p["id"].(string))
	}
	return ids
}

func cartResponse(t *testing.T, response *httptest.ResponseRecorder) cartView {
	require.Equal(t, http.StatusOK, response.Code, response.Body.String())
	view := cartView{}
	require.NoError(t, json.Unmarshal(response.Body.Bytes(), &view))
	return view
}

func errorResponse(t *testing.T, response *httptest.ResponseRecorder) myhttp.ErrorResponse {
	resp := myhttp.ErrorResponse{}
	require.NoError(t, json.Unmarshal(response.Body.Bytes(), &resp))
	return resp
}

func setup(t *testing.T, ctrl *gomock.Controller, token string) testContext {
	c := context.TODO()
	logger := mylog.New("storefront")

	storage := mykv.NewInMemoryStore()
	translator := i18n.New(storage, "danudara_language", "en", nil, logger)
	content := cms.NewClient(myhttpclient.NewMockHTTPSender(ctrl), "https://api.jsonbin.io/v3", "", logger)

	products, _, _ := mystore.NewInMemoryStore[catalog.Product](c)
	categories, _, _ := mystore.NewInMemoryStore[catalog.Category](c)
	charges, _, _ := mystore.NewInMemoryStore[catalog.DeliveryCharge](c)
	methods, _, _ := mystore.NewInMemoryStore[catalog.PaymentMethod](c)
	stores := catalog.Stores{Products: products, Categories: categories, DeliveryCharges: charges, PaymentMethods: methods}
	for _, p := range []catalog.Product{saree, sarong, hidden} {
		stores.Products.Put(c, p.ID, p)
	}
	stores.DeliveryCharges.Put(c, "d1", catalog.DeliveryCharge{ID: "d1", District: "Colombo", ChargeCents: 35000})

	uuider := myuuid.NewMockUUIDer(ctrl)
	publisher := mypublisher.NewMockPublisher(ctrl)
	catalogService := catalog.New(stores, mytime.RealNower{}, uuider, logger, publisher)

	notifications := NewNotificationSink()
	metrics := mymetrics.New(nil)
	ct := cart.New(storage, "danudara_cart", notifications, translator, logger)
	dispatcher := checkout.New(checkout.Options{
		Destination: "94771234567",
		Message:     checkout.MessageOptions{ShopName: "Danudara Textiles", CurrencySymbol: "Rs."},
	}, NavigationLauncher{}, notifications, translator, metrics, logger)

	subscriber := mypubsub.NewMockPubSub(ctrl)
	// called by the following call to RegisterEndpoints()
	subscriber.EXPECT().Subscribe(c, catalogevents.TopicName, "http://localhost:8080/api/catalog/event").Return(nil)

	sut := NewWebService(Options{
		BaseURL:        "http://localhost:8080",
		Currency:       "LKR",
		CurrencySymbol: "Rs.",
		AdminToken:     token,
	}, ct, catalogService, translator, content, dispatcher, notifications, subscriber, metrics)

	router := mux.NewRouter()
	err := sut.RegisterEndpoints(c, router)
	require.NoError(t, err)

	return testContext{
		c:         c,
		router:    router,
		stores:    stores,
		uuider:    uuider,
		publisher: publisher,
	}
}
