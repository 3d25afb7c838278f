package storefront

import (
	"context"
	"fmt"
	"net/http"
	"strconv"
	"strings"

	formcodec "github.com/go-playground/form/v4"
	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/danudara/storefront/lib/mycontext"
	"github.com/danudara/storefront/lib/myerrors"
	"github.com/danudara/storefront/lib/myhttp"
	"github.com/danudara/storefront/lib/mylog"
	"github.com/danudara/storefront/services/catalog"
	"github.com/danudara/storefront/services/checkout"
	"github.com/danudara/storefront/services/i18n"
)

func (s *webService) RegisterEndpoints(c context.Context, router *mux.Router) error {
	// order matters: fixed paths before {productID}
	router.HandleFunc("/api/products/featured", s.featuredProductsPage()).Methods("GET")
	router.HandleFunc("/api/products/new", s.newArrivalsPage()).Methods("GET")
	router.HandleFunc("/api/products/{productID}", s.productPage()).Methods("GET")
	router.HandleFunc("/api/products", s.productsPage()).Methods("GET")
	router.HandleFunc("/api/categories", s.categoriesPage()).Methods("GET")
	router.HandleFunc("/api/payment-methods", s.paymentMethodsPage()).Methods("GET")
	router.HandleFunc("/api/delivery-charge", s.deliveryChargePage()).Methods("GET")
	router.HandleFunc("/api/content", s.contentPage()).Methods("GET")
	router.HandleFunc("/api/language", s.languagePage()).Methods("GET")
	router.HandleFunc("/api/language", s.setLanguagePage()).Methods("PUT")

	router.HandleFunc("/api/cart", s.cartPage()).Methods("GET")
	router.HandleFunc("/api/cart", s.clearCartPage()).Methods("DELETE")
	router.HandleFunc("/api/cart/items", s.addItemPage()).Methods("POST")
	router.HandleFunc("/api/cart/items/{productID}", s.setQuantityPage()).Methods("PUT")
	router.HandleFunc("/api/cart/items/{productID}", s.removeItemPage()).Methods("DELETE")
	router.HandleFunc("/api/cart/items/{productID}/increase", s.increasePage()).Methods("POST")
	router.HandleFunc("/api/cart/items/{productID}/decrease", s.decreasePage()).Methods("POST")
	router.HandleFunc("/api/notifications", s.notificationsPage()).Methods("GET")

	router.HandleFunc("/checkout", s.checkoutPage()).Methods("POST")

	router.HandleFunc("/api/catalog/event", s.catalogEventPage()).Methods("POST")
	router.Handle("/metrics", promhttp.Handler()).Methods("GET")
	router.HandleFunc("/_ah/warmup", s.warmupPage()).Methods("GET")

	if s.opts.AdminToken != "" {
		s.registerAdminEndpoints(router)
	} else {
		s.logger.Log(c, "", mylog.SeverityInfo, "No admin token configured: admin endpoints disabled")
	}

	return s.Subscribe(c)
}

func (s *webService) productsPage() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		c := mycontext.ContextFromHTTPRequest(r)
		errorWriter := myhttp.NewWriter(s.logger)

		categoryID := strings.TrimSpace(r.URL.Query().Get("category"))
		query := strings.TrimSpace(r.URL.Query().Get("q"))

		var products []catalog.Product
		var err error
		switch {
		case query != "":
			products, err = s.catalog.SearchProducts(c, query)
			products = inCategory(products, categoryID)
		case categoryID != "":
			products, err = s.catalog.ProductsByCategory(c, categoryID)
		default:
			products, err = s.catalog.ListProducts(c)
		}
		if err != nil {
			errorWriter.WriteError(c, w, 1, err)
			return
		}

		errorWriter.Write(c, w, http.StatusOK, products)
	}
}

func inCategory(products []catalog.Product, categoryID string) []catalog.Product {
	if categoryID == "" {
		return products
	}
	result := []catalog.Product{}
	for _, p := range products {
		if p.CategoryID == categoryID {
			result = append(result, p)
		}
	}
	return result
}

func (s *webService) featuredProductsPage() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		c := mycontext.ContextFromHTTPRequest(r)
		errorWriter := myhttp.NewWriter(s.logger)

		products, err := s.catalog.FeaturedProducts(c)
		if err != nil {
			errorWriter.WriteError(c, w, 2, err)
			return
		}

		errorWriter.Write(c, w, http.StatusOK, products)
	}
}

func (s *webService) newArrivalsPage() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		c := mycontext.ContextFromHTTPRequest(r)
		errorWriter := myhttp.NewWriter(s.logger)

		limit := 0
		if value := r.URL.Query().Get("limit"); value != "" {
			var err error
			limit, err = strconv.Atoi(value)
			if err != nil {
				errorWriter.WriteError(c, w, 3, myerrors.NewInvalidInputError(fmt.Errorf("invalid limit '%s' (%s)", value, err)))
				return
			}
		}

		products, err := s.catalog.NewArrivals(c, limit)
		if err != nil {
			errorWriter.WriteError(c, w, 4, err)
			return
		}

		errorWriter.Write(c, w, http.StatusOK, products)
	}
}

func (s *webService) productPage() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		c := mycontext.ContextFromHTTPRequest(r)
		errorWriter := myhttp.NewWriter(s.logger)

		product, err := s.catalog.GetActiveProduct(c, mux.Vars(r)["productID"])
		if err != nil {
			errorWriter.WriteError(c, w, 5, err)
			return
		}

		errorWriter.Write(c, w, http.StatusOK, product)
	}
}

func (s *webService) categoriesPage() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		c := mycontext.ContextFromHTTPRequest(r)
		errorWriter := myhttp.NewWriter(s.logger)

		categories, err := s.catalog.ListCategories(c)
		if err != nil {
			errorWriter.WriteError(c, w, 6, err)
			return
		}

		errorWriter.Write(c, w, http.StatusOK, categories)
	}
}

func (s *webService) paymentMethodsPage() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		c := mycontext.ContextFromHTTPRequest(r)
		errorWriter := myhttp.NewWriter(s.logger)

		methods, err := s.catalog.ListPaymentMethods(c, true)
		if err != nil {
			errorWriter.WriteError(c, w, 7, err)
			return
		}

		errorWriter.Write(c, w, http.StatusOK, methods)
	}
}

func (s *webService) deliveryChargePage() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		c := mycontext.ContextFromHTTPRequest(r)
		errorWriter := myhttp.NewWriter(s.logger)

		district := strings.TrimSpace(r.URL.Query().Get("district"))
		city := strings.TrimSpace(r.URL.Query().Get("city"))
		if district == "" {
			errorWriter.WriteError(c, w, 8, myerrors.NewInvalidInputErrorf("missing district"))
			return
		}

		charge, err := s.catalog.DeliveryChargeFor(c, district, city)
		if err != nil {
			errorWriter.WriteError(c, w, 9, err)
			return
		}

		errorWriter.Write(c, w, http.StatusOK, deliveryChargeView{
			District: district,
			City:     city,
			Charge:   amount(charge),
		})
	}
}

func (s *webService) contentPage() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		c := mycontext.ContextFromHTTPRequest(r)
		errorWriter := myhttp.NewWriter(s.logger)

		errorWriter.Write(c, w, http.StatusOK, contentView{
			Language: s.translator.CurrentLanguage(c),
			Content:  s.content.GetContent(c),
		})
	}
}

func (s *webService) languagePage() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		c := mycontext.ContextFromHTTPRequest(r)
		errorWriter := myhttp.NewWriter(s.logger)

		errorWriter.Write(c, w, http.StatusOK, s.languageView(c))
	}
}

type languageRequest struct {
	Language string `form:"language"`
}

func (s *webService) setLanguagePage() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		c := mycontext.ContextFromHTTPRequest(r)
		errorWriter := myhttp.NewWriter(s.logger)

		req := languageRequest{}
		err := decodeForm(r, &req)
		if err != nil {
			errorWriter.WriteError(c, w, 10, err)
			return
		}

		err = s.translator.SetLanguage(c, req.Language)
		if err != nil {
			errorWriter.WriteError(c, w, 11, err)
			return
		}

		errorWriter.Write(c, w, http.StatusOK, s.languageView(c))
	}
}

func (s *webService) languageView(c context.Context) languageView {
	lang, dictionary := s.translator.Dictionary(c)
	return languageView{
		Language:  lang,
		Supported: i18n.SupportedLanguages,
		Strings:   dictionary,
	}
}

func (s *webService) cartPage() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		c := mycontext.ContextFromHTTPRequest(r)
		errorWriter := myhttp.NewWriter(s.logger)

		errorWriter.Write(c, w, http.StatusOK, s.cartView(c))
	}
}

type addItemRequest struct {
	ProductID string `form:"productId"`
	Quantity  int    `form:"quantity"`
}

func (s *webService) addItemPage() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		c := mycontext.ContextFromHTTPRequest(r)
		errorWriter := myhttp.NewWriter(s.logger)

		req := addItemRequest{}
		err := decodeForm(r, &req)
		if err != nil {
			errorWriter.WriteError(c, w, 12, err)
			return
		}

		product, err := s.catalog.GetActiveProduct(c, strings.TrimSpace(req.ProductID))
		if err != nil {
			errorWriter.WriteError(c, w, 13, err)
			return
		}

		err = s.cart.AddItem(c, product.ToCartProduct(), req.Quantity)
		if err != nil {
			errorWriter.WriteError(c, w, 14, err)
			return
		}

		errorWriter.Write(c, w, http.StatusOK, s.cartView(c))
	}
}

type quantityRequest struct {
	Quantity int `form:"quantity"`
}

func (s *webService) setQuantityPage() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		c := mycontext.ContextFromHTTPRequest(r)
		errorWriter := myhttp.NewWriter(s.logger)

		req := quantityRequest{}
		err := decodeForm(r, &req)
		if err != nil {
			errorWriter.WriteError(c, w, 15, err)
			return
		}

		err = s.cart.SetQuantity(c, mux.Vars(r)["productID"], req.Quantity)
		if err != nil {
			errorWriter.WriteError(c, w, 16, err)
			return
		}

		errorWriter.Write(c, w, http.StatusOK, s.cartView(c))
	}
}

func (s *webService) removeItemPage() http.HandlerFunc {
	return s.cartItemAction(17, s.cart.RemoveItem)
}

func (s *webService) increasePage() http.HandlerFunc {
	return s.cartItemAction(18, s.cart.Increase)
}

func (s *webService) decreasePage() http.HandlerFunc {
	return s.cartItemAction(19, s.cart.Decrease)
}

func (s *webService) cartItemAction(errorCode int, action func(c context.Context, productID string) error) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		c := mycontext.ContextFromHTTPRequest(r)
		errorWriter := myhttp.NewWriter(s.logger)

		err := action(c, mux.Vars(r)["productID"])
		if err != nil {
			errorWriter.WriteError(c, w, errorCode, err)
			return
		}

		errorWriter.Write(c, w, http.StatusOK, s.cartView(c))
	}
}

func (s *webService) clearCartPage() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		c := mycontext.ContextFromHTTPRequest(r)
		errorWriter := myhttp.NewWriter(s.logger)

		s.cart.Clear(c)

		errorWriter.Write(c, w, http.StatusOK, s.cartView(c))
	}
}

func (s *webService) cartView(c context.Context) cartView {
	return newCartView(s.cart.Items(), s.translator.CurrentLanguage(c), s.cart.PersistError(), s.opts)
}

func (s *webService) notificationsPage() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		c := mycontext.ContextFromHTTPRequest(r)
		errorWriter := myhttp.NewWriter(s.logger)

		errorWriter.Write(c, w, http.StatusOK, s.notifications.Drain())
	}
}

// checkoutPage sends the shopper's browser to the messaging app with the order filled in
func (s *webService) checkoutPage() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		c := mycontext.ContextFromHTTPRequest(r)
		errorWriter := myhttp.NewWriter(s.logger)

		info, err := checkout.NewCustomerInfoFromRequest(r)
		if err != nil {
			errorWriter.WriteError(c, w, 20, err)
			return
		}
		info.PaymentMethodLabel = s.catalog.PaymentMethodLabel(c, info.PaymentMethodLabel)

		delivery, err := s.catalog.DeliveryChargeFor(c, info.District, info.City)
		if err != nil {
			errorWriter.WriteError(c, w, 21, err)
			return
		}

		c, nav := withNavigation(c)
		deepLink, err := s.dispatcher.Checkout(c, s.cart, delivery, info)
		if err != nil {
			errorWriter.WriteError(c, w, 22, err)
			return
		}
		if nav.target != "" {
			deepLink = nav.target
		}

		http.Redirect(w, r, deepLink, http.StatusSeeOther)
	}
}

func (s *webService) warmupPage() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		c := mycontext.ContextFromHTTPRequest(r)
		errorWriter := myhttp.NewWriter(s.logger)

		s.translator.Reload(c)
		s.content.GetContent(c)

		err := s.catalog.SeedPaymentMethods(c)
		if err != nil {
			errorWriter.WriteError(c, w, 23, err)
			return
		}

		errorWriter.Write(c, w, http.StatusOK, myhttp.SuccessResponse{
			Message: "Successfully processed warmup request",
		})
	}
}

func decodeForm(r *http.Request, dest any) error {
	err := r.ParseForm()
	if err != nil {
		return myerrors.NewInvalidInputError(err)
	}
	err = formcodec.NewDecoder().Decode(dest, r.Form)
	if err != nil {
		return myerrors.NewInvalidInputError(fmt.Errorf("error decoding form: %s", err))
	}
	return nil
}
