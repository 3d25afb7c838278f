package storefront

import (
	"crypto/subtle"
	"encoding/json"
	"fmt"
	"io"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/danudara/storefront/lib/mycontext"
	"github.com/danudara/storefront/lib/myerrors"
	"github.com/danudara/storefront/lib/myhttp"
	"github.com/danudara/storefront/services/catalog"
	"github.com/danudara/storefront/services/cms"
)

const maxAdminBodySize = 1 << 20

func (s *webService) registerAdminEndpoints(router *mux.Router) {
	admin := router.PathPrefix("/admin/api").Subrouter()
	admin.Use(s.requireAdmin)

	admin.HandleFunc("/products", s.adminListProductsPage()).Methods("GET")
	admin.HandleFunc("/products", s.adminCreateProductPage()).Methods("POST")
	admin.HandleFunc("/products/{productID}", s.adminUpdateProductPage()).Methods("PUT")
	admin.HandleFunc("/products/{productID}", s.adminDeleteProductPage()).Methods("DELETE")

	admin.HandleFunc("/categories", s.adminListCategoriesPage()).Methods("GET")
	admin.HandleFunc("/categories", s.adminCreateCategoryPage()).Methods("POST")
	admin.HandleFunc("/categories/{categoryID}", s.adminUpdateCategoryPage()).Methods("PUT")
	admin.HandleFunc("/categories/{categoryID}", s.adminDeleteCategoryPage()).Methods("DELETE")

	admin.HandleFunc("/delivery-charges", s.adminListDeliveryChargesPage()).Methods("GET")
	admin.HandleFunc("/delivery-charges", s.adminCreateDeliveryChargePage()).Methods("POST")
	admin.HandleFunc("/delivery-charges/{chargeID}", s.adminUpdateDeliveryChargePage()).Methods("PUT")
	admin.HandleFunc("/delivery-charges/{chargeID}", s.adminDeleteDeliveryChargePage()).Methods("DELETE")

	admin.HandleFunc("/payment-methods", s.adminListPaymentMethodsPage()).Methods("GET")
	admin.HandleFunc("/payment-methods/{methodID}", s.adminUpdatePaymentMethodPage()).Methods("PUT")

	admin.HandleFunc("/content", s.adminUpdateContentPage()).Methods("PUT")
	admin.HandleFunc("/content/{section}", s.adminGetSectionPage()).Methods("GET")
	admin.HandleFunc("/content/{section}", s.adminUpdateSectionPage()).Methods("PUT")
}

func (s *webService) requireAdmin(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		token, found := myhttp.BearerToken(r)
		if !found || subtle.ConstantTimeCompare([]byte(token), []byte(s.opts.AdminToken)) != 1 {
			c := mycontext.ContextFromHTTPRequest(r)
			myhttp.NewWriter(s.logger).WriteError(c, w, 40, myerrors.NewAuthenticationError(fmt.Errorf("missing or invalid admin token")))
			return
		}
		next.ServeHTTP(w, r)
	})
}

func (s *webService) adminListProductsPage() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		c := mycontext.ContextFromHTTPRequest(r)
		errorWriter := myhttp.NewWriter(s.logger)

		products, err := s.catalog.ListAllProducts(c)
		if err != nil {
			errorWriter.WriteError(c, w, 41, err)
			return
		}

		errorWriter.Write(c, w, http.StatusOK, products)
	}
}

func (s *webService) adminCreateProductPage() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		c := mycontext.ContextFromHTTPRequest(r)
		errorWriter := myhttp.NewWriter(s.logger)

		input := catalog.ProductInput{}
		err := decodeJSON(w, r, &input)
		if err != nil {
			errorWriter.WriteError(c, w, 42, err)
			return
		}

		product, err := s.catalog.CreateProduct(c, input)
		if err != nil {
			errorWriter.WriteError(c, w, 43, err)
			return
		}

		errorWriter.Write(c, w, http.StatusCreated, product)
	}
}

func (s *webService) adminUpdateProductPage() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		c := mycontext.ContextFromHTTPRequest(r)
		errorWriter := myhttp.NewWriter(s.logger)

		input := catalog.ProductInput{}
		err := decodeJSON(w, r, &input)
		if err != nil {
			errorWriter.WriteError(c, w, 44, err)
			return
		}

		product, err := s.catalog.UpdateProduct(c, mux.Vars(r)["productID"], input)
		if err != nil {
			errorWriter.WriteError(c, w, 45, err)
			return
		}

		errorWriter.Write(c, w, http.StatusOK, product)
	}
}

func (s *webService) adminDeleteProductPage() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		c := mycontext.ContextFromHTTPRequest(r)
		errorWriter := myhttp.NewWriter(s.logger)

		productID := mux.Vars(r)["productID"]
		err := s.catalog.DeleteProduct(c, productID)
		if err != nil {
			errorWriter.WriteError(c, w, 46, err)
			return
		}

		errorWriter.Write(c, w, http.StatusOK, myhttp.SuccessResponse{
			Message: fmt.Sprintf("Product %s deleted", productID),
		})
	}
}

func (s *webService) adminListCategoriesPage() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		c := mycontext.ContextFromHTTPRequest(r)
		errorWriter := myhttp.NewWriter(s.logger)

		categories, err := s.catalog.ListAllCategories(c)
		if err != nil {
			errorWriter.WriteError(c, w, 47, err)
			return
		}

		errorWriter.Write(c, w, http.StatusOK, categories)
	}
}

func (s *webService) adminCreateCategoryPage() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		c := mycontext.ContextFromHTTPRequest(r)
		errorWriter := myhttp.NewWriter(s.logger)

		input := catalog.CategoryInput{}
		err := decodeJSON(w, r, &input)
		if err != nil {
			errorWriter.WriteError(c, w, 48, err)
			return
		}

		category, err := s.catalog.CreateCategory(c, input)
		if err != nil {
			errorWriter.WriteError(c, w, 49, err)
			return
		}

		errorWriter.Write(c, w, http.StatusCreated, category)
	}
}

func (s *webService) adminUpdateCategoryPage() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		c := mycontext.ContextFromHTTPRequest(r)
		errorWriter := myhttp.NewWriter(s.logger)

		input := catalog.CategoryInput{}
		err := decodeJSON(w, r, &input)
		if err != nil {
			errorWriter.WriteError(c, w, 50, err)
			return
		}

		category, err := s.catalog.UpdateCategory(c, mux.Vars(r)["categoryID"], input)
		if err != nil {
			errorWriter.WriteError(c, w, 51, err)
			return
		}

		errorWriter.Write(c, w, http.StatusOK, category)
	}
}

func (s *webService) adminDeleteCategoryPage() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		c := mycontext.ContextFromHTTPRequest(r)
		errorWriter := myhttp.NewWriter(s.logger)

		categoryID := mux.Vars(r)["categoryID"]
		err := s.catalog.DeleteCategory(c, categoryID)
		if err != nil {
			errorWriter.WriteError(c, w, 52, err)
			return
		}

		errorWriter.Write(c, w, http.StatusOK, myhttp.SuccessResponse{
			Message: fmt.Sprintf("Category %s deleted", categoryID),
		})
	}
}

func (s *webService) adminListDeliveryChargesPage() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		c := mycontext.ContextFromHTTPRequest(r)
		errorWriter := myhttp.NewWriter(s.logger)

		charges, err := s.catalog.ListDeliveryCharges(c)
		if err != nil {
			errorWriter.WriteError(c, w, 53, err)
			return
		}

		errorWriter.Write(c, w, http.StatusOK, charges)
	}
}

func (s *webService) adminCreateDeliveryChargePage() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		c := mycontext.ContextFromHTTPRequest(r)
		errorWriter := myhttp.NewWriter(s.logger)

		input := catalog.DeliveryChargeInput{}
		err := decodeJSON(w, r, &input)
		if err != nil {
			errorWriter.WriteError(c, w, 54, err)
			return
		}

		charge, err := s.catalog.CreateDeliveryCharge(c, input)
		if err != nil {
			errorWriter.WriteError(c, w, 55, err)
			return
		}

		errorWriter.Write(c, w, http.StatusCreated, charge)
	}
}

func (s *webService) adminUpdateDeliveryChargePage() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		c := mycontext.ContextFromHTTPRequest(r)
		errorWriter := myhttp.NewWriter(s.logger)

		input := catalog.DeliveryChargeInput{}
		err := decodeJSON(w, r, &input)
		if err != nil {
			errorWriter.WriteError(c, w, 56, err)
			return
		}

		charge, err := s.catalog.UpdateDeliveryCharge(c, mux.Vars(r)["chargeID"], input)
		if err != nil {
			errorWriter.WriteError(c, w, 57, err)
			return
		}

		errorWriter.Write(c, w, http.StatusOK, charge)
	}
}

func (s *webService) adminDeleteDeliveryChargePage() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		c := mycontext.ContextFromHTTPRequest(r)
		errorWriter := myhttp.NewWriter(s.logger)

		chargeID := mux.Vars(r)["chargeID"]
		err := s.catalog.DeleteDeliveryCharge(c, chargeID)
		if err != nil {
			errorWriter.WriteError(c, w, 58, err)
			return
		}

		errorWriter.Write(c, w, http.StatusOK, myhttp.SuccessResponse{
			Message: fmt.Sprintf("Delivery charge %s deleted", chargeID),
		})
	}
}

func (s *webService) adminListPaymentMethodsPage() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		c := mycontext.ContextFromHTTPRequest(r)
		errorWriter := myhttp.NewWriter(s.logger)

		methods, err := s.catalog.ListPaymentMethods(c, false)
		if err != nil {
			errorWriter.WriteError(c, w, 59, err)
			return
		}

		errorWriter.Write(c, w, http.StatusOK, methods)
	}
}

func (s *webService) adminUpdatePaymentMethodPage() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		c := mycontext.ContextFromHTTPRequest(r)
		errorWriter := myhttp.NewWriter(s.logger)

		update := catalog.PaymentMethodUpdate{}
		err := decodeJSON(w, r, &update)
		if err != nil {
			errorWriter.WriteError(c, w, 60, err)
			return
		}

		method, err := s.catalog.UpdatePaymentMethod(c, mux.Vars(r)["methodID"], update)
		if err != nil {
			errorWriter.WriteError(c, w, 61, err)
			return
		}

		errorWriter.Write(c, w, http.StatusOK, method)
	}
}

func (s *webService) adminUpdateContentPage() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		c := mycontext.ContextFromHTTPRequest(r)
		errorWriter := myhttp.NewWriter(s.logger)

		content := cms.Content{}
		err := decodeJSON(w, r, &content)
		if err != nil {
			errorWriter.WriteError(c, w, 62, err)
			return
		}

		stored, err := s.content.UpdateContent(c, content)
		if err != nil {
			errorWriter.WriteError(c, w, 63, err)
			return
		}
		s.translator.Reload(c)

		errorWriter.Write(c, w, http.StatusOK, stored)
	}
}

func (s *webService) adminGetSectionPage() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		c := mycontext.ContextFromHTTPRequest(r)
		errorWriter := myhttp.NewWriter(s.logger)

		name := mux.Vars(r)["section"]
		section, found, err := s.content.GetSection(c, name)
		if err != nil {
			errorWriter.WriteError(c, w, 64, err)
			return
		}
		if !found {
			errorWriter.WriteError(c, w, 65, myerrors.NewNotFoundError(fmt.Errorf("content has no section %s", name)))
			return
		}

		errorWriter.Write(c, w, http.StatusOK, section)
	}
}

func (s *webService) adminUpdateSectionPage() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		c := mycontext.ContextFromHTTPRequest(r)
		errorWriter := myhttp.NewWriter(s.logger)

		data, err := io.ReadAll(http.MaxBytesReader(w, r.Body, maxAdminBodySize))
		if err != nil {
			errorWriter.WriteError(c, w, 66, myerrors.NewInvalidInputError(err))
			return
		}

		name := mux.Vars(r)["section"]
		stored, err := s.content.UpdateSection(c, name, data)
		if err != nil {
			errorWriter.WriteError(c, w, 67, err)
			return
		}
		if name == cms.SectionLanguages {
			s.translator.Reload(c)
		}

		errorWriter.Write(c, w, http.StatusOK, stored)
	}
}

func decodeJSON(w http.ResponseWriter, r *http.Request, dest any) error {
	decoder := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxAdminBodySize))
	err := decoder.Decode(dest)
	if err != nil {
		return myerrors.NewInvalidInputError(fmt.Errorf("error parsing request body: %s", err))
	}
	return nil
}
