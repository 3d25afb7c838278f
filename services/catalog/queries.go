package catalog

import (
	"context"
	"fmt"
	"sort"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/danudara/storefront/lib/myerrors"
	"github.com/danudara/storefront/lib/mylog"
	"github.com/danudara/storefront/lib/mystore"
)

var activeOnly = mystore.Filter{Field: "IsActive", Compare: "=", Value: true}

// ListProducts returns the active products, newest first.
func (s *Service) ListProducts(c context.Context) ([]Product, error) {
	products, err := s.productStore.Query(c, []mystore.Filter{activeOnly}, "-CreatedAt")
	if err != nil {
		return nil, myerrors.NewInternalError(err)
	}
	return products, nil
}

// ListAllProducts includes inactive products, for the admin.
func (s *Service) ListAllProducts(c context.Context) ([]Product, error) {
	products, err := s.productStore.Query(c, nil, "-CreatedAt")
	if err != nil {
		return nil, myerrors.NewInternalError(err)
	}
	return products, nil
}

func (s *Service) GetProduct(c context.Context, productID string) (Product, error) {
	product, found, err := s.productStore.Get(c, productID)
	if err != nil {
		return Product{}, myerrors.NewInternalError(err)
	}
	if !found {
		return Product{}, myerrors.NewNotFoundError(fmt.Errorf("product with uid %s not found", productID))
	}
	return product, nil
}

// GetActiveProduct is what shoppers may put in their cart.
func (s *Service) GetActiveProduct(c context.Context, productID string) (Product, error) {
	product, err := s.GetProduct(c, productID)
	if err != nil {
		return Product{}, err
	}
	if !product.IsActive {
		return Product{}, myerrors.NewNotFoundError(fmt.Errorf("product with uid %s is not available", productID))
	}
	return product, nil
}

func (s *Service) ProductsByCategory(c context.Context, categoryID string) ([]Product, error) {
	products, err := s.productStore.Query(c, []mystore.Filter{
		{Field: "CategoryID", Compare: "=", Value: categoryID},
		activeOnly,
	}, "-CreatedAt")
	if err != nil {
		return nil, myerrors.NewInternalError(err)
	}
	return products, nil
}

func (s *Service) FeaturedProducts(c context.Context) ([]Product, error) {
	products, err := s.productStore.Query(c, []mystore.Filter{
		{Field: "IsFeatured", Compare: "=", Value: true},
		activeOnly,
	}, "-CreatedAt")
	if err != nil {
		return nil, myerrors.NewInternalError(err)
	}
	return limited(products, featuredLimit), nil
}

// NewArrivals returns the newest active products; a limit below 1 means the default of 8.
func (s *Service) NewArrivals(c context.Context, limit int) ([]Product, error) {
	if limit < 1 {
		limit = newArrivalsLimit
	}
	products, err := s.ListProducts(c)
	if err != nil {
		return nil, err
	}
	return limited(products, limit), nil
}

// SearchProducts matches names and description case-insensitively, ordered by name.
func (s *Service) SearchProducts(c context.Context, query string) ([]Product, error) {
	query = strings.TrimSpace(query)
	products, err := s.ListProducts(c)
	if err != nil {
		return nil, err
	}
	if query == "" {
		return products, nil
	}

	found := []Product{}
	for _, p := range products {
		if p.matches(query) {
			found = append(found, p)
		}
	}
	sort.SliceStable(found, func(i, j int) bool {
		return strings.ToLower(found[i].Name) < strings.ToLower(found[j].Name)
	})
	s.logger.Log(c, "", mylog.SeverityDebug, "Search %q matched %d products", query, len(found))
	return found, nil
}

// ListCategories returns the active categories in display order.
func (s *Service) ListCategories(c context.Context) ([]Category, error) {
	categories, err := s.categoryStore.Query(c, []mystore.Filter{activeOnly}, "SortOrder")
	if err != nil {
		return nil, myerrors.NewInternalError(err)
	}
	return categories, nil
}

func (s *Service) ListAllCategories(c context.Context) ([]Category, error) {
	categories, err := s.categoryStore.Query(c, nil, "SortOrder")
	if err != nil {
		return nil, myerrors.NewInternalError(err)
	}
	return categories, nil
}

// ListDeliveryCharges orders by district, the district default before its cities.
func (s *Service) ListDeliveryCharges(c context.Context) ([]DeliveryCharge, error) {
	charges, err := s.deliveryChargeStore.List(c)
	if err != nil {
		return nil, myerrors.NewInternalError(err)
	}
	sortCharges(charges)
	return charges, nil
}

func (s *Service) DeliveryChargesByDistrict(c context.Context, district string) ([]DeliveryCharge, error) {
	charges, err := s.deliveryChargeStore.Query(c, []mystore.Filter{
		{Field: "District", Compare: "=", Value: district},
	}, "")
	if err != nil {
		return nil, myerrors.NewInternalError(err)
	}
	sortCharges(charges)
	return charges, nil
}

// DeliveryChargeFor returns the city specific charge, else the district default, else zero.
func (s *Service) DeliveryChargeFor(c context.Context, district string, city string) (decimal.Decimal, error) {
	district = strings.TrimSpace(district)
	city = strings.TrimSpace(city)
	if district == "" {
		return decimal.Zero, nil
	}

	charges, err := s.DeliveryChargesByDistrict(c, district)
	if err != nil {
		return decimal.Zero, err
	}

	var districtDefault *DeliveryCharge
	for i, charge := range charges {
		if city != "" && strings.EqualFold(charge.City, city) {
			return charge.Charge(), nil
		}
		if charge.City == "" && districtDefault == nil {
			districtDefault = &charges[i]
		}
	}
	if districtDefault != nil {
		return districtDefault.Charge(), nil
	}

	s.logger.Log(c, "", mylog.SeverityInfo, "No delivery charge for %s/%s, charging nothing", district, city)
	return decimal.Zero, nil
}

// ListPaymentMethods returns the payment methods in display order.
func (s *Service) ListPaymentMethods(c context.Context, onlyActive bool) ([]PaymentMethod, error) {
	filters := []mystore.Filter{}
	if onlyActive {
		filters = append(filters, activeOnly)
	}
	methods, err := s.paymentMethodStore.Query(c, filters, "SortOrder")
	if err != nil {
		return nil, myerrors.NewInternalError(err)
	}
	return methods, nil
}

// PaymentMethodLabel resolves a payment method id to its name; unknown values are used as given.
func (s *Service) PaymentMethodLabel(c context.Context, idOrLabel string) string {
	idOrLabel = strings.TrimSpace(idOrLabel)
	if idOrLabel == "" {
		return ""
	}
	method, found, err := s.paymentMethodStore.Get(c, idOrLabel)
	if err != nil || !found {
		return idOrLabel
	}
	return method.Name
}

func limited(products []Product, limit int) []Product {
	if len(products) > limit {
		return products[:limit]
	}
	return products
}

func sortCharges(charges []DeliveryCharge) {
	sort.SliceStable(charges, func(i, j int) bool {
		if charges[i].District != charges[j].District {
			return charges[i].District < charges[j].District
		}
		return charges[i].City < charges[j].City
	})
}
