package catalog

import (
	"context"
	"encoding/json"
	"net/http"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/danudara/storefront/lib/myerrors"
	"github.com/danudara/storefront/lib/mylog"
	"github.com/danudara/storefront/lib/mypublisher"
	"github.com/danudara/storefront/lib/mystore"
	"github.com/danudara/storefront/lib/mytime"
	"github.com/danudara/storefront/lib/myuuid"
	"github.com/danudara/storefront/services/catalog/catalogevents"
)

func dec(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func TestCatalogCommands(t *testing.T) {

	t.Run("Create product", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		// setup
		c, sut, stores, nower, uuider, publisher := setup(t, ctrl)

		// given
		uuider.EXPECT().Create().Return("p1")
		nower.EXPECT().Now().Return(mytime.ExampleTime)
		publisher.EXPECT().Publish(gomock.Any(), catalogevents.TopicName, catalogevents.ProductCreated{
			ProductID:  "p1",
			Name:       "Batik Saree",
			PriceCents: 450050,
			CategoryID: "sarees",
		}).Return(nil)

		// when
		product, err := sut.CreateProduct(c, ProductInput{
			Name:       "  Batik Saree ",
			Price:      dec("4500.50"),
			CategoryID: "sarees",
			IsActive:   true,
		})

		// then
		require.NoError(t, err)
		assert.Equal(t, "p1", product.ID)
		assert.Equal(t, "Batik Saree", product.Name)
		assert.True(t, product.Price().Equal(dec("4500.50")))
		assert.Nil(t, product.OriginalPrice())

		stored, found, _ := stores.Products.Get(c, "p1")
		assert.True(t, found)
		assert.Equal(t, mytime.ExampleTime, stored.CreatedAt)
	})

	t.Run("Create product with negative price", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		// setup
		c, sut, stores, _, _, _ := setup(t, ctrl)

		// when
		_, err := sut.CreateProduct(c, ProductInput{Name: "Sarong", Price: dec("-1")})

		// then
		assert.Error(t, err)
		assert.Equal(t, http.StatusBadRequest, myerrors.GetHTTPStatus(err))
		all, _ := stores.Products.List(c)
		assert.Empty(t, all)
	})

	t.Run("Create product without name", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		// setup
		c, sut, _, _, _, _ := setup(t, ctrl)

		// when
		_, err := sut.CreateProduct(c, ProductInput{Name: "   ", Price: dec("10")})

		// then
		assert.Equal(t, http.StatusBadRequest, myerrors.GetHTTPStatus(err))
	})

	t.Run("Update product", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		// setup
		c, sut, stores, nower, _, publisher := setup(t, ctrl)

		// given
		stores.Products.Put(c, "p1", Product{ID: "p1", Name: "Sarong", PriceCents: 100000, IsActive: true, CreatedAt: mytime.ExampleTime})
		later := mytime.ExampleTime.Add(time.Hour)
		nower.EXPECT().Now().Return(later)
		publisher.EXPECT().Publish(gomock.Any(), catalogevents.TopicName, catalogevents.ProductUpdated{
			ProductID:  "p1",
			Name:       "Sarong",
			PriceCents: 80000,
			IsActive:   true,
			Version:    later.UnixNano(),
		}).Return(nil)
		original := dec("1000")

		// when
		product, err := sut.UpdateProduct(c, "p1", ProductInput{Name: "Sarong", Price: dec("800"), OriginalPrice: &original, IsActive: true})

		// then
		require.NoError(t, err)
		assert.True(t, product.OriginalPrice().Equal(original))
		assert.Equal(t, mytime.ExampleTime, product.CreatedAt)
		assert.Equal(t, later, *product.LastModified)
	})

	t.Run("Update unknown product", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		// setup
		c, sut, _, nower, _, _ := setup(t, ctrl)

		// given
		nower.EXPECT().Now().Return(mytime.ExampleTime)

		// when
		_, err := sut.UpdateProduct(c, "unknown", ProductInput{Name: "Sarong", Price: dec("800")})

		// then
		assert.Equal(t, http.StatusNotFound, myerrors.GetHTTPStatus(err))
	})

	t.Run("Delete product", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		// setup
		c, sut, stores, _, _, publisher := setup(t, ctrl)

		// given
		stores.Products.Put(c, "p1", Product{ID: "p1", Name: "Sarong"})
		publisher.EXPECT().Publish(gomock.Any(), catalogevents.TopicName, catalogevents.ProductDeleted{ProductID: "p1"}).Return(nil)

		// when
		err := sut.DeleteProduct(c, "p1")

		// then
		require.NoError(t, err)
		_, found, _ := stores.Products.Get(c, "p1")
		assert.False(t, found)
	})

	t.Run("Category lifecycle", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		// setup
		c, sut, _, nower, uuider, publisher := setup(t, ctrl)

		// given
		uuider.EXPECT().Create().Return("c1")
		nower.EXPECT().Now().Return(mytime.ExampleTime).AnyTimes()
		publisher.EXPECT().Publish(gomock.Any(), catalogevents.TopicName, gomock.Any()).Return(nil).Times(3)

		// when
		created, err := sut.CreateCategory(c, CategoryInput{Name: "Sarees", SortOrder: 2, IsActive: true})
		require.NoError(t, err)
		updated, err := sut.UpdateCategory(c, created.ID, CategoryInput{Name: "Sarees & Sarongs", SortOrder: 1, IsActive: true})
		require.NoError(t, err)
		listed, err := sut.ListCategories(c)
		require.NoError(t, err)
		err = sut.DeleteCategory(c, created.ID)

		// then
		require.NoError(t, err)
		assert.Equal(t, "Sarees & Sarongs", updated.Name)
		assert.Equal(t, []Category{updated}, listed)
		all, _ := sut.ListAllCategories(c)
		assert.Empty(t, all)
	})

	t.Run("Publish failure is reported", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		// setup
		c, sut, _, nower, _, publisher := setup(t, ctrl)

		// given
		nower.EXPECT().Now().Return(mytime.ExampleTime)
		publisher.EXPECT().Publish(gomock.Any(), catalogevents.TopicName, gomock.Any()).Return(assert.AnError)

		// when
		err := sut.storeCategory(c, Category{ID: "c1", Name: "Sarees"}, catalogevents.CategoryCreated)

		// then
		assert.Equal(t, http.StatusInternalServerError, myerrors.GetHTTPStatus(err))
	})
}

func TestCatalogQueries(t *testing.T) {
	products := []Product{
		{ID: "p1", Name: "Batik Saree", NameSI: "බතික් සාරිය", PriceCents: 450000, CategoryID: "sarees", IsActive: true, IsFeatured: true, CreatedAt: mytime.ExampleTime},
		{ID: "p2", Name: "Cotton Sarong", PriceCents: 150000, CategoryID: "sarongs", IsActive: true, CreatedAt: mytime.ExampleTime.Add(time.Hour)},
		{ID: "p3", Name: "Old Saree", PriceCents: 100000, CategoryID: "sarees", IsActive: false, CreatedAt: mytime.ExampleTime.Add(2 * time.Hour)},
		{ID: "p4", Name: "Anniversary saree", Description: "silk", PriceCents: 900000, CategoryID: "sarees", IsActive: true, CreatedAt: mytime.ExampleTime.Add(3 * time.Hour)},
	}

	given := func(c context.Context, stores Stores) {
		for _, p := range products {
			stores.Products.Put(c, p.ID, p)
		}
	}

	ids := func(products []Product) []string {
		result := []string{}
		for _, p := range products {
			result = append(result, p.ID)
		}
		return result
	}

	t.Run("Active products newest first", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		// setup
		c, sut, stores, _, _, _ := setup(t, ctrl)
		given(c, stores)

		// when
		got, err := sut.ListProducts(c)

		// then
		require.NoError(t, err)
		assert.Equal(t, []string{"p4", "p2", "p1"}, ids(got))
	})

	t.Run("Products by category and featured", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		// setup
		c, sut, stores, _, _, _ := setup(t, ctrl)
		given(c, stores)

		// when
		byCategory, err := sut.ProductsByCategory(c, "sarees")
		require.NoError(t, err)
		featured, err := sut.FeaturedProducts(c)
		require.NoError(t, err)
		arrivals, err := sut.NewArrivals(c, 2)
		require.NoError(t, err)

		// then
		assert.Equal(t, []string{"p4", "p1"}, ids(byCategory))
		assert.Equal(t, []string{"p1"}, ids(featured))
		assert.Equal(t, []string{"p4", "p2"}, ids(arrivals))
	})

	t.Run("Search", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		// setup
		c, sut, stores, _, _, _ := setup(t, ctrl)
		given(c, stores)

		// when
		bySaree, err := sut.SearchProducts(c, "SAREE")
		require.NoError(t, err)
		bySinhala, err := sut.SearchProducts(c, "බතික්")
		require.NoError(t, err)
		byDescription, err := sut.SearchProducts(c, "silk")
		require.NoError(t, err)

		// then
		assert.Equal(t, []string{"p4", "p1"}, ids(bySaree))
		assert.Equal(t, []string{"p1"}, ids(bySinhala))
		assert.Equal(t, []string{"p4"}, ids(byDescription))
	})

	t.Run("Inactive product cannot be bought", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		// setup
		c, sut, stores, _, _, _ := setup(t, ctrl)
		given(c, stores)

		// when
		_, err := sut.GetActiveProduct(c, "p3")

		// then
		assert.Equal(t, http.StatusNotFound, myerrors.GetHTTPStatus(err))
	})

	t.Run("Product json", func(t *testing.T) {
		// when
		original := dec("5000")
		p := Product{ID: "p1", Name: "Saree", PriceCents: 450050, CreatedAt: mytime.ExampleTime}
		p.OriginalPriceCents = toCents(original)
		data, err := json.Marshal(p)

		// then
		require.NoError(t, err)
		assert.Contains(t, string(data), `"price":4500.5`)
		assert.Contains(t, string(data), `"original_price":5000`)
		assert.Contains(t, string(data), `"is_active":false`)
	})

	t.Run("Cart product", func(t *testing.T) {
		// when
		got := products[0].ToCartProduct()

		// then
		assert.Equal(t, "p1", got.ID)
		assert.Equal(t, map[string]string{"si": "බතික් සාරිය"}, got.Names)
		assert.True(t, got.Price.Equal(dec("4500")))
	})
}

func TestDeliveryCharges(t *testing.T) {

	t.Run("Most specific charge wins", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		// setup
		c, sut, _, _, uuider, _ := setup(t, ctrl)

		// given
		uuider.EXPECT().Create().Return("d1")
		uuider.EXPECT().Create().Return("d2")
		_, err := sut.CreateDeliveryCharge(c, DeliveryChargeInput{District: "Colombo", Charge: dec("350")})
		require.NoError(t, err)
		_, err = sut.CreateDeliveryCharge(c, DeliveryChargeInput{District: "Colombo", City: "Dehiwala", Charge: dec("250")})
		require.NoError(t, err)

		// when
		city, err := sut.DeliveryChargeFor(c, "Colombo", "dehiwala")
		require.NoError(t, err)
		district, err := sut.DeliveryChargeFor(c, "Colombo", "Moratuwa")
		require.NoError(t, err)
		unknown, err := sut.DeliveryChargeFor(c, "Jaffna", "")
		require.NoError(t, err)

		// then
		assert.True(t, city.Equal(dec("250")))
		assert.True(t, district.Equal(dec("350")))
		assert.True(t, unknown.IsZero())
	})

	t.Run("Update and delete", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		// setup
		c, sut, stores, _, _, _ := setup(t, ctrl)

		// given
		stores.DeliveryCharges.Put(c, "d1", DeliveryCharge{ID: "d1", District: "Galle", ChargeCents: 40000})

		// when
		updated, err := sut.UpdateDeliveryCharge(c, "d1", DeliveryChargeInput{District: "Galle", Charge: dec("450")})
		require.NoError(t, err)
		err = sut.DeleteDeliveryCharge(c, "d1")
		require.NoError(t, err)
		err2 := sut.DeleteDeliveryCharge(c, "d1")

		// then
		assert.True(t, updated.Charge().Equal(dec("450")))
		assert.Equal(t, http.StatusNotFound, myerrors.GetHTTPStatus(err2))
	})

	t.Run("District default renders city as null", func(t *testing.T) {
		// when
		data, err := json.Marshal(DeliveryCharge{ID: "d1", District: "Galle", ChargeCents: 40000})

		// then
		require.NoError(t, err)
		assert.JSONEq(t, `{"id":"d1","district":"Galle","city":null,"charge":400}`, string(data))
	})
}

func TestPaymentMethods(t *testing.T) {

	t.Run("Seed only once and list active", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		// setup
		c, sut, _, _, _, _ := setup(t, ctrl)

		// when
		require.NoError(t, sut.SeedPaymentMethods(c))
		require.NoError(t, sut.SeedPaymentMethods(c))
		active, err := sut.ListPaymentMethods(c, true)
		require.NoError(t, err)
		all, err := sut.ListPaymentMethods(c, false)
		require.NoError(t, err)

		// then
		assert.Len(t, all, 3)
		assert.Len(t, active, 2)
		assert.Equal(t, "bank_transfer", active[0].ID)
		assert.Equal(t, "koko_pay", active[1].ID)
	})

	t.Run("Activate and describe", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		// setup
		c, sut, _, _, _, _ := setup(t, ctrl)
		require.NoError(t, sut.SeedPaymentMethods(c))
		active := true
		details := "Account 1234, Bank of Ceylon"

		// when
		method, err := sut.UpdatePaymentMethod(c, "card_payment", PaymentMethodUpdate{IsActive: &active, Details: &details})

		// then
		require.NoError(t, err)
		assert.True(t, method.IsActive)
		assert.Equal(t, details, method.Details)
		assert.Equal(t, "Card Payment", sut.PaymentMethodLabel(c, "card_payment"))
		assert.Equal(t, "Cash on delivery", sut.PaymentMethodLabel(c, "Cash on delivery"))
	})

	t.Run("Update unknown method", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		// setup
		c, sut, _, _, _, _ := setup(t, ctrl)

		// when
		_, err := sut.UpdatePaymentMethod(c, "cash", PaymentMethodUpdate{})

		// then
		assert.Equal(t, http.StatusNotFound, myerrors.GetHTTPStatus(err))
	})
}

func setup(t *testing.T, ctrl *gomock.Controller) (context.Context, *Service, Stores, *mytime.MockNower, *myuuid.MockUUIDer, *mypublisher.MockPublisher) {
	c := context.TODO()
	products, _, _ := mystore.NewInMemoryStore[Product](c)
	categories, _, _ := mystore.NewInMemoryStore[Category](c)
	charges, _, _ := mystore.NewInMemoryStore[DeliveryCharge](c)
	methods, _, _ := mystore.NewInMemoryStore[PaymentMethod](c)
	stores := Stores{
		Products:        products,
		Categories:      categories,
		DeliveryCharges: charges,
		PaymentMethods:  methods,
	}
	nower := mytime.NewMockNower(ctrl)
	uuider := myuuid.NewMockUUIDer(ctrl)
	publisher := mypublisher.NewMockPublisher(ctrl)
	logger := mylog.New("catalog")

	sut := New(stores, nower, uuider, logger, publisher)
	assert.NotNil(t, sut)

	return c, sut, stores, nower, uuider, publisher
}
