package catalog

import (
	"context"
	"fmt"

	"github.com/danudara/storefront/lib/myerrors"
	"github.com/danudara/storefront/lib/mylog"
	"github.com/danudara/storefront/lib/myvalidation"
	"github.com/danudara/storefront/services/catalog/catalogevents"
)

func (s *Service) CreateProduct(c context.Context, input ProductInput) (Product, error) {
	err := myvalidation.Struct(input)
	if err != nil {
		return Product{}, err
	}

	product := Product{
		ID:        s.uuider.Create(),
		CreatedAt: s.nower.Now(),
	}
	input.applyTo(&product)

	s.logger.Log(c, product.ID, mylog.SeverityInfo, "Creating product %s (%s)", product.ID, product.Name)

	err = s.productStore.RunInTransaction(c, func(c context.Context) error {
		err := s.productStore.Put(c, product.ID, product)
		if err != nil {
			return myerrors.NewInternalError(err)
		}

		err = s.publisher.Publish(c, catalogevents.TopicName, catalogevents.ProductCreated{
			ProductID:  product.ID,
			Name:       product.Name,
			PriceCents: product.PriceCents,
			CategoryID: product.CategoryID,
		})
		if err != nil {
			return myerrors.NewInternalError(err)
		}
		return nil
	})
	if err != nil {
		return Product{}, err
	}

	return product, nil
}

func (s *Service) UpdateProduct(c context.Context, productID string, input ProductInput) (Product, error) {
	err := myvalidation.Struct(input)
	if err != nil {
		return Product{}, err
	}

	now := s.nower.Now()
	s.logger.Log(c, productID, mylog.SeverityInfo, "Updating product %s", productID)

	var product Product
	err = s.productStore.RunInTransaction(c, func(c context.Context) error {
		var found bool
		var err error
		product, found, err = s.productStore.Get(c, productID)
		if err != nil {
			return myerrors.NewInternalError(err)
		}
		if !found {
			return myerrors.NewNotFoundError(fmt.Errorf("product with uid %s not found", productID))
		}

		input.applyTo(&product)
		product.LastModified = &now

		err = s.productStore.Put(c, productID, product)
		if err != nil {
			return myerrors.NewInternalError(err)
		}

		err = s.publisher.Publish(c, catalogevents.TopicName, catalogevents.ProductUpdated{
			ProductID:  product.ID,
			Name:       product.Name,
			PriceCents: product.PriceCents,
			IsActive:   product.IsActive,
			Version:    now.UnixNano(),
		})
		if err != nil {
			return myerrors.NewInternalError(err)
		}
		return nil
	})
	if err != nil {
		return Product{}, err
	}

	return product, nil
}

func (s *Service) DeleteProduct(c context.Context, productID string) error {
	s.logger.Log(c, productID, mylog.SeverityInfo, "Deleting product %s", productID)

	return s.productStore.RunInTransaction(c, func(c context.Context) error {
		_, found, err := s.productStore.Get(c, productID)
		if err != nil {
			return myerrors.NewInternalError(err)
		}
		if !found {
			return myerrors.NewNotFoundError(fmt.Errorf("product with uid %s not found", productID))
		}

		err = s.productStore.Delete(c, productID)
		if err != nil {
			return myerrors.NewInternalError(err)
		}

		err = s.publisher.Publish(c, catalogevents.TopicName, catalogevents.ProductDeleted{
			ProductID: productID,
		})
		if err != nil {
			return myerrors.NewInternalError(err)
		}
		return nil
	})
}

func (s *Service) CreateCategory(c context.Context, input CategoryInput) (Category, error) {
	err := myvalidation.Struct(input)
	if err != nil {
		return Category{}, err
	}

	category := Category{
		ID:        s.uuider.Create(),
		CreatedAt: s.nower.Now(),
	}
	input.applyTo(&category)

	err = s.storeCategory(c, category, catalogevents.CategoryCreated)
	if err != nil {
		return Category{}, err
	}
	return category, nil
}

func (s *Service) UpdateCategory(c context.Context, categoryID string, input CategoryInput) (Category, error) {
	err := myvalidation.Struct(input)
	if err != nil {
		return Category{}, err
	}

	category, found, err := s.categoryStore.Get(c, categoryID)
	if err != nil {
		return Category{}, myerrors.NewInternalError(err)
	}
	if !found {
		return Category{}, myerrors.NewNotFoundError(fmt.Errorf("category with uid %s not found", categoryID))
	}
	input.applyTo(&category)

	err = s.storeCategory(c, category, catalogevents.CategoryUpdated)
	if err != nil {
		return Category{}, err
	}
	return category, nil
}

func (s *Service) storeCategory(c context.Context, category Category, change string) error {
	s.logger.Log(c, category.ID, mylog.SeverityInfo, "Category %s %s", category.ID, change)

	return s.categoryStore.RunInTransaction(c, func(c context.Context) error {
		err := s.categoryStore.Put(c, category.ID, category)
		if err != nil {
			return myerrors.NewInternalError(err)
		}
		return s.publishCategoryChange(c, category.ID, change)
	})
}

func (s *Service) DeleteCategory(c context.Context, categoryID string) error {
	s.logger.Log(c, categoryID, mylog.SeverityInfo, "Deleting category %s", categoryID)

	return s.categoryStore.RunInTransaction(c, func(c context.Context) error {
		_, found, err := s.categoryStore.Get(c, categoryID)
		if err != nil {
			return myerrors.NewInternalError(err)
		}
		if !found {
			return myerrors.NewNotFoundError(fmt.Errorf("category with uid %s not found", categoryID))
		}
		err = s.categoryStore.Delete(c, categoryID)
		if err != nil {
			return myerrors.NewInternalError(err)
		}
		return s.publishCategoryChange(c, categoryID, catalogevents.CategoryDeleted)
	})
}

func (s *Service) publishCategoryChange(c context.Context, categoryID string, change string) error {
	err := s.publisher.Publish(c, catalogevents.TopicName, catalogevents.CategoryChanged{
		CategoryID: categoryID,
		Change:     change,
		Version:    s.nower.Now().UnixNano(),
	})
	if err != nil {
		return myerrors.NewInternalError(err)
	}
	return nil
}

func (s *Service) CreateDeliveryCharge(c context.Context, input DeliveryChargeInput) (DeliveryCharge, error) {
	err := myvalidation.Struct(input)
	if err != nil {
		return DeliveryCharge{}, err
	}

	charge := DeliveryCharge{
		ID: s.uuider.Create(),
	}
	input.applyTo(&charge)

	s.logger.Log(c, charge.ID, mylog.SeverityInfo, "Delivery charge for %s/%s set to %s", charge.District, charge.City, charge.Charge())

	err = s.deliveryChargeStore.Put(c, charge.ID, charge)
	if err != nil {
		return DeliveryCharge{}, myerrors.NewInternalError(err)
	}
	return charge, nil
}

func (s *Service) UpdateDeliveryCharge(c context.Context, chargeID string, input DeliveryChargeInput) (DeliveryCharge, error) {
	err := myvalidation.Struct(input)
	if err != nil {
		return DeliveryCharge{}, err
	}

	var charge DeliveryCharge
	err = s.deliveryChargeStore.RunInTransaction(c, func(c context.Context) error {
		var found bool
		var err error
		charge, found, err = s.deliveryChargeStore.Get(c, chargeID)
		if err != nil {
			return myerrors.NewInternalError(err)
		}
		if !found {
			return myerrors.NewNotFoundError(fmt.Errorf("delivery charge with uid %s not found", chargeID))
		}
		input.applyTo(&charge)

		err = s.deliveryChargeStore.Put(c, chargeID, charge)
		if err != nil {
			return myerrors.NewInternalError(err)
		}
		return nil
	})
	if err != nil {
		return DeliveryCharge{}, err
	}
	return charge, nil
}

func (s *Service) DeleteDeliveryCharge(c context.Context, chargeID string) error {
	_, found, err := s.deliveryChargeStore.Get(c, chargeID)
	if err != nil {
		return myerrors.NewInternalError(err)
	}
	if !found {
		return myerrors.NewNotFoundError(fmt.Errorf("delivery charge with uid %s not found", chargeID))
	}
	err = s.deliveryChargeStore.Delete(c, chargeID)
	if err != nil {
		return myerrors.NewInternalError(err)
	}
	return nil
}

func (s *Service) UpdatePaymentMethod(c context.Context, methodID string, update PaymentMethodUpdate) (PaymentMethod, error) {
	err := myvalidation.Struct(update)
	if err != nil {
		return PaymentMethod{}, err
	}

	var method PaymentMethod
	err = s.paymentMethodStore.RunInTransaction(c, func(c context.Context) error {
		var found bool
		var err error
		method, found, err = s.paymentMethodStore.Get(c, methodID)
		if err != nil {
			return myerrors.NewInternalError(err)
		}
		if !found {
			return myerrors.NewNotFoundError(fmt.Errorf("payment method with uid %s not found", methodID))
		}

		if update.IsActive != nil {
			method.IsActive = *update.IsActive
		}
		if update.Description != nil {
			method.Description = *update.Description
		}
		if update.Details != nil {
			method.Details = *update.Details
		}

		err = s.paymentMethodStore.Put(c, methodID, method)
		if err != nil {
			return myerrors.NewInternalError(err)
		}
		return nil
	})
	if err != nil {
		return PaymentMethod{}, err
	}

	s.logger.Log(c, methodID, mylog.SeverityInfo, "Payment method %s updated (active:%v)", methodID, method.IsActive)
	return method, nil
}

// SeedPaymentMethods stores the built-in payment methods when none exist yet.
func (s *Service) SeedPaymentMethods(c context.Context) error {
	existing, err := s.paymentMethodStore.List(c)
	if err != nil {
		return myerrors.NewInternalError(err)
	}
	if len(existing) > 0 {
		return nil
	}

	for _, method := range defaultPaymentMethods() {
		err := s.paymentMethodStore.Put(c, method.ID, method)
		if err != nil {
			return myerrors.NewInternalError(err)
		}
	}
	s.logger.Log(c, "", mylog.SeverityInfo, "Seeded %d payment methods", len(defaultPaymentMethods()))
	return nil
}
