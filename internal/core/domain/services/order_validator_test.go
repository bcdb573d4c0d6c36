package services_test

import (
	"context"
	"testing"
	"time"

	"boozebuddies/internal/core/domain/model/kernel"
	"boozebuddies/internal/core/domain/model/order"
	"boozebuddies/internal/core/domain/services"
	"boozebuddies/internal/core/ports"
	"boozebuddies/internal/pkg/clock"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockProductCatalog struct{ mock.Mock }

func (m *MockProductCatalog) GetProductByID(ctx context.Context, id kernel.UUID) (*ports.Product, error) {
	args := m.Called(ctx, id)
	if p := args.Get(0); p != nil {
		return p.(*ports.Product), args.Error(1)
	}
	return nil, args.Error(1)
}

type MockUserDirectory struct{ mock.Mock }

func (m *MockUserDirectory) FindByID(ctx context.Context, id kernel.UUID) (*ports.User, error) {
	args := m.Called(ctx, id)
	if u := args.Get(0); u != nil {
		return u.(*ports.User), args.Error(1)
	}
	return nil, args.Error(1)
}

var validatedAt = time.Date(2026, 6, 1, 17, 45, 0, 0, time.UTC)

func newValidator(catalog *MockProductCatalog, users *MockUserDirectory) services.OrderValidator {
	return services.NewOrderValidator(catalog, users, clock.NewFixed(validatedAt))
}

func buildOrder(t *testing.T, userID, merchantID kernel.UUID, items []*order.Item) *order.Order {
	t.Helper()
	o, err := order.NewOrder(kernel.NewUUID(), userID, merchantID,
		"1 Distillery Row", "tok_visa", items, decimal.Zero)
	require.NoError(t, err)
	return o
}

func buildItem(t *testing.T, productID kernel.UUID, quantity int) *order.Item {
	t.Helper()
	item, err := order.NewItem(productID, quantity, decimal.Zero)
	require.NoError(t, err)
	return item
}

func TestOrderValidator_CheckSequence(t *testing.T) {
	ctx := context.Background()

	t.Run("missing_user_is_first_violation", func(t *testing.T) {
		catalog := new(MockProductCatalog)
		users := new(MockUserDirectory)
		var zeroUser kernel.UUID
		o := buildOrder(t, zeroUser, kernel.NewUUID(), nil)

		err := newValidator(catalog, users).Validate(ctx, o)

		require.ErrorIs(t, err, order.ErrUserIsRequired)
		catalog.AssertNotCalled(t, "GetProductByID")
	})

	t.Run("missing_merchant_is_second_violation", func(t *testing.T) {
		catalog := new(MockProductCatalog)
		users := new(MockUserDirectory)
		var zeroMerchant kernel.UUID
		o := buildOrder(t, kernel.NewUUID(), zeroMerchant, nil)

		err := newValidator(catalog, users).Validate(ctx, o)

		require.ErrorIs(t, err, order.ErrMerchantIsRequired)
	})

	t.Run("empty_items_is_third_violation", func(t *testing.T) {
		catalog := new(MockProductCatalog)
		users := new(MockUserDirectory)
		o := buildOrder(t, kernel.NewUUID(), kernel.NewUUID(), nil)

		err := newValidator(catalog, users).Validate(ctx, o)

		require.ErrorIs(t, err, order.ErrEmptyOrder)
	})

	t.Run("unresolvable_product_names_the_id", func(t *testing.T) {
		catalog := new(MockProductCatalog)
		users := new(MockUserDirectory)
		missingID := kernel.NewUUID()
		o := buildOrder(t, kernel.NewUUID(), kernel.NewUUID(),
			[]*order.Item{buildItem(t, missingID, 1)})
		catalog.On("GetProductByID", ctx, missingID).Return(nil, nil).Once()

		err := newValidator(catalog, users).Validate(ctx, o)

		var notFound *order.ProductNotFoundError
		require.ErrorAs(t, err, &notFound)
		assert.True(t, notFound.ProductID.IsEqual(missingID))
		assert.Contains(t, err.Error(), missingID.String())
		users.AssertNotCalled(t, "FindByID")
	})
}

func TestOrderValidator_AlcoholRule(t *testing.T) {
	ctx := context.Background()

	t.Run("unverified_user_rejected_for_alcohol", func(t *testing.T) {
		catalog := new(MockProductCatalog)
		users := new(MockUserDirectory)
		userID := kernel.NewUUID()
		productID := kernel.NewUUID()
		o := buildOrder(t, userID, kernel.NewUUID(), []*order.Item{buildItem(t, productID, 1)})
		catalog.On("GetProductByID", ctx, productID).Return(&ports.Product{
			ID: productID, Name: "Rye Whiskey", UnitPrice: decimal.RequireFromString("35.00"), IsAlcohol: true,
		}, nil).Once()
		users.On("FindByID", ctx, userID).Return(&ports.User{ID: userID, AgeVerified: false}, nil).Once()

		err := newValidator(catalog, users).Validate(ctx, o)

		require.ErrorIs(t, err, order.ErrAgeVerificationRequired)
		assert.Equal(t, 0, o.Items()[0].LineNo(), "items must not be stamped on failure")
		assert.True(t, o.Total().IsZero(), "total must not be computed on failure")
		users.AssertExpectations(t)
	})

	t.Run("verified_user_accepted_for_alcohol", func(t *testing.T) {
		catalog := new(MockProductCatalog)
		users := new(MockUserDirectory)
		userID := kernel.NewUUID()
		productID := kernel.NewUUID()
		o := buildOrder(t, userID, kernel.NewUUID(), []*order.Item{buildItem(t, productID, 2)})
		catalog.On("GetProductByID", ctx, productID).Return(&ports.Product{
			ID: productID, Name: "Rye Whiskey", UnitPrice: decimal.RequireFromString("35.00"), IsAlcohol: true,
		}, nil).Once()
		users.On("FindByID", ctx, userID).Return(&ports.User{ID: userID, AgeVerified: true}, nil).Once()

		err := newValidator(catalog, users).Validate(ctx, o)

		require.NoError(t, err)
		assert.True(t, o.Total().Equal(decimal.RequireFromString("70.00")))
	})

	t.Run("non_alcohol_order_never_fetches_user", func(t *testing.T) {
		catalog := new(MockProductCatalog)
		users := new(MockUserDirectory)
		productID := kernel.NewUUID()
		o := buildOrder(t, kernel.NewUUID(), kernel.NewUUID(), []*order.Item{buildItem(t, productID, 1)})
		catalog.On("GetProductByID", ctx, productID).Return(&ports.Product{
			ID: productID, Name: "Ginger Beer", UnitPrice: decimal.RequireFromString("3.50"), IsAlcohol: false,
		}, nil).Once()

		err := newValidator(catalog, users).Validate(ctx, o)

		require.NoError(t, err)
		users.AssertNotCalled(t, "FindByID")
	})
}

func TestOrderValidator_Stamping(t *testing.T) {
	ctx := context.Background()
	catalog := new(MockProductCatalog)
	users := new(MockUserDirectory)
	beerID := kernel.NewUUID()
	wineID := kernel.NewUUID()
	first := buildItem(t, beerID, 2)
	second := buildItem(t, wineID, 3)
	userID := kernel.NewUUID()
	o := buildOrder(t, userID, kernel.NewUUID(), []*order.Item{first, second})
	catalog.On("GetProductByID", ctx, beerID).Return(&ports.Product{
		ID: beerID, Name: "Pale Ale", UnitPrice: decimal.RequireFromString("10.00"), IsAlcohol: true,
	}, nil).Once()
	catalog.On("GetProductByID", ctx, wineID).Return(&ports.Product{
		ID: wineID, Name: "Merlot", UnitPrice: decimal.RequireFromString("15.00"), IsAlcohol: true,
	}, nil).Once()
	users.On("FindByID", ctx, userID).Return(&ports.User{ID: userID, AgeVerified: true}, nil).Once()

	err := newValidator(catalog, users).Validate(ctx, o)

	require.NoError(t, err)
	assert.Equal(t, 1, first.LineNo())
	assert.Equal(t, "Pale Ale", first.Name())
	assert.True(t, first.Subtotal().Equal(decimal.RequireFromString("20.00")))
	assert.Equal(t, 2, second.LineNo())
	assert.True(t, second.Subtotal().Equal(decimal.RequireFromString("45.00")))
	assert.True(t, o.Total().Equal(decimal.RequireFromString("65.00")))
	assert.Equal(t, validatedAt, o.CreatedAt())
	assert.Equal(t, validatedAt, o.UpdatedAt())
	catalog.AssertExpectations(t)
	users.AssertExpectations(t)
}
