package usecase

import (
	"context"
	"testing"
	"time"

	"storefront/internal/domain/model"
	repo "storefront/internal/repository"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOrderUsecase_ListMine(t *testing.T) {
	ctx := context.Background()
	orderRepo := new(orderRepoMock)
	uc := NewOrderUsecase(orderRepo, new(orderLineRepoMock), new(productRepoMock))

	now := time.Now()
	orderRepo.On("ListByUserID", ctx, int64(10)).Return([]model.Order{
		{ID: 2, UserID: 10, Status: model.OrderStatusPending, Total: price("1000.00"), CreatedAt: now},
		{ID: 1, UserID: 10, Status: model.OrderStatusPaid, Total: price("3000.00"), CreatedAt: now.Add(-time.Hour)},
	}, nil)

	out, err := uc.ListMine(ctx, 10)
	require.NoError(t, err)

	require.Len(t, out, 2)
	assert.Equal(t, int64(2), out[0].ID)
	assert.Equal(t, string(model.OrderStatusPending), out[0].Status)
	assert.True(t, out[0].Total.Equal(price("1000.00")))
}

func TestOrderUsecase_DetailMine_JoinsProductNames(t *testing.T) {
	ctx := context.Background()
	orderRepo := new(orderRepoMock)
	orderLineRepo := new(orderLineRepoMock)
	productRepo := new(productRepoMock)
	uc := NewOrderUsecase(orderRepo, orderLineRepo, productRepo)

	orderRepo.On("FindByID", ctx, int64(42)).Return(model.Order{
		ID: 42, UserID: 10, Status: model.OrderStatusPending, Total: price("1000.00"),
	}, nil)
	orderLineRepo.On("ListByOrderID", ctx, int64(42)).Return([]model.OrderLine{
		{ID: 1, OrderID: 42, ProductID: 1, Quantity: 2, UnitPriceAtSale: price("500.00")},
	}, nil)
	productRepo.On("FindByIDs", ctx, []int64{1}).Return([]model.Product{
		{ID: 1, Name: "豆", Price: price("600.00")},
	}, nil)

	detail, err := uc.DetailMine(ctx, 10, 42)
	require.NoError(t, err)

	require.Len(t, detail.Items, 1)
	assert.Equal(t, "豆", detail.Items[0].ProductName)
	// 明細の単価は購入時の凍結価格のままで、現在価格600は使わない
	assert.True(t, detail.Items[0].UnitPriceAtSale.Equal(price("500.00")))
	assert.True(t, detail.Items[0].Subtotal.Equal(price("1000.00")))
	assert.True(t, detail.Total.Equal(price("1000.00")))
}

func TestOrderUsecase_DetailMine_ForeignOrderLooksAbsent(t *testing.T) {
	ctx := context.Background()
	orderRepo := new(orderRepoMock)
	orderLineRepo := new(orderLineRepoMock)
	uc := NewOrderUsecase(orderRepo, orderLineRepo, new(productRepoMock))

	// 注文42の所有者はユーザー10。ユーザー20が覗きに来る
	orderRepo.On("FindByID", ctx, int64(42)).Return(model.Order{ID: 42, UserID: 10}, nil)

	_, err := uc.DetailMine(ctx, 20, 42)
	require.Error(t, err)

	appErr, ok := AsAppError(err)
	require.True(t, ok)
	assert.Equal(t, KindNotFound, appErr.Kind)

	// 明細には触れない
	orderLineRepo.AssertNotCalled(t, "ListByOrderID", ctx, int64(42))
}

func TestOrderUsecase_DetailMine_NotFound(t *testing.T) {
	ctx := context.Background()
	orderRepo := new(orderRepoMock)
	uc := NewOrderUsecase(orderRepo, new(orderLineRepoMock), new(productRepoMock))

	orderRepo.On("FindByID", ctx, int64(99)).Return(model.Order{}, repo.ErrNotFound)

	_, err := uc.DetailMine(ctx, 10, 99)
	require.Error(t, err)

	appErr, ok := AsAppError(err)
	require.True(t, ok)
	assert.Equal(t, KindNotFound, appErr.Kind)
}
