package service_test

import (
	"context"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"

	accountdomain "github.com/Shohjahon77877/e-shop-florify/internal/account/domain"
	"github.com/Shohjahon77877/e-shop-florify/internal/apperr"
	"github.com/Shohjahon77877/e-shop-florify/internal/catalog/domain"
	"github.com/Shohjahon77877/e-shop-florify/internal/catalog/dto"
	"github.com/Shohjahon77877/e-shop-florify/internal/catalog/service"
	"github.com/Shohjahon77877/e-shop-florify/internal/mocks"
)

const (
	testClientID = "c7f3b2c1-0000-4000-8000-000000000004"
	testSaleID   = "b7f3b2c1-0000-4000-8000-000000000005"
)

func newSaleService(ctrl *gomock.Controller) (*service.SaleService, *mocks.MockSaleStore, *mocks.MockProductStore, *mocks.MockClientStore) {
	mockSales := mocks.NewMockSaleStore(ctrl)
	mockProducts := mocks.NewMockProductStore(ctrl)
	mockClients := mocks.NewMockClientStore(ctrl)

	return service.NewSaleService(mockSales, mockProducts, mockClients), mockSales, mockProducts, mockClients
}

func TestSaleService_Create_Success(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	s, mockSales, _, _ := newSaleService(ctrl)

	input := dto.CreateSoldProductInput{
		ProductID: testProductID,
		ClientID:  testClientID,
		Quantity:  3,
	}

	expected := &domain.SoldProduct{
		ID:         testSaleID,
		ProductID:  testProductID,
		ClientID:   testClientID,
		Quantity:   3,
		TotalPrice: 13.5,
	}

	mockSales.EXPECT().CreateSale(gomock.Any(), testProductID, testClientID, 3).Return(expected, nil)

	sale, err := s.Create(context.Background(), input)

	assert.NoError(t, err)
	assert.Equal(t, expected, sale)
}

func TestSaleService_Create_InsufficientStock(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	s, mockSales, _, _ := newSaleService(ctrl)

	input := dto.CreateSoldProductInput{
		ProductID: testProductID,
		ClientID:  testClientID,
		Quantity:  100,
	}

	mockSales.EXPECT().CreateSale(gomock.Any(), testProductID, testClientID, 100).
		Return(nil, apperr.ErrInsufficientStock)

	sale, err := s.Create(context.Background(), input)

	assert.Equal(t, apperr.ErrInsufficientStock, err)
	assert.Nil(t, sale)
}

func TestSaleService_Create_InvalidProductID(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	s, _, _, _ := newSaleService(ctrl)

	input := dto.CreateSoldProductInput{
		ProductID: "not-a-uuid",
		ClientID:  testClientID,
		Quantity:  3,
	}

	sale, err := s.Create(context.Background(), input)

	assert.Equal(t, apperr.ErrInvalidID, err)
	assert.Nil(t, sale)
}

func TestSaleService_GetByID_NotFound(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	s, mockSales, _, _ := newSaleService(ctrl)

	mockSales.EXPECT().GetByID(gomock.Any(), testSaleID).Return(nil, nil)

	sale, err := s.GetByID(context.Background(), testSaleID)

	assert.Equal(t, apperr.NotFound("SoldProduct not found"), err)
	assert.Nil(t, sale)
}

func TestSaleService_Update_RecomputesTotal(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	s, mockSales, mockProducts, mockClients := newSaleService(ctrl)

	existing := &domain.SoldProductDetail{
		SoldProduct: domain.SoldProduct{
			ID:         testSaleID,
			ProductID:  testProductID,
			ClientID:   testClientID,
			Quantity:   2,
			TotalPrice: 9.0,
		},
	}

	input := dto.UpdateSoldProductInput{
		ProductID: testProductID,
		ClientID:  testClientID,
		Quantity:  5,
	}

	updated := &domain.SoldProductDetail{
		SoldProduct: domain.SoldProduct{
			ID:         testSaleID,
			ProductID:  testProductID,
			ClientID:   testClientID,
			Quantity:   5,
			TotalPrice: 22.5,
		},
	}

	mockSales.EXPECT().GetByID(gomock.Any(), testSaleID).Return(existing, nil)
	mockClients.EXPECT().GetByID(gomock.Any(), testClientID).
		Return(&accountdomain.Client{ID: testClientID}, nil)
	mockProducts.EXPECT().GetByID(gomock.Any(), testProductID).
		Return(&domain.Product{ID: testProductID, Price: 4.5}, nil)
	mockSales.EXPECT().Update(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, sale *domain.SoldProduct) error {
			assert.Equal(t, 5, sale.Quantity)
			assert.Equal(t, 22.5, sale.TotalPrice)
			return nil
		})
	mockSales.EXPECT().GetByID(gomock.Any(), testSaleID).Return(updated, nil)

	sale, err := s.Update(context.Background(), testSaleID, input)

	assert.NoError(t, err)
	assert.Equal(t, updated, sale)
}

func TestSaleService_Update_ClientNotFound(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	s, mockSales, _, mockClients := newSaleService(ctrl)

	existing := &domain.SoldProductDetail{
		SoldProduct: domain.SoldProduct{ID: testSaleID, ProductID: testProductID, ClientID: testClientID},
	}

	input := dto.UpdateSoldProductInput{
		ProductID: testProductID,
		ClientID:  testClientID,
		Quantity:  5,
	}

	mockSales.EXPECT().GetByID(gomock.Any(), testSaleID).Return(existing, nil)
	mockClients.EXPECT().GetByID(gomock.Any(), testClientID).Return(nil, nil)

	sale, err := s.Update(context.Background(), testSaleID, input)

	assert.Equal(t, apperr.NotFound("Client not found"), err)
	assert.Nil(t, sale)
}

func TestSaleService_Delete_Success(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	s, mockSales, _, _ := newSaleService(ctrl)

	existing := &domain.SoldProductDetail{
		SoldProduct: domain.SoldProduct{ID: testSaleID},
	}

	mockSales.EXPECT().GetByID(gomock.Any(), testSaleID).Return(existing, nil)
	mockSales.EXPECT().Delete(gomock.Any(), testSaleID).Return(nil)

	err := s.Delete(context.Background(), testSaleID)

	assert.NoError(t, err)
}
