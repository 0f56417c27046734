package catalog

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/commerce-backoffice-api/infrastructure/repository/mocks"
	"github.com/vfg2006/commerce-backoffice-api/internal/domain"
	"github.com/vfg2006/commerce-backoffice-api/pkg/log"
	"go.uber.org/mock/gomock"
)

func strPtr(s string) *string     { return &s }
func floatPtr(f float64) *float64 { return &f }

func TestImportProducts(t *testing.T) {
	log.SetupTestLogger()

	tests := []struct {
		name     string
		entries  []*domain.ProductImportEntry
		setup    func(productRepo *mocks.MockProductRepository)
		wantErr  bool
		validate func(t *testing.T, response *domain.ImportProductsResponse)
	}{
		{
			name: "Deve criar produto novo e atualizar existente na mesma importação",
			entries: []*domain.ProductImportEntry{
				{SKU: "SKU-001", Name: "Lente Premium", Brand: strPtr("Zeiss"), CostEur: floatPtr(45.0)},
				{SKU: "SKU-002", Name: "Armação Clássica"},
			},
			setup: func(productRepo *mocks.MockProductRepository) {
				productRepo.EXPECT().FindByIDOrSKU("SKU-001").Return(nil, nil)
				productRepo.EXPECT().FindByIDOrSKU("SKU-002").Return(&domain.Product{ID: "prod-2", SKU: "SKU-002", Status: domain.ProductStatusActive}, nil)
				productRepo.EXPECT().UpsertFromImport(gomock.Any(), gomock.Any(), gomock.Any()).DoAndReturn(
					func(ctx context.Context, products []*domain.Product, costs map[string]float64) error {
						require.Len(t, products, 2)
						assert.NotEmpty(t, products[0].ID)
						assert.Equal(t, "prod-2", products[1].ID)
						assert.Equal(t, map[string]float64{"SKU-001": 45.0}, costs)
						return nil
					})
			},
			validate: func(t *testing.T, response *domain.ImportProductsResponse) {
				assert.Equal(t, 1, response.Created)
				assert.Equal(t, 1, response.Updated)
				assert.False(t, response.Error)
			},
		},
		{
			name: "Deve descartar entradas sem SKU ou nome",
			entries: []*domain.ProductImportEntry{
				{SKU: "", Name: "Sem SKU"},
				{SKU: "SKU-003", Name: ""},
			},
			setup: func(productRepo *mocks.MockProductRepository) {},
			validate: func(t *testing.T, response *domain.ImportProductsResponse) {
				assert.True(t, response.Error)
				assert.Equal(t, 0, response.Created)
			},
		},
		{
			name:    "Deve retornar mensagem para importação vazia",
			entries: nil,
			setup:   func(productRepo *mocks.MockProductRepository) {},
			validate: func(t *testing.T, response *domain.ImportProductsResponse) {
				assert.Equal(t, 0, response.Created)
				assert.False(t, response.Error)
			},
		},
		{
			name: "Deve propagar erro do upsert",
			entries: []*domain.ProductImportEntry{
				{SKU: "SKU-001", Name: "Lente Premium"},
			},
			setup: func(productRepo *mocks.MockProductRepository) {
				productRepo.EXPECT().FindByIDOrSKU("SKU-001").Return(nil, nil)
				productRepo.EXPECT().UpsertFromImport(gomock.Any(), gomock.Any(), gomock.Any()).Return(errors.New("erro de banco"))
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			productRepo := mocks.NewMockProductRepository(ctrl)
			tt.setup(productRepo)

			service := NewService(productRepo)
			response, err := service.ImportProducts(context.Background(), tt.entries)

			if tt.wantErr {
				require.Error(t, err)
				return
			}

			require.NoError(t, err)
			require.NotNil(t, response)
			tt.validate(t, response)
		})
	}
}

func TestGetProduct(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	product := &domain.Product{ID: "prod-1", SKU: "SKU-001", Name: "Lente Premium"}

	productRepo := mocks.NewMockProductRepository(ctrl)
	productRepo.EXPECT().FindByIDOrSKU("SKU-001").Return(product, nil)

	service := NewService(productRepo)
	result, err := service.GetProduct("SKU-001")

	require.NoError(t, err)
	assert.Equal(t, product, result)
}
