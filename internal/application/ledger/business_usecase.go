package ledger

import (
	"context"
	"strings"

	"github.com/jhoicas/ledgerflow-api/internal/application/dto"
	"github.com/jhoicas/ledgerflow-api/internal/domain"
	"github.com/jhoicas/ledgerflow-api/internal/domain/entity"
	domainledger "github.com/jhoicas/ledgerflow-api/internal/domain/ledger"
	"github.com/jhoicas/ledgerflow-api/internal/domain/repository"
)

// BusinessUseCase metadatos del negocio y totales recalculados bajo demanda.
type BusinessUseCase struct {
	businessRepo repository.BusinessRepository
	customerRepo repository.CustomerRepository
}

// NewBusinessUseCase construye el caso de uso.
func NewBusinessUseCase(businessRepo repository.BusinessRepository, customerRepo repository.CustomerRepository) *BusinessUseCase {
	return &BusinessUseCase{businessRepo: businessRepo, customerRepo: customerRepo}
}

// Totals agregados sobre el snapshot actual de clientes.
func (uc *BusinessUseCase) Totals(ctx context.Context) (domainledger.Totals, error) {
	customers, err := uc.customerRepo.List(ctx)
	if err != nil {
		return domainledger.Totals{}, err
	}
	return domainledger.ComputeTotals(customers), nil
}

// GetBusinessData metadatos del negocio más totales por cobrar y por pagar.
func (uc *BusinessUseCase) GetBusinessData(ctx context.Context) (*dto.BusinessResponse, error) {
	business, err := uc.businessRepo.Get(ctx)
	if err != nil {
		return nil, err
	}
	totals, err := uc.Totals(ctx)
	if err != nil {
		return nil, err
	}
	return toBusinessResponse(business, totals), nil
}

// UpdateBusiness mezcla los metadatos indicados y devuelve el resultado con totales.
func (uc *BusinessUseCase) UpdateBusiness(ctx context.Context, in dto.UpdateBusinessRequest) (*dto.BusinessResponse, error) {
	business, err := uc.businessRepo.Get(ctx)
	if err != nil {
		return nil, err
	}
	if in.Name != nil {
		if business.Name = strings.TrimSpace(*in.Name); business.Name == "" {
			return nil, domain.NewValidationError("name", "no puede quedar vacío")
		}
	}
	if in.Owner != nil {
		business.Owner = strings.TrimSpace(*in.Owner)
	}
	if in.Phone != nil {
		business.Phone = strings.TrimSpace(*in.Phone)
	}
	if in.Address != nil {
		business.Address = strings.TrimSpace(*in.Address)
	}
	if err := uc.businessRepo.Save(ctx, business); err != nil {
		return nil, err
	}
	totals, err := uc.Totals(ctx)
	if err != nil {
		return nil, err
	}
	return toBusinessResponse(business, totals), nil
}

func toBusinessResponse(b *entity.Business, t domainledger.Totals) *dto.BusinessResponse {
	return &dto.BusinessResponse{
		Name:             b.Name,
		Owner:            b.Owner,
		Phone:            b.Phone,
		Address:          b.Address,
		TotalToReceive:   t.TotalToReceive,
		TotalToPay:       t.TotalToPay,
		NetBalance:       t.NetBalance,
		NetStatus:        t.NetStatus(),
		CustomerCount:    t.CustomerCount,
		OutstandingCount: t.OutstandingCount,
	}
}
