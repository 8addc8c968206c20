package services

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/bsgti/vendor_budget_app/internal/core/domain"
	portsrepo "github.com/bsgti/vendor_budget_app/internal/core/ports/repositories"
	portssvc "github.com/bsgti/vendor_budget_app/internal/core/ports/services"
	"github.com/bsgti/vendor_budget_app/internal/dto"
)

// glAccountService implements the GLAccountSvcFacade interface
type glAccountService struct {
	BaseService
	glAccountRepo portsrepo.GLAccountRepositoryFacade
}

// NewGLAccountService creates a new GL account service
func NewGLAccountService(glAccountRepo portsrepo.GLAccountRepositoryFacade) portssvc.GLAccountSvcFacade {
	return &glAccountService{glAccountRepo: glAccountRepo}
}

var _ portssvc.GLAccountSvcFacade = (*glAccountService)(nil)

func (s *glAccountService) ListGLAccounts(ctx context.Context) ([]domain.GLAccount, error) {
	accounts, err := s.glAccountRepo.ListGLAccounts(ctx)
	if err != nil {
		s.LogError(ctx, err, "Failed to list GL accounts")
		return nil, fmt.Errorf("failed to list GL accounts: %w", err)
	}
	if accounts == nil {
		return []domain.GLAccount{}, nil
	}
	return accounts, nil
}

func (s *glAccountService) CreateGLAccount(ctx context.Context, req dto.CreateGLAccountRequest) (*domain.GLAccount, error) {
	account := domain.GLAccount{
		Code:     req.Code,
		Name:     req.Name,
		Category: req.Category,
	}

	created, err := s.glAccountRepo.CreateGLAccount(ctx, account)
	if err != nil {
		s.LogError(ctx, err, "Failed to create GL account", slog.String("code", req.Code))
		return nil, err
	}

	s.LogInfo(ctx, "GL account created", slog.Int64("gl_account_id", created.GLAccountID), slog.String("code", created.Code))
	return created, nil
}
