package service

import (
	"context"

	"pe-portfolio-aggregator/internal/api/dto"
	"pe-portfolio-aggregator/internal/api/repository"
	"pe-portfolio-aggregator/pkg/logger"
)

// InvestmentService serves the investment list endpoint.
type InvestmentService interface {
	ListInvestments(ctx context.Context, req dto.InvestmentListRequest) (*dto.InvestmentListResponse, error)
}

// NewInvestmentService creates a new investment service.
func NewInvestmentService(investmentRepo repository.InvestmentRepository, log *logger.Logger) InvestmentService {
	return &investmentService{investmentRepo: investmentRepo, logger: log}
}

type investmentService struct {
	investmentRepo repository.InvestmentRepository
	logger         *logger.Logger
}

// ListInvestments returns a filtered, paginated investment page.
func (s *investmentService) ListInvestments(ctx context.Context, req dto.InvestmentListRequest) (*dto.InvestmentListResponse, error) {
	investments, total, err := s.investmentRepo.List(ctx, req)
	if err != nil {
		return nil, err
	}

	// Report the page window actually served, not the raw request.
	limit, offset := repository.ClampPage(req.Limit, req.Offset)
	resp := &dto.InvestmentListResponse{
		Total:       total,
		Limit:       limit,
		Offset:      offset,
		Investments: make([]dto.InvestmentResponse, 0, len(investments)),
	}
	for i := range investments {
		resp.Investments = append(resp.Investments, dto.NewInvestmentResponse(&investments[i]))
	}
	return resp, nil
}
