package service

import (
	"context"

	"pe-portfolio-aggregator/internal/api/dto"
	"pe-portfolio-aggregator/internal/api/repository"
	"pe-portfolio-aggregator/pkg/logger"
)

// CompanyService serves the company endpoints.
type CompanyService interface {
	ListCompanies(ctx context.Context, req dto.CompanyListRequest) (*dto.CompanyListResponse, error)
	GetCompany(ctx context.Context, id uint) (*dto.CompanyResponse, error)
	UpdateCompany(ctx context.Context, id uint, req dto.CompanyUpdateRequest) (*dto.CompanyResponse, error)
	DeleteCompany(ctx context.Context, id uint) error
}

// NewCompanyService creates a new company service.
func NewCompanyService(companyRepo repository.CompanyRepository, log *logger.Logger) CompanyService {
	return &companyService{companyRepo: companyRepo, logger: log}
}

type companyService struct {
	companyRepo repository.CompanyRepository
	logger      *logger.Logger
}

// ListCompanies returns a filtered, paginated company page.
func (s *companyService) ListCompanies(ctx context.Context, req dto.CompanyListRequest) (*dto.CompanyListResponse, error) {
	companies, total, err := s.companyRepo.List(ctx, req)
	if err != nil {
		return nil, err
	}

	// Report the page window actually served, not the raw request.
	limit, offset := repository.ClampPage(req.Limit, req.Offset)
	resp := &dto.CompanyListResponse{
		Total:     total,
		Limit:     limit,
		Offset:    offset,
		Companies: make([]dto.CompanyResponse, 0, len(companies)),
	}
	for i := range companies {
		resp.Companies = append(resp.Companies, dto.NewCompanyResponse(&companies[i]))
	}
	return resp, nil
}

// GetCompany returns one company by ID.
func (s *companyService) GetCompany(ctx context.Context, id uint) (*dto.CompanyResponse, error) {
	company, err := s.companyRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	resp := dto.NewCompanyResponse(company)
	return &resp, nil
}

// UpdateCompany applies the non-nil fields of the admin edit payload.
func (s *companyService) UpdateCompany(ctx context.Context, id uint, req dto.CompanyUpdateRequest) (*dto.CompanyResponse, error) {
	company, err := s.companyRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if req.Description != nil {
		company.Description = *req.Description
	}
	if req.Website != nil {
		company.Website = *req.Website
	}
	if req.LinkedinURL != nil {
		company.LinkedinURL = *req.LinkedinURL
	}
	if req.IndustryCategory != nil {
		company.IndustryCategory = *req.IndustryCategory
	}
	if req.Country != nil {
		company.Country = *req.Country
	}
	if req.StateRegion != nil {
		company.StateRegion = *req.StateRegion
	}
	if req.City != nil {
		company.City = *req.City
	}

	if err := s.companyRepo.Update(ctx, company); err != nil {
		return nil, err
	}
	s.logger.Info("Company updated", logger.IntField("id", int(id)))
	resp := dto.NewCompanyResponse(company)
	return &resp, nil
}

// DeleteCompany removes a company and its dependent rows.
func (s *companyService) DeleteCompany(ctx context.Context, id uint) error {
	if _, err := s.companyRepo.FindByID(ctx, id); err != nil {
		return err
	}
	if err := s.companyRepo.Delete(ctx, id); err != nil {
		return err
	}
	s.logger.Info("Company deleted", logger.IntField("id", int(id)))
	return nil
}
