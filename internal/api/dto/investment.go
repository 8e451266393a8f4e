package dto

import (
	"time"

	"pe-portfolio-aggregator/internal/entity"
)

// InvestmentListRequest carries the investment list filters.
type InvestmentListRequest struct {
	PEFirm   string `query:"pe_firm"`
	Status   string `query:"status"`
	ExitType string `query:"exit_type"`
	Industry string `query:"industry"`
	Search   string `query:"search"`
	Limit    int    `query:"limit"`
	Offset   int    `query:"offset"`
}

// InvestmentResponse is one firm/company investment row.
type InvestmentResponse struct {
	ID                uint       `json:"id"`
	CompanyID         uint       `json:"company_id"`
	CompanyName       string     `json:"company_name"`
	PEFirmID          uint       `json:"pe_firm_id"`
	PEFirmName        string     `json:"pe_firm_name"`
	ComputedStatus    string     `json:"computed_status"`
	RawStatus         string     `json:"raw_status"`
	InvestmentYear    string     `json:"investment_year"`
	InvestmentStage   string     `json:"investment_stage"`
	ExitType          string     `json:"exit_type,omitempty"`
	ExitInfo          string     `json:"exit_info,omitempty"`
	ExitYear          string     `json:"exit_year,omitempty"`
	StatusConfirmedAt *time.Time `json:"status_confirmed_at,omitempty"`
}

// InvestmentListResponse is a paginated list of investments.
type InvestmentListResponse struct {
	Total       int64                `json:"total"`
	Limit       int                  `json:"limit"`
	Offset      int                  `json:"offset"`
	Investments []InvestmentResponse `json:"investments"`
}

// NewInvestmentResponse maps an investment entity with its joins.
func NewInvestmentResponse(inv *entity.CompanyPEInvestment) InvestmentResponse {
	resp := InvestmentResponse{
		ID:                inv.ID,
		CompanyID:         inv.CompanyID,
		PEFirmID:          inv.PEFirmID,
		ComputedStatus:    inv.ComputedStatus,
		RawStatus:         inv.RawStatus,
		InvestmentYear:    inv.InvestmentYear,
		InvestmentStage:   inv.InvestmentStage,
		ExitType:          inv.ExitType,
		ExitInfo:          inv.ExitInfo,
		ExitYear:          inv.ExitYear,
		StatusConfirmedAt: inv.StatusConfirmedAt,
	}
	if inv.Company != nil {
		resp.CompanyName = inv.Company.Name
	}
	if inv.PEFirm != nil {
		resp.PEFirmName = inv.PEFirm.Name
	}
	return resp
}
