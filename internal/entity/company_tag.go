package entity

import (
	"time"
)

// CompanyTag is a free-form (category, value) tag derived by keyword
// matching against company descriptions, e.g. ("technology", "SaaS").
type CompanyTag struct {
	ID          uint      `gorm:"primaryKey" json:"id"`
	CompanyID   uint      `gorm:"not null;index:idx_company_category" json:"company_id"`
	TagCategory string    `gorm:"not null;index:idx_company_category;index:idx_category_value" json:"tag_category"`
	TagValue    string    `gorm:"not null;index:idx_category_value" json:"tag_value"`
	CreatedAt   time.Time `gorm:"autoCreateTime" json:"created_at"`
}

// TableName specifies the table name for the CompanyTag model.
func (CompanyTag) TableName() string {
	return "company_tags"
}
