package models

type OrganizationProfile struct {
	BaseModel
	UserID           string `gorm:"type:uuid;uniqueIndex;not null" json:"user_id"`
	OrganizationName string `gorm:"type:varchar(100);not null" json:"organization_name"`
	Industry         string `json:"industry"`
	Website          string `json:"website"`
	Description      string `gorm:"type:text" json:"description"`
}
