package models

type Project struct {
	BaseModel
	OrganizationID string        `gorm:"type:uuid;not null;index" json:"organization_id"`
	Title          string        `gorm:"not null" json:"title"`
	Description    string        `gorm:"type:text;not null" json:"description"`
	RequiredSkills string        `json:"required_skills"` // свободный текст, через запятую
	Duration       string        `json:"duration"`
	Status         ProjectStatus `gorm:"type:varchar(20);not null;default:'open'" json:"status"`

	Applications []Application `gorm:"foreignKey:ProjectID;constraint:OnDelete:CASCADE" json:"-"`
}
