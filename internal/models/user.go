package models

type User struct {
	BaseModel
	Email        string   `gorm:"uniqueIndex;not null" json:"email"`
	PasswordHash string   `gorm:"not null" json:"-"`
	Role         UserRole `gorm:"type:varchar(20);not null" json:"role"`

	// Relations
	StudentProfile      *StudentProfile      `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE" json:"student_profile,omitempty"`
	OrganizationProfile *OrganizationProfile `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE" json:"organization_profile,omitempty"`
	Projects            []Project            `gorm:"foreignKey:OrganizationID;constraint:OnDelete:CASCADE" json:"-"`
	Applications        []Application        `gorm:"foreignKey:StudentID;constraint:OnDelete:CASCADE" json:"-"`
}
