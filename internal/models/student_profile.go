package models

type StudentProfile struct {
	BaseModel
	// uniqueIndex на user_id — не больше одного профиля на студента
	UserID         string `gorm:"type:uuid;uniqueIndex;not null" json:"user_id"`
	University     string `gorm:"not null" json:"university"`
	Major          string `gorm:"not null" json:"major"`
	GraduationYear int    `gorm:"not null" json:"graduation_year"`
	Skills         string `json:"skills"` // свободный текст, через запятую
	Bio            string `gorm:"type:text" json:"bio"`
}
