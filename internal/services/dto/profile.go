package dto

// CreateStudentProfileRequest - создание профиля студента
type CreateStudentProfileRequest struct {
	University     string `json:"university" binding:"required"`
	Major          string `json:"major" binding:"required"`
	GraduationYear int    `json:"graduation_year" binding:"required,min=1950,max=2100"`
	Skills         string `json:"skills"`
	Bio            string `json:"bio"`
}

// UpdateStudentProfileRequest - частичное обновление: меняются только
// явно переданные поля (pointer != nil), остальные сохраняют значения.
type UpdateStudentProfileRequest struct {
	University     *string `json:"university,omitempty"`
	Major          *string `json:"major,omitempty"`
	GraduationYear *int    `json:"graduation_year,omitempty" binding:"omitempty,min=1950,max=2100"`
	Skills         *string `json:"skills,omitempty"`
	Bio            *string `json:"bio,omitempty"`
}

// CreateOrganizationProfileRequest - создание профиля организации
type CreateOrganizationProfileRequest struct {
	OrganizationName string `json:"organization_name" binding:"required,min=1,max=100"`
	Industry         string `json:"industry"`
	Website          string `json:"website"`
	Description      string `json:"description"`
}

// UpdateOrganizationProfileRequest - частичное обновление профиля организации
type UpdateOrganizationProfileRequest struct {
	OrganizationName *string `json:"organization_name,omitempty" binding:"omitempty,min=1,max=100"`
	Industry         *string `json:"industry,omitempty"`
	Website          *string `json:"website,omitempty"`
	Description      *string `json:"description,omitempty"`
}
