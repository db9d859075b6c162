package dto

// CreateApplicationRequest - отклик студента на проект
type CreateApplicationRequest struct {
	Message *string `json:"message,omitempty"`
}

// UpdateApplicationStatusRequest - решение организации по отклику
type UpdateApplicationStatusRequest struct {
	Status string `json:"status" binding:"required,oneof=pending accepted rejected"`
}
