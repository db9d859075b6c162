package models

// Application связывает студента с проектом. Композитный uniqueIndex — один
// отклик на пару (student, project); гонка одновременных откликов упирается
// в constraint, а не в проверку в коде.
type Application struct {
	BaseModel
	StudentID string            `gorm:"type:uuid;not null;uniqueIndex:idx_student_project" json:"student_id"`
	ProjectID string            `gorm:"type:uuid;not null;uniqueIndex:idx_student_project" json:"project_id"`
	Message   *string           `json:"message,omitempty"`
	Status    ApplicationStatus `gorm:"type:varchar(20);not null;default:'pending'" json:"status"`
}
