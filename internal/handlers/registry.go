package handlers

// AppHandlers собирает все HTTP-хендлеры приложения
type AppHandlers struct {
	AuthHandler                *AuthHandler
	UserHandler                *UserHandler
	StudentProfileHandler      *StudentProfileHandler
	OrganizationProfileHandler *OrganizationProfileHandler
	ProjectHandler             *ProjectHandler
	ApplicationHandler         *ApplicationHandler
}
