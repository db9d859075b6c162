package services

// ServiceContainer собирает все сервисы приложения в одном месте
type ServiceContainer struct {
	AuthService                AuthService
	UserService                UserService
	StudentProfileService      StudentProfileService
	OrganizationProfileService OrganizationProfileService
	ProjectService             ProjectService
	ApplicationService         ApplicationService
}
