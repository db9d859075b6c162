package models

import "strings"

type UserRole string
type ProjectStatus string
type ApplicationStatus string

const (
	UserRoleStudent      UserRole = "student"
	UserRoleOrganization UserRole = "organization"
	UserRoleAdmin        UserRole = "admin"

	ProjectStatusOpen   ProjectStatus = "open"
	ProjectStatusClosed ProjectStatus = "closed"

	ApplicationStatusPending  ApplicationStatus = "pending"
	ApplicationStatusAccepted ApplicationStatus = "accepted"
	ApplicationStatusRejected ApplicationStatus = "rejected"
)

// ParseUserRole канонизирует строковую роль. Сравнение регистронезависимое,
// ядро после этой точки видит только канонические значения.
func ParseUserRole(raw string) (UserRole, bool) {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case string(UserRoleStudent):
		return UserRoleStudent, true
	case string(UserRoleOrganization):
		return UserRoleOrganization, true
	case string(UserRoleAdmin):
		return UserRoleAdmin, true
	default:
		return "", false
	}
}

// Equals сравнивает роли без учета регистра.
func (r UserRole) Equals(other UserRole) bool {
	return strings.EqualFold(string(r), string(other))
}

func ParseProjectStatus(raw string) (ProjectStatus, bool) {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case string(ProjectStatusOpen):
		return ProjectStatusOpen, true
	case string(ProjectStatusClosed):
		return ProjectStatusClosed, true
	default:
		return "", false
	}
}

func ParseApplicationStatus(raw string) (ApplicationStatus, bool) {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case string(ApplicationStatusPending):
		return ApplicationStatusPending, true
	case string(ApplicationStatusAccepted):
		return ApplicationStatusAccepted, true
	case string(ApplicationStatusRejected):
		return ApplicationStatusRejected, true
	default:
		return "", false
	}
}
