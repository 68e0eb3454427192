package handler

import (
	"github.com/mishasvintus/mergington_activities/internal/domain"
)

//go:generate mockgen -source=interfaces.go -destination=mocks/mock_interfaces.go -package=mocks

// ActivityServiceInterface defines the interface for activity roster operations.
type ActivityServiceInterface interface {
	ListActivities() map[string]domain.Activity
	Signup(activityName, email string) (string, error)
	Unregister(activityName, email string) (string, error)
}
