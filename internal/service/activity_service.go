package service

import (
	"fmt"

	"github.com/samber/lo"
	"go.uber.org/zap"

	"github.com/mishasvintus/mergington_activities/internal/domain"
	"github.com/mishasvintus/mergington_activities/internal/metrics"
	"github.com/mishasvintus/mergington_activities/internal/repository"
)

// ActivityService handles activity roster business logic.
type ActivityService struct {
	repo            *repository.ActivityRepository
	metrics         *metrics.Metrics
	logger          *zap.Logger
	enforceCapacity bool
}

// NewActivityService creates a new activity service.
// When enforceCapacity is false, max_participants is informational only.
func NewActivityService(
	repo *repository.ActivityRepository,
	m *metrics.Metrics,
	logger *zap.Logger,
	enforceCapacity bool,
) *ActivityService {
	for name, a := range repo.List() {
		m.SetParticipants(name, len(a.Participants))
	}

	return &ActivityService{
		repo:            repo,
		metrics:         m,
		logger:          logger,
		enforceCapacity: enforceCapacity,
	}
}

// ListActivities returns every activity keyed by name.
func (s *ActivityService) ListActivities() map[string]domain.Activity {
	return s.repo.List()
}

// Signup adds email to the roster of activityName.
func (s *ActivityService) Signup(activityName, email string) (string, error) {
	updated, err := s.repo.Update(activityName, func(a *domain.Activity) error {
		if a.HasParticipant(email) {
			return ErrAlreadySignedUp
		}
		if s.enforceCapacity && a.IsFull() {
			return ErrActivityFull
		}
		a.Participants = append(a.Participants, email)
		// Runs under the registry lock.
		s.metrics.RecordSignup(activityName, len(a.Participants))
		return nil
	})
	if err != nil {
		err = s.translate(err)
		s.reject(metrics.OperationSignup, activityName, email, err)
		return "", err
	}

	s.logger.Info("participant signed up",
		zap.String("activity", activityName),
		zap.String("email", email),
		zap.Int("participants", len(updated.Participants)),
	)

	return fmt.Sprintf("Signed up %s for %s", email, activityName), nil
}

// Unregister removes email from the roster of activityName.
func (s *ActivityService) Unregister(activityName, email string) (string, error) {
	updated, err := s.repo.Update(activityName, func(a *domain.Activity) error {
		if !a.HasParticipant(email) {
			return ErrNotSignedUp
		}
		a.Participants = lo.Without(a.Participants, email)
		s.metrics.RecordUnregister(activityName, len(a.Participants))
		return nil
	})
	if err != nil {
		err = s.translate(err)
		s.reject(metrics.OperationUnregister, activityName, email, err)
		return "", err
	}

	s.logger.Info("participant unregistered",
		zap.String("activity", activityName),
		zap.String("email", email),
		zap.Int("participants", len(updated.Participants)),
	)

	return fmt.Sprintf("Unregistered %s from %s", email, activityName), nil
}

// translate maps repository errors onto service errors.
func (s *ActivityService) translate(err error) error {
	if repository.IsNotFound(err) {
		return ErrActivityNotFound
	}
	return err
}

func (s *ActivityService) reject(operation, activityName, email string, err error) {
	s.metrics.RecordRejection(operation, rejectionReason(err))
	s.logger.Debug("roster change rejected",
		zap.String("operation", operation),
		zap.String("activity", activityName),
		zap.String("email", email),
		zap.Error(err),
	)
}

func rejectionReason(err error) string {
	switch err {
	case ErrActivityNotFound:
		return "activity_not_found"
	case ErrAlreadySignedUp:
		return "already_signed_up"
	case ErrNotSignedUp:
		return "not_signed_up"
	case ErrActivityFull:
		return "activity_full"
	default:
		return "internal"
	}
}
