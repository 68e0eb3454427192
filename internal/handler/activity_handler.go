package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/mishasvintus/mergington_activities/internal/domain"
	"github.com/mishasvintus/mergington_activities/internal/service"
)

// ActivityHandler handles activity-related HTTP requests.
type ActivityHandler struct {
	activityService ActivityServiceInterface
}

// NewActivityHandler creates a new activity handler.
func NewActivityHandler(activityService ActivityServiceInterface) *ActivityHandler {
	return &ActivityHandler{activityService: activityService}
}

// ListActivities handles GET /activities.
func (h *ActivityHandler) ListActivities(c *gin.Context) {
	activities := h.activityService.ListActivities()

	resp := make(map[string]ActivityResponse, len(activities))
	for name, a := range activities {
		resp[name] = domainToActivityResponse(a)
	}

	c.JSON(http.StatusOK, resp)
}

// Signup handles POST /activities/:activity_name/signup.
func (h *ActivityHandler) Signup(c *gin.Context) {
	activityName := c.Param("activity_name")

	var query SignupQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		BadRequest(c, ErrorInvalidRequest, validationMessage(err))
		return
	}

	msg, err := h.activityService.Signup(activityName, query.Email)
	if err != nil {
		if errors.Is(err, service.ErrActivityNotFound) {
			NotFound(c, "Activity not found")
			return
		}
		if errors.Is(err, service.ErrAlreadySignedUp) {
			BadRequest(c, ErrorAlreadySignedUp, "Student is already signed up")
			return
		}
		if errors.Is(err, service.ErrActivityFull) {
			BadRequest(c, ErrorActivityFull, "Activity is full")
			return
		}
		_ = c.Error(err)
		InternalError(c, err.Error())
		return
	}

	c.JSON(http.StatusOK, MessageResponse{Message: msg})
}

// Unregister handles DELETE /activities/:activity_name/signup.
func (h *ActivityHandler) Unregister(c *gin.Context) {
	activityName := c.Param("activity_name")

	var query SignupQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		BadRequest(c, ErrorInvalidRequest, validationMessage(err))
		return
	}

	msg, err := h.activityService.Unregister(activityName, query.Email)
	if err != nil {
		if errors.Is(err, service.ErrActivityNotFound) {
			NotFound(c, "Activity not found")
			return
		}
		if errors.Is(err, service.ErrNotSignedUp) {
			NotFound(c, "Student is not signed up for this activity")
			return
		}
		_ = c.Error(err)
		InternalError(c, err.Error())
		return
	}

	c.JSON(http.StatusOK, MessageResponse{Message: msg})
}

// domainToActivityResponse converts domain.Activity to ActivityResponse.
func domainToActivityResponse(a domain.Activity) ActivityResponse {
	participants := make([]string, len(a.Participants))
	copy(participants, a.Participants)

	return ActivityResponse{
		Description:     a.Description,
		Schedule:        a.Schedule,
		MaxParticipants: a.MaxParticipants,
		Participants:    participants,
	}
}
