package handler

import (
	"net/http"
	"strconv"

	"github.com/tourze/raffle-core/internal/activity"
	"github.com/tourze/raffle-core/internal/logger"
)

const defaultUpcomingLimit = 10

type ActivityHandler struct {
	service activity.Service
}

func NewActivityHandler(service activity.Service) *ActivityHandler {
	return &ActivityHandler{service: service}
}

func (h *ActivityHandler) HandleGetActive(w http.ResponseWriter, r *http.Request) {
	activities, err := h.service.GetActiveActivities(r.Context())
	if err != nil {
		logger.FromContext(r.Context()).Error("Failed to list active activities", "error", err)
		statusCode, userMsg := mapServiceErrorToUserMessage(err)
		respondError(w, statusCode, userMsg)
		return
	}

	respondJSON(w, http.StatusOK, DataResponse{Data: activities})
}

func (h *ActivityHandler) HandleGetUpcoming(w http.ResponseWriter, r *http.Request) {
	limitStr := GetOptionalQueryParam(r, "limit", strconv.Itoa(defaultUpcomingLimit))
	limit, err := strconv.Atoi(limitStr)
	if err != nil || limit <= 0 {
		http.Error(w, ErrMsgInvalidLimit, http.StatusBadRequest)
		return
	}

	activities, err := h.service.GetUpcomingActivities(r.Context(), limit)
	if err != nil {
		logger.FromContext(r.Context()).Error("Failed to list upcoming activities", "error", err)
		statusCode, userMsg := mapServiceErrorToUserMessage(err)
		respondError(w, statusCode, userMsg)
		return
	}

	respondJSON(w, http.StatusOK, DataResponse{Data: activities})
}

func (h *ActivityHandler) HandleGetDetail(w http.ResponseWriter, r *http.Request) {
	activityID, ok := GetInt64QueryParam(r, w, "id", ErrMsgInvalidActivityID)
	if !ok {
		return
	}

	detail, err := h.service.GetActivityDetail(r.Context(), activityID)
	if err != nil {
		logger.FromContext(r.Context()).Error("Failed to get activity detail", "error", err, "activityID", activityID)
		statusCode, userMsg := mapServiceErrorToUserMessage(err)
		respondError(w, statusCode, userMsg)
		return
	}

	respondJSON(w, http.StatusOK, detail)
}
