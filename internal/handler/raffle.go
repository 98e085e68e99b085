package handler

import (
	"net/http"
	"strconv"

	"github.com/google/uuid"

	"github.com/tourze/raffle-core/internal/logger"
	"github.com/tourze/raffle-core/internal/raffle"
)

type RaffleHandler struct {
	service raffle.Service
}

func NewRaffleHandler(service raffle.Service) *RaffleHandler {
	return &RaffleHandler{service: service}
}

type ParticipateRequest struct {
	UserID     string `json:"user_id" validate:"required,uuid"`
	ActivityID int64  `json:"activity_id" validate:"required,gt=0"`
}

func (h *RaffleHandler) HandleParticipate(w http.ResponseWriter, r *http.Request) {
	var req ParticipateRequest
	if err := DecodeAndValidateRequest(r, w, &req, "Participate"); err != nil {
		return
	}

	userID, err := uuid.Parse(req.UserID)
	if err != nil {
		http.Error(w, ErrMsgInvalidUserID, http.StatusBadRequest)
		return
	}

	chance, err := h.service.Participate(r.Context(), userID, req.ActivityID)
	if err != nil {
		logger.FromContext(r.Context()).Error("Failed to grant chance", "error", err)
		statusCode, userMsg := mapServiceErrorToUserMessage(err)
		respondError(w, statusCode, userMsg)
		return
	}

	respondJSON(w, http.StatusCreated, DataResponse{Message: MsgChanceGranted, Data: chance})
}

type DrawRequest struct {
	ChanceID int64 `json:"chance_id" validate:"required,gt=0"`
}

func (h *RaffleHandler) HandleDraw(w http.ResponseWriter, r *http.Request) {
	var req DrawRequest
	if err := DecodeAndValidateRequest(r, w, &req, "Draw"); err != nil {
		return
	}

	result, err := h.service.Draw(r.Context(), req.ChanceID)
	if err != nil {
		logger.FromContext(r.Context()).Error("Failed to draw", "error", err)
		statusCode, userMsg := mapServiceErrorToUserMessage(err)
		respondError(w, statusCode, userMsg)
		return
	}

	respondJSON(w, http.StatusOK, result)
}

func (h *RaffleHandler) HandleParticipateAndDraw(w http.ResponseWriter, r *http.Request) {
	var req ParticipateRequest
	if err := DecodeAndValidateRequest(r, w, &req, "Participate and draw"); err != nil {
		return
	}

	userID, err := uuid.Parse(req.UserID)
	if err != nil {
		http.Error(w, ErrMsgInvalidUserID, http.StatusBadRequest)
		return
	}

	result, err := h.service.ParticipateAndDraw(r.Context(), userID, req.ActivityID)
	if err != nil {
		logger.FromContext(r.Context()).Error("Failed to participate and draw", "error", err)
		statusCode, userMsg := mapServiceErrorToUserMessage(err)
		respondError(w, statusCode, userMsg)
		return
	}

	respondJSON(w, http.StatusOK, result)
}

func (h *RaffleHandler) HandleCanParticipate(w http.ResponseWriter, r *http.Request) {
	userID, ok := parseUserID(w, r)
	if !ok {
		return
	}
	activityID, ok := GetInt64QueryParam(r, w, "activity_id", ErrMsgInvalidActivityID)
	if !ok {
		return
	}

	allowed, err := h.service.CanParticipate(r.Context(), userID, activityID)
	if err != nil {
		logger.FromContext(r.Context()).Error("Failed to check participation", "error", err)
		statusCode, userMsg := mapServiceErrorToUserMessage(err)
		respondError(w, statusCode, userMsg)
		return
	}

	respondJSON(w, http.StatusOK, map[string]bool{"can_participate": allowed})
}

func (h *RaffleHandler) HandleGetHistory(w http.ResponseWriter, r *http.Request) {
	userID, ok := parseUserID(w, r)
	if !ok {
		return
	}

	// Scoped history when activity_id is present, unclaimed wins otherwise
	var activityID *int64
	if raw := GetOptionalQueryParam(r, "activity_id", ""); raw != "" {
		id, err := strconv.ParseInt(raw, 10, 64)
		if err != nil {
			http.Error(w, ErrMsgInvalidActivityID, http.StatusBadRequest)
			return
		}
		activityID = &id
	}

	chances, err := h.service.GetUserHistory(r.Context(), userID, activityID)
	if err != nil {
		logger.FromContext(r.Context()).Error("Failed to get history", "error", err)
		statusCode, userMsg := mapServiceErrorToUserMessage(err)
		respondError(w, statusCode, userMsg)
		return
	}

	respondJSON(w, http.StatusOK, DataResponse{Data: chances})
}

func (h *RaffleHandler) HandleCountUnused(w http.ResponseWriter, r *http.Request) {
	userID, ok := parseUserID(w, r)
	if !ok {
		return
	}
	activityID, ok := GetInt64QueryParam(r, w, "activity_id", ErrMsgInvalidActivityID)
	if !ok {
		return
	}

	count, err := h.service.CountUnusedChances(r.Context(), userID, activityID)
	if err != nil {
		logger.FromContext(r.Context()).Error("Failed to count unused chances", "error", err)
		statusCode, userMsg := mapServiceErrorToUserMessage(err)
		respondError(w, statusCode, userMsg)
		return
	}

	respondJSON(w, http.StatusOK, map[string]int{"count": count})
}

// parseUserID pulls the user_id query parameter and parses it as a UUID
func parseUserID(w http.ResponseWriter, r *http.Request) (uuid.UUID, bool) {
	raw, ok := GetQueryParam(r, w, "user_id")
	if !ok {
		return uuid.Nil, false
	}
	userID, err := uuid.Parse(raw)
	if err != nil {
		http.Error(w, ErrMsgInvalidUserID, http.StatusBadRequest)
		return uuid.Nil, false
	}
	return userID, true
}
