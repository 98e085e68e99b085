package handler

import (
	"net/http"
	"strconv"

	"github.com/tourze/raffle-core/internal/domain"
	"github.com/tourze/raffle-core/internal/logger"
	"github.com/tourze/raffle-core/internal/prizeorder"
)

type PrizeOrderHandler struct {
	service prizeorder.Service
}

func NewPrizeOrderHandler(service prizeorder.Service) *PrizeOrderHandler {
	return &PrizeOrderHandler{service: service}
}

func (h *PrizeOrderHandler) HandleGetPending(w http.ResponseWriter, r *http.Request) {
	userID, ok := parseUserID(w, r)
	if !ok {
		return
	}

	chances, err := h.service.GetUserPendingPrizes(r.Context(), userID)
	if err != nil {
		logger.FromContext(r.Context()).Error("Failed to list pending prizes", "error", err)
		statusCode, userMsg := mapServiceErrorToUserMessage(err)
		respondError(w, statusCode, userMsg)
		return
	}

	respondJSON(w, http.StatusOK, DataResponse{Data: chances})
}

func (h *PrizeOrderHandler) HandleGetOrdered(w http.ResponseWriter, r *http.Request) {
	userID, ok := parseUserID(w, r)
	if !ok {
		return
	}

	limitStr := GetOptionalQueryParam(r, "limit", "0")
	limit, err := strconv.Atoi(limitStr)
	if err != nil || limit < 0 {
		http.Error(w, ErrMsgInvalidLimit, http.StatusBadRequest)
		return
	}

	chances, err := h.service.GetUserOrderedPrizes(r.Context(), userID, limit)
	if err != nil {
		logger.FromContext(r.Context()).Error("Failed to list ordered prizes", "error", err)
		statusCode, userMsg := mapServiceErrorToUserMessage(err)
		respondError(w, statusCode, userMsg)
		return
	}

	respondJSON(w, http.StatusOK, DataResponse{Data: chances})
}

func (h *PrizeOrderHandler) HandleGetOrderInfo(w http.ResponseWriter, r *http.Request) {
	chanceID, ok := GetInt64QueryParam(r, w, "chance_id", ErrMsgInvalidChanceID)
	if !ok {
		return
	}

	info, err := h.service.GetPrizeOrderInfo(r.Context(), chanceID)
	if err != nil {
		logger.FromContext(r.Context()).Error("Failed to get prize order info", "error", err, "chanceID", chanceID)
		statusCode, userMsg := mapServiceErrorToUserMessage(err)
		respondError(w, statusCode, userMsg)
		return
	}

	respondJSON(w, http.StatusOK, info)
}

type ConsigneeRequest struct {
	RealName string `json:"real_name" validate:"required,max=64"`
	Phone    string `json:"phone" validate:"max=32"`
	Address  string `json:"address" validate:"required,max=255"`
}

type ClaimPrizeRequest struct {
	ChanceID  int64             `json:"chance_id" validate:"required,gt=0"`
	Consignee *ConsigneeRequest `json:"consignee_info,omitempty" validate:"omitempty"`
}

func (h *PrizeOrderHandler) HandleClaim(w http.ResponseWriter, r *http.Request) {
	var req ClaimPrizeRequest
	if err := DecodeAndValidateRequest(r, w, &req, "Claim prize"); err != nil {
		return
	}

	var consignee *domain.Consignee
	if req.Consignee != nil {
		consignee = &domain.Consignee{
			RealName: req.Consignee.RealName,
			Phone:    req.Consignee.Phone,
			Address:  req.Consignee.Address,
		}
	}

	chance, err := h.service.CreateOrder(r.Context(), req.ChanceID, consignee)
	if err != nil {
		logger.FromContext(r.Context()).Error("Failed to claim prize", "error", err, "chanceID", req.ChanceID)
		statusCode, userMsg := mapServiceErrorToUserMessage(err)
		respondError(w, statusCode, userMsg)
		return
	}

	respondJSON(w, http.StatusOK, DataResponse{Message: MsgOrderPlaced, Data: chance})
}
