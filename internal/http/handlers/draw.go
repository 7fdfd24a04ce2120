package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/mooncoven/mooncoven-backend/internal/http/response"
	"github.com/mooncoven/mooncoven-backend/internal/pkg/ctxutil"
	"github.com/mooncoven/mooncoven-backend/internal/services"
)

type DrawHandler struct {
	draws services.DailyDrawService
}

func NewDrawHandler(draws services.DailyDrawService) *DrawHandler {
	return &DrawHandler{draws: draws}
}

type drawRequest struct {
	Intention string `json:"intention,omitempty"`
}

// Today returns the user's draw for the current UTC day, generating it on
// the first call. Calling it again the same day returns the same cards.
func (h *DrawHandler) Today(c *gin.Context) {
	rd := ctxutil.GetRequestData(c.Request.Context())
	if rd == nil || rd.UserID == uuid.Nil {
		response.RespondError(c, http.StatusUnauthorized, "unauthorized", nil)
		return
	}
	var req drawRequest
	if c.Request.ContentLength > 0 {
		if err := c.ShouldBindJSON(&req); err != nil {
			response.RespondError(c, http.StatusBadRequest, "invalid_body", err)
			return
		}
	}
	draw, isNew, err := h.draws.GetOrCreate(c.Request.Context(), rd.UserID, req.Intention)
	if err != nil {
		response.RespondServiceError(c, err)
		return
	}
	response.RespondOK(c, gin.H{"draw": draw, "is_new": isNew})
}

func (h *DrawHandler) GetToday(c *gin.Context) {
	rd := ctxutil.GetRequestData(c.Request.Context())
	if rd == nil || rd.UserID == uuid.Nil {
		response.RespondError(c, http.StatusUnauthorized, "unauthorized", nil)
		return
	}
	draw, err := h.draws.GetToday(c.Request.Context(), rd.UserID)
	if err != nil {
		response.RespondServiceError(c, err)
		return
	}
	response.RespondOK(c, gin.H{"draw": draw})
}

func (h *DrawHandler) History(c *gin.Context) {
	rd := ctxutil.GetRequestData(c.Request.Context())
	if rd == nil || rd.UserID == uuid.Nil {
		response.RespondError(c, http.StatusUnauthorized, "unauthorized", nil)
		return
	}
	draws, err := h.draws.History(c.Request.Context(), rd.UserID, 30)
	if err != nil {
		response.RespondServiceError(c, err)
		return
	}
	response.RespondOK(c, gin.H{"draws": draws})
}
