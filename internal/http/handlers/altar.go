package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/mooncoven/mooncoven-backend/internal/http/response"
	"github.com/mooncoven/mooncoven-backend/internal/pkg/ctxutil"
	"github.com/mooncoven/mooncoven-backend/internal/services"
)

type AltarHandler struct {
	altar services.AltarService
}

func NewAltarHandler(altar services.AltarService) *AltarHandler {
	return &AltarHandler{altar: altar}
}

type lightRequest struct {
	Variant string `json:"variant"`
	Slot    string `json:"slot,omitempty"`
	PosX    int    `json:"pos_x,omitempty"`
	PosY    int    `json:"pos_y,omitempty"`
}

func (h *AltarHandler) Light(c *gin.Context) {
	rd := ctxutil.GetRequestData(c.Request.Context())
	if rd == nil || rd.UserID == uuid.Nil {
		response.RespondError(c, http.StatusUnauthorized, "unauthorized", nil)
		return
	}
	var req lightRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.RespondError(c, http.StatusBadRequest, "invalid_body", err)
		return
	}
	candle, err := h.altar.Light(c.Request.Context(), rd.UserID, services.LightRequest{
		Variant: req.Variant,
		Slot:    req.Slot,
		PosX:    req.PosX,
		PosY:    req.PosY,
	})
	if err != nil {
		response.RespondServiceError(c, err)
		return
	}
	response.RespondOK(c, gin.H{"candle": candle})
}

func (h *AltarHandler) ListActive(c *gin.Context) {
	rd := ctxutil.GetRequestData(c.Request.Context())
	if rd == nil || rd.UserID == uuid.Nil {
		response.RespondError(c, http.StatusUnauthorized, "unauthorized", nil)
		return
	}
	candles, err := h.altar.ListActive(c.Request.Context(), rd.UserID)
	if err != nil {
		response.RespondServiceError(c, err)
		return
	}
	response.RespondOK(c, gin.H{"candles": candles})
}
