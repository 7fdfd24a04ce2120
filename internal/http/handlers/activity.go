package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/mooncoven/mooncoven-backend/internal/http/response"
	"github.com/mooncoven/mooncoven-backend/internal/pkg/ctxutil"
	"github.com/mooncoven/mooncoven-backend/internal/services"
)

type ActivityHandler struct {
	cursors services.ActivityCursorService
}

func NewActivityHandler(cursors services.ActivityCursorService) *ActivityHandler {
	return &ActivityHandler{cursors: cursors}
}

type markSeenRequest struct {
	// At is optional; omitted means "now".
	At *time.Time `json:"at,omitempty"`
}

func (h *ActivityHandler) MarkSeen(c *gin.Context) {
	rd := ctxutil.GetRequestData(c.Request.Context())
	if rd == nil || rd.UserID == uuid.Nil {
		response.RespondError(c, http.StatusUnauthorized, "unauthorized", nil)
		return
	}
	var req markSeenRequest
	if c.Request.ContentLength > 0 {
		if err := c.ShouldBindJSON(&req); err != nil {
			response.RespondError(c, http.StatusBadRequest, "invalid_body", err)
			return
		}
	}
	at := time.Time{}
	if req.At != nil {
		at = *req.At
	}
	cursor, err := h.cursors.Advance(c.Request.Context(), rd.UserID, at)
	if err != nil {
		response.RespondServiceError(c, err)
		return
	}
	response.RespondOK(c, gin.H{"cursor": cursor})
}

func (h *ActivityHandler) GetCursor(c *gin.Context) {
	rd := ctxutil.GetRequestData(c.Request.Context())
	if rd == nil || rd.UserID == uuid.Nil {
		response.RespondError(c, http.StatusUnauthorized, "unauthorized", nil)
		return
	}
	cursor, err := h.cursors.Get(c.Request.Context(), rd.UserID)
	if err != nil {
		response.RespondServiceError(c, err)
		return
	}
	response.RespondOK(c, gin.H{"cursor": cursor})
}
