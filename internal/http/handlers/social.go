package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/mooncoven/mooncoven-backend/internal/http/response"
	"github.com/mooncoven/mooncoven-backend/internal/pkg/ctxutil"
	"github.com/mooncoven/mooncoven-backend/internal/services"
)

type SocialHandler struct {
	toggles services.ToggleService
}

func NewSocialHandler(toggles services.ToggleService) *SocialHandler {
	return &SocialHandler{toggles: toggles}
}

type toggleRequest struct {
	Kind         string `json:"kind"`
	TargetID     string `json:"target_id"`
	CurrentlySet bool   `json:"currently_set"`
}

func (h *SocialHandler) Toggle(c *gin.Context) {
	rd := ctxutil.GetRequestData(c.Request.Context())
	if rd == nil || rd.UserID == uuid.Nil {
		response.RespondError(c, http.StatusUnauthorized, "unauthorized", nil)
		return
	}
	var req toggleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.RespondError(c, http.StatusBadRequest, "invalid_body", err)
		return
	}
	targetID, err := uuid.Parse(req.TargetID)
	if err != nil {
		response.RespondError(c, http.StatusBadRequest, "invalid_target", err)
		return
	}
	newState, err := h.toggles.Toggle(c.Request.Context(), services.RelationKind(req.Kind), rd.UserID, targetID, req.CurrentlySet)
	if err != nil {
		response.RespondServiceError(c, err)
		return
	}
	response.RespondOK(c, gin.H{"set": newState})
}

func (h *SocialHandler) IsSet(c *gin.Context) {
	rd := ctxutil.GetRequestData(c.Request.Context())
	if rd == nil || rd.UserID == uuid.Nil {
		response.RespondError(c, http.StatusUnauthorized, "unauthorized", nil)
		return
	}
	targetID, err := uuid.Parse(c.Param("target"))
	if err != nil {
		response.RespondError(c, http.StatusBadRequest, "invalid_target", err)
		return
	}
	set, err := h.toggles.IsSet(c.Request.Context(), services.RelationKind(c.Param("kind")), rd.UserID, targetID)
	if err != nil {
		response.RespondServiceError(c, err)
		return
	}
	response.RespondOK(c, gin.H{"set": set})
}
