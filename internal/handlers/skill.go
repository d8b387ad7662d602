package handlers

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"

	"skillswap-backend/internal/api"
	"skillswap-backend/internal/middleware"
	"skillswap-backend/internal/models"
)

// SkillHandler handles skill list requests.
type SkillHandler struct {
	skillsAPI *api.SkillsAPI
}

// NewSkillHandler creates a new skill handler
func NewSkillHandler(skillsAPI *api.SkillsAPI) *SkillHandler {
	return &SkillHandler{skillsAPI: skillsAPI}
}

// GetByUser handles GET /api/v1/users/{user_id}/skills
func (h *SkillHandler) GetByUser(w http.ResponseWriter, r *http.Request) {
	userID, err := strconv.ParseInt(chi.URLParam(r, "user_id"), 10, 64)
	if err != nil {
		respondError(w, "Invalid user id", http.StatusBadRequest)
		return
	}

	skills, err := h.skillsAPI.GetByUser(r.Context(), userID)
	if err != nil {
		respondFacadeError(w, err)
		return
	}
	if skills == nil {
		skills = []models.Skill{}
	}

	respondJSON(w, http.StatusOK, skills)
}

// Create handles POST /api/v1/skills. Skills can only be added to the
// caller's own list.
func (h *SkillHandler) Create(w http.ResponseWriter, r *http.Request) {
	identity, _ := middleware.GetIdentity(r.Context())

	var skill models.Skill
	if err := json.NewDecoder(r.Body).Decode(&skill); err != nil {
		respondError(w, "Invalid request body", http.StatusBadRequest)
		return
	}
	if skill.UserID == 0 {
		skill.UserID = identity.ID
	}
	if skill.UserID != identity.ID && !identity.IsAdmin {
		respondError(w, "Cannot add skills for another user", http.StatusForbidden)
		return
	}

	created, err := h.skillsAPI.Create(r.Context(), skill)
	if err != nil {
		log.Error().Err(err).Int64("user_id", skill.UserID).Msg("Skill creation failed")
		respondFacadeError(w, err)
		return
	}

	respondJSON(w, http.StatusCreated, created)
}

// Delete handles DELETE /api/v1/skills/{skill_id}. Deleting an absent id
// succeeds with no effect.
func (h *SkillHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(chi.URLParam(r, "skill_id"), 10, 64)
	if err != nil {
		respondError(w, "Invalid skill id", http.StatusBadRequest)
		return
	}

	if err := h.skillsAPI.Delete(r.Context(), id); err != nil {
		respondFacadeError(w, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
