package api

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/ogrande/tower-cards/internal/catalog"
	"github.com/ogrande/tower-cards/internal/constants"
	"github.com/ogrande/tower-cards/internal/game"
	"github.com/ogrande/tower-cards/internal/inventory"
	"github.com/ogrande/tower-cards/internal/service"
)

// ListTemplates returns the full card catalog.
func (h *Handler) ListTemplates(c *gin.Context) {
	c.JSON(http.StatusOK, catalog.Templates())
}

// GetProfile returns the player summary.
func (h *Handler) GetProfile(c *gin.Context) {
	id, ok := playerID(c)
	if !ok {
		return
	}
	c.JSON(http.StatusOK, h.svc.Profile(id))
}

// ListCards returns the inventory in ranked order; positions here are the
// 1-based indexes the select and enhance commands accept.
func (h *Handler) ListCards(c *gin.Context) {
	id, ok := playerID(c)
	if !ok {
		return
	}
	c.JSON(http.StatusOK, h.svc.RankedCards(id))
}

// Drop mints a new card for the player.
func (h *Handler) Drop(c *gin.Context) {
	id, ok := playerID(c)
	if !ok {
		return
	}
	card, err := h.svc.Drop(id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, card)
}

// Battle resolves a battle on the player's current floor.
func (h *Handler) Battle(c *gin.Context) {
	id, ok := playerID(c)
	if !ok {
		return
	}
	report, err := h.svc.Battle(id, nil)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, report)
}

type selectRequest struct {
	Index int `json:"index"`
}

// SelectCard binds the battle selection by ranked index.
func (h *Handler) SelectCard(c *gin.Context) {
	id, ok := playerID(c)
	if !ok {
		return
	}
	var req selectRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{constants.JSONKeyError: constants.ErrInvalidRequest})
		return
	}
	card, err := h.svc.SelectCard(id, req.Index)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, card)
}

type enhanceRequest struct {
	TargetID    int64  `json:"target_id"`
	TargetIndex int    `json:"target_index"`
	Rarity      string `json:"rarity"`
	Name        string `json:"name"`
	Count       int    `json:"count"`
}

// Enhance sacrifices matching cards into a target card.
func (h *Handler) Enhance(c *gin.Context) {
	id, ok := playerID(c)
	if !ok {
		return
	}
	var req enhanceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{constants.JSONKeyError: constants.ErrInvalidRequest})
		return
	}
	result, err := h.svc.Enhance(id,
		service.TargetRef{ID: req.TargetID, Index: req.TargetIndex},
		inventory.Filter{Rarity: game.Rarity(req.Rarity), Name: req.Name},
		req.Count)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, result)
}

// GetFloor reports the player's floor state.
func (h *Handler) GetFloor(c *gin.Context) {
	id, ok := playerID(c)
	if !ok {
		return
	}
	c.JSON(http.StatusOK, h.svc.Floor(id))
}

// NextFloor climbs one floor when the next one is unlocked.
func (h *Handler) NextFloor(c *gin.Context) {
	id, ok := playerID(c)
	if !ok {
		return
	}
	info, err := h.svc.FloorNext(id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, info)
}

type setFloorRequest struct {
	Floor int `json:"floor"`
}

// SetFloor jumps to an already unlocked floor. Accepts the floor either in
// the JSON body or as a query parameter for convenience.
func (h *Handler) SetFloor(c *gin.Context) {
	id, ok := playerID(c)
	if !ok {
		return
	}
	var req setFloorRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		if q := c.Query("floor"); q != "" {
			n, convErr := strconv.Atoi(q)
			if convErr != nil {
				c.JSON(http.StatusBadRequest, gin.H{constants.JSONKeyError: constants.ErrInvalidRequest})
				return
			}
			req.Floor = n
		} else {
			c.JSON(http.StatusBadRequest, gin.H{constants.JSONKeyError: constants.ErrInvalidRequest})
			return
		}
	}
	info, err := h.svc.FloorSet(id, req.Floor)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, info)
}

// Hourly claims the hourly stipend.
func (h *Handler) Hourly(c *gin.Context) {
	id, ok := playerID(c)
	if !ok {
		return
	}
	result, err := h.svc.Hourly(id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, result)
}

// Farm claims the farm stipend.
func (h *Handler) Farm(c *gin.Context) {
	id, ok := playerID(c)
	if !ok {
		return
	}
	result, err := h.svc.Farm(id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, result)
}
