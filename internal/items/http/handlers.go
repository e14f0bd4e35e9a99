package http

import (
	"errors"
	"fmt"
	"log"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/todo-labs/todo-backend/internal/items/domain"
	"github.com/todo-labs/todo-backend/internal/items/service"
)

const (
	defaultLimit = 10
	maxLimit     = 100
)

// Handler exposes the item operations over HTTP.
type Handler struct {
	svc *service.ItemService
}

// NewHandler creates a handler over the given service.
func NewHandler(svc *service.ItemService) *Handler {
	return &Handler{svc: svc}
}

func respondError(c *gin.Context, status int, detail string) {
	c.JSON(status, errorResponse{
		Detail:     detail,
		StatusCode: status,
		Timestamp:  time.Now().UTC(),
	})
}

// pathID parses the :id segment. Malformed ids are rejected before any
// store lookup happens.
func pathID(c *gin.Context) (uuid.UUID, bool) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		respondError(c, http.StatusUnprocessableEntity, "item id must be a valid UUID")
		return uuid.Nil, false
	}
	return id, true
}

func (h *Handler) create(c *gin.Context) {
	var req createReq
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, http.StatusUnprocessableEntity, "invalid request body")
		return
	}

	item, err := h.svc.Create(c.Request.Context(), &domain.CreateItemRequest{
		Text:   req.Text,
		IsDone: req.IsDone,
	})
	if err != nil {
		if domain.IsValidation(err) {
			respondError(c, http.StatusUnprocessableEntity, err.Error())
			return
		}
		log.Printf("create item failed: %v", err)
		respondError(c, http.StatusInternalServerError, "failed to create item")
		return
	}

	c.JSON(http.StatusCreated, item)
}

func (h *Handler) list(c *gin.Context) {
	limit, err := strconv.Atoi(c.DefaultQuery("limit", strconv.Itoa(defaultLimit)))
	if err != nil || limit < 1 || limit > maxLimit {
		respondError(c, http.StatusUnprocessableEntity, "limit must be an integer between 1 and 100")
		return
	}

	skip, err := strconv.Atoi(c.DefaultQuery("skip", "0"))
	if err != nil || skip < 0 {
		respondError(c, http.StatusUnprocessableEntity, "skip must be a non-negative integer")
		return
	}

	filter := domain.ListFilter{Limit: limit, Skip: skip}

	if raw, ok := c.GetQuery("is_done"); ok {
		isDone, err := strconv.ParseBool(raw)
		if err != nil {
			respondError(c, http.StatusUnprocessableEntity, "is_done must be a boolean")
			return
		}
		filter.IsDone = &isDone
	}

	if raw, ok := c.GetQuery("search"); ok {
		if raw == "" {
			respondError(c, http.StatusUnprocessableEntity, "search must not be empty")
			return
		}
		filter.Search = raw
	}

	items, err := h.svc.List(c.Request.Context(), filter)
	if err != nil {
		log.Printf("list items failed: %v", err)
		respondError(c, http.StatusInternalServerError, "failed to list items")
		return
	}

	c.JSON(http.StatusOK, items)
}

func (h *Handler) stats(c *gin.Context) {
	stats, err := h.svc.Stats(c.Request.Context())
	if err != nil {
		log.Printf("item stats failed: %v", err)
		respondError(c, http.StatusInternalServerError, "failed to compute stats")
		return
	}

	c.JSON(http.StatusOK, stats)
}

func (h *Handler) get(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	item, err := h.svc.Get(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, domain.ErrItemNotFound) {
			respondError(c, http.StatusNotFound, fmt.Sprintf("Item with id %s not found", id))
			return
		}
		log.Printf("get item %s failed: %v", id, err)
		respondError(c, http.StatusInternalServerError, "failed to get item")
		return
	}

	c.JSON(http.StatusOK, item)
}

func (h *Handler) update(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	var req updateReq
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, http.StatusUnprocessableEntity, "invalid request body")
		return
	}

	item, err := h.svc.Update(c.Request.Context(), id, &domain.UpdateItemRequest{
		Text:   req.Text,
		IsDone: req.IsDone,
	})
	if err != nil {
		if domain.IsValidation(err) {
			respondError(c, http.StatusUnprocessableEntity, err.Error())
			return
		}
		if errors.Is(err, domain.ErrItemNotFound) {
			respondError(c, http.StatusNotFound, fmt.Sprintf("Item with id %s not found", id))
			return
		}
		log.Printf("update item %s failed: %v", id, err)
		respondError(c, http.StatusInternalServerError, "failed to update item")
		return
	}

	c.JSON(http.StatusOK, item)
}

func (h *Handler) delete(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	if err := h.svc.Delete(c.Request.Context(), id); err != nil {
		if errors.Is(err, domain.ErrItemNotFound) {
			respondError(c, http.StatusNotFound, fmt.Sprintf("Item with id %s not found", id))
			return
		}
		log.Printf("delete item %s failed: %v", id, err)
		respondError(c, http.StatusInternalServerError, "failed to delete item")
		return
	}

	c.Status(http.StatusNoContent)
}
