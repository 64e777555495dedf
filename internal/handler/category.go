package handler

import (
	"net/http"
	"strings"

	"github.com/AlinaKhan14/DLBCSPJWD01-XpenseMate/internal/models"
	"github.com/AlinaKhan14/DLBCSPJWD01-XpenseMate/internal/store"
	"github.com/AlinaKhan14/DLBCSPJWD01-XpenseMate/internal/util"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// CategoryHandler serves the shared category list.
type CategoryHandler struct {
	Store *store.Store
}

func NewCategoryHandler(st *store.Store) *CategoryHandler {
	return &CategoryHandler{Store: st}
}

func (h *CategoryHandler) List(c *gin.Context) {
	if _, ok := currentUser(c); !ok {
		return
	}

	cats, err := h.Store.Categories(c.Request.Context())
	if err != nil {
		fail(c, err, "categories")
		return
	}
	util.Success(c, util.Response{"categories": cats})
}

type categoryReq struct {
	Name string `json:"name" binding:"required,max=64"`
	Type string `json:"type" binding:"max=32"`
}

func (h *CategoryHandler) Create(c *gin.Context) {
	if _, ok := currentUser(c); !ok {
		return
	}

	var req categoryReq
	if err := c.ShouldBindJSON(&req); err != nil {
		util.Error(c, http.StatusBadRequest, util.CodeInvalidParam, "invalid request body")
		return
	}
	req.Name = strings.TrimSpace(req.Name)
	if req.Name == "" {
		util.Error(c, http.StatusBadRequest, util.CodeInvalidParam, "name is required")
		return
	}

	cat := models.Category{
		ID:   uuid.NewString(),
		Name: req.Name,
		Type: req.Type,
	}
	if err := h.Store.CreateCategory(c.Request.Context(), &cat); err != nil {
		// The unique index makes duplicates a client error.
		if strings.Contains(err.Error(), "UNIQUE") {
			util.Error(c, http.StatusBadRequest, util.CodeInvalidParam, "category already exists")
			return
		}
		fail(c, err, "category")
		return
	}
	util.Created(c, util.Response{"category": cat})
}
