package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/BruksfildServices01/therapy-scheduler/internal/httperr"
	"github.com/BruksfildServices01/therapy-scheduler/internal/middleware"
	"github.com/BruksfildServices01/therapy-scheduler/internal/models"
)

type MeHandler struct {
	db *gorm.DB
}

func NewMeHandler(db *gorm.DB) *MeHandler {
	return &MeHandler{db: db}
}

// GetMe returns the local profile of the token's subject. Accounts live in
// the identity provider; a subject with no local row still gets its claims.
func (h *MeHandler) GetMe(c *gin.Context) {
	identity := middleware.CurrentIdentity(c)

	var user models.User
	err := h.db.WithContext(c.Request.Context()).First(&user, "id = ?", identity.ID).Error
	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		httperr.FromError(c, httperr.ErrRepository("get user", err))
		return
	}

	if err != nil {
		c.JSON(http.StatusOK, gin.H{
			"user": gin.H{
				"id":   identity.ID,
				"role": identity.Role,
			},
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"user": gin.H{
			"id":    user.ID,
			"name":  user.Name,
			"email": user.Email,
			"role":  identity.Role,
		},
	})
}
