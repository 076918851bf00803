package api

import (
	"errors"
	"net/http"
	"strconv"

	"go-closet/internal/clothes"
	"go-closet/internal/db"

	"github.com/gin-gonic/gin"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// The same handlers back both /api/v1/clothes (public) and
// /api/v2/clothes (bearer-gated); the auth middleware on the v2 group
// is the only difference between the two paths.

type ClothingRequest struct {
	Name       string         `json:"name" binding:"required"`
	Color      string         `json:"color"`
	Size       string         `json:"size"`
	Attributes datatypes.JSON `json:"attributes"`
}

func clothingID(c *gin.Context) (uint, bool) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, errorResponse("validation_error", "Invalid id"))
		return 0, false
	}
	return uint(id), true
}

// POST /clothes
func CreateClothingHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		var req ClothingRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, errorResponse("validation_error", "Invalid request body"))
			return
		}
		item := clothes.Clothing{
			Name:       req.Name,
			Color:      req.Color,
			Size:       req.Size,
			Attributes: req.Attributes,
		}
		if err := db.DB.Create(&item).Error; err != nil {
			c.JSON(http.StatusInternalServerError, errorResponse("server_error", "Create error"))
			return
		}
		c.JSON(http.StatusCreated, item)
	}
}

// GET /clothes
func ListClothesHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		items := []clothes.Clothing{}
		if err := db.DB.Find(&items).Error; err != nil {
			c.JSON(http.StatusInternalServerError, errorResponse("server_error", "List error"))
			return
		}
		c.JSON(http.StatusOK, items)
	}
}

// GET /clothes/:id
// A missing record answers 200 with a null body, not 404.
func GetClothingHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		id, ok := clothingID(c)
		if !ok {
			return
		}
		var item clothes.Clothing
		if err := db.DB.First(&item, id).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				c.JSON(http.StatusOK, nil)
				return
			}
			c.JSON(http.StatusInternalServerError, errorResponse("server_error", "Read error"))
			return
		}
		c.JSON(http.StatusOK, item)
	}
}

// PUT /clothes/:id
func UpdateClothingHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		id, ok := clothingID(c)
		if !ok {
			return
		}
		var req ClothingRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, errorResponse("validation_error", "Invalid request body"))
			return
		}
		var item clothes.Clothing
		if err := db.DB.First(&item, id).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				c.JSON(http.StatusOK, nil)
				return
			}
			c.JSON(http.StatusInternalServerError, errorResponse("server_error", "Read error"))
			return
		}
		item.Name = req.Name
		item.Color = req.Color
		item.Size = req.Size
		item.Attributes = req.Attributes
		if err := db.DB.Save(&item).Error; err != nil {
			c.JSON(http.StatusInternalServerError, errorResponse("server_error", "Update error"))
			return
		}
		c.JSON(http.StatusOK, item)
	}
}

// DELETE /clothes/:id
func DeleteClothingHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		id, ok := clothingID(c)
		if !ok {
			return
		}
		if err := db.DB.Delete(&clothes.Clothing{}, id).Error; err != nil {
			c.JSON(http.StatusInternalServerError, errorResponse("server_error", "Delete error"))
			return
		}
		c.JSON(http.StatusOK, nil)
	}
}
