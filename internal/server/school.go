package server

import (
	"net/http"

	schooldomain "github.com/classhive/classhive/internal/school/domain"
	"github.com/gin-gonic/gin"
)

type CreateSchoolRequest struct {
	Name string `json:"name" binding:"required,min=3"`
	Slug string `json:"slug" binding:"required,min=3"`
}

func (s *Server) CreateSchool(c *gin.Context) {
	var req CreateSchoolRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		AbortWithError(c, bindError(err))
		return
	}

	school, err := s.schools.Create(c.Request.Context(), schooldomain.CreateSchoolRequest{
		Name: req.Name,
		Slug: req.Slug,
	})
	if err != nil {
		AbortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, school)
}

func (s *Server) GetSchool(c *gin.Context) {
	school, err := s.schools.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		AbortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, school)
}
