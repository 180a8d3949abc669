package server

import (
	"net/http"

	authdomain "github.com/classhive/classhive/internal/auth/domain"
	"github.com/gin-gonic/gin"
)

type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=6"`
}

type RegisterSchoolRequest struct {
	SchoolName string `json:"schoolName" binding:"required,min=3"`
	Slug       string `json:"slug" binding:"required,min=3"`
	AdminName  string `json:"adminName" binding:"required,min=2"`
	Email      string `json:"email" binding:"required,email"`
	Password   string `json:"password" binding:"required,min=8"`
}

func (s *Server) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		AbortWithError(c, bindError(err))
		return
	}

	session, err := s.auth.Login(c.Request.Context(), authdomain.LoginRequest{
		Email:    req.Email,
		Password: req.Password,
	})
	if err != nil {
		AbortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, session)
}

func (s *Server) RegisterSchool(c *gin.Context) {
	var req RegisterSchoolRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		AbortWithError(c, bindError(err))
		return
	}

	result, err := s.auth.RegisterSchool(c.Request.Context(), authdomain.RegisterSchoolRequest{
		SchoolName: req.SchoolName,
		Slug:       req.Slug,
		AdminName:  req.AdminName,
		Email:      req.Email,
		Password:   req.Password,
	})
	if err != nil {
		AbortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, result)
}

func (s *Server) Me(c *gin.Context) {
	session, err := s.auth.Me(c.Request.Context(), c.Request.Header)
	if err != nil {
		AbortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, session)
}
