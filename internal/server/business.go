package server

import (
	"net/http"

	businessdomain "github.com/billkhata/billkhata/internal/business/domain"
	"github.com/gin-gonic/gin"
)

func (s *Server) GetBusinessProfile(c *gin.Context) {
	profile, err := s.businessSvc.Get(c.Request.Context())
	if err != nil {
		AbortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, profile)
}

func (s *Server) PutBusinessProfile(c *gin.Context) {
	var profile businessdomain.Profile
	if err := c.ShouldBindJSON(&profile); err != nil {
		AbortWithError(c, newValidationError("body", "invalid_json", err.Error()))
		return
	}

	saved, err := s.businessSvc.Put(c.Request.Context(), profile)
	if err != nil {
		AbortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, saved)
}
