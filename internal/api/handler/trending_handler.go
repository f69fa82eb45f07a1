package handler

import (
	"Pulse/internal/pkg/response"
	"Pulse/internal/service"
	"strconv"

	"github.com/gin-gonic/gin"
)

type TrendingHandler struct {
	trendingSvc service.TrendingService
}

func NewTrendingHandler(trendingSvc service.TrendingService) *TrendingHandler {
	return &TrendingHandler{trendingSvc: trendingSvc}
}

// GetTrending 当前话题热榜
func (s *TrendingHandler) GetTrending(c *gin.Context) {
	limit, err := strconv.Atoi(c.DefaultQuery("limit", "20"))
	if err != nil || limit < 0 {
		response.Error(c, service.ErrParamInvalid)
		return
	}

	trending, err := s.trendingSvc.GetTrending(c.Request.Context(), limit)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, trending)
}
