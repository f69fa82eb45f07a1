package handler

import (
	"Pulse/internal/model"
	"Pulse/internal/pkg/response"
	"Pulse/internal/pkg/util"
	"Pulse/internal/service"
	"strconv"

	"github.com/gin-gonic/gin"
)

type ScoreHandler struct {
	scoreSvc service.ScoreService
}

func NewScoreHandler(scoreSvc service.ScoreService) *ScoreHandler {
	return &ScoreHandler{scoreSvc: scoreSvc}
}

// GetScore 查询单帖分数明细，带 Token 时叠加个性化加分
func (s *ScoreHandler) GetScore(c *gin.Context) {
	postID := util.StrToUint64(c.Param("post_id"))
	if postID == 0 {
		response.Error(c, service.ErrParamInvalid)
		return
	}
	viewerID := c.GetUint64("user_id")

	score, err := s.scoreSvc.GetScore(c.Request.Context(), postID, viewerID)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, score)
}

// GetFeed 按视角返回内容流
func (s *ScoreHandler) GetFeed(c *gin.Context) {
	view, err := model.ParseFeedView(c.Query("view"))
	if err != nil {
		response.Error(c, service.ErrFeedViewInvalid)
		return
	}

	limit, err := strconv.Atoi(c.DefaultQuery("limit", "20"))
	if err != nil || limit <= 0 || limit > 100 {
		response.Error(c, service.ErrParamInvalid)
		return
	}
	viewerID := c.GetUint64("user_id")

	feed, err := s.scoreSvc.GetFeed(c.Request.Context(), view, viewerID, limit)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, feed)
}
