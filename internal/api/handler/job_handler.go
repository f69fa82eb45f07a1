package handler

import (
	"Pulse/internal/pkg/response"
	"Pulse/internal/service"
	"strconv"

	"github.com/gin-gonic/gin"
)

type JobHandler struct {
	jobSvc service.JobService
}

func NewJobHandler(jobSvc service.JobService) *JobHandler {
	return &JobHandler{jobSvc: jobSvc}
}

// TriggerJob 手动触发一次任务，和调度触发走同一互斥入口
func (s *JobHandler) TriggerJob(c *gin.Context) {
	name := c.Param("name")

	result, err := s.jobSvc.Trigger(c.Request.Context(), name)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, result)
}

// GetJobHistory 任务执行历史
func (s *JobHandler) GetJobHistory(c *gin.Context) {
	name := c.Param("name")

	limit, err := strconv.ParseInt(c.DefaultQuery("limit", "20"), 10, 64)
	if err != nil || limit < 0 {
		response.Error(c, service.ErrParamInvalid)
		return
	}

	history, err := s.jobSvc.History(c.Request.Context(), name, limit)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, history)
}
