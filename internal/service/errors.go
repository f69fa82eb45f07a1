package service

import (
	"errors"
)

const (
	BadRequest          = 400
	Unauthorized        = 401
	NotFound            = 404
	InternalServerError = 500
)

var (
	ErrParamInvalid    = errors.New("参数错误")
	ErrPostNotFound    = errors.New("帖子不存在")
	ErrScoreNotFound   = errors.New("分数尚未计算")
	ErrJobNotFound     = errors.New("任务不存在")
	ErrFeedViewInvalid = errors.New("不支持的流视角")
	UnauthorizedError  = errors.New("权限不足")
	UnExpectedError    = errors.New("系统异常，请稍后重试")
)

var ErrorMap = map[error]int{
	ErrParamInvalid:    BadRequest,
	ErrPostNotFound:    NotFound,
	ErrScoreNotFound:   NotFound,
	ErrJobNotFound:     NotFound,
	ErrFeedViewInvalid: BadRequest,
	UnauthorizedError:  Unauthorized,
	UnExpectedError:    InternalServerError,
}
