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
	ErrParamInvalid          = errors.New("参数错误")
	ErrPostNotFound          = errors.New("帖子不存在")
	ErrStatusInvalid         = errors.New("帖子状态无效")
	ErrScheduledDateRequired = errors.New("定时发布必须填写发布时间")
	ErrScheduledDateInvalid  = errors.New("发布时间格式错误")
	ErrFileNotSupported      = errors.New("不支持的文件类型")
	UnExpectedError          = errors.New("系统异常，请稍后重试")
)

var ErrorMap = map[error]int{
	ErrParamInvalid:          BadRequest,
	ErrPostNotFound:          NotFound,
	ErrStatusInvalid:         BadRequest,
	ErrScheduledDateRequired: BadRequest,
	ErrScheduledDateInvalid:  BadRequest,
	ErrFileNotSupported:      BadRequest,
	UnExpectedError:          InternalServerError,
}
