package handler

import (
	"CafeX/internal/api/dto"
	"CafeX/internal/pkg/consts"
	"CafeX/internal/pkg/response"
	"CafeX/internal/pkg/util"
	"CafeX/internal/service"
	log "log/slog"
	"strings"

	"github.com/gin-gonic/gin"
)

type MediaHandler struct {
	postSvc service.PostService
}

func NewMediaHandler(postSvc service.PostService) *MediaHandler {
	return &MediaHandler{
		postSvc: postSvc,
	}
}

// Upload 上传帖子图片，只接受 image/* 类型。
// 返回桶内路径，展示地址由读路径解析
func (s *MediaHandler) Upload(c *gin.Context) {
	file, err := c.FormFile("file")
	if err != nil {
		response.Error(c, service.ErrParamInvalid)
		return
	}

	reader, err := file.Open()
	if err != nil {
		response.Error(c, service.ErrParamInvalid)
		return
	}
	defer func() { _ = reader.Close() }()

	contentType, err := util.GetSafeContentType(reader)
	if err != nil || !strings.HasPrefix(contentType, consts.MimePrefixImage) {
		response.Error(c, service.ErrFileNotSupported)
		return
	}

	postID := c.PostForm("post_id")
	fileKey, err := s.postSvc.UploadImage(c.Request.Context(), reader, file.Size, file.Filename, contentType, postID)
	if err != nil {
		log.ErrorContext(c.Request.Context(), "MinIO upload failed", "err", err)
		response.Error(c, service.UnExpectedError)
		return
	}

	log.InfoContext(c.Request.Context(), "media upload success", "fileKey", fileKey, "type", contentType)
	response.Success(c, dto.MediaUploadDTO{
		Path:     fileKey,
		Size:     file.Size,
		Original: file.Filename,
		Mime:     contentType,
	})
}

// Delete 按桶内路径删除一个已上传的图片
func (s *MediaHandler) Delete(c *gin.Context) {
	objectPath := c.Query("path")
	if objectPath == "" {
		response.Error(c, service.ErrParamInvalid)
		return
	}

	if err := s.postSvc.DeleteImage(c.Request.Context(), objectPath); err != nil {
		log.ErrorContext(c.Request.Context(), "MinIO delete failed", "path", objectPath, "err", err)
		response.Error(c, service.UnExpectedError)
		return
	}

	response.Success(c, nil)
}
