package handler

import (
	"CafeX/internal/api/dto"
	"CafeX/internal/model"
	"CafeX/internal/pkg/response"
	"CafeX/internal/service"
	"context"

	"github.com/gin-gonic/gin"
)

type PostHandler struct {
	postSvc   service.PostService
	postCache *service.PostCache
}

func NewPostHandler(postSvc service.PostService, postCache *service.PostCache) *PostHandler {
	return &PostHandler{
		postSvc:   postSvc,
		postCache: postCache,
	}
}

// ListPublic 官网公开列表
func (s *PostHandler) ListPublic(c *gin.Context) {
	posts, err := s.postSvc.ListPublic(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, posts)
}

// ListFeatured 首页轮播列表
func (s *PostHandler) ListFeatured(c *gin.Context) {
	posts, err := s.postSvc.ListFeatured(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, posts)
}

// ListAdmin 管理端列表，status 缺省为 all，走本地缓存集合
func (s *PostHandler) ListAdmin(c *gin.Context) {
	status := c.DefaultQuery("status", service.StatusAll)

	posts, err := s.postCache.ListByStatus(c.Request.Context(), status)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, posts)
}

func (s *PostHandler) GetPost(c *gin.Context) {
	post, err := s.postSvc.GetPost(c.Request.Context(), c.Param("post_id"))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, post)
}

func (s *PostHandler) CreatePost(c *gin.Context) {
	var req dto.PostBaseDTO
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, err)
		return
	}

	post, err := s.postCache.CreatePost(c.Request.Context(), &req)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, post)
}

func (s *PostHandler) UpdatePost(c *gin.Context) {
	var req dto.PostUpdateDTO
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, err)
		return
	}

	post, err := s.postCache.UpdatePost(c.Request.Context(), c.Param("post_id"), &req)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, post)
}

// DeletePost 删除帖子。行记录的删除不级联清理桶内图片，
// 这里作为调用方先解析实体，成功删除后再异步清理
func (s *PostHandler) DeletePost(c *gin.Context) {
	postID := c.Param("post_id")

	post, err := s.postSvc.GetPost(c.Request.Context(), postID)
	if err != nil {
		response.Error(c, err)
		return
	}

	if err = s.postCache.DeletePost(c.Request.Context(), postID); err != nil {
		response.Error(c, err)
		return
	}

	if post.Image.Kind == model.ImageKindInternal {
		go func(objectPath string) {
			_ = s.postSvc.DeleteImage(context.Background(), objectPath)
		}(post.Image.Value)
	}

	response.Success(c, nil)
}

// EngagementStats 互动数据聚合
func (s *PostHandler) EngagementStats(c *gin.Context) {
	stats, err := s.postSvc.EngagementStats(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, stats)
}

// Sweep 手动触发一次定时发布巡检
func (s *PostHandler) Sweep(c *gin.Context) {
	result, err := s.postSvc.SweepScheduled(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, result)
}
