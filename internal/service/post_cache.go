package service

import (
	"CafeX/internal/api/dto"
	"context"
	"sync"
)

// StatusAll 管理端列表的全量筛选值
const StatusAll = "all"

// PostCache 管理端持有的帖子集合，写操作成功后原地维护，
// 避免每次变更都回源全量拉取。显式构造、显式注入，不做跨进程同步
type PostCache struct {
	postSvc PostService

	mu     sync.RWMutex
	posts  []*dto.PostDTO
	loaded bool
}

func NewPostCache(postSvc PostService) *PostCache {
	return &PostCache{
		postSvc: postSvc,
	}
}

// Refresh 全量回源重建集合
func (s *PostCache) Refresh(ctx context.Context) error {
	posts, err := s.postSvc.ListAll(ctx)
	if err != nil {
		return err
	}

	s.mu.Lock()
	s.posts = posts
	s.loaded = true
	s.mu.Unlock()
	return nil
}

// ListByStatus 对持有集合的纯过滤，"all" 返回全量。
// 首次访问时懒加载一次
func (s *PostCache) ListByStatus(ctx context.Context, status string) ([]*dto.PostDTO, error) {
	if err := s.ensureLoaded(ctx); err != nil {
		return nil, err
	}

	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]*dto.PostDTO, 0, len(s.posts))
	for _, post := range s.posts {
		if status == StatusAll || post.Status == status {
			out = append(out, post)
		}
	}
	return out, nil
}

// CreatePost 成功后把新实体插到集合头部
func (s *PostCache) CreatePost(ctx context.Context, postDTO *dto.PostBaseDTO) (*dto.PostDTO, error) {
	if err := s.ensureLoaded(ctx); err != nil {
		return nil, err
	}

	saved, err := s.postSvc.CreatePost(ctx, postDTO)
	if err != nil {
		return nil, err
	}

	s.mu.Lock()
	s.posts = append([]*dto.PostDTO{saved}, s.posts...)
	s.mu.Unlock()
	return saved, nil
}

// UpdatePost 成功后按 ID 原地替换，保持原有顺序
func (s *PostCache) UpdatePost(ctx context.Context, id string, changes *dto.PostUpdateDTO) (*dto.PostDTO, error) {
	if err := s.ensureLoaded(ctx); err != nil {
		return nil, err
	}

	updated, err := s.postSvc.UpdatePost(ctx, id, changes)
	if err != nil {
		return nil, err
	}

	s.mu.Lock()
	for i, post := range s.posts {
		if post.ID == id {
			s.posts[i] = updated
			break
		}
	}
	s.mu.Unlock()
	return updated, nil
}

// DeletePost 成功后从集合移除
func (s *PostCache) DeletePost(ctx context.Context, id string) error {
	if err := s.ensureLoaded(ctx); err != nil {
		return err
	}

	if err := s.postSvc.DeletePost(ctx, id); err != nil {
		return err
	}

	s.mu.Lock()
	for i, post := range s.posts {
		if post.ID == id {
			s.posts = append(s.posts[:i], s.posts[i+1:]...)
			break
		}
	}
	s.mu.Unlock()
	return nil
}

func (s *PostCache) ensureLoaded(ctx context.Context) error {
	s.mu.RLock()
	loaded := s.loaded
	s.mu.RUnlock()

	if loaded {
		return nil
	}
	return s.Refresh(ctx)
}
