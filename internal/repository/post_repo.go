package repository

import (
	"CafeX/internal/api/dto"
	"CafeX/internal/model"
	"CafeX/internal/pkg/consts"
	"context"
	"time"

	"github.com/pkg/errors"
	"gorm.io/gorm"
)

type PostRepo interface {
	ListPublic(ctx context.Context) ([]*dto.PostDTO, error)
	ListFeatured(ctx context.Context) ([]*dto.PostDTO, error)
	ListByStatus(ctx context.Context, status string) ([]*dto.PostDTO, error)
	ListAll(ctx context.Context) ([]*dto.PostDTO, error)
	ListDue(ctx context.Context, now time.Time) ([]*dto.PostDTO, error)
	GetPost(ctx context.Context, id string) (*dto.PostDTO, error)
	CreatePost(ctx context.Context, entity *dto.PostDTO) (*dto.PostDTO, error)
	UpdatePost(ctx context.Context, id string, changes *dto.PostUpdateDTO) (*dto.PostDTO, error)
	DeletePost(ctx context.Context, id string) error
}

type PostRepoImpl struct {
	db     *gorm.DB
	mapper *PostMapper
}

func NewPostRepository(db *gorm.DB, mapper *PostMapper) PostRepo {
	return &PostRepoImpl{
		db:     db,
		mapper: mapper,
	}
}

// ListPublic 公开列表：上架且已发布，最新在前
func (s *PostRepoImpl) ListPublic(ctx context.Context) ([]*dto.PostDTO, error) {
	var rows []*model.Post
	err := s.db.WithContext(ctx).
		Where("active = ? AND status = ?", true, consts.PostStatusPublished).
		Order("created_at DESC").
		Find(&rows).Error
	if err != nil {
		return nil, errors.Wrap(err, "fetch public posts failed")
	}
	return s.batchToEntity(rows), nil
}

// ListFeatured 首页轮播：公开列表再过滤 featured
func (s *PostRepoImpl) ListFeatured(ctx context.Context) ([]*dto.PostDTO, error) {
	var rows []*model.Post
	err := s.db.WithContext(ctx).
		Where("active = ? AND status = ? AND featured = ?", true, consts.PostStatusPublished, true).
		Order("created_at DESC").
		Find(&rows).Error
	if err != nil {
		return nil, errors.Wrap(err, "fetch featured posts failed")
	}
	return s.batchToEntity(rows), nil
}

// ListByStatus 管理端按状态查询，不限制 active
func (s *PostRepoImpl) ListByStatus(ctx context.Context, status string) ([]*dto.PostDTO, error) {
	var rows []*model.Post
	err := s.db.WithContext(ctx).
		Where("status = ?", status).
		Order("created_at DESC").
		Find(&rows).Error
	if err != nil {
		return nil, errors.Wrap(err, "fetch posts by status failed")
	}
	return s.batchToEntity(rows), nil
}

func (s *PostRepoImpl) ListAll(ctx context.Context) ([]*dto.PostDTO, error) {
	var rows []*model.Post
	err := s.db.WithContext(ctx).
		Order("created_at DESC").
		Find(&rows).Error
	if err != nil {
		return nil, errors.Wrap(err, "fetch all posts failed")
	}
	return s.batchToEntity(rows), nil
}

// ListDue 到期待发布的帖子，按计划时间升序
func (s *PostRepoImpl) ListDue(ctx context.Context, now time.Time) ([]*dto.PostDTO, error) {
	var rows []*model.Post
	err := s.db.WithContext(ctx).
		Where("status = ? AND active = ? AND scheduled_date <= ?", consts.PostStatusScheduled, true, now).
		Order("scheduled_date ASC").
		Find(&rows).Error
	if err != nil {
		return nil, errors.Wrap(err, "fetch due posts failed")
	}
	return s.batchToEntity(rows), nil
}

// GetPost 按 ID 查询，不存在时返回 nil 而不是错误
func (s *PostRepoImpl) GetPost(ctx context.Context, id string) (*dto.PostDTO, error) {
	var row model.Post
	err := s.db.WithContext(ctx).First(&row, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, errors.Wrap(err, "fetch post failed")
	}
	return s.mapper.ToEntity(&row), nil
}

func (s *PostRepoImpl) CreatePost(ctx context.Context, entity *dto.PostDTO) (*dto.PostDTO, error) {
	row := s.mapper.ToModel(entity)
	if err := s.db.WithContext(ctx).Create(row).Error; err != nil {
		return nil, errors.Wrap(err, "insert post failed")
	}

	// 回读一次，带回服务端赋值的时间戳
	var saved model.Post
	if err := s.db.WithContext(ctx).First(&saved, "id = ?", row.ID).Error; err != nil {
		return nil, errors.Wrap(err, "reload created post failed")
	}
	return s.mapper.ToEntity(&saved), nil
}

// UpdatePost 部分更新：只下发请求中出现的列，返回合并后的完整实体
func (s *PostRepoImpl) UpdatePost(ctx context.Context, id string, changes *dto.PostUpdateDTO) (*dto.PostDTO, error) {
	cols := s.mapper.UpdateColumns(changes)
	if len(cols) > 0 {
		err := s.db.WithContext(ctx).
			Model(&model.Post{}).
			Where("id = ?", id).
			Updates(cols).Error
		if err != nil {
			return nil, errors.Wrap(err, "update post failed")
		}
	}

	var saved model.Post
	if err := s.db.WithContext(ctx).First(&saved, "id = ?", id).Error; err != nil {
		return nil, errors.Wrap(err, "reload updated post failed")
	}
	return s.mapper.ToEntity(&saved), nil
}

// DeletePost 删除行记录本身，关联的桶内资源由调用方自行清理
func (s *PostRepoImpl) DeletePost(ctx context.Context, id string) error {
	err := s.db.WithContext(ctx).Delete(&model.Post{}, "id = ?", id).Error
	if err != nil {
		return errors.Wrap(err, "delete post failed")
	}
	return nil
}

func (s *PostRepoImpl) batchToEntity(rows []*model.Post) []*dto.PostDTO {
	out := make([]*dto.PostDTO, len(rows))
	for i, row := range rows {
		out[i] = s.mapper.ToEntity(row)
	}
	return out
}
