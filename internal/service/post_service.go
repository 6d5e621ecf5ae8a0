package service

import (
	"CafeX/internal/api/dto"
	"CafeX/internal/model"
	"CafeX/internal/pkg/consts"
	"CafeX/internal/pkg/redis"
	"CafeX/internal/pkg/util"
	"CafeX/internal/repository"
	"context"
	"io"
	log "log/slog"
	"math"
	"path"
	"strconv"
	"time"

	"github.com/goccy/go-json"
	"github.com/jinzhu/copier"
)

// FeedCacheTTL 公开列表的 Redis 缓存时长
const FeedCacheTTL = 60 * time.Second

type PostService interface {
	ListPublic(ctx context.Context) ([]*dto.PostDTO, error)
	ListFeatured(ctx context.Context) ([]*dto.PostDTO, error)
	ListByStatus(ctx context.Context, status string) ([]*dto.PostDTO, error)
	ListAll(ctx context.Context) ([]*dto.PostDTO, error)
	GetPost(ctx context.Context, id string) (*dto.PostDTO, error)
	CreatePost(ctx context.Context, postDTO *dto.PostBaseDTO) (*dto.PostDTO, error)
	UpdatePost(ctx context.Context, id string, changes *dto.PostUpdateDTO) (*dto.PostDTO, error)
	DeletePost(ctx context.Context, id string) error
	UploadImage(ctx context.Context, reader io.Reader, size int64, filename, contentType, postID string) (string, error)
	DeleteImage(ctx context.Context, objectPath string) error
	SweepScheduled(ctx context.Context) (*dto.SweepResultDTO, error)
	EngagementStats(ctx context.Context) (*dto.EngagementStatsDTO, error)
}

type postServiceImpl struct {
	postRepo repository.PostRepo
	storage  repository.ImageStorage
	now      func() time.Time
}

func NewPostService(postRepo repository.PostRepo, storage repository.ImageStorage) PostService {
	return &postServiceImpl{
		postRepo: postRepo,
		storage:  storage,
		now:      time.Now,
	}
}

// ListPublic 公开帖子列表，带 Redis 短缓存
func (s *postServiceImpl) ListPublic(ctx context.Context) ([]*dto.PostDTO, error) {
	if posts, ok := s.cachedFeed(ctx, consts.PostPublicFeedKey); ok {
		return posts, nil
	}

	posts, err := s.postRepo.ListPublic(ctx)
	if err != nil {
		return nil, err
	}

	s.cacheFeed(ctx, consts.PostPublicFeedKey, posts)
	return posts, nil
}

// ListFeatured 首页轮播帖子列表
func (s *postServiceImpl) ListFeatured(ctx context.Context) ([]*dto.PostDTO, error) {
	if posts, ok := s.cachedFeed(ctx, consts.PostFeaturedFeedKey); ok {
		return posts, nil
	}

	posts, err := s.postRepo.ListFeatured(ctx)
	if err != nil {
		return nil, err
	}

	s.cacheFeed(ctx, consts.PostFeaturedFeedKey, posts)
	return posts, nil
}

// ListByStatus 管理端按状态查询
func (s *postServiceImpl) ListByStatus(ctx context.Context, status string) ([]*dto.PostDTO, error) {
	switch status {
	case consts.PostStatusDraft, consts.PostStatusScheduled, consts.PostStatusPublished:
	default:
		return nil, ErrStatusInvalid
	}
	return s.postRepo.ListByStatus(ctx, status)
}

func (s *postServiceImpl) ListAll(ctx context.Context) ([]*dto.PostDTO, error) {
	return s.postRepo.ListAll(ctx)
}

func (s *postServiceImpl) GetPost(ctx context.Context, id string) (*dto.PostDTO, error) {
	post, err := s.postRepo.GetPost(ctx, id)
	if err != nil {
		return nil, err
	}
	if post == nil {
		return nil, ErrPostNotFound
	}
	return post, nil
}

// CreatePost 创建帖子。定时发布校验在这里兜底执行，不依赖表单层
func (s *postServiceImpl) CreatePost(ctx context.Context, postDTO *dto.PostBaseDTO) (*dto.PostDTO, error) {
	if err := util.ValidateDTO(postDTO); err != nil {
		return nil, ErrParamInvalid
	}

	scheduledDate, err := s.parseScheduledDate(postDTO.Status, postDTO.ScheduledDate)
	if err != nil {
		return nil, err
	}

	entity := &dto.PostDTO{}
	if err := copier.Copy(entity, postDTO); err != nil {
		return nil, err
	}
	entity.ScheduledDate = scheduledDate
	entity.Image = model.ParseImageRef(postDTO.Image)
	entity.Hashtags = util.NormalizeHashtags(postDTO.Hashtags)
	if entity.Description == "" {
		entity.Description = entity.Caption
	}
	if entity.InstagramURL == "" {
		entity.InstagramURL = consts.DefaultInstagramLink
	}

	saved, err := s.postRepo.CreatePost(ctx, entity)
	if err != nil {
		return nil, err
	}

	s.invalidateFeeds(ctx)
	return saved, nil
}

// UpdatePost 部分更新。状态转移不受限制，但进入 scheduled 必须有发布时间
func (s *postServiceImpl) UpdatePost(ctx context.Context, id string, changes *dto.PostUpdateDTO) (*dto.PostDTO, error) {
	existing, err := s.GetPost(ctx, id)
	if err != nil {
		return nil, err
	}

	effectiveStatus := existing.Status
	if changes.Status != nil {
		effectiveStatus = *changes.Status
	}

	if effectiveStatus == consts.PostStatusScheduled {
		if changes.ScheduledDate != nil {
			if _, err := s.parseScheduledDate(effectiveStatus, *changes.ScheduledDate); err != nil {
				return nil, err
			}
		} else if existing.ScheduledDate == nil {
			return nil, ErrScheduledDateRequired
		}
	}

	// 显式清空标签时回落到默认标签，与创建时的保存规则一致
	if changes.Hashtags != nil && len(*changes.Hashtags) == 0 {
		changes.Hashtags = &[]string{consts.DefaultHashtag}
	}

	updated, err := s.postRepo.UpdatePost(ctx, id, changes)
	if err != nil {
		return nil, err
	}

	s.invalidateFeeds(ctx)
	return updated, nil
}

// DeletePost 删除帖子行记录，不级联清理桶内资源
func (s *postServiceImpl) DeletePost(ctx context.Context, id string) error {
	if err := s.postRepo.DeletePost(ctx, id); err != nil {
		return err
	}
	s.invalidateFeeds(ctx)
	return nil
}

// UploadImage 对象键取帖子 ID（缺省用时间戳）加原始扩展名，允许覆盖。
// 返回桶内路径，展示地址由映射层按需解析
func (s *postServiceImpl) UploadImage(ctx context.Context, reader io.Reader, size int64, filename, contentType, postID string) (string, error) {
	base := postID
	if base == "" {
		base = strconv.FormatInt(s.now().UnixMilli(), 10)
	}
	objectName := base + path.Ext(filename)

	return s.storage.Upload(ctx, objectName, reader, size, contentType)
}

func (s *postServiceImpl) DeleteImage(ctx context.Context, objectPath string) error {
	return s.storage.Delete(ctx, objectPath)
}

// SweepScheduled 定时发布巡检：到期的 scheduled 帖子逐条转为 published。
// 单条失败不阻塞其余条目，重复调用对已发布帖子无效果
func (s *postServiceImpl) SweepScheduled(ctx context.Context) (*dto.SweepResultDTO, error) {
	candidates, err := s.postRepo.ListDue(ctx, s.now())
	if err != nil {
		return nil, err
	}

	result := &dto.SweepResultDTO{
		Published: []*dto.PostDTO{},
		Failed:    []dto.SweepFailureDTO{},
	}

	for _, candidate := range candidates {
		status := consts.PostStatusPublished
		updated, err := s.postRepo.UpdatePost(ctx, candidate.ID, &dto.PostUpdateDTO{Status: &status})
		if err != nil {
			log.ErrorContext(ctx, "publish sweep: transition failed", "post_id", candidate.ID, "err", err)
			result.Failed = append(result.Failed, dto.SweepFailureDTO{PostID: candidate.ID, Error: err.Error()})
			continue
		}
		result.Published = append(result.Published, updated)
	}

	if len(result.Published) > 0 {
		s.invalidateFeeds(ctx)
	}
	return result, nil
}

// EngagementStats 汇总上架且已发布帖子的点赞与评论，均值四舍五入
func (s *postServiceImpl) EngagementStats(ctx context.Context) (*dto.EngagementStatsDTO, error) {
	posts, err := s.postRepo.ListPublic(ctx)
	if err != nil {
		return nil, err
	}

	stats := &dto.EngagementStatsDTO{TotalPosts: len(posts)}
	for _, post := range posts {
		stats.TotalLikes += post.Likes
		stats.TotalComments += post.Comments
	}
	if stats.TotalPosts > 0 {
		stats.AverageLikes = int(math.Round(float64(stats.TotalLikes) / float64(stats.TotalPosts)))
		stats.AverageComments = int(math.Round(float64(stats.TotalComments) / float64(stats.TotalPosts)))
	}
	return stats, nil
}

// parseScheduledDate 定时发布校验：scheduled 状态必须携带合法时间，
// 其他状态的时间字段不做校验
func (s *postServiceImpl) parseScheduledDate(status, raw string) (*time.Time, error) {
	if raw == "" {
		if status == consts.PostStatusScheduled {
			return nil, ErrScheduledDateRequired
		}
		return nil, nil
	}

	ts, err := time.Parse(time.RFC3339, raw)
	if err != nil {
		if status == consts.PostStatusScheduled {
			return nil, ErrScheduledDateInvalid
		}
		return nil, nil
	}
	return &ts, nil
}

// cachedFeed 读缓存，Redis 不可用时视为未命中
func (s *postServiceImpl) cachedFeed(ctx context.Context, key string) ([]*dto.PostDTO, bool) {
	data, err := redis.GetValue(ctx, key)
	if err != nil || data == "" {
		return nil, false
	}
	var posts []*dto.PostDTO
	if err := json.Unmarshal([]byte(data), &posts); err != nil {
		return nil, false
	}
	return posts, true
}

// cacheFeed 写缓存，尽力而为
func (s *postServiceImpl) cacheFeed(ctx context.Context, key string, posts []*dto.PostDTO) {
	data, err := json.Marshal(posts)
	if err != nil {
		return
	}
	_ = redis.SetWithExpiration(ctx, key, string(data), FeedCacheTTL)
}

func (s *postServiceImpl) invalidateFeeds(ctx context.Context) {
	_ = redis.DeleteKey(ctx, consts.PostPublicFeedKey)
	_ = redis.DeleteKey(ctx, consts.PostFeaturedFeedKey)
}
