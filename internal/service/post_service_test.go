package service

import (
	"CafeX/internal/api/dto"
	"CafeX/internal/model"
	"context"
	"errors"
	"io"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakePostRepo 内存版 PostRepo，查询条件与真实 SQL 保持一致
type fakePostRepo struct {
	posts       []*dto.PostDTO
	failUpdate  map[string]error
	createCalls int
	updateCalls int
}

func newFakePostRepo() *fakePostRepo {
	return &fakePostRepo{failUpdate: map[string]error{}}
}

func (s *fakePostRepo) ListPublic(_ context.Context) ([]*dto.PostDTO, error) {
	var out []*dto.PostDTO
	for _, p := range s.posts {
		if p.Active && p.Status == "published" {
			out = append(out, p)
		}
	}
	return out, nil
}

func (s *fakePostRepo) ListFeatured(ctx context.Context) ([]*dto.PostDTO, error) {
	public, _ := s.ListPublic(ctx)
	var out []*dto.PostDTO
	for _, p := range public {
		if p.Featured {
			out = append(out, p)
		}
	}
	return out, nil
}

func (s *fakePostRepo) ListByStatus(_ context.Context, status string) ([]*dto.PostDTO, error) {
	var out []*dto.PostDTO
	for _, p := range s.posts {
		if p.Status == status {
			out = append(out, p)
		}
	}
	return out, nil
}

func (s *fakePostRepo) ListAll(_ context.Context) ([]*dto.PostDTO, error) {
	return append([]*dto.PostDTO(nil), s.posts...), nil
}

func (s *fakePostRepo) ListDue(_ context.Context, now time.Time) ([]*dto.PostDTO, error) {
	var out []*dto.PostDTO
	for _, p := range s.posts {
		if p.Status == "scheduled" && p.Active && p.ScheduledDate != nil && !p.ScheduledDate.After(now) {
			out = append(out, p)
		}
	}
	return out, nil
}

func (s *fakePostRepo) GetPost(_ context.Context, id string) (*dto.PostDTO, error) {
	for _, p := range s.posts {
		if p.ID == id {
			cp := *p
			return &cp, nil
		}
	}
	return nil, nil
}

func (s *fakePostRepo) CreatePost(_ context.Context, entity *dto.PostDTO) (*dto.PostDTO, error) {
	s.createCalls++
	cp := *entity
	if cp.ID == "" {
		cp.ID = "generated-id"
	}
	cp.CreatedAt = time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	cp.UpdatedAt = cp.CreatedAt
	s.posts = append(s.posts, &cp)
	return &cp, nil
}

func (s *fakePostRepo) UpdatePost(_ context.Context, id string, changes *dto.PostUpdateDTO) (*dto.PostDTO, error) {
	s.updateCalls++
	if err, ok := s.failUpdate[id]; ok {
		return nil, err
	}
	for _, p := range s.posts {
		if p.ID != id {
			continue
		}
		if changes.Title != nil {
			p.Title = *changes.Title
		}
		if changes.Caption != nil {
			p.Caption = *changes.Caption
		}
		if changes.Description != nil {
			p.Description = *changes.Description
		}
		if changes.Image != nil {
			p.Image = model.ParseImageRef(*changes.Image)
		}
		if changes.Hashtags != nil {
			p.Hashtags = append([]string(nil), (*changes.Hashtags)...)
		}
		if changes.ScheduledDate != nil {
			if *changes.ScheduledDate == "" {
				p.ScheduledDate = nil
			} else if ts, err := time.Parse(time.RFC3339, *changes.ScheduledDate); err == nil {
				p.ScheduledDate = &ts
			}
		}
		if changes.Status != nil {
			p.Status = *changes.Status
		}
		if changes.Likes != nil {
			p.Likes = *changes.Likes
		}
		if changes.Comments != nil {
			p.Comments = *changes.Comments
		}
		if changes.Featured != nil {
			p.Featured = *changes.Featured
		}
		if changes.Active != nil {
			p.Active = *changes.Active
		}
		cp := *p
		return &cp, nil
	}
	return nil, errors.New("update post failed: record not found")
}

func (s *fakePostRepo) DeletePost(_ context.Context, id string) error {
	for i, p := range s.posts {
		if p.ID == id {
			s.posts = append(s.posts[:i], s.posts[i+1:]...)
			return nil
		}
	}
	return nil
}

type fakeImageStorage struct {
	uploaded []string
	deleted  []string
}

func (s *fakeImageStorage) Upload(_ context.Context, objectName string, _ io.Reader, _ int64, _ string) (string, error) {
	s.uploaded = append(s.uploaded, objectName)
	return objectName, nil
}

func (s *fakeImageStorage) Delete(_ context.Context, objectName string) error {
	s.deleted = append(s.deleted, objectName)
	return nil
}

func (s *fakeImageStorage) PublicURL(objectName string) string {
	return "https://cdn.test/instagram-posts/" + objectName
}

func newTestService(repo *fakePostRepo) (*postServiceImpl, *fakeImageStorage) {
	storage := &fakeImageStorage{}
	svc := NewPostService(repo, storage).(*postServiceImpl)
	return svc, storage
}

func basePost(status string) *dto.PostBaseDTO {
	return &dto.PostBaseDTO{
		Title:   "Morning Special",
		Caption: "fresh croissants",
		Status:  status,
		Active:  true,
	}
}

func TestCreatePostDraftDefaults(t *testing.T) {
	repo := newFakePostRepo()
	svc, _ := newTestService(repo)

	req := basePost("draft")
	req.Hashtags = []string{}

	saved, err := svc.CreatePost(context.Background(), req)
	require.NoError(t, err)
	assert.Equal(t, "draft", saved.Status)
	assert.Equal(t, []string{"#cafex"}, saved.Hashtags)
	assert.Equal(t, "fresh croissants", saved.Description)
	assert.Equal(t, "#", saved.InstagramURL)
	assert.Nil(t, saved.ScheduledDate)
	assert.NotEmpty(t, saved.ID)
}

func TestCreateScheduledRequiresDate(t *testing.T) {
	repo := newFakePostRepo()
	svc, _ := newTestService(repo)

	_, err := svc.CreatePost(context.Background(), basePost("scheduled"))
	assert.ErrorIs(t, err, ErrScheduledDateRequired)
	assert.Equal(t, 0, repo.createCalls)

	req := basePost("scheduled")
	req.ScheduledDate = "tomorrow at noon"
	_, err = svc.CreatePost(context.Background(), req)
	assert.ErrorIs(t, err, ErrScheduledDateInvalid)
	assert.Equal(t, 0, repo.createCalls)
}

func TestScheduledPublishLifecycle(t *testing.T) {
	repo := newFakePostRepo()
	svc, _ := newTestService(repo)

	req := basePost("scheduled")
	req.ScheduledDate = "2024-02-20T10:00:00Z"

	saved, err := svc.CreatePost(context.Background(), req)
	require.NoError(t, err)
	assert.Equal(t, "scheduled", saved.Status)
	require.NotNil(t, saved.ScheduledDate)
	assert.Equal(t, time.Date(2024, 2, 20, 10, 0, 0, 0, time.UTC), *saved.ScheduledDate)

	// 时钟拨到次日，巡检应将其转为已发布
	svc.now = func() time.Time { return time.Date(2024, 2, 21, 0, 0, 0, 0, time.UTC) }

	result, err := svc.SweepScheduled(context.Background())
	require.NoError(t, err)
	require.Len(t, result.Published, 1)
	assert.Empty(t, result.Failed)
	assert.Equal(t, "published", result.Published[0].Status)

	// 再巡检一次不应有任何变化
	updateCalls := repo.updateCalls
	result, err = svc.SweepScheduled(context.Background())
	require.NoError(t, err)
	assert.Empty(t, result.Published)
	assert.Empty(t, result.Failed)
	assert.Equal(t, updateCalls, repo.updateCalls)
}

func TestSweepSkipsFutureAndInactive(t *testing.T) {
	repo := newFakePostRepo()
	svc, _ := newTestService(repo)
	svc.now = func() time.Time { return time.Date(2024, 2, 21, 0, 0, 0, 0, time.UTC) }

	due := time.Date(2024, 2, 20, 10, 0, 0, 0, time.UTC)
	future := time.Date(2024, 3, 1, 10, 0, 0, 0, time.UTC)
	repo.posts = []*dto.PostDTO{
		{ID: "due", Status: "scheduled", Active: true, ScheduledDate: &due},
		{ID: "future", Status: "scheduled", Active: true, ScheduledDate: &future},
		{ID: "inactive", Status: "scheduled", Active: false, ScheduledDate: &due},
	}

	result, err := svc.SweepScheduled(context.Background())
	require.NoError(t, err)
	require.Len(t, result.Published, 1)
	assert.Equal(t, "due", result.Published[0].ID)
}

func TestSweepPartialFailure(t *testing.T) {
	repo := newFakePostRepo()
	svc, _ := newTestService(repo)
	svc.now = func() time.Time { return time.Date(2024, 2, 21, 0, 0, 0, 0, time.UTC) }

	due := time.Date(2024, 2, 20, 10, 0, 0, 0, time.UTC)
	repo.posts = []*dto.PostDTO{
		{ID: "ok1", Status: "scheduled", Active: true, ScheduledDate: &due},
		{ID: "broken", Status: "scheduled", Active: true, ScheduledDate: &due},
		{ID: "ok2", Status: "scheduled", Active: true, ScheduledDate: &due},
	}
	repo.failUpdate["broken"] = errors.New("update post failed: connection reset")

	result, err := svc.SweepScheduled(context.Background())
	require.NoError(t, err)
	assert.Len(t, result.Published, 2)
	require.Len(t, result.Failed, 1)
	assert.Equal(t, "broken", result.Failed[0].PostID)

	// 失败的那条仍是 scheduled，下一轮继续重试
	delete(repo.failUpdate, "broken")
	result, err = svc.SweepScheduled(context.Background())
	require.NoError(t, err)
	require.Len(t, result.Published, 1)
	assert.Equal(t, "broken", result.Published[0].ID)
}

func TestUpdateToScheduledRequiresDate(t *testing.T) {
	repo := newFakePostRepo()
	svc, _ := newTestService(repo)

	saved, err := svc.CreatePost(context.Background(), basePost("draft"))
	require.NoError(t, err)

	scheduled := "scheduled"
	_, err = svc.UpdatePost(context.Background(), saved.ID, &dto.PostUpdateDTO{Status: &scheduled})
	assert.ErrorIs(t, err, ErrScheduledDateRequired)

	date := "2024-02-20T10:00:00Z"
	updated, err := svc.UpdatePost(context.Background(), saved.ID, &dto.PostUpdateDTO{Status: &scheduled, ScheduledDate: &date})
	require.NoError(t, err)
	assert.Equal(t, "scheduled", updated.Status)
	require.NotNil(t, updated.ScheduledDate)

	// 已有发布时间的帖子，单独改状态是允许的
	draft := "draft"
	_, err = svc.UpdatePost(context.Background(), saved.ID, &dto.PostUpdateDTO{Status: &draft})
	require.NoError(t, err)
	_, err = svc.UpdatePost(context.Background(), saved.ID, &dto.PostUpdateDTO{Status: &scheduled})
	assert.NoError(t, err)
}

func TestUpdateEmptyHashtagsCoerced(t *testing.T) {
	repo := newFakePostRepo()
	svc, _ := newTestService(repo)

	saved, err := svc.CreatePost(context.Background(), basePost("draft"))
	require.NoError(t, err)

	empty := []string{}
	updated, err := svc.UpdatePost(context.Background(), saved.ID, &dto.PostUpdateDTO{Hashtags: &empty})
	require.NoError(t, err)
	assert.Equal(t, []string{"#cafex"}, updated.Hashtags)
}

func TestUpdateMissingPost(t *testing.T) {
	repo := newFakePostRepo()
	svc, _ := newTestService(repo)

	title := "x"
	_, err := svc.UpdatePost(context.Background(), "no-such-id", &dto.PostUpdateDTO{Title: &title})
	assert.ErrorIs(t, err, ErrPostNotFound)
}

func TestGetPostNotFound(t *testing.T) {
	repo := newFakePostRepo()
	svc, _ := newTestService(repo)

	_, err := svc.GetPost(context.Background(), "missing")
	assert.ErrorIs(t, err, ErrPostNotFound)
}

func TestListPublicExcludesInactive(t *testing.T) {
	repo := newFakePostRepo()
	svc, _ := newTestService(repo)

	repo.posts = []*dto.PostDTO{
		{ID: "visible", Status: "published", Active: true},
		{ID: "hidden", Status: "published", Active: false},
		{ID: "draft", Status: "draft", Active: true},
	}

	posts, err := svc.ListPublic(context.Background())
	require.NoError(t, err)
	require.Len(t, posts, 1)
	assert.Equal(t, "visible", posts[0].ID)

	featured, err := svc.ListFeatured(context.Background())
	require.NoError(t, err)
	assert.Empty(t, featured)
}

func TestListByStatusValidation(t *testing.T) {
	repo := newFakePostRepo()
	svc, _ := newTestService(repo)

	_, err := svc.ListByStatus(context.Background(), "archived")
	assert.ErrorIs(t, err, ErrStatusInvalid)
}

func TestEngagementStats(t *testing.T) {
	repo := newFakePostRepo()
	svc, _ := newTestService(repo)

	// 没有符合条件的帖子时全部为零，不出现除零
	stats, err := svc.EngagementStats(context.Background())
	require.NoError(t, err)
	assert.Equal(t, &dto.EngagementStatsDTO{}, stats)

	repo.posts = []*dto.PostDTO{
		{ID: "a", Status: "published", Active: true, Likes: 10, Comments: 3},
		{ID: "b", Status: "published", Active: true, Likes: 15, Comments: 4},
		{ID: "c", Status: "published", Active: false, Likes: 100, Comments: 100},
	}

	stats, err = svc.EngagementStats(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 2, stats.TotalPosts)
	assert.Equal(t, 25, stats.TotalLikes)
	assert.Equal(t, 7, stats.TotalComments)
	assert.Equal(t, 13, stats.AverageLikes)
	assert.Equal(t, 4, stats.AverageComments)
}

func TestUploadImageKeyDerivation(t *testing.T) {
	repo := newFakePostRepo()
	svc, storage := newTestService(repo)
	svc.now = func() time.Time { return time.Date(2024, 2, 20, 10, 0, 0, 0, time.UTC) }

	key, err := svc.UploadImage(context.Background(), strings.NewReader("img"), 3, "photo.jpg", "image/jpeg", "p7")
	require.NoError(t, err)
	assert.Equal(t, "p7.jpg", key)

	key, err = svc.UploadImage(context.Background(), strings.NewReader("img"), 3, "shot.png", "image/png", "")
	require.NoError(t, err)
	assert.Equal(t, "1708423200000.png", key)

	assert.Equal(t, []string{"p7.jpg", "1708423200000.png"}, storage.uploaded)
}

func TestCreateWithExternalImage(t *testing.T) {
	repo := newFakePostRepo()
	svc, _ := newTestService(repo)

	req := basePost("published")
	req.Image = "https://images.example.com/latte.jpg"

	saved, err := svc.CreatePost(context.Background(), req)
	require.NoError(t, err)
	assert.Equal(t, model.ImageKindExternal, saved.Image.Kind)

	// 换成桶内路径后外链引用被替换
	internal := "latte.jpg"
	updated, err := svc.UpdatePost(context.Background(), saved.ID, &dto.PostUpdateDTO{Image: &internal})
	require.NoError(t, err)
	assert.Equal(t, model.ImageKindInternal, updated.Image.Kind)
	assert.Equal(t, "latte.jpg", updated.Image.Value)
}
