package job

import (
	"CafeX/internal/pkg/consts"
	"CafeX/internal/pkg/logger"
	"CafeX/internal/pkg/redis"
	"CafeX/internal/service"
	"context"
	log "log/slog"
	"time"

	"github.com/google/uuid"
)

// PublishSweepJob 周期触发定时发布巡检。
// 服务层本身不自行调度，由这里驱动
type PublishSweepJob struct {
	postSvc service.PostService
}

func NewPublishSweepJob(postSvc service.PostService) *PublishSweepJob {
	return &PublishSweepJob{
		postSvc: postSvc,
	}
}

func (s *PublishSweepJob) Run() {
	traceID := "job-publish-" + uuid.NewString()
	ctx := context.WithValue(context.Background(), logger.TraceIDKey, traceID)

	// 多实例部署时避免同时巡检。锁是尽力而为的：
	// 重复把 published 改成 published 无副作用，拿不到锁只是少做无用功
	lockUUID := uuid.NewString()
	locked, err := redis.TryLock(ctx, consts.PublishSweepLock, lockUUID, 30*time.Second, 0)
	if err == nil && !locked {
		return
	}
	if locked {
		defer redis.UnLock(ctx, consts.PublishSweepLock, lockUUID)
	}

	result, err := s.postSvc.SweepScheduled(ctx)
	if err != nil {
		log.ErrorContext(ctx, "publish sweep failed", "err", err)
		return
	}

	if len(result.Published) > 0 || len(result.Failed) > 0 {
		log.InfoContext(ctx, "publish sweep finished",
			"published_count", len(result.Published),
			"failed_count", len(result.Failed),
		)
	}
}
