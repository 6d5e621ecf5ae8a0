package wire

import (
	"CafeX/internal/api"
	"CafeX/internal/api/config"
	"CafeX/internal/api/handler"
	"CafeX/internal/job"
	"CafeX/internal/pkg/cron"
	"CafeX/internal/pkg/minio"
	"CafeX/internal/repository"
	"CafeX/internal/service"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// ApplicationContainer 封装了应用运行所需的所有顶级组件
type ApplicationContainer struct {
	Router  *gin.Engine
	DB      *gorm.DB
	CronMgr *cron.Manager
}

func BuildApplication(db *gorm.DB, cfg *config.Config) (*ApplicationContainer, error) {
	storage := minio.NewStorage()
	postMapper := repository.NewPostMapper(storage)
	postRepo := repository.NewPostRepository(db, postMapper)

	postService := service.NewPostService(postRepo, storage)
	postCache := service.NewPostCache(postService)

	handlers := &api.HandlersGroup{
		PostHandler:  handler.NewPostHandler(postService, postCache),
		MediaHandler: handler.NewMediaHandler(postService),
	}

	router := api.SetupRouter(handlers)

	publishSweepJob := job.NewPublishSweepJob(postService)
	cronMgr := cron.NewCronManager(cfg.Cron.PublishSpec, publishSweepJob)

	return &ApplicationContainer{
		Router:  router,
		DB:      db,
		CronMgr: cronMgr,
	}, nil
}
