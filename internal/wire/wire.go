package wire

import (
	"Pulse/internal/api"
	"Pulse/internal/api/config"
	"Pulse/internal/api/handler"
	"Pulse/internal/job"
	"Pulse/internal/pkg/cron"
	"Pulse/internal/pkg/kafka"
	"Pulse/internal/pkg/mongo"
	"Pulse/internal/pkg/redis"
	"Pulse/internal/repository"
	"Pulse/internal/service"

	"github.com/gin-gonic/gin"
	mongodriver "go.mongodb.org/mongo-driver/mongo"
	"gorm.io/gorm"
)

// ApplicationContainer 封装了应用运行所需的所有顶级组件
type ApplicationContainer struct {
	Router       *gin.Engine
	DB           *gorm.DB
	CronMgr      *cron.Manager
	KafkaManager *kafka.ConsumerManager
}

func BuildApplication(db *gorm.DB, mongoDB *mongodriver.Database, cfg *config.Config) (*ApplicationContainer, error) {
	params := cfg.Ranking.ToParams()

	postRepo := repository.NewPostRepository(db)
	scoreRepo := repository.NewPostScoreRepository(db)
	snapshotRepo := repository.NewSnapshotRepository(db)
	hashtagRepo := repository.NewHashtagRepository(db)
	interestRepo := repository.NewUserInterestRepository(db)
	followRepo := repository.NewUserFollowRepository(db)
	profileRepo := repository.NewUserProfileRepository(db)
	jobRunRepo := mongo.NewJobRunRepo(mongoDB)

	scoreService := service.NewScoreService(params, postRepo, scoreRepo, snapshotRepo, profileRepo, followRepo, interestRepo)
	snapshotService := service.NewSnapshotService(postRepo, snapshotRepo)
	trendingService := service.NewTrendingService(params, hashtagRepo)
	interestService := service.NewInterestService(params, interestRepo)
	cleanupService := service.NewCleanupService(snapshotRepo, hashtagRepo, scoreRepo)
	alertSender := service.NewAlertSender(cfg.Alert)

	jobService := service.NewJobService(redis.NewLocker(), jobRunRepo, alertSender)
	jobService.Register(job.NewScoreRecomputeJob(scoreService).Definition())
	jobService.Register(job.NewEngagementSnapshotJob(snapshotService).Definition())
	jobService.Register(job.NewTrendingRecomputeJob(trendingService).Definition())
	jobService.Register(job.NewInterestDecayJob(interestService).Definition())
	jobService.Register(job.NewCleanupJob(cleanupService).Definition())

	handlers := &api.HandlersGroup{
		ScoreHandler:    handler.NewScoreHandler(scoreService),
		TrendingHandler: handler.NewTrendingHandler(trendingService),
		JobHandler:      handler.NewJobHandler(jobService),
	}

	router := api.SetupRouter(handlers)

	kafkaMgr, err := kafka.NewConsumerManager(cfg, postRepo, hashtagRepo, profileRepo, followRepo, interestService, scoreService)
	if err != nil {
		return nil, err
	}

	return &ApplicationContainer{
		Router:       router,
		DB:           db,
		CronMgr:      cron.NewCronManager(jobService),
		KafkaManager: kafkaMgr,
	}, nil
}
