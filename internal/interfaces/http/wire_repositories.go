package http

import (
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"

	"github.com/sitedesk/sitedesk/internal/domain/catalog"
	"github.com/sitedesk/sitedesk/internal/domain/complaint"
	"github.com/sitedesk/sitedesk/internal/domain/notification"
	"github.com/sitedesk/sitedesk/internal/domain/user"
	"github.com/sitedesk/sitedesk/internal/infrastructure/cache"
	"github.com/sitedesk/sitedesk/internal/infrastructure/config"
	"github.com/sitedesk/sitedesk/internal/infrastructure/repository"
	sharedConfig "github.com/sitedesk/sitedesk/internal/shared/config"
	"github.com/sitedesk/sitedesk/internal/shared/logger"
)

// repositories holds all repository instances created during initialization.
type repositories struct {
	userRepo      user.Repository
	complaintRepo complaint.Repository
	workOrderRepo complaint.WorkOrderRepository
	visitRepo     complaint.VisitRepository
	commentRepo   complaint.CommentRepository
	historyRepo   complaint.HistoryRepository
	sequence      complaint.SequenceAllocator
	categoryRepo  catalog.CategoryRepository
	categoryCache *cache.CategoryCache
	guidanceRepo  catalog.GuidanceTemplateRepository
	noticeRepo    catalog.NoticeRepository
	faqRepo       catalog.FAQRepository
	queueRepo     notification.QueueRepository
	templateRepo  notification.TemplateRepository
}

// newRepositories creates all repository instances from the database
// connection. The category repository is fronted by the category cache and
// the sequence allocator follows complaint.sequence_backend.
func newRepositories(db *gorm.DB, redisClient *redis.Client, cfg *config.Config, log logger.Interface) *repositories {
	categoryCache := cache.NewCategoryCache(
		repository.NewCategoryRepository(db),
		redisClient,
		cfg.Catalog.CacheTTL,
		log,
	)

	var sequence complaint.SequenceAllocator
	if cfg.Complaint.SequenceBackend == sharedConfig.SequenceBackendRedis && redisClient != nil {
		sequence = cache.NewRedisSequenceAllocator(redisClient)
	} else {
		sequence = repository.NewDBSequenceAllocator(db)
	}

	return &repositories{
		userRepo:      repository.NewUserRepository(db, log),
		complaintRepo: repository.NewComplaintRepository(db, log),
		workOrderRepo: repository.NewWorkOrderRepository(db, log),
		visitRepo:     repository.NewVisitLogRepository(db, log),
		commentRepo:   repository.NewComplaintCommentRepository(db),
		historyRepo:   repository.NewStatusHistoryRepository(db),
		sequence:      sequence,
		categoryRepo:  categoryCache,
		categoryCache: categoryCache,
		guidanceRepo:  repository.NewGuidanceTemplateRepository(db),
		noticeRepo:    repository.NewNoticeRepository(db),
		faqRepo:       repository.NewFAQRepository(db),
		queueRepo:     repository.NewNotificationQueueRepository(db, log),
		templateRepo:  repository.NewNotificationTemplateRepository(db),
	}
}
