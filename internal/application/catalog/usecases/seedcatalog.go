package usecases

import (
	"context"
	"fmt"

	"github.com/sitedesk/sitedesk/internal/application/catalog/dto"
	"github.com/sitedesk/sitedesk/internal/domain/catalog"
	vo "github.com/sitedesk/sitedesk/internal/domain/complaint/valueobjects"
	"github.com/sitedesk/sitedesk/internal/domain/notification"
	"github.com/sitedesk/sitedesk/internal/shared/errors"
	"github.com/sitedesk/sitedesk/internal/shared/logger"
	"github.com/sitedesk/sitedesk/internal/shared/utils"
)

// SeedCatalogUseCase loads reference data in one transaction. Running it
// twice with the same document changes nothing the second time.
type SeedCatalogUseCase struct {
	categoryRepo catalog.CategoryRepository
	guidanceRepo catalog.GuidanceTemplateRepository
	faqRepo      catalog.FAQRepository
	templateRepo notification.TemplateRepository
	txManager    TransactionRunner
	logger       logger.Interface
}

func NewSeedCatalogUseCase(
	categoryRepo catalog.CategoryRepository,
	guidanceRepo catalog.GuidanceTemplateRepository,
	faqRepo catalog.FAQRepository,
	templateRepo notification.TemplateRepository,
	txManager TransactionRunner,
	logger logger.Interface,
) *SeedCatalogUseCase {
	return &SeedCatalogUseCase{
		categoryRepo: categoryRepo,
		guidanceRepo: guidanceRepo,
		faqRepo:      faqRepo,
		templateRepo: templateRepo,
		txManager:    txManager,
		logger:       logger,
	}
}

func (uc *SeedCatalogUseCase) Execute(ctx context.Context, doc dto.SeedDocument) (*dto.SeedResult, error) {
	result := &dto.SeedResult{}

	err := uc.txManager.RunInTransaction(ctx, func(txCtx context.Context) error {
		for i, sc := range doc.Categories {
			if err := uc.seedCategory(txCtx, sc, result); err != nil {
				return fmt.Errorf("categories[%d] %s: %w", i, sc.Code, err)
			}
		}
		if err := uc.seedFAQs(txCtx, doc.FAQs, result); err != nil {
			return err
		}
		for i, st := range doc.NotificationTemplates {
			if err := uc.seedTemplate(txCtx, st); err != nil {
				return fmt.Errorf("notification_templates[%d] %s: %w", i, st.EventKey, err)
			}
			result.TemplatesUpserted++
		}
		return nil
	})
	if err != nil {
		uc.logger.Errorw("catalog seed failed", "error", err)
		if errors.IsAppError(err) {
			return nil, err
		}
		return nil, errors.NewValidationError("catalog seed failed", err.Error())
	}

	uc.logger.Infow("catalog seeded",
		"categories_created", result.CategoriesCreated,
		"categories_updated", result.CategoriesUpdated,
		"guidance", result.GuidanceUpserted,
		"faqs", result.FAQsCreated,
		"templates", result.TemplatesUpserted)
	return result, nil
}

func (uc *SeedCatalogUseCase) seedCategory(ctx context.Context, sc dto.SeedCategory, result *dto.SeedResult) error {
	code := utils.NormalizeCode(sc.Code)
	scope, err := vo.NewScope(sc.AllowedScope)
	if err != nil {
		return err
	}
	name := utils.TitleCase(sc.Name)

	category, err := uc.categoryRepo.GetByCode(ctx, code)
	if err != nil {
		return err
	}
	if category == nil {
		if category, err = catalog.NewCategory(code, name, scope, sc.DisplayOrder); err != nil {
			return err
		}
		if sc.Active != nil && !*sc.Active {
			category.Deactivate()
		}
		if err := uc.categoryRepo.Create(ctx, category); err != nil {
			return err
		}
		result.CategoriesCreated++
	} else {
		if err := category.Update(name, scope, sc.DisplayOrder); err != nil {
			return err
		}
		if sc.Active != nil {
			if *sc.Active {
				category.Activate()
			} else {
				category.Deactivate()
			}
		}
		if err := uc.categoryRepo.Update(ctx, category); err != nil {
			return err
		}
		result.CategoriesUpdated++
	}

	if sc.Guidance == nil {
		return nil
	}
	guidance, err := uc.guidanceRepo.GetByCategory(ctx, category.ID())
	if err != nil {
		return err
	}
	title, body := utils.NormalizeText(sc.Guidance.Title), utils.NormalizeText(sc.Guidance.Body)
	if guidance == nil {
		if guidance, err = catalog.NewGuidanceTemplate(category.ID(), title, body); err != nil {
			return err
		}
	} else if err := guidance.Update(title, body, true); err != nil {
		return err
	}
	if err := uc.guidanceRepo.Upsert(ctx, guidance); err != nil {
		return err
	}
	result.GuidanceUpserted++
	return nil
}

// seedFAQs creates FAQs whose question is not present yet.
func (uc *SeedCatalogUseCase) seedFAQs(ctx context.Context, faqs []dto.SeedFAQ, result *dto.SeedResult) error {
	if len(faqs) == 0 {
		return nil
	}
	existing, err := uc.faqRepo.List(ctx, false)
	if err != nil {
		return err
	}
	seen := make(map[string]bool, len(existing))
	for _, f := range existing {
		seen[f.Question()] = true
	}

	for i, sf := range faqs {
		question := utils.NormalizeText(sf.Question)
		if seen[question] {
			continue
		}
		faq, err := catalog.NewFAQ(question, utils.NormalizeText(sf.Answer), sf.DisplayOrder)
		if err != nil {
			return fmt.Errorf("faqs[%d]: %w", i, err)
		}
		if err := uc.faqRepo.Create(ctx, faq); err != nil {
			return err
		}
		seen[question] = true
		result.FAQsCreated++
	}
	return nil
}

func (uc *SeedCatalogUseCase) seedTemplate(ctx context.Context, st dto.SeedNotificationTemplate) error {
	key, err := notification.NewEventKey(st.EventKey)
	if err != nil {
		return err
	}
	channel := st.Channel
	if channel == "" {
		channel = notification.ChannelSMS
	}
	tmpl, err := notification.NewTemplate(key, channel, st.Title, st.Body)
	if err != nil {
		return err
	}
	return uc.templateRepo.Upsert(ctx, tmpl)
}
