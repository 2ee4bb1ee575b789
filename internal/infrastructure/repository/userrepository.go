package repository

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"github.com/sitedesk/sitedesk/internal/domain/user"
	"github.com/sitedesk/sitedesk/internal/infrastructure/persistence/mappers"
	"github.com/sitedesk/sitedesk/internal/infrastructure/persistence/models"
	"github.com/sitedesk/sitedesk/internal/shared/db"
	"github.com/sitedesk/sitedesk/internal/shared/logger"
)

// UserRepositoryImpl stores resident and staff profiles
type UserRepositoryImpl struct {
	db     *gorm.DB
	mapper mappers.UserMapper
	logger logger.Interface
}

// NewUserRepository creates a new user repository instance
func NewUserRepository(database *gorm.DB, logger logger.Interface) user.Repository {
	return &UserRepositoryImpl{
		db:     database,
		mapper: mappers.NewUserMapper(),
		logger: logger,
	}
}

// Upsert inserts a new profile or overwrites the stored one. A profile
// without an ID is matched by email when it has one.
func (r *UserRepositoryImpl) Upsert(ctx context.Context, u *user.User) error {
	model := r.mapper.ToModel(u)
	tx := db.GetTxFromContext(ctx, r.db)

	if model.ID == 0 && model.Email != nil {
		var existing models.UserModel
		err := tx.Where("email = ?", *model.Email).First(&existing).Error
		switch {
		case err == nil:
			model.ID = existing.ID
			model.CreatedAt = existing.CreatedAt
		case err != gorm.ErrRecordNotFound:
			return fmt.Errorf("failed to look up user by email: %w", err)
		}
	}

	if err := tx.Save(model).Error; err != nil {
		r.logger.Errorw("failed to upsert user", "id", model.ID, "error", err)
		return translateWriteError(err, "upsert user")
	}

	if u.ID() == 0 {
		return u.SetID(model.ID)
	}
	return nil
}

func (r *UserRepositoryImpl) GetByID(ctx context.Context, id uint) (*user.User, error) {
	var model models.UserModel
	if err := db.GetTxFromContext(ctx, r.db).First(&model, id).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get user: %w", err)
	}
	return r.mapper.ToDomain(&model)
}

func (r *UserRepositoryImpl) ListStaffBySite(ctx context.Context, siteCode string) ([]*user.User, error) {
	var rows []models.UserModel
	if err := db.GetTxFromContext(ctx, r.db).
		Where("site_code = ? AND is_active = ?", siteCode, true).
		Where("role IN ?", []string{user.RoleStaff.String(), user.RoleAdmin.String()}).
		Order("id ASC").
		Find(&rows).Error; err != nil {
		return nil, fmt.Errorf("failed to list site staff: %w", err)
	}

	result := make([]*user.User, 0, len(rows))
	for i := range rows {
		u, err := r.mapper.ToDomain(&rows[i])
		if err != nil {
			return nil, err
		}
		result = append(result, u)
	}
	return result, nil
}
