package postgres

import (
	"context"

	"academy/internal/domain/entity"
	domainerrors "academy/internal/domain/errors"
	"academy/internal/domain/repository"
	"academy/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// connectionRepository implements the repository.ConnectionRepository interface using GORM.
type connectionRepository struct {
	db *gorm.DB
}

// NewConnectionRepository is the constructor for connectionRepository.
func NewConnectionRepository(db *gorm.DB) repository.ConnectionRepository {
	return &connectionRepository{db: db}
}

// Create persists a new credential record.
func (repo *connectionRepository) Create(ctx context.Context, conn *entity.Connection) error {
	connM := fromConnectionDomain(conn)

	if err := repo.db.WithContext(ctx).Create(connM).Error; err != nil {
		if isUniqueConstraintViolation(err) {
			return domainerrors.ErrConflict.WrapMessage("credential already linked")
		}
		if isForeignKeyConstraintViolation(err) {
			return domainerrors.ErrUserNotFound.WrapMessage("user does not exist")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create connection")
	}

	conn.ID = connM.ID
	conn.CreatedAt = connM.CreatedAt

	return nil
}

// Find retrieves a credential by provider and provider-side user ID.
func (repo *connectionRepository) Find(ctx context.Context, provider entity.ProviderType, providerUserID string) (*entity.Connection, error) {
	var connM model.ConnectionModel
	err := repo.db.WithContext(ctx).
		Where("provider = ? AND provider_user_id = ?", provider.String(), providerUserID).
		First(&connM).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrConnectionNotFound
		}

		return nil, errors.Wrap(err, "failed to find connection")
	}

	return toConnectionDomain(&connM), nil
}

// FindByUserAndProvider retrieves a user's credential for one provider.
func (repo *connectionRepository) FindByUserAndProvider(ctx context.Context, userID uuid.UUID, provider entity.ProviderType) (*entity.Connection, error) {
	var connM model.ConnectionModel
	err := repo.db.WithContext(ctx).
		Where("user_id = ? AND provider = ?", userID, provider.String()).
		First(&connM).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrConnectionNotFound
		}

		return nil, errors.Wrap(err, "failed to find connection by user and provider")
	}

	return toConnectionDomain(&connM), nil
}

// ListByUserID retrieves all credentials linked to a user.
func (repo *connectionRepository) ListByUserID(ctx context.Context, userID uuid.UUID) ([]*entity.Connection, error) {
	var connMs []model.ConnectionModel
	err := repo.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at ASC").
		Find(&connMs).Error
	if err != nil {
		return nil, errors.Wrap(err, "failed to list connections")
	}

	conns := make([]*entity.Connection, 0, len(connMs))
	for i := range connMs {
		conns = append(conns, toConnectionDomain(&connMs[i]))
	}

	return conns, nil
}

// Update modifies an existing credential record.
func (repo *connectionRepository) Update(ctx context.Context, conn *entity.Connection) error {
	connM := fromConnectionDomain(conn)

	if err := repo.db.WithContext(ctx).Save(connM).Error; err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to update connection")
	}

	return nil
}

// Delete removes a credential record by its ID.
func (repo *connectionRepository) Delete(ctx context.Context, id uuid.UUID) error {
	if err := repo.db.WithContext(ctx).Delete(&model.ConnectionModel{}, "id = ?", id).Error; err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to delete connection")
	}

	return nil
}

// --- Mapper Functions ---

// toConnectionDomain converts a GORM ConnectionModel to a domain Connection entity.
func toConnectionDomain(data *model.ConnectionModel) *entity.Connection {
	if data == nil {
		return nil
	}

	return &entity.Connection{
		ID:             data.ID,
		UserID:         data.UserID,
		Provider:       entity.ProviderType(data.Provider),
		ProviderUserID: data.ProviderUserID,
		PasswordHash:   data.PasswordHash,
		CreatedAt:      data.CreatedAt,
	}
}

// fromConnectionDomain converts a domain Connection entity to a GORM ConnectionModel.
func fromConnectionDomain(data *entity.Connection) *model.ConnectionModel {
	if data == nil {
		return nil
	}

	return &model.ConnectionModel{
		ID:             data.ID,
		UserID:         data.UserID,
		Provider:       data.Provider.String(),
		ProviderUserID: data.ProviderUserID,
		PasswordHash:   data.PasswordHash,
		CreatedAt:      data.CreatedAt,
	}
}
