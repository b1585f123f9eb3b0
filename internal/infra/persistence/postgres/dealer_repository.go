package postgres

import (
	"context"

	"seatech/internal/domain/entity"
	domainerrors "seatech/internal/domain/errors"
	"seatech/internal/domain/repository"
	"seatech/internal/infra/persistence/model"

	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// dealerRepository implements the repository.DealerApplicationRepository interface.
type dealerRepository struct {
	db *gorm.DB
}

// NewDealerRepository is the constructor for dealerRepository.
func NewDealerRepository(db *gorm.DB) repository.DealerApplicationRepository {
	return &dealerRepository{
		db: db,
	}
}

// Create persists a new dealer application.
func (repo *dealerRepository) Create(ctx context.Context, application *entity.DealerApplication) error {
	applicationM := fromDealerDomain(application)

	if err := repo.db.WithContext(ctx).Create(applicationM).Error; err != nil {
		if isNotNullConstraintViolation(err) {
			return domainerrors.ErrApplicationInvalid.WrapMessage("missing required application information")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create dealer application")
	}

	// Update the entity with generated values
	application.ID = applicationM.ID
	application.Status = applicationM.Status
	application.CreatedAt = applicationM.CreatedAt

	return nil
}

// FindByEmail retrieves all applications submitted under an email, newest first.
func (repo *dealerRepository) FindByEmail(ctx context.Context, email string) ([]*entity.DealerApplication, error) {
	var applicationModels []*model.DealerApplicationModel

	if err := repo.db.WithContext(ctx).
		Where("email = ?", email).
		Order("created_at DESC").
		Find(&applicationModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to find dealer applications by email")
	}

	applications := make([]*entity.DealerApplication, 0, len(applicationModels))
	for _, applicationM := range applicationModels {
		applications = append(applications, toDealerDomain(applicationM))
	}

	return applications, nil
}

// --- Mapper Functions ---

// toDealerDomain converts a GORM DealerApplicationModel to a domain DealerApplication entity.
func toDealerDomain(data *model.DealerApplicationModel) *entity.DealerApplication {
	if data == nil {
		return nil
	}

	return &entity.DealerApplication{
		ID:                  data.ID,
		Type:                entity.ApplicationType(data.ApplicationType),
		DealerName:          data.DealerName,
		DirectorName:        data.DirectorName,
		Address:             data.Address,
		Email:               data.Email,
		Mobile:              data.Mobile,
		DirectorEmail:       data.DirectorEmail,
		DirectorMobile:      data.DirectorMobile,
		GSTNumber:           data.GSTNumber,
		ProductRequirements: data.ProductRequirements,
		TurnoverYear1:       data.TurnoverYear1,
		TurnoverYear2:       data.TurnoverYear2,
		TurnoverYear3:       data.TurnoverYear3,
		Remarks:             data.Remarks,
		Status:              data.Status,
		CreatedAt:           data.CreatedAt,
	}
}

// fromDealerDomain converts a domain DealerApplication entity to a GORM DealerApplicationModel.
func fromDealerDomain(data *entity.DealerApplication) *model.DealerApplicationModel {
	if data == nil {
		return nil
	}

	return &model.DealerApplicationModel{
		ID:                  data.ID,
		ApplicationType:     string(data.Type),
		DealerName:          data.DealerName,
		DirectorName:        data.DirectorName,
		Address:             data.Address,
		Email:               data.Email,
		Mobile:              data.Mobile,
		DirectorEmail:       data.DirectorEmail,
		DirectorMobile:      data.DirectorMobile,
		GSTNumber:           data.GSTNumber,
		ProductRequirements: data.ProductRequirements,
		TurnoverYear1:       data.TurnoverYear1,
		TurnoverYear2:       data.TurnoverYear2,
		TurnoverYear3:       data.TurnoverYear3,
		Remarks:             data.Remarks,
		Status:              data.Status,
		CreatedAt:           data.CreatedAt,
	}
}
