package rulerepo

import (
	"context"
	"errors"

	"github.com/francomiret/orders-tracker-app/internal/core/domain/model/alert"
	"github.com/francomiret/orders-tracker-app/internal/pkg/errs"

	"gorm.io/gorm"
)

// GormAlertRuleRepository implements AlertRuleRepository using GORM.
type GormAlertRuleRepository struct {
	db *gorm.DB
}

// NewGormAlertRuleRepository creates a new GORM alert rule repository.
func NewGormAlertRuleRepository(db *gorm.DB) *GormAlertRuleRepository {
	return &GormAlertRuleRepository{db: db}
}

// Add saves a new rule and assigns the storage identifier back to the
// aggregate.
func (r *GormAlertRuleRepository) Add(ctx context.Context, aggregate *alert.Rule) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		return err
	}

	return aggregate.AssignID(dto.ID)
}

// Update saves an existing rule to the database.
func (r *GormAlertRuleRepository) Update(ctx context.Context, aggregate *alert.Rule) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	result := r.db.WithContext(ctx).
		Model(&RuleDTO{}).
		Where("id = ?", dto.ID).
		Select("*").
		Updates(&dto)
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		return errs.NewObjectNotFoundError("ruleId", aggregate.ID())
	}

	return nil
}

// Get retrieves a rule by ID.
func (r *GormAlertRuleRepository) Get(ctx context.Context, id uint) (*alert.Rule, error) {
	var dto RuleDTO
	if err := r.db.WithContext(ctx).First(&dto, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("ruleId", id)
		}
		return nil, err
	}

	return toDomain(dto)
}

// Delete removes a rule from storage.
func (r *GormAlertRuleRepository) Delete(ctx context.Context, id uint) error {
	result := r.db.WithContext(ctx).Delete(&RuleDTO{}, "id = ?", id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return errs.NewObjectNotFoundError("ruleId", id)
	}

	return nil
}

// GetAllActive retrieves every active rule, oldest first.
func (r *GormAlertRuleRepository) GetAllActive(ctx context.Context) ([]*alert.Rule, error) {
	var dtos []RuleDTO
	if err := r.db.WithContext(ctx).
		Where("active = TRUE").
		Order("created_at ASC").
		Find(&dtos).Error; err != nil {
		return nil, err
	}

	rules := make([]*alert.Rule, 0, len(dtos))
	for _, dto := range dtos {
		rule, err := toDomain(dto)
		if err != nil {
			return nil, err
		}
		rules = append(rules, rule)
	}

	return rules, nil
}

// ActiveExists reports whether an active rule of the given type exists,
// excluding the rule with excludeID. Pass 0 to exclude none.
func (r *GormAlertRuleRepository) ActiveExists(
	ctx context.Context,
	ruleType alert.RuleType,
	excludeID uint,
) (bool, error) {
	if err := ruleType.Validate(); err != nil {
		return false, err
	}

	query := r.db.WithContext(ctx).
		Model(&RuleDTO{}).
		Where("rule_type = ? AND active = TRUE", ruleType.String())
	if excludeID != 0 {
		query = query.Where("id <> ?", excludeID)
	}

	var count int64
	if err := query.Count(&count).Error; err != nil {
		return false, err
	}

	return count > 0, nil
}
