package postgresadapter

import (
	"context"
	"errors"
	"time"

	"folio/contexts/identity-access/role-service/domain/entities"
	domainerrors "folio/contexts/identity-access/role-service/domain/errors"

	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"
)

// Repository implements the role-service ports on Postgres. Grant uniqueness
// is enforced by the (user_id, role) unique index.
type Repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) *Repository {
	return &Repository{db: db}
}

// Migrate creates the role-service tables.
func (r *Repository) Migrate() error {
	return r.db.AutoMigrate(&roleGrantModel{})
}

func (r *Repository) CreateGrant(ctx context.Context, grant entities.RoleGrant) error {
	row := roleGrantModel{
		UserID:    grant.UserID,
		Role:      grant.Role,
		GrantedBy: grant.GrantedBy,
		GrantedAt: grant.GrantedAt,
		Active:    grant.Active,
	}
	if err := r.db.WithContext(ctx).Create(&row).Error; err != nil {
		if isUniqueViolation(err) {
			return domainerrors.ErrDuplicateGrant
		}
		return err
	}
	return nil
}

func (r *Repository) HasRole(ctx context.Context, userID, role string) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&roleGrantModel{}).
		Where("user_id = ? AND role = ? AND active = ?", userID, role, true).
		Count(&count).
		Error
	if err != nil {
		return false, err
	}
	return count > 0, nil
}

func (r *Repository) ListUserRoles(ctx context.Context, userID string) ([]entities.RoleGrant, error) {
	var rows []roleGrantModel
	err := r.db.WithContext(ctx).
		Where("user_id = ? AND active = ?", userID, true).
		Order("role ASC").
		Find(&rows).
		Error
	if err != nil {
		return nil, err
	}

	grants := make([]entities.RoleGrant, 0, len(rows))
	for _, row := range rows {
		grants = append(grants, entities.RoleGrant{
			UserID:    row.UserID,
			Role:      row.Role,
			GrantedBy: row.GrantedBy,
			GrantedAt: row.GrantedAt,
			Active:    row.Active,
		})
	}
	return grants, nil
}

func (r *Repository) Now() time.Time {
	return time.Now().UTC()
}

func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == "23505"
}

type roleGrantModel struct {
	UserID    string    `gorm:"column:user_id;uniqueIndex:role_grants_unique,priority:1"`
	Role      string    `gorm:"column:role;uniqueIndex:role_grants_unique,priority:2"`
	GrantedBy string    `gorm:"column:granted_by"`
	GrantedAt time.Time `gorm:"column:granted_at"`
	Active    bool      `gorm:"column:active"`
}

func (roleGrantModel) TableName() string { return "role_grants" }
