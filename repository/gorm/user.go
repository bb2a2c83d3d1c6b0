package gorm

import (
	vd "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/gofrs/uuid"

	"github.com/traPtitech/traQ-moderation/model"
	"github.com/traPtitech/traQ-moderation/repository"
	"github.com/traPtitech/traQ-moderation/service/rbac/role"
	"github.com/traPtitech/traQ-moderation/utils/gormutil"
	"github.com/traPtitech/traQ-moderation/utils/validator"
)

// CreateUser implements UserRepository interface.
func (repo *Repository) CreateUser(args repository.CreateUserArgs) (*model.User, error) {
	if err := vd.Validate(args.Name, validator.UserNameRuleRequired...); err != nil {
		return nil, repository.ArgError("args.Name", "invalid name")
	}
	if !role.Valid(args.Role) {
		return nil, repository.ArgError("args.Role", "invalid role")
	}

	user := &model.User{
		ID:   uuid.Must(uuid.NewV7()),
		Name: args.Name,
		Role: args.Role,
	}
	if err := repo.db.Create(user).Error; err != nil {
		if gormutil.IsDuplicatedRecordErr(err) {
			return nil, repository.ErrAlreadyExists
		}
		return nil, err
	}
	return user, nil
}

// GetUser implements UserRepository interface.
func (repo *Repository) GetUser(id uuid.UUID) (*model.User, error) {
	if id == uuid.Nil {
		return nil, repository.ErrNotFound
	}
	var user model.User
	if err := repo.db.First(&user, &model.User{ID: id}).Error; err != nil {
		return nil, convertError(err)
	}
	return &user, nil
}

// GetUserByName implements UserRepository interface.
func (repo *Repository) GetUserByName(name string) (*model.User, error) {
	if len(name) == 0 {
		return nil, repository.ErrNotFound
	}
	var user model.User
	if err := repo.db.Where("name = ?", name).First(&user).Error; err != nil {
		return nil, convertError(err)
	}
	return &user, nil
}

// GetUsers implements UserRepository interface.
func (repo *Repository) GetUsers() ([]*model.User, error) {
	users := make([]*model.User, 0)
	return users, repo.db.Order("created_at ASC").Order("id ASC").Find(&users).Error
}

// UpdateUserRole implements UserRepository interface.
func (repo *Repository) UpdateUserRole(id uuid.UUID, r string) error {
	if id == uuid.Nil {
		return repository.ErrNilID
	}
	if !role.Valid(r) {
		return repository.ArgError("role", "invalid role")
	}
	return updateExisting(repo.db, &model.User{ID: id}, map[string]interface{}{"role": r})
}

// UpdateUserSanction implements UserRepository interface.
func (repo *Repository) UpdateUserSanction(id uuid.UUID, args repository.UpdateUserSanctionArgs) error {
	if id == uuid.Nil {
		return repository.ErrNilID
	}
	return updateExisting(repo.db, &model.User{ID: id}, map[string]interface{}{
		"banned_until": args.BannedUntil,
		"muted_until":  args.MutedUntil,
		"ban_reason":   args.BanReason,
	})
}
