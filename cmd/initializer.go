package cmd

import (
	"errors"
	"fmt"
	"os"
	"sort"

	vd "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/samber/lo"
	"go.uber.org/zap"
	"gopkg.in/yaml.v3"

	"github.com/traPtitech/traQ-moderation/repository"
	"github.com/traPtitech/traQ-moderation/service/rbac/role"
	"github.com/traPtitech/traQ-moderation/utils/validator"
)

type dataRoot struct {
	Users map[string]*dataUser `yaml:"users"`
}

type dataUser struct {
	Role string `yaml:"role"`
}

func (d dataUser) Validate() error {
	return vd.ValidateStruct(&d,
		vd.Field(&d.Role, vd.Required, vd.In(lo.ToAnySlice(role.List())...)),
	)
}

func initData(repo repository.UserRepository, file string, logger *zap.Logger) error {
	b, err := os.ReadFile(file)
	if err != nil {
		return err
	}
	var data dataRoot
	if err := yaml.Unmarshal(b, &data); err != nil {
		return err
	}
	return createUsers(repo, data.Users, logger)
}

func createUsers(repo repository.UserRepository, users map[string]*dataUser, logger *zap.Logger) error {
	names := make([]string, 0, len(users))
	for name := range users {
		names = append(names, name)
	}
	sort.Strings(names)

	for _, name := range names {
		data := users[name]
		if data == nil {
			data = &dataUser{Role: role.User}
		}
		if err := vd.Validate(name, validator.UserNameRuleRequired...); err != nil {
			return fmt.Errorf("invalid user name %q: %w", name, err)
		}
		if err := data.Validate(); err != nil {
			return fmt.Errorf("invalid user %q: %w", name, err)
		}
		u, err := repo.CreateUser(repository.CreateUserArgs{Name: name, Role: data.Role})
		if err != nil {
			if errors.Is(err, repository.ErrAlreadyExists) {
				logger.Info("user already exists, skipped", zap.String("name", name))
				continue
			}
			return err
		}
		logger.Info("user was created", zap.String("name", u.Name), zap.String("role", u.Role), zap.Stringer("uid", u.ID))
	}
	return nil
}
