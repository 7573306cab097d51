package service

import (
	"context"
	"testing"

	"helpdesk/internal/apperror"
	"helpdesk/internal/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func newUserService() (*UserService, *fakeUserRepo) {
	users := &fakeUserRepo{}
	return NewUserService(users, testConfig()), users
}

func TestAdminCreateUserHashesPassword(t *testing.T) {
	svc, _ := newUserService()

	user, err := svc.Create(context.Background(), &CreateUserRequest{
		Username: "Staff1@B.com",
		Password: "secret",
		Role:     model.RoleStaff,
		Branch:   "Chennai",
	})
	require.NoError(t, err)

	assert.Equal(t, "staff1@b.com", user.Username)
	assert.NotEqual(t, "secret", user.Password)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(user.Password), []byte("secret")))
}

func TestAdminCreateUserDefaultsToStaff(t *testing.T) {
	svc, _ := newUserService()

	user, err := svc.Create(context.Background(), &CreateUserRequest{
		Username: "x@b.com", Password: "pw",
	})
	require.NoError(t, err)
	assert.Equal(t, model.RoleStaff, user.Role)
}

func TestAdminCreateUserDuplicate(t *testing.T) {
	svc, users := newUserService()
	users.add(&model.User{Username: "x@b.com", Role: model.RoleStaff})

	_, err := svc.Create(context.Background(), &CreateUserRequest{Username: "x@b.com", Password: "pw"})
	require.ErrorIs(t, err, apperror.ErrAlreadyExists)
}

func TestAdminCreateUserAcceptsLegacyRoleSpelling(t *testing.T) {
	svc, _ := newUserService()

	user, err := svc.Create(context.Background(), &CreateUserRequest{
		Username: "x@b.com", Password: "pw", Role: "SUPERADMIN",
	})
	require.NoError(t, err)
	assert.Equal(t, model.RoleAdmin, user.Role)
}

func TestUpdateUserPartialFields(t *testing.T) {
	svc, users := newUserService()
	existing := users.add(&model.User{
		Username: "x@b.com", Role: model.RoleStaff, Branch: "Chennai", PersonName: "Old Name",
	})

	name := "New Name"
	role := model.RoleSupervisor
	updated, err := svc.Update(context.Background(), existing.ID.Hex(), &UpdateUserRequest{
		PersonName: &name,
		Role:       &role,
	})
	require.NoError(t, err)

	assert.Equal(t, "New Name", updated.PersonName)
	assert.Equal(t, model.RoleSupervisor, updated.Role)
	assert.Equal(t, "Chennai", updated.Branch, "unspecified fields stay untouched")
}

func TestUpdateUserRejectsUnknownRole(t *testing.T) {
	svc, users := newUserService()
	existing := users.add(&model.User{Username: "x@b.com", Role: model.RoleStaff})

	role := "Root"
	_, err := svc.Update(context.Background(), existing.ID.Hex(), &UpdateUserRequest{Role: &role})
	require.ErrorIs(t, err, apperror.ErrInvalidInput)
}

func TestUpdateUserNothingToUpdate(t *testing.T) {
	svc, users := newUserService()
	existing := users.add(&model.User{Username: "x@b.com", Role: model.RoleStaff})

	_, err := svc.Update(context.Background(), existing.ID.Hex(), &UpdateUserRequest{})
	require.ErrorIs(t, err, apperror.ErrInvalidInput)
}

func TestListElidesCredentials(t *testing.T) {
	svc, users := newUserService()
	users.add(&model.User{Username: "x@b.com", Password: "hash", Role: model.RoleStaff})

	listed, err := svc.List(context.Background())
	require.NoError(t, err)
	require.Len(t, listed, 1)
	assert.Equal(t, "x@b.com", listed[0].Username)
}
