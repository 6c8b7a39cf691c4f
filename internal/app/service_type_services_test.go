//go:build unit
// +build unit

package app

import (
	"context"
	"testing"
	"time"

	"github.com/Khaledaun/LVJAPP/internal/domain/servicetypes"
	"github.com/Khaledaun/LVJAPP/internal/domain/users"
	"github.com/Khaledaun/LVJAPP/internal/pkg/apperrors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func strPtr(s string) *string { return &s }

func TestServiceTypeService_CRUD(t *testing.T) {
	ctx := context.Background()
	ts := SetupTestServices(t, nil, nil)
	admin := ts.CreateUser(t, "admin-1", users.RoleLVJAdmin)

	created, err := ts.ServiceTypes.Create(ctx, admin, servicetypes.ServiceTypeInput{
		Title:       "  Work Visa ",
		Description: strPtr("Employment-based visa applications and renewals"),
	})
	require.NoError(t, err)
	assert.Equal(t, "Work Visa", created.Title)

	_, err = ts.ServiceTypes.Create(ctx, admin, servicetypes.ServiceTypeInput{Title: "Asylum Application", Description: strPtr("  ")})
	require.NoError(t, err)

	list, err := ts.ServiceTypes.List(ctx)
	require.NoError(t, err)
	require.Len(t, list, 2)
	assert.Equal(t, "Asylum Application", list[0].Title)
	assert.Nil(t, list[0].Description)

	updated, err := ts.ServiceTypes.Update(ctx, admin, created.ID, servicetypes.ServiceTypeInput{Title: "Work Visa (H-1B)"})
	require.NoError(t, err)
	assert.Equal(t, "Work Visa (H-1B)", updated.Title)
	assert.Nil(t, updated.Description)

	got, err := ts.ServiceTypes.GetByID(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, "Work Visa (H-1B)", got.Title)

	require.NoError(t, ts.ServiceTypes.DeleteByID(ctx, admin, created.ID))
	_, err = ts.ServiceTypes.GetByID(ctx, created.ID)
	assert.Equal(t, 404, apperrors.HTTPStatus(err))
	assert.Equal(t, servicetypes.NotFoundMessage, apperrors.PublicMessage(err))
}

func TestServiceTypeService_Errors(t *testing.T) {
	ctx := context.Background()
	ts := SetupTestServices(t, nil, nil)
	admin := ts.CreateUser(t, "admin-1", users.RoleAdmin)
	staff := ts.CreateUser(t, "staff-1", users.RoleStaff)

	existing, err := ts.ServiceTypes.Create(ctx, admin, servicetypes.ServiceTypeInput{Title: "Work Visa"})
	require.NoError(t, err)

	tests := []struct {
		name    string
		call    func() error
		code    int
		message string
	}{
		{
			name: "create unauthenticated",
			call: func() error {
				_, err := ts.ServiceTypes.Create(ctx, nil, servicetypes.ServiceTypeInput{Title: "X"})
				return err
			},
			code: 401, message: "Not authenticated",
		},
		{
			name: "create as staff",
			call: func() error {
				_, err := ts.ServiceTypes.Create(ctx, staff, servicetypes.ServiceTypeInput{Title: "X"})
				return err
			},
			code: 403, message: MsgServiceTypeAdminOnly,
		},
		{
			name: "create without title",
			call: func() error {
				_, err := ts.ServiceTypes.Create(ctx, admin, servicetypes.ServiceTypeInput{Title: "   "})
				return err
			},
			code: 400, message: MsgTitleRequired,
		},
		{
			name: "create duplicate",
			call: func() error {
				_, err := ts.ServiceTypes.Create(ctx, admin, servicetypes.ServiceTypeInput{Title: "Work Visa"})
				return err
			},
			code: 409, message: servicetypes.TitleConflictMessage,
		},
		{
			name: "update missing",
			call: func() error {
				_, err := ts.ServiceTypes.Update(ctx, admin, "missing", servicetypes.ServiceTypeInput{Title: "X"})
				return err
			},
			code: 404, message: servicetypes.NotFoundMessage,
		},
		{
			name: "update as staff",
			call: func() error {
				_, err := ts.ServiceTypes.Update(ctx, staff, existing.ID, servicetypes.ServiceTypeInput{Title: "X"})
				return err
			},
			code: 403, message: MsgServiceTypeAdminOnly,
		},
		{
			name: "delete missing",
			call: func() error { return ts.ServiceTypes.DeleteByID(ctx, admin, "missing") },
			code: 404, message: servicetypes.NotFoundMessage,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.call()
			require.Error(t, err)
			assert.Equal(t, tt.code, apperrors.HTTPStatus(err))
			assert.Equal(t, tt.message, apperrors.PublicMessage(err))
		})
	}
}

func TestServiceTypeService_DeleteInUse(t *testing.T) {
	ctx := context.Background()
	ts := SetupTestServices(t, nil, nil)
	admin := ts.CreateUser(t, "admin-1", users.RoleAdmin)

	st, err := ts.ServiceTypes.Create(ctx, admin, servicetypes.ServiceTypeInput{Title: "Spouse Visa"})
	require.NoError(t, err)

	for i := 0; i < 2; i++ {
		in := validInput()
		in.ServiceTypeID = &st.ID
		_, err := ts.Cases.Create(ctx, admin, in)
		require.NoError(t, err)
		time.Sleep(2 * time.Millisecond)
	}

	err = ts.ServiceTypes.DeleteByID(ctx, admin, st.ID)
	require.Error(t, err)
	assert.Equal(t, 400, apperrors.HTTPStatus(err))
	assert.Equal(t, "Cannot delete service type. It is currently being used by 2 case(s).", apperrors.PublicMessage(err))

	_, err = ts.ServiceTypes.GetByID(ctx, st.ID)
	assert.NoError(t, err)
}

func TestPartnerRoleService_List(t *testing.T) {
	ctx := context.Background()
	ts := SetupTestServices(t, nil, nil)
	staff := ts.CreateUser(t, "staff-1", users.RoleStaff)
	client := ts.CreateUser(t, "client-1", users.RoleClient)

	_, err := ts.PartnerRoles.List(ctx, client)
	assert.Equal(t, 403, apperrors.HTTPStatus(err))
	_, err = ts.PartnerRoles.List(ctx, nil)
	assert.Equal(t, 403, apperrors.HTTPStatus(err))

	roles, err := ts.PartnerRoles.List(ctx, staff)
	require.NoError(t, err)
	assert.Empty(t, roles)
}
