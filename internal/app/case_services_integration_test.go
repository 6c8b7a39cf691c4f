//go:build integration
// +build integration

package app

import (
	"context"
	"testing"

	"github.com/Khaledaun/LVJAPP/internal/domain/cases"
	"github.com/Khaledaun/LVJAPP/internal/domain/servicetypes"
	"github.com/Khaledaun/LVJAPP/internal/domain/users"
	"github.com/Khaledaun/LVJAPP/internal/infrastructure/persistence"
	"github.com/Khaledaun/LVJAPP/internal/pkg/apperrors"
	"github.com/Khaledaun/LVJAPP/internal/pkg/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCaseLifecycle_Sqlite(t *testing.T) {
	ctx := context.Background()
	tc := persistence.SetupTestDB(t, config.SqliteDbType)
	ts := SetupTestServices(t, tc.Repos, nil)

	admin := ts.CreateUser(t, "admin-1", users.RoleLVJAdmin)
	staff := ts.CreateUser(t, "staff-1", users.RoleLVJTeam)

	st, err := ts.ServiceTypes.Create(ctx, admin, servicetypes.ServiceTypeInput{Title: "Work Visa"})
	require.NoError(t, err)

	in := validInput()
	in.ServiceTypeID = &st.ID
	c, err := ts.Cases.Create(ctx, staff, in)
	require.NoError(t, err)
	require.NotNil(t, c.ServiceType)
	assert.Equal(t, "Work Visa", c.ServiceType.Title)

	res, err := ts.Cases.UpdateStatus(ctx, staff, c.ID, cases.StatusDocumentsPending)
	require.NoError(t, err)
	assert.Equal(t, cases.StatusNew, res.PreviousStatus)

	history, err := ts.Cases.History(ctx, admin, c.ID)
	require.NoError(t, err)
	require.Len(t, history, 1)
	assert.Equal(t, cases.ModeDatabase, history[0].Mode)
	assert.Equal(t, cases.StatusDocumentsPending, history[0].NewStatus)
	assert.True(t, ts.Logger.Contains("mode=database"))

	err = ts.ServiceTypes.DeleteByID(ctx, admin, st.ID)
	assert.Equal(t, "Cannot delete service type. It is currently being used by 1 case(s).", apperrors.PublicMessage(err))

	_, err = ts.Cases.UpdateStatus(ctx, staff, "missing", cases.StatusApproved)
	assert.Equal(t, 404, apperrors.HTTPStatus(err))
}
