//go:build integration
// +build integration

package persistence

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/Khaledaun/LVJAPP/internal/domain/billing"
	"github.com/Khaledaun/LVJAPP/internal/domain/cases"
	"github.com/Khaledaun/LVJAPP/internal/domain/partnerroles"
	"github.com/Khaledaun/LVJAPP/internal/domain/servicetypes"
	"github.com/Khaledaun/LVJAPP/internal/domain/users"
	"github.com/Khaledaun/LVJAPP/internal/pkg/apperrors"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// The same behaviour is asserted against every supported database.

func persistUser(t *testing.T, tc *TestContext, role users.Role) string {
	t.Helper()

	u := CreateTestUser(t, role)
	require.NoError(t, tc.Repos.Users.Create(context.Background(), u))
	return u.ID
}

func testCaseRepository(t *testing.T, dbType string) {
	ctx := context.Background()

	t.Run("create and get with relations", func(t *testing.T) {
		tc := SetupTestDB(t, dbType)

		manager := CreateTestUser(t, users.RoleStaff)
		require.NoError(t, tc.Repos.Users.Create(ctx, manager))
		st := CreateTestServiceType(t, "Work Visa")
		require.NoError(t, tc.Repos.ServiceTypes.Create(ctx, st))

		c := CreateTestCase(t, manager.ID)
		c.ServiceTypeID = &st.ID
		require.NoError(t, tc.Repos.Cases.Create(ctx, c))

		got, err := tc.Repos.Cases.GetByID(ctx, c.ID)
		require.NoError(t, err)
		assert.Equal(t, c.CaseNumber, got.CaseNumber)
		require.NotNil(t, got.ServiceType)
		assert.Equal(t, "Work Visa", got.ServiceType.Title)
		require.NotNil(t, got.CaseManager)
		assert.Equal(t, manager.Name, got.CaseManager.Name)
		assert.Nil(t, got.Lawyer)
	})

	t.Run("duplicate case number conflicts", func(t *testing.T) {
		tc := SetupTestDB(t, dbType)

		staff := persistUser(t, tc, users.RoleStaff)
		first := CreateTestCase(t, staff)
		require.NoError(t, tc.Repos.Cases.Create(ctx, first))

		second := CreateTestCase(t, staff)
		second.CaseNumber = first.CaseNumber
		err := tc.Repos.Cases.Create(ctx, second)
		require.Error(t, err)
		assert.True(t, errors.Is(err, apperrors.ErrConflict))
		assert.Equal(t, cases.NumberConflictMessage, apperrors.PublicMessage(err))
	})

	t.Run("list scopes by participant and client", func(t *testing.T) {
		tc := SetupTestDB(t, dbType)

		clientID := persistUser(t, tc, users.RoleClient)
		staff := persistUser(t, tc, users.RoleStaff)
		lawyer := persistUser(t, tc, users.RoleLawyerAssociate)
		other := persistUser(t, tc, users.RoleStaff)

		managed := CreateTestCase(t, staff)
		managed.ClientID = &clientID
		represented := CreateTestCase(t, lawyer)
		represented.LawyerID = &staff
		unrelated := CreateTestCase(t, other)

		for _, c := range []*cases.Case{managed, represented, unrelated} {
			require.NoError(t, tc.Repos.Cases.Create(ctx, c))
		}

		q := cases.NewCaseQuery()
		q.ParticipantID = staff
		list, err := tc.Repos.Cases.List(ctx, q)
		require.NoError(t, err)
		assert.Len(t, list, 2)

		q = cases.NewCaseQuery()
		q.ClientID = clientID
		list, err = tc.Repos.Cases.List(ctx, q)
		require.NoError(t, err)
		require.Len(t, list, 1)
		assert.Equal(t, managed.ID, list[0].ID)

		all, err := tc.Repos.Cases.List(ctx, cases.NewCaseQuery())
		require.NoError(t, err)
		assert.Len(t, all, 3)
	})

	t.Run("list orders newest first", func(t *testing.T) {
		tc := SetupTestDB(t, dbType)

		staff := persistUser(t, tc, users.RoleStaff)
		older := CreateTestCase(t, staff)
		older.CreatedAt = time.Now().Add(-time.Hour)
		newer := CreateTestCase(t, staff)
		require.NoError(t, tc.Repos.Cases.Create(ctx, older))
		require.NoError(t, tc.Repos.Cases.Create(ctx, newer))

		list, err := tc.Repos.Cases.List(ctx, cases.NewCaseQuery())
		require.NoError(t, err)
		require.Len(t, list, 2)
		assert.Equal(t, newer.ID, list[0].ID)
	})

	t.Run("update status", func(t *testing.T) {
		tc := SetupTestDB(t, dbType)

		staff := persistUser(t, tc, users.RoleStaff)
		c := CreateTestCase(t, staff)
		require.NoError(t, tc.Repos.Cases.Create(ctx, c))

		c.OverallStatus = cases.StatusInReview
		c.UpdatedAt = time.Now()
		require.NoError(t, tc.Repos.Cases.UpdateStatus(ctx, c))

		got, err := tc.Repos.Cases.GetByID(ctx, c.ID)
		require.NoError(t, err)
		assert.Equal(t, cases.StatusInReview, got.OverallStatus)

		missing := CreateTestCase(t, staff)
		err = tc.Repos.Cases.UpdateStatus(ctx, missing)
		assert.True(t, errors.Is(err, apperrors.ErrNotFound))
	})

	t.Run("count with filters", func(t *testing.T) {
		tc := SetupTestDB(t, dbType)

		staff := persistUser(t, tc, users.RoleStaff)
		st := CreateTestServiceType(t, "")
		require.NoError(t, tc.Repos.ServiceTypes.Create(ctx, st))

		statuses := []cases.OverallStatus{cases.StatusNew, cases.StatusInReview, cases.StatusApproved}
		for _, s := range statuses {
			c := CreateTestCase(t, staff)
			c.OverallStatus = s
			c.ServiceTypeID = &st.ID
			require.NoError(t, tc.Repos.Cases.Create(ctx, c))
		}

		n, err := tc.Repos.Cases.Count(ctx, cases.CaseCountFilter{ServiceTypeID: st.ID})
		require.NoError(t, err)
		assert.Equal(t, int64(3), n)

		n, err = tc.Repos.Cases.Count(ctx, cases.CaseCountFilter{ExcludeStatuses: []cases.OverallStatus{cases.StatusApproved, cases.StatusDenied}})
		require.NoError(t, err)
		assert.Equal(t, int64(2), n)

		n, err = tc.Repos.Cases.Count(ctx, cases.CaseCountFilter{ParticipantID: staff, Statuses: []cases.OverallStatus{cases.StatusInReview}})
		require.NoError(t, err)
		assert.Equal(t, int64(1), n)
	})

	t.Run("get missing case", func(t *testing.T) {
		tc := SetupTestDB(t, dbType)

		_, err := tc.Repos.Cases.GetByID(ctx, "nope")
		assert.True(t, errors.Is(err, apperrors.ErrNotFound))
		assert.Equal(t, cases.NotFoundMessage, apperrors.PublicMessage(err))
	})
}

func testServiceTypeRepository(t *testing.T, dbType string) {
	ctx := context.Background()

	t.Run("list ordered by title", func(t *testing.T) {
		tc := SetupTestDB(t, dbType)

		for _, title := range []string{"Work Visa", "Asylum Application", "Spouse Visa"} {
			require.NoError(t, tc.Repos.ServiceTypes.Create(ctx, CreateTestServiceType(t, title)))
		}

		list, err := tc.Repos.ServiceTypes.List(ctx)
		require.NoError(t, err)
		require.Len(t, list, 3)
		assert.Equal(t, "Asylum Application", list[0].Title)
		assert.Equal(t, "Work Visa", list[2].Title)
	})

	t.Run("duplicate title conflicts on create and update", func(t *testing.T) {
		tc := SetupTestDB(t, dbType)

		work := CreateTestServiceType(t, "Work Visa")
		student := CreateTestServiceType(t, "Student Visa")
		require.NoError(t, tc.Repos.ServiceTypes.Create(ctx, work))
		require.NoError(t, tc.Repos.ServiceTypes.Create(ctx, student))

		err := tc.Repos.ServiceTypes.Create(ctx, CreateTestServiceType(t, "Work Visa"))
		assert.True(t, errors.Is(err, apperrors.ErrConflict))

		student.Title = "Work Visa"
		err = tc.Repos.ServiceTypes.UpdateByID(ctx, student)
		assert.True(t, errors.Is(err, apperrors.ErrConflict))
		assert.Equal(t, servicetypes.TitleConflictMessage, apperrors.PublicMessage(err))
	})

	t.Run("update and delete missing", func(t *testing.T) {
		tc := SetupTestDB(t, dbType)

		ghost := CreateTestServiceType(t, "Ghost")
		assert.True(t, errors.Is(tc.Repos.ServiceTypes.UpdateByID(ctx, ghost), apperrors.ErrNotFound))
		assert.True(t, errors.Is(tc.Repos.ServiceTypes.DeleteByID(ctx, ghost.ID), apperrors.ErrNotFound))
	})

	t.Run("update then delete", func(t *testing.T) {
		tc := SetupTestDB(t, dbType)

		st := CreateTestServiceType(t, "Tourist Extension")
		require.NoError(t, tc.Repos.ServiceTypes.Create(ctx, st))

		desc := "Tourist visa extensions and visitor status changes"
		st.Description = &desc
		st.UpdatedAt = time.Now()
		require.NoError(t, tc.Repos.ServiceTypes.UpdateByID(ctx, st))

		got, err := tc.Repos.ServiceTypes.GetByID(ctx, st.ID)
		require.NoError(t, err)
		require.NotNil(t, got.Description)
		assert.Equal(t, desc, *got.Description)

		require.NoError(t, tc.Repos.ServiceTypes.DeleteByID(ctx, st.ID))
		_, err = tc.Repos.ServiceTypes.GetByID(ctx, st.ID)
		assert.True(t, errors.Is(err, apperrors.ErrNotFound))
	})
}

func testUserAndSessionRepositories(t *testing.T, dbType string) {
	ctx := context.Background()
	tc := SetupTestDB(t, dbType)

	u := CreateTestUser(t, users.RoleClient)
	u.Email = "Ali@Example.com"
	require.NoError(t, tc.Repos.Users.Create(ctx, u))

	got, err := tc.Repos.Users.GetByEmail(ctx, "ali@example.com")
	require.NoError(t, err)
	assert.Equal(t, u.ID, got.ID)

	dup := CreateTestUser(t, users.RoleStaff)
	dup.Email = "ali@example.com"
	assert.True(t, errors.Is(tc.Repos.Users.Create(ctx, dup), apperrors.ErrConflict))

	count, err := tc.Repos.Users.Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(1), count)

	session := &users.Session{
		Token:     uuid.NewString() + uuid.NewString(),
		UserID:    u.ID,
		ExpiresAt: time.Now().Add(time.Hour),
		CreatedAt: time.Now(),
	}
	require.NoError(t, tc.Repos.Sessions.Create(ctx, session))

	gotSession, err := tc.Repos.Sessions.GetByToken(ctx, session.Token)
	require.NoError(t, err)
	assert.Equal(t, u.ID, gotSession.UserID)

	require.NoError(t, tc.Repos.Sessions.DeleteByToken(ctx, session.Token))
	_, err = tc.Repos.Sessions.GetByToken(ctx, session.Token)
	assert.True(t, errors.Is(err, apperrors.ErrNotFound))
}

func testSupportingRepositories(t *testing.T, dbType string) {
	ctx := context.Background()
	tc := SetupTestDB(t, dbType)

	staff := persistUser(t, tc, users.RoleStaff)
	c := CreateTestCase(t, staff)
	require.NoError(t, tc.Repos.Cases.Create(ctx, c))

	invoice := "INV-1001"
	require.NoError(t, tc.Repos.Payments.Create(ctx, &billing.Payment{
		ID: uuid.NewString(), CaseID: c.ID, Description: "Service Fee – Filing",
		Amount: 75000, Currency: "USD", Status: billing.PaymentUnpaid, InvoiceNumber: &invoice, CreatedAt: time.Now(),
	}))
	err := tc.Repos.Payments.Create(ctx, &billing.Payment{
		ID: uuid.NewString(), CaseID: c.ID, Description: "Duplicate",
		Amount: 1, Currency: "USD", Status: billing.PaymentUnpaid, InvoiceNumber: &invoice, CreatedAt: time.Now(),
	})
	assert.True(t, errors.Is(err, apperrors.ErrConflict))

	require.NoError(t, tc.Repos.Documents.Create(ctx, &billing.Document{
		ID: uuid.NewString(), CaseID: c.ID, Name: "Passport Scan", State: billing.DocumentUploaded, CreatedAt: time.Now(),
	}))

	payments, err := tc.Repos.Payments.ListByCase(ctx, c.ID)
	require.NoError(t, err)
	assert.Len(t, payments, 1)

	documents, err := tc.Repos.Documents.ListByCase(ctx, c.ID)
	require.NoError(t, err)
	require.Len(t, documents, 1)
	assert.Equal(t, "Passport Scan", documents[0].Name)

	for _, name := range []string{"Translator", "Courier"} {
		require.NoError(t, tc.Repos.PartnerRoles.Create(ctx, &partnerroles.PartnerRole{ID: uuid.NewString(), Name: name}))
	}
	roles, err := tc.Repos.PartnerRoles.List(ctx)
	require.NoError(t, err)
	require.Len(t, roles, 2)
	assert.Equal(t, "Courier", roles[0].Name)

	change := &cases.StatusChange{
		ID: uuid.NewString(), CaseID: c.ID, ChangedBy: staff, ChangedByLabel: "Sam Staff",
		PreviousStatus: cases.StatusNew, NewStatus: cases.StatusInReview,
		NotificationsEnabled: true, Mode: cases.ModeDatabase, CreatedAt: time.Now(),
	}
	require.NoError(t, tc.Repos.StatusChanges.Create(ctx, change))

	history, err := tc.Repos.StatusChanges.ListByCase(ctx, c.ID)
	require.NoError(t, err)
	require.Len(t, history, 1)
	assert.Equal(t, "Sam Staff", history[0].ChangedByLabel)
	assert.True(t, history[0].NotificationsEnabled)
}
