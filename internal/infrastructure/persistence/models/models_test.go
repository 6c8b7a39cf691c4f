//go:build unit
// +build unit

package models

import (
	"testing"
	"time"

	"github.com/Khaledaun/LVJAPP/internal/domain/cases"
	"github.com/Khaledaun/LVJAPP/internal/domain/users"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
)

func TestCaseModel_RoundTripKeepsRelations(t *testing.T) {
	stID := "st_1"
	managerID := "staff-1"
	desc := "Employment-based visa applications and renewals"
	now := time.Now().UTC().Truncate(time.Second)

	model := &CaseModel{
		ID:            "case_1",
		CaseNumber:    "LVJ-1",
		Title:         "Work Visa Application - Jane Doe",
		ApplicantName: "Jane Doe",
		OverallStatus: "in_review",
		ServiceTypeID: &stID,
		CaseManagerID: &managerID,
		CreatedAt:     now,
		ServiceType:   &ServiceTypeModel{ID: stID, Title: "Work Visa", Description: &desc},
		CaseManager:   &UserModel{ID: managerID, Name: "Sam Staff", Email: "sam@lvj.com"},
	}

	domain := model.ToDomain()
	assert.Equal(t, cases.StatusInReview, domain.OverallStatus)
	assert.Equal(t, "Work Visa", domain.ServiceType.Title)
	assert.Equal(t, "Sam Staff", domain.CaseManager.Name)
	assert.Nil(t, domain.Client)
	assert.Nil(t, domain.Lawyer)

	back := &CaseModel{}
	back.FromDomain(domain)
	model.ServiceType = nil
	model.CaseManager = nil
	if diff := cmp.Diff(model, back); diff != "" {
		t.Errorf("FromDomain(ToDomain()) mismatch (-want +got):\n%s", diff)
	}
}

func TestStatusChangeModel_DetailsFlag(t *testing.T) {
	change := &cases.StatusChange{
		ID:                   "sc_1",
		CaseID:               "case_1",
		ChangedBy:            "staff-1",
		ChangedByLabel:       "Sam Staff",
		PreviousStatus:       cases.StatusNew,
		NewStatus:            cases.StatusSubmitted,
		NotificationsEnabled: false,
		Mode:                 cases.ModeMock,
		CreatedAt:            time.Now(),
	}

	model := &StatusChangeModel{}
	model.FromDomain(change)
	assert.Equal(t, NotificationsDisabled, model.Details.Data().Notifications)

	got := model.ToDomain()
	assert.Equal(t, "Sam Staff", got.ChangedByLabel)
	assert.False(t, got.NotificationsEnabled)
	assert.Equal(t, cases.ModeMock, got.Mode)
}

func TestUserModel_NormalizesRole(t *testing.T) {
	model := &UserModel{}
	model.FromDomain(&users.User{ID: "u1", Email: "lawyer@lvj.com", Role: "lawyer_admin", CreatedAt: time.Now()})
	assert.Equal(t, "LAWYER_ADMIN", model.Role)
}
