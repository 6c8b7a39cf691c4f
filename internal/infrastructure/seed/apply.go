package seed

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/Khaledaun/LVJAPP/internal/domain/billing"
	"github.com/Khaledaun/LVJAPP/internal/domain/cases"
	"github.com/Khaledaun/LVJAPP/internal/domain/partnerroles"
	"github.com/Khaledaun/LVJAPP/internal/domain/servicetypes"
	"github.com/Khaledaun/LVJAPP/internal/domain/store"
	"github.com/Khaledaun/LVJAPP/internal/domain/users"
	"github.com/Khaledaun/LVJAPP/internal/pkg/apperrors"
	"github.com/Khaledaun/LVJAPP/internal/pkg/logger"

	"github.com/google/uuid"
)

// Summary counts the records created by Apply. Records that already existed are skipped.
type Summary struct {
	Users        int
	ServiceTypes int
	PartnerRoles int
	Cases        int
	Documents    int
	Payments     int
	Skipped      int
}

func (s Summary) String() string {
	return fmt.Sprintf("users=%d serviceTypes=%d partnerRoles=%d cases=%d documents=%d payments=%d skipped=%d",
		s.Users, s.ServiceTypes, s.PartnerRoles, s.Cases, s.Documents, s.Payments, s.Skipped)
}

// Apply writes fixtures into repos. It can be run repeatedly: a record whose
// unique key is already taken is skipped, together with its children.
func Apply(ctx context.Context, repos *store.Repositories, fx *Fixtures, log logger.Logger) (Summary, error) {
	var sum Summary
	now := time.Now().UTC()

	for _, u := range fx.Users {
		user := &users.User{
			ID:        orNewID(u.ID),
			Email:     strings.ToLower(strings.TrimSpace(u.Email)),
			Name:      u.Name,
			Role:      users.Role(u.Role).Normalize(),
			CreatedAt: now,
			UpdatedAt: now,
		}
		created, err := skipConflict(repos.Users.Create(ctx, user))
		if err != nil {
			return sum, fmt.Errorf("failed to seed user %s: %w", u.Email, err)
		}
		sum.count(created, &sum.Users)
	}

	for _, st := range fx.ServiceTypes {
		serviceType := &servicetypes.ServiceType{
			ID:          orNewID(st.ID),
			Title:       strings.TrimSpace(st.Title),
			Description: optional(st.Description),
			CreatedAt:   now,
			UpdatedAt:   now,
		}
		created, err := skipConflict(repos.ServiceTypes.Create(ctx, serviceType))
		if err != nil {
			return sum, fmt.Errorf("failed to seed service type %s: %w", st.Title, err)
		}
		sum.count(created, &sum.ServiceTypes)
	}

	for _, pr := range fx.PartnerRoles {
		role := &partnerroles.PartnerRole{
			ID:          uuid.NewString(),
			Name:        pr.Name,
			Description: optional(pr.Description),
		}
		created, err := skipConflict(repos.PartnerRoles.Create(ctx, role))
		if err != nil {
			return sum, fmt.Errorf("failed to seed partner role %s: %w", pr.Name, err)
		}
		sum.count(created, &sum.PartnerRoles)
	}

	for i, cf := range fx.Cases {
		c, err := buildCase(ctx, repos, cf, now.Add(time.Duration(i)*time.Millisecond))
		if err != nil {
			return sum, err
		}
		created, err := skipConflict(repos.Cases.Create(ctx, c))
		if err != nil {
			return sum, fmt.Errorf("failed to seed case %s: %w", cf.Title, err)
		}
		if !created {
			// The documents and payments of an existing case were seeded with it.
			sum.Skipped++
			continue
		}
		sum.Cases++

		for _, df := range cf.Documents {
			doc := &billing.Document{ID: uuid.NewString(), CaseID: c.ID, Name: df.Name, State: df.State, CreatedAt: now}
			if err := repos.Documents.Create(ctx, doc); err != nil {
				return sum, fmt.Errorf("failed to seed document %s: %w", df.Name, err)
			}
			sum.Documents++
		}
		for _, pf := range cf.Payments {
			payment := &billing.Payment{
				ID:            uuid.NewString(),
				CaseID:        c.ID,
				Description:   pf.Description,
				Amount:        pf.Amount,
				Currency:      orDefault(pf.Currency, cases.DefaultCurrency),
				Status:        orDefault(pf.Status, billing.PaymentUnpaid),
				InvoiceNumber: optional(pf.InvoiceNumber),
				CreatedAt:     now,
			}
			created, err := skipConflict(repos.Payments.Create(ctx, payment))
			if err != nil {
				return sum, fmt.Errorf("failed to seed payment %s: %w", pf.Description, err)
			}
			sum.count(created, &sum.Payments)
		}
	}

	log.Info("Seed applied: ", sum.String())
	return sum, nil
}

func buildCase(ctx context.Context, repos *store.Repositories, cf CaseFixture, created time.Time) (*cases.Case, error) {
	c := &cases.Case{
		ID:                   orNewID(cf.ID),
		CaseNumber:           orDefault(cf.CaseNumber, cases.NewCaseNumber(created)),
		Title:                cf.Title,
		ApplicantName:        cf.ApplicantName,
		ApplicantEmail:       cf.ApplicantEmail,
		ServiceTypeID:        optional(cf.ServiceTypeID),
		OverallStatus:        cases.OverallStatus(orDefault(cf.OverallStatus, string(cases.StatusNew))),
		Stage:                orDefault(cf.Stage, cases.DefaultStage),
		UrgencyLevel:         orDefault(cf.UrgencyLevel, cases.DefaultUrgency),
		CompletionPercentage: cases.DefaultCompletionPercentage,
		TotalFee:             cf.TotalFee,
		Currency:             orDefault(cf.Currency, cases.DefaultCurrency),
		CreatedAt:            created,
		UpdatedAt:            created,
	}
	if cf.CompletionPercentage != nil {
		c.CompletionPercentage = *cf.CompletionPercentage
	}

	refs := []struct {
		email  string
		target **string
	}{
		{cf.Client, &c.ClientID},
		{cf.CaseManager, &c.CaseManagerID},
		{cf.Lawyer, &c.LawyerID},
	}
	for _, ref := range refs {
		if ref.email == "" {
			continue
		}
		u, err := repos.Users.GetByEmail(ctx, ref.email)
		if err != nil {
			return nil, fmt.Errorf("case %s references unknown user %s: %w", cf.Title, ref.email, err)
		}
		id := u.ID
		*ref.target = &id
	}
	return c, nil
}

// skipConflict reports whether a record was created, treating a conflict as already present.
func skipConflict(err error) (bool, error) {
	if err == nil {
		return true, nil
	}
	if errors.Is(err, apperrors.ErrConflict) {
		return false, nil
	}
	return false, err
}

func (s *Summary) count(created bool, field *int) {
	if created {
		*field++
		return
	}
	s.Skipped++
}

func orNewID(id string) string {
	if id == "" {
		return uuid.NewString()
	}
	return id
}

func orDefault(v, def string) string {
	if strings.TrimSpace(v) == "" {
		return def
	}
	return v
}

func optional(v string) *string {
	if strings.TrimSpace(v) == "" {
		return nil
	}
	return &v
}
