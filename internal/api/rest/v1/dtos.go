package v1

import (
	"time"

	"github.com/Khaledaun/LVJAPP/internal/domain/billing"
	"github.com/Khaledaun/LVJAPP/internal/domain/cases"
	"github.com/Khaledaun/LVJAPP/internal/domain/dashboard"
	"github.com/Khaledaun/LVJAPP/internal/domain/partnerroles"
	"github.com/Khaledaun/LVJAPP/internal/domain/servicetypes"
	"github.com/Khaledaun/LVJAPP/internal/pkg/validators"
)

// Messages produced by the transport layer itself.
const (
	MsgInvalidRequestBody = "Invalid request body"
	MsgInvalidEmail       = "Applicant email is not a valid email address"
	MsgInvalidField       = "Description is too long"
)

// ErrorResponse is the body of every failed request
type ErrorResponse struct {
	Error string `json:"error"`
}

// MessageResponse carries a plain confirmation message
type MessageResponse struct {
	Message string `json:"message"`
}

// CreateCaseRequest is the intake form. Required fields are enforced by the case service
// so the client gets a single combined message.
type CreateCaseRequest struct {
	Title          string  `json:"title"`
	ApplicantName  string  `json:"applicantName"`
	ApplicantEmail string  `json:"applicantEmail" validate:"omitempty,email"`
	ServiceTypeID  *string `json:"serviceTypeId"`
}

// Validate checks the format of the optional fields
func (r *CreateCaseRequest) Validate() error {
	return validators.Struct(r, nil)
}

func (r *CreateCaseRequest) toInput() cases.CreateCaseInput {
	in := cases.CreateCaseInput{
		Title:          r.Title,
		ApplicantName:  r.ApplicantName,
		ApplicantEmail: r.ApplicantEmail,
	}
	if r.ServiceTypeID != nil && *r.ServiceTypeID != "" {
		in.ServiceTypeID = r.ServiceTypeID
	}
	return in
}

// UpdateStatusRequest is the body of PATCH /cases/{id}/status
type UpdateStatusRequest struct {
	Status string `json:"status"`
}

// ServiceTypeRequest is the body of service type create and update
type ServiceTypeRequest struct {
	Title       string  `json:"title"`
	Description *string `json:"description" validate:"omitempty,max=2000"`
}

// Validate checks field lengths
func (r *ServiceTypeRequest) Validate() error {
	return validators.Struct(r, nil)
}

func (r *ServiceTypeRequest) toInput() servicetypes.ServiceTypeInput {
	return servicetypes.ServiceTypeInput{Title: r.Title, Description: r.Description}
}

type ServiceTypeSummaryResponse struct {
	ID          string  `json:"id"`
	Title       string  `json:"title"`
	Description *string `json:"description"`
}

type PartySummaryResponse struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
}

// CaseResponse is the JSON shape of a case
type CaseResponse struct {
	ID                   string                      `json:"id"`
	CaseNumber           string                      `json:"caseNumber"`
	Title                string                      `json:"title"`
	ApplicantName        string                      `json:"applicantName"`
	ApplicantEmail       string                      `json:"applicantEmail"`
	ClientID             *string                     `json:"clientId"`
	CaseManagerID        *string                     `json:"caseManagerId"`
	LawyerID             *string                     `json:"lawyerId"`
	ServiceTypeID        *string                     `json:"serviceTypeId"`
	OverallStatus        string                      `json:"overallStatus"`
	StatusColor          string                      `json:"statusColor,omitempty"`
	StatusLabel          string                      `json:"statusLabel,omitempty"`
	Stage                string                      `json:"stage"`
	UrgencyLevel         string                      `json:"urgencyLevel"`
	CompletionPercentage int                         `json:"completionPercentage"`
	TotalFee             int64                       `json:"totalFee"`
	Currency             string                      `json:"currency"`
	CreatedAt            time.Time                   `json:"createdAt"`
	UpdatedAt            time.Time                   `json:"updatedAt"`
	ServiceType          *ServiceTypeSummaryResponse `json:"serviceType"`
	Client               *PartySummaryResponse       `json:"client"`
	CaseManager          *PartySummaryResponse       `json:"caseManager"`
	Lawyer               *PartySummaryResponse       `json:"lawyer"`
}

type DocumentResponse struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	State     string    `json:"state"`
	CreatedAt time.Time `json:"createdAt"`
}

type PaymentResponse struct {
	ID            string     `json:"id"`
	Description   string     `json:"description"`
	Amount        int64      `json:"amount"`
	Currency      string     `json:"currency"`
	Status        string     `json:"status"`
	StatusColor   string     `json:"statusColor,omitempty"`
	InvoiceNumber *string    `json:"invoiceNumber"`
	DueDate       *time.Time `json:"dueDate"`
	PaidAt        *time.Time `json:"paidAt"`
	CreatedAt     time.Time  `json:"createdAt"`
}

// CaseDetailResponse is a case with its documents and payments
type CaseDetailResponse struct {
	CaseResponse
	Documents []DocumentResponse `json:"documents"`
	Payments  []PaymentResponse  `json:"payments"`
}

// StatusUpdateResponse omits previousStatus and newStatus when nothing changed
type StatusUpdateResponse struct {
	Case             CaseResponse `json:"case"`
	NotificationSent bool         `json:"notificationSent"`
	PreviousStatus   string       `json:"previousStatus,omitempty"`
	NewStatus        string       `json:"newStatus,omitempty"`
	Message          string       `json:"message,omitempty"`
}

type StatusChangeResponse struct {
	ID                   string    `json:"id"`
	PreviousStatus       string    `json:"previousStatus"`
	NewStatus            string    `json:"newStatus"`
	ChangedBy            string    `json:"changedBy"`
	ChangedByLabel       string    `json:"changedByLabel"`
	NotificationsEnabled bool      `json:"notificationsEnabled"`
	Mode                 string    `json:"mode"`
	CreatedAt            time.Time `json:"createdAt"`
}

type ServiceTypeResponse struct {
	ID          string    `json:"id"`
	Title       string    `json:"title"`
	Description *string   `json:"description"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

type PartnerRoleResponse struct {
	ID          string  `json:"id"`
	Name        string  `json:"name"`
	Description *string `json:"description"`
}

// MetricsResponse holds the counters relevant to the caller's role
type MetricsResponse struct {
	TotalUsers     int64         `json:"totalUsers,omitempty"`
	TotalCases     int64         `json:"totalCases"`
	ActiveCases    int64         `json:"activeCases"`
	PendingCases   int64         `json:"pendingCases,omitempty"`
	CompletedCases int64         `json:"completedCases,omitempty"`
	CurrentCase    *CaseResponse `json:"currentCase,omitempty"`
}

type DashboardResponse struct {
	Role            string          `json:"role"`
	RoleDisplayName string          `json:"roleDisplayName"`
	DashboardPath   string          `json:"dashboardPath"`
	Metrics         MetricsResponse `json:"metrics"`
}

type RouteAccessResponse struct {
	Path    string `json:"path"`
	Allowed bool   `json:"allowed"`
}

// presenter converts domain values to responses.
// Traffic light fields are only filled when the feature is on.
type presenter struct {
	trafficLight bool
}

func (p presenter) caseResponse(c *cases.Case) CaseResponse {
	resp := CaseResponse{
		ID:                   c.ID,
		CaseNumber:           c.CaseNumber,
		Title:                c.Title,
		ApplicantName:        c.ApplicantName,
		ApplicantEmail:       c.ApplicantEmail,
		ClientID:             c.ClientID,
		CaseManagerID:        c.CaseManagerID,
		LawyerID:             c.LawyerID,
		ServiceTypeID:        c.ServiceTypeID,
		OverallStatus:        string(c.OverallStatus),
		Stage:                c.Stage,
		UrgencyLevel:         c.UrgencyLevel,
		CompletionPercentage: c.CompletionPercentage,
		TotalFee:             c.TotalFee,
		Currency:             c.Currency,
		CreatedAt:            c.CreatedAt,
		UpdatedAt:            c.UpdatedAt,
		Client:               partyResponse(c.Client),
		CaseManager:          partyResponse(c.CaseManager),
		Lawyer:               partyResponse(c.Lawyer),
	}
	if c.ServiceType != nil {
		resp.ServiceType = &ServiceTypeSummaryResponse{
			ID:          c.ServiceType.ID,
			Title:       c.ServiceType.Title,
			Description: c.ServiceType.Description,
		}
	}
	if p.trafficLight {
		resp.StatusColor = string(dashboard.StatusColor(resp.OverallStatus))
		resp.StatusLabel = dashboard.StatusLabel(resp.OverallStatus)
	}
	return resp
}

func (p presenter) caseList(list []*cases.Case) []CaseResponse {
	out := make([]CaseResponse, 0, len(list))
	for _, c := range list {
		out = append(out, p.caseResponse(c))
	}
	return out
}

func (p presenter) caseDetail(d *cases.CaseDetail) CaseDetailResponse {
	resp := CaseDetailResponse{
		CaseResponse: p.caseResponse(d.Case),
		Documents:    make([]DocumentResponse, 0, len(d.Documents)),
		Payments:     make([]PaymentResponse, 0, len(d.Payments)),
	}
	for _, doc := range d.Documents {
		resp.Documents = append(resp.Documents, documentResponse(doc))
	}
	for _, pay := range d.Payments {
		pr := paymentResponse(pay)
		if p.trafficLight {
			pr.StatusColor = string(dashboard.StatusColor(pay.Status))
		}
		resp.Payments = append(resp.Payments, pr)
	}
	return resp
}

func (p presenter) statusUpdate(res *cases.StatusUpdateResult) StatusUpdateResponse {
	return StatusUpdateResponse{
		Case:             p.caseResponse(res.Case),
		NotificationSent: res.NotificationSent,
		PreviousStatus:   string(res.PreviousStatus),
		NewStatus:        string(res.NewStatus),
		Message:          res.Message,
	}
}

func (p presenter) dashboard(o *dashboard.Overview) DashboardResponse {
	resp := DashboardResponse{
		Role:            string(o.Role),
		RoleDisplayName: o.Role.DisplayName(),
		DashboardPath:   o.DashboardPath,
		Metrics: MetricsResponse{
			TotalUsers:     o.Metrics.TotalUsers,
			TotalCases:     o.Metrics.TotalCases,
			ActiveCases:    o.Metrics.ActiveCases,
			PendingCases:   o.Metrics.PendingCases,
			CompletedCases: o.Metrics.CompletedCases,
		},
	}
	if o.Metrics.CurrentCase != nil {
		current := p.caseResponse(o.Metrics.CurrentCase)
		resp.Metrics.CurrentCase = &current
	}
	return resp
}

func partyResponse(s *cases.PartySummary) *PartySummaryResponse {
	if s == nil {
		return nil
	}
	return &PartySummaryResponse{ID: s.ID, Name: s.Name, Email: s.Email}
}

func documentResponse(d *billing.Document) DocumentResponse {
	return DocumentResponse{ID: d.ID, Name: d.Name, State: d.State, CreatedAt: d.CreatedAt}
}

func paymentResponse(p *billing.Payment) PaymentResponse {
	return PaymentResponse{
		ID:            p.ID,
		Description:   p.Description,
		Amount:        p.Amount,
		Currency:      p.Currency,
		Status:        p.Status,
		InvoiceNumber: p.InvoiceNumber,
		DueDate:       p.DueDate,
		PaidAt:        p.PaidAt,
		CreatedAt:     p.CreatedAt,
	}
}

func statusChangeResponses(list []*cases.StatusChange) []StatusChangeResponse {
	out := make([]StatusChangeResponse, 0, len(list))
	for _, s := range list {
		out = append(out, StatusChangeResponse{
			ID:                   s.ID,
			PreviousStatus:       string(s.PreviousStatus),
			NewStatus:            string(s.NewStatus),
			ChangedBy:            s.ChangedBy,
			ChangedByLabel:       s.ChangedByLabel,
			NotificationsEnabled: s.NotificationsEnabled,
			Mode:                 s.Mode,
			CreatedAt:            s.CreatedAt,
		})
	}
	return out
}

func serviceTypeResponse(s *servicetypes.ServiceType) ServiceTypeResponse {
	return ServiceTypeResponse{
		ID:          s.ID,
		Title:       s.Title,
		Description: s.Description,
		CreatedAt:   s.CreatedAt,
		UpdatedAt:   s.UpdatedAt,
	}
}

func partnerRoleResponses(list []*partnerroles.PartnerRole) []PartnerRoleResponse {
	out := make([]PartnerRoleResponse, 0, len(list))
	for _, r := range list {
		out = append(out, PartnerRoleResponse{ID: r.ID, Name: r.Name, Description: r.Description})
	}
	return out
}
