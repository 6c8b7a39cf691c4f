// Package seed loads YAML fixtures into a storage backend.
package seed

import (
	"bytes"
	"embed"
	"errors"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"
)

// Embedded fixture names.
const (
	FixtureDev  = "dev"
	FixtureSeed = "seed"
)

//go:embed fixtures/*.yaml
var embedded embed.FS

// Fixtures is the YAML representation of seed data.
type Fixtures struct {
	Users        []UserFixture        `yaml:"users"`
	ServiceTypes []ServiceTypeFixture `yaml:"serviceTypes"`
	PartnerRoles []PartnerRoleFixture `yaml:"partnerRoles"`
	Cases        []CaseFixture        `yaml:"cases"`
}

// UserFixture describes a user. ID is generated when empty.
type UserFixture struct {
	ID    string `yaml:"id"`
	Email string `yaml:"email"`
	Name  string `yaml:"name"`
	Role  string `yaml:"role"`
}

// ServiceTypeFixture describes a catalog entry. ID is generated when empty.
type ServiceTypeFixture struct {
	ID          string `yaml:"id"`
	Title       string `yaml:"title"`
	Description string `yaml:"description"`
}

// PartnerRoleFixture describes a partner role.
type PartnerRoleFixture struct {
	Name        string `yaml:"name"`
	Description string `yaml:"description"`
}

// CaseFixture describes a case. Client, CaseManager and Lawyer reference users by email.
// Zero values fall back to the defaults of a newly created case.
type CaseFixture struct {
	ID                   string            `yaml:"id"`
	CaseNumber           string            `yaml:"caseNumber"`
	Title                string            `yaml:"title"`
	ApplicantName        string            `yaml:"applicantName"`
	ApplicantEmail       string            `yaml:"applicantEmail"`
	ServiceTypeID        string            `yaml:"serviceTypeId"`
	OverallStatus        string            `yaml:"overallStatus"`
	Stage                string            `yaml:"stage"`
	UrgencyLevel         string            `yaml:"urgencyLevel"`
	CompletionPercentage *int              `yaml:"completionPercentage"`
	TotalFee             int64             `yaml:"totalFee"`
	Currency             string            `yaml:"currency"`
	Client               string            `yaml:"client"`
	CaseManager          string            `yaml:"caseManager"`
	Lawyer               string            `yaml:"lawyer"`
	Documents            []DocumentFixture `yaml:"documents"`
	Payments             []PaymentFixture  `yaml:"payments"`
}

// DocumentFixture describes a case document.
type DocumentFixture struct {
	Name  string `yaml:"name"`
	State string `yaml:"state"`
}

// PaymentFixture describes a case payment. Amount is in minor units.
type PaymentFixture struct {
	Description   string `yaml:"description"`
	Amount        int64  `yaml:"amount"`
	Currency      string `yaml:"currency"`
	Status        string `yaml:"status"`
	InvoiceNumber string `yaml:"invoiceNumber"`
}

// Parse decodes fixtures from YAML. Unknown keys are rejected.
func Parse(data []byte) (*Fixtures, error) {
	var fx Fixtures
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&fx); err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("failed to parse fixtures: %w", err)
	}
	return &fx, nil
}

// Load returns one of the embedded fixture sets by name.
func Load(name string) (*Fixtures, error) {
	data, err := embedded.ReadFile("fixtures/" + name + ".yaml")
	if err != nil {
		return nil, fmt.Errorf("unknown fixture %q: %w", name, err)
	}
	return Parse(data)
}

// LoadFile reads fixtures from a YAML file on disk.
func LoadFile(path string) (*Fixtures, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read fixture file %s: %w", path, err)
	}
	return Parse(data)
}
