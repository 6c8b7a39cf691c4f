//go:build unit
// +build unit

package validators

import (
	"testing"

	"github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/assert"
)

type sample struct {
	Status string `validate:"required,status"`
	Role   string `validate:"omitempty,role"`
}

func TestStruct_CustomEnums(t *testing.T) {
	custom := map[string]validator.Func{
		"status": Enum("new", "approved"),
		"role":   FoldedEnum("ADMIN", "STAFF"),
	}

	tests := []struct {
		name    string
		input   sample
		wantErr bool
	}{
		{"known status", sample{Status: "new"}, false},
		{"status is case sensitive", sample{Status: "NEW"}, true},
		{"unknown status", sample{Status: "archived"}, true},
		{"missing status", sample{}, true},
		{"role ignores case", sample{Status: "approved", Role: "staff"}, false},
		{"unknown role", sample{Status: "approved", Role: "owner"}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := Struct(&tt.input, custom)
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestStruct_MessageFormat(t *testing.T) {
	err := Struct(&sample{Status: "archived"}, map[string]validator.Func{
		"status": Enum("new"),
		"role":   FoldedEnum("ADMIN"),
	})

	assert.EqualError(t, err, "validation failed: [Field: Status, Tag: status]")
}
