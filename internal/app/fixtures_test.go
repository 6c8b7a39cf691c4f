//go:build unit || integration
// +build unit integration

package app

import "github.com/Khaledaun/LVJAPP/internal/domain/cases"

func validInput() cases.CreateCaseInput {
	return cases.CreateCaseInput{
		Title:          "Work Visa Application - Jane Doe",
		ApplicantName:  "Jane Doe",
		ApplicantEmail: "jane.doe@example.com",
	}
}
