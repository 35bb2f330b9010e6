package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func completeOrganization() *Organization {
	return &Organization{
		ID:                 "org-1",
		LabName:            "Acme Testing Labs",
		LabAddress:         "12 Industrial Estate",
		LabState:           "Maharashtra",
		LabDistrict:        "Pune",
		LabCity:            "Pune",
		LabPinCode:         "411001",
		LabProofOfAddress:  "Electricity Bill",
		RegisteredOffice:   &RegisteredOffice{SameAsLabAddress: true},
		TopManagement:      []TopManagement{{Name: "R. Sharma", Designation: "Director", Mobile: "+919812345678"}},
		ParentOrganization: &ParentOrganization{SameAsLaboratory: true},
		BankDetails:        &BankDetails{AccountNumber: "123456", IfscCode: "HDFC0001234"},
		WorkingSchedule: &WorkingSchedule{
			WorkingDays:      StringList{"Mon", "Tue", "Wed", "Thu", "Fri"},
			OrganizationType: "Private Limited",
		},
		ShiftTimings:        []ShiftTiming{{ShiftFrom: "09:00", ShiftTo: "17:00"}},
		ComplianceDocuments: []ComplianceDocument{{DocumentType: "Trade License"}},
		PolicyDocuments: &PolicyDocuments{
			ImpartialityDocumentUrl:    "/uploads/documents/impartiality.pdf",
			TermsConditionsDocumentUrl: "/uploads/documents/terms.pdf",
			CodeOfEthicsDocumentUrl:    "/uploads/documents/ethics.pdf",
		},
		Infrastructure:         &InfrastructureDetails{WaterSource: "Municipal"},
		AccreditationDocuments: []AccreditationDocument{{CertificationType: "NABL"}},
		OtherDetails:           &OtherLabDetails{OtherDetails: "None"},
		QualityManual:          &QualityManual{Title: "Quality Manual"},
		SOPs:                   []SOP{{Title: "Sample Handling"}},
		QualityFormats:         []QualityFormat{{Title: "Test Report Format"}},
		QualityProcedures:      []QualityProcedure{{Title: "Document Control"}},
	}
}

func TestBuildChecklistComplete(t *testing.T) {
	checklist := BuildChecklist(completeOrganization())

	require.Len(t, checklist.Steps, 10)
	assert.True(t, checklist.IsReadyForSubmission)
	assert.Equal(t, float64(100), checklist.OverallCompletion)
	for _, step := range checklist.Steps {
		assert.True(t, step.IsCompleted, "step %d (%s) should be complete", step.StepId, step.StepName)
		assert.Empty(t, step.MissingFields)
	}
}

func TestBuildChecklistMissingFields(t *testing.T) {
	organization := completeOrganization()
	organization.LabProofOfAddress = ""
	organization.PolicyDocuments.CodeOfEthicsDocumentUrl = ""

	checklist := BuildChecklist(organization)

	assert.False(t, checklist.IsReadyForSubmission)
	assert.Equal(t, float64(80), checklist.OverallCompletion)

	step1 := checklist.Steps[0]
	assert.False(t, step1.IsCompleted)
	assert.Equal(t, []string{"lab_proof_of_address"}, step1.MissingFields)

	step6 := checklist.Steps[5]
	assert.False(t, step6.IsCompleted)
	assert.Equal(t, []string{"code_of_ethics_document_url"}, step6.MissingFields)
}

func TestBuildChecklistEmptyOrganization(t *testing.T) {
	checklist := BuildChecklist(&Organization{ID: "org-2", LabName: "Bare Lab"})

	assert.False(t, checklist.IsReadyForSubmission)
	assert.Equal(t, float64(0), checklist.OverallCompletion)
	for _, step := range checklist.Steps {
		assert.False(t, step.IsCompleted)
	}
}

func TestBuildChecklistStepOrdering(t *testing.T) {
	checklist := BuildChecklist(completeOrganization())
	for idx, step := range checklist.Steps {
		assert.Equal(t, idx+1, step.StepId)
	}
}
