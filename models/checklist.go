package models

// ChecklistItem reports completion for one wizard step.
type ChecklistItem struct {
	StepId         int      `json:"step_id"`
	StepName       string   `json:"step_name"`
	IsCompleted    bool     `json:"is_completed"`
	RequiredFields []string `json:"required_fields"`
	MissingFields  []string `json:"missing_fields"`
}

type ChecklistResponse struct {
	OrganizationId        string          `json:"organization_id"`
	OverallCompletion     float64         `json:"overall_completion"`
	IsReadyForSubmission  bool            `json:"is_ready_for_submission"`
	Steps                 []ChecklistItem `json:"steps"`
}

type checklistField struct {
	name    string
	present bool
}

func checklistStep(stepId int, stepName string, fields ...checklistField) ChecklistItem {
	item := ChecklistItem{
		StepId:      stepId,
		StepName:    stepName,
		IsCompleted: true,
	}
	for _, field := range fields {
		item.RequiredFields = append(item.RequiredFields, field.name)
		if !field.present {
			item.MissingFields = append(item.MissingFields, field.name)
			item.IsCompleted = false
		}
	}
	if item.MissingFields == nil {
		item.MissingFields = []string{}
	}
	return item
}

// BuildChecklist computes step completion over a fully preloaded organization.
// It is a pure function so submission and the checklist endpoint cannot
// disagree.
func BuildChecklist(organization *Organization) *ChecklistResponse {

	office := organization.RegisteredOffice
	steps := []ChecklistItem{
		checklistStep(1, "Laboratory Details",
			checklistField{"lab_name", organization.LabName != ""},
			checklistField{"lab_address", organization.LabAddress != ""},
			checklistField{"lab_state", organization.LabState != ""},
			checklistField{"lab_district", organization.LabDistrict != ""},
			checklistField{"lab_city", organization.LabCity != ""},
			checklistField{"lab_pin_code", organization.LabPinCode != ""},
			checklistField{"lab_proof_of_address", organization.LabProofOfAddress != ""},
		),
		checklistStep(2, "Registered Office & Top Management",
			checklistField{"registered_office", office != nil && (office.SameAsLabAddress || office.Address != "")},
			checklistField{"top_management", len(organization.TopManagement) > 0},
		),
		checklistStep(3, "Parent Organization & Bank Details",
			checklistField{"parent_organization", organization.ParentOrganization != nil},
			checklistField{"bank_details", organization.BankDetails != nil},
		),
		checklistStep(4, "Working Schedule",
			checklistField{"working_days", organization.WorkingSchedule != nil && len(organization.WorkingSchedule.WorkingDays) > 0},
			checklistField{"organization_type", organization.WorkingSchedule != nil && organization.WorkingSchedule.OrganizationType != ""},
			checklistField{"shift_timings", len(organization.ShiftTimings) > 0},
		),
		checklistStep(5, "Statutory Compliance",
			checklistField{"compliance_documents", len(organization.ComplianceDocuments) > 0},
		),
		checklistStep(6, "Policy Documents",
			checklistField{"impartiality_document_url", organization.PolicyDocuments != nil && organization.PolicyDocuments.ImpartialityDocumentUrl != ""},
			checklistField{"terms_conditions_document_url", organization.PolicyDocuments != nil && organization.PolicyDocuments.TermsConditionsDocumentUrl != ""},
			checklistField{"code_of_ethics_document_url", organization.PolicyDocuments != nil && organization.PolicyDocuments.CodeOfEthicsDocumentUrl != ""},
		),
		checklistStep(7, "Infrastructure",
			checklistField{"water_source", organization.Infrastructure != nil && organization.Infrastructure.WaterSource != ""},
		),
		checklistStep(8, "Accreditation & Other Details",
			checklistField{"accreditation_documents", len(organization.AccreditationDocuments) > 0},
			checklistField{"other_details", organization.OtherDetails != nil},
		),
		checklistStep(9, "Quality Manual & SOPs",
			checklistField{"quality_manual", organization.QualityManual != nil && organization.QualityManual.Title != ""},
			checklistField{"sops", len(organization.SOPs) > 0},
		),
		checklistStep(10, "Quality Formats & Procedures",
			checklistField{"quality_formats", len(organization.QualityFormats) > 0},
			checklistField{"quality_procedures", len(organization.QualityProcedures) > 0},
		),
	}

	completed := 0
	for _, step := range steps {
		if step.IsCompleted {
			completed++
		}
	}

	return &ChecklistResponse{
		OrganizationId:       organization.ID,
		OverallCompletion:    float64(completed) / float64(len(steps)) * 100,
		IsReadyForSubmission: completed == len(steps),
		Steps:                steps,
	}
}
