package client

import (
	"context"
	"fmt"
)

// RegistrationForm mirrors the wizard's in-memory form state. Field groups
// use Go naming; the per-step mappers below translate them into the
// snake_case payloads the step endpoints expect.
type RegistrationForm struct {
	OrganizationID string

	LabDetails       LabDetailsForm
	RegisteredOffice RegisteredOfficeForm
	ParentOrg        ParentOrgForm
	BankDetails      BankDetailsForm
	WorkingSchedule  WorkingScheduleForm
	Compliance       []ComplianceDocumentForm
	PolicyDocuments  PolicyDocumentsForm
	Infrastructure   InfrastructureForm
	Accreditations   []AccreditationForm
	OtherDetails     OtherDetailsForm
	QualityManual    QualityManualForm
	QualityFormats   []QualityRecordForm
	QualityProcs     []QualityProcedureForm
}

type LabDetailsForm struct {
	LabName             string
	LabAddress          string
	LabCountry          string
	LabState            string
	LabDistrict         string
	LabCity             string
	LabPinCode          string
	LabLogoUrl          string
	ProofOfAddress      string
	ProofOfAddressOther string
	DocumentId          string
	AddressProofUrl     string
}

type TopManagementForm struct {
	Name        string
	Designation string
	Mobile      string
	Telephone   string
	Fax         string
}

type RegisteredOfficeForm struct {
	SameAsLabAddress         bool
	Address                  string
	Country                  string
	State                    string
	District                 string
	City                     string
	PinCode                  string
	Mobile                   string
	Telephone                string
	Fax                      string
	TopManagementDocumentUrl string
	TopManagement            []TopManagementForm
}

type ParentOrgForm struct {
	SameAsLaboratory bool
	Name             string
	Address          string
	Country          string
	State            string
	District         string
	City             string
	PinCode          string
}

type BankDetailsForm struct {
	AccountHolderName  string
	AccountNumber      string
	IfscCode           string
	BranchName         string
	GstNumber          string
	CancelledChequeUrl string
}

type ShiftTimingForm struct {
	From string
	To   string
}

type WorkingScheduleForm struct {
	WorkingDays               []string
	OrganizationType          string
	OrganizationTypeOther     string
	ProofOfLegalIdentity      string
	ProofOfLegalIdentityOther string
	LegalIdentityDocumentId   string
	LegalIdentityDocumentUrl  string
	ShiftTimings              []ShiftTimingForm
}

type ComplianceDocumentForm struct {
	DocumentType      string
	DocumentTypeOther string
	DocumentId        string
	FileUrl           string
}

type PolicyDocumentsForm struct {
	ImpartialityDocumentUrl         string
	TermsConditionsDocumentUrl      string
	CodeOfEthicsDocumentUrl         string
	TestingChargesPolicyDocumentUrl string
}

type InfrastructureForm struct {
	AdequacySanctionedLoad         string
	AvailabilityUninterruptedPower bool
	StabilityOfSupply              bool
	WaterSource                    string
}

type AccreditationForm struct {
	CertificationType      string
	CertificationTypeOther string
	CertificateNo          string
	CertificateFileUrl     string
	ScopeFileUrl           string
}

type OtherDetailsForm struct {
	OtherDetails            string
	OtherDetailsDocumentUrl string
	LayoutLabPremisesUrl    string
	OrganizationChartUrl    string
	GpsLatitude             string
	GpsLongitude            string
}

type QualityManualForm struct {
	Title       string
	IssueNumber string
	IssueDate   string
	Amendments  string
	DocumentUrl string
	SOPs        []QualityRecordForm
}

type QualityRecordForm struct {
	Title       string
	Number      string
	IssueNumber string
	IssueDate   string
	Amendments  string
}

type QualityProcedureForm struct {
	Title       string
	Number      string
	FileUrl     string
	IssueNumber string
	IssueDate   string
	Amendments  string
}

func MapLaboratoryDetails(form *RegistrationForm) map[string]interface{} {
	d := form.LabDetails
	return map[string]interface{}{
		"lab_name":                   d.LabName,
		"lab_address":                d.LabAddress,
		"lab_country":                d.LabCountry,
		"lab_state":                  d.LabState,
		"lab_district":               d.LabDistrict,
		"lab_city":                   d.LabCity,
		"lab_pin_code":               d.LabPinCode,
		"lab_logo_url":               d.LabLogoUrl,
		"lab_proof_of_address":       d.ProofOfAddress,
		"lab_proof_of_address_other": d.ProofOfAddressOther,
		"lab_document_id":            d.DocumentId,
		"lab_address_proof_url":      d.AddressProofUrl,
	}
}

func MapRegisteredOffice(form *RegistrationForm) map[string]interface{} {
	o := form.RegisteredOffice
	members := make([]map[string]interface{}, 0, len(o.TopManagement))
	for _, m := range o.TopManagement {
		members = append(members, map[string]interface{}{
			"name":        m.Name,
			"designation": m.Designation,
			"mobile":      m.Mobile,
			"telephone":   m.Telephone,
			"fax":         m.Fax,
		})
	}
	return map[string]interface{}{
		"same_as_lab_address":         o.SameAsLabAddress,
		"address":                     o.Address,
		"country":                     o.Country,
		"state":                       o.State,
		"district":                    o.District,
		"city":                        o.City,
		"pin_code":                    o.PinCode,
		"mobile":                      o.Mobile,
		"telephone":                   o.Telephone,
		"fax":                         o.Fax,
		"top_management_document_url": o.TopManagementDocumentUrl,
		"top_management":              members,
	}
}

func MapParentOrganization(form *RegistrationForm) map[string]interface{} {
	p := form.ParentOrg
	return map[string]interface{}{
		"same_as_laboratory": p.SameAsLaboratory,
		"name":               p.Name,
		"address":            p.Address,
		"country":            p.Country,
		"state":              p.State,
		"district":           p.District,
		"city":               p.City,
		"pin_code":           p.PinCode,
	}
}

func MapBankDetails(form *RegistrationForm) map[string]interface{} {
	b := form.BankDetails
	return map[string]interface{}{
		"account_holder_name":  b.AccountHolderName,
		"account_number":       b.AccountNumber,
		"ifsc_code":            b.IfscCode,
		"branch_name":          b.BranchName,
		"gst_number":           b.GstNumber,
		"cancelled_cheque_url": b.CancelledChequeUrl,
	}
}

func MapWorkingSchedule(form *RegistrationForm) map[string]interface{} {
	w := form.WorkingSchedule
	shifts := make([]map[string]interface{}, 0, len(w.ShiftTimings))
	for _, s := range w.ShiftTimings {
		shifts = append(shifts, map[string]interface{}{
			"shift_from": s.From,
			"shift_to":   s.To,
		})
	}
	return map[string]interface{}{
		"working_days":                  w.WorkingDays,
		"organization_type":             w.OrganizationType,
		"organization_type_other":       w.OrganizationTypeOther,
		"proof_of_legal_identity":       w.ProofOfLegalIdentity,
		"proof_of_legal_identity_other": w.ProofOfLegalIdentityOther,
		"legal_identity_document_id":    w.LegalIdentityDocumentId,
		"legal_identity_document_url":   w.LegalIdentityDocumentUrl,
		"shift_timings":                 shifts,
	}
}

func MapComplianceDocuments(form *RegistrationForm) map[string]interface{} {
	docs := make([]map[string]interface{}, 0, len(form.Compliance))
	for _, d := range form.Compliance {
		docs = append(docs, map[string]interface{}{
			"document_type":       d.DocumentType,
			"document_type_other": d.DocumentTypeOther,
			"document_id":         d.DocumentId,
			"file_url":            d.FileUrl,
		})
	}
	return map[string]interface{}{"compliance_documents": docs}
}

func MapPolicyDocuments(form *RegistrationForm) map[string]interface{} {
	p := form.PolicyDocuments
	return map[string]interface{}{
		"impartiality_document_url":           p.ImpartialityDocumentUrl,
		"terms_conditions_document_url":       p.TermsConditionsDocumentUrl,
		"code_of_ethics_document_url":         p.CodeOfEthicsDocumentUrl,
		"testing_charges_policy_document_url": p.TestingChargesPolicyDocumentUrl,
	}
}

func MapInfrastructure(form *RegistrationForm) map[string]interface{} {
	i := form.Infrastructure
	return map[string]interface{}{
		"adequacy_sanctioned_load":         i.AdequacySanctionedLoad,
		"availability_uninterrupted_power": i.AvailabilityUninterruptedPower,
		"stability_of_supply":              i.StabilityOfSupply,
		"water_source":                     i.WaterSource,
	}
}

func MapAccreditation(form *RegistrationForm) map[string]interface{} {
	docs := make([]map[string]interface{}, 0, len(form.Accreditations))
	for _, a := range form.Accreditations {
		docs = append(docs, map[string]interface{}{
			"certification_type":       a.CertificationType,
			"certification_type_other": a.CertificationTypeOther,
			"certificate_no":           a.CertificateNo,
			"certificate_file_url":     a.CertificateFileUrl,
			"scope_file_url":           a.ScopeFileUrl,
		})
	}
	return map[string]interface{}{"accreditation_documents": docs}
}

func MapOtherDetails(form *RegistrationForm) map[string]interface{} {
	o := form.OtherDetails
	return map[string]interface{}{
		"other_details":              o.OtherDetails,
		"other_details_document_url": o.OtherDetailsDocumentUrl,
		"layout_lab_premises_url":    o.LayoutLabPremisesUrl,
		"organization_chart_url":     o.OrganizationChartUrl,
		"gps_latitude":               o.GpsLatitude,
		"gps_longitude":              o.GpsLongitude,
	}
}

func MapQualityManual(form *RegistrationForm) map[string]interface{} {
	m := form.QualityManual
	sops := make([]map[string]interface{}, 0, len(m.SOPs))
	for _, s := range m.SOPs {
		sops = append(sops, map[string]interface{}{
			"title":        s.Title,
			"number":       s.Number,
			"issue_number": s.IssueNumber,
			"issue_date":   s.IssueDate,
			"amendments":   s.Amendments,
		})
	}
	return map[string]interface{}{
		"title":        m.Title,
		"issue_number": m.IssueNumber,
		"issue_date":   m.IssueDate,
		"amendments":   m.Amendments,
		"document_url": m.DocumentUrl,
		"sops":         sops,
	}
}

func MapQualityFormats(form *RegistrationForm) map[string]interface{} {
	formats := make([]map[string]interface{}, 0, len(form.QualityFormats))
	for _, f := range form.QualityFormats {
		formats = append(formats, map[string]interface{}{
			"title":        f.Title,
			"number":       f.Number,
			"issue_number": f.IssueNumber,
			"issue_date":   f.IssueDate,
			"amendments":   f.Amendments,
		})
	}
	procedures := make([]map[string]interface{}, 0, len(form.QualityProcs))
	for _, p := range form.QualityProcs {
		procedures = append(procedures, map[string]interface{}{
			"title":        p.Title,
			"number":       p.Number,
			"file_url":     p.FileUrl,
			"issue_number": p.IssueNumber,
			"issue_date":   p.IssueDate,
			"amendments":   p.Amendments,
		})
	}
	return map[string]interface{}{
		"quality_formats":    formats,
		"quality_procedures": procedures,
	}
}

// SaveStep persists one wizard step. Steps 3 and 8 are two sequential calls;
// if the first fails the second is never issued, and either error propagates
// unmodified with no rollback of the first call.
func (c *Client) SaveStep(ctx context.Context, step int, form *RegistrationForm) (*Organization, error) {

	if form.OrganizationID == "" {
		return nil, fmt.Errorf("organization id is not set on the form")
	}
	// Remember the in-flight registration so a reload can resume it.
	c.tokens.Set(OrganizationKey, form.OrganizationID)

	id := form.OrganizationID
	orgs := c.Organizations

	switch step {
	case 1:
		return orgs.UpdateLaboratoryDetails(ctx, id, MapLaboratoryDetails(form))
	case 2:
		return orgs.UpdateRegisteredOffice(ctx, id, MapRegisteredOffice(form))
	case 3:
		if _, err := orgs.UpdateParentOrganization(ctx, id, MapParentOrganization(form)); err != nil {
			return nil, err
		}
		return orgs.UpdateBankDetails(ctx, id, MapBankDetails(form))
	case 4:
		return orgs.UpdateWorkingSchedule(ctx, id, MapWorkingSchedule(form))
	case 5:
		return orgs.UpdateComplianceDocuments(ctx, id, MapComplianceDocuments(form))
	case 6:
		return orgs.UpdatePolicyDocuments(ctx, id, MapPolicyDocuments(form))
	case 7:
		return orgs.UpdateInfrastructure(ctx, id, MapInfrastructure(form))
	case 8:
		if _, err := orgs.UpdateAccreditation(ctx, id, MapAccreditation(form)); err != nil {
			return nil, err
		}
		return orgs.UpdateOtherDetails(ctx, id, MapOtherDetails(form))
	case 9:
		return orgs.UpdateQualityManual(ctx, id, MapQualityManual(form))
	case 10:
		return orgs.UpdateQualityFormats(ctx, id, MapQualityFormats(form))
	default:
		return nil, fmt.Errorf("unknown wizard step %d", step)
	}
}
