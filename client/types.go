package client

type TokenPair struct {
	AccessToken  string `json:"access_token"`
	RefreshToken string `json:"refresh_token"`
	TokenType    string `json:"token_type"`
}

type User struct {
	ID             int    `json:"id"`
	Username       string `json:"username"`
	Email          string `json:"email"`
	Role           string `json:"role"`
	OrganizationID string `json:"organization_id"`
}

type LoginResponse struct {
	AccessToken  string `json:"access_token"`
	RefreshToken string `json:"refresh_token"`
	TokenType    string `json:"token_type"`
	User         *User  `json:"user"`
}

// Organization mirrors the server resource; children are present when the
// server preloads them.
type Organization struct {
	ID                     string                  `json:"id"`
	LabName                string                  `json:"lab_name"`
	LabAddress             string                  `json:"lab_address"`
	LabCountry             string                  `json:"lab_country"`
	LabState               string                  `json:"lab_state"`
	LabDistrict            string                  `json:"lab_district"`
	LabCity                string                  `json:"lab_city"`
	LabPinCode             string                  `json:"lab_pin_code"`
	LabLogoUrl             string                  `json:"lab_logo_url"`
	LabProofOfAddress      string                  `json:"lab_proof_of_address"`
	LabProofOfAddressOther string                  `json:"lab_proof_of_address_other"`
	LabDocumentId          string                  `json:"lab_document_id"`
	LabAddressProofUrl     string                  `json:"lab_address_proof_url"`
	Status                 string                  `json:"status"`
	RegisteredOffice       map[string]interface{}   `json:"registered_office,omitempty"`
	TopManagement          []map[string]interface{} `json:"top_management,omitempty"`
	ParentOrganization     map[string]interface{}   `json:"parent_organization,omitempty"`
	BankDetails            map[string]interface{}   `json:"bank_details,omitempty"`
	WorkingSchedule        map[string]interface{}   `json:"working_schedule,omitempty"`
	ShiftTimings           []map[string]interface{} `json:"shift_timings,omitempty"`
	ComplianceDocuments    []map[string]interface{} `json:"compliance_documents,omitempty"`
	PolicyDocuments        map[string]interface{}   `json:"policy_documents,omitempty"`
	Infrastructure         map[string]interface{}   `json:"infrastructure,omitempty"`
	AccreditationDocuments []map[string]interface{} `json:"accreditation_documents,omitempty"`
	OtherDetails           map[string]interface{}   `json:"other_details,omitempty"`
	QualityManual          map[string]interface{}   `json:"quality_manual,omitempty"`
	SOPs                   []map[string]interface{} `json:"sops,omitempty"`
	QualityFormats         []map[string]interface{} `json:"quality_formats,omitempty"`
	QualityProcedures      []map[string]interface{} `json:"quality_procedures,omitempty"`
}

type ChecklistItem struct {
	StepId         int      `json:"step_id"`
	StepName       string   `json:"step_name"`
	IsCompleted    bool     `json:"is_completed"`
	RequiredFields []string `json:"required_fields"`
	MissingFields  []string `json:"missing_fields"`
}

type ChecklistResponse struct {
	OrganizationId       string          `json:"organization_id"`
	OverallCompletion    float64         `json:"overall_completion"`
	IsReadyForSubmission bool            `json:"is_ready_for_submission"`
	Steps                []ChecklistItem `json:"steps"`
}

type Instrument struct {
	ID                  int    `json:"id"`
	OrganizationID      string `json:"organization_id"`
	Name                string `json:"name"`
	Make                string `json:"make"`
	Model               string `json:"model"`
	SerialNumber        string `json:"serial_number"`
	Location            string `json:"location"`
	Range               string `json:"range"`
	LeastCount          string `json:"least_count"`
	LastCalibrationDate string `json:"last_calibration_date"`
	NextCalibrationDue  string `json:"next_calibration_due"`
	Status              string `json:"status"`
}

type Calibration struct {
	ID                int    `json:"id"`
	OrganizationID    string `json:"organization_id"`
	InstrumentID      int    `json:"instrument_id"`
	CalibrationDate   string `json:"calibration_date"`
	DueDate           string `json:"due_date"`
	Agency            string `json:"agency"`
	CertificateNumber string `json:"certificate_number"`
	CertificateUrl    string `json:"certificate_url"`
	Status            string `json:"status"`
	Remarks           string `json:"remarks"`
}

type Consumable struct {
	ID             int     `json:"id"`
	OrganizationID string  `json:"organization_id"`
	Name           string  `json:"name"`
	Category       string  `json:"category"`
	Unit           string  `json:"unit"`
	Quantity       float64 `json:"quantity"`
	ReorderLevel   float64 `json:"reorder_level"`
	Supplier       string  `json:"supplier"`
	ExpiryDate     string  `json:"expiry_date"`
	BatchNumber    string  `json:"batch_number"`
}

type SOPDocument struct {
	ID             int    `json:"id"`
	OrganizationID string `json:"organization_id"`
	Title          string `json:"title"`
	DocumentNumber string `json:"document_number"`
	Revision       string `json:"revision"`
	EffectiveDate  string `json:"effective_date"`
	ReviewDate     string `json:"review_date"`
	Department     string `json:"department"`
	FileUrl        string `json:"file_url"`
}

type Audit struct {
	ID             int    `json:"id"`
	OrganizationID string `json:"organization_id"`
	Title          string `json:"title"`
	AuditType      string `json:"audit_type"`
	ScheduledDate  string `json:"scheduled_date"`
	CompletedDate  string `json:"completed_date"`
	Auditor        string `json:"auditor"`
	Scope          string `json:"scope"`
	Findings       string `json:"findings"`
	Status         string `json:"status"`
}

type NonConformance struct {
	ID               int    `json:"id"`
	OrganizationID   string `json:"organization_id"`
	Title            string `json:"title"`
	Description      string `json:"description"`
	Source           string `json:"source"`
	Severity         string `json:"severity"`
	RaisedDate       string `json:"raised_date"`
	DueDate          string `json:"due_date"`
	ClosedDate       string `json:"closed_date"`
	CorrectiveAction string `json:"corrective_action"`
	AssignedTo       string `json:"assigned_to"`
	Status           string `json:"status"`
}

type UploadResponse struct {
	Success      bool   `json:"success"`
	FileUrl      string `json:"file_url"`
	ThumbnailUrl string `json:"thumbnail_url,omitempty"`
	Filename     string `json:"filename"`
	DocType      string `json:"doc_type,omitempty"`
}

type UploadedFile struct {
	FileUrl  string `json:"file_url"`
	Filename string `json:"filename"`
}

type MultiUploadResponse struct {
	Success bool           `json:"success"`
	Files   []UploadedFile `json:"files"`
	Count   int            `json:"count"`
}
