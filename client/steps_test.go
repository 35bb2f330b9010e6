package client

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMapLaboratoryDetailsKeys(t *testing.T) {
	form := &RegistrationForm{
		OrganizationID: "org-1",
		LabDetails: LabDetailsForm{
			LabName:        "Acme Testing Labs",
			LabAddress:     "12 Industrial Estate",
			LabCountry:     "India",
			LabState:       "Maharashtra",
			LabDistrict:    "Pune",
			LabCity:        "Pune",
			LabPinCode:     "411001",
			ProofOfAddress: "Electricity Bill",
		},
	}

	payload := MapLaboratoryDetails(form)

	wantKeys := []string{
		"lab_name", "lab_address", "lab_country", "lab_state", "lab_district",
		"lab_city", "lab_pin_code", "lab_logo_url", "lab_proof_of_address",
		"lab_proof_of_address_other", "lab_document_id", "lab_address_proof_url",
	}
	require.Len(t, payload, len(wantKeys), "no extra keys")
	for _, key := range wantKeys {
		assert.Contains(t, payload, key)
	}
	assert.Equal(t, "Acme Testing Labs", payload["lab_name"])
	assert.Equal(t, "411001", payload["lab_pin_code"])
}

func TestMapWorkingScheduleShiftKeys(t *testing.T) {
	form := &RegistrationForm{
		WorkingSchedule: WorkingScheduleForm{
			WorkingDays:      []string{"Mon", "Tue"},
			OrganizationType: "Private Limited",
			ShiftTimings:     []ShiftTimingForm{{From: "09:00", To: "17:00"}},
		},
	}

	payload := MapWorkingSchedule(form)

	shifts, ok := payload["shift_timings"].([]map[string]interface{})
	require.True(t, ok)
	require.Len(t, shifts, 1)
	assert.Equal(t, "09:00", shifts[0]["shift_from"])
	assert.Equal(t, "17:00", shifts[0]["shift_to"])
}

func TestSaveStepThreeSequentialCalls(t *testing.T) {
	var calls []string

	mux := http.NewServeMux()
	mux.HandleFunc("/api/v1/organizations/org-1/parent-organization", func(w http.ResponseWriter, r *http.Request) {
		calls = append(calls, "parent-organization")
		json.NewEncoder(w).Encode(Organization{ID: "org-1"})
	})
	mux.HandleFunc("/api/v1/organizations/org-1/bank-details", func(w http.ResponseWriter, r *http.Request) {
		calls = append(calls, "bank-details")
		json.NewEncoder(w).Encode(Organization{ID: "org-1"})
	})

	c, _ := newTestClient(t, mux)

	form := &RegistrationForm{OrganizationID: "org-1"}
	_, err := c.SaveStep(context.Background(), 3, form)
	require.NoError(t, err)
	assert.Equal(t, []string{"parent-organization", "bank-details"}, calls)
}

func TestSaveStepThreeFirstFailureSkipsSecond(t *testing.T) {
	var bankCalled bool

	mux := http.NewServeMux()
	mux.HandleFunc("/api/v1/organizations/org-1/parent-organization", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnprocessableEntity)
		json.NewEncoder(w).Encode(map[string]interface{}{
			"detail": []map[string]interface{}{
				{"loc": []string{"body", "pin_code"}, "msg": "Invalid PIN code format"},
			},
		})
	})
	mux.HandleFunc("/api/v1/organizations/org-1/bank-details", func(w http.ResponseWriter, r *http.Request) {
		bankCalled = true
	})

	c, _ := newTestClient(t, mux)

	form := &RegistrationForm{OrganizationID: "org-1"}
	_, err := c.SaveStep(context.Background(), 3, form)
	require.Error(t, err)
	assert.False(t, bankCalled, "second call is never issued when the first fails")

	apiErr, ok := AsAPIError(err)
	require.True(t, ok)
	assert.Equal(t, "pin_code: Invalid PIN code format", apiErr.Message)
}

func TestSaveStepThreeSecondFailureSurfaces(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("/api/v1/organizations/org-1/parent-organization", func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(Organization{ID: "org-1"})
	})
	mux.HandleFunc("/api/v1/organizations/org-1/bank-details", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnprocessableEntity)
		json.NewEncoder(w).Encode(map[string]interface{}{
			"detail": []map[string]interface{}{
				{"loc": []string{"body", "ifsc_code"}, "msg": "Invalid IFSC code format"},
			},
		})
	})

	c, _ := newTestClient(t, mux)

	form := &RegistrationForm{OrganizationID: "org-1"}
	_, err := c.SaveStep(context.Background(), 3, form)
	require.Error(t, err)

	apiErr, ok := AsAPIError(err)
	require.True(t, ok)
	assert.Equal(t, "ifsc_code: Invalid IFSC code format", apiErr.Message)
}

func TestSaveStepEightSequentialCalls(t *testing.T) {
	var calls []string

	mux := http.NewServeMux()
	mux.HandleFunc("/api/v1/organizations/org-1/accreditation", func(w http.ResponseWriter, r *http.Request) {
		calls = append(calls, "accreditation")
		json.NewEncoder(w).Encode(Organization{ID: "org-1"})
	})
	mux.HandleFunc("/api/v1/organizations/org-1/other-details", func(w http.ResponseWriter, r *http.Request) {
		calls = append(calls, "other-details")
		json.NewEncoder(w).Encode(Organization{ID: "org-1"})
	})

	c, _ := newTestClient(t, mux)

	form := &RegistrationForm{OrganizationID: "org-1"}
	_, err := c.SaveStep(context.Background(), 8, form)
	require.NoError(t, err)
	assert.Equal(t, []string{"accreditation", "other-details"}, calls)
}

func TestSaveStepPersistsOrganizationId(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(Organization{ID: "org-9"})
	}))
	defer srv.Close()

	c := New(WithBaseURL(srv.URL))
	form := &RegistrationForm{OrganizationID: "org-9"}
	_, err := c.SaveStep(context.Background(), 1, form)
	require.NoError(t, err)
	assert.Equal(t, "org-9", c.Tokens().Get(OrganizationKey))
}

func TestSaveStepUnknownStep(t *testing.T) {
	c := New()
	_, err := c.SaveStep(context.Background(), 11, &RegistrationForm{OrganizationID: "org-1"})
	assert.Error(t, err)

	_, err = c.SaveStep(context.Background(), 0, &RegistrationForm{OrganizationID: "org-1"})
	assert.Error(t, err)
}
