package client

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
)

type OrganizationService struct {
	c *Client
}

func (s *OrganizationService) cacheKey(id string) string {
	return "organizations:" + id
}

func (s *OrganizationService) Create(ctx context.Context, payload map[string]interface{}) (*Organization, error) {
	var result Organization
	if err := s.c.do(ctx, http.MethodPost, "/api/v1/organizations", nil, payload, &result); err != nil {
		return nil, err
	}
	s.c.ClearCache("organizations")
	return &result, nil
}

func (s *OrganizationService) GetAll(ctx context.Context, skip, limit int) ([]Organization, error) {

	key := fmt.Sprintf("organizations:list:%d:%d", skip, limit)
	if cached, ok := s.c.GetCached(key); ok {
		if result, ok := cached.([]Organization); ok {
			return result, nil
		}
	}

	query := url.Values{}
	query.Set("skip", strconv.Itoa(skip))
	query.Set("limit", strconv.Itoa(limit))

	var result []Organization
	if err := s.c.do(ctx, http.MethodGet, "/api/v1/organizations", query, nil, &result); err != nil {
		return nil, err
	}
	s.c.SetCached(key, result)
	return result, nil
}

func (s *OrganizationService) GetByID(ctx context.Context, id string) (*Organization, error) {

	if cached, ok := s.c.GetCached(s.cacheKey(id)); ok {
		if result, ok := cached.(*Organization); ok {
			return result, nil
		}
	}

	var result Organization
	if err := s.c.do(ctx, http.MethodGet, "/api/v1/organizations/"+id, nil, nil, &result); err != nil {
		return nil, err
	}
	s.c.SetCached(s.cacheKey(id), &result)
	return &result, nil
}

func (s *OrganizationService) Delete(ctx context.Context, id string) error {
	if err := s.c.do(ctx, http.MethodDelete, "/api/v1/organizations/"+id, nil, nil, nil); err != nil {
		return err
	}
	s.c.ClearCache("organizations")
	return nil
}

// updateStep PUTs one wizard-step payload and refreshes the cached
// organization with the server's response.
func (s *OrganizationService) updateStep(ctx context.Context, id, step string, payload map[string]interface{}) (*Organization, error) {
	var result Organization
	if err := s.c.do(ctx, http.MethodPut, "/api/v1/organizations/"+id+"/"+step, nil, payload, &result); err != nil {
		return nil, err
	}
	s.c.ClearCache("organizations")
	return &result, nil
}

func (s *OrganizationService) UpdateLaboratoryDetails(ctx context.Context, id string, payload map[string]interface{}) (*Organization, error) {
	return s.updateStep(ctx, id, "laboratory-details", payload)
}

func (s *OrganizationService) UpdateRegisteredOffice(ctx context.Context, id string, payload map[string]interface{}) (*Organization, error) {
	return s.updateStep(ctx, id, "registered-office", payload)
}

func (s *OrganizationService) UpdateParentOrganization(ctx context.Context, id string, payload map[string]interface{}) (*Organization, error) {
	return s.updateStep(ctx, id, "parent-organization", payload)
}

func (s *OrganizationService) UpdateBankDetails(ctx context.Context, id string, payload map[string]interface{}) (*Organization, error) {
	return s.updateStep(ctx, id, "bank-details", payload)
}

func (s *OrganizationService) UpdateWorkingSchedule(ctx context.Context, id string, payload map[string]interface{}) (*Organization, error) {
	return s.updateStep(ctx, id, "working-schedule", payload)
}

func (s *OrganizationService) UpdateComplianceDocuments(ctx context.Context, id string, payload map[string]interface{}) (*Organization, error) {
	return s.updateStep(ctx, id, "compliance-documents", payload)
}

func (s *OrganizationService) UpdatePolicyDocuments(ctx context.Context, id string, payload map[string]interface{}) (*Organization, error) {
	return s.updateStep(ctx, id, "policy-documents", payload)
}

func (s *OrganizationService) UpdateInfrastructure(ctx context.Context, id string, payload map[string]interface{}) (*Organization, error) {
	return s.updateStep(ctx, id, "infrastructure", payload)
}

func (s *OrganizationService) UpdateAccreditation(ctx context.Context, id string, payload map[string]interface{}) (*Organization, error) {
	return s.updateStep(ctx, id, "accreditation", payload)
}

func (s *OrganizationService) UpdateOtherDetails(ctx context.Context, id string, payload map[string]interface{}) (*Organization, error) {
	return s.updateStep(ctx, id, "other-details", payload)
}

func (s *OrganizationService) UpdateQualityManual(ctx context.Context, id string, payload map[string]interface{}) (*Organization, error) {
	return s.updateStep(ctx, id, "quality-manual", payload)
}

func (s *OrganizationService) UpdateQualityFormats(ctx context.Context, id string, payload map[string]interface{}) (*Organization, error) {
	return s.updateStep(ctx, id, "quality-formats", payload)
}

func (s *OrganizationService) GetChecklist(ctx context.Context, id string) (*ChecklistResponse, error) {
	var result ChecklistResponse
	if err := s.c.do(ctx, http.MethodGet, "/api/v1/organizations/"+id+"/checklist", nil, nil, &result); err != nil {
		return nil, err
	}
	return &result, nil
}

func (s *OrganizationService) Submit(ctx context.Context, id string) (*Organization, error) {
	var result Organization
	if err := s.c.do(ctx, http.MethodPost, "/api/v1/organizations/"+id+"/submit", nil, nil, &result); err != nil {
		return nil, err
	}
	s.c.ClearCache("organizations")
	return &result, nil
}
