/*
 * Copyright (c) 2025, Sales Journey (https://salesjourney.io).
 *
 * Sales Journey licenses this file to you under the Apache License,
 * Version 2.0 (the "License"); you may not use this file except
 * in compliance with the License.
 * You may obtain a copy of the License at
 *
 * http://www.apache.org/licenses/LICENSE-2.0
 *
 * Unless required by applicable law or agreed to in writing,
 * software distributed under the License is distributed on an
 * "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY
 * KIND, either express or implied.  See the License for the
 * specific language governing permissions and limitations
 * under the License.
 */

package link

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/suite"

	"github.com/salesjourney/onboard/internal/catalog"
	"github.com/salesjourney/onboard/internal/company"
	"github.com/salesjourney/onboard/internal/system/error/serviceerror"
)

// mockLinkStore is a func-field mock of linkStoreInterface.
type mockLinkStore struct {
	createLinkFunc        func(link Link) error
	getLinkFunc           func(id string) (Link, error)
	getLinkBySlugFunc     func(slug string) (Link, error)
	getLinksByCompanyFunc func(companyID string) ([]Link, error)
	incrementUseCountFunc func(id string) error
	deactivateLinkFunc    func(id string) error
	checkSlugConflictFunc func(slug string) (bool, error)
}

func (m *mockLinkStore) CreateLink(link Link) error      { return m.createLinkFunc(link) }
func (m *mockLinkStore) GetLink(id string) (Link, error) { return m.getLinkFunc(id) }
func (m *mockLinkStore) GetLinkBySlug(slug string) (Link, error) {
	return m.getLinkBySlugFunc(slug)
}
func (m *mockLinkStore) GetLinksByCompany(companyID string) ([]Link, error) {
	return m.getLinksByCompanyFunc(companyID)
}
func (m *mockLinkStore) IncrementUseCount(id string) error { return m.incrementUseCountFunc(id) }
func (m *mockLinkStore) DeactivateLink(id string) error    { return m.deactivateLinkFunc(id) }
func (m *mockLinkStore) CheckSlugConflict(slug string) (bool, error) {
	return m.checkSlugConflictFunc(slug)
}

// mockCompanyService is a func-field mock of company.CompanyServiceInterface.
type mockCompanyService struct {
	getCompanyFunc          func(id string) (*company.Company, *serviceerror.ServiceError)
	resolveInviteByCodeFunc func(code string) (*company.Invite, *serviceerror.ServiceError)
}

func (m *mockCompanyService) CreateCompany(request company.CompanyRequest) (
	*company.Company, *serviceerror.ServiceError) {
	return nil, nil
}
func (m *mockCompanyService) GetCompany(id string) (*company.Company, *serviceerror.ServiceError) {
	return m.getCompanyFunc(id)
}
func (m *mockCompanyService) GetCompanyBySlug(slug string) (
	*company.Company, *serviceerror.ServiceError) {
	return nil, nil
}
func (m *mockCompanyService) GetCompanyList(limit, offset int) (
	*company.CompanyListResponse, *serviceerror.ServiceError) {
	return nil, nil
}
func (m *mockCompanyService) GenerateInvite(companyID string) (
	*company.Invite, *serviceerror.ServiceError) {
	return nil, nil
}
func (m *mockCompanyService) GetActiveInvite(companyID string) (
	*company.Invite, *serviceerror.ServiceError) {
	return nil, nil
}
func (m *mockCompanyService) DeactivateInvite(companyID string) *serviceerror.ServiceError {
	return nil
}
func (m *mockCompanyService) ResolveInviteByCode(code string) (
	*company.Invite, *serviceerror.ServiceError) {
	return m.resolveInviteByCodeFunc(code)
}
func (m *mockCompanyService) ResolveInviteByToken(token string) (
	*company.Invite, *serviceerror.ServiceError) {
	return nil, nil
}

// mockFlowService is a func-field mock of catalog.FlowServiceInterface.
type mockFlowService struct {
	getFlowFunc           func(id string) (*catalog.FlowDetail, *serviceerror.ServiceError)
	getFlowForCompanyFunc func(companyID string) (*catalog.FlowDetail, *serviceerror.ServiceError)
	cloneFlowFunc         func(sourceFlowID, targetCompanyID string) (
		*catalog.FlowDetail, *serviceerror.ServiceError)
}

func (m *mockFlowService) CreateFlow(companyID *string, request catalog.FlowRequest) (
	*catalog.Flow, *serviceerror.ServiceError) {
	return nil, nil
}
func (m *mockFlowService) GetFlow(id string) (*catalog.FlowDetail, *serviceerror.ServiceError) {
	return m.getFlowFunc(id)
}
func (m *mockFlowService) UpdateFlow(id string, request catalog.FlowRequest) (
	*catalog.Flow, *serviceerror.ServiceError) {
	return nil, nil
}
func (m *mockFlowService) CloneFlow(sourceFlowID, targetCompanyID string) (
	*catalog.FlowDetail, *serviceerror.ServiceError) {
	return m.cloneFlowFunc(sourceFlowID, targetCompanyID)
}
func (m *mockFlowService) GetFlowForCompany(companyID string) (
	*catalog.FlowDetail, *serviceerror.ServiceError) {
	return m.getFlowForCompanyFunc(companyID)
}
func (m *mockFlowService) GetSystemDefaultFlow() (*catalog.FlowDetail, *serviceerror.ServiceError) {
	return nil, nil
}
func (m *mockFlowService) ListSteps(flowID string, includeInactive bool) (
	[]catalog.Step, *serviceerror.ServiceError) {
	return nil, nil
}
func (m *mockFlowService) Reorder(flowID string, request catalog.ReorderRequest) *serviceerror.ServiceError {
	return nil
}
func (m *mockFlowService) CreateStep(flowID string, request catalog.StepRequest) (
	*catalog.Step, *serviceerror.ServiceError) {
	return nil, nil
}
func (m *mockFlowService) GetStep(id string) (*catalog.Step, *serviceerror.ServiceError) {
	return nil, nil
}
func (m *mockFlowService) UpdateStep(id string, request catalog.StepRequest) (
	*catalog.Step, *serviceerror.ServiceError) {
	return nil, nil
}
func (m *mockFlowService) RemoveStep(id string) *serviceerror.ServiceError { return nil }
func (m *mockFlowService) CreateOption(stepID string, request catalog.OptionRequest) (
	*catalog.StepOption, *serviceerror.ServiceError) {
	return nil, nil
}
func (m *mockFlowService) UpdateOption(id string, request catalog.OptionRequest) (
	*catalog.StepOption, *serviceerror.ServiceError) {
	return nil, nil
}
func (m *mockFlowService) DeleteOption(id string) *serviceerror.ServiceError { return nil }

type LinkServiceTestSuite struct {
	suite.Suite
	store          *mockLinkStore
	companyService *mockCompanyService
	flowService    *mockFlowService
	service        LinkServiceInterface
}

func TestLinkServiceSuite(t *testing.T) {
	suite.Run(t, new(LinkServiceTestSuite))
}

func (suite *LinkServiceTestSuite) SetupTest() {
	suite.store = &mockLinkStore{}
	suite.companyService = &mockCompanyService{
		getCompanyFunc: func(id string) (*company.Company, *serviceerror.ServiceError) {
			return &company.Company{ID: id, Name: "Acme", Slug: "acme"}, nil
		},
	}
	suite.flowService = &mockFlowService{
		getFlowFunc: func(id string) (*catalog.FlowDetail, *serviceerror.ServiceError) {
			companyID := "company-1"
			return &catalog.FlowDetail{
				Flow: catalog.Flow{ID: id, CompanyID: &companyID, Name: "Acme flow"},
			}, nil
		},
	}
	suite.service = &linkService{
		store:          suite.store,
		companyService: suite.companyService,
		flowService:    suite.flowService,
	}
}

func (suite *LinkServiceTestSuite) TestResolveLinkSuccessIncrementsOnce() {
	increments := 0
	suite.store.getLinkBySlugFunc = func(slug string) (Link, error) {
		return Link{ID: "link-1", Slug: slug, CompanyID: "company-1", FlowID: "flow-1",
			IsActive: true}, nil
	}
	suite.store.incrementUseCountFunc = func(id string) error {
		increments++
		return nil
	}

	response, svcErr := suite.service.Resolve("acme-spring")
	assert.Nil(suite.T(), svcErr)
	assert.Equal(suite.T(), OriginLink, response.Origin)
	assert.Equal(suite.T(), "company-1", response.Company.ID)
	assert.Equal(suite.T(), 1, increments)
}

func (suite *LinkServiceTestSuite) TestResolveLowercasesCode() {
	var lookedUp string
	suite.store.getLinkBySlugFunc = func(slug string) (Link, error) {
		lookedUp = slug
		return Link{ID: "link-1", CompanyID: "company-1", FlowID: "flow-1", IsActive: true}, nil
	}
	suite.store.incrementUseCountFunc = func(id string) error { return nil }

	_, svcErr := suite.service.Resolve("Acme-Spring")
	assert.Nil(suite.T(), svcErr)
	assert.Equal(suite.T(), "acme-spring", lookedUp)
}

func (suite *LinkServiceTestSuite) TestResolveDeactivatedLinkNotFound() {
	suite.store.getLinkBySlugFunc = func(slug string) (Link, error) {
		return Link{ID: "link-1", IsActive: false}, nil
	}

	_, svcErr := suite.service.Resolve("acme-spring")
	assert.NotNil(suite.T(), svcErr)
	assert.Equal(suite.T(), ErrorEntryCodeNotFound.Code, svcErr.Code)
}

func (suite *LinkServiceTestSuite) TestResolveExpiredLinkGone() {
	expired := time.Now().UTC().Add(-time.Hour)
	suite.store.getLinkBySlugFunc = func(slug string) (Link, error) {
		return Link{ID: "link-1", IsActive: true, ExpiresAt: &expired}, nil
	}

	_, svcErr := suite.service.Resolve("acme-spring")
	assert.NotNil(suite.T(), svcErr)
	assert.Equal(suite.T(), ErrorLinkGone.Code, svcErr.Code)
}

func (suite *LinkServiceTestSuite) TestResolveExhaustedLinkGone() {
	maxUses := 3
	suite.store.getLinkBySlugFunc = func(slug string) (Link, error) {
		return Link{ID: "link-1", IsActive: true, MaxUses: &maxUses, UseCount: 3}, nil
	}

	_, svcErr := suite.service.Resolve("acme-spring")
	assert.NotNil(suite.T(), svcErr)
	assert.Equal(suite.T(), ErrorLinkGone.Code, svcErr.Code)
}

func (suite *LinkServiceTestSuite) TestResolveFallsBackToInvite() {
	suite.store.getLinkBySlugFunc = func(slug string) (Link, error) {
		return Link{}, ErrLinkNotFound
	}
	suite.companyService.resolveInviteByCodeFunc = func(code string) (
		*company.Invite, *serviceerror.ServiceError) {
		return &company.Invite{ID: "invite-1", CompanyID: "company-1", Code: code,
			IsActive: true}, nil
	}
	companyID := "company-1"
	suite.flowService.getFlowForCompanyFunc = func(id string) (
		*catalog.FlowDetail, *serviceerror.ServiceError) {
		return &catalog.FlowDetail{
			Flow: catalog.Flow{ID: "flow-1", CompanyID: &companyID, Name: "Acme flow"},
		}, nil
	}

	response, svcErr := suite.service.Resolve("WELCOME23")
	assert.Nil(suite.T(), svcErr)
	assert.Equal(suite.T(), OriginInvite, response.Origin)
	assert.Equal(suite.T(), "flow-1", response.Flow.Flow.ID)
}

func (suite *LinkServiceTestSuite) TestResolveInviteClonesSystemDefaultFlow() {
	suite.store.getLinkBySlugFunc = func(slug string) (Link, error) {
		return Link{}, ErrLinkNotFound
	}
	suite.companyService.resolveInviteByCodeFunc = func(code string) (
		*company.Invite, *serviceerror.ServiceError) {
		return &company.Invite{ID: "invite-1", CompanyID: "company-1", Code: code,
			IsActive: true}, nil
	}
	suite.flowService.getFlowForCompanyFunc = func(id string) (
		*catalog.FlowDetail, *serviceerror.ServiceError) {
		// System default flow: no owning company.
		return &catalog.FlowDetail{Flow: catalog.Flow{ID: "system-flow", Name: "Default"}}, nil
	}
	cloned := false
	suite.flowService.cloneFlowFunc = func(sourceFlowID, targetCompanyID string) (
		*catalog.FlowDetail, *serviceerror.ServiceError) {
		cloned = true
		assert.Equal(suite.T(), "system-flow", sourceFlowID)
		assert.Equal(suite.T(), "company-1", targetCompanyID)
		return &catalog.FlowDetail{
			Flow: catalog.Flow{ID: "cloned-flow", CompanyID: &targetCompanyID, Name: "Default"},
		}, nil
	}

	response, svcErr := suite.service.Resolve("WELCOME23")
	assert.Nil(suite.T(), svcErr)
	assert.True(suite.T(), cloned)
	assert.Equal(suite.T(), "cloned-flow", response.Flow.Flow.ID)
}

func (suite *LinkServiceTestSuite) TestResolveUnknownCodeNotFound() {
	suite.store.getLinkBySlugFunc = func(slug string) (Link, error) {
		return Link{}, ErrLinkNotFound
	}
	suite.companyService.resolveInviteByCodeFunc = func(code string) (
		*company.Invite, *serviceerror.ServiceError) {
		return nil, &company.ErrorInviteNotFound
	}

	_, svcErr := suite.service.Resolve("nonsense")
	assert.NotNil(suite.T(), svcErr)
	assert.Equal(suite.T(), ErrorEntryCodeNotFound.Code, svcErr.Code)
}

func (suite *LinkServiceTestSuite) TestCreateLinkGeneratesSlug() {
	suite.store.checkSlugConflictFunc = func(slug string) (bool, error) { return false, nil }
	var created Link
	suite.store.createLinkFunc = func(link Link) error {
		created = link
		return nil
	}

	link, svcErr := suite.service.CreateLink(LinkRequest{CompanyID: "company-1", FlowID: "flow-1"})
	assert.Nil(suite.T(), svcErr)
	assert.Len(suite.T(), link.Slug, linkSlugLength)
	for _, r := range link.Slug {
		assert.Contains(suite.T(), linkSlugAlphabet, string(r))
	}
	assert.True(suite.T(), created.IsActive)
	assert.Equal(suite.T(), 0, created.UseCount)
}

func (suite *LinkServiceTestSuite) TestCreateLinkSlugConflict() {
	suite.store.checkSlugConflictFunc = func(slug string) (bool, error) { return true, nil }

	_, svcErr := suite.service.CreateLink(LinkRequest{
		CompanyID: "company-1", FlowID: "flow-1", Slug: "taken",
	})
	assert.NotNil(suite.T(), svcErr)
	assert.Equal(suite.T(), ErrorSlugConflict.Code, svcErr.Code)
}

func (suite *LinkServiceTestSuite) TestCreateLinkRejectsNonPositiveMaxUses() {
	maxUses := 0
	_, svcErr := suite.service.CreateLink(LinkRequest{
		CompanyID: "company-1", FlowID: "flow-1", MaxUses: &maxUses,
	})
	assert.NotNil(suite.T(), svcErr)
	assert.Equal(suite.T(), ErrorInvalidRequestFormat.Code, svcErr.Code)
}
