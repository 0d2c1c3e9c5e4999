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

package company

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/suite"
)

// mockCompanyStore is a func-field mock of companyStoreInterface.
type mockCompanyStore struct {
	createCompanyFunc          func(company Company) error
	getCompanyFunc             func(id string) (Company, error)
	getCompanyBySlugFunc       func(slug string) (Company, error)
	getCompanyListCountFunc    func() (int, error)
	getCompanyListFunc         func(limit, offset int) ([]Company, error)
	checkCompanyConflictFunc   func(name, slug string) (bool, error)
	createInviteFunc           func(invite Invite) error
	deactivateInvitesFunc      func(companyID string) error
	getActiveInviteFunc        func(companyID string) (Invite, error)
	getActiveInviteByCodeFunc  func(code string) (Invite, error)
	getActiveInviteByTokenFunc func(token string) (Invite, error)
}

func (m *mockCompanyStore) CreateCompany(company Company) error {
	return m.createCompanyFunc(company)
}
func (m *mockCompanyStore) GetCompany(id string) (Company, error) {
	return m.getCompanyFunc(id)
}
func (m *mockCompanyStore) GetCompanyBySlug(slug string) (Company, error) {
	return m.getCompanyBySlugFunc(slug)
}
func (m *mockCompanyStore) GetCompanyListCount() (int, error) {
	return m.getCompanyListCountFunc()
}
func (m *mockCompanyStore) GetCompanyList(limit, offset int) ([]Company, error) {
	return m.getCompanyListFunc(limit, offset)
}
func (m *mockCompanyStore) CheckCompanyConflict(name, slug string) (bool, error) {
	return m.checkCompanyConflictFunc(name, slug)
}
func (m *mockCompanyStore) CreateInvite(invite Invite) error {
	return m.createInviteFunc(invite)
}
func (m *mockCompanyStore) DeactivateInvites(companyID string) error {
	return m.deactivateInvitesFunc(companyID)
}
func (m *mockCompanyStore) GetActiveInvite(companyID string) (Invite, error) {
	return m.getActiveInviteFunc(companyID)
}
func (m *mockCompanyStore) GetActiveInviteByCode(code string) (Invite, error) {
	return m.getActiveInviteByCodeFunc(code)
}
func (m *mockCompanyStore) GetActiveInviteByToken(token string) (Invite, error) {
	return m.getActiveInviteByTokenFunc(token)
}

type CompanyServiceTestSuite struct {
	suite.Suite
	store   *mockCompanyStore
	service *companyService
}

func TestCompanyServiceSuite(t *testing.T) {
	suite.Run(t, new(CompanyServiceTestSuite))
}

func (suite *CompanyServiceTestSuite) SetupTest() {
	suite.store = &mockCompanyStore{}
	suite.service = &companyService{store: suite.store}
}

func (suite *CompanyServiceTestSuite) TestCreateCompanyLowercasesSlug() {
	suite.store.checkCompanyConflictFunc = func(name, slug string) (bool, error) {
		return false, nil
	}
	var created Company
	suite.store.createCompanyFunc = func(company Company) error {
		created = company
		return nil
	}

	company, svcErr := suite.service.CreateCompany(CompanyRequest{Name: "Acme", Slug: "Acme-Inc"})
	assert.Nil(suite.T(), svcErr)
	assert.Equal(suite.T(), "acme-inc", company.Slug)
	assert.Equal(suite.T(), created.ID, company.ID)
	assert.NotEmpty(suite.T(), company.ID)
}

func (suite *CompanyServiceTestSuite) TestCreateCompanyConflict() {
	suite.store.checkCompanyConflictFunc = func(name, slug string) (bool, error) {
		return true, nil
	}

	_, svcErr := suite.service.CreateCompany(CompanyRequest{Name: "Acme", Slug: "acme"})
	assert.NotNil(suite.T(), svcErr)
	assert.Equal(suite.T(), ErrorCompanyConflict.Code, svcErr.Code)
}

func (suite *CompanyServiceTestSuite) TestCreateCompanyRequiresNameAndSlug() {
	_, svcErr := suite.service.CreateCompany(CompanyRequest{Name: "", Slug: "acme"})
	assert.NotNil(suite.T(), svcErr)
	assert.Equal(suite.T(), ErrorInvalidRequestFormat.Code, svcErr.Code)

	_, svcErr = suite.service.CreateCompany(CompanyRequest{Name: "Acme", Slug: ""})
	assert.NotNil(suite.T(), svcErr)
	assert.Equal(suite.T(), ErrorInvalidRequestFormat.Code, svcErr.Code)
}

func (suite *CompanyServiceTestSuite) TestGetCompanyNotFound() {
	suite.store.getCompanyFunc = func(id string) (Company, error) {
		return Company{}, ErrCompanyNotFound
	}

	_, svcErr := suite.service.GetCompany("company-missing")
	assert.NotNil(suite.T(), svcErr)
	assert.Equal(suite.T(), ErrorCompanyNotFound.Code, svcErr.Code)
}

func (suite *CompanyServiceTestSuite) TestGetCompanyBySlugLowercasesLookup() {
	var lookedUp string
	suite.store.getCompanyBySlugFunc = func(slug string) (Company, error) {
		lookedUp = slug
		return Company{ID: "company-1", Slug: slug}, nil
	}

	company, svcErr := suite.service.GetCompanyBySlug("Acme-Inc")
	assert.Nil(suite.T(), svcErr)
	assert.Equal(suite.T(), "acme-inc", lookedUp)
	assert.Equal(suite.T(), "company-1", company.ID)
}

func (suite *CompanyServiceTestSuite) TestGetCompanyListPagination() {
	suite.store.getCompanyListCountFunc = func() (int, error) {
		return 12, nil
	}
	suite.store.getCompanyListFunc = func(limit, offset int) ([]Company, error) {
		return []Company{{ID: "company-1"}, {ID: "company-2"}}, nil
	}

	response, svcErr := suite.service.GetCompanyList(2, 10)
	assert.Nil(suite.T(), svcErr)
	assert.Equal(suite.T(), 12, response.TotalResults)
	assert.Equal(suite.T(), 11, response.StartIndex)
	assert.Equal(suite.T(), 2, response.Count)

	_, svcErr = suite.service.GetCompanyList(0, 0)
	assert.NotNil(suite.T(), svcErr)
	assert.Equal(suite.T(), ErrorInvalidPagination.Code, svcErr.Code)
}

func (suite *CompanyServiceTestSuite) TestGenerateInviteRotatesPreviousInvites() {
	suite.store.getCompanyFunc = func(id string) (Company, error) {
		return Company{ID: id, Name: "Acme"}, nil
	}
	var deactivated string
	suite.store.deactivateInvitesFunc = func(companyID string) error {
		deactivated = companyID
		return nil
	}
	var created Invite
	suite.store.createInviteFunc = func(invite Invite) error {
		created = invite
		return nil
	}

	invite, svcErr := suite.service.GenerateInvite("company-1")
	assert.Nil(suite.T(), svcErr)
	assert.Equal(suite.T(), "company-1", deactivated)
	assert.True(suite.T(), created.IsActive)
	assert.NotEmpty(suite.T(), invite.Token)
	assert.Len(suite.T(), invite.Code, inviteCodeLength)
	for _, char := range invite.Code {
		assert.True(suite.T(), strings.ContainsRune(inviteCodeAlphabet, char))
	}
}

func (suite *CompanyServiceTestSuite) TestGenerateInviteUnknownCompany() {
	suite.store.getCompanyFunc = func(id string) (Company, error) {
		return Company{}, ErrCompanyNotFound
	}

	_, svcErr := suite.service.GenerateInvite("company-missing")
	assert.NotNil(suite.T(), svcErr)
	assert.Equal(suite.T(), ErrorCompanyNotFound.Code, svcErr.Code)
}

func (suite *CompanyServiceTestSuite) TestResolveInviteByCodeNotFound() {
	suite.store.getActiveInviteByCodeFunc = func(code string) (Invite, error) {
		return Invite{}, ErrInviteNotFound
	}

	_, svcErr := suite.service.ResolveInviteByCode("UNKNOWN1")
	assert.NotNil(suite.T(), svcErr)
	assert.Equal(suite.T(), ErrorInviteNotFound.Code, svcErr.Code)
}

func (suite *CompanyServiceTestSuite) TestInviteCodeCharset() {
	code, err := generateInviteCode()
	assert.NoError(suite.T(), err)
	assert.Len(suite.T(), code, inviteCodeLength)
	// Ambiguous characters are excluded from the alphabet.
	assert.NotContains(suite.T(), code, "0")
	assert.NotContains(suite.T(), code, "O")
	assert.NotContains(suite.T(), code, "1")
	assert.NotContains(suite.T(), code, "I")
}
