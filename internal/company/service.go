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

// Package company handles partner company and invite code management.
package company

import (
	"crypto/rand"
	"errors"
	"math/big"
	"strings"
	"time"

	"github.com/salesjourney/onboard/internal/system/error/serviceerror"
	"github.com/salesjourney/onboard/internal/system/log"
	"github.com/salesjourney/onboard/internal/system/utils"
)

const loggerComponentNameService = "CompanyService"

const inviteCodeLength = 8
const inviteCodeAlphabet = "ABCDEFGHJKLMNPQRSTUVWXYZ23456789"

// CompanyServiceInterface defines the interface for company service operations.
type CompanyServiceInterface interface {
	CreateCompany(request CompanyRequest) (*Company, *serviceerror.ServiceError)
	GetCompany(id string) (*Company, *serviceerror.ServiceError)
	GetCompanyBySlug(slug string) (*Company, *serviceerror.ServiceError)
	GetCompanyList(limit, offset int) (*CompanyListResponse, *serviceerror.ServiceError)
	GenerateInvite(companyID string) (*Invite, *serviceerror.ServiceError)
	GetActiveInvite(companyID string) (*Invite, *serviceerror.ServiceError)
	DeactivateInvite(companyID string) *serviceerror.ServiceError
	ResolveInviteByCode(code string) (*Invite, *serviceerror.ServiceError)
	ResolveInviteByToken(token string) (*Invite, *serviceerror.ServiceError)
}

// companyService is the default implementation of CompanyServiceInterface.
type companyService struct {
	store companyStoreInterface
}

// newCompanyService creates a new instance of companyService.
func newCompanyService() CompanyServiceInterface {
	return &companyService{
		store: newCompanyStore(),
	}
}

// CreateCompany creates a new company.
func (cs *companyService) CreateCompany(request CompanyRequest) (*Company, *serviceerror.ServiceError) {
	logger := log.GetLogger().With(log.String(log.LoggerKeyComponentName, loggerComponentNameService))

	if request.Name == "" || request.Slug == "" {
		svcErr := ErrorInvalidRequestFormat.WithDescription("Company name and slug are required")
		return nil, &svcErr
	}

	conflict, err := cs.store.CheckCompanyConflict(request.Name, request.Slug)
	if err != nil {
		logger.Error("Failed to check company conflict", log.Error(err))
		return nil, &ErrorInternalServerError
	}
	if conflict {
		return nil, &ErrorCompanyConflict
	}

	company := Company{
		ID:        utils.GenerateUUID(),
		Name:      request.Name,
		Slug:      strings.ToLower(request.Slug),
		CreatedAt: time.Now().UTC(),
	}
	if err := cs.store.CreateCompany(company); err != nil {
		logger.Error("Failed to create company", log.Error(err))
		return nil, &ErrorInternalServerError
	}

	logger.Debug("Successfully created company", log.String(log.LoggerKeyCompanyID, company.ID))
	return &company, nil
}

// GetCompany retrieves a company by id.
func (cs *companyService) GetCompany(id string) (*Company, *serviceerror.ServiceError) {
	logger := log.GetLogger().With(log.String(log.LoggerKeyComponentName, loggerComponentNameService))

	company, err := cs.store.GetCompany(id)
	if err != nil {
		if errors.Is(err, ErrCompanyNotFound) {
			return nil, &ErrorCompanyNotFound
		}
		logger.Error("Failed to get company", log.Error(err))
		return nil, &ErrorInternalServerError
	}

	return &company, nil
}

// GetCompanyBySlug retrieves a company by slug.
func (cs *companyService) GetCompanyBySlug(slug string) (*Company, *serviceerror.ServiceError) {
	logger := log.GetLogger().With(log.String(log.LoggerKeyComponentName, loggerComponentNameService))

	company, err := cs.store.GetCompanyBySlug(strings.ToLower(slug))
	if err != nil {
		if errors.Is(err, ErrCompanyNotFound) {
			return nil, &ErrorCompanyNotFound
		}
		logger.Error("Failed to get company by slug", log.Error(err))
		return nil, &ErrorInternalServerError
	}

	return &company, nil
}

// GetCompanyList retrieves a paginated list of companies.
func (cs *companyService) GetCompanyList(limit, offset int) (
	*CompanyListResponse, *serviceerror.ServiceError,
) {
	logger := log.GetLogger().With(log.String(log.LoggerKeyComponentName, loggerComponentNameService))

	if limit <= 0 || offset < 0 {
		return nil, &ErrorInvalidPagination
	}

	totalCount, err := cs.store.GetCompanyListCount()
	if err != nil {
		logger.Error("Failed to get company count", log.Error(err))
		return nil, &ErrorInternalServerError
	}

	companies, err := cs.store.GetCompanyList(limit, offset)
	if err != nil {
		logger.Error("Failed to list companies", log.Error(err))
		return nil, &ErrorInternalServerError
	}

	return &CompanyListResponse{
		TotalResults: totalCount,
		StartIndex:   offset + 1,
		Count:        len(companies),
		Companies:    companies,
	}, nil
}

// GenerateInvite issues a fresh invite for the company, deactivating any
// previously issued invites.
func (cs *companyService) GenerateInvite(companyID string) (*Invite, *serviceerror.ServiceError) {
	logger := log.GetLogger().With(log.String(log.LoggerKeyComponentName, loggerComponentNameService))

	if _, svcErr := cs.GetCompany(companyID); svcErr != nil {
		return nil, svcErr
	}

	if err := cs.store.DeactivateInvites(companyID); err != nil {
		logger.Error("Failed to deactivate previous invites", log.Error(err))
		return nil, &ErrorInternalServerError
	}

	code, err := generateInviteCode()
	if err != nil {
		logger.Error("Failed to generate invite code", log.Error(err))
		return nil, &ErrorInternalServerError
	}

	invite := Invite{
		ID:        utils.GenerateUUID(),
		CompanyID: companyID,
		Code:      code,
		Token:     utils.GenerateUUID(),
		IsActive:  true,
		CreatedAt: time.Now().UTC(),
	}
	if err := cs.store.CreateInvite(invite); err != nil {
		logger.Error("Failed to create invite", log.Error(err))
		return nil, &ErrorInternalServerError
	}

	logger.Debug("Successfully generated invite", log.String(log.LoggerKeyCompanyID, companyID))
	return &invite, nil
}

// GetActiveInvite retrieves the active invite for a company.
func (cs *companyService) GetActiveInvite(companyID string) (*Invite, *serviceerror.ServiceError) {
	logger := log.GetLogger().With(log.String(log.LoggerKeyComponentName, loggerComponentNameService))

	invite, err := cs.store.GetActiveInvite(companyID)
	if err != nil {
		if errors.Is(err, ErrInviteNotFound) {
			return nil, &ErrorInviteNotFound
		}
		logger.Error("Failed to get active invite", log.Error(err))
		return nil, &ErrorInternalServerError
	}

	return &invite, nil
}

// DeactivateInvite deactivates all invites of the company.
func (cs *companyService) DeactivateInvite(companyID string) *serviceerror.ServiceError {
	logger := log.GetLogger().With(log.String(log.LoggerKeyComponentName, loggerComponentNameService))

	if _, svcErr := cs.GetCompany(companyID); svcErr != nil {
		return svcErr
	}

	if err := cs.store.DeactivateInvites(companyID); err != nil {
		logger.Error("Failed to deactivate invites", log.Error(err))
		return &ErrorInternalServerError
	}

	return nil
}

// ResolveInviteByCode resolves an active invite by its code. Matching is
// case-insensitive.
func (cs *companyService) ResolveInviteByCode(code string) (*Invite, *serviceerror.ServiceError) {
	logger := log.GetLogger().With(log.String(log.LoggerKeyComponentName, loggerComponentNameService))

	invite, err := cs.store.GetActiveInviteByCode(code)
	if err != nil {
		if errors.Is(err, ErrInviteNotFound) {
			return nil, &ErrorInviteNotFound
		}
		logger.Error("Failed to resolve invite by code", log.Error(err))
		return nil, &ErrorInternalServerError
	}

	return &invite, nil
}

// ResolveInviteByToken resolves an active invite by its token.
func (cs *companyService) ResolveInviteByToken(token string) (*Invite, *serviceerror.ServiceError) {
	logger := log.GetLogger().With(log.String(log.LoggerKeyComponentName, loggerComponentNameService))

	invite, err := cs.store.GetActiveInviteByToken(token)
	if err != nil {
		if errors.Is(err, ErrInviteNotFound) {
			return nil, &ErrorInviteNotFound
		}
		logger.Error("Failed to resolve invite by token", log.Error(err))
		return nil, &ErrorInternalServerError
	}

	return &invite, nil
}

// generateInviteCode generates a short upper-case alphanumeric invite code.
func generateInviteCode() (string, error) {
	var sb strings.Builder
	sb.Grow(inviteCodeLength)

	alphabetLen := big.NewInt(int64(len(inviteCodeAlphabet)))
	for i := 0; i < inviteCodeLength; i++ {
		idx, err := rand.Int(rand.Reader, alphabetLen)
		if err != nil {
			return "", err
		}
		sb.WriteByte(inviteCodeAlphabet[idx.Int64()])
	}

	return sb.String(), nil
}
