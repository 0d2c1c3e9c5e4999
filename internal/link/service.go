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

// Package link resolves onboarding entry codes and manages shareable links.
package link

import (
	"crypto/rand"
	"errors"
	"math/big"
	"strings"
	"time"

	"github.com/salesjourney/onboard/internal/catalog"
	"github.com/salesjourney/onboard/internal/company"
	"github.com/salesjourney/onboard/internal/system/error/serviceerror"
	"github.com/salesjourney/onboard/internal/system/log"
	"github.com/salesjourney/onboard/internal/system/utils"
)

const loggerComponentNameService = "LinkService"

const linkSlugLength = 10
const linkSlugAlphabet = "abcdefghjkmnpqrstuvwxyz23456789"

// LinkServiceInterface defines the interface for link resolver service operations.
type LinkServiceInterface interface {
	Resolve(code string) (*ResolveResponse, *serviceerror.ServiceError)
	CreateLink(request LinkRequest) (*Link, *serviceerror.ServiceError)
	GetLink(id string) (*Link, *serviceerror.ServiceError)
	GetLinksByCompany(companyID string) ([]Link, *serviceerror.ServiceError)
	DeactivateLink(id string) *serviceerror.ServiceError
}

// linkService is the default implementation of LinkServiceInterface.
type linkService struct {
	store          linkStoreInterface
	companyService company.CompanyServiceInterface
	flowService    catalog.FlowServiceInterface
}

// newLinkService creates a new instance of linkService.
func newLinkService(companyService company.CompanyServiceInterface,
	flowService catalog.FlowServiceInterface) LinkServiceInterface {
	return &linkService{
		store:          newLinkStore(),
		companyService: companyService,
		flowService:    flowService,
	}
}

// Resolve resolves an entry code into a company and flow. Link slugs are tried
// first, then active invite codes. A successful link resolution counts one use.
func (ls *linkService) Resolve(code string) (*ResolveResponse, *serviceerror.ServiceError) {
	logger := log.GetLogger().With(log.String(log.LoggerKeyComponentName, loggerComponentNameService))

	if code == "" {
		svcErr := ErrorInvalidRequestFormat.WithDescription("Entry code is required")
		return nil, &svcErr
	}

	link, err := ls.store.GetLinkBySlug(strings.ToLower(code))
	if err == nil {
		return ls.resolveLink(link)
	}
	if !errors.Is(err, ErrLinkNotFound) {
		logger.Error("Failed to look up link by slug", log.Error(err))
		return nil, &ErrorInternalServerError
	}

	invite, svcErr := ls.companyService.ResolveInviteByCode(code)
	if svcErr != nil {
		if svcErr.Type == serviceerror.ServerErrorType {
			return nil, svcErr
		}
		return nil, &ErrorEntryCodeNotFound
	}

	return ls.resolveInvite(invite)
}

// CreateLink creates a new shareable onboarding link for a company. When the
// flow id is omitted, the link binds to the flow the company would serve.
func (ls *linkService) CreateLink(request LinkRequest) (*Link, *serviceerror.ServiceError) {
	logger := log.GetLogger().With(log.String(log.LoggerKeyComponentName, loggerComponentNameService))

	if request.CompanyID == "" {
		svcErr := ErrorInvalidRequestFormat.WithDescription("Company id is required")
		return nil, &svcErr
	}
	if request.MaxUses != nil && *request.MaxUses <= 0 {
		svcErr := ErrorInvalidRequestFormat.WithDescription("Max uses must be positive")
		return nil, &svcErr
	}

	if _, svcErr := ls.companyService.GetCompany(request.CompanyID); svcErr != nil {
		return nil, svcErr
	}

	flowID := request.FlowID
	if flowID == "" {
		detail, svcErr := ls.flowService.GetFlowForCompany(request.CompanyID)
		if svcErr != nil {
			return nil, svcErr
		}
		flowID = detail.Flow.ID
	} else if _, svcErr := ls.flowService.GetFlow(flowID); svcErr != nil {
		return nil, svcErr
	}

	slug := strings.ToLower(request.Slug)
	if slug == "" {
		generated, err := generateSlug()
		if err != nil {
			logger.Error("Failed to generate link slug", log.Error(err))
			return nil, &ErrorInternalServerError
		}
		slug = generated
	}

	conflict, err := ls.store.CheckSlugConflict(slug)
	if err != nil {
		logger.Error("Failed to check slug conflict", log.Error(err))
		return nil, &ErrorInternalServerError
	}
	if conflict {
		return nil, &ErrorSlugConflict
	}

	link := Link{
		ID:        utils.GenerateUUID(),
		Slug:      slug,
		Token:     utils.GenerateUUID(),
		CompanyID: request.CompanyID,
		FlowID:    flowID,
		ExpiresAt: request.ExpiresAt,
		MaxUses:   request.MaxUses,
		UseCount:  0,
		IsActive:  true,
		CreatedAt: time.Now().UTC(),
	}
	if err := ls.store.CreateLink(link); err != nil {
		logger.Error("Failed to create link", log.Error(err))
		return nil, &ErrorInternalServerError
	}

	logger.Debug("Successfully created link", log.String("linkId", link.ID),
		log.String(log.LoggerKeyCompanyID, link.CompanyID))
	return &link, nil
}

// GetLink retrieves a link by id.
func (ls *linkService) GetLink(id string) (*Link, *serviceerror.ServiceError) {
	logger := log.GetLogger().With(log.String(log.LoggerKeyComponentName, loggerComponentNameService))

	link, err := ls.store.GetLink(id)
	if err != nil {
		if errors.Is(err, ErrLinkNotFound) {
			return nil, &ErrorLinkNotFound
		}
		logger.Error("Failed to get link", log.Error(err))
		return nil, &ErrorInternalServerError
	}

	return &link, nil
}

// GetLinksByCompany lists the links of a company.
func (ls *linkService) GetLinksByCompany(companyID string) ([]Link, *serviceerror.ServiceError) {
	logger := log.GetLogger().With(log.String(log.LoggerKeyComponentName, loggerComponentNameService))

	if _, svcErr := ls.companyService.GetCompany(companyID); svcErr != nil {
		return nil, svcErr
	}

	links, err := ls.store.GetLinksByCompany(companyID)
	if err != nil {
		logger.Error("Failed to list links", log.Error(err),
			log.String(log.LoggerKeyCompanyID, companyID))
		return nil, &ErrorInternalServerError
	}

	return links, nil
}

// DeactivateLink marks a link as inactive.
func (ls *linkService) DeactivateLink(id string) *serviceerror.ServiceError {
	logger := log.GetLogger().With(log.String(log.LoggerKeyComponentName, loggerComponentNameService))

	if err := ls.store.DeactivateLink(id); err != nil {
		if errors.Is(err, ErrLinkNotFound) {
			return &ErrorLinkNotFound
		}
		logger.Error("Failed to deactivate link", log.Error(err))
		return &ErrorInternalServerError
	}

	return nil
}

// resolveLink validates a resolved link and assembles the resolution result.
func (ls *linkService) resolveLink(link Link) (*ResolveResponse, *serviceerror.ServiceError) {
	logger := log.GetLogger().With(log.String(log.LoggerKeyComponentName, loggerComponentNameService))

	if !link.IsActive {
		return nil, &ErrorEntryCodeNotFound
	}
	now := time.Now().UTC()
	if link.ExpiresAt != nil && now.After(*link.ExpiresAt) {
		return nil, &ErrorLinkGone
	}
	if link.MaxUses != nil && link.UseCount >= *link.MaxUses {
		return nil, &ErrorLinkGone
	}

	companyRecord, svcErr := ls.companyService.GetCompany(link.CompanyID)
	if svcErr != nil {
		return nil, svcErr
	}
	detail, svcErr := ls.flowService.GetFlow(link.FlowID)
	if svcErr != nil {
		return nil, svcErr
	}

	if err := ls.store.IncrementUseCount(link.ID); err != nil {
		logger.Error("Failed to increment link use count", log.Error(err),
			log.String("linkId", link.ID))
		return nil, &ErrorInternalServerError
	}

	return &ResolveResponse{
		Company: *companyRecord,
		Flow:    *detail,
		Origin:  OriginLink,
	}, nil
}

// resolveInvite assembles the resolution result for an invite code entry.
// A company that has not authored a flow gets one cloned from the system
// default so later authoring edits stay company-local.
func (ls *linkService) resolveInvite(invite *company.Invite) (
	*ResolveResponse, *serviceerror.ServiceError) {
	logger := log.GetLogger().With(log.String(log.LoggerKeyComponentName, loggerComponentNameService))

	companyRecord, svcErr := ls.companyService.GetCompany(invite.CompanyID)
	if svcErr != nil {
		return nil, svcErr
	}

	detail, svcErr := ls.flowService.GetFlowForCompany(invite.CompanyID)
	if svcErr != nil {
		return nil, svcErr
	}
	if detail.Flow.CompanyID == nil {
		cloned, svcErr := ls.flowService.CloneFlow(detail.Flow.ID, invite.CompanyID)
		if svcErr != nil {
			return nil, svcErr
		}
		logger.Debug("Cloned default flow for invite company",
			log.String(log.LoggerKeyCompanyID, invite.CompanyID),
			log.String(log.LoggerKeyFlowID, cloned.Flow.ID))
		detail = cloned
	}

	return &ResolveResponse{
		Company: *companyRecord,
		Flow:    *detail,
		Origin:  OriginInvite,
	}, nil
}

// generateSlug produces a random lowercase slug for a new link.
func generateSlug() (string, error) {
	slug := make([]byte, linkSlugLength)
	for i := range slug {
		index, err := rand.Int(rand.Reader, big.NewInt(int64(len(linkSlugAlphabet))))
		if err != nil {
			return "", err
		}
		slug[i] = linkSlugAlphabet[index.Int64()]
	}
	return string(slug), nil
}
