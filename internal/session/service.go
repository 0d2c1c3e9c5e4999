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

// Package session orchestrates a participant's run through an onboarding flow.
package session

import (
	"encoding/json"
	"errors"
	"time"

	"github.com/salesjourney/onboard/internal/catalog"
	"github.com/salesjourney/onboard/internal/link"
	"github.com/salesjourney/onboard/internal/reward"
	"github.com/salesjourney/onboard/internal/system/error/serviceerror"
	"github.com/salesjourney/onboard/internal/system/log"
	"github.com/salesjourney/onboard/internal/system/utils"
)

const loggerComponentNameService = "SessionService"

// SessionServiceInterface defines the interface for session orchestration operations.
type SessionServiceInterface interface {
	Start(code, callerToken string) (*StartResponse, *serviceerror.ServiceError)
	GetState(token string) (*StateResponse, *serviceerror.ServiceError)
	SubmitStep(token, stepID string, payload catalog.StepPayload) (
		*SubmitStepResponse, *serviceerror.ServiceError)
	Finish(token string) (*FinishResponse, *serviceerror.ServiceError)
	PickReward(token, storeItemID string) (*PickRewardResponse, *serviceerror.ServiceError)
	GetInterviewInfo(token string) (*InterviewResponse, *serviceerror.ServiceError)
	GetSessionByToken(token string) (*Session, *serviceerror.ServiceError)
	GetStepRecords(sessionID string) ([]SessionStepRecord, *serviceerror.ServiceError)
	AttachAccount(sessionID, accountID, name, email string) (*Session, *serviceerror.ServiceError)
}

// sessionService is the default implementation of SessionServiceInterface.
type sessionService struct {
	store         sessionStoreInterface
	linkService   link.LinkServiceInterface
	flowService   catalog.FlowServiceInterface
	rewardService reward.RewardServiceInterface
}

// newSessionService creates a new instance of sessionService.
func newSessionService(linkService link.LinkServiceInterface,
	flowService catalog.FlowServiceInterface,
	rewardService reward.RewardServiceInterface) SessionServiceInterface {
	return &sessionService{
		store:         newSessionStore(),
		linkService:   linkService,
		flowService:   flowService,
		rewardService: rewardService,
	}
}

// Start resolves the entry code and creates a session, or resumes the caller's
// existing session with the same company. A caller whose session already
// finished cannot start over with the same token.
func (ss *sessionService) Start(code, callerToken string) (
	*StartResponse, *serviceerror.ServiceError) {
	logger := log.GetLogger().With(log.String(log.LoggerKeyComponentName, loggerComponentNameService))

	resolution, svcErr := ss.linkService.Resolve(code)
	if svcErr != nil {
		return nil, svcErr
	}

	if callerToken != "" {
		existing, err := ss.store.GetSessionByToken(callerToken)
		if err == nil && existing.CompanyID == resolution.Company.ID {
			if existing.State == StateFinished {
				return nil, &ErrorSessionFinished
			}
			nextStep, svcErr := ss.computeNextStep(&existing)
			if svcErr != nil {
				return nil, svcErr
			}
			return &StartResponse{
				SessionID: existing.ID,
				Token:     existing.Token,
				NextStep:  nextStep,
				Company:   resolution.Company,
				Flow:      resolution.Flow.Flow,
				Resumed:   true,
			}, nil
		}
		if err != nil && !errors.Is(err, ErrSessionNotFound) {
			logger.Error("Failed to look up caller session", log.Error(err))
			return nil, &ErrorInternalServerError
		}
	}

	session := Session{
		ID:           utils.GenerateUUID(),
		Token:        utils.GenerateUUID(),
		CompanyID:    resolution.Company.ID,
		FlowID:       resolution.Flow.Flow.ID,
		State:        StateInProgress,
		ContactDraft: map[string]string{},
		StartedAt:    time.Now().UTC(),
	}
	if err := ss.store.CreateSession(session); err != nil {
		logger.Error("Failed to create session", log.Error(err))
		return nil, &ErrorInternalServerError
	}

	logger.Debug("Successfully started session",
		log.String(log.LoggerKeySessionID, session.ID),
		log.String(log.LoggerKeyCompanyID, session.CompanyID))

	nextStep := firstActiveStep(resolution.Flow.Steps)
	return &StartResponse{
		SessionID: session.ID,
		Token:     session.Token,
		NextStep:  nextStep,
		Company:   resolution.Company,
		Flow:      resolution.Flow.Flow,
		Resumed:   false,
	}, nil
}

// GetState returns the session and its next pending step.
func (ss *sessionService) GetState(token string) (*StateResponse, *serviceerror.ServiceError) {
	session, svcErr := ss.GetSessionByToken(token)
	if svcErr != nil {
		return nil, svcErr
	}

	nextStep, svcErr := ss.computeNextStep(session)
	if svcErr != nil {
		return nil, svcErr
	}

	return &StateResponse{Session: *session, NextStep: nextStep}, nil
}

// SubmitStep validates and records one step submission. Contact capture
// resubmissions short-circuit idempotently; any other duplicate is a conflict.
func (ss *sessionService) SubmitStep(token, stepID string, payload catalog.StepPayload) (
	*SubmitStepResponse, *serviceerror.ServiceError) {
	logger := log.GetLogger().With(log.String(log.LoggerKeyComponentName, loggerComponentNameService))

	session, svcErr := ss.GetSessionByToken(token)
	if svcErr != nil {
		return nil, svcErr
	}
	if session.State == StateFinished {
		return nil, &ErrorSessionFinished
	}

	detail, svcErr := ss.flowService.GetFlow(session.FlowID)
	if svcErr != nil {
		return nil, svcErr
	}
	step := findStep(detail.Steps, stepID)
	if step == nil {
		return nil, &ErrorStepNotInFlow
	}

	existing, err := ss.store.GetStepRecord(session.ID, stepID)
	if err == nil {
		if step.Kind == catalog.StepKindContactCapture {
			nextStep, svcErr := ss.computeNextStep(session)
			if svcErr != nil {
				return nil, svcErr
			}
			return &SubmitStepResponse{
				Coins:      existing.CoinsAwarded,
				XP:         existing.XPAwarded,
				CoinsTotal: session.CoinsTotal,
				XPTotal:    session.XPTotal,
				NextStep:   nextStep,
			}, nil
		}
		return nil, &ErrorDuplicateSubmission
	}
	if !errors.Is(err, ErrRecordNotFound) {
		logger.Error("Failed to look up step record", log.Error(err),
			log.String(log.LoggerKeySessionID, session.ID))
		return nil, &ErrorInternalServerError
	}

	if svcErr := step.Config.Validate(step, payload); svcErr != nil {
		return nil, svcErr
	}

	if step.Kind == catalog.StepKindContactCapture {
		if session.ContactDraft == nil {
			session.ContactDraft = map[string]string{}
		}
		for field, value := range payload.Fields {
			session.ContactDraft[field] = value
		}
		if err := ss.store.UpdateContactDraft(session.ID, session.ContactDraft); err != nil {
			logger.Error("Failed to update contact draft", log.Error(err),
				log.String(log.LoggerKeySessionID, session.ID))
			return nil, &ErrorInternalServerError
		}
	}

	serialized, err := json.Marshal(payload)
	if err != nil {
		logger.Error("Failed to marshal step payload", log.Error(err))
		return nil, &ErrorInternalServerError
	}

	record := SessionStepRecord{
		ID:           utils.GenerateUUID(),
		SessionID:    session.ID,
		StepID:       step.ID,
		OrderIndex:   step.OrderIndex,
		Payload:      string(serialized),
		CoinsAwarded: step.CoinsAward,
		XPAwarded:    step.XPAward,
		CreatedAt:    time.Now().UTC(),
	}
	coinsTotal := session.CoinsTotal + step.CoinsAward
	xpTotal := session.XPTotal + step.XPAward
	if err := ss.store.RecordSubmission(record, coinsTotal, xpTotal); err != nil {
		logger.Error("Failed to record step submission", log.Error(err),
			log.String(log.LoggerKeySessionID, session.ID),
			log.String(log.LoggerKeyStepID, step.ID))
		return nil, &ErrorInternalServerError
	}
	session.CoinsTotal = coinsTotal
	session.XPTotal = xpTotal

	nextStep, svcErr := ss.computeNextStep(session)
	if svcErr != nil {
		return nil, svcErr
	}

	return &SubmitStepResponse{
		Coins:      step.CoinsAward,
		XP:         step.XPAward,
		CoinsTotal: coinsTotal,
		XPTotal:    xpTotal,
		NextStep:   nextStep,
	}, nil
}

// Finish completes the session, credits the final bonus and shortlists the
// rewards the participant can afford. Finishing twice is a conflict.
func (ss *sessionService) Finish(token string) (*FinishResponse, *serviceerror.ServiceError) {
	logger := log.GetLogger().With(log.String(log.LoggerKeyComponentName, loggerComponentNameService))

	session, svcErr := ss.GetSessionByToken(token)
	if svcErr != nil {
		return nil, svcErr
	}
	if session.State == StateFinished {
		return nil, &ErrorSessionFinished
	}

	detail, svcErr := ss.flowService.GetFlow(session.FlowID)
	if svcErr != nil {
		return nil, svcErr
	}
	records, err := ss.store.GetStepRecords(session.ID)
	if err != nil {
		logger.Error("Failed to list step records", log.Error(err),
			log.String(log.LoggerKeySessionID, session.ID))
		return nil, &ErrorInternalServerError
	}

	recorded := recordedStepIDs(records)
	for _, step := range detail.Steps {
		if step.IsRequired && !recorded[step.ID] {
			return nil, &ErrorRequiredStepsIncomplete
		}
	}

	coinsTotal := session.CoinsTotal + detail.Flow.FinalBonusCoins
	if err := ss.store.FinishSession(session.ID, coinsTotal, time.Now().UTC()); err != nil {
		logger.Error("Failed to finish session", log.Error(err),
			log.String(log.LoggerKeySessionID, session.ID))
		return nil, &ErrorInternalServerError
	}

	rewards, svcErr := ss.rewardService.GetAffordableItems(session.CompanyID, coinsTotal)
	if svcErr != nil {
		return nil, svcErr
	}

	logger.Debug("Successfully finished session",
		log.String(log.LoggerKeySessionID, session.ID), log.Int("coinsTotal", coinsTotal))
	return &FinishResponse{
		CoinsTotal:       coinsTotal,
		XPTotal:          session.XPTotal,
		AvailableRewards: rewards,
	}, nil
}

// PickReward redeems one store item against the session's coin balance.
// A session picks at most one reward.
func (ss *sessionService) PickReward(token, storeItemID string) (
	*PickRewardResponse, *serviceerror.ServiceError) {
	logger := log.GetLogger().With(log.String(log.LoggerKeyComponentName, loggerComponentNameService))

	if storeItemID == "" {
		svcErr := ErrorInvalidRequestFormat.WithDescription("Store item id is required")
		return nil, &svcErr
	}

	session, svcErr := ss.GetSessionByToken(token)
	if svcErr != nil {
		return nil, svcErr
	}

	if _, err := ss.store.GetRewardChoice(session.ID); err == nil {
		return nil, &ErrorRewardAlreadyPicked
	} else if !errors.Is(err, ErrChoiceNotFound) {
		logger.Error("Failed to look up reward choice", log.Error(err),
			log.String(log.LoggerKeySessionID, session.ID))
		return nil, &ErrorInternalServerError
	}

	item, svcErr := ss.rewardService.RedeemItem(storeItemID, session.CoinsTotal)
	if svcErr != nil {
		return nil, svcErr
	}

	choice := RewardChoice{
		ID:          utils.GenerateUUID(),
		SessionID:   session.ID,
		StoreItemID: item.ID,
		CostCoins:   item.CostCoins,
		CreatedAt:   time.Now().UTC(),
	}
	coinsTotal := session.CoinsTotal - item.CostCoins
	if err := ss.store.RecordRewardChoice(choice, coinsTotal, session.XPTotal); err != nil {
		logger.Error("Failed to record reward choice", log.Error(err),
			log.String(log.LoggerKeySessionID, session.ID))
		return nil, &ErrorInternalServerError
	}

	return &PickRewardResponse{
		OK:         true,
		Item:       *item,
		CoinsTotal: coinsTotal,
	}, nil
}

// GetInterviewInfo surfaces the interview invite step of the session's flow.
func (ss *sessionService) GetInterviewInfo(token string) (
	*InterviewResponse, *serviceerror.ServiceError) {
	session, svcErr := ss.GetSessionByToken(token)
	if svcErr != nil {
		return nil, svcErr
	}

	detail, svcErr := ss.flowService.GetFlow(session.FlowID)
	if svcErr != nil {
		return nil, svcErr
	}

	for i := range detail.Steps {
		step := &detail.Steps[i]
		if step.Kind != catalog.StepKindInterviewInvite {
			continue
		}
		response := InterviewResponse{
			Title: step.Title,
			Body:  step.Body,
		}
		if config, ok := step.Config.(catalog.InterviewInviteConfig); ok {
			response.Assignment = config.Assignment
			response.ContactHint = config.ContactHint
		}
		return &response, nil
	}

	return nil, &ErrorNoInterviewStep
}

// GetSessionByToken resolves a caller token to its session.
func (ss *sessionService) GetSessionByToken(token string) (*Session, *serviceerror.ServiceError) {
	logger := log.GetLogger().With(log.String(log.LoggerKeyComponentName, loggerComponentNameService))

	if token == "" {
		return nil, &ErrorUnauthorized
	}
	session, err := ss.store.GetSessionByToken(token)
	if err != nil {
		if errors.Is(err, ErrSessionNotFound) {
			return nil, &ErrorUnauthorized
		}
		logger.Error("Failed to get session by token", log.Error(err))
		return nil, &ErrorInternalServerError
	}

	return &session, nil
}

// GetStepRecords lists the submission receipts of a session.
func (ss *sessionService) GetStepRecords(sessionID string) (
	[]SessionStepRecord, *serviceerror.ServiceError) {
	logger := log.GetLogger().With(log.String(log.LoggerKeyComponentName, loggerComponentNameService))

	records, err := ss.store.GetStepRecords(sessionID)
	if err != nil {
		logger.Error("Failed to list step records", log.Error(err),
			log.String(log.LoggerKeySessionID, sessionID))
		return nil, &ErrorInternalServerError
	}

	return records, nil
}

// AttachAccount stamps the session with a registered account and synthesizes
// the contact capture record when the participant skipped straight to
// registration. Registration values win over the contact draft.
func (ss *sessionService) AttachAccount(sessionID, accountID, name, email string) (
	*Session, *serviceerror.ServiceError) {
	logger := log.GetLogger().With(log.String(log.LoggerKeyComponentName, loggerComponentNameService))

	session, err := ss.store.GetSessionByID(sessionID)
	if err != nil {
		if errors.Is(err, ErrSessionNotFound) {
			return nil, &ErrorUnauthorized
		}
		logger.Error("Failed to get session", log.Error(err),
			log.String(log.LoggerKeySessionID, sessionID))
		return nil, &ErrorInternalServerError
	}

	detail, svcErr := ss.flowService.GetFlow(session.FlowID)
	if svcErr != nil {
		return nil, svcErr
	}

	contactStep := findStepByKind(detail.Steps, catalog.StepKindContactCapture)
	if contactStep != nil {
		if _, err := ss.store.GetStepRecord(session.ID, contactStep.ID); err != nil {
			if !errors.Is(err, ErrRecordNotFound) {
				logger.Error("Failed to look up contact record", log.Error(err),
					log.String(log.LoggerKeySessionID, session.ID))
				return nil, &ErrorInternalServerError
			}

			fields := map[string]string{}
			for field, value := range session.ContactDraft {
				fields[field] = value
			}
			fields["name"] = name
			fields["email"] = email
			serialized, err := json.Marshal(catalog.StepPayload{Fields: fields})
			if err != nil {
				logger.Error("Failed to marshal contact payload", log.Error(err))
				return nil, &ErrorInternalServerError
			}

			record := SessionStepRecord{
				ID:           utils.GenerateUUID(),
				SessionID:    session.ID,
				StepID:       contactStep.ID,
				OrderIndex:   contactStep.OrderIndex,
				Payload:      string(serialized),
				CoinsAwarded: contactStep.CoinsAward,
				XPAwarded:    contactStep.XPAward,
				CreatedAt:    time.Now().UTC(),
			}
			coinsTotal := session.CoinsTotal + contactStep.CoinsAward
			xpTotal := session.XPTotal + contactStep.XPAward
			if err := ss.store.RecordSubmission(record, coinsTotal, xpTotal); err != nil {
				logger.Error("Failed to synthesize contact record", log.Error(err),
					log.String(log.LoggerKeySessionID, session.ID))
				return nil, &ErrorInternalServerError
			}
			session.CoinsTotal = coinsTotal
			session.XPTotal = xpTotal
		}
	}

	if err := ss.store.StampAccount(session.ID, accountID); err != nil {
		logger.Error("Failed to stamp session account", log.Error(err),
			log.String(log.LoggerKeySessionID, session.ID))
		return nil, &ErrorInternalServerError
	}
	session.AccountID = &accountID

	return &session, nil
}

// computeNextStep resolves the lowest ordered active step without a record.
func (ss *sessionService) computeNextStep(session *Session) (
	*catalog.Step, *serviceerror.ServiceError) {
	logger := log.GetLogger().With(log.String(log.LoggerKeyComponentName, loggerComponentNameService))

	detail, svcErr := ss.flowService.GetFlow(session.FlowID)
	if svcErr != nil {
		return nil, svcErr
	}
	records, err := ss.store.GetStepRecords(session.ID)
	if err != nil {
		logger.Error("Failed to list step records", log.Error(err),
			log.String(log.LoggerKeySessionID, session.ID))
		return nil, &ErrorInternalServerError
	}

	recorded := recordedStepIDs(records)
	for i := range detail.Steps {
		if !recorded[detail.Steps[i].ID] {
			return &detail.Steps[i], nil
		}
	}

	return nil, nil
}

// firstActiveStep returns the lowest ordered step of a fresh session.
func firstActiveStep(steps []catalog.Step) *catalog.Step {
	if len(steps) == 0 {
		return nil
	}
	return &steps[0]
}

// findStep locates a step by id within a flow's active steps.
func findStep(steps []catalog.Step, stepID string) *catalog.Step {
	for i := range steps {
		if steps[i].ID == stepID {
			return &steps[i]
		}
	}
	return nil
}

// findStepByKind locates the first step of a kind within a flow's active steps.
func findStepByKind(steps []catalog.Step, kind catalog.StepKind) *catalog.Step {
	for i := range steps {
		if steps[i].Kind == kind {
			return &steps[i]
		}
	}
	return nil
}

// recordedStepIDs indexes the step ids that already carry a record.
func recordedStepIDs(records []SessionStepRecord) map[string]bool {
	recorded := make(map[string]bool, len(records))
	for _, record := range records {
		recorded[record.StepID] = true
	}
	return recorded
}
