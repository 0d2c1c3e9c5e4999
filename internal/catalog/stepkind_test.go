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

package catalog

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/suite"
)

type StepKindTestSuite struct {
	suite.Suite
}

func TestStepKindSuite(t *testing.T) {
	suite.Run(t, new(StepKindTestSuite))
}

func (suite *StepKindTestSuite) TestIsValid() {
	for _, kind := range []StepKind{StepKindIntro, StepKindContactCapture, StepKindSingleChoice,
		StepKindFreeTextAsk, StepKindRewardShop, StepKindInterviewInvite, StepKindAssignment} {
		assert.True(suite.T(), kind.IsValid(), string(kind))
	}
	assert.False(suite.T(), StepKind("quiz").IsValid())
	assert.False(suite.T(), StepKind("").IsValid())
}

func (suite *StepKindTestSuite) TestParseStepConfigReturnsTypedConfigs() {
	config, err := ParseStepConfig(StepKindContactCapture,
		`{"fields":[{"name":"email","label":"Email","required":true}]}`)
	assert.NoError(suite.T(), err)
	contactConfig, ok := config.(ContactCaptureConfig)
	assert.True(suite.T(), ok)
	assert.Len(suite.T(), contactConfig.Fields, 1)
	assert.Equal(suite.T(), StepKindContactCapture, config.Kind())

	config, err = ParseStepConfig(StepKindInterviewInvite,
		`{"assignment":"Build a landing page","contact_hint":"We call within 2 days"}`)
	assert.NoError(suite.T(), err)
	inviteConfig, ok := config.(InterviewInviteConfig)
	assert.True(suite.T(), ok)
	assert.Equal(suite.T(), "Build a landing page", inviteConfig.Assignment)
}

func (suite *StepKindTestSuite) TestParseStepConfigEmptyRaw() {
	config, err := ParseStepConfig(StepKindIntro, "")
	assert.NoError(suite.T(), err)
	assert.Equal(suite.T(), StepKindIntro, config.Kind())
}

func (suite *StepKindTestSuite) TestParseStepConfigMalformed() {
	_, err := ParseStepConfig(StepKindContactCapture, `{"fields":`)
	assert.Error(suite.T(), err)
}

func (suite *StepKindTestSuite) TestContactCaptureValidate() {
	config := ContactCaptureConfig{
		Fields: []ContactField{
			{Name: "name", Label: "Name", Required: true},
			{Name: "email", Label: "Email", Required: true},
			{Name: "phone", Label: "Phone"},
		},
	}
	step := &Step{Kind: StepKindContactCapture, IsRequired: true}

	svcErr := config.Validate(step, StepPayload{Fields: map[string]string{
		"name":  "Jamie",
		"email": "jamie@example.com",
	}})
	assert.Nil(suite.T(), svcErr)

	svcErr = config.Validate(step, StepPayload{Fields: map[string]string{"name": "Jamie"}})
	assert.NotNil(suite.T(), svcErr)

	svcErr = config.Validate(step, StepPayload{Fields: map[string]string{
		"name":  "Jamie",
		"email": "not-an-email",
	}})
	assert.NotNil(suite.T(), svcErr)

	svcErr = config.Validate(step, StepPayload{Fields: map[string]string{
		"name":  "Jamie",
		"email": "jamie@example.com",
		"phone": "123",
	}})
	assert.NotNil(suite.T(), svcErr)
}

func (suite *StepKindTestSuite) TestSingleChoiceValidate() {
	config := SingleChoiceConfig{}
	step := &Step{
		Kind:       StepKindSingleChoice,
		IsRequired: true,
		Options: []StepOption{
			{Key: "intro_now", Title: "Right away"},
			{Key: "later", Title: "Later"},
		},
	}

	assert.Nil(suite.T(), config.Validate(step, StepPayload{Key: "intro_now"}))
	assert.NotNil(suite.T(), config.Validate(step, StepPayload{Key: "never"}))
	assert.NotNil(suite.T(), config.Validate(step, StepPayload{}))

	optionalStep := &Step{Kind: StepKindSingleChoice, Options: step.Options}
	assert.Nil(suite.T(), config.Validate(optionalStep, StepPayload{}))
}

func (suite *StepKindTestSuite) TestFreeTextAskValidate() {
	config := FreeTextAskConfig{Field: "about", InputKind: "text"}
	step := &Step{Kind: StepKindFreeTextAsk, IsRequired: true}

	assert.Nil(suite.T(), config.Validate(step, StepPayload{Value: "I run a bakery"}))
	assert.NotNil(suite.T(), config.Validate(step, StepPayload{Value: "   "}))

	phoneConfig := FreeTextAskConfig{Field: "phone", InputKind: "phone"}
	assert.NotNil(suite.T(), phoneConfig.Validate(step, StepPayload{Value: "123"}))
	assert.Nil(suite.T(), phoneConfig.Validate(step, StepPayload{Value: "+15551234567"}))
}

func (suite *StepKindTestSuite) TestInformationalKindsAcceptAnyPayload() {
	step := &Step{Kind: StepKindIntro}
	config, err := ParseStepConfig(StepKindIntro, "{}")
	assert.NoError(suite.T(), err)
	assert.Nil(suite.T(), config.Validate(step, StepPayload{}))

	inviteStep := &Step{Kind: StepKindInterviewInvite}
	assert.Nil(suite.T(), InterviewInviteConfig{}.Validate(inviteStep, StepPayload{Value: "anything"}))
}
