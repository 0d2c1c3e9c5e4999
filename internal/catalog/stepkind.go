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
	"encoding/json"
	"fmt"
	"strings"

	"github.com/salesjourney/onboard/internal/system/error/serviceerror"
)

// StepKind identifies the behavior of an onboarding step. The set is closed;
// each kind carries its own typed configuration payload.
type StepKind string

const (
	// StepKindIntro is an informational welcome step.
	StepKindIntro StepKind = "intro"
	// StepKindContactCapture collects the participant's contact fields.
	StepKindContactCapture StepKind = "contact_capture"
	// StepKindSingleChoice lets the participant pick one of the step's options.
	StepKindSingleChoice StepKind = "single_choice"
	// StepKindFreeTextAsk collects a single free-text answer.
	StepKindFreeTextAsk StepKind = "free_text_ask"
	// StepKindRewardShop presents the reward pickup at completion.
	StepKindRewardShop StepKind = "reward_shop"
	// StepKindInterviewInvite surfaces interview scheduling metadata.
	StepKindInterviewInvite StepKind = "interview_invite"
	// StepKindAssignment surfaces a take-home assignment text.
	StepKindAssignment StepKind = "assignment"
)

// IsValid reports whether the kind is one of the closed set.
func (k StepKind) IsValid() bool {
	switch k {
	case StepKindIntro, StepKindContactCapture, StepKindSingleChoice, StepKindFreeTextAsk,
		StepKindRewardShop, StepKindInterviewInvite, StepKindAssignment:
		return true
	}
	return false
}

// StepPayload is the participant-submitted payload for a step.
type StepPayload struct {
	// Fields carries the field name to value map for contact capture steps.
	Fields map[string]string `json:"fields,omitempty"`
	// Key carries the selected option key for single choice steps.
	Key string `json:"key,omitempty"`
	// Value carries the answer for free text steps.
	Value string `json:"value,omitempty"`
}

// StepConfig is the typed configuration payload of a step kind. Validate
// checks a submitted payload against the step and its configuration.
type StepConfig interface {
	Kind() StepKind
	Validate(step *Step, payload StepPayload) *serviceerror.ServiceError
}

// ContactField describes one field collected by a contact capture step.
type ContactField struct {
	Name     string `json:"name"`
	Label    string `json:"label"`
	Required bool   `json:"required"`
}

// ContactCaptureConfig is the configuration for contact capture steps.
type ContactCaptureConfig struct {
	Fields []ContactField `json:"fields"`
}

// Kind returns the step kind for the configuration.
func (c ContactCaptureConfig) Kind() StepKind { return StepKindContactCapture }

// Validate checks the submitted contact fields against the configuration.
// Every required field must be non-empty, an email field must look like an
// email address and a phone field must be at least six characters.
func (c ContactCaptureConfig) Validate(step *Step, payload StepPayload) *serviceerror.ServiceError {
	for _, field := range c.Fields {
		value := strings.TrimSpace(payload.Fields[field.Name])

		if field.Required && value == "" {
			return validationError(fmt.Sprintf("Field %q is required", field.Name))
		}
		if value == "" {
			continue
		}

		switch field.Name {
		case "email":
			if !strings.Contains(value, "@") || !strings.Contains(value, ".") {
				return validationError("Field \"email\" is not a valid email address")
			}
		case "phone":
			if len(value) < minPhoneLength {
				return validationError("Field \"phone\" is too short")
			}
		}
	}
	return nil
}

// SingleChoiceConfig is the configuration for single choice steps.
type SingleChoiceConfig struct{}

// Kind returns the step kind for the configuration.
func (c SingleChoiceConfig) Kind() StepKind { return StepKindSingleChoice }

// Validate checks the selected option key. Required steps must select a key
// matching one of the step's options.
func (c SingleChoiceConfig) Validate(step *Step, payload StepPayload) *serviceerror.ServiceError {
	key := strings.TrimSpace(payload.Key)
	if key == "" {
		if step.IsRequired {
			return validationError("A choice key is required")
		}
		return nil
	}

	for _, option := range step.Options {
		if option.Key == key {
			return nil
		}
	}
	return validationError(fmt.Sprintf("Unknown choice key %q", key))
}

// FreeTextAskConfig is the configuration for free text steps.
type FreeTextAskConfig struct {
	// Field names the captured value, e.g. "about" or "phone".
	Field string `json:"field"`
	// InputKind narrows validation, either "text" or "phone".
	InputKind string `json:"input_kind"`
}

// Kind returns the step kind for the configuration.
func (c FreeTextAskConfig) Kind() StepKind { return StepKindFreeTextAsk }

// Validate checks the free text answer. Required steps reject empty values
// and a phone-typed ask enforces the minimum length.
func (c FreeTextAskConfig) Validate(step *Step, payload StepPayload) *serviceerror.ServiceError {
	value := strings.TrimSpace(payload.Value)
	if value == "" {
		if step.IsRequired {
			return validationError("A value is required")
		}
		return nil
	}
	if c.InputKind == "phone" && len(value) < minPhoneLength {
		return validationError("The phone value is too short")
	}
	return nil
}

// InterviewInviteConfig is the configuration for interview invite steps.
type InterviewInviteConfig struct {
	// Assignment is an optional take-home assignment text shown with the invite.
	Assignment string `json:"assignment,omitempty"`
	// ContactHint tells the participant how they will be contacted.
	ContactHint string `json:"contact_hint,omitempty"`
}

// Kind returns the step kind for the configuration.
func (c InterviewInviteConfig) Kind() StepKind { return StepKindInterviewInvite }

// Validate accepts any payload; interview invites are informational.
func (c InterviewInviteConfig) Validate(step *Step, payload StepPayload) *serviceerror.ServiceError {
	return nil
}

// EmptyConfig is the configuration for step kinds with no options, used by
// intro, reward shop and assignment steps.
type EmptyConfig struct {
	kind StepKind
}

// Kind returns the step kind for the configuration.
func (c EmptyConfig) Kind() StepKind { return c.kind }

// Validate accepts any payload; these steps are informational.
func (c EmptyConfig) Validate(step *Step, payload StepPayload) *serviceerror.ServiceError {
	return nil
}

// MarshalJSON renders the empty configuration as an empty object.
func (c EmptyConfig) MarshalJSON() ([]byte, error) {
	return []byte("{}"), nil
}

const minPhoneLength = 6

// ParseStepConfig decodes the raw configuration JSON for the given kind into
// its typed configuration.
func ParseStepConfig(kind StepKind, raw string) (StepConfig, error) {
	if strings.TrimSpace(raw) == "" {
		raw = "{}"
	}

	switch kind {
	case StepKindContactCapture:
		var config ContactCaptureConfig
		if err := json.Unmarshal([]byte(raw), &config); err != nil {
			return nil, fmt.Errorf("failed to parse contact capture config: %w", err)
		}
		return config, nil
	case StepKindSingleChoice:
		var config SingleChoiceConfig
		if err := json.Unmarshal([]byte(raw), &config); err != nil {
			return nil, fmt.Errorf("failed to parse single choice config: %w", err)
		}
		return config, nil
	case StepKindFreeTextAsk:
		var config FreeTextAskConfig
		if err := json.Unmarshal([]byte(raw), &config); err != nil {
			return nil, fmt.Errorf("failed to parse free text config: %w", err)
		}
		return config, nil
	case StepKindInterviewInvite:
		var config InterviewInviteConfig
		if err := json.Unmarshal([]byte(raw), &config); err != nil {
			return nil, fmt.Errorf("failed to parse interview invite config: %w", err)
		}
		return config, nil
	case StepKindIntro, StepKindRewardShop, StepKindAssignment:
		return EmptyConfig{kind: kind}, nil
	default:
		return nil, fmt.Errorf("unknown step kind: %s", kind)
	}
}

// validationError builds a client validation error with the given description.
func validationError(description string) *serviceerror.ServiceError {
	svcErr := ErrorStepValidationFailed.WithDescription(description)
	return &svcErr
}
