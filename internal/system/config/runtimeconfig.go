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

package config

import "sync"

// OnboardRuntime holds the runtime configuration for the onboarding server.
type OnboardRuntime struct {
	OnboardHome string `yaml:"onboard_home"`
	Config      Config `yaml:"config"`
}

var (
	runtimeConfig *OnboardRuntime
	once          sync.Once
)

// InitializeOnboardRuntime initializes the OnboardRuntime configuration.
func InitializeOnboardRuntime(onboardHome string, config *Config) error {
	once.Do(func() {
		runtimeConfig = &OnboardRuntime{
			OnboardHome: onboardHome,
			Config:      *config,
		}
	})

	return nil
}

// GetOnboardRuntime returns the OnboardRuntime configuration.
func GetOnboardRuntime() *OnboardRuntime {
	if runtimeConfig == nil {
		panic("OnboardRuntime is not initialized")
	}
	return runtimeConfig
}

// ResetOnboardRuntime resets the OnboardRuntime.
// This should only be used in tests to reset the singleton state.
func ResetOnboardRuntime() {
	runtimeConfig = nil
	once = sync.Once{}
}
