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

package seeder

// StepOptionData holds the seed data for a single-choice step option.
type StepOptionData struct {
	Key        string
	Title      string
	Body       string
	OrderIndex int
}

// StepData holds the seed data for an onboarding step.
type StepData struct {
	Kind        string
	Title       string
	Body        string
	IsRequired  bool
	CoinsAward  int
	XPAward     int
	OrderIndex  int
	IsImmutable bool
	Config      string
	Options     []StepOptionData
}

// FlowData holds the seed data for the system default onboarding flow.
type FlowData struct {
	Name            string
	FinalBonusCoins int
	Steps           []StepData
}

// StoreItemData holds the seed data for a globally visible store item.
type StoreItemData struct {
	Type      string
	Title     string
	CostCoins int
	Stock     *int
	MinLevel  int
	Payload   string
}

// seedData aggregates everything provisioned at startup.
type seedData struct {
	DefaultFlow FlowData
	StoreItems  []StoreItemData
}

// getSeedData returns the predefined seed data for database initialization.
// The default flow mirrors the four-step template every company starts from:
// intro, contact capture, a single-choice interest branch and the reward shop.
func getSeedData() seedData {
	return seedData{
		DefaultFlow: FlowData{
			Name:            "Default onboarding",
			FinalBonusCoins: 50,
			Steps: []StepData{
				{
					Kind:       "intro",
					Title:      "Welcome!",
					Body:       "Sign up in a couple of minutes and decide whether you want to meet the company right away.",
					IsRequired: false,
					CoinsAward: 5,
					XPAward:    5,
					OrderIndex: 0,
					Config:     "{}",
				},
				{
					Kind:        "contact_capture",
					Title:       "Registration",
					Body:        "Fill in your contact details on a single screen: name, email, phone.",
					IsRequired:  true,
					CoinsAward:  5,
					XPAward:     5,
					OrderIndex:  1,
					IsImmutable: true,
					Config: `{"fields":[{"name":"name","label":"Name","required":true},` +
						`{"name":"email","label":"Email","required":true},` +
						`{"name":"phone","label":"Phone","required":false}]}`,
				},
				{
					Kind:       "single_choice",
					Title:      "Meet the company?",
					Body:       "Choose whether to look at the company profile now or later.",
					IsRequired: false,
					CoinsAward: 5,
					XPAward:    5,
					OrderIndex: 2,
					Config:     "{}",
					Options: []StepOptionData{
						{Key: "intro_now", Title: "Yes, show me now", Body: "Open the company profile.", OrderIndex: 0},
						{Key: "later", Title: "Later", Body: "Skip ahead to the finish.", OrderIndex: 1},
					},
				},
				{
					Kind:       "reward_shop",
					Title:      "Final bonus",
					Body:       "Once you finish you can pick a prize.",
					IsRequired: false,
					CoinsAward: 0,
					XPAward:    0,
					OrderIndex: 3,
					Config:     "{}",
				},
			},
		},
		StoreItems: []StoreItemData{
			{
				Type:      "coupon",
				Title:     "Welcome gift card",
				CostCoins: 50,
				Stock:     intPtr(100),
				MinLevel:  1,
				Payload:   `{"provider":"GiftCo"}`,
			},
			{
				Type:      "merch",
				Title:     "Branded notebook",
				CostCoins: 30,
				Stock:     intPtr(200),
				MinLevel:  1,
				Payload:   "{}",
			},
		},
	}
}

// intPtr returns a pointer to the given int.
func intPtr(v int) *int {
	return &v
}
