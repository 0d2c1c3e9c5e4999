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

package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/suite"

	"github.com/salesjourney/onboard/internal/system/config"
)

type CORSMiddlewareTestSuite struct {
	suite.Suite
}

func TestCORSMiddlewareSuite(t *testing.T) {
	suite.Run(t, new(CORSMiddlewareTestSuite))
}

func (suite *CORSMiddlewareTestSuite) SetupSuite() {
	_ = config.InitializeOnboardRuntime("", &config.Config{
		Cache: config.CacheConfig{Disabled: true},
		CORS:  config.CORSConfig{AllowedOrigins: []string{"https://app.example.com"}},
	})
}

func (suite *CORSMiddlewareTestSuite) serve(origin string, opts CORSOptions) *httptest.ResponseRecorder {
	pattern, handler := WithCORS("GET /onboarding/session",
		func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusOK)
		}, opts)
	assert.Equal(suite.T(), "GET /onboarding/session", pattern)

	req := httptest.NewRequest(http.MethodGet, "/onboarding/session", nil)
	if origin != "" {
		req.Header.Set("Origin", origin)
	}
	rec := httptest.NewRecorder()
	handler(rec, req)
	return rec
}

func (suite *CORSMiddlewareTestSuite) TestAllowedOriginGetsCORSHeaders() {
	rec := suite.serve("https://app.example.com", CORSOptions{
		AllowedMethods:   "GET, OPTIONS",
		AllowedHeaders:   "Content-Type, X-Onboarding-Session",
		AllowCredentials: true,
	})

	assert.Equal(suite.T(), "https://app.example.com",
		rec.Header().Get("Access-Control-Allow-Origin"))
	assert.Equal(suite.T(), "GET, OPTIONS", rec.Header().Get("Access-Control-Allow-Methods"))
	assert.Equal(suite.T(), "Content-Type, X-Onboarding-Session",
		rec.Header().Get("Access-Control-Allow-Headers"))
	assert.Equal(suite.T(), "true", rec.Header().Get("Access-Control-Allow-Credentials"))
}

func (suite *CORSMiddlewareTestSuite) TestUnknownOriginGetsNoCORSHeaders() {
	rec := suite.serve("https://evil.example.com", CORSOptions{AllowedMethods: "GET"})

	assert.Empty(suite.T(), rec.Header().Get("Access-Control-Allow-Origin"))
	assert.Empty(suite.T(), rec.Header().Get("Access-Control-Allow-Methods"))
}

func (suite *CORSMiddlewareTestSuite) TestRequestWithoutOriginPassesThrough() {
	rec := suite.serve("", CORSOptions{AllowedMethods: "GET"})

	assert.Equal(suite.T(), http.StatusOK, rec.Code)
	assert.Empty(suite.T(), rec.Header().Get("Access-Control-Allow-Origin"))
}
