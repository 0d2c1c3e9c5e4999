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

package session

import (
	"io"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/suite"

	serverconst "github.com/salesjourney/onboard/internal/system/constants"
)

type SessionContextTestSuite struct {
	suite.Suite
}

func TestSessionContextSuite(t *testing.T) {
	suite.Run(t, new(SessionContextTestSuite))
}

func (suite *SessionContextTestSuite) TestHeaderWinsOverEverything() {
	body := strings.NewReader(`{"session_token":"from-body"}`)
	req := httptest.NewRequest(http.MethodPost, "/onboarding/finish?sid=from-query", body)
	req.Header.Set(serverconst.ContentTypeHeaderName, serverconst.ContentTypeJSON)
	req.Header.Set(serverconst.SessionTokenHeaderName, "from-header")
	req.AddCookie(&http.Cookie{Name: serverconst.SessionTokenCookieName, Value: "from-cookie"})

	assert.Equal(suite.T(), "from-header", ResolveSessionToken(req))
}

func (suite *SessionContextTestSuite) TestQueryBeforeBody() {
	body := strings.NewReader(`{"session_token":"from-body"}`)
	req := httptest.NewRequest(http.MethodPost, "/onboarding/finish?sid=from-query", body)
	req.Header.Set(serverconst.ContentTypeHeaderName, serverconst.ContentTypeJSON)

	assert.Equal(suite.T(), "from-query", ResolveSessionToken(req))
}

func (suite *SessionContextTestSuite) TestJSONBodyToken() {
	body := strings.NewReader(`{"session_token":"from-body"}`)
	req := httptest.NewRequest(http.MethodPost, "/onboarding/finish", body)
	req.Header.Set(serverconst.ContentTypeHeaderName, serverconst.ContentTypeJSON)

	assert.Equal(suite.T(), "from-body", ResolveSessionToken(req))
}

func (suite *SessionContextTestSuite) TestJSONBodyIsRestoredAfterPeek() {
	raw := `{"session_token":"from-body","store_item_id":"item-1"}`
	req := httptest.NewRequest(http.MethodPost, "/onboarding/reward", strings.NewReader(raw))
	req.Header.Set(serverconst.ContentTypeHeaderName, serverconst.ContentTypeJSON)

	assert.Equal(suite.T(), "from-body", ResolveSessionToken(req))

	restored, err := io.ReadAll(req.Body)
	assert.NoError(suite.T(), err)
	assert.Equal(suite.T(), raw, string(restored))
}

func (suite *SessionContextTestSuite) TestFormBodyToken() {
	form := url.Values{}
	form.Set(serverconst.SessionTokenBodyField, "from-form")
	req := httptest.NewRequest(http.MethodPost, "/onboarding/finish",
		strings.NewReader(form.Encode()))
	req.Header.Set(serverconst.ContentTypeHeaderName, serverconst.ContentTypeFormURLEncoded)

	assert.Equal(suite.T(), "from-form", ResolveSessionToken(req))
}

func (suite *SessionContextTestSuite) TestCookieFallback() {
	req := httptest.NewRequest(http.MethodGet, "/onboarding/session", nil)
	req.AddCookie(&http.Cookie{Name: serverconst.SessionTokenCookieName, Value: "from-cookie"})

	assert.Equal(suite.T(), "from-cookie", ResolveSessionToken(req))
}

func (suite *SessionContextTestSuite) TestNoTokenAnywhere() {
	req := httptest.NewRequest(http.MethodGet, "/onboarding/session", nil)
	assert.Equal(suite.T(), "", ResolveSessionToken(req))
}
