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
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/url"
	"strings"

	serverconst "github.com/salesjourney/onboard/internal/system/constants"
)

// ResolveSessionToken extracts the caller's session token from a request.
// Sources are tried in a fixed priority order: header, query parameter, JSON
// body field, form field, cookie. The request body is restored after peeking
// so handlers can still decode it.
func ResolveSessionToken(r *http.Request) string {
	if token := r.Header.Get(serverconst.SessionTokenHeaderName); token != "" {
		return token
	}
	if token := r.URL.Query().Get(serverconst.SessionTokenQueryParam); token != "" {
		return token
	}
	if token := peekBodyToken(r); token != "" {
		return token
	}
	if cookie, err := r.Cookie(serverconst.SessionTokenCookieName); err == nil && cookie.Value != "" {
		return cookie.Value
	}
	return ""
}

// peekBodyToken reads the request body looking for a session token field and
// puts the body back for downstream decoding.
func peekBodyToken(r *http.Request) string {
	if r.Body == nil || r.Body == http.NoBody {
		return ""
	}

	body, err := io.ReadAll(r.Body)
	if err != nil {
		return ""
	}
	r.Body = io.NopCloser(bytes.NewReader(body))
	if len(body) == 0 {
		return ""
	}

	contentType := r.Header.Get(serverconst.ContentTypeHeaderName)
	switch {
	case strings.Contains(contentType, serverconst.ContentTypeJSON):
		var fields map[string]interface{}
		if err := json.Unmarshal(body, &fields); err != nil {
			return ""
		}
		if token, ok := fields[serverconst.SessionTokenBodyField].(string); ok {
			return token
		}
	case strings.Contains(contentType, serverconst.ContentTypeFormURLEncoded):
		values, err := url.ParseQuery(string(body))
		if err != nil {
			return ""
		}
		return values.Get(serverconst.SessionTokenBodyField)
	}

	return ""
}
