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

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/suite"
)

type ConfigTestSuite struct {
	suite.Suite
	tempDir string
}

func TestConfigSuite(t *testing.T) {
	suite.Run(t, new(ConfigTestSuite))
}

func (suite *ConfigTestSuite) SetupTest() {
	suite.tempDir = suite.T().TempDir()
}

func (suite *ConfigTestSuite) writeConfigFile(content string) string {
	path := filepath.Join(suite.tempDir, "deployment.yaml")
	err := os.WriteFile(path, []byte(content), 0600)
	assert.NoError(suite.T(), err)
	return path
}

func (suite *ConfigTestSuite) TestLoadConfigSuccess() {
	path := suite.writeConfigFile(`
server:
  hostname: "localhost"
  port: 8095
  http_only: true

security:
  cert_file: "repository/resources/security/server.cert"
  key_file: "repository/resources/security/server.key"

database:
  platform:
    type: "sqlite"
    path: "repository/database/platformdb.db"
    options: "_journal_mode=WAL&_busy_timeout=5000"
    max_open_conns: 10
  runtime:
    type: "postgres"
    hostname: "localhost"
    port: 5432
    name: "runtimedb"
    username: "onboard"
    password: "secret"
    sslmode: "disable"

cache:
  disabled: false
  type: "inmemory"
  size: 1000
  ttl: 600
  properties:
    - name: "FlowDetailCache"
      size: 500
      ttl: 600

cors:
  allowed_origins:
    - "https://app.example.com"

onboarding:
  analytics_window_days: 30
  reward_shortlist_size: 5
`)

	cfg, err := LoadConfig(path)
	assert.NoError(suite.T(), err)
	assert.Equal(suite.T(), "localhost", cfg.Server.Hostname)
	assert.Equal(suite.T(), 8095, cfg.Server.Port)
	assert.True(suite.T(), cfg.Server.HTTPOnly)
	assert.Equal(suite.T(), "sqlite", cfg.Database.Platform.Type)
	assert.Equal(suite.T(), 10, cfg.Database.Platform.MaxOpenConns)
	assert.Equal(suite.T(), "postgres", cfg.Database.Runtime.Type)
	assert.Equal(suite.T(), "runtimedb", cfg.Database.Runtime.Name)
	assert.False(suite.T(), cfg.Cache.Disabled)
	assert.Len(suite.T(), cfg.Cache.Properties, 1)
	assert.Equal(suite.T(), "FlowDetailCache", cfg.Cache.Properties[0].Name)
	assert.Equal(suite.T(), []string{"https://app.example.com"}, cfg.CORS.AllowedOrigins)
	assert.Equal(suite.T(), 30, cfg.Onboarding.AnalyticsWindowDays)
	assert.Equal(suite.T(), 5, cfg.Onboarding.RewardShortlistSize)
}

func (suite *ConfigTestSuite) TestLoadConfigMissingFile() {
	cfg, err := LoadConfig(filepath.Join(suite.tempDir, "missing.yaml"))
	assert.Error(suite.T(), err)
	assert.Nil(suite.T(), cfg)
}

func (suite *ConfigTestSuite) TestLoadConfigMalformedYAML() {
	path := suite.writeConfigFile("server:\n  port: [not a port\n")

	cfg, err := LoadConfig(path)
	assert.Error(suite.T(), err)
	assert.Nil(suite.T(), cfg)
}

func (suite *ConfigTestSuite) TestLoadConfigDefaultsToZeroValues() {
	path := suite.writeConfigFile("server:\n  hostname: \"localhost\"\n")

	cfg, err := LoadConfig(path)
	assert.NoError(suite.T(), err)
	assert.Equal(suite.T(), 0, cfg.Server.Port)
	assert.False(suite.T(), cfg.Cache.Disabled)
	assert.Empty(suite.T(), cfg.CORS.AllowedOrigins)
	assert.Equal(suite.T(), 0, cfg.Onboarding.AnalyticsWindowDays)
}
