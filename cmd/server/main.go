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

package main

import (
	"flag"
	"fmt"
	"net/http"
	"os"
	"path"

	"github.com/salesjourney/onboard/internal/managers"
	"github.com/salesjourney/onboard/internal/system/config"
	"github.com/salesjourney/onboard/internal/system/database/provider"
	"github.com/salesjourney/onboard/internal/system/database/seeder"
	"github.com/salesjourney/onboard/internal/system/log"
)

func main() {
	logger := log.GetLogger()

	// Get the onboard home directory.
	onboardHome := getOnboardHome(logger)

	// Initialize the server configurations.
	cfg := initOnboardConfigurations(logger, onboardHome)
	if cfg == nil {
		logger.Fatal("Failed to initialize configurations")
	}

	// Provision the datasources before any service touches them.
	initDatasources(logger)

	// Initialize the multiplexer and register services.
	mux := initMultiPlexer(logger, cfg)
	if mux == nil {
		logger.Fatal("Failed to initialize multiplexer")
	}

	startServer(logger, cfg, mux, onboardHome)
}

// getOnboardHome retrieves and returns the onboard home directory.
func getOnboardHome(logger *log.Logger) string {
	projectHome := ""
	projectHomeFlag := flag.String("onboardHome", "", "Path to the onboard home directory")
	flag.Parse()

	if *projectHomeFlag != "" {
		logger.Info("Using onboardHome from command line argument",
			log.String("onboardHome", *projectHomeFlag))
		projectHome = *projectHomeFlag
	} else {
		dir, dirErr := os.Getwd()
		if dirErr != nil {
			logger.Fatal("Failed to get current working directory", log.Error(dirErr))
		}
		projectHome = dir
	}

	return projectHome
}

// initOnboardConfigurations loads the configurations and initializes the runtime.
func initOnboardConfigurations(logger *log.Logger, onboardHome string) *config.Config {
	configFilePath := path.Join(onboardHome, "repository/conf/deployment.yaml")
	cfg, err := config.LoadConfig(configFilePath)
	if err != nil {
		logger.Fatal("Failed to load configurations", log.Error(err))
	}

	if err := config.InitializeOnboardRuntime(onboardHome, cfg); err != nil {
		logger.Fatal("Failed to initialize the runtime configuration", log.Error(err))
	}

	return cfg
}

// initDatasources creates missing tables and provisions the system default
// flow template and global store items.
func initDatasources(logger *log.Logger) {
	dbSeeder := seeder.NewDBSeeder(provider.GetDBProvider())

	if err := dbSeeder.EnsureSchema(); err != nil {
		logger.Fatal("Failed to provision the database schema", log.Error(err))
	}
	if err := dbSeeder.SeedInitialData(); err != nil {
		logger.Fatal("Failed to seed initial data", log.Error(err))
	}
}

// initMultiPlexer initializes the HTTP multiplexer and registers the services.
func initMultiPlexer(logger *log.Logger, cfg *config.Config) *http.ServeMux {
	mux := http.NewServeMux()
	serviceManager := managers.NewServiceManager(mux, cfg)

	if err := serviceManager.RegisterServices(); err != nil {
		logger.Fatal("Failed to register the services", log.Error(err))
	}

	return mux
}

// startServer starts the HTTP server with the given configurations and multiplexer.
func startServer(logger *log.Logger, cfg *config.Config, mux *http.ServeMux, onboardHome string) {
	serverAddr := fmt.Sprintf("%s:%d", cfg.Server.Hostname, cfg.Server.Port)

	server := &http.Server{
		Addr:    serverAddr,
		Handler: mux,
	}

	logger.Info("Starting the onboarding server...", log.String("address", serverAddr))

	if cfg.Server.HTTPOnly {
		if err := server.ListenAndServe(); err != nil {
			logger.Fatal("Server failed to start", log.Error(err))
		}
		return
	}

	certFile := path.Join(onboardHome, cfg.Security.CertFile)
	keyFile := path.Join(onboardHome, cfg.Security.KeyFile)
	if err := server.ListenAndServeTLS(certFile, keyFile); err != nil {
		logger.Fatal("Server failed to start", log.Error(err))
	}
}
