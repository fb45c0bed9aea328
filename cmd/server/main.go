/*
 * Copyright (c) 2026, KrishiSetu. (https://www.krishisetu.org).
 *
 * KrishiSetu licenses this file to you under the Apache License,
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
	stdlog "log"
	"net"
	"net/http"
	"os"
	"path/filepath"
	"strings"

	"github.com/joho/godotenv"

	"github.com/krishisetu/farmer-welfare-service/internal/system/config"
	"github.com/krishisetu/farmer-welfare-service/internal/system/constants"
	"github.com/krishisetu/farmer-welfare-service/internal/system/log"
	"github.com/krishisetu/farmer-welfare-service/internal/system/managers"
	"github.com/krishisetu/farmer-welfare-service/internal/system/mongo"
)

func main() {
	home := getServiceHome()
	configFile := filepath.Join(home, "config", "deployment.yaml")

	envFiles, _ := filepath.Glob(filepath.Join(home, "config", "*.env"))
	_ = godotenv.Load(envFiles...)

	// Load the configuration file.
	serviceConfig, err := config.LoadConfig(configFile)
	if err != nil {
		stdlog.Fatalf("Failed to load configuration: %v", err)
	}

	// Initialize runtime configurations.
	if err := config.InitializeRuntime(home, serviceConfig); err != nil {
		stdlog.Fatalf("Failed to initialize runtime: %v", err)
	}

	// Initialize logger.
	if err := log.Init(serviceConfig.Log.LogLevel); err != nil {
		stdlog.Fatalf("Failed to initialize logger: %v", err)
	}
	logger := log.GetLogger()

	// Initialize the document store.
	if err := mongo.Init(serviceConfig.MongoDB); err != nil {
		logger.Fatal("Failed to initialize the document store", log.Error(err))
	}

	serverAddr := fmt.Sprintf("%s:%d", serviceConfig.Addr.Host, serviceConfig.Addr.Port)
	mux := enableCORS(initMultiplexer(), serviceConfig.Auth.CORSAllowedOrigins)
	logger.Info("Farmer welfare service starting", log.String("addr", serverAddr))

	ln, err := net.Listen("tcp", serverAddr)
	if err != nil {
		logger.Fatal("Failed to start listener", log.Error(err))
	}

	server := &http.Server{Handler: mux}
	if err := server.Serve(ln); err != nil {
		logger.Fatal("Failed to serve requests", log.Error(err))
	}
}

// initMultiplexer initializes the HTTP multiplexer and registers the services.
func initMultiplexer() *http.ServeMux {

	mux := http.NewServeMux()
	serviceManager := managers.NewServiceManager(mux)

	// Register the services.
	if err := serviceManager.RegisterServices(constants.ApiBasePath); err != nil {
		log.GetLogger().Fatal("Failed to register the services", log.Error(err))
	}

	return mux
}

func enableCORS(next http.Handler, allowedOrigins []string) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		origin := r.Header.Get("Origin")
		if origin != "" && originAllowed(origin, allowedOrigins) {
			w.Header().Set("Access-Control-Allow-Origin", origin)
			w.Header().Set("Access-Control-Allow-Methods", "GET, POST, PUT, DELETE, OPTIONS, PATCH")
			w.Header().Set("Access-Control-Allow-Headers", "Authorization, Content-Type")
			w.Header().Set("Access-Control-Expose-Headers", "Content-Length")
			w.Header().Set("Access-Control-Allow-Credentials", "true")
		}
		if r.Method == http.MethodOptions {
			w.WriteHeader(http.StatusOK)
			return
		}
		next.ServeHTTP(w, r)
	})
}

func originAllowed(origin string, allowedOrigins []string) bool {

	for _, allowed := range allowedOrigins {
		if allowed == "*" || strings.EqualFold(allowed, origin) {
			return true
		}
	}
	return false
}

func getServiceHome() string {

	homeFlag := flag.String("home", "", "Path to the service home directory")
	flag.Parse()

	if *homeFlag != "" {
		return *homeFlag
	}

	dir, err := os.Getwd()
	if err != nil {
		stdlog.Fatalf("Failed to get current working directory: %v", err)
	}
	return dir
}
