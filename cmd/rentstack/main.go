/*
 * Copyright 2025 reelworks.
 * Licensed under the Apache License, Version 2.0 (the "License");
 * you may not use this file except in compliance with the License.
 * You may obtain a copy of the License at
 *
 *     http://www.apache.org/licenses/LICENSE-2.0
 *
 * Unless required by applicable law or agreed to in writing, software
 * distributed under the License is distributed on an "AS IS" BASIS,
 * WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
 * See the License for the specific language governing permissions and
 * limitations under the License.
 */

package main

import (
	"context"
	"errors"
	"flag"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/reelworks/rentstack"
	"github.com/reelworks/rentstack/config"
	"github.com/reelworks/rentstack/database"
	"github.com/reelworks/rentstack/domain"
	"github.com/reelworks/rentstack/httpapi"
	"github.com/reelworks/rentstack/store"
	"github.com/reelworks/rentstack/store/model"
	"github.com/reelworks/rentstack/utils"
)

func main() {
	configPath := flag.String("config", "configs/config.yaml", "path to the configuration file")
	flag.Parse()

	logger := utils.GetLogger("main")

	cfg, err := config.Load(*configPath)
	if err != nil {
		logger.Fatalf("failed to load configuration: %v", err)
	}
	utils.ConfigureLogging(cfg.Log.Level, cfg.Log.Format)

	db, err := database.InitDB(&cfg.Database)
	if err != nil {
		logger.Fatalf("failed to initialize database: %v", err)
	}
	defer func() { _ = database.CloseDB() }()

	ctx := context.Background()
	err = database.CreateSchema(ctx, db,
		(*model.User)(nil),
		(*model.Movie)(nil),
		(*model.Rental)(nil),
		(*model.Country)(nil),
		(*model.Region)(nil),
	)
	if err != nil {
		logger.Fatalf("failed to create schema: %v", err)
	}

	users := rentstack.NewService[domain.User, *domain.User](store.NewUserStore(db), "User")
	movies := rentstack.NewService[domain.Movie, *domain.Movie](store.NewMovieStore(db), "Movie")
	countries := rentstack.NewReferenceService[domain.Country, *domain.Country](store.NewCountryStore(db), "Country")
	regions := store.NewRegionStore(db)

	router := httpapi.NewRouter(db,
		httpapi.NewUserHandler(users),
		httpapi.NewMovieHandler(movies),
		httpapi.NewCountryHandler(countries, regions),
	)

	server := &http.Server{
		Addr:         cfg.Server.Addr(),
		Handler:      router,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
	}

	go func() {
		logger.Infof("listening on %s", server.Addr)
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Fatalf("server error: %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		logger.Errorf("shutdown error: %v", err)
	}
	logger.Info("server stopped")
}
