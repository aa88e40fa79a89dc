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

package database

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/uptrace/bun"

	"github.com/reelworks/rentstack/utils"
)

// QueryHook logs failed and slow queries through the application logger.
// Empty result sets and finished transactions are not failures.
type QueryHook struct {
	logger   *logrus.Logger
	slowTime time.Duration
}

var _ bun.QueryHook = (*QueryHook)(nil)

// NewQueryHook returns a query hook with the default slow-query threshold.
func NewQueryHook() *QueryHook {
	return &QueryHook{
		logger:   utils.GetLogger("database"),
		slowTime: 200 * time.Millisecond,
	}
}

func (h *QueryHook) BeforeQuery(ctx context.Context, event *bun.QueryEvent) context.Context {
	return ctx
}

func (h *QueryHook) AfterQuery(ctx context.Context, event *bun.QueryEvent) {
	dur := time.Since(event.StartTime)
	switch {
	case event.Err == nil, errors.Is(event.Err, sql.ErrNoRows), errors.Is(event.Err, sql.ErrTxDone):
		if dur > h.slowTime {
			h.logger.WithFields(logrus.Fields{
				"operation": event.Operation(),
				"duration":  dur.Round(time.Microsecond).String(),
			}).Warn("slow query: ", event.Query)
		}
	default:
		h.logger.WithFields(logrus.Fields{
			"operation": event.Operation(),
			"duration":  dur.Round(time.Microsecond).String(),
		}).Error("query failed: ", event.Err)
	}
}
