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

package utils

import (
	"os"
	"strings"
	"sync"

	"github.com/sirupsen/logrus"
)

// Logger is an alias so callers do not import logrus directly.
type Logger = logrus.Logger

var (
	loggerRegistryMu sync.RWMutex
	loggerRegistry   = map[string]*logrus.Logger{}
	defaultLevel     = logrus.InfoLevel
	defaultFormat    = EnvDefaultString("LOG_FORMAT", "text")
)

// ConfigureLogging sets the level and format applied to every registered
// logger and to loggers created afterwards.
func ConfigureLogging(level, format string) {
	loggerRegistryMu.Lock()
	defer loggerRegistryMu.Unlock()
	if lvl, err := logrus.ParseLevel(strings.ToLower(strings.TrimSpace(level))); err == nil {
		defaultLevel = lvl
	}
	if f := strings.ToLower(strings.TrimSpace(format)); f == "json" || f == "text" {
		defaultFormat = f
	}
	for _, logger := range loggerRegistry {
		configure(logger)
	}
}

// GetLogger returns the named logger, creating and registering it on first use.
func GetLogger(name string) *logrus.Logger {
	loggerRegistryMu.RLock()
	logger, ok := loggerRegistry[name]
	loggerRegistryMu.RUnlock()
	if ok {
		return logger
	}

	loggerRegistryMu.Lock()
	defer loggerRegistryMu.Unlock()
	if logger, ok = loggerRegistry[name]; ok {
		return logger
	}
	logger = logrus.New()
	logger.AddHook(&nameHook{name: name})
	configure(logger)
	loggerRegistry[name] = logger
	return logger
}

func configure(logger *logrus.Logger) {
	logger.SetOutput(os.Stdout)
	logger.SetLevel(defaultLevel)
	if defaultFormat == "json" {
		logger.SetFormatter(&logrus.JSONFormatter{
			TimestampFormat: "2006-01-02 15:04:05.000",
		})
	} else {
		logger.SetFormatter(&logrus.TextFormatter{
			FullTimestamp:   true,
			TimestampFormat: "2006-01-02 15:04:05.000",
		})
	}
}

// nameHook stamps every entry with its logger name.
type nameHook struct {
	name string
}

func (h *nameHook) Levels() []logrus.Level { return logrus.AllLevels }

func (h *nameHook) Fire(entry *logrus.Entry) error {
	entry.Data["logger"] = h.name
	return nil
}

// EnvDefaultString returns the environment value for key or the fallback.
func EnvDefaultString(key, fallback string) string {
	if v, ok := os.LookupEnv(key); ok && v != "" {
		return v
	}
	return fallback
}

// EnvDefaultBool returns the boolean environment value for key or the fallback.
func EnvDefaultBool(key string, fallback bool) bool {
	v, ok := os.LookupEnv(key)
	if !ok || v == "" {
		return fallback
	}
	switch strings.ToLower(v) {
	case "1", "true", "yes", "on":
		return true
	case "0", "false", "no", "off":
		return false
	}
	return fallback
}
