/*
 * Copyright 2025 The RuleGo Authors.
 *
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

package logger

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLoggerLevels(t *testing.T) {
	var buf bytes.Buffer
	log := NewLogger(WARN, &buf)

	log.Debug("debug %d", 1)
	log.Info("info %d", 2)
	assert.Empty(t, buf.String())

	log.Warn("warn %d", 3)
	log.Error("error %d", 4)
	out := buf.String()
	assert.Contains(t, out, "[WARN] warn 3")
	assert.Contains(t, out, "[ERROR] error 4")
}

func TestSetLevel(t *testing.T) {
	var buf bytes.Buffer
	log := NewLogger(ERROR, &buf)

	log.Info("hidden")
	assert.Empty(t, buf.String())

	log.SetLevel(DEBUG)
	log.Debug("visible")
	assert.Contains(t, buf.String(), "[DEBUG] visible")
}

func TestOffDisablesOutput(t *testing.T) {
	var buf bytes.Buffer
	log := NewLogger(OFF, &buf)
	log.Error("nothing")
	assert.Empty(t, buf.String())
}

func TestLevelString(t *testing.T) {
	assert.Equal(t, "DEBUG", DEBUG.String())
	assert.Equal(t, "INFO", INFO.String())
	assert.Equal(t, "WARN", WARN.String())
	assert.Equal(t, "ERROR", ERROR.String())
	assert.Equal(t, "OFF", OFF.String())
}

func TestDiscardLogger(t *testing.T) {
	log := NewDiscardLogger()
	log.Debug("a")
	log.Info("b")
	log.Warn("c")
	log.Error("d")
	log.SetLevel(DEBUG)
}
