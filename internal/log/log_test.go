// Copyright (c) 2025 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0
// no-cloc

package log

import (
	"bytes"
	"errors"
	"testing"

	"github.com/apex/log"
	"github.com/stretchr/testify/assert"
)

func TestCustomHandler(t *testing.T) {
	var buf bytes.Buffer
	logger := &log.Logger{Handler: &CustomHandler{Writer: &buf}, Level: log.DebugLevel}

	logger.WithError(errors.New("permission denied")).Warnf("failed to create cache at '%s'", "/x")

	line := buf.String()
	assert.Regexp(t, `^\d{4}-\d{2}-\d{2} \d{2}:\d{2}:\d{2} W failed to create cache at '/x' error=permission denied\n$`, line)
}

func TestInitLogger(t *testing.T) {
	tests := []struct {
		env  string
		want log.Level
	}{
		{env: "", want: log.WarnLevel},
		{env: "debug", want: log.DebugLevel},
		{env: "ERROR", want: log.ErrorLevel},
		{env: "bogus", want: log.WarnLevel},
	}

	for _, tt := range tests {
		t.Run(tt.env, func(t *testing.T) {
			t.Setenv("TRIPCACHE_LOG", tt.env)
			InitLogger()

			l, ok := log.Log.(*log.Logger)
			assert.True(t, ok)
			assert.Equal(t, tt.want, l.Level)
			_, ok = l.Handler.(*CustomHandler)
			assert.True(t, ok)
		})
	}
}
