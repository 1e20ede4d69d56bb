// Copyright (c) 2025 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package log

import (
	"fmt"
	"io"
	"os"
	"strings"
	"sync"
	"time"

	"github.com/apex/log"
)

// InitLogger sets up Apex with a custom handler and a log level from the
// TRIPCACHE_LOG env variable. Warnings are shown by default.
func InitLogger() {
	log.SetHandler(&CustomHandler{})

	level, err := log.ParseLevel(strings.ToLower(os.Getenv("TRIPCACHE_LOG")))
	if err != nil {
		level = log.WarnLevel
	}
	log.SetLevel(level)
}

// CustomHandler formats log messages and writes them to Writer, or stderr
// when Writer is nil. Stdout carries the lookup result only.
type CustomHandler struct {
	Writer io.Writer
	mu     sync.Mutex
}

// HandleLog implements the log.Handler interface
func (h *CustomHandler) HandleLog(e *log.Entry) error {
	h.mu.Lock()
	defer h.mu.Unlock()

	w := h.Writer
	if w == nil {
		w = os.Stderr
	}

	timestamp := time.Now().Format("2006-01-02 15:04:05")
	level := strings.ToUpper(e.Level.String())

	var b strings.Builder
	fmt.Fprintf(&b, "%s %.1s %s", timestamp, level, e.Message)
	for _, name := range e.Fields.Names() {
		fmt.Fprintf(&b, " %s=%v", name, e.Fields.Get(name))
	}
	b.WriteString("\n")

	_, err := io.WriteString(w, b.String())
	return err
}
