// Copyright 2023 Gustavo C. Viegas. All rights reserved.

// Package elog provides the process-wide structured logger used
// throughout the engine, in place of the plain log.Printf calls the
// driver package historically used for backend registration.
package elog

import (
	"os"

	"github.com/charmbracelet/log"
)

// L is the process-wide logger. It is safe for concurrent use.
var L = log.NewWithOptions(os.Stderr, log.Options{
	ReportTimestamp: true,
	TimeFormat:      "15:04:05",
})

// Frame logs a per-frame subrenderer error and continues. spec.md §7
// requires that a single subrenderer's error never aborts the frame:
// its pass is skipped and the engine proceeds to the next pass.
func Frame(pass, subrenderer string, err error) {
	L.Error("subrenderer error, skipping pass", "pass", pass, "subrenderer", subrenderer, "err", err)
}

// Fatal logs an unrecoverable initialization error and exits, mirroring
// the driver package's own registration-time fatal path.
func Fatal(msg string, keyvals ...any) {
	L.Fatal(msg, keyvals...)
}
