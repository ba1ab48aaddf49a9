// Copyright Vespa.ai. Licensed under the terms of the Apache 2.0 license. See LICENSE in the project root.

package util

import (
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/briandowns/spinner"
)

// Spinner runs fn while a spinner turns after message on w. The line is then finished with the outcome of fn, and with
// the elapsed time when fn took a second or more.
func Spinner(w io.Writer, message string, fn func() error) error {
	message = strings.TrimRight(message, " ") + " "
	s := spinner.New(spinner.CharSets[11], 100*time.Millisecond,
		spinner.WithWriter(w),
		spinner.WithColor("cyan"),
		spinner.WithHiddenCursor(false))
	s.Prefix = message
	start := time.Now()
	s.Start()
	err := fn()
	s.FinalMSG = "\r" + message + outcome(err, time.Since(start)) + "\n"
	s.Stop()
	return err
}

func outcome(err error, elapsed time.Duration) string {
	status := "done"
	if err != nil {
		status = "failed"
	}
	if elapsed < time.Second {
		return status
	}
	return fmt.Sprintf("%s in %s", status, elapsed.Round(100*time.Millisecond))
}
