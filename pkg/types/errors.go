/*
SPDX-FileCopyrightText: 2026 livepatch-k8s-operator contributors
SPDX-License-Identifier: Apache-2.0
*/

package types

import "time"

// RetriableError wraps an error that denotes a wait condition rather than a
// real problem, such as a referenced secret that does not exist yet.
// Reconcilers encountering a RetriableError put the component into a pending
// state instead of an error state, and retry after the given delay (or a
// sensible default if the delay is nil).
type RetriableError struct {
	err        error
	retryAfter *time.Duration
}

func NewRetriableError(err error, retryAfter *time.Duration) RetriableError {
	return RetriableError{err: err, retryAfter: retryAfter}
}

func (e RetriableError) Error() string {
	return e.err.Error()
}

func (e RetriableError) Unwrap() error {
	return e.err
}

func (e RetriableError) Cause() error {
	return e.err
}

// RetryAfter returns the requested retry delay; may be nil.
func (e RetriableError) RetryAfter() *time.Duration {
	return e.retryAfter
}
