// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import "errors"

// Sentinel errors returned by the store and its repositories. Callers should
// use [errors.Is] to match against these values.
var (
	// ErrStoreUnavailable marks failures caused by a lost or refused database
	// connection. It is joined with the operation sentinel below.
	ErrStoreUnavailable = errors.New("store unavailable")

	// ErrStoreClosed is returned by Subscribe after the broker has stopped.
	ErrStoreClosed = errors.New("store closed")

	// ErrWriteToFolder is returned when Write targets a whole folder type.
	ErrWriteToFolder = errors.New("write requires a subfolder path")

	// ErrLocalSessionNotFound is returned by SessionRepository.Load when no
	// session is persisted.
	ErrLocalSessionNotFound = errors.New("local session not found")
)

// Low-level database operation errors. These are returned (or wrapped) by
// repository methods when a SQL-level operation fails.
var (
	// ErrBuildingSQLQuery is returned when squirrel cannot render a query.
	ErrBuildingSQLQuery = errors.New("error building sql query")

	// ErrExecutingQuery is returned when a SELECT fails.
	ErrExecutingQuery = errors.New("error executing sql query")

	// ErrBeginningTransaction is returned when the database driver cannot
	// start a new transaction.
	ErrBeginningTransaction = errors.New("failed to begin transaction")

	// ErrCommitingTransaction is returned when committing an open transaction
	// fails. The transaction is considered rolled back at this point.
	ErrCommitingTransaction = errors.New("failed to commit transaction")

	// ErrExecutingStatement is returned when an INSERT or DELETE fails.
	ErrExecutingStatement = errors.New("failed to execute statement")

	// ErrScanningRows is returned when scanning result rows fails.
	ErrScanningRows = errors.New("failed to scan rows")

	// ErrDecodingValue is returned when a persisted field value is not a
	// JSON-encoded string or number.
	ErrDecodingValue = errors.New("failed to decode stored value")
)
