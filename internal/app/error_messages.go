// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package app contains the human-readable messages shared by the server
// handlers, the client views and the terminal UI.
//
// Keeping them in one place keeps the wording identical between the HTTP
// error bodies and what the user sees on screen.
package app

const (
	// MsgInternalServerError is the body of every 500 response. The cause is
	// logged, never sent.
	MsgInternalServerError = "Internal Server Error"

	// MsgIntegrityCheckFailed is returned when a signed request body does not
	// match its HashSHA256 header.
	MsgIntegrityCheckFailed = "Integrity check failed"

	// MsgInvalidCredentials is shown when the server rejects a sign-in
	// without giving a reason.
	MsgInvalidCredentials = "Invalid credentials"

	// MsgNoSubfolderSelected is shown when saving with no subfolder selected.
	MsgNoSubfolderSelected = "Please select or create a subfolder"

	// MsgEmptyKeyWithValue is shown when a field row has a value but no key.
	MsgEmptyKeyWithValue = "Please provide a key name for all fields"

	// MsgEmptyResult is shown when saving would store no fields at all.
	MsgEmptyResult = "Please add at least one field with a key"

	// MsgInvalidFieldKey is shown when a field key contains the path
	// separator.
	MsgInvalidFieldKey = "Field keys cannot contain \"/\""

	// MsgDataSaved is shown after a successful save.
	MsgDataSaved = "Data saved successfully!"

	// MsgNoData is the empty state of the browser. The verb is the folder
	// type label.
	MsgNoData = "No data available in %s. Create some data first."

	// MsgConfirmDelete asks before a subfolder is deleted. The verb is the
	// subfolder name.
	MsgConfirmDelete = `Are you sure you want to delete "%s"?`

	// MsgServerUnavailable replaces low-level network errors on screen.
	MsgServerUnavailable = "Server is unreachable, check the network or the server address"

	// MsgSessionExpired is shown on the login form after the server rejected
	// a stored token.
	MsgSessionExpired = "Your session has expired, please sign in again"
)
