// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParsePath(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    Path
		wantErr error
	}{
		{name: "folder", input: "qa", want: FolderPath(FolderQA)},
		{name: "folder upper case", input: "UAT", want: FolderPath(FolderUAT)},
		{name: "subfolder", input: "qa/automation1", want: SubfolderPath(FolderQA, "automation1")},
		{name: "surrounding slashes", input: "/uat/smoke/", want: SubfolderPath(FolderUAT, "smoke")},
		{name: "unknown folder type", input: "prod/x", wantErr: ErrUnknownFolderType},
		{name: "too deep", input: "qa/a/b", wantErr: ErrInvalidPath},
		{name: "empty", input: "", wantErr: ErrUnknownFolderType},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParsePath(tt.input)
			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestValidateSubfolderName(t *testing.T) {
	assert.NoError(t, ValidateSubfolderName("automation1"))
	assert.ErrorIs(t, ValidateSubfolderName("  "), ErrInvalidSubfolderName)
	assert.ErrorIs(t, ValidateSubfolderName("a/b"), ErrInvalidSubfolderName)
}

func TestPath_StringAndTitle(t *testing.T) {
	p := SubfolderPath(FolderQA, "automation1")
	assert.Equal(t, "qa/automation1", p.String())
	assert.Equal(t, "QA / automation1", p.Title())
	assert.Equal(t, "uat", FolderPath(FolderUAT).String())
}

func TestPath_Overlaps(t *testing.T) {
	a := SubfolderPath(FolderQA, "a")
	b := SubfolderPath(FolderQA, "b")
	qa := FolderPath(FolderQA)
	uat := FolderPath(FolderUAT)

	assert.True(t, a.Overlaps(a))
	assert.False(t, a.Overlaps(b))
	assert.True(t, qa.Overlaps(a))
	assert.True(t, a.Overlaps(qa))
	assert.False(t, uat.Overlaps(a))
}

func TestFolderType_Next(t *testing.T) {
	assert.Equal(t, FolderUAT, FolderQA.Next())
	assert.Equal(t, FolderQA, FolderUAT.Next())
}
