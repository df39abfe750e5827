// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAppBuildInfo(t *testing.T) {
	info := NewAppBuildInfo("v1.4.0", "2026-10-01", "abc123")
	assert.Equal(t, "v1.4.0", info.BuildVersion())
	assert.Equal(t, "v1.4.0 (abc123, 2026-10-01)", info.String())

	empty := NewAppBuildInfo("", "", "")
	assert.Equal(t, "N/A", empty.BuildVersion())
	assert.Equal(t, "N/A", empty.BuildDate())
	assert.Equal(t, "N/A", empty.BuildCommit())
}
