// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0
// no-cloc

package command

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestOutputValidator(t *testing.T) {
	for _, v := range []string{"text", "json", "raw", "yaml"} {
		assert.NoError(t, OutputValidator(v), v)
	}
	assert.Error(t, OutputValidator("xml"))
	assert.Error(t, OutputValidator(""))
}

func TestFormatValidator(t *testing.T) {
	for _, v := range []string{"auto", "csv", "json"} {
		assert.NoError(t, FormatValidator(v), v)
	}
	assert.Error(t, FormatValidator("yaml"))
}

func TestFlagValidatorsChaining(t *testing.T) {
	err := FlagValidators("json", OutputValidator, FormatValidator)
	assert.NoError(t, err)

	err = FlagValidators("yaml", OutputValidator, FormatValidator)
	assert.Error(t, err)
}
