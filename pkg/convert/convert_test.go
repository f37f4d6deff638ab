// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package convert_test

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/taibuivan/vodbrowse/pkg/convert"
)

func TestToIntD(t *testing.T) {
	assert.Equal(t, 3, convert.ToIntD("3", 1))
	assert.Equal(t, 1, convert.ToIntD("", 1))
	assert.Equal(t, 1, convert.ToIntD("three", 1))
}

func TestFlexString(t *testing.T) {
	var payload struct {
		A convert.FlexString `json:"a"`
		B convert.FlexString `json:"b"`
		C convert.FlexString `json:"c"`
	}

	require.NoError(t, json.Unmarshal([]byte(`{"a": 12, "b": " 7 ", "c": null}`), &payload))
	assert.Equal(t, "12", payload.A.String())
	assert.Equal(t, "7", payload.B.String())
	assert.Equal(t, "", payload.C.String())
}
