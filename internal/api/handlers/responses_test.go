package handlers

import (
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDecodeJSON_IgnoresUnknownFields(t *testing.T) {
	r := httptest.NewRequest("POST", "/", strings.NewReader(`{"name":"CNC","legacyField":true}`))

	var dst struct {
		Name string `json:"name"`
	}
	require.NoError(t, DecodeJSON(r, &dst))
	assert.Equal(t, "CNC", dst.Name)
}

func TestDecodeJSON_MalformedBody(t *testing.T) {
	r := httptest.NewRequest("POST", "/", strings.NewReader(`{"name":`))

	var dst struct{}
	assert.Error(t, DecodeJSON(r, &dst))
}
