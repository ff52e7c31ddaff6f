package handlers

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func decodeRequest(t *testing.T, body string) (payload struct{ Name string }, err error) {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(body))
	err = DecodeJSON(req, &payload)
	return payload, err
}

func TestDecodeJSON(t *testing.T) {
	payload, err := decodeRequest(t, `{"name":"Basic Wash"}`)
	require.NoError(t, err)
	assert.Equal(t, "Basic Wash", payload.Name)
}

func TestDecodeJSON_TrailingData(t *testing.T) {
	_, err := decodeRequest(t, `{"name":"Basic Wash"}{"name":"extra"}`)
	assert.Error(t, err)
}

func TestDecodeJSON_Malformed(t *testing.T) {
	_, err := decodeRequest(t, `{"name":`)
	assert.Error(t, err)
}
