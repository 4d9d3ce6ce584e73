package testkit

import (
	"encoding/json"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/require"
)

// DecodeJSON unmarshals a recorded response body into dest, failing the
// test on malformed JSON.
func DecodeJSON(t *testing.T, rec *httptest.ResponseRecorder, dest interface{}) {
	t.Helper()
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), dest))
}

// JSONField decodes the body as an object and returns the named top-level
// field. Fails the test when the field is absent.
func JSONField(t *testing.T, rec *httptest.ResponseRecorder, field string) interface{} {
	t.Helper()
	var body map[string]interface{}
	DecodeJSON(t, rec, &body)
	v, ok := body[field]
	require.Truef(t, ok, "response body has no field %q: %s", field, rec.Body.String())
	return v
}
