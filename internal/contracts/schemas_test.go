package contracts

import (
	"testing"

	"agency-service/internal/core/domain"

	"github.com/stretchr/testify/require"
)

func TestKeyFromPath(t *testing.T) {
	require.Equal(t, "ClientBody/1.0.0", keyFromPath("schemas/bodies/client/v1.json"))
	require.Equal(t, "EntityChangedEvent/1.0.0", keyFromPath("schemas/events/entity-changed/v1.json"))
	require.Equal(t, "PropertyBody/2.0.0", keyFromPath("schemas/bodies/property/v2.json"))
	require.Empty(t, keyFromPath("schemas/client.json"))
	require.Empty(t, keyFromPath("schemas/other/client/v1.json"))
}

func TestAllSchemasRegistered(t *testing.T) {
	for _, key := range []string{ClientBodyV1, PropertyBodyV1, RequestBodyV1, EntityChangedV1} {
		_, ok := compiledSchemas[key]
		require.True(t, ok, key)
	}
}

func TestValidate_ClientBody(t *testing.T) {
	require.NoError(t, Validate(ClientBodyV1, []byte(`{"full_name":"Иванов Иван","passport_number":"4000 123456","phone":"7900"}`)))

	err := Validate(ClientBodyV1, []byte(`{"full_name":"Иванов Иван"}`))
	require.ErrorIs(t, err, domain.ErrInvalidInput)

	err = Validate(ClientBodyV1, []byte(`{"full_name":"","passport_number":"1"}`))
	require.ErrorIs(t, err, domain.ErrInvalidInput)

	err = Validate(ClientBodyV1, []byte(`{"full_name":"A","passport_number":"1","email":"a@b"}`))
	require.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestValidate_RequestBody(t *testing.T) {
	cases := []struct {
		name  string
		body  string
		valid bool
	}{
		{"all fields", `{"client_id":1,"property_id":2,"type":"Buy","amount":"9500000.00","date_created":"2025-09-15"}`, true},
		{"numeric amount", `{"client_id":1,"property_id":2,"amount":1200.5}`, true},
		{"nulls", `{"client_id":1,"property_id":2,"type":null,"amount":null,"date_created":null}`, true},
		{"missing property", `{"client_id":1}`, false},
		{"zero client", `{"client_id":0,"property_id":2}`, false},
		{"negative amount", `{"client_id":1,"property_id":2,"amount":"-5"}`, false},
		{"bad date", `{"client_id":1,"property_id":2,"date_created":"15.09.2025"}`, false},
		{"not json", `{"client_id":`, false},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			err := Validate(RequestBodyV1, []byte(tc.body))
			if tc.valid {
				require.NoError(t, err)
				return
			}
			require.ErrorIs(t, err, domain.ErrInvalidInput)
		})
	}
}

func TestValidate_EntityChangedEvent(t *testing.T) {
	require.NoError(t, Validate(EntityChangedV1, []byte(`{"entity":"client","action":"created","id":3,"occurred_at":"2025-09-15T10:00:00Z"}`)))
	require.Error(t, Validate(EntityChangedV1, []byte(`{"entity":"user","action":"created","id":3,"occurred_at":"2025-09-15T10:00:00Z"}`)))
}

func TestValidate_UnknownSchema(t *testing.T) {
	err := Validate("Missing/1.0.0", []byte(`{}`))
	require.Error(t, err)
	require.NotErrorIs(t, err, domain.ErrInvalidInput)
}
