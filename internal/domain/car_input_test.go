package domain

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCarInput_BrandForms(t *testing.T) {
	cases := []struct {
		name string
		body string
		want BrandName
	}{
		{name: "string", body: `{"id":1,"brand":"Toyota"}`, want: "Toyota"},
		{name: "object", body: `{"id":1,"brand":{"id":4,"name":"BMW"}}`, want: "BMW"},
		{name: "null", body: `{"id":1,"brand":null}`, want: ""},
		{name: "missing", body: `{"id":1}`, want: ""},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			var in CarInput
			require.NoError(t, json.Unmarshal([]byte(tc.body), &in))
			assert.Equal(t, tc.want, in.Brand)
		})
	}
}

func TestCarInput_BrandRejectsNumber(t *testing.T) {
	var in CarInput
	assert.Error(t, json.Unmarshal([]byte(`{"id":1,"brand":5}`), &in))
}

func TestCarInput_PriceForms(t *testing.T) {
	cases := []struct {
		name string
		body string
		want Price
	}{
		{name: "number", body: `{"id":1,"price":3000000}`, want: 3000000},
		{name: "decimal string", body: `{"id":1,"price":"3000000.00"}`, want: 3000000},
		{name: "comma decimal", body: `{"id":1,"price":"1500,5"}`, want: 1501},
		{name: "padded string", body: `{"id":1,"price":" 2500000 "}`, want: 2500000},
		{name: "null", body: `{"id":1,"price":null}`, want: 0},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			var in CarInput
			require.NoError(t, json.Unmarshal([]byte(tc.body), &in))
			assert.Equal(t, tc.want, in.Price)
		})
	}
}

func TestCarInput_PriceRejectsNonFinite(t *testing.T) {
	bodies := []string{
		`{"id":1,"price":"NaN"}`,
		`{"id":1,"price":"Inf"}`,
		`{"id":1,"price":"-Inf"}`,
		`{"id":1,"price":1e19}`,
		`{"id":1,"price":"-1e19"}`,
		`{"id":1,"price":9223372036854775808}`,
		`{"id":1,"price":"дорого"}`,
	}

	for _, body := range bodies {
		var in CarInput
		assert.Error(t, json.Unmarshal([]byte(body), &in), body)
		assert.Zero(t, in.Price, body)
	}
}
