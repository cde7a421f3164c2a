package model

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseHairColor(t *testing.T) {
	for _, value := range []string{"black", "white", "brown", "red", "blonde"} {
		h, err := ParseHairColor(value)
		require.NoError(t, err)
		assert.Equal(t, value, h.String())
	}

	_, err := ParseHairColor("green")
	assert.ErrorContains(t, err, "green")
}

func TestHairColorJSON(t *testing.T) {
	var p PersonBase
	require.NoError(t, json.Unmarshal([]byte(`{"hair_color":"red"}`), &p))
	require.NotNil(t, p.HairColor)
	assert.Equal(t, HairColorRed, *p.HairColor)

	data, err := json.Marshal(p)
	require.NoError(t, err)
	assert.Contains(t, string(data), `"hair_color":"red"`)
}

func validPerson() Person {
	hair := HairColorBrown
	married := true

	return Person{
		PersonBase: PersonBase{
			FirstName: "Rocío",
			LastName:  "Pérez",
			Age:       30,
			Email:     "rocio@example.com",
			HairColor: &hair,
			IsMarried: &married,
		},
		Password: "supersecret",
	}
}

func TestPersonValidate(t *testing.T) {
	t.Run("valid", func(t *testing.T) {
		p := validPerson()
		assert.NoError(t, p.Validate())
	})

	t.Run("unknown hair color", func(t *testing.T) {
		p := validPerson()
		green := HairColor("green")
		p.HairColor = &green

		assert.Error(t, p.Validate())
	})

	t.Run("optional fields omitted", func(t *testing.T) {
		p := validPerson()
		p.HairColor = nil
		p.IsMarried = nil

		assert.NoError(t, p.Validate())
	})

	for _, age := range []int{17, 100} {
		p := validPerson()
		p.Age = age
		assert.Error(t, p.Validate(), "age %d", age)
	}
}

func TestPersonOut(t *testing.T) {
	data, err := json.Marshal(validPerson().Out())
	require.NoError(t, err)

	assert.NotContains(t, string(data), "password")
	assert.NotContains(t, string(data), "supersecret")
	assert.Contains(t, string(data), `"first_name":"Rocío"`)
}

func TestFields(t *testing.T) {
	p := validPerson()

	fields := p.Fields()
	assert.Len(t, fields, 7)
	assert.Equal(t, "supersecret", fields["password"])

	loc := Location{City: "Lima", State: "Lima", Country: "Peru"}
	assert.Equal(t, map[string]any{"city": "Lima", "state": "Lima", "country": "Peru"}, loc.Fields())
}

func TestPersonDetailQueryDefaults(t *testing.T) {
	q := NewPersonDetailQuery()

	assert.Equal(t, DefaultDetailAge, q.Age)
	assert.Nil(t, q.Name)
	assert.NoError(t, q.Validate())
}
