package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValidName(t *testing.T) {
	for _, s := range []string{"Alice", "Alice Pauline", "Ravi s/o Kumar", "Tan (Peter)", "Zoë"} {
		assert.True(t, ValidName(s), s)
	}
	for _, s := range []string{"", " ", "Alice1", "Alice  Bob", " Alice", "^"} {
		assert.False(t, ValidName(s), s)
	}
}

func TestValidPhone(t *testing.T) {
	assert.True(t, ValidPhone("911"))
	assert.True(t, ValidPhone("93121534"))
	assert.False(t, ValidPhone("91"))
	assert.False(t, ValidPhone("9312 1534"))
	assert.False(t, ValidPhone("phone"))
}

func TestValidEmail(t *testing.T) {
	assert.True(t, ValidEmail("alice@example.com"))
	assert.True(t, ValidEmail("a.b+c@mail-server.co"))
	assert.False(t, ValidEmail("alice"))
	assert.False(t, ValidEmail("@example.com"))
	assert.False(t, ValidEmail("alice@-example.com"))
}

func TestPersonValidate(t *testing.T) {
	valid := NewPerson("Alice", "94351253", "alice@example.com", "123, Jurong West", []string{"VIP"})
	assert.NoError(t, valid.Validate())
	assert.NotEmpty(t, valid.ID)

	bad := valid
	bad.Phone = "12"
	assert.EqualError(t, bad.Validate(), PhoneConstraints)

	bad = valid
	bad.ClientTypes = []string{"V-I-P"}
	assert.EqualError(t, bad.Validate(), ClientTypeConstraints)

	bad = valid
	bad.Address = "   "
	assert.EqualError(t, bad.Validate(), AddressConstraints)
}

func TestIsSamePerson(t *testing.T) {
	a := person("Alice Pauline")
	assert.True(t, a.IsSamePerson(person("alice pauline")))
	assert.False(t, a.IsSamePerson(person("Alice")))
}
