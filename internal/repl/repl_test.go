package repl

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/pbaille/abook/internal/domain"
)

func TestRender(t *testing.T) {
	var buf bytes.Buffer
	Render(&buf, "2 persons listed!", []domain.Person{
		{Name: "Alice Pauline", Phone: "94351253", Email: "alice@example.com", Address: "Jurong", ClientTypes: []string{"VIP"}},
		{Name: "Benson Meier", Phone: "98765432", Email: "benson@example.com", Address: "Clementi"},
	})

	out := buf.String()
	assert.Contains(t, out, "2 persons listed!")
	assert.Contains(t, out, "1.")
	assert.Contains(t, out, "Alice Pauline")
	assert.Contains(t, out, "VIP")
	assert.Contains(t, out, "2.")
	assert.Contains(t, out, "benson@example.com")
}

func TestComplete(t *testing.T) {
	assert.Equal(t, []string{"find ", "fn ", "fc "}, complete("f"))
	assert.Equal(t, []string{"delete "}, complete("del"))
	assert.Empty(t, complete("zzz"))
}
