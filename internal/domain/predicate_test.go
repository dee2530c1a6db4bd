package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func person(name string, clientTypes ...string) Person {
	return Person{Name: name, ClientTypes: clientTypes}
}

func TestNameContainsKeywords(t *testing.T) {
	tests := []struct {
		name     string
		keywords []string
		person   Person
		want     bool
	}{
		{"single keyword", []string{"Alice"}, person("Alice Bob"), true},
		{"any keyword matches", []string{"Carol", "Bob"}, person("Alice Bob"), true},
		{"mixed case", []string{"aLIce", "bOB"}, person("Alice Bob"), true},
		{"no match", []string{"Carol"}, person("Alice Bob"), false},
		{"partial word does not match", []string{"Ali"}, person("Alice Bob"), false},
		{"keyword matching other field", []string{"VIP"}, person("Alice", "VIP"), false},
		{"empty keywords", nil, person("Alice"), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, NewNameContainsKeywords(tt.keywords).Test(tt.person))
		})
	}
}

func TestClientTypeContainsKeywords(t *testing.T) {
	tests := []struct {
		name     string
		keywords []string
		person   Person
		want     bool
	}{
		{"exact client type", []string{"VIP"}, person("Alice", "VIP"), true},
		{"word of multi-word type", []string{"corporate"}, person("Alice", "Corporate Client"), true},
		{"second client type", []string{"retail"}, person("Alice", "VIP", "Retail"), true},
		{"no client types", []string{"VIP"}, person("Alice"), false},
		{"name is ignored", []string{"Alice"}, person("Alice", "VIP"), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, NewClientTypeContainsKeywords(tt.keywords).Test(tt.person))
		})
	}
}

func TestNameStartsWithKeywords(t *testing.T) {
	tests := []struct {
		name     string
		keywords []string
		person   Person
		want     bool
	}{
		{"prefix of one word", []string{"ali"}, person("Alice Pauline"), true},
		{"all prefixes present", []string{"Ali", "Pau"}, person("Alice Pauline"), true},
		{"one prefix missing", []string{"Ali", "Bob"}, person("Alice Pauline"), false},
		{"whole word", []string{"Pauline"}, person("Alice Pauline"), true},
		{"infix is not prefix", []string{"lice"}, person("Alice Pauline"), false},
		{"empty keywords", nil, person("Alice"), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, NewNameStartsWithKeywords(tt.keywords).Test(tt.person))
		})
	}
}

func TestPredicateEqual(t *testing.T) {
	first := NewNameContainsKeywords([]string{"first"})
	firstSecond := NewNameContainsKeywords([]string{"first", "second"})

	assert.True(t, first.Equal(first))
	assert.True(t, first.Equal(NewNameContainsKeywords([]string{"first"})))
	assert.False(t, first.Equal(firstSecond))
	assert.False(t, firstSecond.Equal(NewNameContainsKeywords([]string{"second", "first"})))

	// same keywords, different kinds
	assert.False(t, first.Equal(NewClientTypeContainsKeywords([]string{"first"})))
	assert.False(t, first.Equal(NewNameStartsWithKeywords([]string{"first"})))
	assert.False(t, first.Equal(nil))

	assert.True(t, ShowAll{}.Equal(ShowAll{}))
	assert.False(t, ShowAll{}.Equal(first))
}

func TestPredicateKeywordsAreCopied(t *testing.T) {
	keywords := []string{"Alice"}
	p := NewNameContainsKeywords(keywords)
	keywords[0] = "Bob"

	assert.True(t, p.Test(person("Alice")))
	assert.False(t, p.Test(person("Bob")))
	assert.True(t, p.Equal(NewNameContainsKeywords([]string{"Alice"})))
}

func TestPredicateString(t *testing.T) {
	p := NewNameContainsKeywords([]string{"keyword1", "keyword2"})
	assert.Equal(t, "NameContainsKeywords{keywords=[keyword1 keyword2]}", p.String())
	assert.Equal(t, "ClientTypeContainsKeywords{keywords=[VIP]}",
		NewClientTypeContainsKeywords([]string{"VIP"}).String())
}
