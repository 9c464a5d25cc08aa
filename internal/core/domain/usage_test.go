package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestUsageSummary_Add(t *testing.T) {
	s := NewUsageSummary()

	s.Add(Transaction{Entrypoint: "decode-vin", Price: 10_000, Success: true})
	s.Add(Transaction{Entrypoint: "decode-vin", Price: 10_000, Success: false, Error: "boom"})
	s.Add(Transaction{Entrypoint: "compare-vins", Price: 50_000, Success: true})

	assert.Equal(t, 3, s.TotalCalls)
	assert.Equal(t, 2, s.SuccessfulCalls)
	assert.Equal(t, 1, s.FailedCalls)
	assert.Equal(t, Price(60_000), s.Revenue)

	decode := s.ByEntrypoint["decode-vin"]
	assert.Equal(t, 2, decode.Calls)
	assert.Equal(t, 1, decode.Failed)
	assert.Equal(t, Price(10_000), decode.Revenue)
}

func TestNewUsageSummary_Empty(t *testing.T) {
	s := NewUsageSummary()

	assert.Zero(t, s.TotalCalls)
	assert.NotNil(t, s.ByEntrypoint)
	assert.Empty(t, s.ByEntrypoint)
}
