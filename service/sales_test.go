package service_test

import (
	"testing"
	"time"

	"go-postgres-optics/service"

	"github.com/stretchr/testify/assert"
)

func day(s string) time.Time {
	t, err := time.Parse("2006-01-02", s)
	if err != nil {
		panic(err)
	}
	return t
}

func TestAggregateSales(t *testing.T) {
	t.Parallel()

	now := day("2024-08-15")
	rows := []service.SaleRow{
		{OrderDate: day("2024-08-15"), TotalAmount: 1000},
		{OrderDate: day("2024-08-15"), TotalAmount: 500},
		{OrderDate: day("2024-07-01"), TotalAmount: 200},
		{OrderDate: day("2023-12-01"), TotalAmount: 999},  // older than 7 months
		{OrderDate: day("2024-09-01"), TotalAmount: 1234}, // future
	}

	daily, monthly := service.AggregateSales(rows, now)

	assert.Equal(t, map[string]float64{
		"2024-08-15": 1500,
		"2024-07-01": 200,
	}, daily)
	assert.Equal(t, map[string]float64{
		"2024-08": 1500,
		"2024-07": 200,
	}, monthly)
}

func TestAggregateSalesEmpty(t *testing.T) {
	t.Parallel()

	daily, monthly := service.AggregateSales(nil, day("2024-08-15"))
	assert.Empty(t, daily)
	assert.Empty(t, monthly)
}
