package main

import (
	"bytes"
	"encoding/json"
	"testing"

	"klusmarkt/internal/domain/entities"
	"klusmarkt/internal/domain/money"
	"klusmarkt/internal/domain/projections"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func run(t *testing.T, args ...string) (string, error) {
	t.Helper()
	root := newRootCmd()
	var out bytes.Buffer
	root.SetOut(&out)
	root.SetErr(&out)
	root.SetArgs(args)
	err := root.Execute()
	return out.String(), err
}

func TestCommissionCmd(t *testing.T) {
	t.Run("plan rate", func(t *testing.T) {
		out, err := run(t, "commission", "2975", "--plan", "professional")
		require.NoError(t, err)
		var b projections.Breakdown
		require.NoError(t, json.Unmarshal([]byte(out), &b))
		assert.Equal(t, 7.5, b.CommissionRate)
		assert.Equal(t, money.Amount(22313), b.CommissionAmount)
		assert.Equal(t, b.Amount, b.CommissionAmount+b.NetAmount)
	})

	t.Run("unknown plan", func(t *testing.T) {
		_, err := run(t, "commission", "100", "--plan", "gold")
		assert.Error(t, err)
	})

	t.Run("bad amount", func(t *testing.T) {
		_, err := run(t, "commission", "abc")
		assert.Error(t, err)
	})
}

func TestInstallmentsCmd(t *testing.T) {
	out, err := run(t, "installments", "1000", "-n", "3", "--from", "2026-10-19")
	require.NoError(t, err)

	var schedule []entities.Installment
	require.NoError(t, json.Unmarshal([]byte(out), &schedule))
	require.Len(t, schedule, 3)
	assert.Equal(t, money.FromMajor(333), schedule[0].Amount)
	assert.Equal(t, money.FromMajor(334), schedule[2].Amount)
	assert.Equal(t, "2026-11-18", schedule[0].DueDate)
}
