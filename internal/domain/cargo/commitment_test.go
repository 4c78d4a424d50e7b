package cargo_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/avolkov/voyageplan-go/internal/domain/cargo"
	"github.com/avolkov/voyageplan-go/internal/domain/shared"
)

func validCommitment(t *testing.T) *cargo.Commitment {
	t.Helper()
	start := time.Date(2026, time.January, 31, 0, 0, 0, 0, time.UTC)
	c, err := cargo.NewCommitment("C-001", "crude", 5000, "ROTTERDAM", "HAMBURG", start, start.AddDate(0, 0, 5))
	require.NoError(t, err)
	return c
}

func TestNewCommitment_Validation(t *testing.T) {
	start := time.Date(2026, time.January, 31, 0, 0, 0, 0, time.UTC)
	end := start.AddDate(0, 0, 5)

	cases := []struct {
		name string
		run  func() error
	}{
		{"empty id", func() error {
			_, err := cargo.NewCommitment("", "crude", 5000, "ROTTERDAM", "HAMBURG", start, end)
			return err
		}},
		{"zero quantity", func() error {
			_, err := cargo.NewCommitment("C-001", "crude", 0, "ROTTERDAM", "HAMBURG", start, end)
			return err
		}},
		{"missing port", func() error {
			_, err := cargo.NewCommitment("C-001", "crude", 5000, "", "HAMBURG", start, end)
			return err
		}},
		{"inverted laycan", func() error {
			_, err := cargo.NewCommitment("C-001", "crude", 5000, "ROTTERDAM", "HAMBURG", end, start)
			return err
		}},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			err := tc.run()
			assert.True(t, shared.IsValidation(err))
		})
	}
}

func TestCommitment_AssignLifecycle(t *testing.T) {
	// Arrange
	c := validCommitment(t)
	assert.Equal(t, cargo.CommitmentStatusPending, c.Status())

	// Act
	require.NoError(t, c.Assign("VOY-2026-001"))

	// Assert
	assert.Equal(t, cargo.CommitmentStatusAssigned, c.Status())
	assert.Equal(t, "VOY-2026-001", c.LaneID())

	// Double assignment is refused.
	assert.Error(t, c.Assign("VOY-2026-002"))

	// Reopen returns it to the pending pool.
	c.Reopen()
	assert.Equal(t, cargo.CommitmentStatusPending, c.Status())
	assert.Empty(t, c.LaneID())
	assert.NoError(t, c.Assign("VOY-2026-003"))
}

func TestCommitment_CompleteLifecycle(t *testing.T) {
	// Arrange
	c := validCommitment(t)

	// Completion requires an assignment first.
	assert.Error(t, c.Complete())

	require.NoError(t, c.Assign("VOY-2026-001"))

	// Act
	require.NoError(t, c.Complete())

	// Assert
	assert.Equal(t, cargo.CommitmentStatusCompleted, c.Status())
	assert.Equal(t, "VOY-2026-001", c.LaneID())
	assert.Error(t, c.Complete())
	assert.Error(t, c.Assign("VOY-2026-002"))
}

func TestCommitment_AssignRequiresLane(t *testing.T) {
	c := validCommitment(t)

	assert.Error(t, c.Assign(""))
	assert.Equal(t, cargo.CommitmentStatusPending, c.Status())
}

func TestCommitment_CloneIsIndependent(t *testing.T) {
	// Arrange
	original := validCommitment(t)
	original.SetDeliveryDeadline(original.LaycanEnd().AddDate(0, 0, 10))
	original.SetCostAllocations(map[string]float64{"bunker": 0.7})

	// Act
	clone := original.Clone()
	require.NoError(t, clone.Assign("VOY-2026-001"))
	clone.CostAllocations()["bunker"] = 0.1

	// Assert: mutations on the clone never reach the original.
	assert.Equal(t, cargo.CommitmentStatusPending, original.Status())
	assert.Empty(t, original.LaneID())
	assert.Equal(t, 0.7, original.CostAllocations()["bunker"])
	require.NotNil(t, clone.DeliveryDeadline())
	assert.True(t, clone.DeliveryDeadline().Equal(*original.DeliveryDeadline()))
}
