package routing_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/avolkov/voyageplan-go/internal/domain/routing"
	"github.com/avolkov/voyageplan-go/internal/domain/shared"
)

func TestNewRoute_Validation(t *testing.T) {
	_, err := routing.NewRoute("", "HAMBURG", 1000, false, "", "low")
	assert.True(t, shared.IsValidation(err))

	_, err = routing.NewRoute("ROTTERDAM", "HAMBURG", 0, false, "", "low")
	assert.True(t, shared.IsValidation(err))

	// A canal transit without a canal name is inconsistent reference data.
	_, err = routing.NewRoute("ROTTERDAM", "HAMBURG", 1000, true, "", "low")
	assert.True(t, shared.IsValidation(err))

	r, err := routing.NewRoute("ROTTERDAM", "SINGAPORE", 8300, true, "Suez", "medium")
	require.NoError(t, err)
	assert.True(t, r.CanalTransit())
	assert.Equal(t, "Suez", r.CanalName())
	assert.Equal(t, "medium", r.WeatherRisk())
}

func TestLookup_FindIsSymmetric(t *testing.T) {
	// Arrange
	r, err := routing.NewRoute("ROTTERDAM", "HAMBURG", 1000, false, "", "low")
	require.NoError(t, err)
	lookup := routing.NewLookup([]*routing.Route{r})

	// Act
	forward, err := lookup.Find("ROTTERDAM", "HAMBURG")
	require.NoError(t, err)
	reverse, err := lookup.Find("HAMBURG", "ROTTERDAM")
	require.NoError(t, err)

	// Assert: one stored lane serves both directions.
	assert.Same(t, forward, reverse)
}

func TestLookup_DirectedEntryWins(t *testing.T) {
	// Arrange: an explicit directed entry overrides the symmetric fallback.
	outbound, err := routing.NewRoute("ROTTERDAM", "HAMBURG", 1000, false, "", "low")
	require.NoError(t, err)
	inbound, err := routing.NewRoute("HAMBURG", "ROTTERDAM", 1100, false, "", "low")
	require.NoError(t, err)
	lookup := routing.NewLookup([]*routing.Route{outbound, inbound})

	// Act
	found, err := lookup.Find("HAMBURG", "ROTTERDAM")

	// Assert
	require.NoError(t, err)
	assert.Equal(t, 1100.0, found.DistanceNM())
}

func TestLookup_MissingRoute(t *testing.T) {
	lookup := routing.NewLookup(nil)

	_, err := lookup.Find("ROTTERDAM", "HAMBURG")

	assert.True(t, shared.IsNotFound(err))
}
