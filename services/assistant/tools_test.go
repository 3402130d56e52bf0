package assistant

import (
	"context"
	"testing"

	"tripdesk/services/pega"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newRegistry() *Registry {
	store := pega.NewCredentialStore()
	client := pega.NewClient("http://127.0.0.1:0", "MyOrg-BookTick-Work-BookTicketReservation", store)
	return NewRegistry(client)
}

func TestRegistryLookup(t *testing.T) {
	r := newRegistry()

	for _, name := range []string{"create_ticket_booking_request", "get_travel_to_countries", "get_booking_details"} {
		tool, ok := r.Lookup(name)
		assert.True(t, ok, name)
		assert.Equal(t, name, tool.Declaration.Name)
	}

	_, ok := r.Lookup("cancel_booking")
	assert.False(t, ok)
}

func TestRegistryDeclarationsAreStable(t *testing.T) {
	r := newRegistry()

	decls := r.Declarations()
	require.Len(t, decls, 3)
	assert.Equal(t, "create_ticket_booking_request", decls[0].Name)
	assert.Equal(t, "get_travel_to_countries", decls[1].Name)
	assert.Equal(t, "get_booking_details", decls[2].Name)

	// Required parameters are declared for the model to gather.
	assert.ElementsMatch(t,
		[]string{"CustomerName", "CustomerPhone", "CustomerEmail"},
		decls[0].Parameters.Required)
	assert.Equal(t, []string{"booking_id"}, decls[2].Parameters.Required)
}

func TestBookingDetailsToolReasksWithoutID(t *testing.T) {
	r := newRegistry()
	tool, ok := r.Lookup("get_booking_details")
	require.True(t, ok)

	result, err := tool.Execute(context.Background(), map[string]any{})
	require.NoError(t, err)

	body, ok := result.(map[string]any)
	require.True(t, ok)
	assert.Equal(t, "incomplete", body["status"])
	assert.Contains(t, body["message"], "booking_id")
}
