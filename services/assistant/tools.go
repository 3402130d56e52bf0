// File: services/assistant/tools.go
package assistant

import (
	"context"
	"fmt"
	"strings"

	"tripdesk/services/pega"

	genai "github.com/google/generative-ai-go/genai"
)

// Tool pairs the schema the model sees with the executor that backs it.
type Tool struct {
	Declaration *genai.FunctionDeclaration
	Execute     func(ctx context.Context, args map[string]any) (any, error)
}

// Registry is the closed set of tools the assistant may invoke. Fixed at
// construction; unknown names are rejected by the conversation loop.
type Registry struct {
	tools map[string]Tool
	names []string
}

// NewRegistry wires the booking tools to the given Pega client.
func NewRegistry(client *pega.Client) *Registry {
	r := &Registry{tools: make(map[string]Tool)}

	r.register(Tool{
		Declaration: &genai.FunctionDeclaration{
			Name: "create_ticket_booking_request",
			Description: "Creates a new ticket booking case for a customer. " +
				"Ask the user for the customer's full name, phone number and email address before calling. " +
				"If any of the required parameters are missing, ask the user to provide the details again.",
			Parameters: &genai.Schema{
				Type: genai.TypeObject,
				Properties: map[string]*genai.Schema{
					"CustomerName":  {Type: genai.TypeString, Description: "The full name of the customer."},
					"CustomerPhone": {Type: genai.TypeString, Description: "The phone number of the customer."},
					"CustomerEmail": {Type: genai.TypeString, Description: "The email address of the customer."},
				},
				Required: []string{"CustomerName", "CustomerPhone", "CustomerEmail"},
			},
		},
		Execute: func(ctx context.Context, args map[string]any) (any, error) {
			name, okName := stringArg(args, "CustomerName")
			phone, okPhone := stringArg(args, "CustomerPhone")
			email, okEmail := stringArg(args, "CustomerEmail")
			if missing := missingParams(map[string]bool{
				"CustomerName":  okName,
				"CustomerPhone": okPhone,
				"CustomerEmail": okEmail,
			}); len(missing) > 0 {
				return reaskBody(missing), nil
			}
			return client.CreateBooking(ctx, name, phone, email)
		},
	})

	r.register(Tool{
		Declaration: &genai.FunctionDeclaration{
			Name:        "get_travel_to_countries",
			Description: "Returns the list of cities the user can book travel to.",
		},
		Execute: func(ctx context.Context, args map[string]any) (any, error) {
			return client.ListDestinations(ctx), nil
		},
	})

	r.register(Tool{
		Declaration: &genai.FunctionDeclaration{
			Name: "get_booking_details",
			Description: "Fetches the details of an existing booking by its identifier. " +
				"A booking id looks like this - \"B-2005\".",
			Parameters: &genai.Schema{
				Type: genai.TypeObject,
				Properties: map[string]*genai.Schema{
					"booking_id": {Type: genai.TypeString, Description: "The unique identifier of the booking to retrieve."},
				},
				Required: []string{"booking_id"},
			},
		},
		Execute: func(ctx context.Context, args map[string]any) (any, error) {
			bookingID, ok := stringArg(args, "booking_id")
			if !ok {
				return reaskBody([]string{"booking_id"}), nil
			}
			return client.GetBookingDetails(ctx, bookingID), nil
		},
	})

	return r
}

func (r *Registry) register(t Tool) {
	r.tools[t.Declaration.Name] = t
	r.names = append(r.names, t.Declaration.Name)
}

// Lookup returns the tool registered under name.
func (r *Registry) Lookup(name string) (Tool, bool) {
	t, ok := r.tools[name]
	return t, ok
}

// Declarations returns the tool schemas in registration order.
func (r *Registry) Declarations() []*genai.FunctionDeclaration {
	decls := make([]*genai.FunctionDeclaration, 0, len(r.names))
	for _, name := range r.names {
		decls = append(decls, r.tools[name].Declaration)
	}
	return decls
}

func stringArg(args map[string]any, key string) (string, bool) {
	v, ok := args[key].(string)
	if !ok || v == "" {
		return "", false
	}
	return v, true
}

func missingParams(present map[string]bool) []string {
	var missing []string
	for _, key := range []string{"CustomerName", "CustomerPhone", "CustomerEmail"} {
		if ok, tracked := present[key]; tracked && !ok {
			missing = append(missing, key)
		}
	}
	return missing
}

// reaskBody tells the model which required parameters it still has to gather
// from the user. Missing arguments are a conversational miss, not a failure.
func reaskBody(missing []string) map[string]any {
	return map[string]any{
		"status": "incomplete",
		"message": fmt.Sprintf("Missing required parameters: %s. Ask the user to provide them.",
			strings.Join(missing, ", ")),
	}
}
