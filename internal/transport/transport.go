package transport

import "context"

// Choice is one button presented to the user. Action is the machine-readable
// identifier echoed back in button-click events.
type Choice struct {
	Action string `json:"action"`
	Label  string `json:"label"`
}

// Transport delivers outbound messages for one conversation. Deliveries are
// best-effort: callers log failures and continue, they never retry and never
// roll back state already committed to the session store.
type Transport interface {
	SendText(ctx context.Context, conversationID, text string) error
	SendTyping(ctx context.Context, conversationID string) error
	SendFile(ctx context.Context, conversationID, path, caption string) error
	SendChoices(ctx context.Context, conversationID, prompt string, choices []Choice) error
}
