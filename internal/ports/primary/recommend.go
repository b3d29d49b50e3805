package primary

import "context"

// RecommendService defines the primary port for the recommendation stage.
// A draft lives in the session stash between its initiating action and the
// deferred submit by the same actor.
type RecommendService interface {
	// Start stashes a new recommendation draft and returns its token.
	Start(ctx context.Context, req StartRecommendationRequest) (*StartRecommendationResponse, error)

	// Continue advances the draft to a dependent step, resetting its TTL
	// to a full window. Returns ErrSessionExpired if the token is gone.
	Continue(ctx context.Context, token string) error

	// Cancel consumes and discards the draft.
	// Returns ErrSessionExpired if the token is gone.
	Cancel(ctx context.Context, token string) error

	// Submit consumes the draft, posts the origin message, seeds the
	// background check and registers the origin surface as the first
	// replica. Returns ErrSessionExpired if the token is gone.
	Submit(ctx context.Context, token string) (*Record, error)
}

// StartRecommendationRequest contains parameters for opening a draft.
type StartRecommendationRequest struct {
	Candidate string
	Note      string
}

// StartRecommendationResponse contains the stash token for the follow-up
// actions of the same actor.
type StartRecommendationResponse struct {
	Token string
}
