package dispatch

import (
	"context"

	"followupplan-service/internal/app/models"
)

// Dispatcher executes one delivery path for a routed intent. Dispatchers
// return an outcome, never an error: every terminal state, success or
// failure, is journaled the same way and no path is retried.
type Dispatcher interface {
	Dispatch(ctx context.Context, intent models.DispatchIntent) models.DispatchOutcome
}

// Set routes intents to the dispatcher for their kind.
type Set struct {
	dispatchers map[models.IntentKind]Dispatcher
}

func NewSet(archive *ArchiveDispatcher, benefits *BenefitsDispatcher, physician *PhysicianDispatcher, letter *LetterDispatcher) *Set {
	return &Set{
		dispatchers: map[models.IntentKind]Dispatcher{
			models.IntentArchiveDocument: archive,
			models.IntentNotifyBenefits:  benefits,
			models.IntentNotifyPhysician: physician,
			models.IntentFallbackLetter:  letter,
		},
	}
}

func (s *Set) Dispatch(ctx context.Context, intent models.DispatchIntent) models.DispatchOutcome {
	dispatcher, ok := s.dispatchers[intent.Kind]
	if !ok {
		return models.OutcomeFailed(intent.Kind, "no dispatcher registered for intent")
	}
	return dispatcher.Dispatch(ctx, intent)
}
