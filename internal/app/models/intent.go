package models

// IntentKind enumerates the delivery paths a submission can fan out to. The
// paths are independent; one submission may fire several of them.
type IntentKind string

const (
	IntentArchiveDocument IntentKind = "archive_document"
	IntentNotifyBenefits  IntentKind = "notify_benefits_system"
	IntentNotifyPhysician IntentKind = "notify_physician"
	IntentFallbackLetter  IntentKind = "fallback_physical_letter"
)

// LetterTarget says who a fallback letter is addressed to.
type LetterTarget string

const (
	LetterTargetSenderOrg       LetterTarget = "sender_organization"
	LetterTargetPhysicianOffice LetterTarget = "physician_office"
)

// DispatchIntent is one delivery decision produced by the routing engine,
// together with the data the dispatcher for that path needs.
type DispatchIntent struct {
	Kind   IntentKind
	Fields CanonicalFields
	// Payload carries pre-rendered or raw document bytes for the archive
	// path. Nil means the dispatcher renders the document itself.
	Payload []byte
	// LetterTarget is set for fallback-letter intents only.
	LetterTarget LetterTarget
}

// DispatchOutcome is the terminal result of one intent. Outcomes are never
// aggregated into a submission-level verdict.
type DispatchOutcome struct {
	Intent    IntentKind
	Succeeded bool
	Reason    string
}

func OutcomeSucceeded(kind IntentKind) DispatchOutcome {
	return DispatchOutcome{Intent: kind, Succeeded: true}
}

func OutcomeFailed(kind IntentKind, reason string) DispatchOutcome {
	return DispatchOutcome{Intent: kind, Succeeded: false, Reason: reason}
}
