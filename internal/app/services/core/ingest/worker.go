package ingest

import (
	"context"
	"fmt"
	"time"

	"followupplan-service/internal/app/config"
	"followupplan-service/internal/app/contracts"
	"followupplan-service/internal/app/models"
	"followupplan-service/internal/app/services/core/classifier"
	"followupplan-service/internal/app/services/core/dispatch"
	"followupplan-service/internal/app/services/core/extractor"
	"followupplan-service/internal/app/services/core/routing"
	"followupplan-service/internal/pkg/constvars"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"golang.org/x/time/rate"
)

// Worker drains the submission queue with at-least-once semantics. Each
// submission is classified, extracted, routed, and dispatched before its
// acknowledgement; every intent outcome is journaled. The poll loop is paced
// so an empty queue does not spin.
type Worker struct {
	log        *zap.Logger
	cfg        *config.InternalConfig
	eventLog   contracts.EventLogClient
	orgs       contracts.OrganizationRegistryClient
	extractors *extractor.Set
	dispatch   *dispatch.Set
	journal    contracts.DispatchJournal
	stop       chan struct{}
}

func NewWorker(
	log *zap.Logger,
	cfg *config.InternalConfig,
	eventLog contracts.EventLogClient,
	orgs contracts.OrganizationRegistryClient,
	extractors *extractor.Set,
	dispatchers *dispatch.Set,
	journal contracts.DispatchJournal,
) *Worker {
	return &Worker{
		log:        log,
		cfg:        cfg,
		eventLog:   eventLog,
		orgs:       orgs,
		extractors: extractors,
		dispatch:   dispatchers,
		journal:    journal,
		stop:       make(chan struct{}),
	}
}

// Start begins the poll loop. It returns a stop function to halt execution.
func (w *Worker) Start(ctx context.Context) (stop func()) {
	interval := time.Duration(w.cfg.App.PollIntervalMillis) * time.Millisecond
	if interval <= 0 {
		interval = 100 * time.Millisecond
	}
	limiter := rate.NewLimiter(rate.Every(interval), 1)
	stopped := make(chan struct{})

	fmt.Println("Submission worker started")

	go func() {
		defer close(stopped)
		for {
			select {
			case <-ctx.Done():
				return
			case <-w.stop:
				return
			default:
			}
			if err := limiter.Wait(ctx); err != nil {
				return
			}
			w.runOnce(ctx)
		}
	}()

	return func() {
		close(w.stop)
		<-stopped
	}
}

func (w *Worker) runOnce(ctx context.Context) {
	batch, err := w.eventLog.FetchBatch(ctx, w.cfg.App.PollBatchSize)
	if err != nil {
		w.log.Error("ingest.Worker.runOnce fetch failed", zap.Error(err))
		return
	}
	if len(batch) == 0 {
		return
	}

	w.log.Info("ingest.Worker.runOnce batch fetched", zap.Int("fetched_count", len(batch)))

	for _, queued := range batch {
		w.processSubmission(ctx, queued)
	}
}

// processSubmission runs one submission through the full pipeline and
// acknowledges it afterwards. A panic in any stage is confined to the
// submission that caused it; the message stays unacked and redelivers.
func (w *Worker) processSubmission(ctx context.Context, queued contracts.QueuedSubmission) {
	submissionID := uuid.NewString()
	submission := queued.Submission

	log := w.log.With(
		zap.String(constvars.LoggingSubmissionIDKey, submissionID),
		zap.String(constvars.LoggingArchiveReferenceKey, submission.ArchiveReference),
		zap.String(constvars.LoggingSourceQueueKey, submission.SourceQueue),
	)

	defer func() {
		if r := recover(); r != nil {
			log.Error("ingest.Worker.processSubmission panic recovered",
				zap.Any("panic", r))
		}
	}()

	tag := classifier.Classify(submission.ServiceCode, submission.EditionCode)
	log = log.With(zap.String(constvars.LoggingSchemaVersionKey, string(tag)))
	log.Info("ingest.Worker.processSubmission classified",
		zap.String("service_code", submission.ServiceCode),
		zap.String("edition_code", submission.EditionCode))

	fields, err := w.extractors.Extract(submission, tag)
	if err != nil {
		// A malformed form can never become well-formed; drop it rather
		// than redeliver forever.
		log.Error("ingest.Worker.processSubmission form extraction failed, dropping submission",
			zap.Error(err))
		w.ack(ctx, log, queued.DeliveryTag)
		return
	}

	orgValid := w.validateOrganization(ctx, log, tag, fields)
	intents := routing.Decide(fields, tag, orgValid, w.documentPayload(submission))

	if len(intents) == 0 {
		log.Warn("ingest.Worker.processSubmission no delivery paths, dropping submission",
			zap.String(constvars.LoggingSenderOrgIDKey, fields.SenderOrgID))
		w.ack(ctx, log, queued.DeliveryTag)
		return
	}

	for _, intent := range intents {
		outcome := w.dispatch.Dispatch(ctx, intent)
		w.record(ctx, log, submissionID, tag, fields, outcome)
	}

	w.ack(ctx, log, queued.DeliveryTag)
}

// validateOrganization gates every classified submission. Validation errors
// count as invalid; the registry being down must not let unvetted senders
// through.
func (w *Worker) validateOrganization(ctx context.Context, log *zap.Logger, tag models.SchemaVersion, fields models.CanonicalFields) bool {
	if tag == models.SchemaUnclassified {
		return false
	}

	valid, err := w.orgs.ValidateOrganization(ctx, fields.SenderOrgID)
	if err != nil {
		log.Warn("ingest.Worker.validateOrganization validation call failed, treating as invalid",
			zap.String(constvars.LoggingSenderOrgIDKey, fields.SenderOrgID),
			zap.Error(err))
		return false
	}
	if !valid {
		log.Warn("ingest.Worker.validateOrganization sender organization rejected",
			zap.String(constvars.LoggingSenderOrgIDKey, fields.SenderOrgID))
	}
	return valid
}

// documentPayload picks the raw document bytes used when no rendering step
// applies: the attachment when present, the form payload otherwise.
func (w *Worker) documentPayload(submission models.RawSubmission) []byte {
	if len(submission.Attachment) > 0 {
		return submission.Attachment
	}
	return []byte(submission.FormData)
}

func (w *Worker) record(ctx context.Context, log *zap.Logger, submissionID string, tag models.SchemaVersion, fields models.CanonicalFields, outcome models.DispatchOutcome) {
	err := w.journal.Record(ctx, &models.DispatchRecord{
		SubmissionID:     submissionID,
		ArchiveReference: fields.ArchiveReference,
		SenderOrgID:      fields.SenderOrgID,
		SchemaVersion:    string(tag),
		Intent:           string(outcome.Intent),
		Succeeded:        outcome.Succeeded,
		Reason:           outcome.Reason,
		ProcessedAt:      time.Now().UTC(),
	})
	if err != nil {
		log.Error("ingest.Worker.record journal write failed",
			zap.String(constvars.LoggingIntentKey, string(outcome.Intent)),
			zap.Error(err))
	}

	if outcome.Succeeded {
		log.Info("ingest.Worker.record intent dispatched",
			zap.String(constvars.LoggingIntentKey, string(outcome.Intent)))
	} else {
		log.Error("ingest.Worker.record intent failed",
			zap.String(constvars.LoggingIntentKey, string(outcome.Intent)),
			zap.String("reason", outcome.Reason))
	}
}

func (w *Worker) ack(ctx context.Context, log *zap.Logger, deliveryTag uint64) {
	if err := w.eventLog.Ack(ctx, deliveryTag); err != nil {
		log.Error("ingest.Worker.ack acknowledgement failed", zap.Error(err))
	}
}
