package ingest

import (
	"context"
	"errors"
	"testing"

	"followupplan-service/internal/app/config"
	"followupplan-service/internal/app/contracts"
	"followupplan-service/internal/app/models"
	"followupplan-service/internal/app/services/core/dispatch"
	"followupplan-service/internal/app/services/core/extractor"
	"followupplan-service/internal/pkg/dto/requests"

	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
)

type fakeEventLog struct {
	batch []contracts.QueuedSubmission
	acked []uint64
}

func (f *fakeEventLog) FetchBatch(ctx context.Context, max int) ([]contracts.QueuedSubmission, error) {
	batch := f.batch
	f.batch = nil
	return batch, nil
}

func (f *fakeEventLog) Ack(ctx context.Context, deliveryTag uint64) error {
	f.acked = append(f.acked, deliveryTag)
	return nil
}

type fakeOrganizationRegistry struct {
	valid          bool
	validateErr    error
	validateCalled bool
}

func (f *fakeOrganizationRegistry) ValidateOrganization(ctx context.Context, orgID string) (bool, error) {
	f.validateCalled = true
	return f.valid, f.validateErr
}

func (f *fakeOrganizationRegistry) GetOrganizationName(ctx context.Context, orgNumber string) (string, error) {
	return "Acme Industries", nil
}

func (f *fakeOrganizationRegistry) FindOrganizationSummary(ctx context.Context, name string) (*models.OrganizationAddress, error) {
	return &models.OrganizationAddress{OrgNumber: "987654321", Name: name, PostalCode: "0181", City: "Oslo"}, nil
}

type fakePhysicianRegistry struct {
	association *models.PhysicianAssociation
}

func (f *fakePhysicianRegistry) GetPhysicianAssociation(ctx context.Context, personID string) (*models.PhysicianAssociation, error) {
	return f.association, nil
}

type fakeAddressRegistry struct {
	identity *models.OrganizationIdentity
}

func (f *fakeAddressRegistry) GetOrganizationIdentity(ctx context.Context, registryID int) (*models.OrganizationIdentity, error) {
	return f.identity, nil
}

type fakePartnerRegistry struct {
	capabilities []models.PartnerCapability
}

func (f *fakePartnerRegistry) GetPartnerCapabilities(ctx context.Context, orgNumber string) ([]models.PartnerCapability, error) {
	return f.capabilities, nil
}

type fakeArchiveClient struct {
	requests []*requests.ArchiveRequest
}

func (f *fakeArchiveClient) Archive(ctx context.Context, request *requests.ArchiveRequest) error {
	f.requests = append(f.requests, request)
	return nil
}

type fakePdfRenderClient struct{}

func (fakePdfRenderClient) Render(ctx context.Context, template string, domainObject interface{}) ([]byte, error) {
	return []byte("%PDF-1.7 rendered"), nil
}

type fakeDocumentStore struct{}

func (fakeDocumentStore) Store(ctx context.Context, objectName, contentType string, data []byte) error {
	return nil
}

type fakeBenefitsChannel struct {
	published []*requests.BenefitsNotification
}

func (f *fakeBenefitsChannel) Publish(ctx context.Context, notification *requests.BenefitsNotification) error {
	f.published = append(f.published, notification)
	return nil
}

type fakePhysicianChannel struct {
	published []*requests.PhysicianNotification
}

func (f *fakePhysicianChannel) Publish(ctx context.Context, notification *requests.PhysicianNotification) error {
	f.published = append(f.published, notification)
	return nil
}

type fakeDocumentProduction struct {
	letters []*requests.LetterRequest
}

func (f *fakeDocumentProduction) ProduceLetter(ctx context.Context, request *requests.LetterRequest) error {
	f.letters = append(f.letters, request)
	return nil
}

type fakeJournal struct {
	records []*models.DispatchRecord
}

func (f *fakeJournal) Record(ctx context.Context, record *models.DispatchRecord) error {
	f.records = append(f.records, record)
	return nil
}

type pipeline struct {
	worker    *Worker
	eventLog  *fakeEventLog
	orgs      *fakeOrganizationRegistry
	archive   *fakeArchiveClient
	benefits  *fakeBenefitsChannel
	physician *fakePhysicianChannel
	letters   *fakeDocumentProduction
	journal   *fakeJournal
}

func newPipeline(orgs *fakeOrganizationRegistry, physicians *fakePhysicianRegistry, addresses *fakeAddressRegistry, partners *fakePartnerRegistry) *pipeline {
	log := zap.NewNop()
	cfg := &config.InternalConfig{
		App:    config.App{PollBatchSize: 10, PollIntervalMillis: 10},
		Letter: config.Letter{ContentPlaceholder: "<TEST></TEST>"},
	}

	eventLog := &fakeEventLog{}
	archive := &fakeArchiveClient{}
	benefits := &fakeBenefitsChannel{}
	physicianChannel := &fakePhysicianChannel{}
	letters := &fakeDocumentProduction{}
	journalRepo := &fakeJournal{}

	letterDispatcher := dispatch.NewLetterDispatcher(orgs, physicians, letters, benefits, cfg.Letter.ContentPlaceholder, log)
	dispatchers := dispatch.NewSet(
		dispatch.NewArchiveDispatcher(archive, fakePdfRenderClient{}, fakeDocumentStore{}, log),
		dispatch.NewBenefitsDispatcher(benefits, log),
		dispatch.NewPhysicianDispatcher(physicians, addresses, partners, physicianChannel, letterDispatcher, log),
		letterDispatcher,
	)

	return &pipeline{
		worker:    NewWorker(log, cfg, eventLog, orgs, extractor.NewSet(), dispatchers, journalRepo),
		eventLog:  eventLog,
		orgs:      orgs,
		archive:   archive,
		benefits:  benefits,
		physician: physicianChannel,
		letters:   letters,
		journal:   journalRepo,
	}
}

const plan2016Payload = `<followupPlan2016>
  <supplementaryInfo>
    <employer>
      <orgName>Acme Industries</orgName>
      <orgNumber>987654321</orgNumber>
    </employer>
    <senderSystem>
      <systemName>HRPortal</systemName>
      <systemVersion>4.2</systemVersion>
    </senderSystem>
    <sickListedEmployee>
      <personNumber>01017012345</personNumber>
      <givenName>Kari</givenName>
      <familyName>Nordmann</familyName>
    </sickListedEmployee>
    <receiverInformation>
      <planSentToCaseSystem>true</planSentToCaseSystem>
      <planSentToPhysician>true</planSentToPhysician>
    </receiverInformation>
  </supplementaryInfo>
</followupPlan2016>`

func TestProcessSubmissionFullDelivery(t *testing.T) {
	ctx := context.Background()

	p := newPipeline(
		&fakeOrganizationRegistry{valid: true},
		&fakePhysicianRegistry{association: &models.PhysicianAssociation{
			FirstName:       "Lege",
			LastName:        "Legesen",
			RegistryID:      8001,
			OfficeOrgNumber: "123123123",
			OfficeName:      "Legekontoret",
		}},
		&fakeAddressRegistry{identity: &models.OrganizationIdentity{RegistryID: 9001, OrgNumber: "123123123", Name: "Legekontoret"}},
		&fakePartnerRegistry{capabilities: []models.PartnerCapability{{PartnerID: "partner-y", RegistryID: 9001}}},
	)

	p.worker.processSubmission(ctx, contracts.QueuedSubmission{
		DeliveryTag: 7,
		Submission: models.RawSubmission{
			ServiceCode:      "2913",
			EditionCode:      "4",
			ArchiveReference: "AR-2016-1",
			FormData:         plan2016Payload,
		},
	})

	assert.Len(t, p.archive.requests, 1, "plan should be archived")
	assert.Equal(t, []byte("%PDF-1.7 rendered"), p.archive.requests[0].Document)
	assert.Len(t, p.benefits.published, 1, "benefits system should be notified once")
	assert.Len(t, p.physician.published, 1, "physician should get a dialog message")
	assert.Empty(t, p.letters.letters, "no letter when electronic delivery works")

	assert.Len(t, p.journal.records, 3)
	for _, record := range p.journal.records {
		assert.True(t, record.Succeeded)
		assert.Equal(t, "AR-2016-1", record.ArchiveReference)
		assert.Equal(t, string(models.SchemaPlan2016), record.SchemaVersion)
	}

	assert.Equal(t, []uint64{7}, p.eventLog.acked)
}

func TestProcessSubmissionInvalidOrganization(t *testing.T) {
	ctx := context.Background()

	p := newPipeline(&fakeOrganizationRegistry{valid: false}, &fakePhysicianRegistry{}, &fakeAddressRegistry{}, &fakePartnerRegistry{})

	p.worker.processSubmission(ctx, contracts.QueuedSubmission{
		DeliveryTag: 8,
		Submission: models.RawSubmission{
			ServiceCode:      "2913",
			EditionCode:      "4",
			ArchiveReference: "AR-2016-2",
			FormData:         plan2016Payload,
		},
	})

	assert.True(t, p.orgs.validateCalled)
	assert.Empty(t, p.archive.requests)
	assert.Empty(t, p.benefits.published)
	assert.Empty(t, p.physician.published)
	assert.Empty(t, p.letters.letters)
	assert.Empty(t, p.journal.records, "a dropped submission produces no outcomes")
	assert.Equal(t, []uint64{8}, p.eventLog.acked, "the drop is final, the message must not redeliver")
}

func TestProcessSubmissionValidationErrorTreatedAsInvalid(t *testing.T) {
	ctx := context.Background()

	p := newPipeline(&fakeOrganizationRegistry{validateErr: errors.New("registry down")}, &fakePhysicianRegistry{}, &fakeAddressRegistry{}, &fakePartnerRegistry{})

	p.worker.processSubmission(ctx, contracts.QueuedSubmission{
		DeliveryTag: 9,
		Submission: models.RawSubmission{
			ServiceCode:      "2913",
			EditionCode:      "4",
			ArchiveReference: "AR-2016-3",
			FormData:         plan2016Payload,
		},
	})

	assert.Empty(t, p.archive.requests)
	assert.Empty(t, p.benefits.published)
	assert.Equal(t, []uint64{9}, p.eventLog.acked)
}

func TestProcessSubmissionUnclassified(t *testing.T) {
	ctx := context.Background()

	p := newPipeline(&fakeOrganizationRegistry{valid: true}, &fakePhysicianRegistry{}, &fakeAddressRegistry{}, &fakePartnerRegistry{})

	attachment := []byte("opaque legacy document")
	p.worker.processSubmission(ctx, contracts.QueuedSubmission{
		DeliveryTag: 10,
		Submission: models.RawSubmission{
			ServiceCode:      "9999",
			EditionCode:      "1",
			ArchiveReference: "AR-UNKNOWN-1",
			FormData:         "not even xml",
			Attachment:       attachment,
		},
	})

	assert.False(t, p.orgs.validateCalled, "the safety net path skips organization validation")
	assert.Len(t, p.archive.requests, 1)
	assert.Equal(t, attachment, p.archive.requests[0].Document, "raw attachment is archived untouched")
	assert.Len(t, p.benefits.published, 1)
	assert.Empty(t, p.physician.published)
	assert.Empty(t, p.letters.letters)
	assert.Equal(t, []uint64{10}, p.eventLog.acked)
}

func TestProcessSubmissionMalformedForm(t *testing.T) {
	ctx := context.Background()

	p := newPipeline(&fakeOrganizationRegistry{valid: true}, &fakePhysicianRegistry{}, &fakeAddressRegistry{}, &fakePartnerRegistry{})

	p.worker.processSubmission(ctx, contracts.QueuedSubmission{
		DeliveryTag: 11,
		Submission: models.RawSubmission{
			ServiceCode:      "2913",
			EditionCode:      "4",
			ArchiveReference: "AR-2016-4",
			FormData:         "<followupPlan2016><broken",
		},
	})

	assert.Empty(t, p.archive.requests)
	assert.Empty(t, p.journal.records)
	assert.Equal(t, []uint64{11}, p.eventLog.acked, "a malformed form can never parse, redelivering is pointless")
}

func TestProcessSubmissionLegacyMetadataPlan(t *testing.T) {
	ctx := context.Background()

	const metadataPayload = `<followupPlanMetadata>
  <employer>
    <orgName>Acme Industries</orgName>
    <orgNumber>987654321</orgNumber>
  </employer>
  <personNumber>01017012345</personNumber>
  <receiverInformation>
    <planSentToCaseSystem>true</planSentToCaseSystem>
    <planSentToPhysician>true</planSentToPhysician>
  </receiverInformation>
  <equipmentAssistance>false</equipmentAssistance>
</followupPlanMetadata>`

	p := newPipeline(
		&fakeOrganizationRegistry{valid: true},
		&fakePhysicianRegistry{association: &models.PhysicianAssociation{
			FirstName:        "Lege",
			LastName:         "Legesen",
			RegistryID:       8001,
			OfficeOrgNumber:  "123123123",
			OfficeName:       "Legekontoret",
			OfficePostalCode: "0181",
			OfficeCity:       "Oslo",
		}},
		&fakeAddressRegistry{},
		&fakePartnerRegistry{},
	)

	attachment := []byte("%PDF-1.4 legacy plan")
	p.worker.processSubmission(ctx, contracts.QueuedSubmission{
		DeliveryTag: 12,
		Submission: models.RawSubmission{
			ServiceCode:      "5062",
			EditionCode:      "1",
			ArchiveReference: "AR-META-1",
			FormData:         metadataPayload,
			Attachment:       attachment,
		},
	})

	assert.Len(t, p.archive.requests, 1)
	assert.Equal(t, attachment, p.archive.requests[0].Document, "legacy plans archive the attachment, not a rendering")
	assert.Empty(t, p.physician.published, "legacy submissions have no electronic physician channel")
	assert.Len(t, p.letters.letters, 1)
	assert.Equal(t, "123123123", p.letters.letters[0].ReceiverOrgNumber, "the letter goes to the physician office")
	// Archive notification plus the letter-sent notice.
	assert.Len(t, p.benefits.published, 2)
	assert.Equal(t, []uint64{12}, p.eventLog.acked)
}
