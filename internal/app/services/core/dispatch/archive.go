package dispatch

import (
	"bytes"
	"context"
	"fmt"

	"followupplan-service/internal/app/contracts"
	"followupplan-service/internal/app/models"
	"followupplan-service/internal/pkg/constvars"
	"followupplan-service/internal/pkg/dto/requests"

	"go.uber.org/zap"
)

var pdfMagic = []byte("%PDF")

// ArchiveDispatcher delivers the plan document to the archive service. For
// the versioned schemas the document is rendered by the PDF service first;
// legacy and unclassified submissions carry their document bytes in the
// intent payload. A copy of every archived document is kept in object
// storage, best effort.
type ArchiveDispatcher struct {
	archive contracts.ArchiveClient
	pdf     contracts.PdfRenderClient
	store   contracts.DocumentStore
	log     *zap.Logger
}

func NewArchiveDispatcher(archive contracts.ArchiveClient, pdf contracts.PdfRenderClient, store contracts.DocumentStore, log *zap.Logger) *ArchiveDispatcher {
	return &ArchiveDispatcher{archive: archive, pdf: pdf, store: store, log: log}
}

func (d *ArchiveDispatcher) Dispatch(ctx context.Context, intent models.DispatchIntent) models.DispatchOutcome {
	fields := intent.Fields

	document := intent.Payload
	if document == nil {
		rendered, err := d.pdf.Render(ctx, constvars.PdfTemplatePlanReport, &requests.PlanReport{
			ArchiveReference:    fields.ArchiveReference,
			SenderOrgID:         fields.SenderOrgID,
			SenderOrgName:       fields.SenderOrgName,
			SenderSystemName:    fields.SenderSystemName,
			SenderSystemVersion: fields.SenderSystemVersion,
			SubjectPersonID:     fields.SubjectPersonID,
		})
		if err != nil {
			d.log.Error("ArchiveDispatcher.Dispatch failed to render plan document",
				zap.String(constvars.LoggingArchiveReferenceKey, fields.ArchiveReference),
				zap.Error(err))
			return models.OutcomeFailed(intent.Kind, err.Error())
		}
		document = rendered
	}

	contentType := constvars.DocumentContentTypeXML
	if bytes.HasPrefix(document, pdfMagic) {
		contentType = constvars.DocumentContentTypePDF
	}

	err := d.archive.Archive(ctx, &requests.ArchiveRequest{
		ArchiveReference:    fields.ArchiveReference,
		SenderOrgID:         fields.SenderOrgID,
		SenderOrgName:       fields.SenderOrgName,
		SubjectPersonID:     fields.SubjectPersonID,
		DocumentContentType: contentType,
		Document:            document,
	})
	if err != nil {
		d.log.Error("ArchiveDispatcher.Dispatch failed to archive document",
			zap.String(constvars.LoggingArchiveReferenceKey, fields.ArchiveReference),
			zap.Error(err))
		return models.OutcomeFailed(intent.Kind, err.Error())
	}

	d.storeCopy(ctx, fields.ArchiveReference, contentType, document)

	d.log.Info("ArchiveDispatcher.Dispatch document archived",
		zap.String(constvars.LoggingArchiveReferenceKey, fields.ArchiveReference),
		zap.String("content_type", contentType))
	return models.OutcomeSucceeded(intent.Kind)
}

// storeCopy keeps a copy of the archived document in object storage. Copy
// failures never fail the dispatch; the archive call is the source of truth.
func (d *ArchiveDispatcher) storeCopy(ctx context.Context, archiveReference, contentType string, document []byte) {
	extension := "xml"
	if contentType == constvars.DocumentContentTypePDF {
		extension = "pdf"
	}
	objectName := fmt.Sprintf("%s.%s", archiveReference, extension)

	if err := d.store.Store(ctx, objectName, contentType, document); err != nil {
		d.log.Warn("ArchiveDispatcher.storeCopy failed to store document copy",
			zap.String(constvars.LoggingArchiveReferenceKey, archiveReference),
			zap.Error(err))
	}
}
