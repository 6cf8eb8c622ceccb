package exceptions

import (
	"fmt"
	"net/http"

	"followupplan-service/internal/pkg/constvars"
)

var (
	// HTTP plumbing
	ErrBuildRequest = func(err error) *CustomError {
		return BuildNewCustomError(err, http.StatusInternalServerError, constvars.ErrClientRemoteServiceFailed, constvars.ErrDevBuildRequest)
	}
	ErrSendHTTPRequest = func(err error) *CustomError {
		return BuildNewCustomError(err, http.StatusInternalServerError, constvars.ErrClientRemoteServiceFailed, constvars.ErrDevSendHTTPRequest)
	}
	ErrDecodeResponse = func(err error, service string) *CustomError {
		return BuildNewCustomError(err, http.StatusInternalServerError, constvars.ErrClientRemoteServiceFailed, fmt.Sprintf(constvars.ErrDevDecodeResponse, service))
	}
	ErrUnexpectedStatus = func(status int, service string) *CustomError {
		return BuildNewCustomError(nil, http.StatusInternalServerError, constvars.ErrClientRemoteServiceFailed, fmt.Sprintf(constvars.ErrDevUnexpectedStatus, status, service))
	}

	// Codecs
	ErrCannotMarshalJSON = func(err error) *CustomError {
		return BuildNewCustomError(err, http.StatusInternalServerError, constvars.ErrClientCannotProcessSubmission, constvars.ErrDevCannotMarshalJSON)
	}
	ErrCannotUnmarshalForm = func(err error, schema string) *CustomError {
		return BuildNewCustomError(err, http.StatusBadRequest, constvars.ErrClientCannotProcessSubmission, fmt.Sprintf(constvars.ErrDevCannotUnmarshalXML, schema))
	}

	// RabbitMQ
	ErrRabbitMQPublishMessage = func(err error, queue string) *CustomError {
		return BuildNewCustomError(err, http.StatusInternalServerError, constvars.ErrClientRemoteServiceFailed, fmt.Sprintf(constvars.ErrDevRabbitMQPublishMessage, queue))
	}
	ErrRabbitMQFetchMessage = func(err error, queue string) *CustomError {
		return BuildNewCustomError(err, http.StatusInternalServerError, constvars.ErrClientRemoteServiceFailed, fmt.Sprintf(constvars.ErrDevRabbitMQFetchMessage, queue))
	}

	// Mongo DB
	ErrMongoDBInsertDocument = func(err error) *CustomError {
		return BuildNewCustomError(err, http.StatusInternalServerError, constvars.ErrClientCannotProcessSubmission, constvars.ErrDevMongoDBInsertDocument)
	}

	// Redis
	ErrRedisSet = func(err error) *CustomError {
		return BuildNewCustomError(err, http.StatusInternalServerError, constvars.ErrClientCannotProcessSubmission, constvars.ErrDevRedisSet)
	}
	ErrRedisGet = func(err error, key string) *CustomError {
		return BuildNewCustomError(err, http.StatusInternalServerError, constvars.ErrClientCannotProcessSubmission, fmt.Sprintf(constvars.ErrDevRedisGet, key))
	}

	// MinIO
	ErrMinioCreateObject = func(err error, bucket string) *CustomError {
		return BuildNewCustomError(err, http.StatusInternalServerError, constvars.ErrClientCannotProcessSubmission, fmt.Sprintf(constvars.ErrDevMinioCreateObject, bucket))
	}

	// Remote registries and services
	ErrOrganizationValidation = func(err error, orgID string) *CustomError {
		return BuildNewCustomError(err, http.StatusInternalServerError, constvars.ErrClientRemoteServiceFailed, fmt.Sprintf(constvars.ErrDevOrganizationValidation, orgID))
	}
	ErrPhysicianLookup = func(err error) *CustomError {
		return BuildNewCustomError(err, http.StatusInternalServerError, constvars.ErrClientRemoteServiceFailed, constvars.ErrDevPhysicianLookup)
	}
	ErrAddressRegistryLookup = func(err error, registryID int) *CustomError {
		return BuildNewCustomError(err, http.StatusInternalServerError, constvars.ErrClientRemoteServiceFailed, fmt.Sprintf(constvars.ErrDevAddressRegistryLookup, registryID))
	}
	ErrPartnerRegistryLookup = func(err error, orgNumber string) *CustomError {
		return BuildNewCustomError(err, http.StatusInternalServerError, constvars.ErrClientRemoteServiceFailed, fmt.Sprintf(constvars.ErrDevPartnerRegistryLookup, orgNumber))
	}
	ErrOrganizationLookup = func(err error, orgNumber string) *CustomError {
		return BuildNewCustomError(err, http.StatusInternalServerError, constvars.ErrClientRemoteServiceFailed, fmt.Sprintf(constvars.ErrDevOrganizationLookup, orgNumber))
	}
	ErrDocumentProduction = func(err error) *CustomError {
		return BuildNewCustomError(err, http.StatusInternalServerError, constvars.ErrClientRemoteServiceFailed, constvars.ErrDevDocumentProduction)
	}
	ErrArchiveDocument = func(err error, archiveReference string) *CustomError {
		return BuildNewCustomError(err, http.StatusInternalServerError, constvars.ErrClientRemoteServiceFailed, fmt.Sprintf(constvars.ErrDevArchiveDocument, archiveReference))
	}
	ErrPdfRender = func(err error, template string) *CustomError {
		return BuildNewCustomError(err, http.StatusInternalServerError, constvars.ErrClientRemoteServiceFailed, fmt.Sprintf(constvars.ErrDevPdfRender, template))
	}
	ErrTokenGenerate = func(err error) *CustomError {
		return BuildNewCustomError(err, http.StatusInternalServerError, constvars.ErrClientRemoteServiceFailed, constvars.ErrDevTokenGenerate)
	}
)
