package config

import (
	"log"

	"followupplan-service/internal/pkg/constvars"
	"followupplan-service/internal/pkg/utils"

	"github.com/go-playground/validator/v10"
)

type (
	InternalConfig struct {
		App         App
		Remote      Remote
		Queues      Queues
		Letter      Letter
		OrgCache    OrgCache
		ServiceAuth ServiceAuth
	}

	App struct {
		Env                string
		Port               string `validate:"required"`
		Version            string
		ShutdownTimeout    int
		PollBatchSize      int `validate:"gt=0"`
		PollIntervalMillis int `validate:"gt=0"`
		MaxHealthRequests  int
	}

	Remote struct {
		OrganizationRegistryURL string `validate:"required,url"`
		PhysicianRegistryURL    string `validate:"required,url"`
		AddressRegistryURL      string `validate:"required,url"`
		PartnerRegistryURL      string `validate:"required,url"`
		ArchiveServiceURL       string `validate:"required,url"`
		DocumentProductionURL   string `validate:"required,url"`
		PdfRendererURL          string `validate:"required,url"`
		HTTPTimeoutInSeconds    int    `validate:"gt=0"`
	}

	Queues struct {
		Submission string `validate:"required"`
		Benefits   string `validate:"required"`
		Physician  string `validate:"required"`
		Prefetch   int
	}

	Letter struct {
		// ContentPlaceholder stands in for real letter body content, which
		// the upstream system never supplied on this path.
		ContentPlaceholder string
	}

	OrgCache struct {
		ValidationTTLInMinutes int
		AddressTTLInMinutes    int
	}

	ServiceAuth struct {
		JWTSecret string `validate:"required"`
		Subject   string
	}
)

func NewInternalConfig() *InternalConfig {
	cfg := &InternalConfig{
		App: App{
			Env:                utils.GetEnvString("APP_ENV", "development"),
			Port:               utils.GetEnvString("APP_PORT", ":8080"),
			Version:            utils.GetEnvString("APP_VERSION", "v1.0"),
			ShutdownTimeout:    utils.GetEnvInt("APP_SHUTDOWN_TIMEOUT", 10),
			PollBatchSize:      utils.GetEnvInt("APP_POLL_BATCH_SIZE", 10),
			PollIntervalMillis: utils.GetEnvInt("APP_POLL_INTERVAL_MILLIS", 100),
			MaxHealthRequests:  utils.GetEnvInt("APP_MAX_HEALTH_REQUESTS", 10),
		},
		Remote: Remote{
			OrganizationRegistryURL: utils.GetEnvString("ORGANIZATION_REGISTRY_URL", "http://localhost:5601"),
			PhysicianRegistryURL:    utils.GetEnvString("PHYSICIAN_REGISTRY_URL", "http://localhost:5602"),
			AddressRegistryURL:      utils.GetEnvString("ADDRESS_REGISTRY_URL", "http://localhost:5603"),
			PartnerRegistryURL:      utils.GetEnvString("PARTNER_REGISTRY_URL", "http://localhost:5604"),
			ArchiveServiceURL:       utils.GetEnvString("ARCHIVE_SERVICE_URL", "http://localhost:5605"),
			DocumentProductionURL:   utils.GetEnvString("DOCUMENT_PRODUCTION_URL", "http://localhost:5606"),
			PdfRendererURL:          utils.GetEnvString("PDF_RENDERER_URL", "http://localhost:5607"),
			HTTPTimeoutInSeconds:    utils.GetEnvInt("REMOTE_HTTP_TIMEOUT_IN_SECONDS", 10),
		},
		Queues: Queues{
			Submission: utils.GetEnvString("SUBMISSION_QUEUE_NAME", constvars.SubmissionQueueName),
			Benefits:   utils.GetEnvString("BENEFITS_QUEUE_NAME", constvars.BenefitsNotificationQueueName),
			Physician:  utils.GetEnvString("PHYSICIAN_QUEUE_NAME", constvars.PhysicianNotificationQueue),
			Prefetch:   utils.GetEnvInt("SUBMISSION_QUEUE_PREFETCH", 10),
		},
		Letter: Letter{
			ContentPlaceholder: utils.GetEnvString("LETTER_CONTENT_PLACEHOLDER", "<TEST></TEST>"),
		},
		OrgCache: OrgCache{
			ValidationTTLInMinutes: utils.GetEnvInt("ORG_VALIDATION_TTL_IN_MINUTES", 60),
			AddressTTLInMinutes:    utils.GetEnvInt("ORG_ADDRESS_TTL_IN_MINUTES", 60),
		},
		ServiceAuth: ServiceAuth{
			JWTSecret: utils.GetEnvString("SERVICE_JWT_SECRET", "anyjwt"),
			Subject:   utils.GetEnvString("SERVICE_JWT_SUBJECT", "followupplan-service"),
		},
	}

	if err := validator.New().Struct(cfg); err != nil {
		log.Fatalf("Invalid internal configuration: %v", err)
	}

	return cfg
}
