package bootstrap

import (
	"log"

	"srs-intake-be/internal/config"
	"srs-intake-be/internal/controller"
	"srs-intake-be/internal/pkg/logger"
	"srs-intake-be/internal/service"
	"srs-intake-be/pkg/domain"
	"srs-intake-be/pkg/llm"
	"srs-intake-be/pkg/llm/factory"
	"srs-intake-be/pkg/srsclient"
	"srs-intake-be/pkg/srsform"

	pktNats "srs-intake-be/pkg/nats"

	"github.com/ThreeDotsLabs/watermill"
	"github.com/ThreeDotsLabs/watermill/pubsub/gochannel"
)

type Container struct {
	// Controllers
	DomainController  controller.IDomainController
	EnhanceController controller.IEnhanceController
	FormController    controller.IFormController

	// Background Services (Exposed for main.go to run)
	ConsumerService service.IConsumerService

	Logger logger.ILogger

	pubSub  *gochannel.GoChannel
	natsPub *pktNats.Publisher
}

func NewContainer(cfg *config.Config) *Container {
	sysLogger := logger.NewZapLogger(cfg.App.LogFilePath, cfg.IsProduction())

	llmProvider, err := factory.NewLLMProvider(cfg.Ai)
	if err != nil {
		log.Fatalf("[FATAL] Failed to initialize LLM Provider: %v", err)
	}
	log.Printf("[INFO] Using LLM Provider: %s (%s)", cfg.Ai.LLMProvider, cfg.Ai.LLMModel)

	return NewContainerWith(cfg, sysLogger, llmProvider)
}

// NewContainerWith wires everything around an existing logger and LLM
// provider.
func NewContainerWith(cfg *config.Config, sysLogger logger.ILogger, llmProvider llm.LLMProvider) *Container {
	// 1. Event Bus
	pubSub := gochannel.NewGoChannel(
		gochannel.Config{},
		watermill.NewStdLogger(false, false),
	)

	var mirror service.EventMirror
	var natsPub *pktNats.Publisher
	if cfg.Events.NatsEnabled {
		pub, err := pktNats.NewPublisher(cfg.Events.NatsURL)
		if err != nil {
			log.Printf("[WARN] Failed to connect to NATS Publisher: %v", err)
		} else {
			natsPub = pub
			mirror = pub
		}
	}

	// 2. Remote generator
	generator := srsclient.NewClient(cfg.Generator.BaseURL)
	generator.SubmitPath = cfg.Generator.GeneratePath
	generator.EnhancePath = cfg.Generator.EnhancePath

	// 3. Services
	publisherService := service.NewPublisherService(cfg.Events.SubmissionTopic, pubSub)
	consumerService := service.NewConsumerService(pubSub, cfg.Events.SubmissionTopic, mirror, sysLogger)

	domainService := service.NewDomainService(domain.Default())
	enhanceService := service.NewEnhanceService(llmProvider, sysLogger)
	submissionService := service.NewSubmissionService(
		srsform.NewBuilder(cfg.Form.StrictDomainRequired),
		generator,
		publisherService,
		sysLogger,
	)

	// 4. Controllers
	return &Container{
		DomainController:  controller.NewDomainController(domainService),
		EnhanceController: controller.NewEnhanceController(enhanceService, cfg.Generator.EnhancePath),
		FormController:    controller.NewFormController(submissionService),

		ConsumerService: consumerService,
		Logger:          sysLogger,

		pubSub:  pubSub,
		natsPub: natsPub,
	}
}

// Close releases the event bus and the NATS connection.
func (c *Container) Close() error {
	c.natsPub.Close()
	return c.pubSub.Close()
}
