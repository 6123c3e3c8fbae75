/*
 *    Copyright 2023 iFood
 *
 *    Licensed under the Apache License, Version 2.0 (the "License");
 *    you may not use this file except in compliance with the License.
 *    You may obtain a copy of the License at
 *
 *      http://www.apache.org/licenses/LICENSE-2.0
 *
 *    Unless required by applicable law or agreed to in writing, software
 *    distributed under the License is distributed on an "AS IS" BASIS,
 *    WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
 *    See the License for the specific language governing permissions and
 *    limitations under the License.
 */

package app

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/aws/aws-sdk-go/aws/session"
	"github.com/spf13/afero"
	"github.com/uber-go/tally/v4"
	awstrace "gopkg.in/DataDog/dd-trace-go.v1/contrib/aws/aws-sdk-go/aws"
	"gopkg.in/DataDog/dd-trace-go.v1/ddtrace/tracer"

	adaptersout "sdc-aws-processing/adapters/out"
	"sdc-aws-processing/config"
	"sdc-aws-processing/domain/entities"
	portsout "sdc-aws-processing/domain/ports/out"
	"sdc-aws-processing/domain/services"
	"sdc-aws-processing/domain/services/calibration"
	"sdc-aws-processing/domain/services/processing"
	"sdc-aws-processing/logging"
	"sdc-aws-processing/metrics"
	"sdc-aws-processing/pkg/awsutils"
)

const notificationRateKey = "failure-notifications"

// Application holds the components shared by every entrypoint.
type Application struct {
	Config     config.AppConfig
	Logger     logging.Logger
	Scope      tally.Scope
	Dispatcher *services.Dispatcher

	session        *session.Session
	cache          portsout.Cache
	journal        portsout.Journal
	metricsHandler http.Handler
	closers        []func()
}

//nolint:funlen
func New(ctx context.Context) (*Application, error) {
	appConfig, err := config.LoadConfig()
	if err != nil {
		return nil, err
	}

	logger, err := logging.NewZapLogger(appConfig.Processor.DebugLog)
	if err != nil {
		return nil, err
	}

	application := &Application{Config: appConfig, Logger: logger}

	if appConfig.Lambda.Tracing {
		tracer.Start()
		application.closers = append(application.closers, tracer.Stop)
	}

	var metricsClose io.Closer
	if appConfig.HTTPServer.Metrics {
		application.Scope, application.metricsHandler, metricsClose = metrics.NewPrometheusScope()
		application.closers = append(application.closers, func() { metricsClose.Close() })
	} else {
		application.Scope, application.metricsHandler, _ = metrics.NewNoopScope()
	}

	awsSession, err := awsutils.NewSession(awsutils.SessionOptions{Region: appConfig.Aws.Region, Endpoint: appConfig.Aws.Resolver})

	if err != nil {
		return nil, fmt.Errorf("failed to initialize aws client. Error: %s, Region: %s, Resolver: %s", err, appConfig.Aws.Region, appConfig.Aws.Resolver)
	}

	if appConfig.Lambda.Tracing {
		awsSession = awstrace.WrapSession(awsSession)
	}

	application.session = awsSession

	objectStorageFactory := adaptersout.NewObjectStorageFactory().Register(config.StorageS3, adaptersout.NewS3Storage(awsSession, nil))
	if appConfig.Processor.LocalRoot != "" {
		objectStorageFactory.Register(config.StorageLocal, adaptersout.NewLocalBucketStorage(afero.NewOsFs(), appConfig.Processor.LocalRoot))
	}

	objectStorage, err := objectStorageFactory.GetObjectStorage(appConfig.Processor.StorageType)
	if err != nil {
		return nil, err
	}

	localStorageFactory := adaptersout.NewLocalStorageFactory(appConfig.Processor.MaxStorageSize)
	disk := afero.NewOsFs()

	downloadService := services.NewDownloadService(localStorageFactory, objectStorageFactory, appConfig.Processor.StorageType, disk, logger)
	decompressService := services.NewDecompressService(logger)

	var rateLimiter portsout.RateLimiter = adaptersout.AllowAllLimiter{}

	if appConfig.Redis.URL != "" {
		redisCache := adaptersout.NewCache(appConfig.Redis.URL, appConfig.Redis.Password, appConfig.Redis.UseTLS)
		application.cache = redisCache
		application.closers = append(application.closers, func() { redisCache.Close() })
		rateLimiter = adaptersout.NewRateLimiter(appConfig.Redis.URL, appConfig.Redis.Password, appConfig.Redis.UseTLS, adaptersout.RateLimitConfig{
			PerMinute: appConfig.Notification.MaxPerMinute,
			Key:       notificationRateKey,
		})
	} else {
		logger.Infow("No redis configured, locks and processing status are kept in memory")
		application.cache = adaptersout.NewMemoryCache()
	}

	application.journal = adaptersout.NoopJournal{}

	if appConfig.Journal.DSN != "" {
		journal, err := adaptersout.OpenPostgresJournal(ctx, appConfig.Journal.DSN)
		if err != nil {
			return nil, err
		}

		application.journal = journal
		application.closers = append(application.closers, func() { journal.Close() })
	}

	var notifiers []portsout.Notifier
	if appConfig.Notification.Slack.Webhook != "" {
		notifiers = append(notifiers, adaptersout.NewSlackNotifier(appConfig.Notification.Slack.Webhook, appConfig.Notification.Slack.ChannelID))
	}

	if appConfig.Aws.Topic != "" {
		notifiers = append(notifiers, adaptersout.NewSNSNotifier(awsSession, nil, appConfig.Aws.Topic))
	}

	notificationService := services.NewNotificationService(notifiers, rateLimiter, logger)

	sources := processing.Sources{
		FilePath:    appConfig.Processor.FilePath,
		UseTestData: appConfig.Processor.UseTestData,
		TestDataDir: appConfig.Processor.TestDataDir,
	}
	deps := processing.Dependencies{
		ObjectStorage:       objectStorage,
		LocalStorageFactory: localStorageFactory,
		Downloader:          downloadService,
		DecompressService:   decompressService,
		Disk:                disk,
	}

	calibrator := calibration.NewPassthroughCalibrator(logger)

	productionDeps := deps
	productionDeps.Registry = NewRegistry(calibrator, appConfig.Processor.CalibratedInstruments)
	production := processing.NewFileProcessor(processingConfig(appConfig, entities.Production, sources, ""), productionDeps, logger)

	// Development always calibrates every instrument.
	developmentDeps := deps
	developmentDeps.Registry = NewRegistry(calibrator, nil)
	development := processing.NewFileProcessor(processingConfig(appConfig, entities.Development, sources, appConfig.Processor.DevBucketPrefix), developmentDeps, logger)

	dispatcherConfig := services.DispatcherConfig{
		Environment:  entities.ParseEnvironment(appConfig.Lambda.Environment),
		DryRun:       appConfig.Processor.DryRun,
		LockDuration: time.Duration(appConfig.Processor.LockTimeout) * time.Second,
	}

	application.Dispatcher = services.NewDispatcher(dispatcherConfig, production, development, application.cache,
		adaptersout.NewCacheProcessingRepository(application.cache, logger), application.journal, notificationService, application.Scope, logger)

	logger.Infow("Application initialized", "environment", dispatcherConfig.Environment, "storage", appConfig.Processor.StorageType,
		"dryRun", dispatcherConfig.DryRun, "localFile", sources.FilePath, "testData", sources.UseTestData, "production", production.Name())

	return application, nil
}

// Close releases the resources in the reverse order they were acquired.
func (a *Application) Close() {
	for i := len(a.closers) - 1; i >= 0; i-- {
		a.closers[i]()
	}
}

// NewRegistry registers the calibrator for the listed instruments, every known instrument when the list is empty.
func NewRegistry(calibrator portsout.Calibrator, instruments []string) *calibration.Registry {
	registry := calibration.NewRegistry()

	for _, instrument := range entities.Instruments {
		if len(instruments) == 0 || contains(instruments, string(instrument)) {
			registry.Register(instrument, calibrator)
		}
	}

	return registry
}

func processingConfig(appConfig config.AppConfig, environment entities.Environment, sources processing.Sources, bucketPrefix string) processing.Config {
	return processing.Config{
		Environment:       environment,
		Sources:           sources,
		UnprocessedPrefix: appConfig.Processor.UnprocessedPrefix,
		ProcessedPrefix:   appConfig.Processor.ProcessedPrefix,
		InstrumentBuckets: appConfig.Processor.InstrumentBuckets,
		BucketPrefix:      bucketPrefix,
		OutputDir:         appConfig.Processor.OutputDir,
	}
}

// healthy checks the stores the dispatcher depends on.
func (a *Application) healthy(ctx context.Context) error {
	if pinger, ok := a.cache.(interface{ Ping() error }); ok {
		if err := pinger.Ping(); err != nil {
			return fmt.Errorf("cache not connectable. %w", err)
		}
	}

	if pinger, ok := a.journal.(interface{ Ping(context.Context) error }); ok {
		if err := pinger.Ping(ctx); err != nil {
			return fmt.Errorf("journal not connectable. %w", err)
		}
	}

	return nil
}

func contains(values []string, value string) bool {
	for _, candidate := range values {
		if strings.EqualFold(strings.TrimSpace(candidate), value) {
			return true
		}
	}

	return false
}
