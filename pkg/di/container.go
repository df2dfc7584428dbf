package di

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"github.com/Fco200/UES-Academic-Helper/application/serviceimpl"
	"github.com/Fco200/UES-Academic-Helper/domain/ports"
	"github.com/Fco200/UES-Academic-Helper/domain/repositories"
	"github.com/Fco200/UES-Academic-Helper/domain/services"
	"github.com/Fco200/UES-Academic-Helper/infrastructure/email"
	"github.com/Fco200/UES-Academic-Helper/infrastructure/gemini"
	"github.com/Fco200/UES-Academic-Helper/infrastructure/memory"
	natspkg "github.com/Fco200/UES-Academic-Helper/infrastructure/nats"
	"github.com/Fco200/UES-Academic-Helper/infrastructure/postgres"
	redispkg "github.com/Fco200/UES-Academic-Helper/infrastructure/redis"
	"github.com/Fco200/UES-Academic-Helper/infrastructure/sms"
	"github.com/Fco200/UES-Academic-Helper/infrastructure/storage"
	"github.com/Fco200/UES-Academic-Helper/interfaces/api/handlers"
	"github.com/Fco200/UES-Academic-Helper/pkg/config"
	"github.com/Fco200/UES-Academic-Helper/pkg/logger"
	"github.com/Fco200/UES-Academic-Helper/pkg/scheduler"
)

type Container struct {
	// Configuration
	Config *config.Config

	// Infrastructure
	DB             *gorm.DB
	RedisClient    *redispkg.Client // recovery codes (optional)
	NATSClient     *natspkg.Client  // reminder events (optional)
	Events         ports.EventPublisherPort
	Storage        ports.StoragePort
	CodeStore      ports.CodeStorePort
	Mailer         ports.MailerPort
	SMS            ports.SMSPort
	ChatModel      *gemini.ChatClient
	EventScheduler scheduler.EventScheduler

	// Repositories
	UserRepository    repositories.UserRepository
	SubjectRepository repositories.SubjectRepository
	NewsRepository    repositories.NewsRepository

	// Services
	Dispatcher      *serviceimpl.NotificationDispatcher
	ReminderService *serviceimpl.ReminderServiceImpl
	UserService     services.UserService
	RecoveryService services.RecoveryService
	SubjectService  services.SubjectService
	NewsService     services.NewsService
	ChatService     services.ChatService
}

func NewContainer() *Container {
	return &Container{}
}

// Initialize wires everything the API process needs, including the sweep scheduler
func (c *Container) Initialize() error {
	if err := c.InitializeCore(); err != nil {
		return err
	}
	return c.initScheduler()
}

// InitializeCore wires config, storage and services without starting background jobs.
// The CLI uses it to run one-off commands.
func (c *Container) InitializeCore() error {
	if err := c.initConfig(); err != nil {
		return err
	}

	if err := c.initLogger(); err != nil {
		return err
	}

	if err := c.initInfrastructure(); err != nil {
		return err
	}

	if err := c.initNotifications(); err != nil {
		return err
	}

	if err := c.initRepositories(); err != nil {
		return err
	}

	return c.initServices()
}

func (c *Container) initConfig() error {
	cfg, err := config.LoadConfig()
	if err != nil {
		return err
	}
	c.Config = cfg
	logger.Info("Configuration loaded")
	return nil
}

func (c *Container) initLogger() error {
	logConfig := logger.Config{
		Level:      c.Config.Log.Level,
		Format:     c.Config.Log.Format,
		Output:     c.Config.Log.Output,
		FilePath:   c.Config.Log.FilePath,
		MaxSize:    c.Config.Log.MaxSize,
		MaxBackups: c.Config.Log.MaxBackups,
		MaxAge:     c.Config.Log.MaxAge,
		Compress:   c.Config.Log.Compress,
	}

	if err := logger.Init(logConfig); err != nil {
		return err
	}

	logger.Info("Logger initialized",
		"level", c.Config.Log.Level,
		"format", c.Config.Log.Format,
		"output", c.Config.Log.Output,
		"file", c.Config.Log.FilePath,
	)
	return nil
}

func (c *Container) initInfrastructure() error {
	// Initialize Database
	dbConfig := postgres.DatabaseConfig{
		Driver:   c.Config.Database.Driver,
		Host:     c.Config.Database.Host,
		Port:     c.Config.Database.Port,
		User:     c.Config.Database.User,
		Password: c.Config.Database.Password,
		DBName:   c.Config.Database.DBName,
		SSLMode:  c.Config.Database.SSLMode,
		Path:     c.Config.Database.Path,
		LogLevel: c.Config.Database.LogLevel,
	}

	db, err := postgres.NewDatabase(dbConfig)
	if err != nil {
		return err
	}
	c.DB = db
	logger.Info("Database connected", "driver", c.Config.Database.Driver, "db", c.Config.Database.DBName)

	if err := postgres.Migrate(db); err != nil {
		return err
	}
	logger.Info("Database migrated")

	// Redis (optional - graceful degradation)
	c.CodeStore = memory.NewCodeStore()
	if c.Config.Redis.URL != "" {
		redisClient, err := redispkg.NewClient(&c.Config.Redis)
		if err != nil {
			logger.Warn("Redis client initialization failed, recovery codes kept in memory", "error", err)
		} else {
			c.RedisClient = redisClient
			c.CodeStore = redispkg.NewCodeStore(redisClient)
			logger.Info("Redis client initialized", "url", c.Config.Redis.URL)
		}
	}

	// NATS (optional)
	c.Events = natspkg.NoopPublisher{}
	if c.Config.NATS.URL != "" {
		natsClient, err := natspkg.NewClient(natspkg.ClientConfig{URL: c.Config.NATS.URL, Name: c.Config.App.Name})
		if err != nil {
			logger.Warn("NATS client initialization failed, reminder events disabled", "error", err)
		} else {
			c.NATSClient = natsClient
			c.Events = natspkg.NewPublisher(natsClient)
		}
	}

	return c.initStorage()
}

// initStorage สร้าง storage adapter ตาม config
func (c *Container) initStorage() error {
	switch c.Config.Storage.Type {
	case "s3":
		s3Config := storage.S3StorageConfig{
			Endpoint:  c.Config.Storage.S3.Endpoint,
			AccessKey: c.Config.Storage.S3.AccessKey,
			SecretKey: c.Config.Storage.S3.SecretKey,
			Bucket:    c.Config.Storage.S3.Bucket,
			UseSSL:    c.Config.Storage.S3.UseSSL,
			Region:    c.Config.Storage.S3.Region,
			PublicURL: c.Config.Storage.S3.PublicURL,
		}
		s3Storage, err := storage.NewS3Storage(s3Config)
		if err != nil {
			return fmt.Errorf("failed to initialize S3 storage: %w", err)
		}
		c.Storage = s3Storage
		logger.Info("S3 Storage initialized",
			"endpoint", c.Config.Storage.S3.Endpoint,
			"bucket", c.Config.Storage.S3.Bucket,
		)

	default:
		localConfig := storage.LocalStorageConfig{
			BasePath: c.Config.Storage.BasePath,
			BaseURL:  c.Config.Storage.BaseURL,
		}
		localStorage, err := storage.NewLocalStorage(localConfig)
		if err != nil {
			return fmt.Errorf("failed to initialize local storage: %w", err)
		}
		c.Storage = localStorage
		logger.Info("Local Storage initialized", "path", c.Config.Storage.BasePath)
	}

	return nil
}

// initNotifications เลือก mailer / SMS / chat ตาม provider
func (c *Container) initNotifications() error {
	switch c.Config.Mail.Provider {
	case "sendgrid":
		mailer, err := email.NewSendgridMailer(email.SendgridConfig{
			APIKey:   c.Config.Mail.SendgridAPIKey,
			FromName: c.Config.Mail.FromName,
			FromAddr: c.Config.Mail.FromAddress,
		})
		if err != nil {
			return fmt.Errorf("failed to initialize sendgrid: %w", err)
		}
		c.Mailer = mailer
	default:
		c.Mailer = email.NewConsoleMailer()
	}

	switch c.Config.SMS.Provider {
	case "twilio":
		sender, err := sms.NewTwilioSender(sms.TwilioConfig{
			AccountSID: c.Config.SMS.TwilioAccountSID,
			AuthToken:  c.Config.SMS.TwilioAuthToken,
			FromNumber: c.Config.SMS.FromNumber,
			Timeout:    c.Config.Reminder.DispatchTimeout,
		})
		if err != nil {
			return fmt.Errorf("failed to initialize twilio: %w", err)
		}
		c.SMS = sender
	default:
		c.SMS = sms.NewConsoleSender()
	}
	logger.Info("Notification channels initialized", "mail", c.Mailer.ProviderName(), "sms", c.SMS.ProviderName())

	if c.Config.Gemini.APIKey != "" {
		chat, err := gemini.NewChatClient(context.Background(), c.Config.Gemini.APIKey, c.Config.Gemini.Model)
		if err != nil {
			logger.Warn("Gemini client initialization failed, chat disabled", "error", err)
		} else {
			c.ChatModel = chat
			logger.Info("Gemini chat initialized", "model", c.Config.Gemini.Model)
		}
	} else {
		logger.Warn("Chat disabled (GEMINI_API_KEY not configured)")
	}

	return nil
}

func (c *Container) initRepositories() error {
	c.UserRepository = postgres.NewUserRepository(c.DB)
	c.SubjectRepository = postgres.NewSubjectRepository(c.DB)
	c.NewsRepository = postgres.NewNewsRepository(c.DB)
	logger.Info("Repositories initialized")
	return nil
}

func (c *Container) initServices() error {
	window, err := serviceimpl.ParseDueWindow(c.Config.Reminder.Window)
	if err != nil {
		return err
	}
	if err := scheduler.ValidateCronExpression(c.Config.Reminder.Cron); err != nil {
		return fmt.Errorf("REMINDER_CRON: %w", err)
	}

	c.Dispatcher = serviceimpl.NewNotificationDispatcher(c.Mailer, c.SMS)
	c.EventScheduler = scheduler.NewEventScheduler(c.Config.Reminder.Location())

	c.ReminderService = serviceimpl.NewReminderService(serviceimpl.ReminderConfig{
		Enabled:         c.Config.Reminder.Enabled,
		Cron:            c.Config.Reminder.Cron,
		Location:        c.Config.Reminder.Location(),
		WindowName:      c.Config.Reminder.Window,
		Window:          window,
		DispatchTimeout: c.Config.Reminder.DispatchTimeout,
	}, c.SubjectRepository, c.Dispatcher, c.Events, c.EventScheduler)

	userService := serviceimpl.NewUserService(serviceimpl.AuthConfig{
		JWTSecret:          c.Config.JWT.Secret,
		JWTTTL:             c.Config.JWT.TTL,
		DefaultPassword:    c.Config.Auth.DefaultPassword,
		AdminIdentifier:    c.Config.Auth.AdminIdentifier,
		DefaultUniversity:  c.Config.Auth.DefaultUniversity,
		DefaultCareer:      c.Config.Auth.DefaultCareer,
		DefaultCountryCode: c.Config.SMS.DefaultCountryCode,
	}, c.UserRepository, c.Storage)
	c.UserService = userService

	c.RecoveryService = serviceimpl.NewRecoveryService(
		c.UserRepository,
		c.CodeStore,
		c.Dispatcher,
		userService,
		c.Config.Recovery.CodeTTL,
		c.Config.SMS.DefaultCountryCode,
	)
	c.SubjectService = serviceimpl.NewSubjectService(c.SubjectRepository, c.ReminderService)
	c.NewsService = serviceimpl.NewNewsService(c.NewsRepository)

	if c.ChatModel != nil {
		c.ChatService = serviceimpl.NewChatService(c.ChatModel)
	} else {
		c.ChatService = serviceimpl.NewChatService(nil)
	}

	logger.Info("Services initialized", "reminder_window", c.Config.Reminder.Window)
	return nil
}

func (c *Container) initScheduler() error {
	if err := c.ReminderService.RegisterSweepJob(); err != nil {
		return fmt.Errorf("failed to schedule reminder sweep: %w", err)
	}

	c.EventScheduler.Start()
	return nil
}

func (c *Container) Cleanup() error {
	logger.Info("Starting cleanup...")

	// Stop scheduler
	if c.EventScheduler != nil && c.EventScheduler.IsRunning() {
		c.EventScheduler.Stop()
	}

	if c.ChatModel != nil {
		if err := c.ChatModel.Close(); err != nil {
			logger.Warn("Failed to close Gemini client", "error", err)
		}
	}

	// Close NATS connection
	if c.NATSClient != nil {
		c.NATSClient.Close()
		logger.Info("NATS connection closed")
	}

	// Close Redis connection
	if c.RedisClient != nil {
		if err := c.RedisClient.Close(); err != nil {
			logger.Warn("Failed to close Redis connection", "error", err)
		} else {
			logger.Info("Redis connection closed")
		}
	}

	// Close database connection
	if c.DB != nil {
		sqlDB, err := c.DB.DB()
		if err == nil {
			if err := sqlDB.Close(); err != nil {
				logger.Warn("Failed to close database connection", "error", err)
			} else {
				logger.Info("Database connection closed")
			}
		}
	}

	logger.Info("Cleanup completed")
	return nil
}

func (c *Container) GetConfig() *config.Config {
	return c.Config
}

func (c *Container) GetHandlerServices() *handlers.Services {
	return &handlers.Services{
		UserService:     c.UserService,
		RecoveryService: c.RecoveryService,
		SubjectService:  c.SubjectService,
		ReminderService: c.ReminderService,
		NewsService:     c.NewsService,
		ChatService:     c.ChatService,
		MaxUploadSize:   c.Config.Storage.MaxUploadSize,
	}
}
