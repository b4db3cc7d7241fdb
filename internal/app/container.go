package app

import (
	"context"

	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"

	"github.com/RAGHAVAN7777/vault-backend/domain"
	"github.com/RAGHAVAN7777/vault-backend/internal/config"
	"github.com/RAGHAVAN7777/vault-backend/internal/infrastructure/auth"
	"github.com/RAGHAVAN7777/vault-backend/internal/infrastructure/database"
	"github.com/RAGHAVAN7777/vault-backend/internal/infrastructure/notifications"
	"github.com/RAGHAVAN7777/vault-backend/internal/infrastructure/repositories"
	"github.com/RAGHAVAN7777/vault-backend/internal/infrastructure/storage"
	"github.com/RAGHAVAN7777/vault-backend/internal/services"
)

// Container holds all dependencies
type Container struct {
	Config *config.Config

	DB          *gorm.DB
	RedisClient *redis.Client

	UserRepo    domain.UserRepository
	ContentRepo domain.ContentRepository
	NoteRepo    domain.NoteRepository
	OTPLedger   domain.OTPLedger

	PINSvc     domain.PINService
	Notifier   domain.Notifier
	Store      domain.ContentStore
	OTPSvc     domain.OTPService
	AuthSvc    domain.AuthService
	QuotaSvc   domain.QuotaService
	ContentSvc domain.ContentService
	NoteSvc    domain.NoteService
	PurgeSvc   domain.PurgeService
	AdminSvc   domain.AdminService

	Reaper *services.Reaper
}

// NewContainer creates and initializes all dependencies
func NewContainer(ctx context.Context, cfg *config.Config) (*Container, error) {
	c := &Container{Config: cfg}

	gdb, err := database.Open(cfg.DSN)
	if err != nil {
		return nil, err
	}
	if err := database.AutoMigrate(gdb); err != nil {
		return nil, err
	}
	c.DB = gdb

	rdb := database.NewRedis(cfg.RedisAddr, cfg.RedisPassword, cfg.RedisDB)
	if err := rdb.Ping(ctx); err != nil {
		return nil, err
	}
	c.RedisClient = rdb.Client

	store, err := storage.NewS3Store(ctx, storage.Options{
		Region:    cfg.S3Region,
		Endpoint:  cfg.S3Endpoint,
		Bucket:    cfg.S3Bucket,
		AccessKey: cfg.S3AccessKey,
		SecretKey: cfg.S3SecretKey,
	})
	if err != nil {
		return nil, err
	}
	c.Store = store

	c.UserRepo = repositories.NewUserRepository(gdb)
	c.ContentRepo = repositories.NewContentRepository(gdb)
	c.NoteRepo = repositories.NewNoteRepository(gdb)
	c.OTPLedger = repositories.NewOTPLedger(c.RedisClient)

	c.PINSvc = auth.NewPINService()
	c.Notifier = notifications.NewBrevoService(cfg.BrevoAPIKey, cfg.SenderEmail, cfg.SenderName)
	c.OTPSvc = services.NewOTPService(c.OTPLedger, services.OTPConfig{
		Length: cfg.OTP_Length,
		TTL:    cfg.OTP_TTL,
	})

	c.AuthSvc = services.NewAuthService(c.UserRepo, c.OTPSvc, c.PINSvc, c.Notifier, cfg.OperatorEmail, cfg.AdminPattern)
	c.QuotaSvc = services.NewQuotaService(c.UserRepo)
	c.ContentSvc = services.NewContentService(c.UserRepo, c.ContentRepo, c.QuotaSvc, c.Store)
	c.NoteSvc = services.NewNoteService(c.NoteRepo)
	c.PurgeSvc = services.NewPurgeService(c.UserRepo, c.ContentRepo, c.NoteRepo, c.Store, c.Notifier)
	c.AdminSvc = services.NewAdminService(c.UserRepo)

	c.Reaper = services.NewReaper(c.ContentRepo, c.QuotaSvc, c.Store, cfg.ReapInterval)

	return c, nil
}

// Close closes all connections
func (c *Container) Close() error {
	if c.RedisClient != nil {
		c.RedisClient.Close()
	}

	if c.DB != nil {
		sqlDB, err := c.DB.DB()
		if err != nil {
			return err
		}
		return sqlDB.Close()
	}

	return nil
}
