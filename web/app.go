package web

import (
	"context"
	"crypto/rand"
	"fmt"
	"log"

	"axiapac.com/timesheets/config"
	"axiapac.com/timesheets/core"
	"axiapac.com/timesheets/infrastructure/communication"
	"axiapac.com/timesheets/infrastructure/filesystem"
	"axiapac.com/timesheets/model"
	"axiapac.com/timesheets/security"
	"axiapac.com/timesheets/seed"
	"axiapac.com/timesheets/service"
	"axiapac.com/timesheets/store"
	"axiapac.com/timesheets/web/handlers/auth"
	"github.com/gin-gonic/gin"
)

// App is the wired server: store, services and router.
type App struct {
	Router *gin.Engine
	Store  store.Store
	dm     *core.DatabaseManager
}

func NewApp(ctx context.Context, cfg config.Config) (*App, error) {
	app := &App{}

	if cfg.Database.DSN != "" {
		dm, err := core.NewDatabaseManager(cfg.Database.DSN, cfg.Database.MaxConnections, core.ParseLogLevel(cfg.Database.LogLevel))
		if err != nil {
			return nil, err
		}
		if err := dm.Migrate(ctx); err != nil {
			dm.Close()
			return nil, err
		}
		app.dm = dm
		app.Store = store.NewGormStore(dm)
		log.Println("[INFO] using MySQL store")
	} else {
		app.Store = store.NewMemoryStore()
		log.Println("[INFO] using in-memory store, data resets on restart")
	}

	rnd := service.NewRand(cfg.Demo.RandomSeed)
	if cfg.Demo.Seed {
		if err := seedStore(ctx, app.Store, cfg.Demo); err != nil {
			app.Close()
			return nil, err
		}
	}

	var notifier service.Notifier = service.NopNotifier{}
	if cfg.Slack.Token != "" {
		notifier = communication.NewSlack(cfg.Slack.Token, communication.SlackOption{InfoChannelID: cfg.Slack.Channel})
		log.Println("[INFO] slack notifications enabled")
	}

	demo := service.NewDemoTasks(cfg.Demo.GenerateTasks, rnd)
	timesheets := service.NewTimesheetService(app.Store, notifier, demo)
	if cfg.Export.Bucket != "" {
		fs, err := filesystem.NewS3FileSystem(ctx, cfg.Export.Bucket)
		if err != nil {
			app.Close()
			return nil, err
		}
		timesheets.WithArchive(fs, cfg.Export.Prefix)
		log.Printf("[INFO] archiving exports to s3://%s/%s\n", cfg.Export.Bucket, cfg.Export.Prefix)
	}
	tasks := service.NewTaskService(app.Store, timesheets, demo, service.Options{
		StrictTaskDates: cfg.Validation.StrictTaskDates,
		AutoReconcile:   cfg.Reconcile.Auto,
	})

	secret, err := signingSecret(cfg.Auth.SigningSecret)
	if err != nil {
		app.Close()
		return nil, err
	}

	app.Router = NewRouter(Dependencies{
		Timesheets: timesheets,
		Tasks:      tasks,
		Auth: auth.Options{
			Credentials: security.Credentials{
				Email:        cfg.Auth.Email,
				Password:     cfg.Auth.Password,
				PasswordHash: cfg.Auth.PasswordHash,
			},
			Name:     cfg.Auth.Name,
			Secret:   secret,
			TokenTTL: cfg.Auth.TokenTTL,
		},
		AllowOrigins: cfg.CORS.AllowOrigins,
	})
	return app, nil
}

func seedStore(ctx context.Context, st store.Store, cfg config.DemoConfig) error {
	var timesheets []model.Timesheet
	if cfg.SeedFile != "" {
		loaded, err := seed.Load(cfg.SeedFile)
		if err != nil {
			return err
		}
		timesheets = loaded
	} else {
		timesheets = seed.Generate(seed.DemoYear, seed.DemoWeeks, service.NewRand(cfg.RandomSeed))
	}
	_, err := seed.Apply(ctx, st, timesheets)
	return err
}

// signingSecret decodes the configured secret, or makes a random one that lives as long as
// the process.
func signingSecret(base64Secret string) ([]byte, error) {
	if base64Secret != "" {
		return security.DecodeSecret(base64Secret)
	}
	secret := make([]byte, 32)
	if _, err := rand.Read(secret); err != nil {
		return nil, fmt.Errorf("failed to generate signing secret: %w", err)
	}
	log.Println("[WARN] auth.signing_secret not set, sessions end on restart")
	return secret, nil
}

func (a *App) Close() error {
	if a.dm != nil {
		return a.dm.Close()
	}
	return nil
}
