package main

import (
	"github.com/kimdh-hi/smtc-backend-deploy/config"
	"github.com/kimdh-hi/smtc-backend-deploy/database"
	"github.com/kimdh-hi/smtc-backend-deploy/routers"
	"github.com/kimdh-hi/smtc-backend-deploy/services/userService"
	"github.com/kimdh-hi/smtc-backend-deploy/utils"
)

func main() {
	config.LoadConfig()
	log := utils.InitLogger("smtc-backend", config.AppConfig.LogLevel)
	database.ConnectDb(config.AppConfig)

	scheduler, err := utils.InitializeSchedulers(utils.Job{
		Name:     "reconcile-reviewer-stats",
		Schedule: config.AppConfig.ReconcileSchedule,
		Run: func() error {
			corrected, err := userService.ReconcileReviewerStats(database.Database.Db)
			if err == nil && corrected > 0 {
				log.WithField("corrected", corrected).Info("reviewer stats reconciled")
			}
			return err
		},
	})
	if err != nil {
		log.Fatalf("Failed to start schedulers: %v", err)
	}
	defer scheduler.Stop()

	app := routers.NewApp()

	log.Printf("Server is running on port %s", config.AppConfig.Port)
	if err := app.Listen(":" + config.AppConfig.Port); err != nil {
		log.Fatalf("Server stopped: %v", err)
	}
}
