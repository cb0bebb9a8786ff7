package utils

import (
	"github.com/robfig/cron/v3"
)

// Job is a named unit of periodic work
type Job struct {
	Name     string
	Schedule string
	Run      func() error
}

// InitializeSchedulers registers every job on a fresh cron and starts it
func InitializeSchedulers(jobs ...Job) (*cron.Cron, error) {
	c := cron.New()

	for _, job := range jobs {
		job := job
		if _, err := c.AddFunc(job.Schedule, func() { runJob(job) }); err != nil {
			return nil, err
		}
		Log.WithField("job", job.Name).WithField("schedule", job.Schedule).Info("scheduler registered")
	}

	c.Start()
	return c, nil
}

func runJob(job Job) {
	log := Log.WithField("job", job.Name)
	if err := job.Run(); err != nil {
		log.WithError(err).Error("scheduled job failed")
		return
	}
	log.Debug("scheduled job completed")
}
