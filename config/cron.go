package config

// CronJob pairs a schedule with a job function.
type CronJob struct {
	Schedule string
	Job      func(...string)
}

// CronJobs holds statically configured jobs. Packages with dependencies
// (DB, cache) register theirs through cron.Register instead.
var CronJobs = map[string]CronJob{
	// Add more jobs here
}
