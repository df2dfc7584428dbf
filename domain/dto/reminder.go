package dto

import "time"

type SweepResponse struct {
	Date               string `json:"date"`
	SubjectsScanned    int    `json:"subjectsScanned"`
	TasksChecked       int    `json:"tasksChecked"`
	Sent               int    `json:"sent"`
	Failed             int    `json:"failed"`
	SkippedInvalidDate int    `json:"skippedInvalidDate"`
	SaveFailures       int    `json:"saveFailures"`
	DurationMs         int64  `json:"durationMs"`
}

type ReminderStatusResponse struct {
	Enabled   bool           `json:"enabled"`
	Cron      string         `json:"cron"`
	Timezone  string         `json:"timezone"`
	Window    string         `json:"window"`
	Running   bool           `json:"running"`
	LastRun   *time.Time     `json:"lastRun,omitempty"`
	NextRun   *time.Time     `json:"nextRun,omitempty"`
	LastSweep *SweepResponse `json:"lastSweep,omitempty"`
	Jobs      []JobResponse  `json:"jobs"`
}

type JobResponse struct {
	ID      string     `json:"id"`
	Cron    string     `json:"cron"`
	Active  bool       `json:"active"`
	LastRun *time.Time `json:"lastRun,omitempty"`
	NextRun *time.Time `json:"nextRun,omitempty"`
}
