package cmd

import "time"

type Config struct {
	DBHost          string
	DBPort          string
	DBUser          string
	DBPassword      string
	DBName          string
	DBSslMode       string
	ActiveOrdersTTL time.Duration
	ReportRowCap    int64
	RunJobs         bool
}
