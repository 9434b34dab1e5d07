// Package jobs provides scheduled background tasks for the order service.
//
// This package implements cron-based jobs using github.com/robfig/cron/v3
// to handle periodic operations the request path cannot guarantee.
//
// # Available Jobs
//
// 1. NumberRepairJob - Runs every minute to backfill display numbers for
// orders whose creating transaction crashed between insert and numbering.
// Each run processes one bounded batch inside a single transaction.
//
// Jobs are coordinated by the JobManager, which the composition root starts
// after the HTTP server's dependencies are wired and stops on shutdown.
package jobs
