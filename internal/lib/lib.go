// Package lib groups supporting libraries that do not belong to a layer:
// background jobs (Asynq) and email delivery (Resend).
package lib
