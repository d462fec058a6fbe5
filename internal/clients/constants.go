package clients

import "time"

const (
	MAX_RETRIES     = 3
	INITIAL_BACKOFF = 1 * time.Second
	MAX_BACKOFF     = 16 * time.Second
	REQUEST_TIMEOUT = 10 * time.Second
	USER_AGENT      = "commentpulse-bot/0.1"
)
