package service

import (
	"time"

	"github.com/Elly-L/main-shilingi-x-sub001/pkg/utils"
)

var retryConfig = utils.RetryConfig{
	InitialDelay: 100 * time.Millisecond,
	MaxDelay:     2 * time.Second,
	MaxAttempts:  5,
	Multiplier:   2,
}
