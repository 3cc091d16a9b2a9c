package worker

import (
	"github.com/spec-kit/warehouse-service/internal/service"
)

// StartChangeFeedWorker registers the change feed handlers on the dispatcher.
func StartChangeFeedWorker(changeFeed *service.ChangeFeedService) {
	if changeFeed == nil {
		return
	}
	changeFeed.RegisterHandlers()
}
