package lambda

import (
	"context"
	"sync"

	"github.com/sirupsen/logrus"

	"todo-api/internal/config"
	"todo-api/pkg/server"
)

// Lambda execution environments are reused across invocations, so the
// container (and its table client) is built once per process and shared by
// every invocation the runtime sends this way.
var (
	sharedContainer *server.Container
	bootstrapOnce   sync.Once
	bootstrapErr    error
)

// Bootstrap returns the process-wide service container, building it on the
// first call. Construction failures are sticky: a broken environment fails
// every invocation rather than half-initializing.
func Bootstrap(ctx context.Context) (*server.Container, error) {
	bootstrapOnce.Do(func() {
		cfg, err := config.Load()
		if err != nil {
			bootstrapErr = err
			return
		}

		sharedContainer, bootstrapErr = server.NewContainer(ctx, cfg)
		if bootstrapErr != nil {
			return
		}

		sc := config.GetServerlessConfig()
		logrus.WithFields(logrus.Fields{
			"mode":     config.GetDeploymentMode(),
			"function": sc.FunctionName,
			"stage":    sc.Stage,
			"table":    cfg.DynamoDB.TableName,
		}).Info("Lambda container initialized")
	})

	return sharedContainer, bootstrapErr
}
