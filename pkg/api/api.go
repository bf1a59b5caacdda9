/*
 * Copyright 2026 InfAI (CC SES)
 *
 * Licensed under the Apache License, Version 2.0 (the "License");
 * you may not use this file except in compliance with the License.
 * You may obtain a copy of the License at
 *
 *     http://www.apache.org/licenses/LICENSE-2.0
 *
 * Unless required by applicable law or agreed to in writing, software
 * distributed under the License is distributed on an "AS IS" BASIS,
 * WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
 * See the License for the specific language governing permissions and
 * limitations under the License.
 */

package api

import (
	"context"
	"errors"
	"net/http"
	"strconv"
	"sync"
	"time"

	gin_mw "github.com/SENERGY-Platform/gin-middleware"
	"github.com/SENERGY-Platform/go-service-base/struct-logger/attributes"
	"github.com/SENERGY-Platform/room-safety-connector/pkg/configuration"
	"github.com/SENERGY-Platform/room-safety-connector/pkg/log"
	"github.com/SENERGY-Platform/room-safety-connector/pkg/model"
	"github.com/gin-contrib/cors"
	"github.com/gin-contrib/requestid"
	"github.com/gin-gonic/gin"
)

// Controller is the query surface the handlers need.
type Controller interface {
	Health() model.Health
	Sensors(ctx context.Context, since time.Time, limit int64) ([]model.SensorReading, error)
	LatestSensor(ctx context.Context) (*model.SensorReading, error)
	Alerts(ctx context.Context, since time.Time, limit int64) ([]model.Alert, error)
	LatestStatus(ctx context.Context) (*model.StatusLog, error)
	Stats(ctx context.Context, since time.Time) (model.Stats, error)
}

const healthCheckPath = "/api/health"

var routes = gin_mw.Routes[Controller]{
	getHealthCheck,
	getSwaggerDoc,
	getSensors,
	getLatestSensor,
	getAlerts,
	getStatus,
	getStats,
}

// Start godoc
// @title Room Safety Connector API
// @license.name Apache-2.0
// @license.url http://www.apache.org/licenses/LICENSE-2.0.html
// @BasePath /
func Start(ctx context.Context, wg *sync.WaitGroup, config configuration.Config, controller Controller) error {
	httpHandler, err := newRouter(controller)
	if err != nil {
		return err
	}

	httpServer := &http.Server{
		Addr:    ":" + strconv.FormatUint(uint64(config.ServerPort), 10),
		Handler: httpHandler}

	wg.Go(func() {
		log.Logger.Info("starting http server")
		if err = httpServer.ListenAndServe(); !errors.Is(err, http.ErrServerClosed) {
			log.Logger.Error("starting server failed", attributes.ErrorKey, err)
		}
	})

	wg.Go(func() {
		<-ctx.Done()
		log.Logger.Info("stopping http server")
		ctxWt, cf2 := context.WithTimeout(context.Background(), time.Second*5)
		defer cf2()
		if err := httpServer.Shutdown(ctxWt); err != nil {
			log.Logger.Error("stopping server failed", attributes.ErrorKey, err)
		} else {
			log.Logger.Info("http server stopped")
		}
	})

	return nil
}

func newRouter(controller Controller) (*gin.Engine, error) {
	gin.SetMode(gin.ReleaseMode)
	httpHandler := gin.New()
	httpHandler.Use(
		gin_mw.StructLoggerHandlerWithDefaultGenerators(
			log.Logger.With(attributes.LogRecordTypeKey, attributes.HttpAccessLogRecordTypeVal),
			attributes.Provider,
			[]string{healthCheckPath},
			nil,
		),
		requestid.New(requestid.WithCustomHeaderStrKey("X-Request-ID")),
		cors.New(cors.Config{
			// the dashboard may be served from any host
			AllowOrigins: []string{"*"},
			AllowMethods: []string{http.MethodGet, http.MethodPost, http.MethodOptions},
			AllowHeaders: []string{"Content-Type"},
		}),
		gin_mw.ErrorHandler(model.GetStatusCode, ", "),
		gin_mw.StructRecoveryHandler(log.Logger, gin_mw.DefaultRecoveryFunc),
	)
	rg := httpHandler.Group("")
	_, err := routes.Set(controller, rg)
	if err != nil {
		return nil, err
	}
	return httpHandler, nil
}
