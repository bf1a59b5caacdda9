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
	"errors"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
)

// getSensors godoc
// @Summary      Sensor readings
// @Description  Sensor readings within the requested time window, newest first
// @Produce      json
// @Param        hours query int false "time window in hours" default(24)
// @Param        limit query int false "maximum number of readings" default(100)
// @Success      200 {array} model.SensorReading
// @Failure      400
// @Failure      500
// @Tags         Sensors
// @Router       /api/sensors [GET]
func getSensors(controller Controller) (string, string, gin.HandlerFunc) {
	return http.MethodGet, "/api/sensors", func(gc *gin.Context) {
		since, limit, err := windowQuery(gc, 24, 100)
		if err != nil {
			_ = gc.Error(err)
			return
		}
		readings, err := controller.Sensors(gc.Request.Context(), since, limit)
		if err != nil {
			_ = gc.Error(errors.Join(fmt.Errorf("unable to query sensor readings"), err))
			return
		}
		gc.JSON(http.StatusOK, readings)
	}
}

// getLatestSensor godoc
// @Summary      Latest sensor reading
// @Description  The most recent sensor reading, or an empty object if none exists
// @Produce      json
// @Success      200 {object} model.SensorReading
// @Failure      500
// @Tags         Sensors
// @Router       /api/sensors/latest [GET]
func getLatestSensor(controller Controller) (string, string, gin.HandlerFunc) {
	return http.MethodGet, "/api/sensors/latest", func(gc *gin.Context) {
		reading, err := controller.LatestSensor(gc.Request.Context())
		if err != nil {
			_ = gc.Error(errors.Join(fmt.Errorf("unable to query latest sensor reading"), err))
			return
		}
		if reading == nil {
			gc.JSON(http.StatusOK, gin.H{})
			return
		}
		gc.JSON(http.StatusOK, reading)
	}
}
