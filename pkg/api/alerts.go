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

// getAlerts godoc
// @Summary      Alerts
// @Description  Alerts within the requested time window, newest first
// @Produce      json
// @Param        hours query int false "time window in hours" default(24)
// @Param        limit query int false "maximum number of alerts" default(50)
// @Success      200 {array} model.Alert
// @Failure      400
// @Failure      500
// @Tags         Alerts
// @Router       /api/alerts [GET]
func getAlerts(controller Controller) (string, string, gin.HandlerFunc) {
	return http.MethodGet, "/api/alerts", func(gc *gin.Context) {
		since, limit, err := windowQuery(gc, 24, 50)
		if err != nil {
			_ = gc.Error(err)
			return
		}
		alerts, err := controller.Alerts(gc.Request.Context(), since, limit)
		if err != nil {
			_ = gc.Error(errors.Join(fmt.Errorf("unable to query alerts"), err))
			return
		}
		gc.JSON(http.StatusOK, alerts)
	}
}
