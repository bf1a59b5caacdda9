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

// getStats godoc
// @Summary      Stats
// @Description  Summary statistics over the requested time window
// @Produce      json
// @Param        hours query int false "time window in hours" default(24)
// @Success      200 {object} model.Stats
// @Failure      400
// @Failure      500
// @Tags         Stats
// @Router       /api/stats [GET]
func getStats(controller Controller) (string, string, gin.HandlerFunc) {
	return http.MethodGet, "/api/stats", func(gc *gin.Context) {
		since, _, err := windowQuery(gc, 24, 0)
		if err != nil {
			_ = gc.Error(err)
			return
		}
		stats, err := controller.Stats(gc.Request.Context(), since)
		if err != nil {
			_ = gc.Error(errors.Join(fmt.Errorf("unable to compute stats"), err))
			return
		}
		gc.JSON(http.StatusOK, stats)
	}
}
