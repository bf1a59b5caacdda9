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

// getStatus godoc
// @Summary      Room status
// @Description  The most recent room status, or an empty object if none exists
// @Produce      json
// @Success      200 {object} model.StatusLog
// @Failure      500
// @Tags         Status
// @Router       /api/status [GET]
func getStatus(controller Controller) (string, string, gin.HandlerFunc) {
	return http.MethodGet, "/api/status", func(gc *gin.Context) {
		status, err := controller.LatestStatus(gc.Request.Context())
		if err != nil {
			_ = gc.Error(errors.Join(fmt.Errorf("unable to query status"), err))
			return
		}
		if status == nil {
			gc.JSON(http.StatusOK, gin.H{})
			return
		}
		gc.JSON(http.StatusOK, status)
	}
}
