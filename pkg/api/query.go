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
	"strconv"
	"time"

	"github.com/SENERGY-Platform/room-safety-connector/pkg/model"
	"github.com/gin-gonic/gin"
)

// windowQuery reads the hours/limit query params shared by the history
// endpoints.
func windowQuery(gc *gin.Context, defaultHours int64, defaultLimit int64) (since time.Time, limit int64, err error) {
	hours := defaultHours
	if v := gc.Query("hours"); v != "" {
		hours, err = strconv.ParseInt(v, 10, 64)
		if err != nil {
			return since, limit, errors.Join(model.ErrBadRequest, fmt.Errorf("unable to parse query param hours"), err)
		}
	}
	limit = defaultLimit
	if v := gc.Query("limit"); v != "" {
		limit, err = strconv.ParseInt(v, 10, 64)
		if err != nil {
			return since, limit, errors.Join(model.ErrBadRequest, fmt.Errorf("unable to parse query param limit"), err)
		}
	}
	return time.Now().UTC().Add(-time.Duration(hours) * time.Hour), limit, nil
}
