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
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/SENERGY-Platform/room-safety-connector/pkg/configuration"
	"github.com/SENERGY-Platform/room-safety-connector/pkg/log"
	"github.com/SENERGY-Platform/room-safety-connector/pkg/model"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubController struct {
	readings []model.SensorReading
	alerts   []model.Alert
	latest   *model.SensorReading
	status   *model.StatusLog
	stats    model.Stats
	err      error

	gotSince time.Time
	gotLimit int64
}

func (s *stubController) Health() model.Health {
	return model.Health{Status: "ok", MqttBroker: "broker.local", MongoDb: "room_safety"}
}

func (s *stubController) Sensors(_ context.Context, since time.Time, limit int64) ([]model.SensorReading, error) {
	s.gotSince, s.gotLimit = since, limit
	return s.readings, s.err
}

func (s *stubController) LatestSensor(_ context.Context) (*model.SensorReading, error) {
	return s.latest, s.err
}

func (s *stubController) Alerts(_ context.Context, since time.Time, limit int64) ([]model.Alert, error) {
	s.gotSince, s.gotLimit = since, limit
	return s.alerts, s.err
}

func (s *stubController) LatestStatus(_ context.Context) (*model.StatusLog, error) {
	return s.status, s.err
}

func (s *stubController) Stats(_ context.Context, since time.Time) (model.Stats, error) {
	s.gotSince = since
	return s.stats, s.err
}

func testRouter(t *testing.T, stub *stubController) *gin.Engine {
	t.Helper()
	log.Init(configuration.Config{LogLevel: "error", LogHandler: "text"})
	router, err := newRouter(stub)
	require.NoError(t, err)
	return router
}

func do(router *gin.Engine, method string, target string) *httptest.ResponseRecorder {
	recorder := httptest.NewRecorder()
	router.ServeHTTP(recorder, httptest.NewRequest(method, target, nil))
	return recorder
}

func TestGetHealthCheck(t *testing.T) {
	router := testRouter(t, &stubController{})

	resp := do(router, http.MethodGet, "/api/health")
	require.Equal(t, http.StatusOK, resp.Code)

	var health model.Health
	require.NoError(t, json.Unmarshal(resp.Body.Bytes(), &health))
	assert.Equal(t, "ok", health.Status)
	assert.Equal(t, "broker.local", health.MqttBroker)
	assert.Equal(t, "room_safety", health.MongoDb)
}

func TestGetSensorsWindow(t *testing.T) {
	stub := &stubController{readings: []model.SensorReading{
		{Temp: 24.5, Humidity: 61, Timestamp: time.Date(2026, 8, 28, 12, 0, 0, 0, time.UTC)},
	}}
	router := testRouter(t, stub)

	resp := do(router, http.MethodGet, "/api/sensors?hours=2&limit=5")
	require.Equal(t, http.StatusOK, resp.Code)
	assert.Equal(t, int64(5), stub.gotLimit)
	assert.WithinDuration(t, time.Now().UTC().Add(-2*time.Hour), stub.gotSince, time.Minute)

	var readings []model.SensorReading
	require.NoError(t, json.Unmarshal(resp.Body.Bytes(), &readings))
	require.Len(t, readings, 1)
	assert.Equal(t, 24.5, readings[0].Temp)
}

func TestGetSensorsDefaults(t *testing.T) {
	stub := &stubController{readings: []model.SensorReading{}}
	router := testRouter(t, stub)

	resp := do(router, http.MethodGet, "/api/sensors")
	require.Equal(t, http.StatusOK, resp.Code)
	assert.Equal(t, int64(100), stub.gotLimit)
	assert.WithinDuration(t, time.Now().UTC().Add(-24*time.Hour), stub.gotSince, time.Minute)
	assert.JSONEq(t, "[]", resp.Body.String())
}

func TestGetSensorsBadHours(t *testing.T) {
	router := testRouter(t, &stubController{})

	resp := do(router, http.MethodGet, "/api/sensors?hours=soon")
	assert.Equal(t, http.StatusBadRequest, resp.Code)
}

func TestGetSensorsQueryFailure(t *testing.T) {
	router := testRouter(t, &stubController{err: errors.New("mongo unavailable")})

	resp := do(router, http.MethodGet, "/api/sensors")
	assert.Equal(t, http.StatusInternalServerError, resp.Code)
}

func TestGetLatestSensorEmpty(t *testing.T) {
	router := testRouter(t, &stubController{})

	resp := do(router, http.MethodGet, "/api/sensors/latest")
	require.Equal(t, http.StatusOK, resp.Code)
	assert.JSONEq(t, "{}", resp.Body.String())
}

func TestGetLatestSensor(t *testing.T) {
	stub := &stubController{latest: &model.SensorReading{Temp: 31.2, Humidity: 40}}
	router := testRouter(t, stub)

	resp := do(router, http.MethodGet, "/api/sensors/latest")
	require.Equal(t, http.StatusOK, resp.Code)

	var reading model.SensorReading
	require.NoError(t, json.Unmarshal(resp.Body.Bytes(), &reading))
	assert.Equal(t, 31.2, reading.Temp)
}

func TestGetAlerts(t *testing.T) {
	stub := &stubController{alerts: []model.Alert{
		{Type: model.AlertTypeFire, Message: "temperature above threshold"},
	}}
	router := testRouter(t, stub)

	resp := do(router, http.MethodGet, "/api/alerts")
	require.Equal(t, http.StatusOK, resp.Code)
	assert.Equal(t, int64(50), stub.gotLimit)

	var alerts []model.Alert
	require.NoError(t, json.Unmarshal(resp.Body.Bytes(), &alerts))
	require.Len(t, alerts, 1)
	assert.Equal(t, "fire", alerts[0].Type)
}

func TestGetStatusEmpty(t *testing.T) {
	router := testRouter(t, &stubController{})

	resp := do(router, http.MethodGet, "/api/status")
	require.Equal(t, http.StatusOK, resp.Code)
	assert.JSONEq(t, "{}", resp.Body.String())
}

func TestGetStats(t *testing.T) {
	stub := &stubController{stats: model.Stats{
		TotalReadings: 12,
		TotalAlerts:   3,
		BurglarAlerts: 1,
		FireAlerts:    2,
		AvgTemp:       24.5,
		MaxTemp:       31.2,
		AvgHumidity:   60.1,
	}}
	router := testRouter(t, stub)

	resp := do(router, http.MethodGet, "/api/stats?hours=48")
	require.Equal(t, http.StatusOK, resp.Code)
	assert.WithinDuration(t, time.Now().UTC().Add(-48*time.Hour), stub.gotSince, time.Minute)

	var stats model.Stats
	require.NoError(t, json.Unmarshal(resp.Body.Bytes(), &stats))
	assert.Equal(t, int64(12), stats.TotalReadings)
	assert.Equal(t, 31.2, stats.MaxTemp)
}

func TestCorsHeader(t *testing.T) {
	router := testRouter(t, &stubController{})

	recorder := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/health", nil)
	req.Header.Set("Origin", "http://dashboard.example.org")
	router.ServeHTTP(recorder, req)

	require.Equal(t, http.StatusOK, recorder.Code)
	assert.Equal(t, "*", recorder.Header().Get("Access-Control-Allow-Origin"))
}
