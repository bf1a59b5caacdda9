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

package model

import "time"

// SensorReading is one telemetry sample published by the device on
// room/sensors. Timestamp is stamped on ingest, not by the device.
type SensorReading struct {
	Temp      float64   `json:"temp" bson:"temp"`
	Humidity  float64   `json:"humidity" bson:"humidity"`
	Timestamp time.Time `json:"timestamp" bson:"timestamp"`
}

// StatusLog is one room state update published on room/status.
type StatusLog struct {
	Door          string    `json:"door" bson:"door"`
	OccupantCount int       `json:"occupant_count" bson:"occupant_count"`
	Timestamp     time.Time `json:"timestamp" bson:"timestamp"`
}

// Alert is published on room/alert when the device detects a burglar or
// fire condition.
type Alert struct {
	Type      string    `json:"type" bson:"type"`
	Message   string    `json:"message" bson:"message"`
	Timestamp time.Time `json:"timestamp" bson:"timestamp"`
}

// Stats summarizes one time window for the dashboard.
type Stats struct {
	TotalReadings int64   `json:"total_readings"`
	TotalAlerts   int64   `json:"total_alerts"`
	BurglarAlerts int64   `json:"burglar_alerts"`
	FireAlerts    int64   `json:"fire_alerts"`
	AvgTemp       float64 `json:"avg_temp"`
	MaxTemp       float64 `json:"max_temp"`
	AvgHumidity   float64 `json:"avg_humidity"`
}

type Health struct {
	Status     string `json:"status"`
	MqttBroker string `json:"mqtt_broker"`
	MongoDb    string `json:"mongo_db"`
}
