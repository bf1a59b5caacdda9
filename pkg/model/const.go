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

const TopicSensors = "room/sensors"
const TopicStatus = "room/status"
const TopicAlert = "room/alert"

const CollectionSensorReadings = "sensor_readings"
const CollectionStatusLogs = "status_logs"
const CollectionAlerts = "alerts"

const TimestampKey = "timestamp"

const AlertTypeBurglar = "burglar"
const AlertTypeFire = "fire"
