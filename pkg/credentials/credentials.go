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

package credentials

// Provisioned from credentials.go.tmpl. Keep this file out of version
// control.

// WiFi access point joined by the device.
const NetworkName = "cslab"
const NetworkPassword = "aksesg31"

// MQTT broker (GCP VM).
const BrokerAddress = "35.193.224.18"
const BrokerPort = 1883
