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

// Package credentials holds the network profile of a room-safety
// deployment: the WiFi access point the device joins and the MQTT broker
// both the device and this connector talk to.
//
// The actual values live in credentials.go, which is listed in
// .gitignore and must be provisioned per deployment before building:
//
//	cp pkg/credentials/credentials.go.tmpl pkg/credentials/credentials.go
//	$EDITOR pkg/credentials/credentials.go
//
// If credentials.go is missing the build fails with undefined symbol
// errors. That is intentional: a binary can not be produced without a
// provisioned profile. The values are constants, fixed for the lifetime
// of the build artifact; there is no runtime reload and no validation.
package credentials
