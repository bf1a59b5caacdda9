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

package credentials_test

import (
	"fmt"
	"testing"

	"github.com/SENERGY-Platform/room-safety-connector/pkg/credentials"
	"github.com/stretchr/testify/assert"
)

// A consumer must observe every provisioned literal exactly as written,
// with no transformation or re-encoding.
func TestProfileRoundTrip(t *testing.T) {
	assert.Equal(t, "cslab", credentials.NetworkName)
	assert.Equal(t, "aksesg31", credentials.NetworkPassword)
	assert.Equal(t, "35.193.224.18", credentials.BrokerAddress)
	assert.Equal(t, 1883, credentials.BrokerPort)
}

func TestBrokerEndpointUsableAsDialAddress(t *testing.T) {
	addr := fmt.Sprintf("tcp://%s:%d", credentials.BrokerAddress, credentials.BrokerPort)
	assert.Equal(t, "tcp://35.193.224.18:1883", addr)
}
