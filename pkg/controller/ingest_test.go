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

package controller

import (
	"testing"
	"time"

	"github.com/SENERGY-Platform/room-safety-connector/pkg/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStampPayload(t *testing.T) {
	ts := time.Date(2026, 8, 28, 12, 0, 0, 0, time.UTC)

	doc, err := stampPayload([]byte(`{"temp":24.5,"humidity":61,"gas_ppm":12}`), ts)
	require.NoError(t, err)
	assert.Equal(t, 24.5, doc["temp"])
	assert.Equal(t, float64(61), doc["humidity"])
	// unknown device fields pass through untouched
	assert.Equal(t, float64(12), doc["gas_ppm"])
	assert.Equal(t, ts, doc[model.TimestampKey])
}

func TestStampPayloadOverridesDeviceTimestamp(t *testing.T) {
	ts := time.Date(2026, 8, 28, 12, 0, 0, 0, time.UTC)
	doc, err := stampPayload([]byte(`{"timestamp":"bogus"}`), ts)
	require.NoError(t, err)
	assert.Equal(t, ts, doc[model.TimestampKey])
}

func TestStampPayloadMalformed(t *testing.T) {
	for _, payload := range []string{``, `not json`, `[1,2,3]`, `42`} {
		_, err := stampPayload([]byte(payload), time.Now())
		assert.Error(t, err, "payload %q", payload)
	}
}

func TestCollectionNameFor(t *testing.T) {
	assert.Equal(t, model.CollectionSensorReadings, collectionNameFor(model.TopicSensors))
	assert.Equal(t, model.CollectionStatusLogs, collectionNameFor(model.TopicStatus))
	assert.Equal(t, model.CollectionAlerts, collectionNameFor(model.TopicAlert))
	assert.Equal(t, "", collectionNameFor("room/unknown"))
}

func TestRound1(t *testing.T) {
	assert.Equal(t, 24.5, round1(24.4999999))
	assert.Equal(t, 0.0, round1(0))
	assert.Equal(t, -3.1, round1(-3.14))
}
