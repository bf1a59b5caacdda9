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
	"context"
	"encoding/json"
	"time"

	"github.com/SENERGY-Platform/go-service-base/struct-logger/attributes"
	"github.com/SENERGY-Platform/room-safety-connector/pkg/log"
	"github.com/SENERGY-Platform/room-safety-connector/pkg/model"

	mqtt "github.com/eclipse/paho.mqtt.golang"
	"go.mongodb.org/mongo-driver/bson"
)

func (c *Controller) handleMessage(_ mqtt.Client, msg mqtt.Message) {
	collection := collectionNameFor(msg.Topic())
	if collection == "" {
		log.Logger.Warn("message on unexpected topic", "topic", msg.Topic())
		return
	}

	doc, err := stampPayload(msg.Payload(), time.Now().UTC())
	if err != nil {
		log.Logger.Error("dropping malformed payload", attributes.ErrorKey, err, "topic", msg.Topic())
		return
	}

	ctx, cf := context.WithTimeout(context.Background(), 10*time.Second)
	defer cf()
	_, err = c.db.Collection(collection).InsertOne(ctx, doc)
	if err != nil {
		log.Logger.Error("unable to store message", attributes.ErrorKey, err, "collection", collection)
		return
	}
	log.Logger.Debug("message stored", "topic", msg.Topic(), "collection", collection)
}

// stampPayload decodes the device payload as-is and adds the ingest
// timestamp. Fields are not validated; the device schema may evolve
// without a connector release.
func stampPayload(payload []byte, ts time.Time) (bson.M, error) {
	doc := bson.M{}
	err := json.Unmarshal(payload, &doc)
	if err != nil {
		return nil, err
	}
	doc[model.TimestampKey] = ts
	return doc, nil
}

func collectionNameFor(topic string) string {
	switch topic {
	case model.TopicSensors:
		return model.CollectionSensorReadings
	case model.TopicStatus:
		return model.CollectionStatusLogs
	case model.TopicAlert:
		return model.CollectionAlerts
	}
	return ""
}
