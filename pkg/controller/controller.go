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
	"time"

	"github.com/SENERGY-Platform/go-service-base/struct-logger/attributes"
	"github.com/SENERGY-Platform/room-safety-connector/pkg/configuration"
	"github.com/SENERGY-Platform/room-safety-connector/pkg/log"
	"github.com/SENERGY-Platform/room-safety-connector/pkg/model"

	mqtt "github.com/eclipse/paho.mqtt.golang"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type Controller struct {
	config     configuration.Config
	mongo      *mongo.Client
	db         *mongo.Database
	readings   *mongo.Collection
	statusLogs *mongo.Collection
	alerts     *mongo.Collection
	mqtt       mqtt.Client
}

func New(ctx context.Context, config configuration.Config) (*Controller, error) {
	ctxWt, cf := context.WithTimeout(ctx, config.ConnectTimeout)
	defer cf()
	client, err := mongo.Connect(ctxWt, options.Client().ApplyURI(config.MongoUrl))
	if err != nil {
		return nil, err
	}

	// test connection
	err = client.Ping(ctxWt, nil)
	if err != nil {
		return nil, err
	}

	db := client.Database(config.MongoDb)
	c := &Controller{
		config:     config,
		mongo:      client,
		db:         db,
		readings:   db.Collection(model.CollectionSensorReadings),
		statusLogs: db.Collection(model.CollectionStatusLogs),
		alerts:     db.Collection(model.CollectionAlerts),
	}

	err = c.ensureIndexes(ctxWt)
	if err != nil {
		return nil, err
	}
	log.Logger.Info("connected to mongodb", "db", config.MongoDb)

	err = c.initMqtt(config)
	if err != nil {
		return nil, err
	}

	go func() {
		<-ctx.Done()
		c.mqtt.Disconnect(250)
		log.Logger.Info("mqtt client stopped")
		ctxWt, cf := context.WithTimeout(context.Background(), 5*time.Second)
		defer cf()
		if err := client.Disconnect(ctxWt); err != nil {
			log.Logger.Error("stopping mongodb client failed", attributes.ErrorKey, err)
		}
	}()

	return c, nil
}

func (c *Controller) ensureIndexes(ctx context.Context) error {
	index := mongo.IndexModel{Keys: bson.D{{Key: model.TimestampKey, Value: 1}}}
	for _, collection := range []*mongo.Collection{c.readings, c.statusLogs, c.alerts} {
		_, err := collection.Indexes().CreateOne(ctx, index)
		if err != nil {
			return err
		}
	}
	return nil
}

func (c *Controller) Health() model.Health {
	return model.Health{
		Status:     "ok",
		MqttBroker: c.config.MqttBroker,
		MongoDb:    c.config.MongoDb,
	}
}
