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
	"errors"
	"math"
	"time"

	"github.com/SENERGY-Platform/room-safety-connector/pkg/model"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

func (c *Controller) Sensors(ctx context.Context, since time.Time, limit int64) (result []model.SensorReading, err error) {
	result = []model.SensorReading{}
	cursor, err := c.readings.Find(ctx, windowFilter(since), findNewestFirst(limit))
	if err != nil {
		return result, err
	}
	err = cursor.All(ctx, &result)
	return result, err
}

func (c *Controller) LatestSensor(ctx context.Context) (*model.SensorReading, error) {
	reading := model.SensorReading{}
	err := c.readings.FindOne(ctx, bson.M{}, findOneNewest()).Decode(&reading)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &reading, nil
}

func (c *Controller) Alerts(ctx context.Context, since time.Time, limit int64) (result []model.Alert, err error) {
	result = []model.Alert{}
	cursor, err := c.alerts.Find(ctx, windowFilter(since), findNewestFirst(limit))
	if err != nil {
		return result, err
	}
	err = cursor.All(ctx, &result)
	return result, err
}

func (c *Controller) LatestStatus(ctx context.Context) (*model.StatusLog, error) {
	status := model.StatusLog{}
	err := c.statusLogs.FindOne(ctx, bson.M{}, findOneNewest()).Decode(&status)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &status, nil
}

func (c *Controller) Stats(ctx context.Context, since time.Time) (stats model.Stats, err error) {
	stats.TotalReadings, err = c.readings.CountDocuments(ctx, windowFilter(since))
	if err != nil {
		return stats, err
	}
	stats.TotalAlerts, err = c.alerts.CountDocuments(ctx, windowFilter(since))
	if err != nil {
		return stats, err
	}
	stats.BurglarAlerts, err = c.alerts.CountDocuments(ctx, windowFilter(since, "type", model.AlertTypeBurglar))
	if err != nil {
		return stats, err
	}
	stats.FireAlerts, err = c.alerts.CountDocuments(ctx, windowFilter(since, "type", model.AlertTypeFire))
	if err != nil {
		return stats, err
	}

	pipeline := mongo.Pipeline{
		{{Key: "$match", Value: windowFilter(since)}},
		{{Key: "$group", Value: bson.D{
			{Key: "_id", Value: nil},
			{Key: "avg_temp", Value: bson.D{{Key: "$avg", Value: "$temp"}}},
			{Key: "max_temp", Value: bson.D{{Key: "$max", Value: "$temp"}}},
			{Key: "avg_humidity", Value: bson.D{{Key: "$avg", Value: "$humidity"}}},
		}}},
	}
	cursor, err := c.readings.Aggregate(ctx, pipeline)
	if err != nil {
		return stats, err
	}
	var agg []struct {
		AvgTemp     float64 `bson:"avg_temp"`
		MaxTemp     float64 `bson:"max_temp"`
		AvgHumidity float64 `bson:"avg_humidity"`
	}
	err = cursor.All(ctx, &agg)
	if err != nil {
		return stats, err
	}
	if len(agg) > 0 {
		stats.AvgTemp = round1(agg[0].AvgTemp)
		stats.MaxTemp = round1(agg[0].MaxTemp)
		stats.AvgHumidity = round1(agg[0].AvgHumidity)
	}
	return stats, nil
}

func windowFilter(since time.Time, extraKV ...string) bson.M {
	filter := bson.M{model.TimestampKey: bson.M{"$gte": since}}
	for i := 0; i+1 < len(extraKV); i += 2 {
		filter[extraKV[i]] = extraKV[i+1]
	}
	return filter
}

func findNewestFirst(limit int64) *options.FindOptions {
	return options.Find().
		SetSort(bson.D{{Key: model.TimestampKey, Value: -1}}).
		SetLimit(limit)
}

func findOneNewest() *options.FindOneOptions {
	return options.FindOne().SetSort(bson.D{{Key: model.TimestampKey, Value: -1}})
}

func round1(v float64) float64 {
	return math.Round(v*10) / 10
}
