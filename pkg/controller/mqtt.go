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
	"fmt"

	"github.com/SENERGY-Platform/go-service-base/struct-logger/attributes"
	"github.com/SENERGY-Platform/room-safety-connector/pkg/configuration"
	"github.com/SENERGY-Platform/room-safety-connector/pkg/log"
	"github.com/SENERGY-Platform/room-safety-connector/pkg/model"

	mqtt "github.com/eclipse/paho.mqtt.golang"
	"github.com/google/uuid"
)

func (c *Controller) initMqtt(config configuration.Config) error {
	options := mqtt.NewClientOptions().
		AddBroker(fmt.Sprintf("tcp://%s:%d", config.MqttBroker, config.MqttPort)).
		SetClientID("room-safety-connector-" + uuid.NewString()).
		SetAutoReconnect(true).
		SetOrderMatters(false).
		SetOnConnectHandler(c.subscribe).
		SetConnectionLostHandler(func(_ mqtt.Client, err error) {
			log.Logger.Warn("mqtt connection lost", attributes.ErrorKey, err)
		})

	client := mqtt.NewClient(options)
	token := client.Connect()
	if !token.WaitTimeout(config.ConnectTimeout) {
		return fmt.Errorf("timeout connecting to mqtt broker %s:%d", config.MqttBroker, config.MqttPort)
	}
	if err := token.Error(); err != nil {
		return err
	}
	c.mqtt = client
	return nil
}

// subscribe runs on every (re)connect so subscriptions survive broker
// restarts.
func (c *Controller) subscribe(client mqtt.Client) {
	log.Logger.Info("connected to mqtt broker", "broker", c.config.MqttBroker)
	topics := map[string]byte{
		model.TopicSensors: 0,
		model.TopicStatus:  0,
		model.TopicAlert:   0,
	}
	token := client.SubscribeMultiple(topics, c.handleMessage)
	go func() {
		token.Wait()
		if err := token.Error(); err != nil {
			log.Logger.Error("mqtt subscribe failed", attributes.ErrorKey, err)
			return
		}
		log.Logger.Info("subscribed to topics")
	}()
}
