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

package configuration

import "time"

type Config struct {
	MqttBroker     string        `env_var:"MQTT_BROKER"`
	MqttPort       uint          `env_var:"MQTT_PORT"`
	MongoUrl       string        `env_var:"MONGO_URI"`
	MongoDb        string        `env_var:"MONGO_DB"`
	ServerPort     uint          `env_var:"API_PORT"`
	ConnectTimeout time.Duration `env_var:"CONNECT_TIMEOUT"`
	LogLevel       string        `env_var:"LOG_LEVEL"`
	LogHandler     string        `env_var:"LOG_HANDLER"`
}
