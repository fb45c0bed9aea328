/*
 * Copyright (c) 2026, KrishiSetu. (https://www.krishisetu.org).
 *
 * KrishiSetu licenses this file to you under the Apache License,
 * Version 2.0 (the "License"); you may not use this file except
 * in compliance with the License.
 * You may obtain a copy of the License at
 *
 * http://www.apache.org/licenses/LICENSE-2.0
 *
 * Unless required by applicable law or agreed to in writing,
 * software distributed under the License is distributed on an
 * "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY
 * KIND, either express or implied.  See the License for the
 * specific language governing permissions and limitations
 * under the License.
 */

package mongo

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/krishisetu/farmer-welfare-service/internal/system/config"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// MongoDB wraps the shared mongo client and the service database.
type MongoDB struct {
	Client   *mongo.Client
	Database *mongo.Database
}

var (
	instance *MongoDB
	once     sync.Once
)

// Init connects to MongoDB using the configured URI and database name.
func Init(cfg config.MongoDBConfig) error {

	var initErr error
	once.Do(func() {
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()

		client, err := mongo.Connect(ctx, options.Client().ApplyURI(cfg.URI))
		if err != nil {
			initErr = fmt.Errorf("failed to connect to mongodb: %w", err)
			return
		}

		if err := client.Ping(ctx, nil); err != nil {
			initErr = fmt.Errorf("failed to ping mongodb: %w", err)
			return
		}

		instance = &MongoDB{
			Client:   client,
			Database: client.Database(cfg.Database),
		}
	})
	return initErr
}

// GetMongoDBInstance returns the shared MongoDB instance.
func GetMongoDBInstance() *MongoDB {

	if instance == nil {
		panic("MongoDB is not initialized")
	}
	return instance
}
