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

package store

import (
	"context"
	"time"

	"github.com/krishisetu/farmer-welfare-service/internal/document/model"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// DocumentRepository handles MongoDB operations for farmer documents.
type DocumentRepository struct {
	Collection *mongo.Collection
}

// NewDocumentRepository initializes a repository for the documents collection.
func NewDocumentRepository(db *mongo.Database, collectionName string) *DocumentRepository {
	return &DocumentRepository{
		Collection: db.Collection(collectionName),
	}
}

// AddDocument inserts a single document record.
func (repo *DocumentRepository) AddDocument(document model.Document) error {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	_, err := repo.Collection.InsertOne(ctx, document)
	return err
}

// FindDocumentsForFarmer fetches all document records of a farmer, newest first.
func (repo *DocumentRepository) FindDocumentsForFarmer(farmerID string) ([]model.Document, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	opts := options.Find().SetSort(bson.D{{Key: "created_at", Value: -1}})
	cursor, err := repo.Collection.Find(ctx, bson.M{"farmer_id": farmerID}, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var documents []model.Document
	if err := cursor.All(ctx, &documents); err != nil {
		return nil, err
	}
	return documents, nil
}

// FindDocumentTypesForFarmer fetches the distinct document types a farmer has.
func (repo *DocumentRepository) FindDocumentTypesForFarmer(farmerID string) ([]string, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	raw, err := repo.Collection.Distinct(ctx, "document_type", bson.M{"farmer_id": farmerID})
	if err != nil {
		return nil, err
	}

	docTypes := make([]string, 0, len(raw))
	for _, value := range raw {
		if docType, ok := value.(string); ok {
			docTypes = append(docTypes, docType)
		}
	}
	return docTypes, nil
}

// MarkDocumentVerified sets the verification flag and timestamp.
func (repo *DocumentRepository) MarkDocumentVerified(documentID string, verifiedAt time.Time) error {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	update := bson.M{"$set": bson.M{"is_verified": true, "verified_at": verifiedAt}}
	_, err := repo.Collection.UpdateOne(ctx, bson.M{"document_id": documentID}, update)
	return err
}

// DeleteDocument removes one document record.
func (repo *DocumentRepository) DeleteDocument(documentID string) error {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	_, err := repo.Collection.DeleteOne(ctx, bson.M{"document_id": documentID})
	return err
}
