package journal

import (
	"context"

	"followupplan-service/internal/app/contracts"
	"followupplan-service/internal/app/models"
	"followupplan-service/internal/pkg/constvars"
	"followupplan-service/internal/pkg/exceptions"

	"go.mongodb.org/mongo-driver/mongo"
)

type JournalMongoRepository struct {
	Collection *mongo.Collection
}

func NewJournalMongoRepository(db *mongo.Client, dbName string) contracts.DispatchJournal {
	return &JournalMongoRepository{
		Collection: db.Database(dbName).Collection(constvars.MongoCollectionDispatchJournal),
	}
}

func (repo *JournalMongoRepository) Record(ctx context.Context, record *models.DispatchRecord) error {
	_, err := repo.Collection.InsertOne(ctx, record)
	if err != nil {
		return exceptions.ErrMongoDBInsertDocument(err)
	}
	return nil
}
