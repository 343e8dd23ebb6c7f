package payments

import (
	"context"

	"doctorsportal-service/internal/app/contracts"
	"doctorsportal-service/internal/app/models"
	"doctorsportal-service/internal/pkg/constvars"
	"doctorsportal-service/internal/pkg/exceptions"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

type PaymentMongoRepository struct {
	Collection *mongo.Collection
}

func NewPaymentMongoRepository(db *mongo.Client, dbName string) contracts.PaymentRepository {
	return &PaymentMongoRepository{
		Collection: db.Database(dbName).Collection(constvars.MongoCollectionPayments),
	}
}

func (r *PaymentMongoRepository) CreatePayment(ctx context.Context, payment *models.Payment) (string, error) {
	result, err := r.Collection.InsertOne(ctx, payment)
	if err != nil {
		return "", exceptions.ErrMongoDBInsertDocument(err)
	}
	return result.InsertedID.(primitive.ObjectID).Hex(), nil
}

func (r *PaymentMongoRepository) FindAll(ctx context.Context) ([]models.Payment, error) {
	cursor, err := r.Collection.Find(ctx, bson.M{})
	if err != nil {
		return nil, exceptions.ErrMongoDBFindDocument(err)
	}
	defer cursor.Close(ctx)

	payments := make([]models.Payment, 0)
	if err := cursor.All(ctx, &payments); err != nil {
		return nil, exceptions.ErrMongoDBIterateDocuments(err)
	}
	return payments, nil
}
