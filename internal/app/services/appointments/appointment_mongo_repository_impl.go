package appointments

import (
	"context"

	"doctorsportal-service/internal/app/contracts"
	"doctorsportal-service/internal/app/models"
	"doctorsportal-service/internal/pkg/constvars"
	"doctorsportal-service/internal/pkg/dto/responses"
	"doctorsportal-service/internal/pkg/exceptions"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type AppointmentOptionMongoRepository struct {
	Collection *mongo.Collection
}

func NewAppointmentOptionMongoRepository(db *mongo.Client, dbName string) contracts.AppointmentOptionRepository {
	return &AppointmentOptionMongoRepository{
		Collection: db.Database(dbName).Collection(constvars.MongoCollectionAppointmentOptions),
	}
}

func (r *AppointmentOptionMongoRepository) FindAll(ctx context.Context) ([]models.AppointmentOption, error) {
	cursor, err := r.Collection.Find(ctx, bson.M{})
	if err != nil {
		return nil, exceptions.ErrMongoDBFindDocument(err)
	}
	defer cursor.Close(ctx)

	var appointmentOptions []models.AppointmentOption
	if err := cursor.All(ctx, &appointmentOptions); err != nil {
		return nil, exceptions.ErrMongoDBIterateDocuments(err)
	}
	return appointmentOptions, nil
}

func (r *AppointmentOptionMongoRepository) FindAllNames(ctx context.Context) ([]responses.AppointmentSpecialty, error) {
	findOptions := options.Find().SetProjection(bson.M{"name": 1})
	cursor, err := r.Collection.Find(ctx, bson.M{}, findOptions)
	if err != nil {
		return nil, exceptions.ErrMongoDBFindDocument(err)
	}
	defer cursor.Close(ctx)

	var specialties []responses.AppointmentSpecialty
	if err := cursor.All(ctx, &specialties); err != nil {
		return nil, exceptions.ErrMongoDBIterateDocuments(err)
	}
	return specialties, nil
}
