package doctors

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

type DoctorMongoRepository struct {
	Collection *mongo.Collection
}

func NewDoctorMongoRepository(db *mongo.Client, dbName string) contracts.DoctorRepository {
	return &DoctorMongoRepository{
		Collection: db.Database(dbName).Collection(constvars.MongoCollectionDoctors),
	}
}

func (r *DoctorMongoRepository) CreateDoctor(ctx context.Context, doctor *models.Doctor) (string, error) {
	result, err := r.Collection.InsertOne(ctx, doctor)
	if err != nil {
		return "", exceptions.ErrMongoDBInsertDocument(err)
	}
	return result.InsertedID.(primitive.ObjectID).Hex(), nil
}

func (r *DoctorMongoRepository) FindAll(ctx context.Context) ([]models.Doctor, error) {
	cursor, err := r.Collection.Find(ctx, bson.M{})
	if err != nil {
		return nil, exceptions.ErrMongoDBFindDocument(err)
	}
	defer cursor.Close(ctx)

	doctors := make([]models.Doctor, 0)
	if err := cursor.All(ctx, &doctors); err != nil {
		return nil, exceptions.ErrMongoDBIterateDocuments(err)
	}
	return doctors, nil
}

func (r *DoctorMongoRepository) UpdateImageByID(ctx context.Context, doctorID, image string) error {
	objectID, err := primitive.ObjectIDFromHex(doctorID)
	if err != nil {
		return exceptions.ErrMongoDBNotObjectID(err)
	}

	filter := bson.M{"_id": objectID}
	update := bson.M{"$set": bson.M{"image": image}}
	_, err = r.Collection.UpdateOne(ctx, filter, update)
	if err != nil {
		return exceptions.ErrMongoDBUpdateDocument(err)
	}
	return nil
}

func (r *DoctorMongoRepository) DeleteByID(ctx context.Context, doctorID string) error {
	objectID, err := primitive.ObjectIDFromHex(doctorID)
	if err != nil {
		return exceptions.ErrMongoDBNotObjectID(err)
	}

	_, err = r.Collection.DeleteOne(ctx, bson.M{"_id": objectID})
	if err != nil {
		return exceptions.ErrMongoDBDeleteDocument(err)
	}
	return nil
}
