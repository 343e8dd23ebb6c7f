package bookings

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

type BookingMongoRepository struct {
	Collection *mongo.Collection
}

func NewBookingMongoRepository(db *mongo.Client, dbName string) contracts.BookingRepository {
	return &BookingMongoRepository{
		Collection: db.Database(dbName).Collection(constvars.MongoCollectionBookings),
	}
}

func (r *BookingMongoRepository) CreateBooking(ctx context.Context, booking *models.Booking) (string, error) {
	result, err := r.Collection.InsertOne(ctx, booking)
	if err != nil {
		return "", exceptions.ErrMongoDBInsertDocument(err)
	}
	return result.InsertedID.(primitive.ObjectID).Hex(), nil
}

func (r *BookingMongoRepository) FindByID(ctx context.Context, bookingID string) (*models.Booking, error) {
	objectID, err := primitive.ObjectIDFromHex(bookingID)
	if err != nil {
		return nil, exceptions.ErrMongoDBNotObjectID(err)
	}
	var booking models.Booking
	err = r.Collection.FindOne(ctx, bson.M{"_id": objectID}).Decode(&booking)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, exceptions.ErrMongoDBFindDocument(err)
	}
	return &booking, nil
}

func (r *BookingMongoRepository) FindByEmail(ctx context.Context, email string) ([]models.Booking, error) {
	return r.findMany(ctx, bson.M{"email": email})
}

func (r *BookingMongoRepository) FindByDate(ctx context.Context, appointmentDate string) ([]models.Booking, error) {
	return r.findMany(ctx, bson.M{"appointmentDate": appointmentDate})
}

func (r *BookingMongoRepository) FindByAdmissionKey(ctx context.Context, treatment, appointmentDate, email string) ([]models.Booking, error) {
	filter := bson.M{
		"treatment":       treatment,
		"appointmentDate": appointmentDate,
		"email":           email,
	}
	return r.findMany(ctx, filter)
}

func (r *BookingMongoRepository) MarkPaid(ctx context.Context, bookingID, transactionID string) error {
	objectID, err := primitive.ObjectIDFromHex(bookingID)
	if err != nil {
		return exceptions.ErrMongoDBNotObjectID(err)
	}
	update := bson.M{
		"$set": bson.M{
			"paid":          true,
			"transactionId": transactionID,
		},
	}
	_, err = r.Collection.UpdateOne(ctx, bson.M{"_id": objectID}, update)
	if err != nil {
		return exceptions.ErrMongoDBUpdateDocument(err)
	}
	return nil
}

func (r *BookingMongoRepository) FindUnpaidByIDs(ctx context.Context, bookingIDs []string) ([]models.Booking, error) {
	objectIDs := make([]primitive.ObjectID, 0, len(bookingIDs))
	for _, bookingID := range bookingIDs {
		objectID, err := primitive.ObjectIDFromHex(bookingID)
		if err != nil {
			continue
		}
		objectIDs = append(objectIDs, objectID)
	}
	filter := bson.M{
		"_id":  bson.M{"$in": objectIDs},
		"paid": bson.M{"$ne": true},
	}
	return r.findMany(ctx, filter)
}

func (r *BookingMongoRepository) findMany(ctx context.Context, filter bson.M) ([]models.Booking, error) {
	cursor, err := r.Collection.Find(ctx, filter)
	if err != nil {
		return nil, exceptions.ErrMongoDBFindDocument(err)
	}
	defer cursor.Close(ctx)

	var result []models.Booking
	if err := cursor.All(ctx, &result); err != nil {
		return nil, exceptions.ErrMongoDBIterateDocuments(err)
	}
	return result, nil
}
