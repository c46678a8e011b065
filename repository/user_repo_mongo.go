package repository

import (
	"context"
	"time"

	"authportal/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// loginMaxTime bounds the username lookup during login.
const loginMaxTime = 30 * time.Second

type MongoUserRepo struct {
	DB *mongo.Client
}

func NewMongoUserRepo(db *mongo.Client) *MongoUserRepo {
	return &MongoUserRepo{DB: db}
}

func (r *MongoUserRepo) users() *mongo.Collection {
	return r.DB.Database("authportal").Collection("users")
}

func (r *MongoUserRepo) CreateUser(user *models.User) error {
	ctx := context.Background()
	if user.ID == "" {
		user.ID = primitive.NewObjectID().Hex()
	}
	if user.CreatedAt.IsZero() {
		user.CreatedAt = time.Now().UTC()
	}

	_, err := r.users().InsertOne(ctx, user)
	return err
}

func (r *MongoUserRepo) GetUserByEmailOrUsername(email, username string) (*models.User, error) {
	return r.findOne(bson.M{"$or": bson.A{
		bson.M{"email": email},
		bson.M{"username": username},
	}}, nil)
}

func (r *MongoUserRepo) GetUserByUsername(username string) (*models.User, error) {
	return r.findOne(bson.M{"username": username},
		options.FindOne().SetMaxTime(loginMaxTime))
}

func (r *MongoUserRepo) GetUserByID(id string) (*models.User, error) {
	return r.findOne(bson.M{"_id": id}, nil)
}

func (r *MongoUserRepo) findOne(filter bson.M, opts *options.FindOneOptions) (*models.User, error) {
	ctx := context.Background()
	user := &models.User{}

	var err error
	if opts != nil {
		err = r.users().FindOne(ctx, filter, opts).Decode(user)
	} else {
		err = r.users().FindOne(ctx, filter).Decode(user)
	}
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, err
	}

	return user, nil
}

func (r *MongoUserRepo) GetProfileByID(id string) (*models.Profile, error) {
	ctx := context.Background()
	profile := &models.Profile{}

	err := r.users().FindOne(ctx, bson.M{"_id": id},
		options.FindOne().SetProjection(bson.M{"name": 1, "email": 1, "_id": 0})).
		Decode(profile)

	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, err
	}

	return profile, nil
}

func (r *MongoUserRepo) GetAllProfiles() ([]models.Profile, error) {
	ctx := context.Background()

	cur, err := r.users().Find(ctx, bson.M{},
		options.Find().SetProjection(bson.M{"name": 1, "email": 1, "_id": 0}))
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	var profiles []models.Profile
	if err := cur.All(ctx, &profiles); err != nil {
		return nil, err
	}

	return profiles, nil
}
