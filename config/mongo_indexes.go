package config

import (
	"context"
	"errors"
	"os"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

func EnsureMongoIndexes() error {
	if MongoClient == nil {
		return errors.New("MongoClient is nil; call InitMongo() first")
	}

	dbName := os.Getenv("MONGO_DB")
	if dbName == "" {
		dbName = "jobport"
	}
	db := MongoClient.Database(dbName)

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	apps := db.Collection("employer_applications")
	_, err := apps.Indexes().CreateMany(ctx, []mongo.IndexModel{
		// 1) One application per (job, applicant); racing applies lose here.
		{
			Keys: bson.D{{Key: "job_id", Value: 1}, {Key: "applicant_id", Value: 1}},
			Options: options.Index().
				SetName("uniq_job_applicant").
				SetUnique(true),
		},
		// 2) Decide/delete look up by application id
		{
			Keys: bson.D{{Key: "application_id", Value: 1}},
			Options: options.Index().
				SetName("uniq_application_id").
				SetUnique(true),
		},
		// 3) Employer listing
		{
			Keys:    bson.D{{Key: "employer_id", Value: 1}, {Key: "applied_at", Value: -1}},
			Options: options.Index().SetName("by_employer_applied"),
		},
	})
	return err
}
