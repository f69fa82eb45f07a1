package mongo

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type JobRunRepo interface {
	Create(ctx context.Context, run *JobRunModel) (primitive.ObjectID, error)
	Finish(ctx context.Context, id primitive.ObjectID, outcome string, affected int64, errMsg string) error
	History(ctx context.Context, jobName string, limit int64) ([]*JobRunModel, error)
}

type jobRunRepoImpl struct {
	col *mongo.Collection
}

func NewJobRunRepo(db *mongo.Database) JobRunRepo {
	return &jobRunRepoImpl{
		col: db.Collection("job_runs"),
	}
}

// Create 插入一条 running 状态的执行记录
func (r *jobRunRepoImpl) Create(ctx context.Context, run *JobRunModel) (primitive.ObjectID, error) {
	if run.Outcome == "" {
		run.Outcome = JobOutcomeRunning
	}
	res, err := r.col.InsertOne(ctx, run)
	if err != nil {
		return primitive.NilObjectID, err
	}
	return res.InsertedID.(primitive.ObjectID), nil
}

// Finish 落盘最终结果
func (r *jobRunRepoImpl) Finish(ctx context.Context, id primitive.ObjectID, outcome string, affected int64, errMsg string) error {
	now := time.Now()
	update := bson.M{"$set": bson.M{
		"finished_at": now,
		"outcome":     outcome,
		"affected":    affected,
		"error":       errMsg,
	}}
	result, err := r.col.UpdateOne(ctx, bson.M{"_id": id}, update)
	if err != nil {
		return err
	}
	if result.MatchedCount == 0 {
		return mongo.ErrNoDocuments
	}
	return nil
}

// History 按开始时间倒序返回某任务的执行历史
func (r *jobRunRepoImpl) History(ctx context.Context, jobName string, limit int64) ([]*JobRunModel, error) {
	filter := bson.M{"job_name": jobName}
	opts := options.Find().
		SetSort(bson.D{{Key: "started_at", Value: -1}}).
		SetLimit(limit)

	cursor, err := r.col.Find(ctx, filter, opts)
	if err != nil {
		return nil, err
	}
	defer func() {
		_ = cursor.Close(ctx)
	}()

	var list []*JobRunModel
	if err = cursor.All(ctx, &list); err != nil {
		return nil, err
	}
	return list, nil
}
