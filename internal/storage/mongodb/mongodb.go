package mongodb

import (
	"context"
	"errors"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"feedback_bot/internal/models"
	"feedback_bot/internal/storage"
)

const (
	usersCollectionName   = "users"
	topicsCollectionName  = "topics"
	repliesCollectionName = "replies"
)

var errVersionMismatch = errors.New("version mismatch")

type Mongo struct {
	client *mongo.Client
	db     *mongo.Database
}

var _ storage.Storage = (*Mongo)(nil)

func New(ctx context.Context, uri string, database string) (*Mongo, error) {
	client, err := mongo.Connect(ctx, options.Client().ApplyURI(uri))

	if err != nil {
		return nil, err
	}

	err = client.Ping(ctx, nil)

	if err != nil {
		_ = client.Disconnect(ctx)
		return nil, err
	}

	return FromClient(client, database), nil
}

func FromClient(client *mongo.Client, database string) *Mongo {
	return &Mongo{
		client: client,
		db:     client.Database(database),
	}
}

// Init creates missing collections and the indexes the relay relies on.
func Init(ctx context.Context, db *Mongo) error {
	collections, err := db.db.ListCollectionNames(ctx, bson.M{})

	if err != nil {
		return err
	}

	collectionMap := make(map[string]bool)
	for _, name := range collections {
		collectionMap[name] = true
	}

	for _, name := range []string{usersCollectionName, topicsCollectionName, repliesCollectionName} {
		if collectionMap[name] {
			continue
		}

		if err := db.db.CreateCollection(ctx, name); err != nil {
			return fmt.Errorf("create collection %s: %w", name, err)
		}
	}

	_, err = db.topics().Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: "user_id", Value: 1}},
		Options: options.Index().SetUnique(true),
	})

	if err != nil {
		return fmt.Errorf("create topics index: %w", err)
	}

	_, err = db.replies().Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys: bson.D{{Key: "topic_id", Value: 1}},
	})

	if err != nil {
		return fmt.Errorf("create replies index: %w", err)
	}

	return nil
}

func (db *Mongo) Ping(ctx context.Context) error {
	return db.client.Ping(ctx, nil)
}

func (db *Mongo) Disconnect(ctx context.Context) error {
	return db.client.Disconnect(ctx)
}

func (db *Mongo) users() *mongo.Collection {
	return db.db.Collection(usersCollectionName)
}

func (db *Mongo) topics() *mongo.Collection {
	return db.db.Collection(topicsCollectionName)
}

func (db *Mongo) replies() *mongo.Collection {
	return db.db.Collection(repliesCollectionName)
}

func (db *Mongo) CreateUserWithTopic(ctx context.Context, user *models.User, topic *models.Topic) error {
	err := db.inTransaction(ctx, func(sc mongo.SessionContext) error {
		if _, err := db.users().InsertOne(sc, user); err != nil {
			return err
		}

		_, err := db.topics().InsertOne(sc, topic)

		return err
	})

	return mapError(err)
}

func (db *Mongo) GetUserById(ctx context.Context, userId int64) (models.User, error) {
	var result models.User

	err := db.users().FindOne(
		ctx,
		bson.M{"_id": userId},
	).Decode(&result)

	return result, mapError(err)
}

func (db *Mongo) TryUpdateUser(ctx context.Context, user *models.User) (bool, error) {
	res, err := db.users().UpdateOne(
		ctx,
		bson.M{"_id": user.Id, "version": user.Version},
		bson.M{
			"$set": bson.M{
				"banned":     user.Banned,
				"topic_id":   user.TopicId,
				"first_name": user.FirstName,
				"last_name":  user.LastName,
				"username":   user.Username,
			},
			"$inc": bson.M{"version": 1},
		},
	)

	if err != nil {
		return false, err
	}

	if res.MatchedCount == 0 {
		return false, nil
	}

	user.Version++

	return true, nil
}

func (db *Mongo) GetTopicById(ctx context.Context, topicId int) (models.Topic, error) {
	var result models.Topic

	err := db.topics().FindOne(
		ctx,
		bson.M{"_id": topicId},
	).Decode(&result)

	return result, mapError(err)
}

func (db *Mongo) ListTopics(ctx context.Context) ([]models.Topic, error) {
	cur, err := db.topics().Find(
		ctx,
		bson.M{},
		options.Find().SetSort(bson.D{{Key: "_id", Value: 1}}),
	)

	if err != nil {
		return nil, err
	}

	defer cur.Close(ctx)

	items := make([]models.Topic, 0)
	err = cur.All(ctx, &items)

	return items, err
}

func (db *Mongo) TryUpdateTopic(ctx context.Context, topic *models.Topic) (bool, error) {
	res, err := db.topics().UpdateOne(
		ctx,
		bson.M{"_id": topic.Id, "version": topic.Version},
		bson.M{
			"$set": bson.M{"is_open": topic.IsOpen},
			"$inc": bson.M{"version": 1},
		},
	)

	if err != nil {
		return false, err
	}

	if res.MatchedCount == 0 {
		return false, nil
	}

	topic.Version++

	return true, nil
}

func (db *Mongo) RecreateTopic(ctx context.Context, user *models.User, stale models.Topic, fresh *models.Topic) (bool, error) {
	err := db.inTransaction(ctx, func(sc mongo.SessionContext) error {
		res, err := db.users().UpdateOne(
			sc,
			bson.M{"_id": user.Id, "version": user.Version},
			bson.M{
				"$set": bson.M{"topic_id": fresh.Id},
				"$inc": bson.M{"version": 1},
			},
		)

		if err != nil {
			return err
		}

		if res.MatchedCount == 0 {
			return errVersionMismatch
		}

		if err := db.deleteTopic(sc, stale.Id); err != nil {
			return err
		}

		_, err = db.topics().InsertOne(sc, fresh)

		return err
	})

	if errors.Is(err, errVersionMismatch) {
		return false, nil
	}

	if err != nil {
		return false, mapError(err)
	}

	user.TopicId = fresh.Id
	user.Version++

	return true, nil
}

func (db *Mongo) DeleteTopic(ctx context.Context, topicId int) error {
	return db.deleteTopic(ctx, topicId)
}

func (db *Mongo) deleteTopic(ctx context.Context, topicId int) error {
	_, err := db.replies().DeleteMany(ctx, bson.M{"topic_id": topicId})

	if err != nil {
		return err
	}

	_, err = db.topics().DeleteOne(ctx, bson.M{"_id": topicId})

	return err
}

func (db *Mongo) CreateReply(ctx context.Context, reply *models.Reply) error {
	_, err := db.replies().InsertOne(ctx, reply)

	return mapError(err)
}

func (db *Mongo) GetReplyById(ctx context.Context, replyId int) (models.Reply, error) {
	var result models.Reply

	err := db.replies().FindOne(
		ctx,
		bson.M{"_id": replyId},
	).Decode(&result)

	return result, mapError(err)
}

func (db *Mongo) DeleteReply(ctx context.Context, replyId int) error {
	_, err := db.replies().DeleteOne(ctx, bson.M{"_id": replyId})

	return err
}

// inTransaction needs a replica set or a sharded cluster.
func (db *Mongo) inTransaction(ctx context.Context, fn func(sc mongo.SessionContext) error) error {
	return db.client.UseSession(ctx, func(sc mongo.SessionContext) error {
		_, err := sc.WithTransaction(sc, func(sc mongo.SessionContext) (interface{}, error) {
			return nil, fn(sc)
		})

		return err
	})
}

func mapError(err error) error {
	switch {
	case err == nil:
		return nil
	case errors.Is(err, mongo.ErrNoDocuments):
		return storage.ErrNotFound
	case mongo.IsDuplicateKeyError(err):
		return fmt.Errorf("%w: %v", storage.ErrDuplicateKey, err)
	default:
		return err
	}
}
