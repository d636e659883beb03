package workbench

import (
	"context"
	"time"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"

	"github.com/framewright/framewright/pkg/errors"
	"github.com/framewright/framewright/pkg/frame"
)

// MongoConfig configures a MongoDB-backed workbench.
type MongoConfig struct {
	// URI is the MongoDB connection string.
	URI string

	// Database is the database name. Empty means "framewright".
	Database string
}

// MongoStore is a MongoDB-backed workbench. Designs and sizes are
// documents keyed by their identity, settings a single document.
type MongoStore struct {
	client   *mongo.Client
	designs  *mongo.Collection
	sizes    *mongo.Collection
	settings *mongo.Collection
}

// sizeDoc wraps a size preset with its folded-name identity.
type sizeDoc struct {
	Key    string  `bson:"_id"`
	Name   string  `bson:"name"`
	Height float64 `bson:"height"`
	Width  float64 `bson:"width"`
}

// settingsDoc pins the settings to a fixed document ID.
type settingsDoc struct {
	ID       string   `bson:"_id"`
	Settings Settings `bson:"settings"`
}

const settingsDocID = "current"

// NewMongoStore connects to MongoDB and verifies the connection.
func NewMongoStore(ctx context.Context, cfg MongoConfig) (*MongoStore, error) {
	client, err := mongo.Connect(ctx, options.Client().ApplyURI(cfg.URI))
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeStore, err, "connect to mongodb")
	}
	if err := client.Ping(ctx, readpref.Primary()); err != nil {
		_ = client.Disconnect(ctx)
		return nil, errors.Wrap(errors.ErrCodeStore, err, "ping mongodb")
	}

	dbName := cfg.Database
	if dbName == "" {
		dbName = "framewright"
	}
	db := client.Database(dbName)
	return &MongoStore{
		client:   client,
		designs:  db.Collection("designs"),
		sizes:    db.Collection("sizes"),
		settings: db.Collection("settings"),
	}, nil
}

func (s *MongoStore) ListDesigns(ctx context.Context) ([]SavedDesign, error) {
	opts := options.Find().SetSort(bson.D{{Key: "created_at", Value: 1}, {Key: "name", Value: 1}})
	cur, err := s.designs.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeStore, err, "list designs")
	}

	var list []SavedDesign
	if err := cur.All(ctx, &list); err != nil {
		return nil, errors.Wrap(errors.ErrCodeStore, err, "decode designs")
	}
	return list, nil
}

func (s *MongoStore) GetDesign(ctx context.Context, name string) (SavedDesign, error) {
	var d SavedDesign
	err := s.designs.FindOne(ctx, bson.M{"name": name}).Decode(&d)
	if err == mongo.ErrNoDocuments {
		return SavedDesign{}, errors.New(errors.ErrCodeDesignNotFound, "design %q not found", name)
	}
	if err != nil {
		return SavedDesign{}, errors.Wrap(errors.ErrCodeStore, err, "get design %q", name)
	}
	return d, nil
}

func (s *MongoStore) SaveDesign(ctx context.Context, d SavedDesign) (SavedDesign, error) {
	if err := errors.ValidateDesignName(d.Name); err != nil {
		return SavedDesign{}, err
	}

	now := nowUTC()
	d.UpdatedAt = now

	existing, err := s.GetDesign(ctx, d.Name)
	switch {
	case err == nil:
		d.ID = existing.ID
		d.CreatedAt = existing.CreatedAt
	case errors.Is(err, errors.ErrCodeDesignNotFound):
		d.ID = uuid.NewString()
		d.CreatedAt = now
	default:
		return SavedDesign{}, err
	}

	opts := options.Replace().SetUpsert(true)
	if _, err := s.designs.ReplaceOne(ctx, bson.M{"_id": d.ID}, d, opts); err != nil {
		return SavedDesign{}, errors.Wrap(errors.ErrCodeStore, err, "save design %q", d.Name)
	}
	return d, nil
}

func (s *MongoStore) DeleteDesign(ctx context.Context, name string) error {
	res, err := s.designs.DeleteOne(ctx, bson.M{"name": name})
	if err != nil {
		return errors.Wrap(errors.ErrCodeStore, err, "delete design %q", name)
	}
	if res.DeletedCount == 0 {
		return errors.New(errors.ErrCodeDesignNotFound, "design %q not found", name)
	}
	return nil
}

func (s *MongoStore) ListSizes(ctx context.Context) ([]frame.Size, error) {
	opts := options.Find().SetSort(bson.D{{Key: "_id", Value: 1}})
	cur, err := s.sizes.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeStore, err, "list sizes")
	}

	var docs []sizeDoc
	if err := cur.All(ctx, &docs); err != nil {
		return nil, errors.Wrap(errors.ErrCodeStore, err, "decode sizes")
	}

	list := make([]frame.Size, len(docs))
	for i, doc := range docs {
		list[i] = frame.Size{Name: doc.Name, Height: doc.Height, Width: doc.Width}
	}
	return list, nil
}

func (s *MongoStore) SaveSize(ctx context.Context, size frame.Size) error {
	if err := validateSize(size); err != nil {
		return err
	}

	doc := sizeDoc{
		Key:    sizeKey(size.Name),
		Name:   size.Name,
		Height: size.Height,
		Width:  size.Width,
	}
	opts := options.Replace().SetUpsert(true)
	if _, err := s.sizes.ReplaceOne(ctx, bson.M{"_id": doc.Key}, doc, opts); err != nil {
		return errors.Wrap(errors.ErrCodeStore, err, "save size %q", size.Name)
	}
	return nil
}

func (s *MongoStore) DeleteSize(ctx context.Context, name string) error {
	res, err := s.sizes.DeleteOne(ctx, bson.M{"_id": sizeKey(name)})
	if err != nil {
		return errors.Wrap(errors.ErrCodeStore, err, "delete size %q", name)
	}
	if res.DeletedCount == 0 {
		return errors.New(errors.ErrCodeNotFound, "size %q not found", name)
	}
	return nil
}

func (s *MongoStore) LoadSettings(ctx context.Context) (Settings, error) {
	var doc settingsDoc
	err := s.settings.FindOne(ctx, bson.M{"_id": settingsDocID}).Decode(&doc)
	if err == mongo.ErrNoDocuments {
		return DefaultSettings(), nil
	}
	if err != nil {
		return Settings{}, errors.Wrap(errors.ErrCodeStore, err, "load settings")
	}
	return doc.Settings, nil
}

func (s *MongoStore) SaveSettings(ctx context.Context, settings Settings) error {
	doc := settingsDoc{ID: settingsDocID, Settings: settings}
	opts := options.Replace().SetUpsert(true)
	if _, err := s.settings.ReplaceOne(ctx, bson.M{"_id": settingsDocID}, doc, opts); err != nil {
		return errors.Wrap(errors.ErrCodeStore, err, "save settings")
	}
	return nil
}

func (s *MongoStore) Ping(ctx context.Context) error {
	if err := s.client.Ping(ctx, readpref.Primary()); err != nil {
		return errors.Wrap(errors.ErrCodeStore, err, "ping mongodb")
	}
	return nil
}

func (s *MongoStore) Close() error {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	return s.client.Disconnect(ctx)
}

var _ Store = (*MongoStore)(nil)
