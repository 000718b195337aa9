package langid

import (
	"context"
	"errors"
	"fmt"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/joomcode/errorx"
	"github.com/maxbolgarin/abstract"
	"github.com/maxbolgarin/contem"
	"github.com/maxbolgarin/errm"
	"github.com/maxbolgarin/gorder"
	"github.com/maxbolgarin/logze"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/bsontype"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"
)

var (
	storeErrors = errorx.NewNamespace("langid.store")
	// ErrTagNotFound is returned when a stored identifier is not found.
	ErrTagNotFound = storeErrors.NewType("not_found", errorx.NotFound())
	// ErrTagExists is returned when a key is already taken.
	ErrTagExists = storeErrors.NewType("duplicate", errorx.Duplicate())
)

// TagRecord is the persisted form of a LanguageIdentifier. Subtags are stored
// in their raw packed encoding, which is a stable contract: a record written
// by one process decodes to the same identifier in another.
type TagRecord struct {
	Key       string   `bson:"_id" json:"key"`
	Language  uint64   `bson:"language,omitempty" json:"language,omitempty"`
	Script    uint32   `bson:"script,omitempty" json:"script,omitempty"`
	Region    uint32   `bson:"region,omitempty" json:"region,omitempty"`
	Variants  []uint64 `bson:"variants,omitempty" json:"variants,omitempty"`
	Extension string   `bson:"extension,omitempty" json:"extension,omitempty"`
}

// NewTagRecord packs an identifier for storage under the given key.
func NewTagRecord(key string, id LanguageIdentifier) TagRecord {
	raw := id.RawParts()
	return TagRecord{
		Key:       key,
		Language:  raw.Language,
		Script:    raw.Script,
		Region:    raw.Region,
		Variants:  raw.Variants,
		Extension: raw.Extension,
	}
}

// Identifier rebuilds the stored identifier. Records are only ever written by
// NewTagRecord, so the unchecked reconstruction path is safe here.
func (r TagRecord) Identifier() LanguageIdentifier {
	return FromRawPartsUnchecked(RawParts{
		Language:  r.Language,
		Script:    r.Script,
		Region:    r.Region,
		Variants:  r.Variants,
		Extension: r.Extension,
	})
}

// MarshalBSONValue implements bson.ValueMarshaler: identifiers embedded in
// application documents are stored in canonical text form.
func (id LanguageIdentifier) MarshalBSONValue() (bsontype.Type, []byte, error) {
	return bson.MarshalValue(id.String())
}

// UnmarshalBSONValue implements bson.ValueUnmarshaler.
func (id *LanguageIdentifier) UnmarshalBSONValue(t bsontype.Type, data []byte) error {
	var s string
	if err := (bson.RawValue{Type: t, Value: data}).Unmarshal(&s); err != nil {
		return errm.Wrap(err, "unmarshal bson value")
	}
	parsed, err := Parse(s)
	if err != nil {
		return err
	}
	*id = parsed
	return nil
}

// StoreConfig contains database configuration for creating a TagStore.
//
// You can use environment variables to fill it:
// LANGID_DB_ADDRESS - MongoDB address
// LANGID_DB_NAME - database name
// LANGID_DB_USERNAME - MongoDB username
// LANGID_DB_PASSWORD - MongoDB password
type StoreConfig struct {
	// Address is the MongoDB address in ip:port format.
	Address string `yaml:"address" json:"address" env:"LANGID_DB_ADDRESS"`
	// DBName is the name of the MongoDB database.
	DBName string `yaml:"db_name" json:"db_name" env:"LANGID_DB_NAME"`
	// Username is the MongoDB username.
	Username string `yaml:"username" json:"username" env:"LANGID_DB_USERNAME"`
	// Password is the MongoDB password.
	Password string `yaml:"password" json:"password" env:"LANGID_DB_PASSWORD"`
}

// Validate validates store configuration.
func (cfg StoreConfig) Validate() error {
	return validation.ValidateStruct(&cfg,
		validation.Field(&cfg.Address, validation.Required),
		validation.Field(&cfg.DBName, validation.Required),
		validation.Field(&cfg.Username, validation.Required.When(len(cfg.Password) > 0)),
		validation.Field(&cfg.Password, validation.Required.When(len(cfg.Username) > 0)),
	)
}

// TagStore persists language identifiers in MongoDB keyed by an
// application-chosen string (user ID, session, document ID). Identifiers are
// stored packed, see TagRecord.
type TagStore struct {
	database *mongo.Database
	client   *mongo.Client
	log      logze.Logger

	colls *abstract.SafeMap[string, *mongo.Collection]
}

// NewTagStore connects to MongoDB and pings it. The client disconnect is
// registered on ctx for shutdown.
func NewTagStore(ctx contem.Context, cfg StoreConfig, log logze.Logger) (*TagStore, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	dsn := fmt.Sprintf("mongodb://%s/%s", cfg.Address, cfg.DBName)
	opts := options.Client().ApplyURI(dsn)
	if len(cfg.Username) > 0 && len(cfg.Password) > 0 {
		opts.SetAuth(options.Credential{
			AuthMechanism: "SCRAM-SHA-256",
			AuthSource:    cfg.DBName,
			Username:      cfg.Username,
			Password:      cfg.Password,
		})
	}

	client, err := mongo.Connect(ctx, opts)
	if err != nil {
		return nil, errm.Wrap(err, "connect")
	}
	ctx.Add(client.Disconnect)

	if err := client.Ping(ctx, readpref.Primary()); err != nil {
		return nil, errm.Wrap(err, "ping")
	}
	log.Info("connected to mongodb", "address", cfg.Address, "db", cfg.DBName)

	return &TagStore{
		database: client.Database(cfg.DBName),
		client:   client,
		log:      log,
		colls:    abstract.NewSafeMap[string, *mongo.Collection](),
	}, nil
}

func (s *TagStore) collection(name string) *mongo.Collection {
	if coll, ok := s.colls.Lookup(name); ok {
		return coll
	}
	coll := s.database.Collection(name)
	s.colls.Set(name, coll)
	return coll
}

// Save inserts an identifier under key in the named collection.
// Returns ErrTagExists when the key is already taken.
func (s *TagStore) Save(ctx context.Context, coll, key string, id LanguageIdentifier) error {
	_, err := s.collection(coll).InsertOne(ctx, NewTagRecord(key, id))
	switch {
	case mongo.IsDuplicateKeyError(err):
		return ErrTagExists.New("key %q", key)
	case err != nil:
		return errm.Wrap(err, "insert", "key", key)
	}
	return nil
}

// Replace inserts or overwrites an identifier under key.
func (s *TagStore) Replace(ctx context.Context, coll, key string, id LanguageIdentifier) error {
	upsert := true
	_, err := s.collection(coll).ReplaceOne(ctx, bson.M{"_id": key}, NewTagRecord(key, id),
		&options.ReplaceOptions{Upsert: &upsert})
	if err != nil {
		return errm.Wrap(err, "replace", "key", key)
	}
	return nil
}

// Get returns the identifier stored under key.
// Returns ErrTagNotFound when there is no such key.
func (s *TagStore) Get(ctx context.Context, coll, key string) (LanguageIdentifier, error) {
	result := s.collection(coll).FindOne(ctx, bson.M{"_id": key})
	if err := result.Err(); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return LanguageIdentifier{}, ErrTagNotFound.New("key %q", key)
		}
		return LanguageIdentifier{}, errm.Wrap(err, "find", "key", key)
	}
	var record TagRecord
	if err := result.Decode(&record); err != nil {
		return LanguageIdentifier{}, errm.Wrap(err, "decode", "key", key)
	}
	return record.Identifier(), nil
}

// All returns every identifier in the named collection keyed by record key.
func (s *TagStore) All(ctx context.Context, coll string) (map[string]LanguageIdentifier, error) {
	cursor, err := s.collection(coll).Find(ctx, bson.M{})
	if err != nil {
		return nil, errm.Wrap(err, "find all")
	}
	var records []TagRecord
	if err := cursor.All(ctx, &records); err != nil {
		return nil, errm.Wrap(err, "decode all")
	}
	out := make(map[string]LanguageIdentifier, len(records))
	for _, r := range records {
		out[r.Key] = r.Identifier()
	}
	return out, nil
}

// Delete removes the identifier stored under key. Deleting a missing key is
// not an error.
func (s *TagStore) Delete(ctx context.Context, coll, key string) error {
	result, err := s.collection(coll).DeleteOne(ctx, bson.M{"_id": key})
	if err != nil {
		return errm.Wrap(err, "delete", "key", key)
	}
	if result.DeletedCount == 0 {
		s.log.Warn("no identifier to delete", "key", key)
	}
	return nil
}

// AsyncTagStore wraps a TagStore with an ordered queue for asynchronous
// writes: per-key operations keep their order, failures are retried.
type AsyncTagStore struct {
	store *TagStore
	queue *gorder.Gorder[string]
}

// NewAsyncTagStore creates an asynchronous wrapper around store.
func NewAsyncTagStore(ctx contem.Context, store *TagStore, workers int, lg gorder.Logger) *AsyncTagStore {
	q := gorder.NewWithOptions[string](ctx, gorder.Options{
		Workers:         workers,
		Log:             lg,
		ThrowOnShutdown: true,
		Retries:         10,
	})
	ctx.Add(q.Shutdown)

	return &AsyncTagStore{
		store: store,
		queue: q,
	}
}

// Replace queues an upsert of id under key; writes for the same key are
// applied in submission order.
func (s *AsyncTagStore) Replace(coll, key string, id LanguageIdentifier) {
	s.queue.Push(key, "replace", func(ctx context.Context) error {
		return s.store.Replace(ctx, coll, key, id)
	})
}

// Delete queues the removal of key.
func (s *AsyncTagStore) Delete(coll, key string) {
	s.queue.Push(key, "delete", func(ctx context.Context) error {
		return s.store.Delete(ctx, coll, key)
	})
}
