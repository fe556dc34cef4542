package repository

import (
	"context"
	"errors"
	"fmt"

	"ministerios/internal/ministerio/model"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/x/mongo/driver/topology"
)

// codeDocumentValidationFailure is returned when a collection $jsonSchema validator rejects a write.
const codeDocumentValidationFailure = 121

type MongoRepository struct {
	Ministerios *mongo.Collection
}

func NewMongoRepository(db *mongo.Database, collectionName string) *MongoRepository {
	return &MongoRepository{
		Ministerios: db.Collection(collectionName),
	}
}

func (r *MongoRepository) Create(ctx context.Context, fields model.MinisterioFields) (*model.Ministerio, error) {
	doc := model.NewMinisterio(fields)

	res, err := r.Ministerios.InsertOne(ctx, doc)
	if err != nil {
		return nil, translateError(err)
	}

	oid, ok := res.InsertedID.(primitive.ObjectID)
	if !ok {
		return nil, fmt.Errorf("unexpected inserted id type %T", res.InsertedID)
	}
	doc.ID = oid
	return doc, nil
}

func (r *MongoRepository) FindByID(ctx context.Context, id string) (*model.Ministerio, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, ErrNotFound
	}

	var result model.Ministerio
	opts := options.FindOne().SetProjection(fillableProjection())
	err = r.Ministerios.FindOne(ctx, bson.M{model.FieldID: oid}, opts).Decode(&result)
	if err != nil {
		return nil, translateError(err)
	}
	return &result, nil
}

func (r *MongoRepository) Update(ctx context.Context, id string, patch model.MinisterioPatch) (*model.Ministerio, error) {
	if patch.IsEmpty() {
		return r.FindByID(ctx, id)
	}

	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, ErrNotFound
	}

	set := bson.M{}
	for k, v := range patch.Fields() {
		set[k] = v
	}

	opts := options.FindOneAndUpdate().
		SetReturnDocument(options.After).
		SetProjection(fillableProjection())
	var result model.Ministerio
	err = r.Ministerios.FindOneAndUpdate(ctx, bson.M{model.FieldID: oid}, bson.M{"$set": set}, opts).Decode(&result)
	if err != nil {
		return nil, translateError(err)
	}
	return &result, nil
}

func (r *MongoRepository) Delete(ctx context.Context, id string) error {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return ErrNotFound
	}

	res, err := r.Ministerios.DeleteOne(ctx, bson.M{model.FieldID: oid})
	if err != nil {
		return translateError(err)
	}
	if res.DeletedCount == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *MongoRepository) Query(ctx context.Context, filter model.MinisterioFilter) (Iterator, error) {
	query := bson.M{}
	for k, v := range filter.Conditions() {
		query[k] = v
	}

	opts := options.Find().
		SetSort(bson.D{{Key: model.FieldID, Value: 1}}).
		SetProjection(fillableProjection())
	if filter.Skip > 0 {
		opts.SetSkip(filter.Skip)
	}
	if filter.Limit > 0 {
		opts.SetLimit(filter.Limit)
	}

	cursor, err := r.Ministerios.Find(ctx, query, opts)
	if err != nil {
		return nil, translateError(err)
	}
	return &mongoIterator{cursor: cursor}, nil
}

func (r *MongoRepository) List(ctx context.Context, filter model.MinisterioFilter) ([]*model.Ministerio, error) {
	it, err := r.Query(ctx, filter)
	if err != nil {
		return nil, err
	}
	return Drain(ctx, it)
}

func (r *MongoRepository) Ping(ctx context.Context) error {
	err := r.Ministerios.Database().RunCommand(ctx, bson.D{{Key: "ping", Value: 1}}).Err()
	return translateError(err)
}

// fillableProjection limits reads to _id and the allow-listed fields. Keys written to a
// document through other paths are never returned.
func fillableProjection() bson.D {
	proj := bson.D{{Key: model.FieldID, Value: 1}}
	for _, f := range model.FillableFields {
		proj = append(proj, bson.E{Key: f, Value: 1})
	}
	return proj
}

type mongoIterator struct {
	cursor  *mongo.Cursor
	current *model.Ministerio
	err     error
}

func (it *mongoIterator) Next(ctx context.Context) bool {
	if it.err != nil {
		return false
	}
	if !it.cursor.Next(ctx) {
		it.err = translateError(it.cursor.Err())
		it.current = nil
		return false
	}
	var m model.Ministerio
	if err := it.cursor.Decode(&m); err != nil {
		it.err = err
		it.current = nil
		return false
	}
	it.current = &m
	return true
}

func (it *mongoIterator) Ministerio() *model.Ministerio { return it.current }

func (it *mongoIterator) Err() error { return it.err }

func (it *mongoIterator) Close(ctx context.Context) error {
	return it.cursor.Close(ctx)
}

// translateError maps driver errors onto the repository sentinels, keeping the cause in the chain.
func translateError(err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, mongo.ErrNoDocuments) {
		return ErrNotFound
	}
	if isConnectionError(err) {
		return fmt.Errorf("%w: %w", ErrConnection, err)
	}
	if isValidationError(err) {
		return fmt.Errorf("%w: %w", ErrValidation, err)
	}
	return err
}

func isConnectionError(err error) bool {
	if mongo.IsNetworkError(err) || mongo.IsTimeout(err) {
		return true
	}
	if errors.Is(err, mongo.ErrClientDisconnected) || errors.Is(err, context.DeadlineExceeded) {
		return true
	}
	var sse topology.ServerSelectionError
	return errors.As(err, &sse)
}

func isValidationError(err error) bool {
	if mongo.IsDuplicateKeyError(err) {
		return true
	}
	var we mongo.WriteException
	if errors.As(err, &we) {
		return true
	}
	var ce mongo.CommandError
	if errors.As(err, &ce) && ce.Code == codeDocumentValidationFailure {
		return true
	}
	return false
}
