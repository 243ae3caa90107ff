package mongo

import (
	"context"
	"errors"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/mdnotes/notes-api/internal/core/domain"
)

const notesCollection = "notes"

// NoteRepository persists notes in the notes collection.
type NoteRepository struct {
	col *mongo.Collection
}

func NewNoteRepository(db *mongo.Database) *NoteRepository {
	return &NoteRepository{col: db.Collection(notesCollection)}
}

// FindByOwner returns every note owned by ownerID, most recently updated
// first. The created_at and _id keys make equal-updated_at ordering
// deterministic.
func (r *NoteRepository) FindByOwner(ctx context.Context, ownerID string) ([]domain.Note, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	sort := bson.D{
		{Key: "updated_at", Value: -1},
		{Key: "created_at", Value: 1},
		{Key: "_id", Value: 1},
	}

	cur, err := r.col.Find(ctx, bson.M{"owner_id": ownerID}, options.Find().SetSort(sort))
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	notes := []domain.Note{}
	if err := cur.All(ctx, &notes); err != nil {
		return nil, err
	}
	return notes, nil
}

// FindByID retrieves a single note by id.
func (r *NoteRepository) FindByID(ctx context.Context, id string) (*domain.Note, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	var n domain.Note
	err := r.col.FindOne(ctx, bson.M{"_id": id}).Decode(&n)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrNoteNotFound
		}
		return nil, err
	}
	return &n, nil
}

// Create inserts a new note document.
func (r *NoteRepository) Create(ctx context.Context, note *domain.Note) error {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	_, err := r.col.InsertOne(ctx, note)
	return err
}

// Update replaces the mutable fields of an existing note. Last write wins;
// no revision is tracked.
func (r *NoteRepository) Update(ctx context.Context, note *domain.Note) error {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	res, err := r.col.UpdateOne(ctx,
		bson.M{"_id": note.ID},
		bson.M{"$set": bson.M{
			"title":      note.Title,
			"content":    note.Content,
			"updated_at": note.UpdatedAt,
		}},
	)
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		return domain.ErrNoteNotFound
	}
	return nil
}

// Delete permanently removes a note document.
func (r *NoteRepository) Delete(ctx context.Context, id string) error {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	res, err := r.col.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return err
	}
	if res.DeletedCount == 0 {
		return domain.ErrNoteNotFound
	}
	return nil
}

// EnsureIndexes creates the index backing owner-scoped listing sorted by
// recency.
func (r *NoteRepository) EnsureIndexes(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, 30*time.Second)
	defer cancel()

	indexes := []mongo.IndexModel{
		{Keys: bson.D{{Key: "owner_id", Value: 1}, {Key: "updated_at", Value: -1}}},
	}

	_, err := r.col.Indexes().CreateMany(ctx, indexes)
	return err
}
