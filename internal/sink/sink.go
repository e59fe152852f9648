// Package sink stores tokenized records in a gocloud.dev docstore collection
// keyed by "id", e.g. "mem://records/id" or "mongo://db/records?id_field=id".
package sink

import (
	"context"
	"fmt"

	"github.com/future-architect/ngram"
	"github.com/rs/xid"
	"gocloud.dev/docstore"
)

type recordEntity struct {
	ID     string   `docstore:"id"`
	Line   int      `docstore:"line"`
	Ngrams []string `docstore:"ngrams"`
	Label  int      `docstore:"label"`
}

type Sink struct {
	collection *docstore.Collection
}

// Open opens the collection at url. The docstore driver must be linked in by
// the caller with a blank import.
func Open(ctx context.Context, url string) (*Sink, error) {
	collection, err := docstore.OpenCollection(ctx, url)
	if err != nil {
		return nil, fmt.Errorf("Can't open collection: %w", err)
	}
	return &Sink{collection: collection}, nil
}

func toEntity(result ngram.Result) *recordEntity {
	id := result.ID
	if id == "" {
		id = xid.New().String()
	}
	return &recordEntity{
		ID:     id,
		Line:   result.Line,
		Ngrams: result.Ngrams,
		Label:  result.Label,
	}
}

// Put stores result and returns its key. Results without an id get a generated one.
func (s *Sink) Put(ctx context.Context, result ngram.Result) (string, error) {
	entity := toEntity(result)
	if err := s.collection.Put(ctx, entity); err != nil {
		return "", err
	}
	return entity.ID, nil
}

// PutAll stores results in one action list.
func (s *Sink) PutAll(ctx context.Context, results []ngram.Result) error {
	if len(results) == 0 {
		return nil
	}
	actions := s.collection.Actions()
	for _, result := range results {
		actions = actions.Put(toEntity(result))
	}
	err := actions.Do(ctx)
	if errs, ok := err.(docstore.ActionListError); ok {
		combined := &ngram.CombinedError{Message: "store error"}
		for _, e := range errs {
			combined.Errors = append(combined.Errors, fmt.Errorf("record %d: %w", e.Index, e.Err))
		}
		return combined
	}
	return err
}

func (s *Sink) Get(ctx context.Context, id string) (ngram.Result, error) {
	entity := &recordEntity{ID: id}
	if err := s.collection.Get(ctx, entity); err != nil {
		return ngram.Result{}, err
	}
	return ngram.Result{
		Line:   entity.Line,
		ID:     entity.ID,
		Ngrams: entity.Ngrams,
		Label:  entity.Label,
	}, nil
}

// Close closes the collection. memdocstore writes its file on Close.
func (s *Sink) Close() error {
	return s.collection.Close()
}
