package server

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/google/uuid"
	"github.com/jonathan/resume-analyzer/internal/db"
)

// fakeDBClient is an in-memory DBClient for user service tests.
type fakeDBClient struct {
	users       map[uuid.UUID]*db.User
	failOnEmail string
}

func newFakeDBClient() *fakeDBClient {
	return &fakeDBClient{users: make(map[uuid.UUID]*db.User)}
}

func (f *fakeDBClient) CreateUser(_ context.Context, name, email, phone string) (uuid.UUID, error) {
	id := uuid.New()
	f.users[id] = &db.User{ID: id, Name: name, Email: email, Phone: phone}
	return id, nil
}

func (f *fakeDBClient) GetUser(_ context.Context, userID uuid.UUID) (*db.User, error) {
	return f.users[userID], nil
}

func (f *fakeDBClient) GetUserByEmail(_ context.Context, email string) (*db.User, error) {
	if email == f.failOnEmail {
		return nil, fmt.Errorf("connection reset")
	}
	for _, u := range f.users {
		if u.Email == email {
			return u, nil
		}
	}
	return nil, nil
}

func (f *fakeDBClient) CheckEmailExists(_ context.Context, email string) (bool, error) {
	u, err := f.GetUserByEmail(context.Background(), email)
	if err != nil {
		return false, err
	}
	return u != nil, nil
}

func (f *fakeDBClient) UpdatePassword(_ context.Context, userID uuid.UUID, passwordHash string) error {
	u, ok := f.users[userID]
	if !ok {
		return fmt.Errorf("user not found: %s", userID)
	}
	u.PasswordHash = passwordHash
	u.PasswordSet = true
	return nil
}

// fakeResumeStore is an in-memory ResumeStore for handler tests.
type fakeResumeStore struct {
	records  map[uuid.UUID]*db.ResumeRecord
	saveErr  error
	saveArgs struct {
		userID   uuid.UUID
		fileName string
		score    int
	}
}

func newFakeResumeStore() *fakeResumeStore {
	return &fakeResumeStore{records: make(map[uuid.UUID]*db.ResumeRecord)}
}

func (f *fakeResumeStore) SaveResume(_ context.Context, userID uuid.UUID, fileName string, score int, assessment any) (uuid.UUID, error) {
	if f.saveErr != nil {
		return uuid.Nil, f.saveErr
	}
	f.saveArgs.userID = userID
	f.saveArgs.fileName = fileName
	f.saveArgs.score = score

	raw, err := json.Marshal(assessment)
	if err != nil {
		return uuid.Nil, err
	}
	id := uuid.New()
	f.records[id] = &db.ResumeRecord{
		ID:         id,
		UserID:     userID,
		FileName:   fileName,
		Score:      score,
		Assessment: raw,
	}
	return id, nil
}

func (f *fakeResumeStore) GetResume(_ context.Context, id, userID uuid.UUID) (*db.ResumeRecord, error) {
	rec, ok := f.records[id]
	if !ok || rec.UserID != userID {
		return nil, nil
	}
	return rec, nil
}

func (f *fakeResumeStore) ListResumesByUser(_ context.Context, userID uuid.UUID, _ int) ([]db.ResumeSummary, error) {
	var out []db.ResumeSummary
	for _, rec := range f.records {
		if rec.UserID == userID {
			out = append(out, db.ResumeSummary{ID: rec.ID, FileName: rec.FileName, Score: rec.Score})
		}
	}
	return out, nil
}

func (f *fakeResumeStore) DeleteResume(_ context.Context, id, userID uuid.UUID) error {
	rec, ok := f.records[id]
	if !ok || rec.UserID != userID {
		return fmt.Errorf("resume not found: %s", id)
	}
	delete(f.records, id)
	return nil
}

// fakeScorer is a canned similarity scorer.
type fakeScorer struct {
	score float64
	err   error
}

func (f *fakeScorer) Score(_ context.Context, _ string) (float64, error) {
	return f.score, f.err
}

func (f *fakeScorer) Close() error { return nil }
